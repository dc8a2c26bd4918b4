package session

import "errors"

// ErrStale reports an index or note ID that no longer refers to a tab.
var ErrStale = errors.New("stale tab reference")

// Result tells a successful operation apart from one skipped because its tab
// reference was out of range.
type Result int

const (
	Applied Result = iota
	Stale
)

func (r Result) String() string {
	switch r {
	case Applied:
		return "applied"
	case Stale:
		return "stale"
	default:
		return "unknown"
	}
}

// State is the persistence lifecycle of a session.
type State int

const (
	StateUninitialized State = iota
	StateLoaded
	StateSaved
)

func (s State) String() string {
	switch s {
	case StateUninitialized:
		return "uninitialized"
	case StateLoaded:
		return "loaded"
	case StateSaved:
		return "saved"
	default:
		return "unknown"
	}
}

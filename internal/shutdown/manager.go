package shutdown

import (
	"os"
	"os/signal"
	"sync"
	"syscall"

	"notepad/internal/logger"
)

type Shutdownable interface {
	Shutdown() error
}

// Func adapts a plain function to Shutdownable.
type Func func() error

func (f Func) Shutdown() error {
	return f()
}

// Manager runs registered components' Shutdown exactly once, newest first.
// Components run synchronously on the caller's goroutine; a failing
// component is logged and the sequence continues.
type Manager struct {
	components []named
	logger     logger.Logger
	mu         sync.Mutex
	done       chan struct{}
}

type named struct {
	name      string
	component Shutdownable
}

func NewManager(log logger.Logger) *Manager {
	return &Manager{
		logger: log,
		done:   make(chan struct{}),
	}
}

func (m *Manager) Register(name string, component Shutdownable) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.components = append(m.components, named{name: name, component: component})
}

// Listen shuts down on SIGINT or SIGTERM. dispatch decides which goroutine
// the sequence runs on; nil runs it on the signal goroutine. after, if set,
// runs once the sequence completes.
func (m *Manager) Listen(dispatch func(func()), after func()) {
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	go func() {
		select {
		case sig := <-sigChan:
			m.logger.Info("ShutdownManager", "shutdown signal received", map[string]interface{}{
				"signal": sig.String(),
			})
		case <-m.done:
			signal.Stop(sigChan)
			return
		}
		signal.Stop(sigChan)

		run := func() {
			m.Shutdown()
			if after != nil {
				after()
			}
		}
		if dispatch != nil {
			dispatch(run)
			return
		}
		run()
	}()
}

// Shutdown runs the sequence. Calls after the first are no-ops.
func (m *Manager) Shutdown() {
	m.mu.Lock()
	defer m.mu.Unlock()

	select {
	case <-m.done:
		return
	default:
		close(m.done)
	}

	m.logger.Info("ShutdownManager", "shutdown sequence initiated", map[string]interface{}{
		"components": len(m.components),
	})

	for i := len(m.components) - 1; i >= 0; i-- {
		c := m.components[i]
		if err := c.component.Shutdown(); err != nil {
			m.logger.Error("ShutdownManager", err, map[string]interface{}{
				"component": c.name,
			})
			continue
		}
		m.logger.Debug("ShutdownManager", "component stopped", map[string]interface{}{
			"component": c.name,
		})
	}

	m.logger.Info("ShutdownManager", "shutdown sequence completed", nil)
}

func (m *Manager) Done() <-chan struct{} {
	return m.done
}

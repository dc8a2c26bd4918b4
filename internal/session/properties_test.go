package session

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"testing"

	"pgregory.net/rapid"
)

func testTabsStayAligned_Properties(t *rapid.T, dir string) {
	surface := newFakeSurface()
	s := New(surface, &failingStore{}, WithMessenger(&fakeMessenger{}))

	steps := rapid.IntRange(1, 40).Draw(t, "steps")
	for i := 0; i < steps; i++ {
		switch rapid.IntRange(0, 4).Draw(t, "op") {
		case 0:
			s.Create(rapid.StringMatching(`[a-z ]{0,10}`).Draw(t, "text"))
		case 1:
			name := fmt.Sprintf("file-%d.txt", rapid.IntRange(0, 2).Draw(t, "file"))
			_, _ = s.OpenFile(filepath.Join(dir, name))
		case 2:
			s.CloseTab(rapid.IntRange(-1, s.Len()+1).Draw(t, "close"))
		case 3:
			s.CloseActive()
		case 4:
			s.TextChanged(rapid.IntRange(-1, s.Len()+1).Draw(t, "edit"))
		}

		if !s.Aligned() {
			t.Fatalf("notes=%d tabs=%d after step %d", s.Len(), surface.TabCount(), i)
		}
		if sel := surface.SelectedTab(); surface.TabCount() > 0 && (sel < 0 || sel >= surface.TabCount()) {
			t.Fatalf("selection %d outside %d tabs", sel, surface.TabCount())
		}
	}

	seen := map[string]bool{}
	for _, n := range s.Notes() {
		if !strings.HasPrefix(n.Title, "New ") {
			continue
		}
		if seen[n.Title] {
			t.Fatalf("duplicate title %q", n.Title)
		}
		seen[n.Title] = true
	}
}

func TestTabsStayAligned_Properties(t *testing.T) {
	dir := t.TempDir()
	for i := 0; i < 2; i++ {
		path := filepath.Join(dir, fmt.Sprintf("file-%d.txt", i))
		if err := os.WriteFile(path, []byte("content "+strconv.Itoa(i)), 0o644); err != nil {
			t.Fatal(err)
		}
	}

	rapid.Check(t, func(t *rapid.T) {
		testTabsStayAligned_Properties(t, dir)
	})
}

func testNewTitleExceedsOpenTitles_Properties(t *rapid.T) {
	numbers := rapid.SliceOfN(rapid.IntRange(1, 500), 0, 10).Draw(t, "numbers")
	titles := make([]string, 0, len(numbers))
	highest := 0
	for _, n := range numbers {
		titles = append(titles, fmt.Sprintf("New %d", n))
		highest = max(highest, n)
	}
	titles = append(titles, rapid.StringMatching(`[A-Za-z]{0,8}`).Draw(t, "other"))

	if got := nextNumber(titles, "New"); got != highest+1 {
		t.Fatalf("nextNumber(%v) = %d, want %d", titles, got, highest+1)
	}
}

func TestNewTitleExceedsOpenTitles_Properties(t *testing.T) {
	rapid.Check(t, testNewTitleExceedsOpenTitles_Properties)
}

package photogrid

import (
	"charm.land/bubbles/v2/textinput"
	"github.com/sahilm/fuzzy"
)

// quickSearch jumps the cursor to photos whose name fuzzy matches the input.
type quickSearch struct {
	active  bool
	input   textinput.Model
	origin  int
	matches fuzzy.Matches
	current int
}

func newQuickSearch() quickSearch {
	ti := textinput.New()
	ti.Prompt = "/"
	ti.Placeholder = "find photo..."
	ti.CharLimit = 100
	ti.SetWidth(24)
	return quickSearch{input: ti}
}

func (s *quickSearch) start(cursor int) {
	s.active = true
	s.origin = cursor
	s.matches = nil
	s.current = 0
	s.input.Reset()
	s.input.Focus()
}

func (s *quickSearch) stop() {
	s.active = false
	s.input.Blur()
}

// search matches the input against names and returns the position of the best
// match.
func (s *quickSearch) search(names []string) (int, bool) {
	s.current = 0
	if s.input.Value() == "" {
		s.matches = nil
		return 0, false
	}
	s.matches = fuzzy.Find(s.input.Value(), names)
	if len(s.matches) == 0 {
		return 0, false
	}
	return s.matches[0].Index, true
}

func (s *quickSearch) cycle(delta int) (int, bool) {
	n := len(s.matches)
	if n == 0 {
		return 0, false
	}
	s.current = ((s.current+delta)%n + n) % n
	return s.matches[s.current].Index, true
}

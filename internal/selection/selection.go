// Package selection implements the Model's Selection component: the
// ordered list of matched items, the cursor index, and the multi-select
// set. Grounded on the teacher's selection/selection.go (a btree-ordered
// Set of chosen lines), generalized here to also own the matched-items
// vector and cursor that peco instead keeps on ui.State/Ctx.
package selection

import (
	"sync"

	"github.com/google/btree"
	"github.com/mattn-fsel/fsel/internal/item"
	"github.com/mattn-fsel/fsel/internal/matcher"
)

// Selection holds the matched items produced by the Matcher, a cursor
// into that list, and the set of chosen items when multi-select is on.
type Selection struct {
	mutex   sync.RWMutex
	matched []matcher.Match
	cursor  int

	multi  bool
	chosen *btree.BTree // of *item.Item, ordered by ID
}

// New creates an empty Selection. multi enables multi-select (Tab to
// toggle, accept returns every chosen item instead of just the cursor).
func New(multi bool) *Selection {
	return &Selection{
		multi:  multi,
		chosen: btree.New(32),
	}
}

// Clear drops matches and the chosen set but preserves configuration
// (multi-select on/off).
func (s *Selection) Clear() {
	s.mutex.Lock()
	defer s.mutex.Unlock()
	s.matched = nil
	s.cursor = 0
	s.chosen = btree.New(32)
}

// AppendSorted appends a batch of already-sorted matches to the existing
// matched-items vector, used by the DontClear and ClearIfNotNull clear
// strategies.
func (s *Selection) AppendSorted(batch []matcher.Match) {
	s.mutex.Lock()
	defer s.mutex.Unlock()
	s.matched = append(s.matched, batch...)
	if s.cursor >= len(s.matched) {
		s.cursor = max(0, len(s.matched)-1)
	}
}

// Len returns the number of currently matched items.
func (s *Selection) Len() int {
	s.mutex.RLock()
	defer s.mutex.RUnlock()
	return len(s.matched)
}

// Matches returns a copy of the currently matched items, safe to read
// concurrently with further AppendSorted/Clear calls.
func (s *Selection) Matches() []matcher.Match {
	s.mutex.RLock()
	defer s.mutex.RUnlock()
	out := make([]matcher.Match, len(s.matched))
	copy(out, s.matched)
	return out
}

// CursorIndex returns the current cursor position into Matches().
func (s *Selection) CursorIndex() int {
	s.mutex.RLock()
	defer s.mutex.RUnlock()
	return s.cursor
}

// MoveCursor shifts the cursor by delta, clamped to the matched-items
// range.
func (s *Selection) MoveCursor(delta int) {
	s.mutex.Lock()
	defer s.mutex.Unlock()
	s.cursor = clamp(s.cursor+delta, 0, len(s.matched)-1)
}

// SetCursor moves the cursor to an absolute index, clamped to range.
func (s *Selection) SetCursor(n int) {
	s.mutex.Lock()
	defer s.mutex.Unlock()
	s.cursor = clamp(n, 0, len(s.matched)-1)
}

// CurrentItem returns the item under the cursor, or nil if there are no
// matches.
func (s *Selection) CurrentItem() *item.Item {
	s.mutex.RLock()
	defer s.mutex.RUnlock()
	if s.cursor < 0 || s.cursor >= len(s.matched) {
		return nil
	}
	return s.matched[s.cursor].Item
}

// IsMultiSelect reports whether multi-select mode is active.
func (s *Selection) IsMultiSelect() bool {
	s.mutex.RLock()
	defer s.mutex.RUnlock()
	return s.multi
}

// ToggleCurrent adds the item under the cursor to the chosen set if it is
// not already chosen, or removes it if it is. No-op if there is no
// current item or multi-select is off.
func (s *Selection) ToggleCurrent() {
	s.mutex.Lock()
	defer s.mutex.Unlock()
	if !s.multi || s.cursor < 0 || s.cursor >= len(s.matched) {
		return
	}
	it := s.matched[s.cursor].Item
	if s.chosen.Has(it) {
		s.chosen.Delete(it)
	} else {
		s.chosen.ReplaceOrInsert(it)
	}
}

// NumChosen returns the number of explicitly chosen items.
func (s *Selection) NumChosen() int {
	s.mutex.RLock()
	defer s.mutex.RUnlock()
	return s.chosen.Len()
}

// ChosenItems returns the explicitly chosen items, ordered by ID.
func (s *Selection) ChosenItems() []*item.Item {
	s.mutex.RLock()
	defer s.mutex.RUnlock()
	out := make([]*item.Item, 0, s.chosen.Len())
	s.chosen.Ascend(func(it btree.Item) bool {
		out = append(out, it.(*item.Item))
		return true
	})
	return out
}

// SelectedItems implements spec.md section 4.1's accept rule: if
// multi-select is on, return every explicitly chosen item (or none, if
// nothing was toggled); otherwise return the single item under the
// cursor (or none, if the matched list is empty). The cursor-item
// fallback only applies when multi-select is off -- accepting with
// multi-select on and nothing toggled yields an empty selection rather
// than silently falling back to the cursor item.
func (s *Selection) SelectedItems() []*item.Item {
	if s.IsMultiSelect() {
		return s.ChosenItems()
	}
	if it := s.CurrentItem(); it != nil {
		return []*item.Item{it}
	}
	return nil
}

func clamp(v, lo, hi int) int {
	if hi < lo {
		return lo
	}
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

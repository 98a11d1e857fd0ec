// Package itempool implements the append-only, cursor-resumable buffer of
// Items shared between the Reader, the Matcher, and the Model. Grounded on
// buffer/buffer.go's Memory type (mutex-guarded slice with a Reset/Accept
// lifecycle), generalized with the "takeable cursor" spec.md requires so a
// restarted Matcher can resume instead of rescanning from zero.
package itempool

import (
	"sync"

	"github.com/mattn-fsel/fsel/internal/item"
)

// Pool is a growable, append-only sequence of shared Item handles.
//
// Invariant: items are never removed except by Clear, so indices remain
// valid across Matcher restarts within a single Reader run.
type Pool struct {
	mutex  sync.RWMutex
	items  []*item.Item
	cursor int
}

// New creates an empty Pool.
func New() *Pool {
	return &Pool{}
}

// Append extends the pool with a batch of newly read items. O(1) amortized.
func (p *Pool) Append(batch []*item.Item) {
	if len(batch) == 0 {
		return
	}
	p.mutex.Lock()
	defer p.mutex.Unlock()
	p.items = append(p.items, batch...)
}

// Reset moves the takeable cursor back to position 0 without dropping any
// items. The next Matcher run that calls Take will re-examine everything
// from the start, under whatever MatcherMode is now in effect.
func (p *Pool) Reset() {
	p.mutex.Lock()
	defer p.mutex.Unlock()
	p.cursor = 0
}

// Clear drops all items and resets the cursor. Used when the Reader command
// itself changes, since the old items no longer belong to the new stream.
func (p *Pool) Clear() {
	p.mutex.Lock()
	defer p.mutex.Unlock()
	p.items = nil
	p.cursor = 0
}

// Len returns the number of items currently stored, irrespective of cursor
// position.
func (p *Pool) Len() int {
	p.mutex.RLock()
	defer p.mutex.RUnlock()
	return len(p.items)
}

// Take returns the unseen tail of the pool (from the cursor onward) and
// advances the cursor to the end of the pool. A Matcher calls this once at
// the start of its run to grab everything it is responsible for scanning.
func (p *Pool) Take() []*item.Item {
	p.mutex.Lock()
	defer p.mutex.Unlock()
	if p.cursor >= len(p.items) {
		return nil
	}
	tail := p.items[p.cursor:]
	out := make([]*item.Item, len(tail))
	copy(out, tail)
	p.cursor = len(p.items)
	return out
}

// At returns the item at index n, for random-access reads by the Selection
// and the frame-composition layer.
func (p *Pool) At(n int) (*item.Item, bool) {
	p.mutex.RLock()
	defer p.mutex.RUnlock()
	if n < 0 || n >= len(p.items) {
		return nil, false
	}
	return p.items[n], true
}

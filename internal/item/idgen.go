package item

import "context"

// idgen is the default IDGenerator: a single background goroutine hands
// out monotonically increasing IDs over a channel, so concurrent Readers
// never need a shared counter guarded by a mutex. Grounded on peco.go's
// idgen/newIDGen.
type idgen struct {
	ch chan uint64
}

// NewIDGenerator creates an IDGenerator. Call Run once in a background
// goroutine before using Next.
func NewIDGenerator() IDGenerator {
	return &idgen{ch: make(chan uint64)}
}

// Run feeds sequential IDs into the generator's channel until ctx is
// cancelled.
func (ig *idgen) Run(ctx context.Context) {
	var i uint64
	for {
		select {
		case <-ctx.Done():
			return
		case ig.ch <- i:
		}
		i++
	}
}

// Next blocks until the next ID is available.
func (ig *idgen) Next() uint64 {
	return <-ig.ch
}

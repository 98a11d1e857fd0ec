// Package matcher implements the worker that scans the ItemPool against
// the current query/mode and produces a sorted matched-items vector.
// Grounded on peco's filter package (Fuzzy/Regexp scoring algorithms,
// BufSize/threshold idiom) restructured around skim's restart-whole-worker
// contract from model.rs: each query or mode change kills the running
// Matcher and launches a fresh one rather than feeding it incremental
// updates through a persistent pipeline.
package matcher

import (
	"context"
	"sort"
	"sync"
	"sync/atomic"

	"github.com/mattn-fsel/fsel/internal/item"
	"github.com/mattn-fsel/fsel/internal/itempool"
)

// Match pairs a matched Item with the indices (into its display string)
// that should be highlighted.
type Match struct {
	Item    *item.Item
	Indices [][]int
}

// Control is the handle to a running (or finished) Matcher worker. It
// implements the spawn-then-kill-then-drain capability set shared with
// reader.Control, per spec.md section 9.
type Control struct {
	cancel context.CancelFunc
	done   chan struct{}
	once   sync.Once

	numMatched   atomic.Int64
	numProcessed atomic.Int64

	mutex   sync.Mutex
	matched []Match
	taken   bool
}

// Run scans the unseen tail of pool (via Pool.Take) against query under
// mode, scoring and collecting matches in the background. It returns
// immediately with a Control handle; callers poll Stopped() or wait for a
// heartbeat event.
func Run(ctx context.Context, query string, pool *itempool.Pool, mode Mode) *Control {
	ctx, cancel := context.WithCancel(ctx)
	c := &Control{
		cancel: cancel,
		done:   make(chan struct{}),
	}

	go c.run(ctx, query, pool, mode)

	return c
}

func (c *Control) run(ctx context.Context, query string, pool *itempool.Pool, mode Mode) {
	defer close(c.done)

	items := pool.Take()

	var compiled *regexCompiled
	if mode == ModeRegex && query != "" {
		var err error
		compiled, err = compileRegexQuery(query)
		if err != nil {
			// An unparsable regex query matches nothing rather than
			// crashing the worker; the UI keeps running per spec.md
			// section 7 (worker failures surface as an empty batch).
			return
		}
	}

	matched := make([]Match, 0, len(items))
	scores := make([]int, 0, len(items))
	for _, it := range items {
		select {
		case <-ctx.Done():
			return
		default:
		}

		var ok bool
		var indices [][]int
		var score int

		if mode == ModeRegex {
			if compiled == nil {
				ok, indices, score = true, nil, 0
			} else {
				ok, indices, score = regexMatch(compiled, it)
			}
		} else {
			ok, indices, score = fuzzyMatch(query, it)
		}

		c.numProcessed.Add(1)
		if !ok {
			continue
		}
		c.numMatched.Add(1)
		matched = append(matched, Match{Item: it, Indices: indices})
		scores = append(scores, score)
	}

	// Score descending, stable on ties by insertion (pool scan) order.
	sortByScore(matched, scores)

	c.mutex.Lock()
	c.matched = matched
	c.mutex.Unlock()
}

// sortByScore stably sorts matched (highest score first), using the
// parallel scores slice computed during the scan so each item is scored
// exactly once.
func sortByScore(matched []Match, scores []int) {
	idx := make([]int, len(matched))
	for i := range idx {
		idx[i] = i
	}
	sort.SliceStable(idx, func(a, b int) bool { return scores[idx[a]] > scores[idx[b]] })

	sorted := make([]Match, len(matched))
	for i, j := range idx {
		sorted[i] = matched[j]
	}
	copy(matched, sorted)
}

// Stopped reports whether the Matcher has scored every item it took from
// the pool at launch.
func (c *Control) Stopped() bool {
	select {
	case <-c.done:
		return true
	default:
		return false
	}
}

// IntoItems consumes the Control and yields its accumulated sorted
// matches. Intended to be called exactly once, after Stopped() is true.
func (c *Control) IntoItems() []Match {
	c.mutex.Lock()
	defer c.mutex.Unlock()
	c.taken = true
	out := c.matched
	c.matched = nil
	return out
}

// NumMatched returns the running count of items that matched so far.
func (c *Control) NumMatched() int { return int(c.numMatched.Load()) }

// NumProcessed returns the running count of items scored so far.
func (c *Control) NumProcessed() int { return int(c.numProcessed.Load()) }

// Kill is idempotent and synchronous: when it returns, the worker has
// stopped touching shared state and will publish no further items.
func (c *Control) Kill() {
	c.once.Do(func() {
		c.cancel()
	})
	<-c.done
}

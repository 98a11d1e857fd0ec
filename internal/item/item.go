// Package item defines the candidate record that flows from the Reader
// through the ItemPool, the Matcher, the Selection, and the Previewer.
package item

import (
	"context"
	"strings"

	"github.com/google/btree"
	"github.com/mattn-fsel/fsel/internal/ansi"
	"github.com/mattn-fsel/fsel/internal/util"
)

// IDGenerator hands out unique, monotonically increasing IDs for items.
// Grounded on peco.go's idgen: a single background goroutine serializes
// ID assignment so Reader goroutines never race on a counter. Run must be
// started in its own goroutine before the first call to Next.
type IDGenerator interface {
	Run(ctx context.Context)
	Next() uint64
}

// Item is an opaque, reference-countable candidate record. It is produced
// once by the Reader and never mutated afterwards, so it is safe to share
// the same *Item across the ItemPool, matched-item vectors, the Selection,
// and the Previewer.
type Item struct {
	id            uint64
	buf           string
	sepLoc        int
	displayString string
	ansiAttrs     []ansi.AttrSpan
}

// New builds an Item from a raw line of Reader output. enableSep mirrors
// peco's --null handling: when true, a NUL byte in buf splits the line
// into a display portion (before) and an output portion (after). enableANSI
// enables SGR escape parsing for the display portion.
func New(id uint64, buf string, enableSep, enableANSI bool) *Item {
	it := &Item{
		id:     id,
		buf:    buf,
		sepLoc: -1,
	}

	if enableSep {
		if i := strings.IndexByte(buf, '\000'); i != -1 {
			it.sepLoc = i
		}
	}

	if enableANSI {
		src := buf
		if it.sepLoc > -1 {
			src = buf[:it.sepLoc]
		}
		r := ansi.Parse(src)
		it.ansiAttrs = r.Attrs
		if it.sepLoc > -1 || r.Attrs != nil {
			it.displayString = r.Stripped
		}
	}

	return it
}

// ID returns the item's stable identity.
func (it *Item) ID() uint64 { return it.id }

// Less implements btree.Item so Items can be kept in ID-sorted sets,
// exactly as selection/selection.go's Set does for peco's line.Line.
func (it *Item) Less(other btree.Item) bool {
	o, ok := other.(*Item)
	if !ok {
		return false
	}
	return it.id < o.id
}

// Buffer returns the raw, unprocessed text of the item.
func (it *Item) Buffer() string { return it.buf }

// DisplayString returns the text shown in the selection list and matched
// against the query -- everything before a NUL separator, with ANSI
// sequences stripped.
func (it *Item) DisplayString() string {
	if it.displayString != "" {
		return it.displayString
	}
	if i := it.sepLoc; i > -1 {
		return util.StripANSISequence(it.buf[:i])
	}
	return util.StripANSISequence(it.buf)
}

// ANSIAttrs returns the run-length encoded SGR attributes for DisplayString,
// or nil if ANSI parsing was not enabled or the line carried no codes.
func (it *Item) ANSIAttrs() []ansi.AttrSpan { return it.ansiAttrs }

// Output returns the text emitted to the caller when this item is accepted
// -- everything after a NUL separator, or the whole buffer if there is none.
func (it *Item) Output() string {
	if i := it.sepLoc; i > -1 {
		return it.buf[i+1:]
	}
	return it.buf
}

// Field returns the n-th (1-based) whitespace/delimiter-separated field of
// the display string, with the same numbering as the Previewer's "{1}",
// "{2}", ... placeholders (the Previewer splits fields itself and does not
// call Field).
func Field(displayString string, delimiter func(string) []string, n int) string {
	fields := delimiter(displayString)
	if n <= 0 || n > len(fields) {
		return ""
	}
	return fields[n-1]
}

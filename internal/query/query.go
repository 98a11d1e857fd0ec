// Package query implements the Model's two-field editable buffer: the
// filter query (matched against items) and the command query (interpolated
// into the Reader command template). Grounded on peco's query/query.go,
// which implements exactly this rune-buffer editing API for a single
// field; here the same editing primitives are shared by two independent
// buffers via the buffer type below, generalizing to skim's Query, which
// keeps a filter query separate from a "cmd" query.
package query

import "sync"

// buffer is a mutex-guarded rune slice with caret-aware editing, lifted
// from peco's Query type.
type buffer struct {
	mutex sync.Mutex
	runes []rune
}

func (b *buffer) set(s string) {
	b.mutex.Lock()
	defer b.mutex.Unlock()
	b.runes = []rune(s)
}

func (b *buffer) reset() {
	b.mutex.Lock()
	defer b.mutex.Unlock()
	b.runes = nil
}

func (b *buffer) string() string {
	b.mutex.Lock()
	defer b.mutex.Unlock()
	return string(b.runes)
}

func (b *buffer) len() int {
	b.mutex.Lock()
	defer b.mutex.Unlock()
	return len(b.runes)
}

func (b *buffer) insertAt(ch rune, where int) {
	b.mutex.Lock()
	defer b.mutex.Unlock()
	if where == len(b.runes) {
		b.runes = append(b.runes, ch)
		return
	}
	buf := make([]rune, len(b.runes)+1)
	copy(buf, b.runes[:where])
	buf[where] = ch
	copy(buf[where+1:], b.runes[where:])
	b.runes = buf
}

func (b *buffer) deleteRange(start, end int) {
	b.mutex.Lock()
	defer b.mutex.Unlock()
	if start == -1 {
		return
	}
	l := len(b.runes)
	if end > l {
		end = l
	}
	if start > end {
		return
	}
	copy(b.runes[start:], b.runes[end:])
	b.runes = b.runes[:l-(end-start)]
}

// Field is an editable text buffer plus a caret position, one half of the
// Query (either the filter query or the command query).
type Field struct {
	buf      buffer
	caretPos int
}

// Set replaces the contents of the field and moves the caret to the end.
func (f *Field) Set(s string) {
	f.buf.set(s)
	f.caretPos = len([]rune(s))
}

// Reset clears the field and the caret.
func (f *Field) Reset() {
	f.buf.reset()
	f.caretPos = 0
}

// String returns the field's current contents.
func (f *Field) String() string { return f.buf.string() }

// Len returns the number of runes currently in the field.
func (f *Field) Len() int { return f.buf.len() }

// CaretPos returns the current caret offset, in runes.
func (f *Field) CaretPos() int { return f.caretPos }

// SetCaretPos moves the caret, clamped to the field's bounds.
func (f *Field) SetCaretPos(n int) {
	if n < 0 {
		n = 0
	}
	if l := f.buf.len(); n > l {
		n = l
	}
	f.caretPos = n
}

// InsertRuneAtCaret inserts ch at the caret and advances the caret by one.
func (f *Field) InsertRuneAtCaret(ch rune) {
	f.buf.insertAt(ch, f.caretPos)
	f.caretPos++
}

// DeleteRuneBeforeCaret deletes the rune immediately before the caret
// (backspace). Returns false if the field or caret was already empty.
func (f *Field) DeleteRuneBeforeCaret() bool {
	if f.caretPos <= 0 {
		return false
	}
	f.buf.deleteRange(f.caretPos-1, f.caretPos)
	f.caretPos--
	return true
}

// DeleteRuneAtCaret deletes the rune at the caret (delete-forward).
func (f *Field) DeleteRuneAtCaret() bool {
	if f.caretPos >= f.buf.len() {
		return false
	}
	f.buf.deleteRange(f.caretPos, f.caretPos+1)
	return true
}

// Query is the Model's editable query state: a filter query, matched by the
// Matcher against items, and a command query, interpolated into the Reader
// command template.
type Query struct {
	filter  Field
	command Field
	active  *Field // which field keystrokes currently land on
}

// New creates a Query with both fields seeded from the given initial
// values, with keystrokes landing on the filter field by default.
func New(initialFilter, initialCommand string) *Query {
	q := &Query{}
	q.filter.Set(initialFilter)
	q.command.Set(initialCommand)
	q.active = &q.filter
	return q
}

// Filter returns the filter-query field.
func (q *Query) Filter() *Field { return &q.filter }

// Command returns the command-query field.
func (q *Query) Command() *Field { return &q.command }

// FocusCommand switches keystroke focus to the command-query field.
func (q *Query) FocusCommand() { q.active = &q.command }

// FocusFilter switches keystroke focus back to the filter-query field.
func (q *Query) FocusFilter() { q.active = &q.filter }

// Active returns whichever field currently receives keystrokes.
func (q *Query) Active() *Field { return q.active }

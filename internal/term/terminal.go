// Package term defines the Model's terminal contract (Terminal) and a
// tcell-backed implementation, plus the frame-composition split-tree used
// to lay out the query line, status line, header, selection list, and
// preview pane. Grounded on ui/interface.go's Screen interface and
// screen_inline.go's tcell.Screen usage (the teacher's live go.mod
// dependency, unlike the legacy termbox_*.go files).
package term

import "context"

// Style is a foreground/background color pair plus a bold flag, kept
// backend-neutral the way ui/style.go keeps Attribute backend-neutral
// from termbox's own color constants.
type Style struct {
	Fg   Color
	Bg   Color
	Bold bool
}

// Color is a portable color identifier; -1 means "use the terminal's
// default color for this slot".
type Color int32

const ColorDefault Color = -1

// Terminal is the Model's rendering and input surface. A concrete
// backend (TcellTerminal) owns the actual screen handle; the Model only
// ever talks to this interface, so it can be faked in tests.
type Terminal interface {
	// Init acquires the terminal (raw mode, alternate screen or inline
	// region) and must be called before any other method.
	Init() error

	// Close releases the terminal, restoring the prior screen state.
	Close() error

	// Size returns the current terminal width and height in cells.
	Size() (width, height int)

	// SetCell paints a single cell. The Model calls this once per
	// visible cell during Draw; Flush makes the frame visible.
	SetCell(x, y int, ch rune, style Style)

	// SetCursor positions the terminal's visible cursor, used to show
	// the caret in the query line.
	SetCursor(x, y int)

	// Clear blanks the entire frame buffer before a redraw.
	Clear()

	// Flush makes a frame of SetCell/SetCursor calls visible.
	Flush() error

	// PollEvent starts delivering input events on the returned channel
	// until ctx is cancelled, at which point the channel is closed.
	PollEvent(ctx context.Context) <-chan Event

	// Suspend and Resume release and reacquire the terminal around a
	// shelled-out foreground process (e.g. an edit-selected-item action).
	Suspend()
	Resume() error

	// Inject enqueues a synthetic event for delivery on PollEvent's
	// channel. The Model uses this on abort (e.g. delete-char on an empty
	// query) to push a null-key event through the same path real input
	// takes, rather than relying on Close unblocking PollEvent as a side
	// effect.
	Inject(ev Event)
}

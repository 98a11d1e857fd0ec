// Package header implements the Model's Header component: static
// decorative text lines shown between the matched-items list and the
// status line. Grounded on the teacher's config.Config header-ish static
// fields; Header.Accepts always declines, since header text is not
// editable.
package header

// Header holds the static lines printed between the selection list and
// the status line.
type Header struct {
	lines []string
}

// New creates a Header with the given lines, forwarded verbatim from the
// --header configuration option (spec.md section 6, "Header options").
func New(lines []string) *Header {
	return &Header{lines: lines}
}

// Lines returns the header's text lines.
func (h *Header) Lines() []string { return h.lines }

// IsEmpty reports whether the header has no lines, used by frame
// composition to give it zero height rather than an empty box.
func (h *Header) IsEmpty() bool { return len(h.lines) == 0 }

// Accepts always returns false: Header never claims an event for itself.
// The Model's handleAction dispatches keys without consulting it.
func (h *Header) Accepts() bool { return false }

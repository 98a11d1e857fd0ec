// Package statusline renders the Model's one-line status bar: a reading
// spinner, matched/total counts, the active matcher mode label, a
// percent-processed indicator while the matcher is still scanning, the
// multi-select count, and the current cursor position. Grounded on
// original_source/src/model.rs's Status struct and its Draw impl, with
// the transient-message overlay grounded on hub/hub.go's StatusMsg
// payload (SendStatusMsg / clearDelay).
package statusline

import (
	"fmt"
	"time"
)

// spinnerFrames mirrors original_source's SPINNERS array; spinnerPeriod
// mirrors its SPINNER_DURATION (milliseconds per frame).
var spinnerFrames = [...]rune{'-', '\\', '|', '/', '-', '\\', '|', '/'}

const spinnerPeriod = 200 * time.Millisecond

// Snapshot is the read-only view of Model state the StatusLine needs to
// render one frame; the Model fills one in fresh on every draw rather
// than the StatusLine reaching back into Model internals.
type Snapshot struct {
	Total         int
	Matched       int
	Processed     int
	MatcherActive bool
	Reading       bool
	MultiSelect   bool
	NumSelected   int
	CursorIndex   int
	MatcherLabel  string // "" for default mode, "RE" for regex mode
	InlineInfo    bool
	Elapsed       time.Duration

	// Message and Expires are not read by Render: the transient message
	// it draws is the one installed on the StatusLine with SetMessage.
	Message string
	Expires time.Time
}

// StatusLine is a pure render function plus the transient-message state
// that a full Model wires up via its event loop (a message arrives,
// gets a deadline, and a heartbeat tick clears it once expired).
type StatusLine struct {
	message string
	expires time.Time
}

// New returns an empty StatusLine.
func New() *StatusLine { return &StatusLine{} }

// SetMessage installs a transient message that replaces the computed
// status line until clearDelay elapses. A zero clearDelay means the
// message persists until explicitly replaced or cleared.
func (s *StatusLine) SetMessage(msg string, clearDelay time.Duration, now time.Time) {
	s.message = msg
	if clearDelay > 0 {
		s.expires = now.Add(clearDelay)
	} else {
		s.expires = time.Time{}
	}
}

// Tick clears an expired transient message; the Model calls this on its
// heartbeat.
func (s *StatusLine) Tick(now time.Time) {
	if s.message != "" && !s.expires.IsZero() && now.After(s.expires) {
		s.message = ""
		s.expires = time.Time{}
	}
}

// Render produces the status line's plain text for the given snapshot
// and screen width. Attribute/color application is the Terminal
// backend's job; Render only decides content and column layout, mirroring
// the column bookkeeping in original_source's Status::draw.
func (s *StatusLine) Render(snap Snapshot, width int) string {
	if s.message != "" {
		return padOrTruncate(s.message, width)
	}

	var line string
	if snap.InlineInfo {
		line += " <"
	}

	if snap.Reading {
		line += string(spinnerFrame(snap.Elapsed))
	} else {
		line += " "
	}

	line += fmt.Sprintf(" %d/%d", snap.Matched, snap.Total)
	if snap.MatcherLabel != "" {
		line += "/" + snap.MatcherLabel
	}

	if snap.MatcherActive && snap.Total > 0 && snap.Processed*20 > snap.Total {
		line += fmt.Sprintf(" (%d%%) ", snap.Processed*100/snap.Total)
	}

	if snap.MultiSelect && snap.NumSelected > 0 {
		line += fmt.Sprintf(" [%d]", snap.NumSelected)
	}

	cursor := fmt.Sprintf(" %d ", snap.CursorIndex)
	return padRight(line, width-len(cursor)) + cursor
}

func spinnerFrame(elapsed time.Duration) rune {
	idx := int(elapsed/spinnerPeriod) % len(spinnerFrames)
	if idx < 0 {
		idx = 0
	}
	return spinnerFrames[idx]
}

func padRight(s string, width int) string {
	if width <= len(s) {
		return s
	}
	for len(s) < width {
		s += " "
	}
	return s
}

func padOrTruncate(s string, width int) string {
	if width <= 0 {
		return ""
	}
	if len(s) > width {
		return s[:width]
	}
	return padRight(s, width)
}

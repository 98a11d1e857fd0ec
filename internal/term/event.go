package term

// EventType classifies a terminal event, decoupled from the backend
// library that produced it. Grounded on event.go's peco.Event/EventType.
type EventType uint8

const (
	EventKey EventType = iota
	EventResize
	EventError
)

// Key is a non-printable key code (arrows, enter, ctrl-combinations).
// The zero value, KeyNone, means the event carries a printable rune in
// Ch instead.
type Key int

const (
	KeyNone Key = iota
	KeyEnter
	KeyEsc
	KeyTab
	KeyBacktab
	KeyBackspace
	KeyDelete
	KeyUp
	KeyDown
	KeyLeft
	KeyRight
	KeyHome
	KeyEnd
	KeyPgUp
	KeyPgDn
	KeyCtrlA
	KeyCtrlC
	KeyCtrlE
	KeyCtrlK
	KeyCtrlJ
	KeyCtrlR
	KeyCtrlU
	KeyCtrlW
)

// Event is the Model's terminal-input vocabulary, independent of tcell
// (or any other backend)'s own event types.
type Event struct {
	Type EventType
	Key  Key
	Ch   rune
	Err  error
}

package model

import "github.com/mattn-fsel/fsel/internal/term"

// action is the Model's internal vocabulary of key-triggered behaviors,
// decoupled from the raw terminal key that triggered it. Grounded on
// keymap.go's Keymap (raw key -> peco.Action name) idiom, collapsed to a
// single translation function since the Model doesn't expose user-remappable
// bindings the way peco's config.Keymap does.
type action int

const (
	actionNone action = iota
	actionAccept
	actionAbort
	actionDeleteCharOrEOF
	actionDeleteCharForward
	actionTogglePreview
	actionRotateMatcherMode
	actionToggleSelectCurrent
	actionToggleFocusField
	actionCursorUp
	actionCursorDown
	actionPageUp
	actionPageDown
	actionCaretLeft
	actionCaretRight
	actionCaretHome
	actionCaretEnd
	actionClearQuery
	actionInsertRune
)

// translate maps a raw terminal event to an action. Ch is only meaningful
// when the returned action is actionInsertRune.
func translate(ev term.Event) (action, rune) {
	if ev.Type != term.EventKey {
		return actionNone, 0
	}

	if ev.Key == term.KeyNone && ev.Ch != 0 {
		return actionInsertRune, ev.Ch
	}

	switch ev.Key {
	case term.KeyEnter, term.KeyCtrlJ:
		return actionAccept, 0
	case term.KeyEsc, term.KeyCtrlC:
		return actionAbort, 0
	case term.KeyBackspace:
		return actionDeleteCharOrEOF, 0
	case term.KeyDelete:
		return actionDeleteCharForward, 0
	case term.KeyTab:
		return actionToggleSelectCurrent, 0
	case term.KeyBacktab:
		return actionToggleFocusField, 0
	case term.KeyCtrlR:
		return actionRotateMatcherMode, 0
	case term.KeyUp:
		return actionCursorUp, 0
	case term.KeyDown:
		return actionCursorDown, 0
	case term.KeyPgUp:
		return actionPageUp, 0
	case term.KeyPgDn:
		return actionPageDown, 0
	case term.KeyLeft:
		return actionCaretLeft, 0
	case term.KeyRight:
		return actionCaretRight, 0
	case term.KeyHome, term.KeyCtrlA:
		return actionCaretHome, 0
	case term.KeyEnd, term.KeyCtrlE:
		return actionCaretEnd, 0
	case term.KeyCtrlU:
		return actionClearQuery, 0
	case term.KeyCtrlK:
		return actionTogglePreview, 0
	default:
		return actionNone, 0
	}
}

// acceptLabel names the specific key that triggered an accept, so the
// Result can report which binding the user invoked. Grounded on
// model.rs's Event::EvActAccept(Option<String>) carrying a key label.
func acceptLabel(ev term.Event) string {
	switch ev.Key {
	case term.KeyCtrlJ:
		return "ctrl-j"
	default:
		return "enter"
	}
}

package model

import (
	"context"

	"github.com/mattn-fsel/fsel/internal/term"
)

// handleAction applies one translated action to the Model's sub-components
// and reports whether the event loop should stop (accept or abort), along
// with the Result/error to return in that case. Mirrors the
// chain-of-responsibility shape of model.rs's dispatch section (Header
// never claims a key; Query and Selection claim the keys relevant to
// them), collapsed into a single switch since the Model here owns the
// translation step instead of delegating accept_event/handle to each
// component.
func (m *Model) handleAction(ctx context.Context, act action, ch rune, ev term.Event, clearStrategy *ClearStrategy) (*Result, bool, error) {
	switch act {
	case actionAccept:
		return &Result{
			Items:     m.selection.SelectedItems(),
			Query:     m.query.Filter().String(),
			Command:   m.readerCommand(),
			AcceptKey: acceptLabel(ev),
		}, true, nil

	case actionAbort:
		return nil, true, ErrAborted

	case actionDeleteCharOrEOF:
		field := m.query.Active()
		if field.Len() == 0 {
			m.term.Inject(term.Event{Type: term.EventKey, Key: term.KeyNone})
			return nil, true, ErrAborted
		}
		field.DeleteRuneBeforeCaret()

	case actionDeleteCharForward:
		m.query.Active().DeleteRuneAtCaret()

	case actionTogglePreview:
		m.previewHidden = !m.previewHidden

	case actionRotateMatcherMode:
		m.matcherMode = m.matcherMode.Rotate()
		*clearStrategy = Clear
		m.pool.Reset()
		m.restartMatcher(ctx)

	case actionToggleSelectCurrent:
		m.selection.ToggleCurrent()

	case actionToggleFocusField:
		if m.query.Active() == m.query.Command() {
			m.query.FocusFilter()
		} else {
			m.query.FocusCommand()
		}

	case actionCursorUp:
		m.selection.MoveCursor(-1)

	case actionCursorDown:
		m.selection.MoveCursor(1)

	case actionPageUp:
		m.selection.MoveCursor(-m.pageSize())

	case actionPageDown:
		m.selection.MoveCursor(m.pageSize())

	case actionCaretLeft:
		field := m.query.Active()
		field.SetCaretPos(field.CaretPos() - 1)

	case actionCaretRight:
		field := m.query.Active()
		field.SetCaretPos(field.CaretPos() + 1)

	case actionCaretHome:
		m.query.Active().SetCaretPos(0)

	case actionCaretEnd:
		field := m.query.Active()
		field.SetCaretPos(field.Len())

	case actionClearQuery:
		m.query.Active().Reset()

	case actionInsertRune:
		m.query.Active().InsertRuneAtCaret(ch)
	}

	return nil, false, nil
}

func (m *Model) pageSize() int {
	if h := m.lastFrame.Selection.H; h > 1 {
		return h
	}
	return 10
}

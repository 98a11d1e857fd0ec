package term

import (
	"context"
	"fmt"
	"sync"

	"github.com/gdamore/tcell/v2"
)

// TcellTerminal is the default Terminal backend, grounded on
// screen_inline.go's InlineScreen: a tcell.Screen wrapped with a mutex so
// Draw (from the event loop goroutine) and PollEvent (its own goroutine)
// never race on the handle.
type TcellTerminal struct {
	mutex  sync.Mutex
	screen tcell.Screen
}

// NewTcellTerminal returns an unopened Terminal; call Init before use.
func NewTcellTerminal() *TcellTerminal {
	return &TcellTerminal{}
}

func (t *TcellTerminal) Init() error {
	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("failed to create tcell screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("failed to initialize tcell screen: %w", err)
	}
	t.mutex.Lock()
	t.screen = screen
	t.mutex.Unlock()
	return nil
}

func (t *TcellTerminal) Close() error {
	t.mutex.Lock()
	scr := t.screen
	t.screen = nil
	t.mutex.Unlock()
	if scr != nil {
		scr.Fini()
	}
	return nil
}

func (t *TcellTerminal) Size() (int, int) {
	t.mutex.Lock()
	defer t.mutex.Unlock()
	if t.screen == nil {
		return 0, 0
	}
	return t.screen.Size()
}

func (t *TcellTerminal) SetCell(x, y int, ch rune, style Style) {
	t.mutex.Lock()
	defer t.mutex.Unlock()
	if t.screen == nil {
		return
	}
	t.screen.SetContent(x, y, ch, nil, styleToTcell(style))
}

func (t *TcellTerminal) SetCursor(x, y int) {
	t.mutex.Lock()
	defer t.mutex.Unlock()
	if t.screen == nil {
		return
	}
	t.screen.ShowCursor(x, y)
}

func (t *TcellTerminal) Clear() {
	t.mutex.Lock()
	defer t.mutex.Unlock()
	if t.screen == nil {
		return
	}
	t.screen.Clear()
}

func (t *TcellTerminal) Flush() error {
	t.mutex.Lock()
	defer t.mutex.Unlock()
	if t.screen == nil {
		return nil
	}
	t.screen.Show()
	return nil
}

func (t *TcellTerminal) PollEvent(ctx context.Context) <-chan Event {
	out := make(chan Event)
	go func() {
		defer close(out)
		for {
			t.mutex.Lock()
			scr := t.screen
			t.mutex.Unlock()
			if scr == nil {
				return
			}

			ev := scr.PollEvent()
			if ev == nil {
				return
			}

			select {
			case <-ctx.Done():
				return
			case out <- tcellEventToEvent(ev):
			}
		}
	}()
	return out
}

// Inject posts ev to the underlying screen as a tcell interrupt event, so
// it surfaces from the same scr.PollEvent() call real input does rather
// than needing a separate channel merge.
func (t *TcellTerminal) Inject(ev Event) {
	t.mutex.Lock()
	scr := t.screen
	t.mutex.Unlock()
	if scr == nil {
		return
	}
	_ = scr.PostEvent(tcell.NewEventInterrupt(ev))
}

func (t *TcellTerminal) Suspend() {
	t.mutex.Lock()
	defer t.mutex.Unlock()
	if t.screen != nil {
		t.screen.Suspend()
	}
}

func (t *TcellTerminal) Resume() error {
	t.mutex.Lock()
	defer t.mutex.Unlock()
	if t.screen == nil {
		return nil
	}
	return t.screen.Resume()
}

func styleToTcell(s Style) tcell.Style {
	style := tcell.StyleDefault
	if s.Fg != ColorDefault {
		style = style.Foreground(tcell.Color(s.Fg))
	}
	if s.Bg != ColorDefault {
		style = style.Background(tcell.Color(s.Bg))
	}
	if s.Bold {
		style = style.Bold(true)
	}
	return style
}

func tcellEventToEvent(ev tcell.Event) Event {
	switch e := ev.(type) {
	case *tcell.EventInterrupt:
		if injected, ok := e.Data().(Event); ok {
			return injected
		}
		return Event{Type: EventKey, Key: KeyNone}
	case *tcell.EventResize:
		return Event{Type: EventResize}
	case *tcell.EventKey:
		if k, ok := tcellKeyMap[e.Key()]; ok {
			return Event{Type: EventKey, Key: k}
		}
		if e.Key() == tcell.KeyRune {
			return Event{Type: EventKey, Ch: e.Rune()}
		}
		return Event{Type: EventKey, Key: KeyNone}
	default:
		return Event{Type: EventKey, Key: KeyNone}
	}
}

var tcellKeyMap = map[tcell.Key]Key{
	tcell.KeyEnter:      KeyEnter,
	tcell.KeyEsc:        KeyEsc,
	tcell.KeyTab:        KeyTab,
	tcell.KeyBacktab:    KeyBacktab,
	tcell.KeyBackspace:  KeyBackspace,
	tcell.KeyBackspace2: KeyBackspace,
	tcell.KeyDelete:     KeyDelete,
	tcell.KeyUp:         KeyUp,
	tcell.KeyDown:       KeyDown,
	tcell.KeyLeft:       KeyLeft,
	tcell.KeyRight:      KeyRight,
	tcell.KeyHome:       KeyHome,
	tcell.KeyEnd:        KeyEnd,
	tcell.KeyPgUp:       KeyPgUp,
	tcell.KeyPgDn:       KeyPgDn,
	tcell.KeyCtrlA:      KeyCtrlA,
	tcell.KeyCtrlC:      KeyCtrlC,
	tcell.KeyCtrlE:      KeyCtrlE,
	tcell.KeyCtrlK:      KeyCtrlK,
	tcell.KeyCtrlJ:      KeyCtrlJ,
	tcell.KeyCtrlR:      KeyCtrlR,
	tcell.KeyCtrlU:      KeyCtrlU,
	tcell.KeyCtrlW:      KeyCtrlW,
}

package model

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/mattn-fsel/fsel/internal/appconfig"
	"github.com/mattn-fsel/fsel/internal/term"
)

// fakeTerminal is a minimal in-memory Terminal that feeds a scripted
// sequence of events and discards all drawing, so the event loop can be
// exercised without a real tty.
type fakeTerminal struct {
	events []term.Event
	delay  time.Duration
}

func (f *fakeTerminal) Init() error            { return nil }
func (f *fakeTerminal) Close() error           { return nil }
func (f *fakeTerminal) Size() (int, int)       { return 80, 24 }
func (f *fakeTerminal) SetCell(int, int, rune, term.Style) {}
func (f *fakeTerminal) SetCursor(int, int)     {}
func (f *fakeTerminal) Clear()                 {}
func (f *fakeTerminal) Flush() error           { return nil }
func (f *fakeTerminal) Suspend()               {}
func (f *fakeTerminal) Resume() error          { return nil }
func (f *fakeTerminal) Inject(term.Event)      {}

func (f *fakeTerminal) PollEvent(ctx context.Context) <-chan term.Event {
	out := make(chan term.Event)
	go func() {
		defer close(out)
		for _, ev := range f.events {
			if f.delay > 0 {
				time.Sleep(f.delay)
			}
			select {
			case <-ctx.Done():
				return
			case out <- ev:
			}
		}
		<-ctx.Done()
	}()
	return out
}

func testConfig() *appconfig.Config {
	cfg := appconfig.New()
	cfg.SourceCommand = "true"
	return cfg
}

func TestRunAbortsOnEsc(t *testing.T) {
	t.Parallel()

	ft := &fakeTerminal{events: []term.Event{{Type: term.EventKey, Key: term.KeyEsc}}}
	m := New(testConfig(), ft)

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	_, err := m.Run(ctx)
	require.ErrorIs(t, err, ErrAborted)
}

func TestRunAbortsOnBackspaceWithEmptyQuery(t *testing.T) {
	t.Parallel()

	ft := &fakeTerminal{events: []term.Event{{Type: term.EventKey, Key: term.KeyBackspace}}}
	m := New(testConfig(), ft)

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	_, err := m.Run(ctx)
	require.ErrorIs(t, err, ErrAborted)
}

func TestRunInsertsRuneIntoFilterQuery(t *testing.T) {
	t.Parallel()

	ft := &fakeTerminal{
		delay: 5 * time.Millisecond,
		events: []term.Event{
			{Type: term.EventKey, Ch: 'a'},
			{Type: term.EventKey, Key: term.KeyEnter},
		},
	}
	m := New(testConfig(), ft)

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	result, err := m.Run(ctx)
	require.NoError(t, err)
	require.Equal(t, "a", result.Query)
	require.Equal(t, "enter", result.AcceptKey)
}

func TestRunAcceptKeyLabelsCtrlJDistinctly(t *testing.T) {
	t.Parallel()

	ft := &fakeTerminal{events: []term.Event{{Type: term.EventKey, Key: term.KeyCtrlJ}}}
	m := New(testConfig(), ft)

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	result, err := m.Run(ctx)
	require.NoError(t, err)
	require.Equal(t, "ctrl-j", result.AcceptKey)
}

func TestRotateMatcherModeTogglesLabel(t *testing.T) {
	t.Parallel()

	ft := &fakeTerminal{events: []term.Event{
		{Type: term.EventKey, Key: term.KeyCtrlR},
		{Type: term.EventKey, Key: term.KeyEsc},
	}}
	m := New(testConfig(), ft)
	require.Equal(t, "", m.matcherMode.Label())

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	_, _ = m.Run(ctx)

	require.Equal(t, "RE", m.matcherMode.Label())
}

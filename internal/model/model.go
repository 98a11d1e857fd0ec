// Package model implements the Model: the event-driven coordination
// kernel that multiplexes a Reader, a Matcher, terminal input, and a
// Previewer behind one draw loop. Grounded on original_source/src/model.rs's
// Model::start, translated into a single goroutine's select loop in the
// idiom of peco's component structs (Reader/Matcher/Selection/Query as
// independent packages) rather than skim's monolithic module.
package model

import (
	"context"
	"errors"
	"time"

	"github.com/lestrrat-go/pdebug"

	"github.com/mattn-fsel/fsel/internal/appconfig"
	"github.com/mattn-fsel/fsel/internal/header"
	"github.com/mattn-fsel/fsel/internal/item"
	"github.com/mattn-fsel/fsel/internal/itempool"
	"github.com/mattn-fsel/fsel/internal/matcher"
	"github.com/mattn-fsel/fsel/internal/previewer"
	"github.com/mattn-fsel/fsel/internal/query"
	"github.com/mattn-fsel/fsel/internal/reader"
	"github.com/mattn-fsel/fsel/internal/selection"
	"github.com/mattn-fsel/fsel/internal/statusline"
	"github.com/mattn-fsel/fsel/internal/term"
)

// heartbeatInterval mirrors original_source's REFRESH_DURATION: how often
// the Model checks on the Matcher/Reader workers and redraws even absent
// new terminal input (so the spinner animates and percent-processed ticks
// forward).
const heartbeatInterval = 50 * time.Millisecond

// ErrAborted is returned by Run when the user cancels the session
// (Esc/Ctrl-C, or backspace on an empty query) rather than accepting a
// selection.
var ErrAborted = errors.New("model: aborted")

// Result is what Run hands back to the caller on a normal accept.
type Result struct {
	Items     []*item.Item
	Query     string
	Command   string
	AcceptKey string
}

// Model owns every sub-component and drives the single event loop that
// multiplexes them.
type Model struct {
	cfg  *appconfig.Config
	term term.Terminal

	idgen     item.IDGenerator
	pool      *itempool.Pool
	query     *query.Query
	selection *selection.Selection
	header    *header.Header
	previewer *previewer.Previewer
	status    *statusline.StatusLine

	matcherMode matcher.Mode
	readerCtl   *reader.Control
	matcherCtl  *matcher.Control

	previewHidden bool
	startTime     time.Time
	lastFrame     term.Frame
	baseCmd       string
}

// New constructs a Model from cfg, wired to terminal t. Call Run to start
// the Reader and the event loop.
func New(cfg *appconfig.Config, t term.Terminal) *Model {
	var prev *previewer.Previewer
	if cfg.PreviewCommand != "" {
		prev = previewer.New(cfg.Shell, cfg.PreviewCommand, cfg.Delimiter)
	}

	return &Model{
		cfg:           cfg,
		term:          t,
		idgen:         item.NewIDGenerator(),
		pool:          itempool.New(),
		query:         query.New("", ""),
		selection:     selection.New(cfg.MultiSelect),
		header:        header.New(cfg.HeaderLines),
		previewer:     prev,
		status:        statusline.New(),
		previewHidden: cfg.PreviewWindow.Hidden,
		baseCmd:       cfg.ResolveSourceCommand(),
	}
}

// Run acquires the terminal, starts the Reader and the ID generator, and
// runs the event loop until the user accepts or aborts, or ctx is
// cancelled. It always releases the terminal and kills its workers before
// returning.
func (m *Model) Run(ctx context.Context) (res *Result, err error) {
	if pdebug.Enabled {
		g := pdebug.Marker("Model.Run").BindError(&err)
		defer g.End()
	}

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	if err := m.term.Init(); err != nil {
		return nil, err
	}
	defer m.term.Close()

	if m.previewer != nil {
		defer m.previewer.Close()
	}

	go m.idgen.Run(ctx)

	m.startTime = time.Now()

	cmd := m.readerCommand()
	queryStr := m.query.Filter().String()
	clearStrategy := DontClear

	m.readerCtl = reader.Run(ctx, m.cfg.Shell, cmd, m.idgen, m.cfg.EnableNullSep, m.cfg.EnableANSI)
	m.restartMatcher(ctx)

	events := m.term.PollEvent(ctx)
	ticker := time.NewTicker(heartbeatInterval)
	defer ticker.Stop()

	m.redraw()

	for {
		select {
		case <-ctx.Done():
			m.killWorkers()
			return nil, ctx.Err()

		case ev, ok := <-events:
			if !ok {
				events = nil
				continue
			}
			if ev.Type == term.EventError {
				continue
			}

			act, ch := translate(ev)
			res, done, err := m.handleAction(ctx, act, ch, ev, &clearStrategy)
			if done {
				m.killWorkers()
				return res, err
			}
			m.syncReaderAndMatcher(ctx, &clearStrategy, &cmd, &queryStr)

		case <-ticker.C:
			m.heartbeat(ctx, &clearStrategy)
		}

		m.updatePreview()
		m.redraw()
	}
}

// SetInitialFilterQuery seeds the filter-query field before Run starts,
// so the first Matcher run scores against it instead of an empty query.
func (m *Model) SetInitialFilterQuery(q string) {
	m.query.Filter().Set(q)
}

// SetInitialCommandQuery seeds the command-query field before Run starts,
// overriding the resolved base reader command from the first launch.
func (m *Model) SetInitialCommandQuery(q string) {
	m.query.Command().Set(q)
}

func (m *Model) killWorkers() {
	if m.readerCtl != nil {
		m.readerCtl.Kill()
		m.readerCtl = nil
	}
	if m.matcherCtl != nil {
		m.matcherCtl.Kill()
		m.matcherCtl = nil
	}
}

// readerCommand resolves the command currently driving the Reader: the
// user-editable command-query field overrides the configured/resolved
// base command when non-empty.
func (m *Model) readerCommand() string {
	if s := m.query.Command().String(); s != "" {
		return s
	}
	return m.baseCmd
}

func (m *Model) restartMatcher(ctx context.Context) {
	if pdebug.Enabled {
		g := pdebug.Marker("Model.restartMatcher")
		defer g.End()
	}
	if m.matcherCtl != nil {
		m.matcherCtl.Kill()
	}
	m.matcherCtl = matcher.Run(ctx, m.query.Filter().String(), m.pool, m.matcherMode)
}

// heartbeat drains a finished Matcher into the Selection under the
// pending ClearStrategy. Then, while no Matcher is running, it pulls any
// newly read items into the pool and restarts the Matcher if there were
// any or the Reader is still running, so the Reader's last batch is
// matched too. It also expires the status line's transient message.
// Grounded on model.rs's EvHeartBeat arm.
func (m *Model) heartbeat(ctx context.Context, clearStrategy *ClearStrategy) {
	if m.matcherCtl != nil && m.matcherCtl.Stopped() {
		matches := m.matcherCtl.IntoItems()
		m.matcherCtl = nil

		switch *clearStrategy {
		case Clear:
			m.selection.Clear()
			*clearStrategy = DontClear
		case ClearIfNotNull:
			if len(matches) > 0 {
				m.selection.Clear()
				*clearStrategy = DontClear
			}
		case DontClear:
		}
		m.selection.AppendSorted(matches)
	}

	if m.readerCtl != nil && m.matcherCtl == nil {
		// Read the processed flag before Take, so items staged just
		// before the Reader finished are still picked up below.
		processed := m.readerCtl.IsProcessed()
		newItems := m.readerCtl.Take()
		if len(newItems) > 0 {
			m.pool.Append(newItems)
		}
		if !processed || len(newItems) > 0 {
			m.restartMatcher(ctx)
		}
	}

	m.status.Tick(time.Now())
}

// syncReaderAndMatcher re-derives the effective reader command and filter
// query after a key was dispatched to the Query field, restarting the
// Reader (on a command change) or just the Matcher (on a query change).
// Grounded on model.rs's post-dispatch cmd/query comparison.
func (m *Model) syncReaderAndMatcher(ctx context.Context, clearStrategy *ClearStrategy, cmd, queryStr *string) {
	newCmd := m.readerCommand()
	if newCmd != *cmd {
		*cmd = newCmd
		if m.readerCtl != nil {
			m.readerCtl.Kill()
		}
		if m.matcherCtl != nil {
			m.matcherCtl.Kill()
			m.matcherCtl = nil
		}
		m.pool.Clear()
		*clearStrategy = ClearIfNotNull
		m.readerCtl = reader.Run(ctx, m.cfg.Shell, newCmd, m.idgen, m.cfg.EnableNullSep, m.cfg.EnableANSI)
		m.restartMatcher(ctx)
		*queryStr = m.query.Filter().String()
		return
	}

	newQuery := m.query.Filter().String()
	if newQuery != *queryStr {
		*queryStr = newQuery
		*clearStrategy = Clear
		m.pool.Reset()
		m.restartMatcher(ctx)
	}
}

func (m *Model) updatePreview() {
	if m.previewer == nil || m.previewHidden {
		return
	}
	if it := m.selection.CurrentItem(); it != nil {
		m.previewer.OnItemChange(it)
	}
}

func (m *Model) statusSnapshot() statusline.Snapshot {
	total := m.pool.Len()
	matched := m.selection.Len()
	processed := total
	matcherActive := m.matcherCtl != nil
	if m.matcherCtl != nil {
		matched += m.matcherCtl.NumMatched()
		processed = m.matcherCtl.NumProcessed()
	}
	reading := m.readerCtl != nil && !m.readerCtl.IsProcessed()

	return statusline.Snapshot{
		Total:         total,
		Matched:       matched,
		Processed:     processed,
		MatcherActive: matcherActive,
		Reading:       reading,
		MultiSelect:   m.selection.IsMultiSelect(),
		NumSelected:   m.selection.NumChosen(),
		CursorIndex:   m.selection.CursorIndex(),
		MatcherLabel:  m.matcherMode.Label(),
		InlineInfo:    m.cfg.InlineInfo,
		Elapsed:       time.Since(m.startTime),
	}
}

package model

import (
	"strings"

	runewidth "github.com/mattn/go-runewidth"

	"github.com/mattn-fsel/fsel/internal/term"
)

// styleDefault, styleCursor, and styleMatch are the Model's built-in
// rendering styles. Config.Theme is not consulted; these give the Terminal backend
// something concrete to paint while still exercising the Style/Color
// plumbing end to end.
var (
	styleDefault = term.Style{Fg: term.ColorDefault, Bg: term.ColorDefault}
	styleCursor  = term.Style{Fg: term.Color(0), Bg: term.Color(6), Bold: true}
	styleMatch   = term.Style{Fg: term.Color(2), Bg: term.ColorDefault, Bold: true}
	styleInfo    = term.Style{Fg: term.Color(3), Bg: term.ColorDefault}
)

// drawText paints s truncated/padded to w cells, honoring display width
// (wide runes, combining marks) via go-runewidth the way ui/style.go and
// peco's screen layer size every printed string.
func drawText(t term.Terminal, rect term.Rect, row int, s string, style term.Style) {
	if row < 0 || row >= rect.H {
		return
	}
	y := rect.Y + row
	col := 0
	for _, r := range s {
		w := runewidth.RuneWidth(r)
		if w == 0 {
			continue
		}
		if col+w > rect.W {
			break
		}
		t.SetCell(rect.X+col, y, r, style)
		col += w
	}
	for ; col < rect.W; col++ {
		t.SetCell(rect.X+col, y, ' ', style)
	}
}

// drawMatchedLine paints one selection-list row, bolding the byte ranges
// of text the Matcher flagged and painting the whole row under the cursor
// in the cursor style.
func drawMatchedLine(t term.Terminal, rect term.Rect, row int, text string, indices [][]int, underCursor bool) {
	if row < 0 || row >= rect.H {
		return
	}
	base := styleDefault
	if underCursor {
		base = styleCursor
	}

	highlighted := make([]bool, len(text))
	for _, pair := range indices {
		if len(pair) != 2 {
			continue
		}
		start, end := pair[0], pair[1]
		for i := start; i < end && i < len(highlighted); i++ {
			if i >= 0 {
				highlighted[i] = true
			}
		}
	}

	y := rect.Y + row
	col := 0
	for i, r := range text {
		w := runewidth.RuneWidth(r)
		if w == 0 {
			continue
		}
		if col+w > rect.W {
			break
		}
		style := base
		if highlighted[i] && !underCursor {
			style = styleMatch
		}
		t.SetCell(rect.X+col, y, r, style)
		col += w
	}
	for ; col < rect.W; col++ {
		t.SetCell(rect.X+col, y, ' ', base)
	}
}

// redraw composes a Frame from the current screen size and config, then
// paints every component into it. Grounded on original_source's Draw impl
// for Model, translated from its Win/VSplit tree into direct SetCell calls
// against the layout Rects term.Compose already resolved.
func (m *Model) redraw() {
	width, height := m.term.Size()
	if width <= 0 || height <= 0 {
		return
	}

	showPreview := !m.previewHidden && m.previewer != nil
	frame := term.Compose(width, height, m.cfg.Reverse, m.cfg.InlineInfo, len(m.header.Lines()), m.cfg.PreviewWindow, showPreview)
	m.lastFrame = frame

	m.term.Clear()

	m.drawSelection(frame.Selection)
	m.drawHeader(frame.Header)
	m.drawStatus(frame.Status)
	m.drawQuery(frame.Query)
	if frame.HasPreview {
		m.drawBorder(frame.Border, frame.BorderVertical)
		m.drawPreview(frame.Preview)
	}

	_ = m.term.Flush()
}

func (m *Model) drawSelection(rect term.Rect) {
	if rect.H <= 0 {
		return
	}
	matches := m.selection.Matches()
	cursor := m.selection.CursorIndex()

	top := 0
	if cursor >= rect.H {
		top = cursor - rect.H + 1
	}

	for row := 0; row < rect.H; row++ {
		idx := top + row
		if idx >= len(matches) {
			drawText(m.term, rect, row, "", styleDefault)
			continue
		}
		match := matches[idx]
		drawMatchedLine(m.term, rect, row, match.Item.DisplayString(), match.Indices, idx == cursor)
	}
}

func (m *Model) drawHeader(rect term.Rect) {
	if rect.H <= 0 {
		return
	}
	lines := m.header.Lines()
	for row := 0; row < rect.H; row++ {
		if row < len(lines) {
			drawText(m.term, rect, row, lines[row], styleInfo)
		} else {
			drawText(m.term, rect, row, "", styleDefault)
		}
	}
}

func (m *Model) drawStatus(rect term.Rect) {
	if rect.H <= 0 {
		return
	}
	snap := m.statusSnapshot()
	line := m.status.Render(snap, rect.W)
	drawText(m.term, rect, 0, line, styleInfo)
}

func (m *Model) drawQuery(rect term.Rect) {
	if rect.H <= 0 {
		return
	}
	field := m.query.Active()
	prompt := "QUERY> "
	if m.query.Active() == m.query.Command() {
		prompt = "CMD> "
	}
	line := prompt + field.String()
	drawText(m.term, rect, 0, line, styleDefault)
	m.term.SetCursor(rect.X+len([]rune(prompt))+field.CaretPos(), rect.Y)
}

// drawBorder paints the single-edge line between the main pane and the
// preview pane, on whichever side term.Compose carved it out of the
// preview's own rect (model.rs's border_left/border_right/border_top/
// border_bottom). vertical picks a box-drawing rune appropriate to the
// border's orientation: a column for left/right preview placement, a row
// for above/below.
func (m *Model) drawBorder(rect term.Rect, vertical bool) {
	if rect.W <= 0 || rect.H <= 0 {
		return
	}
	ch := rune('─')
	if vertical {
		ch = '│'
	}
	for row := 0; row < rect.H; row++ {
		for col := 0; col < rect.W; col++ {
			m.term.SetCell(rect.X+col, rect.Y+row, ch, styleDefault)
		}
	}
}

func (m *Model) drawPreview(rect term.Rect) {
	if rect.H <= 0 || m.previewer == nil {
		return
	}
	lines := strings.Split(m.previewer.Canvas(), "\n")
	for row := 0; row < rect.H; row++ {
		if row < len(lines) {
			drawText(m.term, rect, row, lines[row], styleDefault)
		} else {
			drawText(m.term, rect, row, "", styleDefault)
		}
	}
}

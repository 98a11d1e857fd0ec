package term

import "github.com/mattn-fsel/fsel/internal/appconfig"

// Rect is an axis-aligned region of the screen, in cells.
type Rect struct {
	X, Y, W, H int
}

// Frame is the resolved set of regions the Model draws into on one
// pass, produced by Compose from the current screen size and config.
// Grounded on original_source/src/model.rs's Draw impl, which builds the
// same win_selection/win_header/win_status/win_query/win_preview split
// tree (VSplit of Win, HSplit for inline_info and for the preview pane)
// every frame rather than caching it.
type Frame struct {
	Selection Rect
	Header    Rect
	Status    Rect
	Query     Rect
	Preview   Rect
	HasPreview bool

	// Border is the single row/column of cells drawn on the preview
	// pane's edge adjacent to the main pane (spec.md section 4.5 item 3;
	// grounded on model.rs's border_left/border_right/border_top/
	// border_bottom, chosen by preview direction: Right->left border,
	// Left->right border, Up->bottom border, Down->top border). It is
	// carved out of the preview pane's own rect, not the main pane's.
	Border Rect
	// BorderVertical is true when Border is a single column (preview to
	// the left or right of the main pane) and false when it is a single
	// row (preview above or below).
	BorderVertical bool
}

// Compose lays out a Frame for a width x height screen. reverse flips
// the query/status/header/selection stacking order (bottom-up instead of
// top-down); inlineInfo merges the status line onto the query row;
// headerLines is the header's line count (0 hides it); preview carries
// the preview pane's direction/size/hidden state.
func Compose(width, height int, reverse, inlineInfo bool, headerLines int, preview appconfig.PreviewWindow, showPreview bool) Frame {
	mainW, mainH := width, height
	var previewRect, borderRect Rect
	var borderVertical bool
	var previewSize int
	hasPreview := showPreview && !preview.Hidden

	if hasPreview {
		previewSize = resolveSize(preview.Size, width, height, preview.Direction)
		switch preview.Direction {
		case appconfig.DirectionRight:
			previewRect = Rect{X: width - previewSize, Y: 0, W: previewSize, H: height}
			mainW = width - previewSize
			borderRect = Rect{X: previewRect.X, Y: 0, W: 1, H: height}
			borderVertical = true
			previewRect.X++
			previewRect.W--
		case appconfig.DirectionLeft:
			previewRect = Rect{X: 0, Y: 0, W: previewSize, H: height}
			mainW = width - previewSize
			borderVertical = true
			previewRect.W--
			borderRect = Rect{X: previewRect.W, Y: 0, W: 1, H: height}
		case appconfig.DirectionUp:
			previewRect = Rect{X: 0, Y: 0, W: width, H: previewSize}
			mainH = height - previewSize
			previewRect.H--
			borderRect = Rect{X: 0, Y: previewRect.H, W: width, H: 1}
		case appconfig.DirectionDown:
			previewRect = Rect{X: 0, Y: height - previewSize, W: width, H: previewSize}
			mainH = height - previewSize
			borderRect = Rect{X: 0, Y: previewRect.Y, W: width, H: 1}
			previewRect.Y++
			previewRect.H--
		}
		if previewRect.W < 0 {
			previewRect.W = 0
		}
		if previewRect.H < 0 {
			previewRect.H = 0
		}
	}

	mainX, mainY := 0, 0
	if hasPreview && preview.Direction == appconfig.DirectionLeft {
		mainX = previewSize
	}
	if hasPreview && preview.Direction == appconfig.DirectionUp {
		mainY = previewSize
	}

	hdrH := 0
	if headerLines > 0 {
		hdrH = headerLines
	}

	queryStatusRows := 2
	if inlineInfo {
		queryStatusRows = 1
	}
	selH := mainH - hdrH - queryStatusRows
	if selH < 0 {
		selH = 0
	}

	var f Frame
	f.HasPreview = hasPreview
	f.Preview = previewRect
	f.Border = borderRect
	f.BorderVertical = borderVertical

	if !reverse {
		y := mainY
		f.Selection = Rect{X: mainX, Y: y, W: mainW, H: selH}
		y += selH
		if hdrH > 0 {
			f.Header = Rect{X: mainX, Y: y, W: mainW, H: hdrH}
			y += hdrH
		}
		if inlineInfo {
			f.Query = Rect{X: mainX, Y: y, W: mainW, H: 1}
			f.Status = f.Query
		} else {
			f.Status = Rect{X: mainX, Y: y, W: mainW, H: 1}
			y++
			f.Query = Rect{X: mainX, Y: y, W: mainW, H: 1}
		}
	} else {
		y := mainY
		if inlineInfo {
			f.Query = Rect{X: mainX, Y: y, W: mainW, H: 1}
			f.Status = f.Query
			y++
		} else {
			f.Query = Rect{X: mainX, Y: y, W: mainW, H: 1}
			y++
			f.Status = Rect{X: mainX, Y: y, W: mainW, H: 1}
			y++
		}
		if hdrH > 0 {
			f.Header = Rect{X: mainX, Y: y, W: mainW, H: hdrH}
			y += hdrH
		}
		f.Selection = Rect{X: mainX, Y: y, W: mainW, H: selH}
	}

	return f
}

func resolveSize(s appconfig.Size, width, height int, dir appconfig.Direction) int {
	axis := width
	if dir == appconfig.DirectionUp || dir == appconfig.DirectionDown {
		axis = height
	}
	if s.IsPercent {
		v := axis * s.Value / 100
		if v < 1 {
			v = 1
		}
		return v
	}
	if s.Value > axis {
		return axis
	}
	return s.Value
}


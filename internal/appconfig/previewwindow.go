// Package appconfig holds the Model's configuration surface: delimiter,
// layout flags, preview window spec, and the default-reader-command
// resolution rule. Grounded on config/height.go's HeightSpec parser (a
// colon/percent-suffix mini-language) and on original_source/src/model.rs's
// Model::parse_preview, which spec.md section 6 describes but doesn't
// itself define token-by-token.
package appconfig

import (
	"fmt"
	"strconv"
	"strings"
)

// Direction is which side of the screen the preview pane attaches to.
type Direction int

const (
	DirectionRight Direction = iota
	DirectionUp
	DirectionDown
	DirectionLeft
)

// Size is either a percentage of the split axis or a fixed cell count,
// mirroring config.HeightSpec's Value/IsPercent pair.
type Size struct {
	Value     int
	IsPercent bool
}

// PreviewWindow is the parsed form of the --preview-window option.
type PreviewWindow struct {
	Direction Direction
	Size      Size
	Wrap      bool
	Hidden    bool
}

// DefaultPreviewWindow matches spec.md section 6's documented default:
// right, 50%, visible, no-wrap.
func DefaultPreviewWindow() PreviewWindow {
	return PreviewWindow{
		Direction: DirectionRight,
		Size:      Size{Value: 50, IsPercent: true},
	}
}

// ParsePreviewWindow parses a colon-separated, order-insensitive spec:
// {UP|DOWN|LEFT|RIGHT}, HIDDEN, WRAP, and a leading-digit numeric token
// for size: a "%" suffix makes it a percentage ("30%"), a bare number is
// a fixed cell count ("20"), as in original_source's
// margin_string_to_size. Without a size token the default 50% applies.
func ParsePreviewWindow(spec string) (PreviewWindow, error) {
	w := DefaultPreviewWindow()
	if strings.TrimSpace(spec) == "" {
		return w, nil
	}

	for _, tok := range strings.Split(spec, ":") {
		if tok == "" {
			continue
		}

		if c := tok[0]; c >= '0' && c <= '9' {
			size, err := parseSize(tok)
			if err != nil {
				return PreviewWindow{}, err
			}
			w.Size = size
			continue
		}

		switch strings.ToUpper(tok) {
		case "UP":
			w.Direction = DirectionUp
		case "DOWN":
			w.Direction = DirectionDown
		case "LEFT":
			w.Direction = DirectionLeft
		case "RIGHT":
			w.Direction = DirectionRight
		case "HIDDEN":
			w.Hidden = true
		case "WRAP":
			w.Wrap = true
		default:
			// Unknown tokens are ignored, matching the forgiving
			// parsing in original_source's parse_preview.
		}
	}

	return w, nil
}

func parseSize(tok string) (Size, error) {
	if strings.HasSuffix(tok, "%") {
		v, err := strconv.Atoi(tok[:len(tok)-1])
		if err != nil {
			return Size{}, fmt.Errorf("invalid preview-window size %q: %w", tok, err)
		}
		return Size{Value: v, IsPercent: true}, nil
	}

	v, err := strconv.Atoi(tok)
	if err != nil {
		return Size{}, fmt.Errorf("invalid preview-window size %q: %w", tok, err)
	}
	return Size{Value: v, IsPercent: false}, nil
}

package appconfig

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParsePreviewWindowDefaults(t *testing.T) {
	t.Parallel()

	w, err := ParsePreviewWindow("")
	require.NoError(t, err)
	require.Equal(t, DefaultPreviewWindow(), w)
}

func TestParsePreviewWindowDirectionAndSize(t *testing.T) {
	t.Parallel()

	w, err := ParsePreviewWindow("up:30%")
	require.NoError(t, err)
	require.Equal(t, DirectionUp, w.Direction)
	require.Equal(t, Size{Value: 30, IsPercent: true}, w.Size)
}

func TestParsePreviewWindowFixedCellSize(t *testing.T) {
	t.Parallel()

	w, err := ParsePreviewWindow("left:20")
	require.NoError(t, err)
	require.Equal(t, DirectionLeft, w.Direction)
	require.Equal(t, Size{Value: 20, IsPercent: false}, w.Size)
}

func TestParsePreviewWindowHiddenAndWrap(t *testing.T) {
	t.Parallel()

	w, err := ParsePreviewWindow("down:hidden:wrap")
	require.NoError(t, err)
	require.Equal(t, DirectionDown, w.Direction)
	require.True(t, w.Hidden)
	require.True(t, w.Wrap)
}

func TestParsePreviewWindowInvalidSize(t *testing.T) {
	t.Parallel()

	_, err := ParsePreviewWindow("50x%")
	require.Error(t, err)
}

func TestParsePreviewWindowIgnoresUnknownTokens(t *testing.T) {
	t.Parallel()

	w, err := ParsePreviewWindow("bogus:right")
	require.NoError(t, err)
	require.Equal(t, DirectionRight, w.Direction)
}

package matcher

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestModeRotate(t *testing.T) {
	t.Parallel()

	require.Equal(t, ModeRegex, ModeDefault.Rotate())
	require.Equal(t, ModeDefault, ModeRegex.Rotate())
}

func TestModeLabel(t *testing.T) {
	t.Parallel()

	require.Equal(t, "", ModeDefault.Label())
	require.Equal(t, "RE", ModeRegex.Label())
}

package header

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNewStoresLines(t *testing.T) {
	t.Parallel()

	h := New([]string{"one", "two"})
	require.Equal(t, []string{"one", "two"}, h.Lines())
	require.False(t, h.IsEmpty())
}

func TestIsEmptyWithNoLines(t *testing.T) {
	t.Parallel()

	h := New(nil)
	require.True(t, h.IsEmpty())
}

func TestAcceptsAlwaysFalse(t *testing.T) {
	t.Parallel()

	h := New([]string{"x"})
	require.False(t, h.Accepts())
}

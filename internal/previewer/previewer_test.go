package previewer

import (
	"regexp"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/mattn-fsel/fsel/internal/item"
)

func TestInterpolateWholeLineAndFields(t *testing.T) {
	t.Parallel()

	delim := regexp.MustCompile(`\s+`)
	p := New("/bin/sh", "echo {} / {1} / {2} / {-1}", delim)
	it := item.New(1, "alpha beta gamma", false, false)

	got := p.interpolate(it)
	require.Equal(t, "echo alpha beta gamma / alpha / beta / gamma", got)
}

func TestInterpolateOutOfRangeFieldYieldsEmpty(t *testing.T) {
	t.Parallel()

	delim := regexp.MustCompile(`\s+`)
	p := New("/bin/sh", "echo {5}", delim)
	it := item.New(1, "one two", false, false)

	require.Equal(t, "echo ", p.interpolate(it))
}

func TestOnItemChangeUpdatesCanvas(t *testing.T) {
	delim := regexp.MustCompile(`\s+`)
	p := New("/bin/sh", "echo {}", delim)
	p.debounce = time.Millisecond

	it := item.New(1, "hello", false, false)
	p.OnItemChange(it)

	require.Eventually(t, func() bool {
		return p.Canvas() == "hello"
	}, time.Second, time.Millisecond)

	p.Close()
}

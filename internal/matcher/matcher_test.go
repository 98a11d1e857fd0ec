package matcher

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/mattn-fsel/fsel/internal/item"
	"github.com/mattn-fsel/fsel/internal/itempool"
)

func waitStopped(t *testing.T, c *Control) {
	t.Helper()
	require.Eventually(t, c.Stopped, time.Second, time.Millisecond)
}

func TestRunDefaultModeFuzzyMatch(t *testing.T) {
	t.Parallel()

	pool := itempool.New()
	pool.Append([]*item.Item{
		item.New(1, "hello world", false, false),
		item.New(2, "goodbye", false, false),
		item.New(3, "help wanted", false, false),
	})

	ctl := Run(context.Background(), "hel", pool, ModeDefault)
	waitStopped(t, ctl)

	matches := ctl.IntoItems()
	require.Len(t, matches, 2)
	for _, m := range matches {
		require.Contains(t, m.Item.DisplayString(), "hel")
	}
}

func TestRunRegexModeCompileFailureMatchesNothing(t *testing.T) {
	t.Parallel()

	pool := itempool.New()
	pool.Append([]*item.Item{item.New(1, "anything", false, false)})

	ctl := Run(context.Background(), "[invalid(", pool, ModeRegex)
	waitStopped(t, ctl)

	require.Empty(t, ctl.IntoItems())
}

func TestRunEmptyQueryMatchesEverything(t *testing.T) {
	t.Parallel()

	pool := itempool.New()
	pool.Append([]*item.Item{
		item.New(1, "one", false, false),
		item.New(2, "two", false, false),
	})

	ctl := Run(context.Background(), "", pool, ModeDefault)
	waitStopped(t, ctl)

	require.Len(t, ctl.IntoItems(), 2)
}

func TestKillStopsWorkerPromptly(t *testing.T) {
	t.Parallel()

	pool := itempool.New()
	for i := 0; i < 1000; i++ {
		pool.Append([]*item.Item{item.New(uint64(i), "line", false, false)})
	}

	ctl := Run(context.Background(), "line", pool, ModeDefault)
	ctl.Kill()
	require.True(t, ctl.Stopped())
}

func TestNumMatchedAndNumProcessed(t *testing.T) {
	t.Parallel()

	pool := itempool.New()
	pool.Append([]*item.Item{
		item.New(1, "match", false, false),
		item.New(2, "nope", false, false),
	})

	ctl := Run(context.Background(), "match", pool, ModeDefault)
	waitStopped(t, ctl)

	require.Equal(t, 2, ctl.NumProcessed())
	require.Equal(t, 1, ctl.NumMatched())
}

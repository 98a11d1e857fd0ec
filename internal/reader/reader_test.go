package reader

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/mattn-fsel/fsel/internal/item"
)

func TestRunStreamsLinesUntilProcessed(t *testing.T) {
	t.Parallel()

	idg := item.NewIDGenerator()
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go idg.Run(ctx)

	ctl := Run(ctx, "/bin/sh", "printf 'one\\ntwo\\nthree\\n'", idg, false, false)
	require.Eventually(t, ctl.IsProcessed, time.Second, time.Millisecond)

	items := ctl.Take()
	require.Len(t, items, 3)
	require.Equal(t, "one", items[0].DisplayString())
	require.Equal(t, "two", items[1].DisplayString())
	require.Equal(t, "three", items[2].DisplayString())
}

func TestKillStopsReaderBeforeCompletion(t *testing.T) {
	t.Parallel()

	idg := item.NewIDGenerator()
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go idg.Run(ctx)

	ctl := Run(ctx, "/bin/sh", "sleep 5", idg, false, false)
	ctl.Kill()
	require.True(t, ctl.IsProcessed())
}

package item

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestIDGeneratorProducesSequentialIDs(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	ig := NewIDGenerator()
	go ig.Run(ctx)

	var prev uint64
	for i := 0; i < 100; i++ {
		id := ig.Next()
		if i > 0 {
			require.Equal(t, prev+1, id)
		}
		prev = id
	}
}

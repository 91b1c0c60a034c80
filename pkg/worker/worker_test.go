package worker

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDispatcherKeepsPerKeyOrder(t *testing.T) {
	t.Parallel()

	var mu sync.Mutex
	seen := make(map[int64][]int)

	dispatcher := NewDispatcher(4, func(_ context.Context, data [2]int64) {
		mu.Lock()
		defer mu.Unlock()
		seen[data[0]] = append(seen[data[0]], int(data[1]))
	})

	dispatcher.Start(context.Background())

	const perKey = 50
	for i := 0; i < perKey; i++ {
		for key := int64(1); key <= 3; key++ {
			dispatcher.Dispatch(key, [2]int64{key, int64(i)})
		}
	}

	dispatcher.Stop()

	for key := int64(1); key <= 3; key++ {
		assert.Len(t, seen[key], perKey)
		for i, v := range seen[key] {
			assert.Equal(t, i, v, "jobs for one key must stay ordered")
		}
	}
}

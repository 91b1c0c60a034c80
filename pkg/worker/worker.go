package worker

import (
	"context"
	"sync"
)

type job[T any] struct {
	Key  int64
	Data T
}

// Func is a function that handles a dispatched job.
type Func[T any] func(ctx context.Context, data T)

// Dispatcher fans jobs out across a fixed set of workers while keeping
// every job with the same key on the same worker. Jobs sharing a key are
// therefore processed strictly in arrival order; jobs with different keys
// run concurrently.
type Dispatcher[T any] struct {
	handlerFunc Func[T]
	shards      []chan job[T]
	wg          *sync.WaitGroup
}

// NewDispatcher creates a new dispatcher with the given shard count.
func NewDispatcher[T any](shardCount int, handlerFunc Func[T]) *Dispatcher[T] {
	if shardCount < 1 {
		shardCount = 1
	}

	shards := make([]chan job[T], shardCount)
	for i := range shards {
		shards[i] = make(chan job[T])
	}

	return &Dispatcher[T]{
		handlerFunc: handlerFunc,
		shards:      shards,
		wg:          &sync.WaitGroup{},
	}
}

// Start starts one worker per shard.
func (d *Dispatcher[T]) Start(ctx context.Context) {
	for _, shard := range d.shards {
		d.wg.Add(1)
		go d.worker(ctx, shard)
	}
}

func (d *Dispatcher[T]) worker(ctx context.Context, jobs chan job[T]) {
	defer d.wg.Done()

	for {
		select {
		case <-ctx.Done():
			return
		case job, ok := <-jobs:
			if !ok {
				return
			}

			d.handlerFunc(ctx, job.Data)
		}
	}
}

// Stop closes all shards and waits for in-flight jobs to finish.
func (d *Dispatcher[T]) Stop() {
	for _, shard := range d.shards {
		close(shard)
	}
	d.wg.Wait()
}

// Dispatch routes a job to the shard owning its key.
func (d *Dispatcher[T]) Dispatch(key int64, data T) {
	idx := int(uint64(key) % uint64(len(d.shards)))
	d.shards[idx] <- job[T]{Key: key, Data: data}
}

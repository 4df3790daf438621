package flow

import (
	"context"
	"sync"

	"github.com/dzmitry-lahoda-forks/linear-type/pkg/linear"
)

// Source wraps each value and emits the wrappers in order. On context
// cancellation the wrapper pending delivery is destroyed and no further
// obligations are created.
func Source[T any](ctx context.Context, values ...T) <-chan linear.Linear[T] {
	out := make(chan linear.Linear[T])

	go func() {
		defer close(out)
		for _, v := range values {
			l := linear.New(v)
			select {
			case out <- l:
			case <-ctx.Done():
				l.Destroy()
				return
			}
		}
	}()

	return out
}

// Run fans the input wrappers across a pool of workers, applying f to
// each payload, and merges the results onto one output channel. The
// output closes once the input is exhausted and every worker has
// finished. On context cancellation remaining wrappers are destroyed, not
// dropped.
func Run[T, U any](ctx context.Context, in <-chan linear.Linear[T], f func(T) U, workers int) <-chan linear.Linear[U] {
	if workers < 1 {
		workers = 1
	}

	out := make(chan linear.Linear[U])
	wg := &sync.WaitGroup{}

	for range workers {
		wg.Add(1)
		go work(ctx, in, out, f, wg)
	}

	go func() {
		wg.Wait()
		close(out)
	}()

	return out
}

func work[T, U any](ctx context.Context, in <-chan linear.Linear[T], out chan<- linear.Linear[U], f func(T) U, wg *sync.WaitGroup) {
	defer wg.Done()

	for l := range in {
		select {
		case <-ctx.Done():
			// Keep draining so upstream can finish; every remaining
			// obligation is closed out here.
			l.Destroy()
			continue
		default:
		}

		u := linear.Map(l, f)
		select {
		case out <- u:
		case <-ctx.Done():
			u.Destroy()
		}
	}
}

// Collect consumes every wrapper from the channel and returns the
// payloads in arrival order.
func Collect[T any](in <-chan linear.Linear[T]) []T {
	var values []T
	for l := range in {
		values = append(values, l.IntoInner())
	}
	return values
}

// Drain destroys every wrapper remaining on the channel. Use it to close
// out obligations from a pipeline that is being abandoned.
func Drain[T any](in <-chan linear.Linear[T]) {
	for l := range in {
		l.Destroy()
	}
}

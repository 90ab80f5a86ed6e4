package eventfire_test

import (
	"context"
	"errors"
	"fmt"

	"github.com/dshills/eventfire"
)

// Example_basicUsage demonstrates synchronous fan-out with full results.
func Example_basicUsage() {
	d := eventfire.New()

	d.AddFunc(func(ctx context.Context, e eventfire.Event) (any, error) {
		return fmt.Sprintf("saved %s", e.ID), nil
	})
	d.AddFunc(func(ctx context.Context, e eventfire.Event) (any, error) {
		return len(e.Args), nil
	})

	result := d.Fire(context.Background(), "buffer.saved", "main.go", "go.mod")
	for _, out := range result {
		fmt.Println(out.Status, out.Value)
	}

	// Output:
	// success saved buffer.saved
	// success 2
}

// Example_failureIsolation shows that a failing handler never prevents the
// remaining handlers from running.
func Example_failureIsolation() {
	d := eventfire.New()

	d.AddFunc(func(ctx context.Context, e eventfire.Event) (any, error) {
		return nil, errors.New("disk full")
	})
	d.AddFunc(func(ctx context.Context, e eventfire.Event) (any, error) {
		return "still ran", nil
	})

	result := d.Fire(context.Background(), "flush")
	fmt.Println(result[0].Status, errors.Is(result[0].Err, eventfire.ErrHandlerFailure))
	fmt.Println(result[1].Status, result[1].Value)

	// Output:
	// failure true
	// success still ran
}

// Example_asyncDelivery shows fire-and-forget delivery through the single
// background worker.
func Example_asyncDelivery() {
	d := eventfire.New(eventfire.WithMode(eventfire.ModeAsync))

	done := make(chan string, 1)
	d.AddFunc(func(ctx context.Context, e eventfire.Event) (any, error) {
		done <- e.ID
		return nil, nil
	})

	result := d.Fire(context.Background(), "metrics.tick")
	fmt.Println(result[0].Status)
	fmt.Println(<-done)

	_ = d.Stop(context.Background())

	// Output:
	// pending
	// metrics.tick
}

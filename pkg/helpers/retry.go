package helpers

import (
	"context"
	"math/rand"
	"time"
)

func Retry(times int, interval time.Duration, fn func() error) error {
	return RetryWhen(context.Background(), times, interval, func(error) (time.Duration, bool) { return 0, true }, fn)
}

// RetryWhen retries fn while wait accepts its error. wait returns the delay
// before the next attempt; zero means interval plus jitter. Waiting stops
// with the context error once ctx is done.
func RetryWhen(ctx context.Context, times int, interval time.Duration, wait func(error) (time.Duration, bool), fn func() error) error {
	for i := 0; ; i++ {
		err := fn()
		if err == nil {
			return nil
		}

		if i >= times {
			return err
		}

		d, ok := wait(err)
		if !ok {
			return err
		}

		if d <= 0 {
			// add 20% jitter
			d = interval + jitter(interval)
		}

		t := time.NewTimer(d)

		select {
		case <-ctx.Done():
			t.Stop()
			return ctx.Err()
		case <-t.C:
		}
	}
}

func jitter(interval time.Duration) time.Duration {
	if n := int64(interval / 5); n > 0 {
		return time.Duration(rand.Int63n(n))
	}

	return 0
}

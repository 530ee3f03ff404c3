package postgres

import (
	"context"
	"time"
)

// Pinger is satisfied by *pgxpool.Pool.
type Pinger interface {
	Ping(ctx context.Context) error
}

// Monitor pings db every interval until ctx is done and passes each failure
// to onError. A non-positive interval disables the checks.
func Monitor(ctx context.Context, db Pinger, interval time.Duration, onError func(error)) error {
	if interval <= 0 {
		<-ctx.Done()
		return nil
	}

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
			pingCtx, cancel := context.WithTimeout(ctx, interval)
			err := db.Ping(pingCtx)
			cancel()
			if err != nil && ctx.Err() == nil {
				onError(err)
			}
		}
	}
}

package middleware

import (
	"context"
	"log/slog"
	"time"
)

// Logger returns middleware that logs each invocation of an action.
func Logger(name string) func(Action) Action {
	return func(next Action) Action {
		return func(ctx context.Context) error {
			start := time.Now()
			err := next(ctx)
			if err != nil {
				slog.DebugContext(ctx, "action failed", "action", name, "duration", time.Since(start), "error", err)
				return err
			}
			slog.DebugContext(ctx, "action completed", "action", name, "duration", time.Since(start))
			return nil
		}
	}
}

// Chain applies middlewares so the first one listed runs outermost.
func Chain(a Action, mws ...func(Action) Action) Action {
	for i := len(mws) - 1; i >= 0; i-- {
		a = mws[i](a)
	}
	return a
}

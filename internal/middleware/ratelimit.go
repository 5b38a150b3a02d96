package middleware

import (
	"context"
	"errors"

	"golang.org/x/time/rate"
)

// ErrRateLimited is returned when an action is invoked faster than allowed.
var ErrRateLimited = errors.New("too many requests")

// Action is a controller operation triggered by the user.
type Action func(ctx context.Context) error

// RateLimit returns middleware that drops invocations beyond rps per second,
// allowing bursts of up to burst. A non-positive rps disables limiting.
func RateLimit(rps float64, burst int) func(Action) Action {
	if rps <= 0 {
		return func(next Action) Action { return next }
	}
	if burst < 1 {
		burst = 1
	}
	limiter := rate.NewLimiter(rate.Limit(rps), burst)

	return func(next Action) Action {
		return func(ctx context.Context) error {
			if !limiter.Allow() {
				return ErrRateLimited
			}
			return next(ctx)
		}
	}
}

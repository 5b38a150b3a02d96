package middleware

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func countingAction(calls *int) Action {
	return func(context.Context) error {
		*calls++
		return nil
	}
}

func TestRateLimit_DropsBurstOverflow(t *testing.T) {
	calls := 0
	a := RateLimit(0.001, 2)(countingAction(&calls))

	require.NoError(t, a(context.Background()))
	require.NoError(t, a(context.Background()))
	assert.ErrorIs(t, a(context.Background()), ErrRateLimited)
	assert.Equal(t, 2, calls)
}

func TestRateLimit_DisabledWhenNonPositive(t *testing.T) {
	calls := 0
	a := RateLimit(0, 0)(countingAction(&calls))

	for i := 0; i < 50; i++ {
		require.NoError(t, a(context.Background()))
	}
	assert.Equal(t, 50, calls)
}

func TestChain_OrderAndErrors(t *testing.T) {
	var order []string
	mark := func(name string) func(Action) Action {
		return func(next Action) Action {
			return func(ctx context.Context) error {
				order = append(order, name)
				return next(ctx)
			}
		}
	}
	boom := errors.New("boom")

	a := Chain(func(context.Context) error { return boom }, mark("outer"), Logger("test"), mark("inner"))

	assert.ErrorIs(t, a(context.Background()), boom)
	assert.Equal(t, []string{"outer", "inner"}, order)
}

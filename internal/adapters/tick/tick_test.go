package tick_test

import (
	"context"
	"testing"
	"testing/synctest"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/addon/internal/adapters/tick"
	"go.trai.ch/addon/internal/core/domain"
)

func TestLimiter_BurstThenWaits(t *testing.T) {
	synctest.Test(t, func(t *testing.T) {
		l := tick.NewLimiter(10, 4)
		ctx := context.Background()

		start := time.Now()
		for range 4 {
			require.NoError(t, l.Yield(ctx))
		}
		assert.Equal(t, time.Duration(0), time.Since(start), "the first tick's budget is free")

		require.NoError(t, l.Yield(ctx))
		assert.Equal(t, 25*time.Millisecond, time.Since(start), "the fifth step waits for budget")
		assert.Equal(t, int64(5), l.Steps())
	})
}

func TestLimiter_Cancelled(t *testing.T) {
	l := tick.NewLimiter(1, 1)
	require.NoError(t, l.Yield(context.Background()))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := l.Yield(ctx)
	require.Error(t, err)
	assert.Equal(t, "YieldInterrupted", domain.KindOf(err))
}

func TestImmediate(t *testing.T) {
	s := tick.NewImmediate()
	require.NoError(t, s.Yield(context.Background()))
	require.NoError(t, s.Yield(context.Background()))
	assert.Equal(t, int64(2), s.Steps())

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	err := s.Yield(ctx)
	require.Error(t, err)
	assert.ErrorContains(t, err, domain.ErrYieldInterrupted.Error())
}

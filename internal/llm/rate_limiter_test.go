package llm

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRateLimiterAllowsWithinLimits(t *testing.T) {
	rl := NewRateLimiter(10, 1000)
	ctx := context.Background()

	for i := 0; i < 5; i++ {
		require.NoError(t, rl.Allow(ctx, 100))
	}
}

func TestRateLimiterRequestLimit(t *testing.T) {
	rl := NewRateLimiter(3, 100000)
	ctx := context.Background()

	require.NoError(t, rl.Allow(ctx, 1))
	require.NoError(t, rl.Allow(ctx, 1))
	require.NoError(t, rl.Allow(ctx, 1))

	err := rl.Allow(ctx, 1)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "лимит запросов")
}

func TestRateLimiterTokenBudget(t *testing.T) {
	rl := NewRateLimiter(100, 500)
	ctx := context.Background()

	require.NoError(t, rl.Allow(ctx, 400))

	err := rl.Allow(ctx, 400)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "бюджет токенов")
}

func TestRateLimiterConsumeRefund(t *testing.T) {
	rl := NewRateLimiter(100, 500)
	ctx := context.Background()

	// Оценка завышена: списали 450, фактически ушло 100 —
	// Consume возвращает разницу в бюджет
	require.NoError(t, rl.Allow(ctx, 450))
	rl.Consume(100 - 450)

	require.NoError(t, rl.Allow(ctx, 300))
}

func TestRateLimiterDefaults(t *testing.T) {
	rl := NewRateLimiter(0, -5)
	assert.Equal(t, 60, rl.requestsPerMinute)
	assert.Equal(t, 500000, rl.tokensPerHour)
}

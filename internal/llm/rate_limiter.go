package llm

import (
	"context"
	"fmt"
	"sync"
	"time"
)

// RateLimiter — token bucket на два лимита сразу: запросы в минуту и
// бюджет токенов в час. Ответы на вопросы идут строго последовательно,
// поэтому превышение лимита — ошибка, а не ожидание.
type RateLimiter struct {
	mu sync.Mutex

	requestsPerMinute int
	tokensPerHour     int

	requests    float64
	tokenBudget float64
	lastRefill  time.Time
}

func NewRateLimiter(requestsPerMinute, tokensPerHour int) *RateLimiter {
	if requestsPerMinute <= 0 {
		requestsPerMinute = 60
	}
	if tokensPerHour <= 0 {
		tokensPerHour = 500000
	}
	return &RateLimiter{
		requestsPerMinute: requestsPerMinute,
		tokensPerHour:     tokensPerHour,
		requests:          float64(requestsPerMinute),
		tokenBudget:       float64(tokensPerHour),
		lastRefill:        time.Now(),
	}
}

func (rl *RateLimiter) refill() {
	now := time.Now()
	elapsed := now.Sub(rl.lastRefill)

	rl.requests += elapsed.Minutes() * float64(rl.requestsPerMinute)
	if rl.requests > float64(rl.requestsPerMinute) {
		rl.requests = float64(rl.requestsPerMinute)
	}

	rl.tokenBudget += elapsed.Hours() * float64(rl.tokensPerHour)
	if rl.tokenBudget > float64(rl.tokensPerHour) {
		rl.tokenBudget = float64(rl.tokensPerHour)
	}

	rl.lastRefill = now
}

// Allow проверяет оба лимита и списывает один запрос и оценку токенов.
func (rl *RateLimiter) Allow(ctx context.Context, estimatedTokens int) error {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	rl.refill()

	if rl.requests < 1 {
		return fmt.Errorf("превышен лимит запросов (%d RPM)", rl.requestsPerMinute)
	}
	if rl.tokenBudget < float64(estimatedTokens) {
		return fmt.Errorf("превышен бюджет токенов (%d TPH): требуется %d, доступно %.0f",
			rl.tokensPerHour, estimatedTokens, rl.tokenBudget)
	}

	rl.requests--
	rl.tokenBudget -= float64(estimatedTokens)
	return nil
}

// Consume корректирует бюджет после ответа, когда известно фактическое
// количество токенов. Отрицательная дельта возвращает бюджет.
func (rl *RateLimiter) Consume(deltaTokens int) {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	rl.tokenBudget -= float64(deltaTokens)
	if rl.tokenBudget < 0 {
		rl.tokenBudget = 0
	}
	if rl.tokenBudget > float64(rl.tokensPerHour) {
		rl.tokenBudget = float64(rl.tokensPerHour)
	}
}

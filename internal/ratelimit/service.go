package ratelimit

import (
	"context"
	"fmt"
	"time"

	"pledgestack/internal/clients/redis"
	"pledgestack/internal/observability"

	goredis "github.com/redis/go-redis/v9"
)

// Result represents the outcome of a rate limit check
type Result struct {
	Allowed      bool      `json:"allowed"`
	Limit        int       `json:"limit"`
	Remaining    int       `json:"remaining"`
	ResetAt      time.Time `json:"reset_at"`
	RetryAfterMs int       `json:"retry_after_ms,omitempty"`
}

// Service rate-limits public donation endpoints. Keys are caller-supplied,
// typically the client IP plus the route.
type Service struct {
	redis  *redis.Client
	logger *observability.Logger
	window time.Duration
}

// NewService creates a new rate limiting service
func NewService(redis *redis.Client, logger *observability.Logger) *Service {
	return &Service{
		redis:  redis,
		logger: logger,
		window: time.Minute,
	}
}

// CheckRateLimit records one request against the key and reports whether it
// is within the limit. Sliding window over a Redis sorted set: members are
// request timestamps, old entries are trimmed on every check.
func (s *Service) CheckRateLimit(ctx context.Context, key string, limit int) (Result, error) {
	ctx = observability.WithFields(ctx,
		observability.Field{Key: "rate_limit_key", Value: key},
		observability.Field{Key: "rate_limit", Value: limit},
	)

	redisKey := fmt.Sprintf("rl:%s", key)
	now := time.Now()
	windowStart := now.Add(-s.window)

	client := s.redis.GetClient()
	if err := client.ZRemRangeByScore(ctx, redisKey, "0",
		fmt.Sprintf("%d", windowStart.UnixMilli())).Err(); err != nil {
		return Result{}, fmt.Errorf("failed to trim rate limit window: %w", err)
	}

	count, err := client.ZCard(ctx, redisKey).Result()
	if err != nil {
		return Result{}, fmt.Errorf("failed to count requests: %w", err)
	}

	if int(count) >= limit {
		oldest, err := client.ZRange(ctx, redisKey, 0, 0).Result()
		if err != nil || len(oldest) == 0 {
			return Result{
				Allowed:      false,
				Limit:        limit,
				Remaining:    0,
				ResetAt:      now.Add(s.window),
				RetryAfterMs: int(s.window.Milliseconds()),
			}, nil
		}

		var oldestTs int64
		fmt.Sscanf(oldest[0], "%d", &oldestTs)
		resetAt := time.UnixMilli(oldestTs).Add(s.window)
		retryAfter := resetAt.Sub(now)
		if retryAfter < 0 {
			retryAfter = 0
		}

		return Result{
			Allowed:      false,
			Limit:        limit,
			Remaining:    0,
			ResetAt:      resetAt,
			RetryAfterMs: int(retryAfter.Milliseconds()),
		}, nil
	}

	if err := client.ZAdd(ctx, redisKey, goredis.Z{
		Score:  float64(now.UnixMilli()),
		Member: fmt.Sprintf("%d", now.UnixMilli()),
	}).Err(); err != nil {
		return Result{}, fmt.Errorf("failed to record request: %w", err)
	}

	if err := s.redis.Expire(ctx, redisKey, 2*s.window); err != nil {
		s.logger.WarnWithError(ctx, "failed to set expiration on rate limit key", err)
	}

	return Result{
		Allowed:   true,
		Limit:     limit,
		Remaining: limit - int(count) - 1,
		ResetAt:   now.Add(s.window),
	}, nil
}

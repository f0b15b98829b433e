package message

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
)

const (
	rateLimitPrefix = "message:rate:"
	rateLimit       = 5
	rateWindow      = time.Minute
)

// Limiter counts posts per client in a fixed window
type Limiter interface {
	Allow(ctx context.Context, clientKey string) (bool, error)
}

type limiter struct {
	rdb *redis.Client
}

// NewLimiter creates a redis backed post limiter
func NewLimiter(rdb *redis.Client) Limiter {
	return &limiter{rdb}
}

func (l *limiter) Allow(ctx context.Context, clientKey string) (bool, error) {
	ctx, span := tracer.Start(ctx, "Message.Limiter.Allow")
	defer span.End()

	key := rateLimitPrefix + clientKey
	count, err := l.rdb.Incr(ctx, key).Result()
	if err != nil {
		span.RecordError(err)
		return false, err
	}
	if count == 1 {
		err = l.rdb.Expire(ctx, key, rateWindow).Err()
		if err != nil {
			span.RecordError(err)
			return false, err
		}
	}

	return count <= rateLimit, nil
}

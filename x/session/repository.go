package session

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
)

const revokedPrefix = "session:revoked:"

type Repository interface {
	IsRevoked(ctx context.Context, jti string) (bool, error)
	Revoke(ctx context.Context, jti string, exp time.Time) error
}

type repository struct {
	rdb *redis.Client
}

func NewRepository(rdb *redis.Client) Repository {
	return &repository{
		rdb: rdb,
	}
}

func (r *repository) IsRevoked(ctx context.Context, jti string) (bool, error) {
	ctx, span := tracer.Start(ctx, "Session.Repository.IsRevoked")
	defer span.End()

	exists, err := r.rdb.Exists(ctx, revokedPrefix+jti).Result()
	if err != nil {
		span.RecordError(err)
		return false, err
	}

	return exists > 0, nil
}

func (r *repository) Revoke(ctx context.Context, jti string, exp time.Time) error {
	ctx, span := tracer.Start(ctx, "Session.Repository.Revoke")
	defer span.End()

	expiration := time.Until(exp)
	if expiration <= 0 {
		// already expired, nothing to remember
		return nil
	}

	err := r.rdb.Set(ctx, revokedPrefix+jti, "1", expiration).Err()
	if err != nil {
		span.RecordError(err)
		return err
	}

	return nil
}

package session

import (
	"context"
	"time"

	"github.com/pkg/errors"
	"go.opentelemetry.io/otel"

	"github.com/totegamma/campsite/core"
)

var tracer = otel.Tracer("session")

type service struct {
	repository Repository
	config     core.Config
}

// NewService creates a new session service
func NewService(repository Repository, config core.Config) core.SessionService {
	return &service{repository, config}
}

// Verify validates a session token and checks that it has not been revoked
func (s *service) Verify(ctx context.Context, token string) (core.SessionClaims, error) {
	ctx, span := tracer.Start(ctx, "Session.Service.Verify")
	defer span.End()

	claims, err := Parse(s.config.SessionSecret, token)
	if err != nil {
		span.RecordError(err)
		return core.SessionClaims{}, errors.Wrap(core.NewErrorUnauthorized(), err.Error())
	}

	if claims.JTI != "" {
		revoked, err := s.repository.IsRevoked(ctx, claims.JTI)
		if err != nil {
			span.RecordError(err)
			return core.SessionClaims{}, err
		}
		if revoked {
			return core.SessionClaims{}, errors.Wrap(core.NewErrorUnauthorized(), "session revoked")
		}
	}

	return claims, nil
}

// Revoke invalidates a session until it would have expired anyway
func (s *service) Revoke(ctx context.Context, jti string, exp time.Time) error {
	ctx, span := tracer.Start(ctx, "Session.Service.Revoke")
	defer span.End()

	if jti == "" {
		return nil
	}

	return s.repository.Revoke(ctx, jti, exp)
}

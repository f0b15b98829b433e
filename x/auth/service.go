package auth

import (
	"go.opentelemetry.io/otel"

	"github.com/totegamma/campsite/core"
)

var tracer = otel.Tracer("auth")

type service struct {
	config  core.Config
	session core.SessionService
}

// NewService creates a new auth service
func NewService(config core.Config, session core.SessionService) core.AuthService {
	return &service{config, session}
}

func (s *service) isAdmin(claims core.SessionClaims) bool {
	if claims.Role == "admin" {
		return true
	}
	for _, admin := range s.config.Admins {
		if admin == claims.Subject {
			return true
		}
	}
	return false
}

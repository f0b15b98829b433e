package user

import (
	"context"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/pkg/errors"
	"go.opentelemetry.io/otel"

	"github.com/totegamma/campsite/core"
)

var tracer = otel.Tracer("user")

type service struct {
	repository Repository
}

// NewService creates a new user service
func NewService(repository Repository) core.UserService {
	return &service{repository}
}

func (s *service) Get(ctx context.Context, id string) (core.User, error) {
	ctx, span := tracer.Start(ctx, "User.Service.Get")
	defer span.End()

	return s.repository.Get(ctx, id)
}

// SetUserID claims a display id for the session owner
func (s *service) SetUserID(ctx context.Context, claims core.SessionClaims, userID string) (core.User, error) {
	ctx, span := tracer.Start(ctx, "User.Service.SetUserID")
	defer span.End()

	if claims.Subject == "" {
		return core.User{}, core.NewErrorUnauthorized()
	}

	userID = strings.TrimSpace(userID)
	if userID == "" {
		return core.User{}, core.NewErrorInvalidInput("userId is required")
	}
	if utf8.RuneCountInString(userID) > core.UserIDMaxLength {
		return core.User{}, core.NewErrorInvalidInput(fmt.Sprintf("userId must be at most %d characters", core.UserIDMaxLength))
	}

	user, err := s.repository.Upsert(ctx, core.User{
		ID:     claims.Subject,
		UserID: &userID,
		Name:   claims.Name,
		Email:  claims.Email,
		Role:   claims.Role,
	})
	if err != nil {
		if errors.Is(err, core.ErrorAlreadyExists{}) {
			return core.User{}, core.NewErrorInvalidInput("userId already taken")
		}
		return core.User{}, err
	}

	return user, nil
}

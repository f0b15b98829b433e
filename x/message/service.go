package message

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"unicode/utf8"

	"github.com/rs/xid"
	"go.opentelemetry.io/otel"

	"github.com/totegamma/campsite/core"
)

var tracer = otel.Tracer("message")

const (
	DefaultListLimit = 100
	MaxListLimit     = 500
)

type service struct {
	repository Repository
	limiter    Limiter
	verifier   Verifier
}

// NewService creates a new message service
func NewService(repository Repository, limiter Limiter, verifier Verifier) core.MessageService {
	return &service{repository, limiter, verifier}
}

// List returns the newest messages. private ones only when includePrivate is set.
func (s *service) List(ctx context.Context, includePrivate bool, limit int) ([]core.Message, error) {
	ctx, span := tracer.Start(ctx, "Message.Service.List")
	defer span.End()

	if limit <= 0 {
		limit = DefaultListLimit
	}
	if limit > MaxListLimit {
		limit = MaxListLimit
	}

	return s.repository.List(ctx, includePrivate, limit)
}

// Post validates and stores a new message
func (s *service) Post(ctx context.Context, message core.Message, clientKey, captcha string) (core.Message, error) {
	ctx, span := tracer.Start(ctx, "Message.Service.Post")
	defer span.End()

	message.Content = strings.TrimSpace(message.Content)
	length := utf8.RuneCountInString(message.Content)
	if length == 0 {
		return core.Message{}, core.NewErrorInvalidInput("content is required")
	}
	if length > core.MessageMaxLength {
		return core.Message{}, core.NewErrorInvalidInput(fmt.Sprintf("content must be at most %d characters", core.MessageMaxLength))
	}

	if message.Author != nil {
		author := strings.TrimSpace(*message.Author)
		if utf8.RuneCountInString(author) > core.AuthorMaxLength {
			return core.Message{}, core.NewErrorInvalidInput(fmt.Sprintf("author must be at most %d characters", core.AuthorMaxLength))
		}
		if author == "" {
			message.Author = nil
		} else {
			message.Author = &author
		}
	}

	if err := s.verifier.Verify(ctx, captcha); err != nil {
		return core.Message{}, err
	}

	if clientKey != "" {
		allowed, err := s.limiter.Allow(ctx, clientKey)
		if err != nil {
			// the board stays writable while redis is unavailable
			slog.WarnContext(
				ctx, "rate limiter unavailable",
				slog.String("error", err.Error()),
				slog.String("module", "message"),
			)
		} else if !allowed {
			return core.Message{}, core.NewErrorTooManyRequests()
		}
	}

	message.ID = xid.New().String()

	return s.repository.Create(ctx, message)
}

func (s *service) Delete(ctx context.Context, id string) error {
	ctx, span := tracer.Start(ctx, "Message.Service.Delete")
	defer span.End()

	if id == "" {
		return core.NewErrorInvalidInput("id is required")
	}

	return s.repository.Delete(ctx, id)
}

func (s *service) Count(ctx context.Context) (int64, error) {
	ctx, span := tracer.Start(ctx, "Message.Service.Count")
	defer span.End()

	return s.repository.Count(ctx)
}

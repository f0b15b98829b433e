package message

import (
	"context"

	"github.com/xinguang/go-recaptcha"

	"github.com/totegamma/campsite/core"
)

// Verifier checks a captcha response token
type Verifier interface {
	Verify(ctx context.Context, response string) error
}

type recaptchaVerifier struct {
	client *recaptcha.ReCAPTCHA
}

type noopVerifier struct{}

func (noopVerifier) Verify(context.Context, string) error { return nil }

// NewVerifier returns a recaptcha verifier, or one accepting everything when no secret is configured
func NewVerifier(config core.Config) (Verifier, error) {
	if config.CaptchaSecret == "" {
		return noopVerifier{}, nil
	}

	client, err := recaptcha.NewWithSecert(config.CaptchaSecret)
	if err != nil {
		return nil, err
	}

	return &recaptchaVerifier{client}, nil
}

func (v *recaptchaVerifier) Verify(ctx context.Context, response string) error {
	_, span := tracer.Start(ctx, "Message.Verifier.Verify")
	defer span.End()

	if response == "" {
		return core.NewErrorInvalidInput("captcha is required")
	}
	if err := v.client.Verify(response); err != nil {
		span.RecordError(err)
		return core.NewErrorInvalidInput("captcha verification failed")
	}
	return nil
}

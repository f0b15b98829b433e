package intro

import (
	"context"
	"strings"

	"go.opentelemetry.io/otel"
	"golang.org/x/exp/slices"

	"github.com/totegamma/campsite/core"
	"github.com/totegamma/campsite/util"
)

var tracer = otel.Tracer("intro")

type service struct {
	repository Repository
}

// NewService creates a new intro section image service
func NewService(repository Repository) core.IntroService {
	return &service{repository}
}

func validateSectionKey(sectionKey string) error {
	if sectionKey == "" {
		return core.NewErrorInvalidInput("sectionKey is required")
	}
	if !core.IsSectionKey(sectionKey) {
		return core.NewErrorInvalidInput("unknown sectionKey: " + sectionKey)
	}
	return nil
}

// List returns the section images in page order
func (s *service) List(ctx context.Context) ([]core.IntroSectionImage, error) {
	ctx, span := tracer.Start(ctx, "Intro.Service.List")
	defer span.End()

	images, err := s.repository.List(ctx)
	if err != nil {
		return nil, err
	}

	slices.SortFunc(images, func(a, b core.IntroSectionImage) int {
		return slices.Index(core.SectionKeys, a.SectionKey) - slices.Index(core.SectionKeys, b.SectionKey)
	})

	return images, nil
}

// Upsert overwrites only the supplied fields of an existing section image
func (s *service) Upsert(ctx context.Context, input core.IntroSectionUpsert) (core.IntroSectionImage, error) {
	ctx, span := tracer.Start(ctx, "Intro.Service.Upsert")
	defer span.End()

	input.SectionKey = strings.TrimSpace(input.SectionKey)
	if err := validateSectionKey(input.SectionKey); err != nil {
		return core.IntroSectionImage{}, err
	}

	input.URL = strings.TrimSpace(input.URL)
	if err := util.ValidateURL("url", input.URL); err != nil {
		return core.IntroSectionImage{}, err
	}

	return s.repository.Upsert(ctx, input)
}

func (s *service) Delete(ctx context.Context, sectionKey string) error {
	ctx, span := tracer.Start(ctx, "Intro.Service.Delete")
	defer span.End()

	if err := validateSectionKey(sectionKey); err != nil {
		return err
	}

	return s.repository.Delete(ctx, sectionKey)
}

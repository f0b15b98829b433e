package carousel

import (
	"context"
	"strings"

	"github.com/rs/xid"
	"go.opentelemetry.io/otel"

	"github.com/totegamma/campsite/core"
	"github.com/totegamma/campsite/util"
)

var tracer = otel.Tracer("carousel")

type service struct {
	repository Repository
}

// NewService creates a new carousel service
func NewService(repository Repository) core.CarouselService {
	return &service{repository}
}

// List returns all carousel images in display order
func (s *service) List(ctx context.Context) ([]core.CarouselImage, error) {
	ctx, span := tracer.Start(ctx, "Carousel.Service.List")
	defer span.End()

	return s.repository.List(ctx)
}

// Create adds a new image to the carousel
func (s *service) Create(ctx context.Context, image core.CarouselImage) (core.CarouselImage, error) {
	ctx, span := tracer.Start(ctx, "Carousel.Service.Create")
	defer span.End()

	image.URL = strings.TrimSpace(image.URL)
	if err := util.ValidateURL("url", image.URL); err != nil {
		return core.CarouselImage{}, err
	}

	image.ID = xid.New().String()

	return s.repository.Create(ctx, image)
}

// Update overwrites only the supplied fields
func (s *service) Update(ctx context.Context, id string, patch core.CarouselPatch) (core.CarouselImage, error) {
	ctx, span := tracer.Start(ctx, "Carousel.Service.Update")
	defer span.End()

	if id == "" {
		return core.CarouselImage{}, core.NewErrorInvalidInput("id is required")
	}

	if patch.URL != nil {
		trimmed := strings.TrimSpace(*patch.URL)
		if err := util.ValidateURL("url", trimmed); err != nil {
			return core.CarouselImage{}, err
		}
		patch.URL = &trimmed
	}

	image, err := s.repository.Get(ctx, id)
	if err != nil {
		return core.CarouselImage{}, err
	}

	if patch.URL != nil {
		image.URL = *patch.URL
	}
	if patch.PublicID != nil {
		image.PublicID = *patch.PublicID
	}
	if patch.Order != nil {
		image.Order = *patch.Order
	}

	return s.repository.Update(ctx, image)
}

// Delete removes an image from the carousel
func (s *service) Delete(ctx context.Context, id string) error {
	ctx, span := tracer.Start(ctx, "Carousel.Service.Delete")
	defer span.End()

	if id == "" {
		return core.NewErrorInvalidInput("id is required")
	}

	return s.repository.Delete(ctx, id)
}

// Count returns the number of carousel images
func (s *service) Count(ctx context.Context) (int64, error) {
	ctx, span := tracer.Start(ctx, "Carousel.Service.Count")
	defer span.End()

	return s.repository.Count(ctx)
}

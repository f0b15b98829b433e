package gallery

import (
	"context"
	"strings"
	"time"

	"go.opentelemetry.io/otel"

	"github.com/totegamma/campsite/core"
	"github.com/totegamma/campsite/util"
)

var tracer = otel.Tracer("gallery")

type service struct {
	repository Repository
}

// NewService creates a new gallery service
func NewService(repository Repository) core.GalleryService {
	return &service{repository}
}

func trimOptional(value *string) *string {
	if value == nil {
		return nil
	}
	trimmed := strings.TrimSpace(*value)
	if trimmed == "" {
		return nil
	}
	return &trimmed
}

func validate(image core.GalleryImage) error {
	if image.Title == "" {
		return core.NewErrorInvalidInput("title is required")
	}
	if err := util.ValidateURL("imageUrl", image.ImageURL); err != nil {
		return err
	}
	if image.Category == "" {
		return core.NewErrorInvalidInput("category is required")
	}
	if !core.IsGalleryCategory(image.Category) {
		return core.NewErrorInvalidInput("unknown category: " + image.Category)
	}
	if image.Year != nil && (*image.Year < 1900 || *image.Year > 2100) {
		return core.NewErrorInvalidInput("year is out of range")
	}
	if image.Date != nil {
		if _, err := time.Parse(time.DateOnly, *image.Date); err != nil {
			return core.NewErrorInvalidInput("date must be YYYY-MM-DD")
		}
	}
	return nil
}

func normalize(image core.GalleryImage) core.GalleryImage {
	image.Title = strings.TrimSpace(image.Title)
	image.ImageURL = strings.TrimSpace(image.ImageURL)
	image.Category = strings.TrimSpace(image.Category)
	image.Description = trimOptional(image.Description)
	image.Date = trimOptional(image.Date)
	return image
}

// List returns images matching the filter
func (s *service) List(ctx context.Context, filter core.GalleryFilter) ([]core.GalleryImage, error) {
	ctx, span := tracer.Start(ctx, "Gallery.Service.List")
	defer span.End()

	if filter.Category != "" && !core.IsGalleryCategory(filter.Category) {
		return nil, core.NewErrorInvalidInput("unknown category: " + filter.Category)
	}

	return s.repository.List(ctx, filter)
}

func (s *service) Create(ctx context.Context, image core.GalleryImage) (core.GalleryImage, error) {
	ctx, span := tracer.Start(ctx, "Gallery.Service.Create")
	defer span.End()

	image = normalize(image)
	if err := validate(image); err != nil {
		return core.GalleryImage{}, err
	}

	image.ID = ""
	image.CreatedAt = time.Time{}

	return s.repository.Create(ctx, image)
}

// Update overwrites only the supplied fields
func (s *service) Update(ctx context.Context, id string, patch core.GalleryPatch) (core.GalleryImage, error) {
	ctx, span := tracer.Start(ctx, "Gallery.Service.Update")
	defer span.End()

	if id == "" {
		return core.GalleryImage{}, core.NewErrorInvalidInput("id is required")
	}

	image, err := s.repository.Get(ctx, id)
	if err != nil {
		return core.GalleryImage{}, err
	}

	if patch.Title != nil {
		image.Title = *patch.Title
	}
	if patch.Description != nil {
		image.Description = patch.Description
	}
	if patch.ImageURL != nil {
		image.ImageURL = *patch.ImageURL
	}
	if patch.Category != nil {
		image.Category = *patch.Category
	}
	if patch.Year != nil {
		image.Year = patch.Year
	}
	if patch.Date != nil {
		image.Date = patch.Date
	}
	if patch.Order != nil {
		image.Order = patch.Order
	}

	image = normalize(image)
	if err := validate(image); err != nil {
		return core.GalleryImage{}, err
	}

	return s.repository.Replace(ctx, image)
}

func (s *service) Delete(ctx context.Context, id string) error {
	ctx, span := tracer.Start(ctx, "Gallery.Service.Delete")
	defer span.End()

	if id == "" {
		return core.NewErrorInvalidInput("id is required")
	}

	return s.repository.Delete(ctx, id)
}

func (s *service) Count(ctx context.Context) (int64, error) {
	ctx, span := tracer.Start(ctx, "Gallery.Service.Count")
	defer span.End()

	return s.repository.Count(ctx)
}

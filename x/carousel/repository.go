//go:generate go run go.uber.org/mock/mockgen -source=repository.go -destination=mock/repository.go
package carousel

import (
	"context"

	"github.com/pkg/errors"
	"gorm.io/gorm"

	"github.com/totegamma/campsite/core"
)

// Repository is the interface for carousel repository
type Repository interface {
	List(ctx context.Context) ([]core.CarouselImage, error)
	Get(ctx context.Context, id string) (core.CarouselImage, error)
	Create(ctx context.Context, image core.CarouselImage) (core.CarouselImage, error)
	Update(ctx context.Context, image core.CarouselImage) (core.CarouselImage, error)
	Delete(ctx context.Context, id string) error
	Count(ctx context.Context) (int64, error)
}

type repository struct {
	db *gorm.DB
}

// NewRepository creates a new carousel repository
func NewRepository(db *gorm.DB) Repository {
	return &repository{db}
}

// List returns images by order ascending, newest first within the same order
func (r *repository) List(ctx context.Context) ([]core.CarouselImage, error) {
	ctx, span := tracer.Start(ctx, "Carousel.Repository.List")
	defer span.End()

	var images []core.CarouselImage
	err := r.db.WithContext(ctx).
		Order("sort_order ASC").
		Order("created_at DESC").
		Find(&images).Error
	if err != nil {
		span.RecordError(err)
		return nil, err
	}

	return images, nil
}

func (r *repository) Get(ctx context.Context, id string) (core.CarouselImage, error) {
	ctx, span := tracer.Start(ctx, "Carousel.Repository.Get")
	defer span.End()

	var image core.CarouselImage
	err := r.db.WithContext(ctx).First(&image, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return core.CarouselImage{}, core.NewErrorNotFound()
		}
		span.RecordError(err)
		return core.CarouselImage{}, err
	}

	return image, nil
}

func (r *repository) Create(ctx context.Context, image core.CarouselImage) (core.CarouselImage, error) {
	ctx, span := tracer.Start(ctx, "Carousel.Repository.Create")
	defer span.End()

	err := r.db.WithContext(ctx).Create(&image).Error
	if err != nil {
		span.RecordError(err)
		return core.CarouselImage{}, err
	}

	return image, nil
}

func (r *repository) Update(ctx context.Context, image core.CarouselImage) (core.CarouselImage, error) {
	ctx, span := tracer.Start(ctx, "Carousel.Repository.Update")
	defer span.End()

	result := r.db.WithContext(ctx).
		Model(&core.CarouselImage{}).
		Where("id = ?", image.ID).
		Select("url", "public_id", "sort_order").
		Updates(&image)
	if result.Error != nil {
		span.RecordError(result.Error)
		return core.CarouselImage{}, result.Error
	}
	if result.RowsAffected == 0 {
		return core.CarouselImage{}, core.NewErrorNotFound()
	}

	return image, nil
}

func (r *repository) Delete(ctx context.Context, id string) error {
	ctx, span := tracer.Start(ctx, "Carousel.Repository.Delete")
	defer span.End()

	result := r.db.WithContext(ctx).Delete(&core.CarouselImage{}, "id = ?", id)
	if result.Error != nil {
		span.RecordError(result.Error)
		return result.Error
	}
	if result.RowsAffected == 0 {
		return core.NewErrorNotFound()
	}

	return nil
}

func (r *repository) Count(ctx context.Context) (int64, error) {
	ctx, span := tracer.Start(ctx, "Carousel.Repository.Count")
	defer span.End()

	var count int64
	err := r.db.WithContext(ctx).Model(&core.CarouselImage{}).Count(&count).Error
	return count, err
}

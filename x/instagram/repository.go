//go:generate go run go.uber.org/mock/mockgen -source=repository.go -destination=mock/repository.go
package instagram

import (
	"context"

	"github.com/pkg/errors"
	"gorm.io/gorm"

	"github.com/totegamma/campsite/core"
)

// Repository is the interface for instagram repository
type Repository interface {
	List(ctx context.Context) ([]core.InstagramPost, error)
	Get(ctx context.Context, id string) (core.InstagramPost, error)
	Create(ctx context.Context, post core.InstagramPost) (core.InstagramPost, error)
	Update(ctx context.Context, post core.InstagramPost) (core.InstagramPost, error)
	Delete(ctx context.Context, id string) error
	Count(ctx context.Context) (int64, error)
}

type repository struct {
	db *gorm.DB
}

// NewRepository creates a new instagram repository
func NewRepository(db *gorm.DB) Repository {
	return &repository{db}
}

// List returns posts by order ascending, newest first within the same order
func (r *repository) List(ctx context.Context) ([]core.InstagramPost, error) {
	ctx, span := tracer.Start(ctx, "Instagram.Repository.List")
	defer span.End()

	var posts []core.InstagramPost
	err := r.db.WithContext(ctx).
		Order("sort_order ASC").
		Order("created_at DESC").
		Find(&posts).Error
	if err != nil {
		span.RecordError(err)
		return nil, err
	}

	return posts, nil
}

func (r *repository) Get(ctx context.Context, id string) (core.InstagramPost, error) {
	ctx, span := tracer.Start(ctx, "Instagram.Repository.Get")
	defer span.End()

	var post core.InstagramPost
	err := r.db.WithContext(ctx).First(&post, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return core.InstagramPost{}, core.NewErrorNotFound()
		}
		span.RecordError(err)
		return core.InstagramPost{}, err
	}

	return post, nil
}

func (r *repository) Create(ctx context.Context, post core.InstagramPost) (core.InstagramPost, error) {
	ctx, span := tracer.Start(ctx, "Instagram.Repository.Create")
	defer span.End()

	err := r.db.WithContext(ctx).Create(&post).Error
	if err != nil {
		span.RecordError(err)
		return core.InstagramPost{}, err
	}

	return post, nil
}

func (r *repository) Update(ctx context.Context, post core.InstagramPost) (core.InstagramPost, error) {
	ctx, span := tracer.Start(ctx, "Instagram.Repository.Update")
	defer span.End()

	result := r.db.WithContext(ctx).
		Model(&core.InstagramPost{}).
		Where("id = ?", post.ID).
		Select("url", "name", "description", "sort_order", "metadata").
		Updates(&post)
	if result.Error != nil {
		span.RecordError(result.Error)
		return core.InstagramPost{}, result.Error
	}
	if result.RowsAffected == 0 {
		return core.InstagramPost{}, core.NewErrorNotFound()
	}

	return post, nil
}

func (r *repository) Delete(ctx context.Context, id string) error {
	ctx, span := tracer.Start(ctx, "Instagram.Repository.Delete")
	defer span.End()

	result := r.db.WithContext(ctx).Delete(&core.InstagramPost{}, "id = ?", id)
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
	ctx, span := tracer.Start(ctx, "Instagram.Repository.Count")
	defer span.End()

	var count int64
	err := r.db.WithContext(ctx).Model(&core.InstagramPost{}).Count(&count).Error
	return count, err
}

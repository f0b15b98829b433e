//go:generate go run go.uber.org/mock/mockgen -source=repository.go -destination=mock/repository.go
package pinned

import (
	"context"
	"encoding/json"
	"log/slog"

	"github.com/bradfitz/gomemcache/memcache"
	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/totegamma/campsite/core"
)

const (
	cachePrefix = "pinned:"
	cacheTTL    = 60 * 10 // 10 minutes
)

// Repository is the interface for pinned image repository
type Repository interface {
	Get(ctx context.Context, slot string) (core.PinnedImage, error)
	Upsert(ctx context.Context, image core.PinnedImage) (core.PinnedImage, error)
	Delete(ctx context.Context, slot string) error
}

type repository struct {
	db *gorm.DB
	mc *memcache.Client
}

// NewRepository creates a new pinned image repository
func NewRepository(db *gorm.DB, mc *memcache.Client) Repository {
	return &repository{db, mc}
}

func (r *repository) invalidate(ctx context.Context, slot string) {
	err := r.mc.Delete(cachePrefix + slot)
	if err != nil && !errors.Is(err, memcache.ErrCacheMiss) {
		slog.WarnContext(
			ctx, "failed to invalidate pinned image cache",
			slog.String("error", err.Error()),
			slog.String("module", "pinned"),
		)
	}
}

// Get returns the image of a slot
func (r *repository) Get(ctx context.Context, slot string) (core.PinnedImage, error) {
	ctx, span := tracer.Start(ctx, "Pinned.Repository.Get")
	defer span.End()

	item, err := r.mc.Get(cachePrefix + slot)
	if err == nil {
		var cached core.PinnedImage
		if err := json.Unmarshal(item.Value, &cached); err == nil {
			return cached, nil
		}
	}

	var image core.PinnedImage
	err = r.db.WithContext(ctx).First(&image, "slot = ?", slot).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return core.PinnedImage{}, core.NewErrorNotFound()
		}
		span.RecordError(err)
		return core.PinnedImage{}, err
	}

	value, err := json.Marshal(image)
	if err == nil {
		r.mc.Set(&memcache.Item{Key: cachePrefix + slot, Value: value, Expiration: cacheTTL})
	}

	return image, nil
}

// Upsert replaces the slot row in a single statement so the slot is never observed empty
func (r *repository) Upsert(ctx context.Context, image core.PinnedImage) (core.PinnedImage, error) {
	ctx, span := tracer.Start(ctx, "Pinned.Repository.Upsert")
	defer span.End()

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return tx.Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "slot"}},
			DoUpdates: clause.AssignmentColumns([]string{"url", "public_id", "updated_at"}),
		}).Create(&image).Error
	})
	if err != nil {
		span.RecordError(err)
		return core.PinnedImage{}, err
	}

	r.invalidate(ctx, image.Slot)

	return image, nil
}

// Delete clears a slot
func (r *repository) Delete(ctx context.Context, slot string) error {
	ctx, span := tracer.Start(ctx, "Pinned.Repository.Delete")
	defer span.End()

	result := r.db.WithContext(ctx).Delete(&core.PinnedImage{}, "slot = ?", slot)
	if result.Error != nil {
		span.RecordError(result.Error)
		return result.Error
	}

	r.invalidate(ctx, slot)

	if result.RowsAffected == 0 {
		return core.NewErrorNotFound()
	}

	return nil
}

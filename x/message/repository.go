//go:generate go run go.uber.org/mock/mockgen -source=repository.go -destination=mock/repository.go
package message

import (
	"context"

	"gorm.io/gorm"

	"github.com/totegamma/campsite/core"
)

// Repository is the interface for message repository
type Repository interface {
	List(ctx context.Context, includePrivate bool, limit int) ([]core.Message, error)
	ListAll(ctx context.Context) ([]core.Message, error)
	Create(ctx context.Context, message core.Message) (core.Message, error)
	Delete(ctx context.Context, id string) error
	Count(ctx context.Context) (int64, error)
}

type repository struct {
	db *gorm.DB
}

// NewRepository creates a new message repository
func NewRepository(db *gorm.DB) Repository {
	return &repository{db}
}

// List returns the newest messages first
func (r *repository) List(ctx context.Context, includePrivate bool, limit int) ([]core.Message, error) {
	ctx, span := tracer.Start(ctx, "Message.Repository.List")
	defer span.End()

	query := r.db.WithContext(ctx).Order("created_at DESC").Limit(limit)
	if !includePrivate {
		query = query.Where("is_public = ?", true)
	}

	var messages []core.Message
	err := query.Find(&messages).Error
	if err != nil {
		span.RecordError(err)
		return nil, err
	}

	return messages, nil
}

// ListAll returns every message oldest first
func (r *repository) ListAll(ctx context.Context) ([]core.Message, error) {
	ctx, span := tracer.Start(ctx, "Message.Repository.ListAll")
	defer span.End()

	var messages []core.Message
	err := r.db.WithContext(ctx).Order("created_at ASC").Find(&messages).Error
	if err != nil {
		span.RecordError(err)
		return nil, err
	}

	return messages, nil
}

func (r *repository) Create(ctx context.Context, message core.Message) (core.Message, error) {
	ctx, span := tracer.Start(ctx, "Message.Repository.Create")
	defer span.End()

	// is_public has a database default, so false must be written explicitly
	err := r.db.WithContext(ctx).Select("*").Create(&message).Error
	if err != nil {
		span.RecordError(err)
		return core.Message{}, err
	}

	return message, nil
}

func (r *repository) Delete(ctx context.Context, id string) error {
	ctx, span := tracer.Start(ctx, "Message.Repository.Delete")
	defer span.End()

	result := r.db.WithContext(ctx).Delete(&core.Message{}, "id = ?", id)
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
	ctx, span := tracer.Start(ctx, "Message.Repository.Count")
	defer span.End()

	var count int64
	err := r.db.WithContext(ctx).Model(&core.Message{}).Count(&count).Error
	return count, err
}

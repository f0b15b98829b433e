//go:generate go run go.uber.org/mock/mockgen -source=repository.go -destination=mock/repository.go
package user

import (
	"context"

	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/totegamma/campsite/core"
)

// Repository is the interface for user repository
type Repository interface {
	Get(ctx context.Context, id string) (core.User, error)
	Upsert(ctx context.Context, user core.User) (core.User, error)
}

type repository struct {
	db *gorm.DB
}

// NewRepository creates a new user repository
func NewRepository(db *gorm.DB) Repository {
	return &repository{db}
}

func (r *repository) Get(ctx context.Context, id string) (core.User, error) {
	ctx, span := tracer.Start(ctx, "User.Repository.Get")
	defer span.End()

	var user core.User
	err := r.db.WithContext(ctx).First(&user, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return core.User{}, core.NewErrorNotFound()
		}
		span.RecordError(err)
		return core.User{}, err
	}

	return user, nil
}

// Upsert creates the user on first use and refreshes the profile fields after that
func (r *repository) Upsert(ctx context.Context, user core.User) (core.User, error) {
	ctx, span := tracer.Start(ctx, "User.Repository.Upsert")
	defer span.End()

	err := r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "id"}},
		DoUpdates: clause.AssignmentColumns([]string{"user_id", "name", "email", "role"}),
	}).Create(&user).Error
	if err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return core.User{}, core.NewErrorAlreadyExists()
		}
		span.RecordError(err)
		return core.User{}, err
	}

	return user, nil
}

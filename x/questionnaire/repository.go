//go:generate go run go.uber.org/mock/mockgen -source=repository.go -destination=mock/repository.go
package questionnaire

import (
	"context"

	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/totegamma/campsite/core"
)

// Repository is the interface for questionnaire link repository
type Repository interface {
	List(ctx context.Context) ([]core.QuestionnaireLink, error)
	Get(ctx context.Context, doorIndex int) (core.QuestionnaireLink, error)
	Upsert(ctx context.Context, link core.QuestionnaireLink) (core.QuestionnaireLink, error)
}

type repository struct {
	db *gorm.DB
}

// NewRepository creates a new questionnaire link repository
func NewRepository(db *gorm.DB) Repository {
	return &repository{db}
}

func (r *repository) List(ctx context.Context) ([]core.QuestionnaireLink, error) {
	ctx, span := tracer.Start(ctx, "Questionnaire.Repository.List")
	defer span.End()

	var links []core.QuestionnaireLink
	err := r.db.WithContext(ctx).Order("door_index ASC").Find(&links).Error
	if err != nil {
		span.RecordError(err)
		return nil, err
	}

	return links, nil
}

func (r *repository) Get(ctx context.Context, doorIndex int) (core.QuestionnaireLink, error) {
	ctx, span := tracer.Start(ctx, "Questionnaire.Repository.Get")
	defer span.End()

	var link core.QuestionnaireLink
	err := r.db.WithContext(ctx).First(&link, "door_index = ?", doorIndex).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return core.QuestionnaireLink{}, core.NewErrorNotFound()
		}
		span.RecordError(err)
		return core.QuestionnaireLink{}, err
	}

	return link, nil
}

// Upsert keeps one link per door
func (r *repository) Upsert(ctx context.Context, link core.QuestionnaireLink) (core.QuestionnaireLink, error) {
	ctx, span := tracer.Start(ctx, "Questionnaire.Repository.Upsert")
	defer span.End()

	err := r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "door_index"}},
		DoUpdates: clause.AssignmentColumns([]string{"url", "updated_at"}),
	}).Create(&link).Error
	if err != nil {
		span.RecordError(err)
		return core.QuestionnaireLink{}, err
	}

	return link, nil
}

//go:generate go run go.uber.org/mock/mockgen -source=repository.go -destination=mock/repository.go
package intro

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/totegamma/campsite/core"
)

// Repository is the interface for intro section image repository
type Repository interface {
	List(ctx context.Context) ([]core.IntroSectionImage, error)
	Upsert(ctx context.Context, input core.IntroSectionUpsert) (core.IntroSectionImage, error)
	Delete(ctx context.Context, sectionKey string) error
}

type repository struct {
	db *gorm.DB
}

// NewRepository creates a new intro section image repository
func NewRepository(db *gorm.DB) Repository {
	return &repository{db}
}

func (r *repository) List(ctx context.Context) ([]core.IntroSectionImage, error) {
	ctx, span := tracer.Start(ctx, "Intro.Repository.List")
	defer span.End()

	var images []core.IntroSectionImage
	err := r.db.WithContext(ctx).Find(&images).Error
	if err != nil {
		span.RecordError(err)
		return nil, err
	}

	return images, nil
}

// Upsert keeps one image per section. public_id is only assigned when supplied.
func (r *repository) Upsert(ctx context.Context, input core.IntroSectionUpsert) (core.IntroSectionImage, error) {
	ctx, span := tracer.Start(ctx, "Intro.Repository.Upsert")
	defer span.End()

	image := core.IntroSectionImage{
		SectionKey: input.SectionKey,
		URL:        input.URL,
	}
	columns := []string{"url", "updated_at"}
	if input.PublicID != nil {
		image.PublicID = *input.PublicID
		columns = append(columns, "public_id")
	}

	err := r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "section_key"}},
		DoUpdates: clause.AssignmentColumns(columns),
	}, clause.Returning{}).Create(&image).Error
	if err != nil {
		span.RecordError(err)
		return core.IntroSectionImage{}, err
	}

	return image, nil
}

func (r *repository) Delete(ctx context.Context, sectionKey string) error {
	ctx, span := tracer.Start(ctx, "Intro.Repository.Delete")
	defer span.End()

	result := r.db.WithContext(ctx).Delete(&core.IntroSectionImage{}, "section_key = ?", sectionKey)
	if result.Error != nil {
		span.RecordError(result.Error)
		return result.Error
	}
	if result.RowsAffected == 0 {
		return core.NewErrorNotFound()
	}

	return nil
}

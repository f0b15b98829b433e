package gallery

import (
	"context"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"

	"github.com/totegamma/campsite/core"
	"github.com/totegamma/campsite/internal/testutil"
)

func intPtr(v int) *int {
	return &v
}

func TestRepository(t *testing.T) {
	var ctx = context.Background()

	db, cleanup := testutil.CreateMongo()
	defer cleanup()

	repo := NewRepository(db)

	unordered, err := repo.Create(ctx, core.GalleryImage{
		Title:    "campfire",
		ImageURL: "https://cdn.example.com/campfire.png",
		Category: "recreation",
		Year:     intPtr(2025),
	})
	if assert.NoError(t, err) {
		assert.Len(t, unordered.ID, 24)
	}

	second, err := repo.Create(ctx, core.GalleryImage{
		Title:    "lunch",
		ImageURL: "https://cdn.example.com/lunch.png",
		Category: "meal",
		Year:     intPtr(2025),
		Order:    intPtr(2),
	})
	assert.NoError(t, err)

	first, err := repo.Create(ctx, core.GalleryImage{
		Title:    "worship",
		ImageURL: "https://cdn.example.com/worship.png",
		Category: "worship",
		Year:     intPtr(2024),
		Order:    intPtr(1),
	})
	assert.NoError(t, err)

	images, err := repo.List(ctx, core.GalleryFilter{})
	if assert.NoError(t, err) && assert.Len(t, images, 3) {
		assert.Equal(t, first.ID, images[0].ID)
		assert.Equal(t, second.ID, images[1].ID)
		assert.Equal(t, unordered.ID, images[2].ID)
	}

	images, err = repo.List(ctx, core.GalleryFilter{Year: 2025})
	if assert.NoError(t, err) {
		assert.Len(t, images, 2)
	}

	images, err = repo.List(ctx, core.GalleryFilter{Category: "meal", Year: 2025})
	if assert.NoError(t, err) && assert.Len(t, images, 1) {
		assert.Equal(t, "lunch", images[0].Title)
	}

	second.Title = "dinner"
	_, err = repo.Replace(ctx, second)
	assert.NoError(t, err)

	got, err := repo.Get(ctx, second.ID)
	if assert.NoError(t, err) {
		assert.Equal(t, "dinner", got.Title)
		assert.Equal(t, 2, *got.Order)
	}

	_, err = repo.Get(ctx, "not-an-object-id")
	assert.True(t, errors.Is(err, core.ErrorNotFound{}))

	err = repo.Delete(ctx, second.ID)
	assert.NoError(t, err)

	err = repo.Delete(ctx, second.ID)
	assert.True(t, errors.Is(err, core.ErrorNotFound{}))

	count, err := repo.Count(ctx)
	if assert.NoError(t, err) {
		assert.Equal(t, int64(2), count)
	}
}

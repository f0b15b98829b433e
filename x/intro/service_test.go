package intro

import (
	"context"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"github.com/totegamma/campsite/core"
	"github.com/totegamma/campsite/x/intro/mock"
)

func TestServiceListInPageOrder(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mock_intro.NewMockRepository(ctrl)
	mockRepo.EXPECT().List(gomock.Any()).Return([]core.IntroSectionImage{
		{SectionKey: "access"},
		{SectionKey: "greeting"},
		{SectionKey: "staff"},
	}, nil)

	s := NewService(mockRepo)
	images, err := s.List(context.Background())
	if assert.NoError(t, err) {
		assert.Equal(t, "greeting", images[0].SectionKey)
		assert.Equal(t, "staff", images[1].SectionKey)
		assert.Equal(t, "access", images[2].SectionKey)
	}
}

func TestServiceUpsertRejectsUnknownSection(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mock_intro.NewMockRepository(ctrl)
	s := NewService(mockRepo)

	_, err := s.Upsert(context.Background(), core.IntroSectionUpsert{
		SectionKey: "sponsors",
		URL:        "https://cdn.example.com/a.png",
	})
	var invalid core.ErrorInvalidInput
	if assert.True(t, errors.As(err, &invalid)) {
		assert.Equal(t, "unknown sectionKey: sponsors", invalid.Message)
	}

	err = s.Delete(context.Background(), "")
	assert.True(t, errors.As(err, &core.ErrorInvalidInput{}))
}

func TestServiceUpsert(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	expected := core.IntroSectionImage{SectionKey: "theme", URL: "https://cdn.example.com/theme.png", PublicID: "intro/theme"}

	mockRepo := mock_intro.NewMockRepository(ctrl)
	mockRepo.EXPECT().Upsert(gomock.Any(), core.IntroSectionUpsert{SectionKey: "theme", URL: "https://cdn.example.com/theme.png"}).Return(expected, nil)

	s := NewService(mockRepo)
	image, err := s.Upsert(context.Background(), core.IntroSectionUpsert{
		SectionKey: " theme ",
		URL:        "https://cdn.example.com/theme.png ",
	})
	if assert.NoError(t, err) {
		assert.Equal(t, expected, image)
	}
}

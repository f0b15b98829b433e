package door

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"github.com/totegamma/campsite/core"
	"github.com/totegamma/campsite/x/questionnaire"
	"github.com/totegamma/campsite/x/questionnaire/mock"
)

func TestServiceStatus(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	config := core.Config{Doors: core.DefaultDoorWindows()}
	now := config.Doors[2].Start.Add(time.Hour)

	mockRepo := mock_questionnaire.NewMockRepository(ctrl)
	mockRepo.EXPECT().Get(gomock.Any(), 2).Return(core.QuestionnaireLink{DoorIndex: 2, URL: "https://forms.example.com/day3"}, nil)

	s := NewService(config, questionnaire.NewService(mockRepo))
	status, err := s.Status(context.Background(), now)
	if assert.NoError(t, err) {
		assert.Len(t, status.Doors, core.DoorCount)
		if assert.NotNil(t, status.ActiveIndex) {
			assert.Equal(t, 2, *status.ActiveIndex)
		}
		for i, door := range status.Doors {
			assert.Equal(t, i == 2, door.Open)
			if i != 2 {
				assert.Empty(t, door.URL)
			}
		}
		assert.Equal(t, "https://forms.example.com/day3", status.Doors[2].URL)
	}
}

func TestServiceStatusClosed(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	config := core.Config{Doors: core.DefaultDoorWindows()}

	// no lookup happens while every door is closed
	mockRepo := mock_questionnaire.NewMockRepository(ctrl)

	s := NewService(config, questionnaire.NewService(mockRepo))
	status, err := s.Status(context.Background(), config.Doors[0].Start.Add(-time.Minute))
	if assert.NoError(t, err) {
		assert.Nil(t, status.ActiveIndex)
		for _, door := range status.Doors {
			assert.False(t, door.Open)
		}
	}
}

func TestServiceStatusWithoutLink(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	config := core.Config{Doors: core.DefaultDoorWindows()}

	mockRepo := mock_questionnaire.NewMockRepository(ctrl)
	mockRepo.EXPECT().Get(gomock.Any(), 0).Return(core.QuestionnaireLink{}, core.NewErrorNotFound())

	s := NewService(config, questionnaire.NewService(mockRepo))
	status, err := s.Status(context.Background(), config.Doors[0].Start)
	if assert.NoError(t, err) {
		assert.True(t, status.Doors[0].Open)
		assert.Empty(t, status.Doors[0].URL)
	}
}

package user

import (
	"context"
	"strings"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"github.com/totegamma/campsite/core"
	"github.com/totegamma/campsite/x/user/mock"
)

var claims = core.SessionClaims{Subject: "google-oauth2|1234", Name: "Taro", Email: "taro@example.com", Role: "member"}

func TestServiceSetUserID(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mock_user.NewMockRepository(ctrl)
	mockRepo.EXPECT().Upsert(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ interface{}, user core.User) (core.User, error) {
			return user, nil
		},
	)

	s := NewService(mockRepo)
	user, err := s.SetUserID(context.Background(), claims, "  taro_camp ")
	if assert.NoError(t, err) {
		assert.Equal(t, claims.Subject, user.ID)
		assert.Equal(t, "taro_camp", *user.UserID)
		assert.Equal(t, "taro@example.com", user.Email)
	}
}

func TestServiceSetUserIDValidation(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mock_user.NewMockRepository(ctrl)
	s := NewService(mockRepo)

	_, err := s.SetUserID(context.Background(), claims, "   ")
	assert.True(t, errors.As(err, &core.ErrorInvalidInput{}))

	_, err = s.SetUserID(context.Background(), claims, strings.Repeat("x", core.UserIDMaxLength+1))
	assert.True(t, errors.As(err, &core.ErrorInvalidInput{}))

	_, err = s.SetUserID(context.Background(), core.SessionClaims{}, "taro")
	assert.True(t, errors.Is(err, core.ErrorUnauthorized{}))
}

func TestServiceSetUserIDTaken(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mock_user.NewMockRepository(ctrl)
	mockRepo.EXPECT().Upsert(gomock.Any(), gomock.Any()).Return(core.User{}, core.NewErrorAlreadyExists())

	s := NewService(mockRepo)
	_, err := s.SetUserID(context.Background(), claims, "hanako")

	var invalid core.ErrorInvalidInput
	if assert.True(t, errors.As(err, &invalid)) {
		assert.Equal(t, "userId already taken", invalid.Message)
	}
}

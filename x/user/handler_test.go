package user

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"github.com/totegamma/campsite/core"
	"github.com/totegamma/campsite/internal/testutil"
	"github.com/totegamma/campsite/x/user/mock"
)

func TestHandlerRequiresSession(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mock_user.NewMockRepository(ctrl)
	h := NewHandler(NewService(mockRepo))

	c, rec := testutil.CreateJSONRequest(http.MethodPost, "/api/user-id", `{"userId": "taro"}`, core.RequesterContext{})
	err := h.Set(c)
	if assert.NoError(t, err) {
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	}

	c, _, rec = testutil.CreateHttpRequest(http.MethodGet, "/api/user-id", core.RequesterContext{})
	err = h.Get(c)
	if assert.NoError(t, err) {
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	}
}

func TestHandlerGetUnset(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mock_user.NewMockRepository(ctrl)
	mockRepo.EXPECT().Get(gomock.Any(), claims.Subject).Return(core.User{}, core.NewErrorNotFound())

	h := NewHandler(NewService(mockRepo))

	c, _, rec := testutil.CreateHttpRequest(http.MethodGet, "/api/user-id", core.RequesterContext{Type: core.Member, ID: claims.Subject})
	c.Set(core.RequesterClaimsCtxKey, claims)

	err := h.Get(c)
	if assert.NoError(t, err) {
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, `{"success": true, "data": {"userId": null}}`, rec.Body.String())
	}
}

func TestHandlerSetTaken(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mock_user.NewMockRepository(ctrl)
	mockRepo.EXPECT().Upsert(gomock.Any(), gomock.Any()).Return(core.User{}, core.NewErrorAlreadyExists())

	h := NewHandler(NewService(mockRepo))

	c, rec := testutil.CreateJSONRequest(http.MethodPost, "/api/user-id", `{"userId": "hanako"}`, core.RequesterContext{Type: core.Member, ID: claims.Subject})
	c.Set(core.RequesterClaimsCtxKey, claims)

	err := h.Set(c)
	if assert.NoError(t, err) {
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.JSONEq(t, `{"success": false, "error": "userId already taken"}`, rec.Body.String())
	}
}

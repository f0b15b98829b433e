package message

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"github.com/totegamma/campsite/core"
	"github.com/totegamma/campsite/internal/testutil"
	"github.com/totegamma/campsite/x/message/mock"
)

var (
	anonymous = core.RequesterContext{Type: core.Unknown}
	member    = core.RequesterContext{Type: core.Member, ID: "member-1", Role: "member"}
	admin     = core.RequesterContext{Type: core.Admin, ID: "admin-1", Role: "admin"}
)

func TestHandlerDeleteRequiresAdmin(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	// the repository is never touched, so the message stays
	mockRepo := mock_message.NewMockRepository(ctrl)
	h := NewHandler(NewService(mockRepo, &stubLimiter{}, stubVerifier{}))

	for _, requester := range []core.RequesterContext{anonymous, member} {
		c, _, rec := testutil.CreateHttpRequest(http.MethodDelete, "/api/messages?id=cn0k1pmhp0ggnf0tl4r0&isAdmin=true", requester)

		err := h.Delete(c)
		if assert.NoError(t, err) {
			assert.Equal(t, http.StatusForbidden, rec.Code)
			assert.JSONEq(t, `{"success": false, "error": "you are not authorized to perform this action"}`, rec.Body.String())
		}
	}
}

func TestHandlerDeleteAsAdmin(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mock_message.NewMockRepository(ctrl)
	mockRepo.EXPECT().Delete(gomock.Any(), "cn0k1pmhp0ggnf0tl4r0").Return(nil)
	mockRepo.EXPECT().Delete(gomock.Any(), "missing").Return(core.NewErrorNotFound())

	h := NewHandler(NewService(mockRepo, &stubLimiter{}, stubVerifier{}))

	c, _, rec := testutil.CreateHttpRequest(http.MethodDelete, "/api/messages?id=cn0k1pmhp0ggnf0tl4r0", admin)
	err := h.Delete(c)
	if assert.NoError(t, err) {
		assert.Equal(t, http.StatusOK, rec.Code)
	}

	c, _, rec = testutil.CreateHttpRequest(http.MethodDelete, "/api/messages?id=missing", admin)
	err = h.Delete(c)
	if assert.NoError(t, err) {
		assert.Equal(t, http.StatusNotFound, rec.Code)
	}
}

func TestHandlerListVisibility(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mock_message.NewMockRepository(ctrl)
	// a client supplied isAdmin flag never reveals private messages
	mockRepo.EXPECT().List(gomock.Any(), false, DefaultListLimit).Return([]core.Message{}, nil)
	mockRepo.EXPECT().List(gomock.Any(), true, 20).Return([]core.Message{}, nil)

	h := NewHandler(NewService(mockRepo, &stubLimiter{}, stubVerifier{}))

	c, _, rec := testutil.CreateHttpRequest(http.MethodGet, "/api/messages?isAdmin=true", anonymous)
	err := h.List(c)
	if assert.NoError(t, err) {
		assert.Equal(t, http.StatusOK, rec.Code)
	}

	c, _, rec = testutil.CreateHttpRequest(http.MethodGet, "/api/messages?limit=20", admin)
	err = h.List(c)
	if assert.NoError(t, err) {
		assert.Equal(t, http.StatusOK, rec.Code)
	}

	c, _, rec = testutil.CreateHttpRequest(http.MethodGet, "/api/messages?limit=abc", admin)
	err = h.List(c)
	if assert.NoError(t, err) {
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	}
}

func TestHandlerPost(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mock_message.NewMockRepository(ctrl)
	mockRepo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(echoCreate)

	limiter := &stubLimiter{allowed: true}
	h := NewHandler(NewService(mockRepo, limiter, stubVerifier{}))

	c, rec := testutil.CreateJSONRequest(http.MethodPost, "/api/messages", `{"content": "  great camp  ", "author": "hanako"}`, member)

	err := h.Post(c)
	if assert.NoError(t, err) {
		assert.Equal(t, http.StatusCreated, rec.Code)
		assert.Contains(t, rec.Body.String(), `"content":"great camp"`)
		assert.Contains(t, rec.Body.String(), `"isPublic":true`)
		assert.NotContains(t, rec.Body.String(), "member-1")
		assert.Equal(t, []string{"user:member-1"}, limiter.keys)
	}
}

func TestHandlerPostTooManyRequests(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mock_message.NewMockRepository(ctrl)
	h := NewHandler(NewService(mockRepo, &stubLimiter{allowed: false}, stubVerifier{}))

	c, rec := testutil.CreateJSONRequest(http.MethodPost, "/api/messages", `{"content": "hi", "isPublic": false}`, anonymous)

	err := h.Post(c)
	if assert.NoError(t, err) {
		assert.Equal(t, http.StatusTooManyRequests, rec.Code)
	}
}

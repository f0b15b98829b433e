package carousel

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"github.com/totegamma/campsite/core"
	"github.com/totegamma/campsite/x/carousel/mock"
)

func TestHandlerList(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	images := []core.CarouselImage{
		{ID: "a", URL: "https://cdn.example.com/a.png", Order: 0},
		{ID: "b", URL: "https://cdn.example.com/b.png", Order: 1},
	}

	mockRepo := mock_carousel.NewMockRepository(ctrl)
	mockRepo.EXPECT().List(gomock.Any()).Return(images, nil)

	h := NewHandler(NewService(mockRepo))

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/api/carousel", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	err := h.List(c)
	if assert.NoError(t, err) {
		assert.Equal(t, http.StatusOK, rec.Code)

		var response core.ResponseBase[[]core.CarouselImage]
		assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &response))
		assert.True(t, response.Success)
		assert.Len(t, response.Data, 2)
		assert.Equal(t, "a", response.Data[0].ID)
	}
}

func TestHandlerUpdateUnknown(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mock_carousel.NewMockRepository(ctrl)
	mockRepo.EXPECT().Get(gomock.Any(), "missing").Return(core.CarouselImage{}, core.NewErrorNotFound())

	h := NewHandler(NewService(mockRepo))

	e := echo.New()
	req := httptest.NewRequest(http.MethodPut, "/api/carousel", strings.NewReader(`{"id": "missing", "order": 2}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	err := h.Update(c)
	if assert.NoError(t, err) {
		assert.Equal(t, http.StatusNotFound, rec.Code)
		assert.JSONEq(t, `{"success": false, "error": "not found"}`, rec.Body.String())
	}
}

func TestHandlerDelete(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mock_carousel.NewMockRepository(ctrl)
	mockRepo.EXPECT().Delete(gomock.Any(), "cn0k1pmhp0ggnf0tl4r0").Return(nil)

	h := NewHandler(NewService(mockRepo))

	e := echo.New()
	req := httptest.NewRequest(http.MethodDelete, "/api/carousel?id=cn0k1pmhp0ggnf0tl4r0", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	err := h.Delete(c)
	if assert.NoError(t, err) {
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, `{"success": true}`, rec.Body.String())
	}
}

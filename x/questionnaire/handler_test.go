package questionnaire

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"github.com/totegamma/campsite/core"
	"github.com/totegamma/campsite/x/questionnaire/mock"
)

func post(h Handler, body string) *httptest.ResponseRecorder {
	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/api/questionnaire", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	h.Upsert(c)
	return rec
}

func TestHandlerUpsertRejectsOutOfRange(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mock_questionnaire.NewMockRepository(ctrl)
	h := NewHandler(NewService(mockRepo))

	rec := post(h, `{"doorIndex": 6, "url": "https://forms.example.com/6"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.JSONEq(t, `{"success": false, "error": "doorIndex must be between 0 and 5"}`, rec.Body.String())

	rec = post(h, `{"doorIndex": -1, "url": "https://forms.example.com/6"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = post(h, `{"url": "https://forms.example.com/6"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHandlerUpsert(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	link := core.QuestionnaireLink{DoorIndex: 0, URL: "https://forms.example.com/day1"}

	mockRepo := mock_questionnaire.NewMockRepository(ctrl)
	mockRepo.EXPECT().Upsert(gomock.Any(), link).Return(link, nil)

	h := NewHandler(NewService(mockRepo))

	rec := post(h, `{"doorIndex": 0, "url": "https://forms.example.com/day1"}`)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"doorIndex":0`)
}

func TestHandlerGetSingle(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mock_questionnaire.NewMockRepository(ctrl)
	mockRepo.EXPECT().Get(gomock.Any(), 3).Return(core.QuestionnaireLink{}, core.NewErrorNotFound())

	h := NewHandler(NewService(mockRepo))

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/api/questionnaire?doorIndex=3", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	err := h.List(c)
	if assert.NoError(t, err) {
		assert.Equal(t, http.StatusNotFound, rec.Code)
	}
}

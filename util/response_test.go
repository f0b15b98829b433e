package util

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"

	"github.com/totegamma/campsite/core"
)

func newContext() (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func decode(t *testing.T, rec *httptest.ResponseRecorder) core.ResponseBase[any] {
	var body core.ResponseBase[any]
	assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return body
}

func TestSuccess(t *testing.T) {
	c, rec := newContext()
	assert.NoError(t, Success(c, http.StatusCreated, echo.Map{"id": "a"}))
	assert.Equal(t, http.StatusCreated, rec.Code)

	body := decode(t, rec)
	assert.True(t, body.Success)
	assert.Equal(t, map[string]any{"id": "a"}, body.Data)

	c, rec = newContext()
	assert.NoError(t, Success(c, http.StatusOK, nil))
	assert.JSONEq(t, `{"success":true}`, rec.Body.String())
}

func TestHandleError(t *testing.T) {
	tests := []struct {
		name    string
		err     error
		status  int
		message string
	}{
		{"invalid", core.NewErrorInvalidInput("url is required"), http.StatusBadRequest, "url is required"},
		{"wrapped invalid", errors.Wrap(core.NewErrorInvalidInput("bad"), "create"), http.StatusBadRequest, "bad"},
		{"not found", core.NewErrorNotFound(), http.StatusNotFound, "not found"},
		{"unauthorized", core.NewErrorUnauthorized(), http.StatusUnauthorized, "login required"},
		{"forbidden", core.NewErrorPermissionDenied(), http.StatusForbidden, "you are not authorized to perform this action"},
		{"rate", core.NewErrorTooManyRequests(), http.StatusTooManyRequests, "too many requests"},
		{"unexpected", errors.New("pq: connection refused"), http.StatusInternalServerError, "internal server error"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, rec := newContext()
			assert.NoError(t, HandleError(c, "test", tt.err))
			assert.Equal(t, tt.status, rec.Code)

			body := decode(t, rec)
			assert.False(t, body.Success)
			assert.Equal(t, tt.message, body.Error)
		})
	}
}

func TestRequesterDefaultsToUnknown(t *testing.T) {
	c, _ := newContext()
	assert.False(t, Requester(c).IsKnown())

	c.Set(core.RequesterContextCtxKey, core.RequesterContext{Type: core.Admin, ID: "u1"})
	assert.True(t, Requester(c).IsAdmin())
}

func TestValidateURL(t *testing.T) {
	assert.NoError(t, ValidateURL("url", "https://example.com/a.png"))
	assert.Error(t, ValidateURL("url", "  "))
	assert.Error(t, ValidateURL("url", "/relative.png"))
	assert.Error(t, ValidateURL("url", "ftp://example.com/a.png"))
}

package util

import (
	"log/slog"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/totegamma/campsite/core"
)

// Success writes the success envelope
func Success(c echo.Context, status int, data any) error {
	if data == nil {
		return c.JSON(status, echo.Map{"success": true})
	}
	return c.JSON(status, echo.Map{"success": true, "data": data})
}

// Fail writes the failure envelope
func Fail(c echo.Context, status int, message string) error {
	return c.JSON(status, echo.Map{"success": false, "error": message})
}

// HandleError maps a service error to its status.
// unexpected errors are logged and never leak their detail to the caller.
func HandleError(c echo.Context, module string, err error) error {
	ctx := c.Request().Context()

	var invalid core.ErrorInvalidInput
	switch {
	case errors.As(err, &invalid):
		return Fail(c, http.StatusBadRequest, invalid.Message)
	case errors.Is(err, core.ErrorNotFound{}):
		return Fail(c, http.StatusNotFound, "not found")
	case errors.Is(err, core.ErrorUnauthorized{}):
		return Fail(c, http.StatusUnauthorized, "login required")
	case errors.Is(err, core.ErrorPermissionDenied{}):
		return Fail(c, http.StatusForbidden, "you are not authorized to perform this action")
	case errors.Is(err, core.ErrorAlreadyExists{}):
		return Fail(c, http.StatusConflict, "already exists")
	case errors.Is(err, core.ErrorTooManyRequests{}):
		return Fail(c, http.StatusTooManyRequests, "too many requests")
	}

	span := trace.SpanFromContext(ctx)
	span.RecordError(err)
	span.SetStatus(codes.Error, err.Error())

	slog.ErrorContext(
		ctx, "unexpected error",
		slog.String("error", err.Error()),
		slog.String("module", module),
		slog.String("path", c.Path()),
	)

	return Fail(c, http.StatusInternalServerError, "internal server error")
}

// Requester returns the caller identified by the auth middleware
func Requester(c echo.Context) core.RequesterContext {
	requester, ok := c.Get(core.RequesterContextCtxKey).(core.RequesterContext)
	if !ok {
		return core.RequesterContext{Type: core.Unknown}
	}
	return requester
}

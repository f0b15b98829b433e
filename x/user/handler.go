// Package user manages the display ids of signed in users
package user

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"github.com/totegamma/campsite/core"
	"github.com/totegamma/campsite/util"
)

// Handler is the interface for handling HTTP requests
type Handler interface {
	Get(c echo.Context) error
	Set(c echo.Context) error
}

type handler struct {
	service core.UserService
}

// NewHandler creates a new handler
func NewHandler(service core.UserService) Handler {
	return &handler{service}
}

type setRequest struct {
	UserID string `json:"userId"`
}

// Get returns the user id of the session owner, null until one is set
func (h *handler) Get(c echo.Context) error {
	ctx, span := tracer.Start(c.Request().Context(), "User.Handler.Get")
	defer span.End()

	claims, ok := c.Get(core.RequesterClaimsCtxKey).(core.SessionClaims)
	if !ok {
		return util.HandleError(c, "user", core.NewErrorUnauthorized())
	}

	user, err := h.service.Get(ctx, claims.Subject)
	if err != nil {
		if errors.Is(err, core.ErrorNotFound{}) {
			return util.Success(c, http.StatusOK, echo.Map{"userId": nil})
		}
		return util.HandleError(c, "user", err)
	}

	return util.Success(c, http.StatusOK, echo.Map{"userId": user.UserID})
}

func (h *handler) Set(c echo.Context) error {
	ctx, span := tracer.Start(c.Request().Context(), "User.Handler.Set")
	defer span.End()

	claims, ok := c.Get(core.RequesterClaimsCtxKey).(core.SessionClaims)
	if !ok {
		return util.HandleError(c, "user", core.NewErrorUnauthorized())
	}

	var request setRequest
	if err := c.Bind(&request); err != nil {
		return util.Fail(c, http.StatusBadRequest, "invalid request body")
	}

	user, err := h.service.SetUserID(ctx, claims, request.UserID)
	if err != nil {
		return util.HandleError(c, "user", err)
	}

	return util.Success(c, http.StatusOK, echo.Map{"userId": user.UserID})
}

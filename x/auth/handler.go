package auth

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/totegamma/campsite/core"
	"github.com/totegamma/campsite/util"
)

// Handler is the interface for handling HTTP requests
type Handler interface {
	Session(c echo.Context) error
	Logout(c echo.Context) error
}

type handler struct {
	session core.SessionService
}

// NewHandler creates a new handler
func NewHandler(session core.SessionService) Handler {
	return &handler{session}
}

// Session reports who the caller is. polled by the frontend for login state
func (h *handler) Session(c echo.Context) error {
	_, span := tracer.Start(c.Request().Context(), "Auth.Handler.Session")
	defer span.End()

	return util.Success(c, http.StatusOK, util.Requester(c))
}

// Logout revokes the session token of the caller
func (h *handler) Logout(c echo.Context) error {
	ctx, span := tracer.Start(c.Request().Context(), "Auth.Handler.Logout")
	defer span.End()

	claims, ok := c.Get(core.RequesterClaimsCtxKey).(core.SessionClaims)
	if !ok {
		return util.HandleError(c, "auth", core.NewErrorUnauthorized())
	}

	err := h.session.Revoke(ctx, claims.JTI, claims.ExpiresAt)
	if err != nil {
		return util.HandleError(c, "auth", err)
	}

	c.SetCookie(&http.Cookie{
		Name:     core.SessionCookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
	})

	return util.Success(c, http.StatusOK, nil)
}

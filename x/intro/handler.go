// Package intro serves the images of the fixed top page sections
package intro

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/totegamma/campsite/core"
	"github.com/totegamma/campsite/util"
)

// Handler is the interface for handling HTTP requests
type Handler interface {
	List(c echo.Context) error
	Upsert(c echo.Context) error
	Delete(c echo.Context) error
}

type handler struct {
	service core.IntroService
}

// NewHandler creates a new handler
func NewHandler(service core.IntroService) Handler {
	return &handler{service}
}

func (h *handler) List(c echo.Context) error {
	ctx, span := tracer.Start(c.Request().Context(), "Intro.Handler.List")
	defer span.End()

	images, err := h.service.List(ctx)
	if err != nil {
		return util.HandleError(c, "intro", err)
	}

	return util.Success(c, http.StatusOK, images)
}

func (h *handler) Upsert(c echo.Context) error {
	ctx, span := tracer.Start(c.Request().Context(), "Intro.Handler.Upsert")
	defer span.End()

	var request core.IntroSectionUpsert
	if err := c.Bind(&request); err != nil {
		return util.Fail(c, http.StatusBadRequest, "invalid request body")
	}

	image, err := h.service.Upsert(ctx, request)
	if err != nil {
		return util.HandleError(c, "intro", err)
	}

	return util.Success(c, http.StatusOK, image)
}

func (h *handler) Delete(c echo.Context) error {
	ctx, span := tracer.Start(c.Request().Context(), "Intro.Handler.Delete")
	defer span.End()

	err := h.service.Delete(ctx, c.QueryParam("sectionKey"))
	if err != nil {
		return util.HandleError(c, "intro", err)
	}

	return util.Success(c, http.StatusOK, nil)
}

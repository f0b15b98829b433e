// Package carousel serves the top page image rotation
package carousel

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/totegamma/campsite/core"
	"github.com/totegamma/campsite/util"
)

// Handler is the interface for handling HTTP requests
type Handler interface {
	List(c echo.Context) error
	Create(c echo.Context) error
	Update(c echo.Context) error
	Delete(c echo.Context) error
}

type handler struct {
	service core.CarouselService
}

// NewHandler creates a new handler
func NewHandler(service core.CarouselService) Handler {
	return &handler{service}
}

type createRequest struct {
	URL      string `json:"url"`
	PublicID string `json:"publicId"`
	Order    *int   `json:"order"`
}

type updateRequest struct {
	ID string `json:"id"`
	core.CarouselPatch
}

func (h *handler) List(c echo.Context) error {
	ctx, span := tracer.Start(c.Request().Context(), "Carousel.Handler.List")
	defer span.End()

	images, err := h.service.List(ctx)
	if err != nil {
		return util.HandleError(c, "carousel", err)
	}

	return util.Success(c, http.StatusOK, images)
}

func (h *handler) Create(c echo.Context) error {
	ctx, span := tracer.Start(c.Request().Context(), "Carousel.Handler.Create")
	defer span.End()

	var request createRequest
	if err := c.Bind(&request); err != nil {
		return util.Fail(c, http.StatusBadRequest, "invalid request body")
	}

	image := core.CarouselImage{
		URL:      request.URL,
		PublicID: request.PublicID,
	}
	if request.Order != nil {
		image.Order = *request.Order
	}

	created, err := h.service.Create(ctx, image)
	if err != nil {
		return util.HandleError(c, "carousel", err)
	}

	return util.Success(c, http.StatusCreated, created)
}

func (h *handler) Update(c echo.Context) error {
	ctx, span := tracer.Start(c.Request().Context(), "Carousel.Handler.Update")
	defer span.End()

	var request updateRequest
	if err := c.Bind(&request); err != nil {
		return util.Fail(c, http.StatusBadRequest, "invalid request body")
	}

	updated, err := h.service.Update(ctx, request.ID, request.CarouselPatch)
	if err != nil {
		return util.HandleError(c, "carousel", err)
	}

	return util.Success(c, http.StatusOK, updated)
}

func (h *handler) Delete(c echo.Context) error {
	ctx, span := tracer.Start(c.Request().Context(), "Carousel.Handler.Delete")
	defer span.End()

	err := h.service.Delete(ctx, c.QueryParam("id"))
	if err != nil {
		return util.HandleError(c, "carousel", err)
	}

	return util.Success(c, http.StatusOK, nil)
}

// Package pinned serves the singleton images of the site (key visual, schedule)
package pinned

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
	Replace(c echo.Context) error
	Clear(c echo.Context) error
}

type handler struct {
	service core.PinnedService
	slot    string
}

// NewHandler creates a handler bound to one slot
func NewHandler(service core.PinnedService, slot string) Handler {
	return &handler{service, slot}
}

type replaceRequest struct {
	URL      string `json:"url"`
	PublicID string `json:"publicId"`
}

// Get returns the current image, or null when the slot is empty
func (h *handler) Get(c echo.Context) error {
	ctx, span := tracer.Start(c.Request().Context(), "Pinned.Handler.Get")
	defer span.End()

	image, err := h.service.Get(ctx, h.slot)
	if err != nil {
		if errors.Is(err, core.ErrorNotFound{}) {
			return c.JSON(http.StatusOK, echo.Map{"success": true, "data": nil})
		}
		return util.HandleError(c, "pinned", err)
	}

	return util.Success(c, http.StatusOK, image)
}

// Replace swaps the image of the slot
func (h *handler) Replace(c echo.Context) error {
	ctx, span := tracer.Start(c.Request().Context(), "Pinned.Handler.Replace")
	defer span.End()

	var request replaceRequest
	if err := c.Bind(&request); err != nil {
		return util.Fail(c, http.StatusBadRequest, "invalid request body")
	}

	image, err := h.service.Replace(ctx, core.PinnedImage{
		Slot:     h.slot,
		URL:      request.URL,
		PublicID: request.PublicID,
	})
	if err != nil {
		return util.HandleError(c, "pinned", err)
	}

	return util.Success(c, http.StatusCreated, image)
}

// Clear empties the slot
func (h *handler) Clear(c echo.Context) error {
	ctx, span := tracer.Start(c.Request().Context(), "Pinned.Handler.Clear")
	defer span.End()

	err := h.service.Clear(ctx, h.slot)
	if err != nil {
		return util.HandleError(c, "pinned", err)
	}

	return util.Success(c, http.StatusOK, nil)
}

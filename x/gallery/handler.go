// Package gallery serves the photo archive of past camps
package gallery

import (
	"net/http"
	"strconv"

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
	service core.GalleryService
}

// NewHandler creates a new handler
func NewHandler(service core.GalleryService) Handler {
	return &handler{service}
}

type createRequest struct {
	Title       string  `json:"title"`
	Description *string `json:"description"`
	ImageURL    string  `json:"imageUrl"`
	Category    string  `json:"category"`
	Year        *int    `json:"year"`
	Date        *string `json:"date"`
	Order       *int    `json:"order"`
}

type updateRequest struct {
	ID string `json:"id"`
	core.GalleryPatch
}

// List accepts ?category= and ?year= filters
func (h *handler) List(c echo.Context) error {
	ctx, span := tracer.Start(c.Request().Context(), "Gallery.Handler.List")
	defer span.End()

	filter := core.GalleryFilter{Category: c.QueryParam("category")}
	if query := c.QueryParam("year"); query != "" {
		year, err := strconv.Atoi(query)
		if err != nil {
			return util.Fail(c, http.StatusBadRequest, "year must be a number")
		}
		filter.Year = year
	}

	images, err := h.service.List(ctx, filter)
	if err != nil {
		return util.HandleError(c, "gallery", err)
	}

	return util.Success(c, http.StatusOK, images)
}

func (h *handler) Create(c echo.Context) error {
	ctx, span := tracer.Start(c.Request().Context(), "Gallery.Handler.Create")
	defer span.End()

	var request createRequest
	if err := c.Bind(&request); err != nil {
		return util.Fail(c, http.StatusBadRequest, "invalid request body")
	}

	created, err := h.service.Create(ctx, core.GalleryImage{
		Title:       request.Title,
		Description: request.Description,
		ImageURL:    request.ImageURL,
		Category:    request.Category,
		Year:        request.Year,
		Date:        request.Date,
		Order:       request.Order,
	})
	if err != nil {
		return util.HandleError(c, "gallery", err)
	}

	return util.Success(c, http.StatusCreated, created)
}

func (h *handler) Update(c echo.Context) error {
	ctx, span := tracer.Start(c.Request().Context(), "Gallery.Handler.Update")
	defer span.End()

	var request updateRequest
	if err := c.Bind(&request); err != nil {
		return util.Fail(c, http.StatusBadRequest, "invalid request body")
	}

	updated, err := h.service.Update(ctx, request.ID, request.GalleryPatch)
	if err != nil {
		return util.HandleError(c, "gallery", err)
	}

	return util.Success(c, http.StatusOK, updated)
}

func (h *handler) Delete(c echo.Context) error {
	ctx, span := tracer.Start(c.Request().Context(), "Gallery.Handler.Delete")
	defer span.End()

	err := h.service.Delete(ctx, c.QueryParam("id"))
	if err != nil {
		return util.HandleError(c, "gallery", err)
	}

	return util.Success(c, http.StatusOK, nil)
}

// Package instagram embeds instagram posts and reels
package instagram

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
	service core.InstagramService
}

// NewHandler creates a new handler
func NewHandler(service core.InstagramService) Handler {
	return &handler{service}
}

type createRequest struct {
	URL   string  `json:"url"`
	Name  *string `json:"name"`
	Order *int    `json:"order"`
}

type updateRequest struct {
	ID string `json:"id"`
	core.InstagramPatch
}

func (h *handler) List(c echo.Context) error {
	ctx, span := tracer.Start(c.Request().Context(), "Instagram.Handler.List")
	defer span.End()

	posts, err := h.service.List(ctx)
	if err != nil {
		return util.HandleError(c, "instagram", err)
	}

	return util.Success(c, http.StatusOK, posts)
}

func (h *handler) Create(c echo.Context) error {
	ctx, span := tracer.Start(c.Request().Context(), "Instagram.Handler.Create")
	defer span.End()

	var request createRequest
	if err := c.Bind(&request); err != nil {
		return util.Fail(c, http.StatusBadRequest, "invalid request body")
	}

	post := core.InstagramPost{
		URL:  request.URL,
		Name: request.Name,
	}
	if request.Order != nil {
		post.Order = *request.Order
	}

	created, err := h.service.Create(ctx, post)
	if err != nil {
		return util.HandleError(c, "instagram", err)
	}

	return util.Success(c, http.StatusCreated, created)
}

func (h *handler) Update(c echo.Context) error {
	ctx, span := tracer.Start(c.Request().Context(), "Instagram.Handler.Update")
	defer span.End()

	var request updateRequest
	if err := c.Bind(&request); err != nil {
		return util.Fail(c, http.StatusBadRequest, "invalid request body")
	}

	updated, err := h.service.Update(ctx, request.ID, request.InstagramPatch)
	if err != nil {
		return util.HandleError(c, "instagram", err)
	}

	return util.Success(c, http.StatusOK, updated)
}

func (h *handler) Delete(c echo.Context) error {
	ctx, span := tracer.Start(c.Request().Context(), "Instagram.Handler.Delete")
	defer span.End()

	err := h.service.Delete(ctx, c.QueryParam("id"))
	if err != nil {
		return util.HandleError(c, "instagram", err)
	}

	return util.Success(c, http.StatusOK, nil)
}

// Package questionnaire serves the daily questionnaire links behind the doors
package questionnaire

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
	Upsert(c echo.Context) error
}

type handler struct {
	service core.QuestionnaireService
}

// NewHandler creates a new handler
func NewHandler(service core.QuestionnaireService) Handler {
	return &handler{service}
}

type upsertRequest struct {
	DoorIndex *int   `json:"doorIndex"`
	URL       string `json:"url"`
}

// List returns every link, or a single one with ?doorIndex=
func (h *handler) List(c echo.Context) error {
	ctx, span := tracer.Start(c.Request().Context(), "Questionnaire.Handler.List")
	defer span.End()

	if query := c.QueryParam("doorIndex"); query != "" {
		doorIndex, err := strconv.Atoi(query)
		if err != nil {
			return util.Fail(c, http.StatusBadRequest, "doorIndex must be a number")
		}
		link, err := h.service.Get(ctx, doorIndex)
		if err != nil {
			return util.HandleError(c, "questionnaire", err)
		}
		return util.Success(c, http.StatusOK, link)
	}

	links, err := h.service.List(ctx)
	if err != nil {
		return util.HandleError(c, "questionnaire", err)
	}

	return util.Success(c, http.StatusOK, links)
}

// Upsert serves both POST and PUT
func (h *handler) Upsert(c echo.Context) error {
	ctx, span := tracer.Start(c.Request().Context(), "Questionnaire.Handler.Upsert")
	defer span.End()

	var request upsertRequest
	if err := c.Bind(&request); err != nil {
		return util.Fail(c, http.StatusBadRequest, "invalid request body")
	}
	if request.DoorIndex == nil {
		return util.Fail(c, http.StatusBadRequest, "doorIndex is required")
	}

	link, err := h.service.Upsert(ctx, core.QuestionnaireLink{
		DoorIndex: *request.DoorIndex,
		URL:       request.URL,
	})
	if err != nil {
		return util.HandleError(c, "questionnaire", err)
	}

	return util.Success(c, http.StatusOK, link)
}

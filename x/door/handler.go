// Package door implements the time gated daily questionnaire doors
package door

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/totegamma/campsite/core"
	"github.com/totegamma/campsite/util"
)

// Handler is the interface for handling HTTP requests
type Handler interface {
	Status(c echo.Context) error
}

type handler struct {
	service core.DoorService
	now     func() time.Time
}

// NewHandler creates a new handler
func NewHandler(service core.DoorService) Handler {
	return &handler{service, time.Now}
}

func (h *handler) Status(c echo.Context) error {
	ctx, span := tracer.Start(c.Request().Context(), "Door.Handler.Status")
	defer span.End()

	status, err := h.service.Status(ctx, h.now())
	if err != nil {
		return util.HandleError(c, "door", err)
	}

	return util.Success(c, http.StatusOK, status)
}

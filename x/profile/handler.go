// Package profile serves the public camp information
package profile

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"go.opentelemetry.io/otel"

	"github.com/totegamma/campsite/core"
	"github.com/totegamma/campsite/x/door"
)

var tracer = otel.Tracer("profile")

// Handler is the interface for handling HTTP requests
type Handler interface {
	Get(c echo.Context) error
}

type handler struct {
	profile core.Profile
	config  core.Config
}

// NewHandler creates a new handler
func NewHandler(profile core.Profile, config core.Config) Handler {
	return &handler{profile, config}
}

type response struct {
	core.Profile
	Doors []window `json:"doors"`
}

type window struct {
	Start string `json:"start"`
	End   string `json:"end"`
}

// Get returns the camp profile together with the door schedule
func (h *handler) Get(c echo.Context) error {
	_, span := tracer.Start(c.Request().Context(), "Profile.Handler.Get")
	defer span.End()

	schedule := door.Schedule(h.config.Doors)
	windows := make([]window, len(schedule))
	for i, w := range schedule {
		windows[i] = window{
			Start: w.Start.Format(time.RFC3339),
			End:   w.End.Format(time.RFC3339),
		}
	}

	return c.JSON(http.StatusOK, echo.Map{
		"success": true,
		"data":    response{Profile: h.profile, Doors: windows},
	})
}

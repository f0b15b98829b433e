// Package upload stores images in the object store
package upload

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/totegamma/campsite/core"
	"github.com/totegamma/campsite/util"
)

// Handler is the interface for handling HTTP requests
type Handler interface {
	Upload(c echo.Context) error
}

type handler struct {
	service core.UploadService
}

// NewHandler creates a new handler
func NewHandler(service core.UploadService) Handler {
	return &handler{service}
}

// Upload accepts a multipart form with a single `file` field
func (h *handler) Upload(c echo.Context) error {
	ctx, span := tracer.Start(c.Request().Context(), "Upload.Handler.Upload")
	defer span.End()

	header, err := c.FormFile("file")
	if err != nil {
		return util.Fail(c, http.StatusBadRequest, "file is required")
	}

	file, err := header.Open()
	if err != nil {
		return util.HandleError(c, "upload", err)
	}
	defer file.Close()

	result, err := h.service.Upload(ctx, header.Filename, header.Header.Get(echo.HeaderContentType), header.Size, file)
	if err != nil {
		return util.HandleError(c, "upload", err)
	}

	return util.Success(c, http.StatusCreated, result)
}

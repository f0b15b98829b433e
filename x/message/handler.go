// Package message is the public message board
package message

import (
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/totegamma/campsite/core"
	"github.com/totegamma/campsite/util"
)

// Handler is the interface for handling HTTP requests
type Handler interface {
	List(c echo.Context) error
	Post(c echo.Context) error
	Delete(c echo.Context) error
	Export(c echo.Context) error
}

type handler struct {
	service core.MessageService
}

// NewHandler creates a new handler
func NewHandler(service core.MessageService) Handler {
	return &handler{service}
}

type postRequest struct {
	Content  string  `json:"content"`
	Author   *string `json:"author"`
	IsPublic *bool   `json:"isPublic"`
	Captcha  string  `json:"captcha"`
}

// List returns public messages, private ones too for admins.
// the legacy isAdmin query flag is ignored.
func (h *handler) List(c echo.Context) error {
	ctx, span := tracer.Start(c.Request().Context(), "Message.Handler.List")
	defer span.End()

	limit := DefaultListLimit
	if query := c.QueryParam("limit"); query != "" {
		parsed, err := strconv.Atoi(query)
		if err != nil || parsed <= 0 {
			return util.Fail(c, http.StatusBadRequest, "limit must be a positive number")
		}
		limit = parsed
	}

	requester := util.Requester(c)
	messages, err := h.service.List(ctx, requester.IsAdmin(), limit)
	if err != nil {
		return util.HandleError(c, "message", err)
	}

	return util.Success(c, http.StatusOK, messages)
}

func (h *handler) Post(c echo.Context) error {
	ctx, span := tracer.Start(c.Request().Context(), "Message.Handler.Post")
	defer span.End()

	var request postRequest
	if err := c.Bind(&request); err != nil {
		return util.Fail(c, http.StatusBadRequest, "invalid request body")
	}

	message := core.Message{
		Content:  request.Content,
		Author:   request.Author,
		IsPublic: true,
	}
	if request.IsPublic != nil {
		message.IsPublic = *request.IsPublic
	}

	clientKey := "ip:" + c.RealIP()
	requester := util.Requester(c)
	if requester.IsKnown() {
		id := requester.ID
		message.AuthorID = &id
		clientKey = "user:" + id
	}

	created, err := h.service.Post(ctx, message, clientKey, request.Captcha)
	if err != nil {
		return util.HandleError(c, "message", err)
	}

	return util.Success(c, http.StatusCreated, created)
}

// Delete removes a message. admins only.
func (h *handler) Delete(c echo.Context) error {
	ctx, span := tracer.Start(c.Request().Context(), "Message.Handler.Delete")
	defer span.End()

	if !util.Requester(c).IsAdmin() {
		return util.HandleError(c, "message", core.NewErrorPermissionDenied())
	}

	err := h.service.Delete(ctx, c.QueryParam("id"))
	if err != nil {
		return util.HandleError(c, "message", err)
	}

	return util.Success(c, http.StatusOK, nil)
}

// Export downloads every message as a spreadsheet. admins only.
func (h *handler) Export(c echo.Context) error {
	ctx, span := tracer.Start(c.Request().Context(), "Message.Handler.Export")
	defer span.End()

	if !util.Requester(c).IsAdmin() {
		return util.HandleError(c, "message", core.NewErrorPermissionDenied())
	}

	data, err := h.service.Export(ctx)
	if err != nil {
		return util.HandleError(c, "message", err)
	}

	filename := fmt.Sprintf("messages-%s.xlsx", time.Now().Format("20060102"))
	c.Response().Header().Set(echo.HeaderContentDisposition, fmt.Sprintf("attachment; filename=%q", filename))
	return c.Blob(http.StatusOK, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", data)
}

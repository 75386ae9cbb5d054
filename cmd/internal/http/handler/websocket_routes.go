package handler

import (
	"boycottwatch/cmd/internal/contract"
	"boycottwatch/cmd/internal/infrastructure/aws/websocket"
	"boycottwatch/cmd/internal/utils/apierror"
	"net/http"

	"github.com/labstack/echo/v4"
)

type FeedService interface {
	RegisterConnection(connID string) apierror.ErrorResponse
	RemoveConnection(connectionID string)
	HandleMessage(msg *contract.IncomingSocketMessage, connID string)
}

type DefaultWSRoute struct {
	Feed FeedService
}

func NewWSDefault(feed FeedService) *DefaultWSRoute {
	return &DefaultWSRoute{Feed: feed}
}

func (h *DefaultWSRoute) HandleConnect(c echo.Context) error {
	connID := c.Request().Header.Get(websocket.HeaderConnectionID)
	if connID == "" {
		return c.JSON(http.StatusBadRequest, apierror.NewMissingParamError("connectionId"))
	}

	if apierr := h.Feed.RegisterConnection(connID); apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}
	return c.NoContent(http.StatusOK)
}

func (h *DefaultWSRoute) HandleDisconnect(c echo.Context) error {
	connID := c.Request().Header.Get(websocket.HeaderConnectionID)
	if connID != "" {
		h.Feed.RemoveConnection(connID)
	}
	return c.NoContent(http.StatusOK)
}

func (h *DefaultWSRoute) HandleMessage(c echo.Context) error {
	connID := c.Request().Header.Get(websocket.HeaderConnectionID)
	if connID == "" {
		return c.JSON(http.StatusBadRequest, apierror.NewMissingParamError("connectionId"))
	}

	var msg contract.IncomingSocketMessage
	if err := c.Bind(&msg); err != nil {
		return c.JSON(http.StatusBadRequest, apierror.MalformedJSONError)
	}

	h.Feed.HandleMessage(&msg, connID)
	return c.NoContent(http.StatusOK)
}

package handler

import (
	"errors"
	"net/http"

	"github.com/courtside/venue-service/internal/dto"
	"github.com/courtside/venue-service/internal/service"
	"github.com/courtside/venue-service/pkg/auth"
	"github.com/labstack/echo/v4"
)

type NotificationHandler struct {
	svc service.NotificationService
}

func NewNotificationHandler(svc service.NotificationService) *NotificationHandler {
	return &NotificationHandler{svc: svc}
}

func (h *NotificationHandler) RegisterRoutes(g *echo.Group) {
	g.GET("/notifications", h.List)
}

func (h *NotificationHandler) List(c echo.Context) error {
	ctx := c.Request().Context()
	ns, err := h.svc.List(ctx, auth.FromContext(ctx))
	if err != nil {
		if errors.Is(err, service.ErrUnauthorized) {
			return echo.NewHTTPError(http.StatusUnauthorized, "Unauthorized")
		}
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to fetch notifications")
	}
	return c.JSON(http.StatusOK, dto.ToNotificationResponses(ns))
}

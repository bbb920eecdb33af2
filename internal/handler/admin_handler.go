package handler

import (
	"net/http"

	"github.com/courtside/venue-service/internal/service"
	"github.com/labstack/echo/v4"
)

type AdminHandler struct {
	svc service.AdminService
}

func NewAdminHandler(svc service.AdminService) *AdminHandler {
	return &AdminHandler{svc: svc}
}

func (h *AdminHandler) RegisterRoutes(admin *echo.Group) {
	admin.GET("/overview", h.Overview)
}

func (h *AdminHandler) Overview(c echo.Context) error {
	o, err := h.svc.Overview(c.Request().Context())
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to fetch overview")
	}
	return c.JSON(http.StatusOK, o)
}

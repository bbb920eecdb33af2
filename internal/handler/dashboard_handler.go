package handler

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/courtside/venue-service/internal/report"
	"github.com/courtside/venue-service/internal/service"
	"github.com/courtside/venue-service/pkg/auth"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

type DashboardHandler struct {
	svc service.DashboardService
	log *zap.Logger
}

func NewDashboardHandler(svc service.DashboardService, log *zap.Logger) *DashboardHandler {
	return &DashboardHandler{svc: svc, log: log}
}

// RegisterRoutes expects a group that already resolved the caller. The owner
// role is checked by the service so that non-owners get 401 like anonymous callers.
func (h *DashboardHandler) RegisterRoutes(g *echo.Group) {
	g.GET("/dashboard", h.GetDashboard)
	g.GET("/dashboard/export", h.ExportDashboard)
}

func (h *DashboardHandler) dashboard(c echo.Context) (*service.Dashboard, error) {
	ctx := c.Request().Context()
	d, err := h.svc.Dashboard(ctx, auth.FromContext(ctx))
	if err != nil {
		if errors.Is(err, service.ErrUnauthorized) {
			return nil, echo.NewHTTPError(http.StatusUnauthorized, "Unauthorized")
		}
		return nil, echo.NewHTTPError(http.StatusInternalServerError, "Failed to fetch dashboard data")
	}
	return d, nil
}

func (h *DashboardHandler) GetDashboard(c echo.Context) error {
	d, err := h.dashboard(c)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, d)
}

func (h *DashboardHandler) ExportDashboard(c echo.Context) error {
	d, err := h.dashboard(c)
	if err != nil {
		return err
	}

	b, err := report.DashboardWorkbook(d)
	if err != nil {
		h.log.Error("build dashboard workbook", zap.Error(err))
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to export dashboard")
	}

	name := fmt.Sprintf("dashboard-%s.xlsx", d.GeneratedAt.Format("2006-01-02"))
	c.Response().Header().Set(echo.HeaderContentDisposition, fmt.Sprintf("attachment; filename=%q", name))
	return c.Blob(http.StatusOK, report.ContentTypeXLSX, b)
}

package handler

import (
	"errors"
	"net/http"

	"github.com/courtside/venue-service/internal/dto"
	"github.com/courtside/venue-service/internal/service"
	"github.com/courtside/venue-service/pkg/auth"
	"github.com/labstack/echo/v4"
)

type VenueHandler struct {
	svc service.VenueService
}

func NewVenueHandler(svc service.VenueService) *VenueHandler {
	return &VenueHandler{svc: svc}
}

// RegisterRoutes mounts the moderation routes on an admin-only group and the
// venue management routes on an owner-only group.
func (h *VenueHandler) RegisterRoutes(admin, owner *echo.Group) {
	admin.GET("/venues/pending", h.ListPending)
	admin.PATCH("/venues/:id/approval", h.SetApprovalStatus)

	owner.POST("/venues", h.CreateVenue)
	owner.GET("/venues", h.ListOwned)
}

func (h *VenueHandler) ListPending(c echo.Context) error {
	venues, err := h.svc.ListPending(c.Request().Context())
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to fetch pending venues")
	}
	return c.JSON(http.StatusOK, dto.ToVenueResponses(venues))
}

func (h *VenueHandler) SetApprovalStatus(c echo.Context) error {
	var req dto.ApprovalRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid status")
	}

	venue, err := h.svc.SetApprovalStatus(c.Request().Context(), c.Param("id"), req.Status)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidStatus):
			return echo.NewHTTPError(http.StatusBadRequest, "Invalid status")
		case errors.Is(err, service.ErrVenueNotFound):
			return echo.NewHTTPError(http.StatusNotFound, "Venue not found")
		default:
			return echo.NewHTTPError(http.StatusInternalServerError, "Failed to update venue status")
		}
	}

	return c.JSON(http.StatusOK, dto.ApprovalResponse{Success: true, Venue: dto.ToVenueResponse(venue)})
}

func (h *VenueHandler) CreateVenue(c echo.Context) error {
	var req dto.CreateVenueRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}

	in := service.CreateVenueInput{
		Name:        req.Name,
		Description: req.Description,
		Address:     req.Address,
		City:        req.City,
		Images:      req.Images,
	}
	for _, ct := range req.Courts {
		in.Courts = append(in.Courts, service.CourtInput{Name: ct.Name, SportType: ct.SportType})
	}

	venue, err := h.svc.CreateVenue(c.Request().Context(), auth.FromContext(c.Request().Context()), in)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrUnauthorized):
			return echo.NewHTTPError(http.StatusUnauthorized, "Unauthorized")
		case errors.Is(err, service.ErrVenueIncomplete):
			return echo.NewHTTPError(http.StatusBadRequest, "Name, address and city are required")
		default:
			return echo.NewHTTPError(http.StatusInternalServerError, "Failed to add venue")
		}
	}

	return c.JSON(http.StatusCreated, dto.ToVenueResponse(venue))
}

func (h *VenueHandler) ListOwned(c echo.Context) error {
	venues, err := h.svc.ListOwned(c.Request().Context(), auth.FromContext(c.Request().Context()))
	if err != nil {
		if errors.Is(err, service.ErrUnauthorized) {
			return echo.NewHTTPError(http.StatusUnauthorized, "Unauthorized")
		}
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to fetch venues")
	}
	return c.JSON(http.StatusOK, dto.ToVenueResponses(venues))
}

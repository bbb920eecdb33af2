package dto

import (
	"time"

	"github.com/courtside/venue-service/internal/models"
)

type ErrorResponse struct {
	Error string `json:"error"`
}

type UserResponse struct {
	ID    string      `json:"id"`
	Name  string      `json:"name"`
	Email string      `json:"email"`
	Phone string      `json:"phone,omitempty"`
	Role  models.Role `json:"role"`
}

type CourtResponse struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	SportType string `json:"sport_type"`
}

type VenueResponse struct {
	ID             string                `json:"id"`
	Name           string                `json:"name"`
	Description    string                `json:"description"`
	Address        string                `json:"address"`
	City           string                `json:"city"`
	Images         []string              `json:"images"`
	ApprovalStatus models.ApprovalStatus `json:"approval_status"`
	OwnerID        string                `json:"owner_id"`
	Owner          *UserResponse         `json:"owner,omitempty"`
	Courts         []CourtResponse       `json:"courts"`
	CreatedAt      time.Time             `json:"created_at"`
	UpdatedAt      time.Time             `json:"updated_at"`
}

type ApprovalResponse struct {
	Success bool          `json:"success"`
	Venue   VenueResponse `json:"venue"`
}

type LoginResponse struct {
	Token     string       `json:"token"`
	ExpiresAt time.Time    `json:"expires_at"`
	User      UserResponse `json:"user"`
}

type NotificationResponse struct {
	ID        string    `json:"id"`
	Kind      string    `json:"kind"`
	Title     string    `json:"title"`
	Body      string    `json:"body"`
	CreatedAt time.Time `json:"created_at"`
}

func ToUserResponse(u *models.User) UserResponse {
	return UserResponse{
		ID:    u.ID,
		Name:  u.Name,
		Email: u.Email,
		Phone: u.Phone,
		Role:  u.Role,
	}
}

func ToVenueResponse(v *models.Venue) VenueResponse {
	resp := VenueResponse{
		ID:             v.ID,
		Name:           v.Name,
		Description:    v.Description,
		Address:        v.Address,
		City:           v.City,
		Images:         v.Images,
		ApprovalStatus: v.ApprovalStatus,
		OwnerID:        v.OwnerID,
		Courts:         make([]CourtResponse, len(v.Courts)),
		CreatedAt:      v.CreatedAt,
		UpdatedAt:      v.UpdatedAt,
	}
	if resp.Images == nil {
		resp.Images = []string{}
	}
	if v.Owner != nil {
		owner := ToUserResponse(v.Owner)
		resp.Owner = &owner
	}
	for i, c := range v.Courts {
		resp.Courts[i] = CourtResponse{ID: c.ID, Name: c.Name, SportType: c.SportType}
	}
	return resp
}

func ToVenueResponses(venues []models.Venue) []VenueResponse {
	out := make([]VenueResponse, len(venues))
	for i := range venues {
		out[i] = ToVenueResponse(&venues[i])
	}
	return out
}

func ToNotificationResponses(ns []models.Notification) []NotificationResponse {
	out := make([]NotificationResponse, len(ns))
	for i, n := range ns {
		out[i] = NotificationResponse{ID: n.ID, Kind: n.Kind, Title: n.Title, Body: n.Body, CreatedAt: n.CreatedAt}
	}
	return out
}

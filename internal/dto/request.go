package dto

import "github.com/courtside/venue-service/internal/models"

type SignupRequest struct {
	Email           string      `json:"email"`
	Password        string      `json:"password"`
	ConfirmPassword string      `json:"confirm_password"`
	Name            string      `json:"name"`
	Phone           string      `json:"phone"`
	Role            models.Role `json:"role"`
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type ApprovalRequest struct {
	Status models.ApprovalStatus `json:"status"`
}

type CourtRequest struct {
	Name      string `json:"name"`
	SportType string `json:"sport_type"`
}

type CreateVenueRequest struct {
	Name        string         `json:"name"`
	Description string         `json:"description"`
	Address     string         `json:"address"`
	City        string         `json:"city"`
	Images      []string       `json:"images"`
	Courts      []CourtRequest `json:"courts"`
}

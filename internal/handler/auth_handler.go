package handler

import (
	"errors"
	"net/http"

	"github.com/courtside/venue-service/internal/dto"
	"github.com/courtside/venue-service/internal/service"
	"github.com/courtside/venue-service/pkg/auth"
	"github.com/labstack/echo/v4"
)

type AuthHandler struct {
	svc service.AuthService
}

func NewAuthHandler(svc service.AuthService) *AuthHandler {
	return &AuthHandler{svc: svc}
}

// RegisterRoutes mounts signup and login on public, logout on authed. limit
// throttles login attempts and may be nil.
func (h *AuthHandler) RegisterRoutes(public, authed *echo.Group, limit echo.MiddlewareFunc) {
	public.POST("/signup", h.Signup)
	if limit != nil {
		public.POST("/login", h.Login, limit)
	} else {
		public.POST("/login", h.Login)
	}
	authed.POST("/logout", h.Logout)
}

var signupMessages = map[error]string{
	service.ErrMissingFields:    "All fields are required",
	service.ErrPasswordMismatch: "Passwords do not match",
	service.ErrPasswordTooShort: "Password must be at least 8 characters",
	service.ErrPasswordTooLong:  "Password must be at most 72 bytes",
	service.ErrInvalidRole:      "Role must be CUSTOMER or OWNER",
}

func (h *AuthHandler) Signup(c echo.Context) error {
	var req dto.SignupRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "All fields are required")
	}

	user, err := h.svc.Signup(c.Request().Context(), service.SignupInput{
		Email:           req.Email,
		Password:        req.Password,
		ConfirmPassword: req.ConfirmPassword,
		Name:            req.Name,
		Phone:           req.Phone,
		Role:            req.Role,
	})
	if err != nil {
		for target, msg := range signupMessages {
			if errors.Is(err, target) {
				return echo.NewHTTPError(http.StatusBadRequest, msg)
			}
		}
		if errors.Is(err, service.ErrEmailTaken) {
			return echo.NewHTTPError(http.StatusConflict, "Email already in use")
		}
		return echo.NewHTTPError(http.StatusInternalServerError, "An error occurred during signup")
	}

	return c.JSON(http.StatusCreated, dto.ToUserResponse(user))
}

func (h *AuthHandler) Login(c echo.Context) error {
	var req dto.LoginRequest
	if err := c.Bind(&req); err != nil || req.Email == "" || req.Password == "" {
		return echo.NewHTTPError(http.StatusUnauthorized, "Invalid email or password")
	}

	res, err := h.svc.Login(c.Request().Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, service.ErrInvalidCredentials) {
			return echo.NewHTTPError(http.StatusUnauthorized, "Invalid email or password")
		}
		return echo.NewHTTPError(http.StatusInternalServerError, "An error occurred during login")
	}

	return c.JSON(http.StatusOK, dto.LoginResponse{
		Token:     res.Token,
		ExpiresAt: res.ExpiresAt,
		User:      dto.ToUserResponse(res.User),
	})
}

func (h *AuthHandler) Logout(c echo.Context) error {
	ctx := c.Request().Context()
	if err := h.svc.Logout(ctx, auth.FromContext(ctx)); err != nil {
		if errors.Is(err, service.ErrUnauthorized) {
			return echo.NewHTTPError(http.StatusUnauthorized, "Unauthorized")
		}
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to sign out")
	}
	return c.NoContent(http.StatusNoContent)
}

package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/courtside/venue-service/internal/models"
	"github.com/courtside/venue-service/internal/repository"
	"github.com/courtside/venue-service/pkg/auth"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

const (
	minPasswordLen   = 8
	// bcrypt only accepts 72 input bytes.
	maxPasswordBytes = 72
	bcryptCost       = 10
)

var (
	ErrMissingFields      = errors.New("all fields are required")
	ErrPasswordMismatch   = errors.New("passwords do not match")
	ErrPasswordTooShort   = errors.New("password must be at least 8 characters")
	ErrPasswordTooLong    = errors.New("password must be at most 72 bytes")
	ErrEmailTaken         = errors.New("email already in use")
	ErrInvalidRole        = errors.New("role must be CUSTOMER or OWNER")
	ErrInvalidCredentials = errors.New("invalid email or password")
)

type SignupInput struct {
	Email           string
	Password        string
	ConfirmPassword string
	Name            string
	Phone           string
	Role            models.Role
}

type LoginResult struct {
	Token     string
	ExpiresAt time.Time
	User      *models.User
}

// TokenIssuer mints access tokens for authenticated users.
type TokenIssuer interface {
	Issue(u *models.User) (string, *auth.Claims, error)
}

// TokenRevoker invalidates a token id before its natural expiry.
type TokenRevoker interface {
	Revoke(ctx context.Context, tokenID string, expiresAt time.Time) error
}

type AuthService interface {
	Signup(ctx context.Context, in SignupInput) (*models.User, error)
	Login(ctx context.Context, email, password string) (*LoginResult, error)
	Logout(ctx context.Context, caller *auth.Identity) error
}

type authService struct {
	userRepo repository.UserRepository
	issuer   TokenIssuer
	revoker  TokenRevoker
	log      *zap.Logger
}

// NewAuthService wires credential handling. revoker may be nil, in which case
// logout only succeeds client-side.
func NewAuthService(userRepo repository.UserRepository, issuer TokenIssuer, revoker TokenRevoker, log *zap.Logger) AuthService {
	return &authService{userRepo: userRepo, issuer: issuer, revoker: revoker, log: log}
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func (s *authService) Signup(ctx context.Context, in SignupInput) (*models.User, error) {
	email := normalizeEmail(in.Email)
	if email == "" || in.Password == "" || in.ConfirmPassword == "" {
		return nil, ErrMissingFields
	}
	if in.Password != in.ConfirmPassword {
		return nil, ErrPasswordMismatch
	}
	if len(in.Password) < minPasswordLen {
		return nil, ErrPasswordTooShort
	}
	if len(in.Password) > maxPasswordBytes {
		return nil, ErrPasswordTooLong
	}

	role := in.Role
	switch role {
	case "":
		role = models.RoleCustomer
	case models.RoleCustomer, models.RoleOwner:
	default:
		return nil, ErrInvalidRole
	}

	_, err := s.userRepo.FindByEmail(ctx, email)
	if err == nil {
		return nil, ErrEmailTaken
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		s.log.Error("signup lookup", zap.Error(err))
		return nil, storeErr("signup", err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcryptCost)
	if err != nil {
		s.log.Error("signup hash", zap.Error(err))
		return nil, fmt.Errorf("hash password: %w", err)
	}

	user := &models.User{
		Email:        email,
		Name:         strings.TrimSpace(in.Name),
		Phone:        strings.TrimSpace(in.Phone),
		PasswordHash: string(hash),
		Role:         role,
	}
	if err := s.userRepo.Create(ctx, user); err != nil {
		// Lost a race with a concurrent signup for the same address
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrEmailTaken
		}
		s.log.Error("signup create", zap.Error(err))
		return nil, storeErr("signup", err)
	}

	s.log.Info("user signed up", zap.String("user_id", user.ID), zap.String("role", string(user.Role)))
	return user, nil
}

func (s *authService) Login(ctx context.Context, email, password string) (*LoginResult, error) {
	user, err := s.userRepo.FindByEmail(ctx, normalizeEmail(email))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, storeErr("login", err)
	}
	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		return nil, ErrInvalidCredentials
	}

	token, claims, err := s.issuer.Issue(user)
	if err != nil {
		return nil, err
	}
	return &LoginResult{Token: token, ExpiresAt: claims.ExpiresAt.Time, User: user}, nil
}

func (s *authService) Logout(ctx context.Context, caller *auth.Identity) error {
	if err := auth.Authorize(caller); err != nil {
		return ErrUnauthorized
	}
	if s.revoker == nil || caller.TokenID == "" {
		return nil
	}
	if err := s.revoker.Revoke(ctx, caller.TokenID, caller.ExpiresAt); err != nil {
		return storeErr("logout", err)
	}
	return nil
}

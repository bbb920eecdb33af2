package handler

import (
	"context"
	"encoding/json"
	"net/http/httptest"
	"testing"

	"github.com/courtside/venue-service/internal/models"
	"github.com/courtside/venue-service/internal/service"
	"github.com/courtside/venue-service/pkg/auth"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"
)

// --- Mock VenueService ---

type mockVenueService struct {
	listPendingFn func(ctx context.Context) ([]models.Venue, error)
	setStatusFn   func(ctx context.Context, venueID string, status models.ApprovalStatus) (*models.Venue, error)
	createFn      func(ctx context.Context, caller *auth.Identity, in service.CreateVenueInput) (*models.Venue, error)
	listOwnedFn   func(ctx context.Context, caller *auth.Identity) ([]models.Venue, error)
}

func (m *mockVenueService) ListPending(ctx context.Context) ([]models.Venue, error) {
	return m.listPendingFn(ctx)
}
func (m *mockVenueService) SetApprovalStatus(ctx context.Context, venueID string, status models.ApprovalStatus) (*models.Venue, error) {
	return m.setStatusFn(ctx, venueID, status)
}
func (m *mockVenueService) CreateVenue(ctx context.Context, caller *auth.Identity, in service.CreateVenueInput) (*models.Venue, error) {
	return m.createFn(ctx, caller, in)
}
func (m *mockVenueService) ListOwned(ctx context.Context, caller *auth.Identity) ([]models.Venue, error) {
	return m.listOwnedFn(ctx, caller)
}

// --- Mock DashboardService ---

type mockDashboardService struct {
	dashboardFn func(ctx context.Context, caller *auth.Identity) (*service.Dashboard, error)
}

func (m *mockDashboardService) Dashboard(ctx context.Context, caller *auth.Identity) (*service.Dashboard, error) {
	return m.dashboardFn(ctx, caller)
}

// --- Mock AuthService ---

type mockAuthService struct {
	signupFn func(ctx context.Context, in service.SignupInput) (*models.User, error)
	loginFn  func(ctx context.Context, email, password string) (*service.LoginResult, error)
	logoutFn func(ctx context.Context, caller *auth.Identity) error
}

func (m *mockAuthService) Signup(ctx context.Context, in service.SignupInput) (*models.User, error) {
	return m.signupFn(ctx, in)
}
func (m *mockAuthService) Login(ctx context.Context, email, password string) (*service.LoginResult, error) {
	return m.loginFn(ctx, email, password)
}
func (m *mockAuthService) Logout(ctx context.Context, caller *auth.Identity) error {
	return m.logoutFn(ctx, caller)
}

// --- Mock AdminService / NotificationService ---

type mockAdminService struct {
	overviewFn func(ctx context.Context) (*service.Overview, error)
}

func (m *mockAdminService) Overview(ctx context.Context) (*service.Overview, error) {
	return m.overviewFn(ctx)
}

type mockNotificationService struct {
	listFn func(ctx context.Context, caller *auth.Identity) ([]models.Notification, error)
}

func (m *mockNotificationService) List(ctx context.Context, caller *auth.Identity) ([]models.Notification, error) {
	return m.listFn(ctx, caller)
}

// --- helpers ---

func withIdentity(c echo.Context, id *auth.Identity) {
	c.SetRequest(c.Request().WithContext(auth.WithIdentity(c.Request().Context(), id)))
}

// httpError asserts err is an *echo.HTTPError and returns its code and message.
func httpError(t *testing.T, err error) (int, string) {
	t.Helper()
	he, ok := err.(*echo.HTTPError)
	require.True(t, ok, "expected *echo.HTTPError, got %T", err)
	msg, _ := he.Message.(string)
	return he.Code, msg
}

func decode[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &v))
	return v
}

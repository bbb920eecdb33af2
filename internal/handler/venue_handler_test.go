package handler

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/courtside/venue-service/internal/dto"
	"github.com/courtside/venue-service/internal/models"
	"github.com/courtside/venue-service/internal/service"
	"github.com/courtside/venue-service/pkg/auth"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func patchApproval(body string) (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodPatch, "/api/v1/admin/venues/v1/approval", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues("v1")
	return c, rec
}

func TestListPending_Handler_Success(t *testing.T) {
	svc := &mockVenueService{
		listPendingFn: func(ctx context.Context) ([]models.Venue, error) {
			return []models.Venue{{
				ID:             "v1",
				Name:           "Smash Arena",
				ApprovalStatus: models.ApprovalPending,
				Owner:          &models.User{ID: "o1", Name: "Ravi", Email: "ravi@example.com", Phone: "98450"},
				Courts:         []models.Court{{ID: "c1", Name: "Court 1", SportType: "badminton"}},
			}}, nil
		},
	}

	e := echo.New()
	rec := httptest.NewRecorder()
	c := e.NewContext(httptest.NewRequest(http.MethodGet, "/api/v1/admin/venues/pending", nil), rec)

	err := NewVenueHandler(svc).ListPending(c)

	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)
	resp := decode[[]dto.VenueResponse](t, rec)
	require.Len(t, resp, 1)
	assert.Equal(t, "98450", resp[0].Owner.Phone)
	assert.Equal(t, "badminton", resp[0].Courts[0].SportType)
}

func TestListPending_Handler_Empty(t *testing.T) {
	svc := &mockVenueService{
		listPendingFn: func(ctx context.Context) ([]models.Venue, error) { return nil, nil },
	}

	e := echo.New()
	rec := httptest.NewRecorder()
	c := e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), rec)

	require.NoError(t, NewVenueHandler(svc).ListPending(c))
	assert.JSONEq(t, `[]`, rec.Body.String())
}

func TestListPending_Handler_Failure(t *testing.T) {
	svc := &mockVenueService{
		listPendingFn: func(ctx context.Context) ([]models.Venue, error) {
			return nil, &service.StoreError{Op: "list", Err: errors.New("timeout")}
		},
	}

	e := echo.New()
	c := e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), httptest.NewRecorder())

	code, msg := httpError(t, NewVenueHandler(svc).ListPending(c))
	assert.Equal(t, http.StatusInternalServerError, code)
	assert.Equal(t, "Failed to fetch pending venues", msg)
}

func TestSetApprovalStatus_Handler_Success(t *testing.T) {
	svc := &mockVenueService{
		setStatusFn: func(ctx context.Context, venueID string, status models.ApprovalStatus) (*models.Venue, error) {
			assert.Equal(t, "v1", venueID)
			assert.Equal(t, models.ApprovalApproved, status)
			return &models.Venue{
				ID:             venueID,
				Name:           "Smash Arena",
				ApprovalStatus: status,
				Owner:          &models.User{ID: "o1", Name: "Ravi", Email: "ravi@example.com"},
			}, nil
		},
	}

	c, rec := patchApproval(`{"status":"APPROVED"}`)
	err := NewVenueHandler(svc).SetApprovalStatus(c)

	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)
	resp := decode[dto.ApprovalResponse](t, rec)
	assert.True(t, resp.Success)
	assert.Equal(t, models.ApprovalApproved, resp.Venue.ApprovalStatus)
	assert.Equal(t, "ravi@example.com", resp.Venue.Owner.Email)
}

func TestSetApprovalStatus_Handler_Errors(t *testing.T) {
	tests := []struct {
		name     string
		body     string
		svcErr   error
		wantCode int
		wantMsg  string
	}{
		{"invalid status", `{"status":"PENDING"}`, service.ErrInvalidStatus, http.StatusBadRequest, "Invalid status"},
		{"malformed body", `{"status":`, nil, http.StatusBadRequest, "Invalid status"},
		{"not found", `{"status":"REJECTED"}`, service.ErrVenueNotFound, http.StatusNotFound, "Venue not found"},
		{"store failure", `{"status":"APPROVED"}`, &service.StoreError{Op: "update", Err: errors.New("deadlock")}, http.StatusInternalServerError, "Failed to update venue status"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := &mockVenueService{
				setStatusFn: func(ctx context.Context, venueID string, status models.ApprovalStatus) (*models.Venue, error) {
					return nil, tt.svcErr
				},
			}

			c, _ := patchApproval(tt.body)
			code, msg := httpError(t, NewVenueHandler(svc).SetApprovalStatus(c))

			assert.Equal(t, tt.wantCode, code)
			assert.Equal(t, tt.wantMsg, msg)
		})
	}
}

func TestCreateVenue_Handler(t *testing.T) {
	owner := &auth.Identity{ID: "o1", Role: models.RoleOwner}
	svc := &mockVenueService{
		createFn: func(ctx context.Context, caller *auth.Identity, in service.CreateVenueInput) (*models.Venue, error) {
			assert.Equal(t, owner, caller)
			assert.Equal(t, "Smash Arena", in.Name)
			require.Len(t, in.Courts, 1)
			assert.Equal(t, "badminton", in.Courts[0].SportType)
			return &models.Venue{ID: "v1", Name: in.Name, OwnerID: caller.ID, ApprovalStatus: models.ApprovalPending}, nil
		},
	}

	e := echo.New()
	body := `{"name":"Smash Arena","address":"1 MG Road","city":"Pune","courts":[{"name":"Court 1","sport_type":"badminton"}]}`
	req := httptest.NewRequest(http.MethodPost, "/api/v1/owner/venues", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	withIdentity(c, owner)

	err := NewVenueHandler(svc).CreateVenue(c)

	require.NoError(t, err)
	assert.Equal(t, http.StatusCreated, rec.Code)
	resp := decode[dto.VenueResponse](t, rec)
	assert.Equal(t, models.ApprovalPending, resp.ApprovalStatus)
}

func TestCreateVenue_Handler_Incomplete(t *testing.T) {
	svc := &mockVenueService{
		createFn: func(ctx context.Context, caller *auth.Identity, in service.CreateVenueInput) (*models.Venue, error) {
			return nil, service.ErrVenueIncomplete
		},
	}

	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"name":"X"}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	c := e.NewContext(req, httptest.NewRecorder())

	code, _ := httpError(t, NewVenueHandler(svc).CreateVenue(c))
	assert.Equal(t, http.StatusBadRequest, code)
}

func TestListOwned_Handler_Unauthorized(t *testing.T) {
	svc := &mockVenueService{
		listOwnedFn: func(ctx context.Context, caller *auth.Identity) ([]models.Venue, error) {
			assert.Nil(t, caller)
			return nil, service.ErrUnauthorized
		},
	}

	e := echo.New()
	c := e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), httptest.NewRecorder())

	code, msg := httpError(t, NewVenueHandler(svc).ListOwned(c))
	assert.Equal(t, http.StatusUnauthorized, code)
	assert.Equal(t, "Unauthorized", msg)
}

package service

import (
	"context"
	"sync"
	"time"

	"github.com/courtside/venue-service/internal/models"
	"github.com/courtside/venue-service/internal/repository"
	"github.com/courtside/venue-service/pkg/auth"
)

// --- Mock VenueRepository ---

type mockVenueRepo struct {
	findPendingFn  func(ctx context.Context) ([]models.Venue, error)
	findByOwnerFn  func(ctx context.Context, ownerID string) ([]models.Venue, error)
	updateStatusFn func(ctx context.Context, id string, status models.ApprovalStatus) (*models.Venue, error)
	createFn       func(ctx context.Context, venue *models.Venue) error
	countFn        func(ctx context.Context, status *models.ApprovalStatus) (int64, error)
}

func (m *mockVenueRepo) FindPending(ctx context.Context) ([]models.Venue, error) {
	return m.findPendingFn(ctx)
}
func (m *mockVenueRepo) FindByID(ctx context.Context, id string) (*models.Venue, error) {
	return nil, nil
}
func (m *mockVenueRepo) FindByOwner(ctx context.Context, ownerID string) ([]models.Venue, error) {
	return m.findByOwnerFn(ctx, ownerID)
}
func (m *mockVenueRepo) UpdateApprovalStatus(ctx context.Context, id string, status models.ApprovalStatus) (*models.Venue, error) {
	return m.updateStatusFn(ctx, id, status)
}
func (m *mockVenueRepo) CreateWithCourts(ctx context.Context, venue *models.Venue) error {
	return m.createFn(ctx, venue)
}
func (m *mockVenueRepo) Count(ctx context.Context, status *models.ApprovalStatus) (int64, error) {
	return m.countFn(ctx, status)
}

// --- Mock UserRepository ---

type mockUserRepo struct {
	createFn      func(ctx context.Context, user *models.User) error
	findByEmailFn func(ctx context.Context, email string) (*models.User, error)
	countByRoleFn func(ctx context.Context, role models.Role) (int64, error)
}

func (m *mockUserRepo) Create(ctx context.Context, user *models.User) error {
	return m.createFn(ctx, user)
}
func (m *mockUserRepo) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	return m.findByEmailFn(ctx, email)
}
func (m *mockUserRepo) CountByRole(ctx context.Context, role models.Role) (int64, error) {
	return m.countByRoleFn(ctx, role)
}

// --- Mock BookingRepository ---

type mockBookingRepo struct {
	countFn func(ctx context.Context) (int64, error)
}

func (m *mockBookingRepo) FindByOwner(ctx context.Context, ownerID string) ([]models.Booking, error) {
	return nil, nil
}
func (m *mockBookingRepo) Count(ctx context.Context) (int64, error) {
	return m.countFn(ctx)
}

// --- Mock Publisher ---

type published struct {
	key     string
	payload any
}

type mockPublisher struct {
	mu   sync.Mutex
	msgs []published
	err  error
}

func (m *mockPublisher) Publish(ctx context.Context, routingKey string, payload any) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.msgs = append(m.msgs, published{key: routingKey, payload: payload})
	return m.err
}

// --- Mock token issuer / revoker ---

type mockIssuer struct{}

func (mockIssuer) Issue(u *models.User) (string, *auth.Claims, error) {
	return auth.NewTokenIssuer("test-secret", time.Hour).Issue(u)
}

type mockRevoker struct {
	revoked map[string]time.Time
	err     error
}

func (m *mockRevoker) Revoke(ctx context.Context, tokenID string, expiresAt time.Time) error {
	if m.err != nil {
		return m.err
	}
	if m.revoked == nil {
		m.revoked = map[string]time.Time{}
	}
	m.revoked[tokenID] = expiresAt
	return nil
}

// --- In-memory store for the dashboard ---

// memStore answers the dashboard queries from fixtures. Bookings must carry
// Court.Venue so ownership can be resolved.
type memStore struct {
	venues   []models.Venue
	bookings []models.Booking

	mu        sync.Mutex
	calls     int
	sumErr    error
	failAfter int // fail windowed sums once this many have run; 0 disables
	windowed  int
}

func (s *memStore) hit() {
	s.mu.Lock()
	s.calls++
	s.mu.Unlock()
}

// memVenues adapts memStore to VenueRepository.
type memVenues struct{ *memStore }

func (m memVenues) FindPending(ctx context.Context) ([]models.Venue, error) { return nil, nil }
func (m memVenues) FindByID(ctx context.Context, id string) (*models.Venue, error) {
	return nil, nil
}
func (m memVenues) UpdateApprovalStatus(ctx context.Context, id string, status models.ApprovalStatus) (*models.Venue, error) {
	return nil, nil
}
func (m memVenues) CreateWithCourts(ctx context.Context, venue *models.Venue) error { return nil }
func (m memVenues) Count(ctx context.Context, status *models.ApprovalStatus) (int64, error) {
	return int64(len(m.venues)), nil
}

func (m memVenues) FindByOwner(ctx context.Context, ownerID string) ([]models.Venue, error) {
	m.hit()
	var out []models.Venue
	for _, v := range m.venues {
		if v.OwnerID == ownerID {
			out = append(out, v)
		}
	}
	return out, nil
}

func (s *memStore) ownerBookings(ownerID string) []models.Booking {
	var out []models.Booking
	for _, b := range s.bookings {
		if b.Court != nil && b.Court.Venue != nil && b.Court.Venue.OwnerID == ownerID {
			out = append(out, b)
		}
	}
	return out
}

func (s *memStore) SumCompletedByOwner(ctx context.Context, ownerID string, window *repository.TimeRange) (float64, error) {
	s.hit()
	if window != nil {
		s.mu.Lock()
		s.windowed++
		n := s.windowed
		s.mu.Unlock()
		if s.failAfter > 0 && n >= s.failAfter {
			return 0, s.sumErr
		}
	} else if s.sumErr != nil && s.failAfter == 0 {
		return 0, s.sumErr
	}

	var total float64
	for _, b := range s.ownerBookings(ownerID) {
		p := b.Payment
		if p == nil || p.Status != models.PaymentCompleted {
			continue
		}
		if window != nil && (p.CreatedAt.Before(window.From) || p.CreatedAt.After(window.To)) {
			continue
		}
		total += p.Amount
	}
	return total, nil
}

// memBookings adapts memStore to BookingRepository.
type memBookings struct{ *memStore }

func (m memBookings) Count(ctx context.Context) (int64, error) {
	return int64(len(m.bookings)), nil
}

func (m memBookings) FindByOwner(ctx context.Context, ownerID string) ([]models.Booking, error) {
	m.hit()
	return m.ownerBookings(ownerID), nil
}

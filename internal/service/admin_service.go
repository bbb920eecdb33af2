package service

import (
	"context"
	"time"

	"github.com/courtside/venue-service/internal/models"
	"github.com/courtside/venue-service/internal/repository"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

const overviewTimeout = 5 * time.Second

// Overview holds the platform-wide totals shown on the admin dashboard.
type Overview struct {
	Customers     int64 `json:"customers"`
	Owners        int64 `json:"owners"`
	Admins        int64 `json:"admins"`
	TotalUsers    int64 `json:"total_users"`
	Venues        int64 `json:"venues"`
	PendingVenues int64 `json:"pending_venues"`
	Bookings      int64 `json:"bookings"`
}

type AdminService interface {
	Overview(ctx context.Context) (*Overview, error)
}

type adminService struct {
	userRepo    repository.UserRepository
	venueRepo   repository.VenueRepository
	bookingRepo repository.BookingRepository
	log         *zap.Logger
}

func NewAdminService(userRepo repository.UserRepository, venueRepo repository.VenueRepository, bookingRepo repository.BookingRepository, log *zap.Logger) AdminService {
	return &adminService{userRepo: userRepo, venueRepo: venueRepo, bookingRepo: bookingRepo, log: log}
}

// Overview runs the independent counts concurrently under a shared deadline.
func (s *adminService) Overview(ctx context.Context) (*Overview, error) {
	ctx, cancel := context.WithTimeout(ctx, overviewTimeout)
	defer cancel()

	var out Overview
	pending := models.ApprovalPending

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		out.Customers, err = s.userRepo.CountByRole(gctx, models.RoleCustomer)
		return err
	})
	g.Go(func() (err error) {
		out.Owners, err = s.userRepo.CountByRole(gctx, models.RoleOwner)
		return err
	})
	g.Go(func() (err error) {
		out.Admins, err = s.userRepo.CountByRole(gctx, models.RoleAdmin)
		return err
	})
	g.Go(func() (err error) {
		out.Venues, err = s.venueRepo.Count(gctx, nil)
		return err
	})
	g.Go(func() (err error) {
		out.PendingVenues, err = s.venueRepo.Count(gctx, &pending)
		return err
	})
	g.Go(func() (err error) {
		out.Bookings, err = s.bookingRepo.Count(gctx)
		return err
	})
	if err := g.Wait(); err != nil {
		s.log.Error("admin overview", zap.Error(err))
		return nil, storeErr("admin overview", err)
	}

	out.TotalUsers = out.Customers + out.Owners + out.Admins
	return &out, nil
}

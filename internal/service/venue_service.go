package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/courtside/venue-service/internal/events"
	"github.com/courtside/venue-service/internal/models"
	"github.com/courtside/venue-service/internal/repository"
	"github.com/courtside/venue-service/pkg/auth"
	"github.com/courtside/venue-service/pkg/rabbitmq"
	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

var ErrVenueIncomplete = errors.New("name, address and city are required")

// Publisher sends domain events to the message broker.
type Publisher interface {
	Publish(ctx context.Context, routingKey string, payload any) error
}

type CourtInput struct {
	Name      string
	SportType string
}

type CreateVenueInput struct {
	Name        string
	Description string
	Address     string
	City        string
	Images      []string
	Courts      []CourtInput
}

type VenueService interface {
	ListPending(ctx context.Context) ([]models.Venue, error)
	SetApprovalStatus(ctx context.Context, venueID string, status models.ApprovalStatus) (*models.Venue, error)
	CreateVenue(ctx context.Context, caller *auth.Identity, in CreateVenueInput) (*models.Venue, error)
	ListOwned(ctx context.Context, caller *auth.Identity) ([]models.Venue, error)
}

type venueService struct {
	venueRepo repository.VenueRepository
	publisher Publisher
	log       *zap.Logger
	now       func() time.Time
}

// NewVenueService builds the moderation workflow. publisher may be nil.
func NewVenueService(venueRepo repository.VenueRepository, publisher Publisher, log *zap.Logger) VenueService {
	return &venueService{
		venueRepo: venueRepo,
		publisher: publisher,
		log:       log,
		now:       time.Now,
	}
}

// ListPending returns every venue awaiting moderation, newest first.
func (s *venueService) ListPending(ctx context.Context) ([]models.Venue, error) {
	venues, err := s.venueRepo.FindPending(ctx)
	if err != nil {
		s.log.Error("fetch pending venues", zap.Error(err))
		return nil, storeErr("list pending venues", err)
	}
	return venues, nil
}

func (s *venueService) SetApprovalStatus(ctx context.Context, venueID string, status models.ApprovalStatus) (*models.Venue, error) {
	if !status.IsDecision() {
		return nil, ErrInvalidStatus
	}

	venue, err := s.venueRepo.UpdateApprovalStatus(ctx, venueID, status)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrVenueNotFound
		}
		s.log.Error("update venue approval status",
			zap.String("venue_id", venueID),
			zap.String("status", string(status)),
			zap.Error(err),
		)
		return nil, storeErr("set approval status", err)
	}

	s.log.Info("venue moderated",
		zap.String("venue_id", venue.ID),
		zap.String("status", string(status)),
	)
	s.publishDecision(ctx, venue, status)
	return venue, nil
}

// publishDecision notifies the owner asynchronously; a broker failure never undoes the decision.
func (s *venueService) publishDecision(ctx context.Context, venue *models.Venue, status models.ApprovalStatus) {
	if s.publisher == nil {
		return
	}

	ev := events.VenueDecision{
		EventID:   uuid.NewString(),
		VenueID:   venue.ID,
		VenueName: venue.Name,
		Status:    string(status),
		OwnerID:   venue.OwnerID,
		DecidedAt: s.now().UTC(),
	}
	if venue.Owner != nil {
		ev.OwnerName = venue.Owner.Name
		ev.OwnerEmail = venue.Owner.Email
	}

	key := rabbitmq.RoutingVenueApproved
	if status == models.ApprovalRejected {
		key = rabbitmq.RoutingVenueRejected
	}
	if err := s.publisher.Publish(ctx, key, ev); err != nil {
		s.log.Warn("publish venue decision", zap.String("venue_id", venue.ID), zap.Error(err))
	}
}

func (s *venueService) CreateVenue(ctx context.Context, caller *auth.Identity, in CreateVenueInput) (*models.Venue, error) {
	if err := auth.Authorize(caller, models.RoleOwner); err != nil {
		return nil, ErrUnauthorized
	}

	in.Name = strings.TrimSpace(in.Name)
	in.Address = strings.TrimSpace(in.Address)
	in.City = strings.TrimSpace(in.City)
	if in.Name == "" || in.Address == "" || in.City == "" {
		return nil, ErrVenueIncomplete
	}

	images := in.Images
	if images == nil {
		images = []string{}
	}
	venue := &models.Venue{
		Name:           in.Name,
		Description:    strings.TrimSpace(in.Description),
		Address:        in.Address,
		City:           in.City,
		Images:         images,
		ApprovalStatus: models.ApprovalPending,
		OwnerID:        caller.ID,
	}
	for _, c := range in.Courts {
		if strings.TrimSpace(c.Name) == "" || strings.TrimSpace(c.SportType) == "" {
			continue
		}
		venue.Courts = append(venue.Courts, models.Court{
			Name:      strings.TrimSpace(c.Name),
			SportType: strings.TrimSpace(c.SportType),
		})
	}

	if err := s.venueRepo.CreateWithCourts(ctx, venue); err != nil {
		s.log.Error("add venue", zap.String("owner_id", caller.ID), zap.Error(err))
		return nil, storeErr("create venue", err)
	}

	s.log.Info("venue submitted for approval",
		zap.String("venue_id", venue.ID),
		zap.String("owner_id", caller.ID),
	)
	return venue, nil
}

func (s *venueService) ListOwned(ctx context.Context, caller *auth.Identity) ([]models.Venue, error) {
	if err := auth.Authorize(caller, models.RoleOwner); err != nil {
		return nil, ErrUnauthorized
	}
	venues, err := s.venueRepo.FindByOwner(ctx, caller.ID)
	if err != nil {
		return nil, storeErr("list owned venues", err)
	}
	return venues, nil
}

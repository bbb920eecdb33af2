package repository

import (
	"context"

	"github.com/courtside/venue-service/internal/models"
	"gorm.io/gorm"
)

type VenueRepository interface {
	FindPending(ctx context.Context) ([]models.Venue, error)
	FindByID(ctx context.Context, id string) (*models.Venue, error)
	FindByOwner(ctx context.Context, ownerID string) ([]models.Venue, error)
	UpdateApprovalStatus(ctx context.Context, id string, status models.ApprovalStatus) (*models.Venue, error)
	CreateWithCourts(ctx context.Context, venue *models.Venue) error
	Count(ctx context.Context, status *models.ApprovalStatus) (int64, error)
}

type venueRepository struct {
	db *gorm.DB
}

func NewVenueRepository(db *gorm.DB) VenueRepository {
	return &venueRepository{db: db}
}

// FindPending returns the moderation queue, newest first, with owner contact
// details and a summary of each court.
func (r *venueRepository) FindPending(ctx context.Context) ([]models.Venue, error) {
	var venues []models.Venue
	err := r.db.WithContext(ctx).
		Preload("Owner", func(db *gorm.DB) *gorm.DB {
			return db.Select("id", "name", "email", "phone")
		}).
		Preload("Courts", func(db *gorm.DB) *gorm.DB {
			return db.Select("id", "venue_id", "name", "sport_type").Order("created_at ASC, id ASC")
		}).
		Where("approval_status = ?", models.ApprovalPending).
		Order("created_at DESC, id DESC").
		Find(&venues).Error
	if err != nil {
		return nil, err
	}
	return venues, nil
}

func (r *venueRepository) FindByID(ctx context.Context, id string) (*models.Venue, error) {
	var venue models.Venue
	err := r.db.WithContext(ctx).
		Preload("Owner", func(db *gorm.DB) *gorm.DB {
			return db.Select("id", "name", "email")
		}).
		First(&venue, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &venue, nil
}

func (r *venueRepository) FindByOwner(ctx context.Context, ownerID string) ([]models.Venue, error) {
	var venues []models.Venue
	err := r.db.WithContext(ctx).
		Preload("Courts", func(db *gorm.DB) *gorm.DB {
			return db.Order("created_at ASC, id ASC")
		}).
		Where("owner_id = ?", ownerID).
		Order("created_at DESC, id DESC").
		Find(&venues).Error
	if err != nil {
		return nil, err
	}
	return venues, nil
}

// UpdateApprovalStatus changes a single venue row and returns it with the owner's
// name and email. gorm.ErrRecordNotFound is returned for an unknown id.
func (r *venueRepository) UpdateApprovalStatus(ctx context.Context, id string, status models.ApprovalStatus) (*models.Venue, error) {
	res := r.db.WithContext(ctx).
		Model(&models.Venue{}).
		Where("id = ?", id).
		Update("approval_status", status)
	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		return nil, gorm.ErrRecordNotFound
	}
	return r.FindByID(ctx, id)
}

func (r *venueRepository) CreateWithCourts(ctx context.Context, venue *models.Venue) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		courts := venue.Courts
		if err := tx.Omit("Courts", "Owner").Create(venue).Error; err != nil {
			return err
		}
		for i := range courts {
			courts[i].VenueID = venue.ID
		}
		if len(courts) > 0 {
			if err := tx.Omit("Venue").Create(&courts).Error; err != nil {
				return err
			}
		}
		venue.Courts = courts
		return nil
	})
}

// Count counts venues, optionally restricted to one approval status.
func (r *venueRepository) Count(ctx context.Context, status *models.ApprovalStatus) (int64, error) {
	var count int64
	q := r.db.WithContext(ctx).Model(&models.Venue{})
	if status != nil {
		q = q.Where("approval_status = ?", *status)
	}
	err := q.Count(&count).Error
	return count, err
}

package repository

import (
	"context"
	"time"

	"github.com/courtside/venue-service/internal/models"
	"gorm.io/gorm"
)

type BookingRepository interface {
	FindByOwner(ctx context.Context, ownerID string) ([]models.Booking, error)
	Count(ctx context.Context) (int64, error)
}

// PaymentRepository answers revenue aggregates over an owner's bookings.
type PaymentRepository interface {
	SumCompletedByOwner(ctx context.Context, ownerID string, window *TimeRange) (float64, error)
}

// TimeRange is inclusive on both ends.
type TimeRange struct {
	From time.Time
	To   time.Time
}

type bookingRepository struct {
	db *gorm.DB
}

func NewBookingRepository(db *gorm.DB) BookingRepository {
	return &bookingRepository{db: db}
}

type paymentRepository struct {
	db *gorm.DB
}

func NewPaymentRepository(db *gorm.DB) PaymentRepository {
	return &paymentRepository{db: db}
}

// ownerCourtIDs selects the ids of every court that belongs to one of the owner's venues.
func ownerCourtIDs(db *gorm.DB, ownerID string) *gorm.DB {
	return db.Model(&models.Court{}).
		Select("courts.id").
		Joins("JOIN venues ON venues.id = courts.venue_id").
		Where("venues.owner_id = ?", ownerID)
}

// FindByOwner loads the owner's bookings with payment, court, venue and customer.
// Rows come back in creation order so grouping downstream is deterministic.
func (r *bookingRepository) FindByOwner(ctx context.Context, ownerID string) ([]models.Booking, error) {
	db := r.db.WithContext(ctx)
	var bookings []models.Booking
	err := db.
		Preload("Payment").
		Preload("Court.Venue").
		Preload("User").
		Where("court_id IN (?)", ownerCourtIDs(db.Session(&gorm.Session{NewDB: true}), ownerID)).
		Order("created_at ASC, id ASC").
		Find(&bookings).Error
	if err != nil {
		return nil, err
	}
	return bookings, nil
}

func (r *bookingRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.Booking{}).Count(&count).Error
	return count, err
}

// SumCompletedByOwner sums COMPLETED payment amounts on the owner's bookings. A nil
// window means all time. No matching rows yields 0.
func (r *paymentRepository) SumCompletedByOwner(ctx context.Context, ownerID string, window *TimeRange) (float64, error) {
	db := r.db.WithContext(ctx)
	sub := db.Session(&gorm.Session{NewDB: true})

	ownerBookings := sub.Model(&models.Booking{}).
		Select("bookings.id").
		Where("bookings.court_id IN (?)", ownerCourtIDs(sub, ownerID))

	q := db.Model(&models.Payment{}).
		Select("COALESCE(SUM(amount), 0)").
		Where("status = ?", models.PaymentCompleted).
		Where("booking_id IN (?)", ownerBookings)
	if window != nil {
		q = q.Where("created_at >= ? AND created_at <= ?", window.From, window.To)
	}

	var total float64
	if err := q.Scan(&total).Error; err != nil {
		return 0, err
	}
	return total, nil
}

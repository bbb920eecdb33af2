package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type PaymentStatus string

const (
	PaymentPending   PaymentStatus = "PENDING"
	PaymentCompleted PaymentStatus = "COMPLETED"
	PaymentFailed    PaymentStatus = "FAILED"
	PaymentRefunded  PaymentStatus = "REFUNDED"
)

// Booking rows are written by the reservation flow; this service only reads them.
type Booking struct {
	ID        string    `gorm:"primaryKey;type:varchar(36)" json:"id"`
	CourtID   string    `gorm:"type:varchar(36);not null;index" json:"court_id"`
	UserID    string    `gorm:"type:varchar(36);not null;index" json:"user_id"`
	CreatedAt time.Time `gorm:"index" json:"created_at"`

	Court   *Court   `gorm:"foreignKey:CourtID" json:"court,omitempty"`
	User    *User    `gorm:"foreignKey:UserID" json:"user,omitempty"`
	Payment *Payment `gorm:"foreignKey:BookingID" json:"payment,omitempty"`
}

func (b *Booking) BeforeCreate(tx *gorm.DB) error {
	if b.ID == "" {
		b.ID = uuid.NewString()
	}
	return nil
}

type Payment struct {
	ID        string        `gorm:"primaryKey;type:varchar(36)" json:"id"`
	BookingID string        `gorm:"type:varchar(36);not null;uniqueIndex" json:"booking_id"`
	Amount    float64       `gorm:"type:numeric(12,2);not null" json:"amount"`
	Status    PaymentStatus `gorm:"type:varchar(20);not null;default:'PENDING';index" json:"status"`
	CreatedAt time.Time     `gorm:"index" json:"created_at"`
}

func (p *Payment) BeforeCreate(tx *gorm.DB) error {
	if p.ID == "" {
		p.ID = uuid.NewString()
	}
	return nil
}

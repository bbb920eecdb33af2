package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ApprovalStatus string

const (
	ApprovalPending  ApprovalStatus = "PENDING"
	ApprovalApproved ApprovalStatus = "APPROVED"
	ApprovalRejected ApprovalStatus = "REJECTED"
)

// IsDecision reports whether s is a status an administrator may move a venue into.
func (s ApprovalStatus) IsDecision() bool {
	return s == ApprovalApproved || s == ApprovalRejected
}

type Venue struct {
	ID             string         `gorm:"primaryKey;type:varchar(36)" json:"id"`
	Name           string         `gorm:"not null" json:"name"`
	Description    string         `json:"description"`
	Address        string         `gorm:"not null" json:"address"`
	City           string         `gorm:"not null;index" json:"city"`
	Images         []string       `gorm:"serializer:json" json:"images"`
	ApprovalStatus ApprovalStatus `gorm:"type:varchar(20);not null;default:'PENDING';index" json:"approval_status"`
	OwnerID        string         `gorm:"type:varchar(36);not null;index" json:"owner_id"`
	CreatedAt      time.Time      `gorm:"index" json:"created_at"`
	UpdatedAt      time.Time      `json:"updated_at"`

	Owner  *User   `gorm:"foreignKey:OwnerID" json:"owner,omitempty"`
	Courts []Court `gorm:"foreignKey:VenueID" json:"courts,omitempty"`
}

func (v *Venue) BeforeCreate(tx *gorm.DB) error {
	if v.ID == "" {
		v.ID = uuid.NewString()
	}
	return nil
}

type Court struct {
	ID        string    `gorm:"primaryKey;type:varchar(36)" json:"id"`
	VenueID   string    `gorm:"type:varchar(36);not null;index" json:"venue_id"`
	Name      string    `gorm:"not null" json:"name"`
	SportType string    `gorm:"type:varchar(50);not null" json:"sport_type"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	Venue *Venue `gorm:"foreignKey:VenueID" json:"venue,omitempty"`
}

func (c *Court) BeforeCreate(tx *gorm.DB) error {
	if c.ID == "" {
		c.ID = uuid.NewString()
	}
	return nil
}

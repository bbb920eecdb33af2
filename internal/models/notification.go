package models

import "time"

// Notification is an owner-facing inbox entry. ID is the id of the event that produced it,
// so redelivered events collapse onto the same row.
type Notification struct {
	ID        string    `gorm:"primaryKey;type:varchar(36)" json:"id"`
	UserID    string    `gorm:"type:varchar(36);not null;index" json:"user_id"`
	Kind      string    `gorm:"type:varchar(40);not null" json:"kind"`
	Title     string    `gorm:"not null" json:"title"`
	Body      string    `json:"body"`
	CreatedAt time.Time `gorm:"index" json:"created_at"`
}

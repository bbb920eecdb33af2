package events

import (
	"encoding/json"
	"fmt"
	"time"
)

// VenueDecision is published when an administrator approves or rejects a venue.
type VenueDecision struct {
	EventID    string    `json:"event_id"`
	VenueID    string    `json:"venue_id"`
	VenueName  string    `json:"venue_name"`
	Status     string    `json:"status"`
	OwnerID    string    `json:"owner_id"`
	OwnerName  string    `json:"owner_name"`
	OwnerEmail string    `json:"owner_email"`
	DecidedAt  time.Time `json:"decided_at"`
}

func Unmarshal[T any](b []byte) (T, error) {
	var v T
	if err := json.Unmarshal(b, &v); err != nil {
		return v, fmt.Errorf("unmarshal %T: %w", v, err)
	}
	return v, nil
}

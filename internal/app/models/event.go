package models

import (
	"time"
)

// Event defines the event model based on the 'events' table
type Event struct {
	ID               int64      `json:"id" db:"id"`
	CreatedByID      int64      `json:"createdById" db:"created_by"`
	Title            string     `json:"title" db:"title"`
	Description      string     `json:"description" db:"description"`
	EventDate        time.Time  `json:"eventDate" db:"event_date"`
	EventTime        string     `json:"eventTime" db:"event_time"`
	Venue            string     `json:"venue" db:"venue"`
	EventType        EventType  `json:"eventType" db:"event_type"` // Defaults to Other
	RegistrationLink string     `json:"registrationLink" db:"registration_link"`
	MaxParticipants  int        `json:"maxParticipants" db:"max_participants"`
	IsActive         bool       `json:"isActive" db:"is_active"`
	CreatedAt        time.Time  `json:"createdAt" db:"created_at"`
	CreatedBy        *UserBrief `json:"createdBy,omitempty"` // Relation, no db tag
}

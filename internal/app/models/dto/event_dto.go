package dto

import "github.com/alumnisphere/backend/internal/app/models"

// CreateEventRequest represents a new event. EventDate accepts either a
// calendar date (2006-01-02) or an RFC 3339 timestamp. EventType defaults
// to Other when omitted.
type CreateEventRequest struct {
	Title            string           `json:"title" binding:"required"`
	Description      string           `json:"description" binding:"required"`
	EventDate        string           `json:"eventDate" binding:"required"`
	EventTime        string           `json:"eventTime" binding:"required"`
	Venue            string           `json:"venue" binding:"required"`
	EventType        models.EventType `json:"eventType"`
	RegistrationLink string           `json:"registrationLink"`
	MaxParticipants  int              `json:"maxParticipants"`
}

// UpdateEventRequest merges the supplied fields into an existing event; nil
// means "leave unchanged".
type UpdateEventRequest struct {
	Title            *string           `json:"title"`
	Description      *string           `json:"description"`
	EventDate        *string           `json:"eventDate"`
	EventTime        *string           `json:"eventTime"`
	Venue            *string           `json:"venue"`
	EventType        *models.EventType `json:"eventType"`
	RegistrationLink *string           `json:"registrationLink"`
	MaxParticipants  *int              `json:"maxParticipants"`
	IsActive         *bool             `json:"isActive"`
}

// EventResponse wraps a created or updated event with a confirmation message
type EventResponse struct {
	Message string        `json:"message"`
	Event   *models.Event `json:"event"`
}

package services

import (
	"context"
	"time"

	"github.com/alumnisphere/backend/internal/app/models"
	"github.com/alumnisphere/backend/internal/app/models/dto"
	"github.com/alumnisphere/backend/internal/app/repositories"
	"github.com/alumnisphere/backend/internal/pkg/apperrors"
)

// EventService handles community events
type EventService struct {
	eventRepo repositories.IEventRepository
}

// NewEventService creates a new event service instance
func NewEventService(eventRepo repositories.IEventRepository) *EventService {
	return &EventService{
		eventRepo: eventRepo,
	}
}

// parseEventDate accepts a plain date or a full RFC3339 timestamp
func parseEventDate(value string) (time.Time, error) {
	if t, err := time.Parse("2006-01-02", value); err == nil {
		return t, nil
	}
	t, err := time.Parse(time.RFC3339, value)
	if err != nil {
		return time.Time{}, apperrors.NewValidationError("Event date must be YYYY-MM-DD or RFC3339")
	}
	return t, nil
}

// Create publishes a new event on behalf of the given creator
func (s *EventService) Create(ctx context.Context, creatorID int64, req *dto.CreateEventRequest) (*models.Event, error) {
	eventDate, err := parseEventDate(req.EventDate)
	if err != nil {
		return nil, err
	}

	eventType := models.EventOther
	if req.EventType != "" {
		if !models.ValidEventType(req.EventType) {
			return nil, apperrors.NewValidationError("Invalid event type")
		}
		eventType = req.EventType
	}

	event := &models.Event{
		CreatedByID:      creatorID,
		Title:            req.Title,
		Description:      req.Description,
		EventDate:        eventDate,
		EventTime:        req.EventTime,
		Venue:            req.Venue,
		EventType:        eventType,
		RegistrationLink: req.RegistrationLink,
		MaxParticipants:  req.MaxParticipants,
		IsActive:         true,
	}

	if err := s.eventRepo.Create(ctx, event); err != nil {
		return nil, err
	}

	// Re-read so the response embeds the creator {name, email}
	return s.eventRepo.GetByID(ctx, event.ID)
}

// ListActive returns all active events ordered by date, soonest first
func (s *EventService) ListActive(ctx context.Context) ([]*models.Event, error) {
	return s.eventRepo.GetActive(ctx)
}

// GetByID returns one event regardless of its active flag
func (s *EventService) GetByID(ctx context.Context, id int64) (*models.Event, error) {
	return s.eventRepo.GetByID(ctx, id)
}

// Update merges the supplied fields into an existing event. Event writes
// are admin routes; no per-record ownership applies here.
func (s *EventService) Update(ctx context.Context, id int64, req *dto.UpdateEventRequest) (*models.Event, error) {
	event, err := s.eventRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Title != nil {
		event.Title = *req.Title
	}
	if req.Description != nil {
		event.Description = *req.Description
	}
	if req.EventDate != nil {
		eventDate, err := parseEventDate(*req.EventDate)
		if err != nil {
			return nil, err
		}
		event.EventDate = eventDate
	}
	if req.EventTime != nil {
		event.EventTime = *req.EventTime
	}
	if req.Venue != nil {
		event.Venue = *req.Venue
	}
	if req.EventType != nil {
		event.EventType = *req.EventType
	}
	if req.RegistrationLink != nil {
		event.RegistrationLink = *req.RegistrationLink
	}
	if req.MaxParticipants != nil {
		event.MaxParticipants = *req.MaxParticipants
	}
	if req.IsActive != nil {
		event.IsActive = *req.IsActive
	}

	if err := s.eventRepo.Update(ctx, event); err != nil {
		return nil, err
	}

	return event, nil
}

// Delete removes an event. Deletion is admin-gated at the route level, like
// the other event writes.
func (s *EventService) Delete(ctx context.Context, id int64) error {
	return s.eventRepo.Delete(ctx, id)
}

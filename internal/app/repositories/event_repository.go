package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/alumnisphere/backend/internal/app/models"
	"github.com/alumnisphere/backend/internal/pkg/apperrors"
)

// IEventRepository defines the interface for event database operations
type IEventRepository interface {
	Create(ctx context.Context, event *models.Event) error
	GetByID(ctx context.Context, id int64) (*models.Event, error)
	GetActive(ctx context.Context) ([]*models.Event, error)
	Update(ctx context.Context, event *models.Event) error
	Delete(ctx context.Context, id int64) error
}

// EventRepository handles database operations for events
type EventRepository struct {
	db *pgxpool.Pool
}

// NewEventRepository creates a new EventRepository
func NewEventRepository(db *pgxpool.Pool) *EventRepository {
	return &EventRepository{
		db: db,
	}
}

// Create persists a new event
func (r *EventRepository) Create(ctx context.Context, event *models.Event) error {
	err := r.db.QueryRow(ctx, `
		INSERT INTO events
			(created_by, title, description, event_date, event_time, venue,
			 event_type, registration_link, max_participants, is_active)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING id, created_at`,
		event.CreatedByID, event.Title, event.Description, event.EventDate,
		event.EventTime, event.Venue, event.EventType, event.RegistrationLink,
		event.MaxParticipants, event.IsActive,
	).Scan(&event.ID, &event.CreatedAt)

	if err != nil {
		return fmt.Errorf("error creating event: %w", err)
	}

	return nil
}

const eventJoinedQuery = `
	SELECT e.id, e.created_by, e.title, e.description, e.event_date,
	       e.event_time, e.venue, e.event_type, e.registration_link,
	       e.max_participants, e.is_active, e.created_at,
	       u.id, u.name, u.email
	FROM events e
	LEFT JOIN users u ON u.id = e.created_by`

func scanEvent(row pgx.Row) (*models.Event, error) {
	var event models.Event
	var creatorID *int64
	var creatorName, creatorEmail *string

	err := row.Scan(
		&event.ID, &event.CreatedByID, &event.Title, &event.Description,
		&event.EventDate, &event.EventTime, &event.Venue, &event.EventType,
		&event.RegistrationLink, &event.MaxParticipants, &event.IsActive,
		&event.CreatedAt,
		&creatorID, &creatorName, &creatorEmail,
	)
	if err != nil {
		return nil, err
	}

	if creatorID != nil {
		event.CreatedBy = &models.UserBrief{
			ID:    *creatorID,
			Name:  *creatorName,
			Email: *creatorEmail,
		}
	}

	return &event, nil
}

// GetByID retrieves an event by ID joined with its creator. Inactive events
// stay fetchable by direct id.
func (r *EventRepository) GetByID(ctx context.Context, id int64) (*models.Event, error) {
	row := r.db.QueryRow(ctx, eventJoinedQuery+` WHERE e.id = $1`, id)
	event, err := scanEvent(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrEventNotFound
		}
		return nil, fmt.Errorf("error retrieving event: %w", err)
	}
	return event, nil
}

// GetActive retrieves all active events joined with their creators, soonest first
func (r *EventRepository) GetActive(ctx context.Context) ([]*models.Event, error) {
	rows, err := r.db.Query(ctx, eventJoinedQuery+` WHERE e.is_active ORDER BY e.event_date ASC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var events []*models.Event
	for rows.Next() {
		event, err := scanEvent(rows)
		if err != nil {
			return nil, err
		}
		events = append(events, event)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return events, nil
}

// Update overwrites the mutable columns of an event. The service merges the
// request fields into the loaded record before calling this.
func (r *EventRepository) Update(ctx context.Context, event *models.Event) error {
	cmdTag, err := r.db.Exec(ctx, `
		UPDATE events
		SET title = $1, description = $2, event_date = $3, event_time = $4,
		    venue = $5, event_type = $6, registration_link = $7,
		    max_participants = $8, is_active = $9
		WHERE id = $10`,
		event.Title, event.Description, event.EventDate, event.EventTime,
		event.Venue, event.EventType, event.RegistrationLink,
		event.MaxParticipants, event.IsActive, event.ID)

	if err != nil {
		return fmt.Errorf("error updating event: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrEventNotFound
	}

	return nil
}

// Delete hard-deletes an event
func (r *EventRepository) Delete(ctx context.Context, id int64) error {
	cmdTag, err := r.db.Exec(ctx, `DELETE FROM events WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("error deleting event: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrEventNotFound
	}
	return nil
}

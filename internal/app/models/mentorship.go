package models

import (
	"time"
)

// Mentorship defines a mentorship request between a student (mentee) and an
// alumni (mentor), based on the 'mentorship_requests' table. At most one
// request per (mentor, mentee) pair may be in a pending or accepted state;
// a partial unique index enforces this at the storage layer.
type Mentorship struct {
	ID        int64            `json:"id" db:"id"`
	MentorID  int64            `json:"mentorId" db:"mentor_id"`
	MenteeID  int64            `json:"menteeId" db:"mentee_id"`
	Domain    string           `json:"domain" db:"domain"`
	Message   string           `json:"message" db:"message"`
	Status    MentorshipStatus `json:"status" db:"status"`
	CreatedAt time.Time        `json:"createdAt" db:"created_at"`
	UpdatedAt time.Time        `json:"updatedAt" db:"updated_at"`
	Mentor    *UserBrief       `json:"mentor,omitempty"` // Relation, no db tag
	Mentee    *UserBrief       `json:"mentee,omitempty"` // Relation, no db tag
}

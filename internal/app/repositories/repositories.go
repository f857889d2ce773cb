package repositories

import (
	"github.com/jackc/pgx/v5/pgxpool"
)

// Repositories holds all the repository instances
type Repositories struct {
	UserRepository           *UserRepository
	AlumniProfileRepository  *AlumniProfileRepository
	StudentProfileRepository *StudentProfileRepository
	JobRepository            *JobRepository
	EventRepository          *EventRepository
	MentorshipRepository     *MentorshipRepository
}

// NewRepositories initializes all repositories
func NewRepositories(db *pgxpool.Pool) *Repositories {
	return &Repositories{
		UserRepository:           NewUserRepository(db),
		AlumniProfileRepository:  NewAlumniProfileRepository(db),
		StudentProfileRepository: NewStudentProfileRepository(db),
		JobRepository:            NewJobRepository(db),
		EventRepository:          NewEventRepository(db),
		MentorshipRepository:     NewMentorshipRepository(db),
	}
}

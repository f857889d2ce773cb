package models

// RoleType defines the user role type
type RoleType string

const (
	RoleStudent RoleType = "student"
	RoleAlumni  RoleType = "alumni"
	RoleAdmin   RoleType = "admin"
)

// JobType constrains the employment kind of a job posting
type JobType string

const (
	JobFullTime   JobType = "Full-time"
	JobPartTime   JobType = "Part-time"
	JobInternship JobType = "Internship"
	JobContract   JobType = "Contract"
)

// ValidJobType reports whether t is one of the accepted job types
func ValidJobType(t JobType) bool {
	switch t {
	case JobFullTime, JobPartTime, JobInternship, JobContract:
		return true
	}
	return false
}

// EventType constrains the category of an event
type EventType string

const (
	EventWorkshop   EventType = "Workshop"
	EventSeminar    EventType = "Seminar"
	EventWebinar    EventType = "Webinar"
	EventNetworking EventType = "Networking"
	EventAlumniMeet EventType = "Alumni Meet"
	EventOther      EventType = "Other"
)

// ValidEventType reports whether t is one of the accepted event types
func ValidEventType(t EventType) bool {
	switch t {
	case EventWorkshop, EventSeminar, EventWebinar, EventNetworking, EventAlumniMeet, EventOther:
		return true
	}
	return false
}

// MentorshipStatus defines the lifecycle state of a mentorship request
type MentorshipStatus string

const (
	MentorshipPending   MentorshipStatus = "pending"
	MentorshipAccepted  MentorshipStatus = "accepted"
	MentorshipRejected  MentorshipStatus = "rejected"
	MentorshipCompleted MentorshipStatus = "completed"
)

package services

import (
	"context"
	"sort"
	"time"

	"github.com/alumnisphere/backend/internal/app/models"
	"github.com/alumnisphere/backend/internal/app/repositories"
	"github.com/alumnisphere/backend/internal/pkg/apperrors"
)

// In-memory repository fakes backing the service tests. Each mirrors the
// SQL repository's contract: sentinel errors, sort orders and owner joins.

type fakeUserRepo struct {
	nextID int64
	users  map[int64]*models.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: make(map[int64]*models.User)}
}

func (r *fakeUserRepo) addUser(name, email string, role models.RoleType, approved bool) *models.User {
	r.nextID++
	u := &models.User{
		ID:         r.nextID,
		Name:       name,
		Email:      email,
		Password:   "hashed",
		Role:       role,
		IsApproved: approved,
		CreatedAt:  time.Now().Add(time.Duration(r.nextID) * time.Second),
	}
	r.users[u.ID] = u
	return u
}

func (r *fakeUserRepo) Create(ctx context.Context, user *models.User) (int64, error) {
	for _, u := range r.users {
		if u.Email == user.Email {
			return 0, apperrors.ErrEmailAlreadyExists
		}
	}
	r.nextID++
	stored := *user
	stored.ID = r.nextID
	stored.CreatedAt = time.Now().Add(time.Duration(r.nextID) * time.Second)
	r.users[stored.ID] = &stored
	return stored.ID, nil
}

func (r *fakeUserRepo) GetByID(ctx context.Context, id int64) (*models.User, error) {
	u, ok := r.users[id]
	if !ok {
		return nil, apperrors.ErrUserNotFound
	}
	copied := *u
	return &copied, nil
}

func (r *fakeUserRepo) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	for _, u := range r.users {
		if u.Email == email {
			copied := *u
			return &copied, nil
		}
	}
	return nil, apperrors.ErrUserNotFound
}

func (r *fakeUserRepo) EmailExists(ctx context.Context, email string) (bool, error) {
	_, err := r.GetByEmail(ctx, email)
	return err == nil, nil
}

func (r *fakeUserRepo) GetAll(ctx context.Context) ([]*models.User, error) {
	users := make([]*models.User, 0, len(r.users))
	for _, u := range r.users {
		copied := *u
		users = append(users, &copied)
	}
	sort.Slice(users, func(i, j int) bool {
		return users[i].CreatedAt.After(users[j].CreatedAt)
	})
	return users, nil
}

func (r *fakeUserRepo) SetApproved(ctx context.Context, id int64, approved bool) error {
	u, ok := r.users[id]
	if !ok {
		return apperrors.ErrUserNotFound
	}
	u.IsApproved = approved
	return nil
}

func (r *fakeUserRepo) Delete(ctx context.Context, id int64) error {
	if _, ok := r.users[id]; !ok {
		return apperrors.ErrUserNotFound
	}
	delete(r.users, id)
	return nil
}

func (r *fakeUserRepo) CountStats(ctx context.Context) (*repositories.UserStats, error) {
	stats := &repositories.UserStats{}
	for _, u := range r.users {
		stats.TotalUsers++
		switch {
		case u.Role == models.RoleAlumni && u.IsApproved:
			stats.TotalAlumni++
		case u.Role == models.RoleAlumni:
			stats.PendingApprovals++
		case u.Role == models.RoleStudent:
			stats.TotalStudents++
		}
	}
	return stats, nil
}

func (r *fakeUserRepo) brief(id int64) *models.UserBrief {
	u, ok := r.users[id]
	if !ok {
		return nil
	}
	approved := u.IsApproved
	return &models.UserBrief{ID: u.ID, Name: u.Name, Email: u.Email, IsApproved: &approved}
}

// publicBrief mirrors the joins that select only id, name and email
func (r *fakeUserRepo) publicBrief(id int64) *models.UserBrief {
	u, ok := r.users[id]
	if !ok {
		return nil
	}
	return &models.UserBrief{ID: u.ID, Name: u.Name, Email: u.Email}
}

type fakeAlumniProfileRepo struct {
	users  *fakeUserRepo
	nextID int64
	// keyed by owner user id, mirroring the unique index
	profiles map[int64]*models.AlumniProfile
}

func newFakeAlumniProfileRepo(users *fakeUserRepo) *fakeAlumniProfileRepo {
	return &fakeAlumniProfileRepo{users: users, profiles: make(map[int64]*models.AlumniProfile)}
}

func (r *fakeAlumniProfileRepo) Upsert(ctx context.Context, profile *models.AlumniProfile) error {
	if existing, ok := r.profiles[profile.UserID]; ok {
		profile.ID = existing.ID
		profile.CreatedAt = existing.CreatedAt
	} else {
		r.nextID++
		profile.ID = r.nextID
		profile.CreatedAt = time.Now()
	}
	profile.UpdatedAt = time.Now()
	stored := *profile
	r.profiles[profile.UserID] = &stored
	return nil
}

func (r *fakeAlumniProfileRepo) GetByUserID(ctx context.Context, userID int64) (*models.AlumniProfile, error) {
	p, ok := r.profiles[userID]
	if !ok {
		return nil, apperrors.ErrProfileNotFound
	}
	copied := *p
	copied.User = r.users.brief(userID)
	return &copied, nil
}

func (r *fakeAlumniProfileRepo) GetByID(ctx context.Context, id int64) (*models.AlumniProfile, error) {
	for _, p := range r.profiles {
		if p.ID == id {
			copied := *p
			copied.User = r.users.brief(p.UserID)
			return &copied, nil
		}
	}
	return nil, apperrors.ErrProfileNotFound
}

func (r *fakeAlumniProfileRepo) GetAllWithOwner(ctx context.Context) ([]*models.AlumniProfile, error) {
	profiles := make([]*models.AlumniProfile, 0, len(r.profiles))
	for _, p := range r.profiles {
		copied := *p
		copied.User = r.users.brief(p.UserID)
		profiles = append(profiles, &copied)
	}
	sort.Slice(profiles, func(i, j int) bool {
		return profiles[i].GraduationYear > profiles[j].GraduationYear
	})
	return profiles, nil
}

type fakeStudentProfileRepo struct {
	users    *fakeUserRepo
	nextID   int64
	profiles map[int64]*models.StudentProfile
}

func newFakeStudentProfileRepo(users *fakeUserRepo) *fakeStudentProfileRepo {
	return &fakeStudentProfileRepo{users: users, profiles: make(map[int64]*models.StudentProfile)}
}

func (r *fakeStudentProfileRepo) Upsert(ctx context.Context, profile *models.StudentProfile) error {
	if existing, ok := r.profiles[profile.UserID]; ok {
		profile.ID = existing.ID
		profile.CreatedAt = existing.CreatedAt
	} else {
		r.nextID++
		profile.ID = r.nextID
		profile.CreatedAt = time.Now()
	}
	profile.UpdatedAt = time.Now()
	stored := *profile
	r.profiles[profile.UserID] = &stored
	return nil
}

func (r *fakeStudentProfileRepo) GetByUserID(ctx context.Context, userID int64) (*models.StudentProfile, error) {
	p, ok := r.profiles[userID]
	if !ok {
		return nil, apperrors.ErrProfileNotFound
	}
	copied := *p
	copied.User = r.users.brief(userID)
	return &copied, nil
}

func (r *fakeStudentProfileRepo) GetAllWithOwner(ctx context.Context) ([]*models.StudentProfile, error) {
	profiles := make([]*models.StudentProfile, 0, len(r.profiles))
	for _, p := range r.profiles {
		copied := *p
		copied.User = r.users.brief(p.UserID)
		profiles = append(profiles, &copied)
	}
	sort.Slice(profiles, func(i, j int) bool {
		return profiles[i].EnrollmentYear > profiles[j].EnrollmentYear
	})
	return profiles, nil
}

type fakeJobRepo struct {
	users  *fakeUserRepo
	nextID int64
	jobs   map[int64]*models.Job
}

func newFakeJobRepo(users *fakeUserRepo) *fakeJobRepo {
	return &fakeJobRepo{users: users, jobs: make(map[int64]*models.Job)}
}

func (r *fakeJobRepo) Create(ctx context.Context, job *models.Job) error {
	r.nextID++
	job.ID = r.nextID
	job.CreatedAt = time.Now().Add(time.Duration(r.nextID) * time.Second)
	stored := *job
	r.jobs[job.ID] = &stored
	return nil
}

func (r *fakeJobRepo) GetByID(ctx context.Context, id int64) (*models.Job, error) {
	j, ok := r.jobs[id]
	if !ok {
		return nil, apperrors.ErrJobNotFound
	}
	copied := *j
	copied.PostedBy = r.users.publicBrief(j.PostedByID)
	return &copied, nil
}

func (r *fakeJobRepo) GetActive(ctx context.Context) ([]*models.Job, error) {
	var jobs []*models.Job
	for _, j := range r.jobs {
		if j.IsActive {
			copied := *j
			copied.PostedBy = r.users.publicBrief(j.PostedByID)
			jobs = append(jobs, &copied)
		}
	}
	sort.Slice(jobs, func(i, k int) bool {
		return jobs[i].CreatedAt.After(jobs[k].CreatedAt)
	})
	return jobs, nil
}

func (r *fakeJobRepo) GetByPoster(ctx context.Context, posterID int64) ([]*models.Job, error) {
	var jobs []*models.Job
	for _, j := range r.jobs {
		if j.PostedByID == posterID {
			copied := *j
			jobs = append(jobs, &copied)
		}
	}
	sort.Slice(jobs, func(i, k int) bool {
		return jobs[i].CreatedAt.After(jobs[k].CreatedAt)
	})
	return jobs, nil
}

func (r *fakeJobRepo) Update(ctx context.Context, job *models.Job) error {
	if _, ok := r.jobs[job.ID]; !ok {
		return apperrors.ErrJobNotFound
	}
	stored := *job
	r.jobs[job.ID] = &stored
	return nil
}

func (r *fakeJobRepo) Delete(ctx context.Context, id int64) error {
	if _, ok := r.jobs[id]; !ok {
		return apperrors.ErrJobNotFound
	}
	delete(r.jobs, id)
	return nil
}

type fakeEventRepo struct {
	users  *fakeUserRepo
	nextID int64
	events map[int64]*models.Event
}

func newFakeEventRepo(users *fakeUserRepo) *fakeEventRepo {
	return &fakeEventRepo{users: users, events: make(map[int64]*models.Event)}
}

func (r *fakeEventRepo) Create(ctx context.Context, event *models.Event) error {
	r.nextID++
	event.ID = r.nextID
	event.CreatedAt = time.Now()
	stored := *event
	r.events[event.ID] = &stored
	return nil
}

func (r *fakeEventRepo) GetByID(ctx context.Context, id int64) (*models.Event, error) {
	e, ok := r.events[id]
	if !ok {
		return nil, apperrors.ErrEventNotFound
	}
	copied := *e
	copied.CreatedBy = r.users.publicBrief(e.CreatedByID)
	return &copied, nil
}

func (r *fakeEventRepo) GetActive(ctx context.Context) ([]*models.Event, error) {
	var events []*models.Event
	for _, e := range r.events {
		if e.IsActive {
			copied := *e
			copied.CreatedBy = r.users.publicBrief(e.CreatedByID)
			events = append(events, &copied)
		}
	}
	sort.Slice(events, func(i, j int) bool {
		return events[i].EventDate.Before(events[j].EventDate)
	})
	return events, nil
}

func (r *fakeEventRepo) Update(ctx context.Context, event *models.Event) error {
	if _, ok := r.events[event.ID]; !ok {
		return apperrors.ErrEventNotFound
	}
	stored := *event
	r.events[event.ID] = &stored
	return nil
}

func (r *fakeEventRepo) Delete(ctx context.Context, id int64) error {
	if _, ok := r.events[id]; !ok {
		return apperrors.ErrEventNotFound
	}
	delete(r.events, id)
	return nil
}

type fakeMentorshipRepo struct {
	users    *fakeUserRepo
	nextID   int64
	requests map[int64]*models.Mentorship
}

func newFakeMentorshipRepo(users *fakeUserRepo) *fakeMentorshipRepo {
	return &fakeMentorshipRepo{users: users, requests: make(map[int64]*models.Mentorship)}
}

func (r *fakeMentorshipRepo) Create(ctx context.Context, m *models.Mentorship) error {
	for _, existing := range r.requests {
		if existing.MentorID == m.MentorID && existing.MenteeID == m.MenteeID &&
			(existing.Status == models.MentorshipPending || existing.Status == models.MentorshipAccepted) {
			return apperrors.ErrMentorshipActive
		}
	}
	r.nextID++
	m.ID = r.nextID
	m.CreatedAt = time.Now().Add(time.Duration(r.nextID) * time.Second)
	m.UpdatedAt = m.CreatedAt
	stored := *m
	r.requests[m.ID] = &stored
	return nil
}

func (r *fakeMentorshipRepo) GetByID(ctx context.Context, id int64) (*models.Mentorship, error) {
	m, ok := r.requests[id]
	if !ok {
		return nil, apperrors.ErrMentorshipNotFound
	}
	copied := *m
	copied.Mentor = r.users.publicBrief(m.MentorID)
	copied.Mentee = r.users.publicBrief(m.MenteeID)
	return &copied, nil
}

func (r *fakeMentorshipRepo) HasActiveBetween(ctx context.Context, mentorID, menteeID int64) (bool, error) {
	for _, m := range r.requests {
		if m.MentorID == mentorID && m.MenteeID == menteeID &&
			(m.Status == models.MentorshipPending || m.Status == models.MentorshipAccepted) {
			return true, nil
		}
	}
	return false, nil
}

func (r *fakeMentorshipRepo) GetByMentee(ctx context.Context, menteeID int64) ([]*models.Mentorship, error) {
	var requests []*models.Mentorship
	for _, m := range r.requests {
		if m.MenteeID == menteeID {
			copied := *m
			copied.Mentor = r.users.publicBrief(m.MentorID)
			requests = append(requests, &copied)
		}
	}
	sort.Slice(requests, func(i, j int) bool {
		return requests[i].CreatedAt.After(requests[j].CreatedAt)
	})
	return requests, nil
}

func (r *fakeMentorshipRepo) GetByMentor(ctx context.Context, mentorID int64) ([]*models.Mentorship, error) {
	var requests []*models.Mentorship
	for _, m := range r.requests {
		if m.MentorID == mentorID {
			copied := *m
			copied.Mentee = r.users.publicBrief(m.MenteeID)
			requests = append(requests, &copied)
		}
	}
	sort.Slice(requests, func(i, j int) bool {
		return requests[i].CreatedAt.After(requests[j].CreatedAt)
	})
	return requests, nil
}

func (r *fakeMentorshipRepo) UpdateStatus(ctx context.Context, id int64, status models.MentorshipStatus) (*models.Mentorship, error) {
	m, ok := r.requests[id]
	if !ok {
		return nil, apperrors.ErrMentorshipNotFound
	}
	m.Status = status
	m.UpdatedAt = time.Now()
	copied := *m
	return &copied, nil
}

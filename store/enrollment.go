package store

import (
	"context"
	"sync"
	"time"

	"learnflow/models"
)

// EnrollmentStore owns enrollment records and their progress state
type EnrollmentStore interface {
	ListByUser(ctx context.Context, userID uint) ([]models.Enrollment, error)
	Get(ctx context.Context, id uint) (*models.Enrollment, error)
	GetByCourse(ctx context.Context, courseID, userID uint) (*models.Enrollment, error)
	Enroll(ctx context.Context, userID uint, course models.CourseSnapshot) (*models.Enrollment, error)
	Save(ctx context.Context, enrollment *models.Enrollment) error
	Unenroll(ctx context.Context, id uint) error
	ResetProgress(ctx context.Context, id uint) (*models.Enrollment, error)
	StatisticsByUser(ctx context.Context, userID uint) (*models.EnrollmentStatistics, error)
	LearningStreak(ctx context.Context, userID uint) (*models.LearningStreak, error)
}

// MemoryEnrollments is a fixture-backed EnrollmentStore with an optional
// chaos hook. Unlike the catalog, its records mutate on every progress event.
type MemoryEnrollments struct {
	chaos *Chaos

	mu          sync.RWMutex
	enrollments []models.Enrollment
	nextID      uint
}

func NewMemoryEnrollments(seed []models.Enrollment, chaos *Chaos) *MemoryEnrollments {
	m := &MemoryEnrollments{chaos: chaos, nextID: 1}
	m.enrollments = make([]models.Enrollment, len(seed))
	copy(m.enrollments, seed)
	for _, e := range m.enrollments {
		if e.ID >= m.nextID {
			m.nextID = e.ID + 1
		}
	}
	return m
}

func (m *MemoryEnrollments) ListByUser(ctx context.Context, userID uint) ([]models.Enrollment, error) {
	if err := m.chaos.induce(ctx); err != nil {
		return nil, err
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := []models.Enrollment{}
	for _, e := range m.enrollments {
		if e.UserID == userID {
			out = append(out, cloneEnrollment(e))
		}
	}
	return out, nil
}

func (m *MemoryEnrollments) Get(ctx context.Context, id uint) (*models.Enrollment, error) {
	if err := m.chaos.induce(ctx); err != nil {
		return nil, err
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	for _, e := range m.enrollments {
		if e.ID == id {
			c := cloneEnrollment(e)
			return &c, nil
		}
	}
	return nil, ErrNotFound
}

func (m *MemoryEnrollments) GetByCourse(ctx context.Context, courseID, userID uint) (*models.Enrollment, error) {
	if err := m.chaos.induce(ctx); err != nil {
		return nil, err
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	for _, e := range m.enrollments {
		if e.CourseID == courseID && e.UserID == userID {
			c := cloneEnrollment(e)
			return &c, nil
		}
	}
	return nil, ErrNotFound
}

// Enroll creates a fresh enrollment with zeroed progress. Enrolling twice in
// the same course is a conflict.
func (m *MemoryEnrollments) Enroll(ctx context.Context, userID uint, course models.CourseSnapshot) (*models.Enrollment, error) {
	if err := m.chaos.induce(ctx); err != nil {
		return nil, err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, e := range m.enrollments {
		if e.CourseID == course.CourseID && e.UserID == userID {
			return nil, ErrAlreadyEnrolled
		}
	}
	now := time.Now()
	enrollment := models.Enrollment{
		ID:               m.nextID,
		UserID:           userID,
		CourseID:         course.CourseID,
		Course:           course,
		EnrolledDate:     now,
		LastAccessed:     now,
		CompletedLessons: []uint{},
	}
	m.nextID++
	m.enrollments = append(m.enrollments, enrollment)
	c := cloneEnrollment(enrollment)
	return &c, nil
}

func (m *MemoryEnrollments) Save(ctx context.Context, enrollment *models.Enrollment) error {
	if err := m.chaos.induce(ctx); err != nil {
		return err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	for i := range m.enrollments {
		if m.enrollments[i].ID == enrollment.ID {
			m.enrollments[i] = cloneEnrollment(*enrollment)
			return nil
		}
	}
	return ErrNotFound
}

func (m *MemoryEnrollments) Unenroll(ctx context.Context, id uint) error {
	if err := m.chaos.induce(ctx); err != nil {
		return err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	for i := range m.enrollments {
		if m.enrollments[i].ID == id {
			m.enrollments = append(m.enrollments[:i], m.enrollments[i+1:]...)
			return nil
		}
	}
	return ErrNotFound
}

// ResetProgress zeroes all progress state, including the certificate flag.
// This is the one path allowed to clear an earned certificate, and it only
// runs on an explicit user request.
func (m *MemoryEnrollments) ResetProgress(ctx context.Context, id uint) (*models.Enrollment, error) {
	if err := m.chaos.induce(ctx); err != nil {
		return nil, err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	for i := range m.enrollments {
		if m.enrollments[i].ID == id {
			m.enrollments[i].Progress = 0
			m.enrollments[i].CompletedLessons = []uint{}
			m.enrollments[i].CurrentLesson = nil
			m.enrollments[i].CertificateEarned = false
			m.enrollments[i].TimeSpent = 0
			m.enrollments[i].LastAccessed = time.Now()
			c := cloneEnrollment(m.enrollments[i])
			return &c, nil
		}
	}
	return nil, ErrNotFound
}

func (m *MemoryEnrollments) StatisticsByUser(ctx context.Context, userID uint) (*models.EnrollmentStatistics, error) {
	if err := m.chaos.induce(ctx); err != nil {
		return nil, err
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	stats := models.EnrollmentStatistics{}
	progressSum := 0
	for _, e := range m.enrollments {
		if e.UserID != userID {
			continue
		}
		stats.TotalEnrollments++
		stats.TotalTimeSpent += e.TimeSpent
		progressSum += e.Progress
		switch {
		case e.Progress == 100:
			stats.CompletedCourses++
		case e.Progress > 0:
			stats.InProgressCourses++
		}
		if e.CertificateEarned {
			stats.CertificatesEarned++
		}
	}
	if stats.TotalEnrollments > 0 {
		stats.AverageProgress = float64(progressSum) / float64(stats.TotalEnrollments)
	}
	return &stats, nil
}

func (m *MemoryEnrollments) LearningStreak(ctx context.Context, userID uint) (*models.LearningStreak, error) {
	if err := m.chaos.induce(ctx); err != nil {
		return nil, err
	}
	return &models.LearningStreak{
		CurrentStreak: int(m.chaos.roll()*30) + 1,
		LongestStreak: int(m.chaos.roll()*60) + 15,
		LastActivity:  time.Now().Format("2006-01-02"),
	}, nil
}

func cloneEnrollment(e models.Enrollment) models.Enrollment {
	c := e
	c.CompletedLessons = append([]uint{}, e.CompletedLessons...)
	if e.CurrentLesson != nil {
		lesson := *e.CurrentLesson
		c.CurrentLesson = &lesson
	}
	return c
}

package models

import "time"

// Enrollment links a user to a course with progress state. Progress is an
// integer percentage 0-100; CertificateEarned implies Progress == 100 and is
// monotonic, it is never unset automatically.
type Enrollment struct {
	ID                uint           `json:"id"`
	UserID            uint           `json:"user_id"`
	CourseID          uint           `json:"course_id"`
	Course            CourseSnapshot `json:"course"`
	EnrolledDate      time.Time      `json:"enrolled_date"`
	LastAccessed      time.Time      `json:"last_accessed"`
	Progress          int            `json:"progress"`
	CompletedLessons  []uint         `json:"completed_lessons"`
	CurrentLesson     *uint          `json:"current_lesson"`
	CertificateEarned bool           `json:"certificate_earned"`
	TimeSpent         int            `json:"time_spent"` // minutes
}

// HasCompleted reports whether a lesson id is in the completed set
func (e *Enrollment) HasCompleted(lessonID uint) bool {
	for _, id := range e.CompletedLessons {
		if id == lessonID {
			return true
		}
	}
	return false
}

// EnrollmentStatistics aggregates a user's learning activity
type EnrollmentStatistics struct {
	TotalEnrollments   int     `json:"total_enrollments"`
	CompletedCourses   int     `json:"completed_courses"`
	InProgressCourses  int     `json:"in_progress_courses"`
	TotalTimeSpent     int     `json:"total_time_spent"`
	AverageProgress    float64 `json:"average_progress"`
	CertificatesEarned int     `json:"certificates_earned"`
}

// LearningStreak tracks consecutive days of activity
type LearningStreak struct {
	CurrentStreak int    `json:"current_streak"`
	LongestStreak int    `json:"longest_streak"`
	LastActivity  string `json:"last_activity"`
}

// Package progress implements lesson progress tracking and curriculum
// navigation for enrolled courses.
package progress

import (
	"context"
	"time"

	"learnflow/models"
	"learnflow/store"
)

const (
	// viewingStep is the coarse bump applied on each viewing-progress ping.
	// It deliberately ignores playback position and completed-lesson count.
	viewingStep = 5

	// completionCreditMinutes is credited the first time a lesson completes
	completionCreditMinutes = 15

	// assumedCurriculumSize is the fixed denominator MarkLessonComplete uses
	// when recomputing the stored progress field. Stored values stay
	// wire-compatible with existing clients; OverallProgress computes the
	// real ratio from the actual curriculum.
	assumedCurriculumSize = 8
)

// Tracker advances enrollment progress state through its two update paths
type Tracker struct {
	enrollments store.EnrollmentStore
}

func NewTracker(enrollments store.EnrollmentStore) *Tracker {
	return &Tracker{enrollments: enrollments}
}

// UpdateProgress records a viewing-progress ping: it moves the current-lesson
// pointer, bumps last-accessed, and nudges the stored progress field by a
// fixed step capped at 100. Playback position is accepted but only the ping
// itself matters to the stored state.
func (t *Tracker) UpdateProgress(ctx context.Context, enrollmentID, lessonID uint, playback float64) (*models.Enrollment, error) {
	enrollment, err := t.enrollments.Get(ctx, enrollmentID)
	if err != nil {
		return nil, err
	}

	enrollment.LastAccessed = time.Now()
	lesson := lessonID
	enrollment.CurrentLesson = &lesson
	enrollment.Progress = min(100, enrollment.Progress+viewingStep)

	if err := t.enrollments.Save(ctx, enrollment); err != nil {
		return nil, err
	}
	return enrollment, nil
}

// MarkLessonComplete idempotently adds the lesson to the completed set,
// credits time spent once per lesson, and recomputes the stored progress
// percentage. Reaching 100 earns the certificate; the flag is monotonic and
// never cleared here.
func (t *Tracker) MarkLessonComplete(ctx context.Context, enrollmentID, lessonID uint) (*models.Enrollment, error) {
	enrollment, err := t.enrollments.Get(ctx, enrollmentID)
	if err != nil {
		return nil, err
	}

	if !enrollment.HasCompleted(lessonID) {
		enrollment.CompletedLessons = append(enrollment.CompletedLessons, lessonID)
		enrollment.TimeSpent += completionCreditMinutes
	}
	enrollment.LastAccessed = time.Now()
	enrollment.Progress = min(100, len(enrollment.CompletedLessons)*100/assumedCurriculumSize)
	if enrollment.Progress >= 100 {
		enrollment.CertificateEarned = true
	}

	if err := t.enrollments.Save(ctx, enrollment); err != nil {
		return nil, err
	}
	return enrollment, nil
}

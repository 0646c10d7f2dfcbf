package progress

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"learnflow/models"
	"learnflow/store"
)

func newTestTracker(t *testing.T) (*Tracker, *store.MemoryEnrollments, *models.Enrollment) {
	t.Helper()
	enrollments := store.NewMemoryEnrollments(nil, nil)
	enrollment, err := enrollments.Enroll(context.Background(), 1, models.CourseSnapshot{
		CourseID: 1,
		Title:    "Go From Scratch",
		Price:    49.99,
	})
	require.NoError(t, err)
	return NewTracker(enrollments), enrollments, enrollment
}

func TestUpdateProgressBumpsByFixedStep(t *testing.T) {
	tracker, _, enrollment := newTestTracker(t)
	ctx := context.Background()

	updated, err := tracker.UpdateProgress(ctx, enrollment.ID, 3, 0.5)
	require.NoError(t, err)
	assert.Equal(t, 5, updated.Progress)
	require.NotNil(t, updated.CurrentLesson)
	assert.Equal(t, uint(3), *updated.CurrentLesson)
	assert.False(t, updated.LastAccessed.IsZero())

	// Playback position does not change the step size
	updated, err = tracker.UpdateProgress(ctx, enrollment.ID, 4, 0.99)
	require.NoError(t, err)
	assert.Equal(t, 10, updated.Progress)
	assert.Equal(t, uint(4), *updated.CurrentLesson)
}

func TestUpdateProgressCapsAtHundred(t *testing.T) {
	tracker, enrollments, enrollment := newTestTracker(t)
	ctx := context.Background()

	enrollment.Progress = 98
	require.NoError(t, enrollments.Save(ctx, enrollment))

	updated, err := tracker.UpdateProgress(ctx, enrollment.ID, 1, 0)
	require.NoError(t, err)
	assert.Equal(t, 100, updated.Progress)
}

func TestUpdateProgressUnknownEnrollment(t *testing.T) {
	tracker, _, _ := newTestTracker(t)

	_, err := tracker.UpdateProgress(context.Background(), 999, 1, 0)
	assert.ErrorIs(t, err, store.ErrNotFound)
}

func TestMarkLessonCompleteIsIdempotent(t *testing.T) {
	tracker, _, enrollment := newTestTracker(t)
	ctx := context.Background()

	first, err := tracker.MarkLessonComplete(ctx, enrollment.ID, 7)
	require.NoError(t, err)
	assert.Equal(t, []uint{7}, first.CompletedLessons)
	assert.Equal(t, 15, first.TimeSpent)
	assert.Equal(t, 12, first.Progress) // 1/8 of the assumed curriculum

	// Completing the same lesson again changes nothing but last-accessed
	second, err := tracker.MarkLessonComplete(ctx, enrollment.ID, 7)
	require.NoError(t, err)
	assert.Equal(t, []uint{7}, second.CompletedLessons)
	assert.Equal(t, 15, second.TimeSpent)
	assert.Equal(t, 12, second.Progress)
}

func TestMarkLessonCompleteEarnsCertificateAtHundred(t *testing.T) {
	tracker, _, enrollment := newTestTracker(t)
	ctx := context.Background()

	var latest *models.Enrollment
	var err error
	for lesson := uint(1); lesson <= 8; lesson++ {
		latest, err = tracker.MarkLessonComplete(ctx, enrollment.ID, lesson)
		require.NoError(t, err)
	}

	assert.Equal(t, 100, latest.Progress)
	assert.True(t, latest.CertificateEarned)
	assert.Equal(t, 8*15, latest.TimeSpent)
}

func TestCertificateIsMonotonic(t *testing.T) {
	tracker, enrollments, enrollment := newTestTracker(t)
	ctx := context.Background()

	for lesson := uint(1); lesson <= 8; lesson++ {
		_, err := tracker.MarkLessonComplete(ctx, enrollment.ID, lesson)
		require.NoError(t, err)
	}

	// A later viewing ping must not clear the certificate
	updated, err := tracker.UpdateProgress(ctx, enrollment.ID, 9, 0)
	require.NoError(t, err)
	assert.True(t, updated.CertificateEarned)

	// Only the explicit reset path clears it
	reset, err := enrollments.ResetProgress(ctx, enrollment.ID)
	require.NoError(t, err)
	assert.False(t, reset.CertificateEarned)
	assert.Equal(t, 0, reset.Progress)
	assert.Empty(t, reset.CompletedLessons)
	assert.Equal(t, 0, reset.TimeSpent)
}

// The stored progress field divides by a fixed curriculum size while the
// overall percentage divides by the course's real lesson count. For a course
// of six lessons, finishing all of them yields 100 overall against a stored
// value of 75.
func TestStoredProgressDivergesFromOverallProgress(t *testing.T) {
	tracker, _, enrollment := newTestTracker(t)
	ctx := context.Background()

	course := &models.Course{
		ID:    1,
		Title: "Go From Scratch",
		Sections: []models.Section{
			{ID: 1, Title: "Basics", Lessons: []models.Lesson{
				{ID: 1, Title: "Hello"},
				{ID: 2, Title: "Types"},
				{ID: 3, Title: "Flow"},
			}},
			{ID: 2, Title: "Beyond", Lessons: []models.Lesson{
				{ID: 4, Title: "Funcs"},
				{ID: 5, Title: "Structs"},
				{ID: 6, Title: "Errors"},
			}},
		},
	}

	var latest *models.Enrollment
	var err error
	for lesson := uint(1); lesson <= 6; lesson++ {
		latest, err = tracker.MarkLessonComplete(ctx, enrollment.ID, lesson)
		require.NoError(t, err)
	}

	assert.Equal(t, 75, latest.Progress) // 6 * 100 / 8
	assert.Equal(t, 100.0, OverallProgress(course, latest))
	assert.False(t, latest.CertificateEarned)
}

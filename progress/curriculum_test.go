package progress

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"learnflow/models"
)

func curriculumFixture() *models.Course {
	return &models.Course{
		ID:    1,
		Title: "Fixture Course",
		Sections: []models.Section{
			{ID: 1, Title: "Getting Started", Lessons: []models.Lesson{
				{ID: 10, Title: "Welcome"},
				{ID: 11, Title: "Setup"},
			}},
			{ID: 2, Title: "Core Concepts", Lessons: []models.Lesson{
				{ID: 20, Title: "First Steps"},
				{ID: 21, Title: "Digging In"},
				{ID: 22, Title: "Wrap Up"},
			}},
		},
	}
}

func TestFindLessonByID(t *testing.T) {
	course := curriculumFixture()

	lesson := FindLessonByID(course, 21)
	require.NotNil(t, lesson)
	assert.Equal(t, "Digging In", lesson.Title)

	assert.Nil(t, FindLessonByID(course, 99))
}

func TestNextLessonWalksFlattenedOrder(t *testing.T) {
	course := curriculumFixture()

	// Within a section
	next := NextLesson(course, 10)
	require.NotNil(t, next)
	assert.Equal(t, uint(11), next.ID)

	// Across the section boundary
	next = NextLesson(course, 11)
	require.NotNil(t, next)
	assert.Equal(t, uint(20), next.ID)

	// End of the curriculum
	assert.Nil(t, NextLesson(course, 22))
}

func TestPreviousLessonWalksFlattenedOrder(t *testing.T) {
	course := curriculumFixture()

	prev := PreviousLesson(course, 21)
	require.NotNil(t, prev)
	assert.Equal(t, uint(20), prev.ID)

	// Across the section boundary
	prev = PreviousLesson(course, 20)
	require.NotNil(t, prev)
	assert.Equal(t, uint(11), prev.ID)

	// Start of the curriculum
	assert.Nil(t, PreviousLesson(course, 10))
}

func TestFirstLesson(t *testing.T) {
	course := curriculumFixture()

	first := FirstLesson(course)
	require.NotNil(t, first)
	assert.Equal(t, uint(10), first.ID)

	assert.Nil(t, FirstLesson(&models.Course{}))

	// Leading empty sections are skipped
	sparse := &models.Course{Sections: []models.Section{
		{ID: 1, Title: "Empty"},
		{ID: 2, Title: "Content", Lessons: []models.Lesson{{ID: 5}}},
	}}
	first = FirstLesson(sparse)
	require.NotNil(t, first)
	assert.Equal(t, uint(5), first.ID)
}

func TestSectionProgress(t *testing.T) {
	course := curriculumFixture()
	enrollment := &models.Enrollment{CompletedLessons: []uint{10, 20, 21}}

	assert.Equal(t, 50.0, SectionProgress(course.Sections[0], enrollment))
	assert.InDelta(t, 66.67, SectionProgress(course.Sections[1], enrollment), 0.01)
	assert.Equal(t, 0.0, SectionProgress(course.Sections[0], nil))
	assert.Equal(t, 0.0, SectionProgress(models.Section{}, enrollment))
}

func TestCompletionRatioCountsOnlyCurriculumLessons(t *testing.T) {
	course := curriculumFixture()

	// Lesson 99 is not in the course and must not inflate the ratio
	enrollment := &models.Enrollment{CompletedLessons: []uint{10, 11, 99}}
	assert.InDelta(t, 0.4, CompletionRatio(enrollment, course), 0.0001)
	assert.InDelta(t, 40.0, OverallProgress(course, enrollment), 0.0001)

	assert.Equal(t, 0.0, CompletionRatio(nil, course))
	assert.Equal(t, 0.0, CompletionRatio(enrollment, &models.Course{}))
}

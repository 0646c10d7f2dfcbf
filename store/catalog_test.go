package store

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seededCatalog() *MemoryCatalog {
	return NewMemoryCatalog(SeedCourses(), nil)
}

func TestCatalogList(t *testing.T) {
	catalog := seededCatalog()

	courses, err := catalog.List(context.Background())
	require.NoError(t, err)
	assert.Len(t, courses, 6)
}

func TestCatalogGetByID(t *testing.T) {
	catalog := seededCatalog()
	ctx := context.Background()

	course, err := catalog.GetByID(ctx, 3)
	require.NoError(t, err)
	assert.Equal(t, "UI/UX Design Masterclass", course.Title)

	_, err = catalog.GetByID(ctx, 999)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestSearchShortQueriesReturnNothing(t *testing.T) {
	catalog := seededCatalog()
	ctx := context.Background()

	for _, query := range []string{"", "r", "  r  "} {
		results, err := catalog.Search(ctx, query)
		require.NoError(t, err, query)
		assert.Empty(t, results, query)
	}
}

func TestSearchIsCaseInsensitive(t *testing.T) {
	catalog := seededCatalog()
	ctx := context.Background()

	lower, err := catalog.Search(ctx, "react")
	require.NoError(t, err)
	upper, err := catalog.Search(ctx, "REACT")
	require.NoError(t, err)

	require.NotEmpty(t, lower)
	assert.Equal(t, lower, upper)
	assert.Equal(t, uint(1), lower[0].ID)
}

func TestSearchMatchesAllTextFields(t *testing.T) {
	catalog := seededCatalog()
	ctx := context.Background()

	// Instructor name
	byInstructor, err := catalog.Search(ctx, "sarah johnson")
	require.NoError(t, err)
	require.Len(t, byInstructor, 1)
	assert.Equal(t, uint(1), byInstructor[0].ID)

	// Category
	byCategory, err := catalog.Search(ctx, "photography")
	require.NoError(t, err)
	require.Len(t, byCategory, 1)
	assert.Equal(t, uint(6), byCategory[0].ID)

	// Description
	byDescription, err := catalog.Search(ctx, "pivot tables")
	require.NoError(t, err)
	require.Len(t, byDescription, 1)
	assert.Equal(t, uint(5), byDescription[0].ID)
}

func TestByCategory(t *testing.T) {
	catalog := seededCatalog()
	ctx := context.Background()

	courses, err := catalog.ByCategory(ctx, "design")
	require.NoError(t, err)
	require.Len(t, courses, 1)
	assert.Equal(t, "UI/UX Design Masterclass", courses[0].Title)

	empty, err := catalog.ByCategory(ctx, "Cooking")
	require.NoError(t, err)
	assert.Empty(t, empty)
}

func TestFeaturedOrdersByRating(t *testing.T) {
	catalog := seededCatalog()

	courses, err := catalog.Featured(context.Background(), 3)
	require.NoError(t, err)
	require.Len(t, courses, 3)
	assert.Equal(t, uint(3), courses[0].ID) // 4.9
	assert.Equal(t, uint(1), courses[1].ID) // 4.8
	assert.Equal(t, uint(6), courses[2].ID) // 4.7
}

func TestPopularOrdersByEnrollment(t *testing.T) {
	catalog := seededCatalog()

	courses, err := catalog.Popular(context.Background(), 2)
	require.NoError(t, err)
	require.Len(t, courses, 2)
	assert.Equal(t, uint(1), courses[0].ID) // 15420 enrolled
	assert.Equal(t, uint(2), courses[1].ID) // 12350 enrolled
}

func TestRecommendationsShareCategoryOrRating(t *testing.T) {
	catalog := seededCatalog()
	ctx := context.Background()

	recommendations, err := catalog.Recommendations(ctx, 1, 0)
	require.NoError(t, err)
	require.NotEmpty(t, recommendations)
	course1, err := catalog.GetByID(ctx, 1)
	require.NoError(t, err)
	for _, rec := range recommendations {
		assert.NotEqual(t, course1.ID, rec.ID)
		close := rec.Rating > course1.Rating-0.5 && rec.Rating < course1.Rating+0.5
		assert.True(t, rec.Category == course1.Category || close, rec.Title)
	}
}

func TestRecommendationsUnknownCourseFallsBack(t *testing.T) {
	catalog := seededCatalog()

	recommendations, err := catalog.Recommendations(context.Background(), 999, 2)
	require.NoError(t, err)
	require.Len(t, recommendations, 2)
	assert.Equal(t, uint(1), recommendations[0].ID)
}

func TestReviewsAndStatistics(t *testing.T) {
	catalog := seededCatalog()
	ctx := context.Background()

	reviews, err := catalog.Reviews(ctx, 1)
	require.NoError(t, err)
	assert.NotEmpty(t, reviews)

	stats, err := catalog.Statistics(ctx, 1)
	require.NoError(t, err)
	assert.GreaterOrEqual(t, stats.TotalStudents, 5000)
	assert.GreaterOrEqual(t, stats.CompletionRate, 70)
	assert.GreaterOrEqual(t, stats.AverageRating, 3.5)
}

func TestChaosAlwaysFailing(t *testing.T) {
	catalog := NewMemoryCatalog(SeedCourses(), NewChaos(0, 1.0))

	_, err := catalog.List(context.Background())
	assert.ErrorIs(t, err, ErrUnavailable)
}

func TestChaosNeverFailing(t *testing.T) {
	catalog := NewMemoryCatalog(SeedCourses(), NewChaos(0, 0))

	for i := 0; i < 50; i++ {
		_, err := catalog.List(context.Background())
		require.NoError(t, err)
	}
}

func TestChaosLatencyHonorsContext(t *testing.T) {
	catalog := NewMemoryCatalog(SeedCourses(), NewChaos(time.Second, 0))

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()
	_, err := catalog.List(ctx)
	assert.ErrorIs(t, err, context.DeadlineExceeded)
}

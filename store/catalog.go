package store

import (
	"context"
	"math"
	"sort"
	"strings"

	"learnflow/models"
)

// CatalogStore serves read-only course reference data
type CatalogStore interface {
	List(ctx context.Context) ([]models.Course, error)
	GetByID(ctx context.Context, id uint) (*models.Course, error)
	Search(ctx context.Context, query string) ([]models.Course, error)
	ByCategory(ctx context.Context, category string) ([]models.Course, error)
	Featured(ctx context.Context, limit int) ([]models.Course, error)
	Popular(ctx context.Context, limit int) ([]models.Course, error)
	Recommendations(ctx context.Context, courseID uint, limit int) ([]models.Course, error)
	Reviews(ctx context.Context, courseID uint) ([]models.Review, error)
	Statistics(ctx context.Context, courseID uint) (*models.CourseStatistics, error)
}

// MemoryCatalog is a fixture-backed CatalogStore with an optional chaos hook
type MemoryCatalog struct {
	chaos   *Chaos
	courses []models.Course
}

// NewMemoryCatalog copies the given fixture set. A nil chaos hook disables
// latency and failure injection.
func NewMemoryCatalog(courses []models.Course, chaos *Chaos) *MemoryCatalog {
	c := &MemoryCatalog{chaos: chaos}
	c.courses = make([]models.Course, len(courses))
	copy(c.courses, courses)
	return c
}

func (m *MemoryCatalog) List(ctx context.Context) ([]models.Course, error) {
	if err := m.chaos.induce(ctx); err != nil {
		return nil, err
	}
	out := make([]models.Course, len(m.courses))
	copy(out, m.courses)
	return out, nil
}

func (m *MemoryCatalog) GetByID(ctx context.Context, id uint) (*models.Course, error) {
	if err := m.chaos.induce(ctx); err != nil {
		return nil, err
	}
	for _, course := range m.courses {
		if course.ID == id {
			c := course
			return &c, nil
		}
	}
	return nil, ErrNotFound
}

// Search does a case-insensitive substring scan over title, description,
// category and instructor name. Queries shorter than 2 characters return
// an empty result instead of the full catalog.
func (m *MemoryCatalog) Search(ctx context.Context, query string) ([]models.Course, error) {
	if err := m.chaos.induce(ctx); err != nil {
		return nil, err
	}
	query = strings.TrimSpace(query)
	if len(query) < 2 {
		return []models.Course{}, nil
	}
	term := strings.ToLower(query)
	matches := []models.Course{}
	for _, course := range m.courses {
		if strings.Contains(strings.ToLower(course.Title), term) ||
			strings.Contains(strings.ToLower(course.Description), term) ||
			strings.Contains(strings.ToLower(course.Category), term) ||
			strings.Contains(strings.ToLower(course.Instructor.Name), term) {
			matches = append(matches, course)
		}
	}
	return matches, nil
}

func (m *MemoryCatalog) ByCategory(ctx context.Context, category string) ([]models.Course, error) {
	if err := m.chaos.induce(ctx); err != nil {
		return nil, err
	}
	matches := []models.Course{}
	for _, course := range m.courses {
		if strings.EqualFold(course.Category, category) {
			matches = append(matches, course)
		}
	}
	return matches, nil
}

// Featured returns the top courses by rating
func (m *MemoryCatalog) Featured(ctx context.Context, limit int) ([]models.Course, error) {
	if err := m.chaos.induce(ctx); err != nil {
		return nil, err
	}
	return m.topBy(limit, func(a, b models.Course) bool { return a.Rating > b.Rating }), nil
}

// Popular returns the top courses by enrollment count
func (m *MemoryCatalog) Popular(ctx context.Context, limit int) ([]models.Course, error) {
	if err := m.chaos.induce(ctx); err != nil {
		return nil, err
	}
	return m.topBy(limit, func(a, b models.Course) bool { return a.Enrolled > b.Enrolled }), nil
}

func (m *MemoryCatalog) topBy(limit int, less func(a, b models.Course) bool) []models.Course {
	sorted := make([]models.Course, len(m.courses))
	copy(sorted, m.courses)
	sort.SliceStable(sorted, func(i, j int) bool { return less(sorted[i], sorted[j]) })
	if limit > 0 && limit < len(sorted) {
		sorted = sorted[:limit]
	}
	return sorted
}

// Recommendations picks courses in the same category or within half a rating
// point of the given course. An unknown course id falls back to the head of
// the catalog rather than failing.
func (m *MemoryCatalog) Recommendations(ctx context.Context, courseID uint, limit int) ([]models.Course, error) {
	if err := m.chaos.induce(ctx); err != nil {
		return nil, err
	}
	var current *models.Course
	for i := range m.courses {
		if m.courses[i].ID == courseID {
			current = &m.courses[i]
			break
		}
	}
	if current == nil {
		out := m.courses
		if limit > 0 && limit < len(out) {
			out = out[:limit]
		}
		result := make([]models.Course, len(out))
		copy(result, out)
		return result, nil
	}
	matches := []models.Course{}
	for _, course := range m.courses {
		if course.ID == courseID {
			continue
		}
		if course.Category == current.Category || math.Abs(course.Rating-current.Rating) < 0.5 {
			matches = append(matches, course)
		}
		if limit > 0 && len(matches) == limit {
			break
		}
	}
	return matches, nil
}

func (m *MemoryCatalog) Reviews(ctx context.Context, courseID uint) ([]models.Review, error) {
	if err := m.chaos.induce(ctx); err != nil {
		return nil, err
	}
	return seedReviews(), nil
}

func (m *MemoryCatalog) Statistics(ctx context.Context, courseID uint) (*models.CourseStatistics, error) {
	if err := m.chaos.induce(ctx); err != nil {
		return nil, err
	}
	return &models.CourseStatistics{
		TotalStudents:  int(m.chaos.roll()*20000) + 5000,
		CompletionRate: int(m.chaos.roll()*30) + 70,
		AverageRating:  math.Round((m.chaos.roll()*1.5+3.5)*10) / 10,
		TotalReviews:   int(m.chaos.roll()*500) + 100,
		LastUpdated:    "2024-01-01",
	}, nil
}

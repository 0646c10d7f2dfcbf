package progress

import "learnflow/models"

// Curriculum order is sections in course order, then lessons in section
// order. All navigation below walks that flattened sequence.

// FindLessonByID locates a lesson anywhere in the course curriculum
func FindLessonByID(course *models.Course, lessonID uint) *models.Lesson {
	for s := range course.Sections {
		for l := range course.Sections[s].Lessons {
			if course.Sections[s].Lessons[l].ID == lessonID {
				return &course.Sections[s].Lessons[l]
			}
		}
	}
	return nil
}

// NextLesson returns the lesson after the given one, or nil at the end of
// the curriculum
func NextLesson(course *models.Course, lessonID uint) *models.Lesson {
	foundCurrent := false
	for s := range course.Sections {
		for l := range course.Sections[s].Lessons {
			if foundCurrent {
				return &course.Sections[s].Lessons[l]
			}
			if course.Sections[s].Lessons[l].ID == lessonID {
				foundCurrent = true
			}
		}
	}
	return nil
}

// PreviousLesson returns the lesson before the given one, or nil at the start
func PreviousLesson(course *models.Course, lessonID uint) *models.Lesson {
	var previous *models.Lesson
	for s := range course.Sections {
		for l := range course.Sections[s].Lessons {
			if course.Sections[s].Lessons[l].ID == lessonID {
				return previous
			}
			previous = &course.Sections[s].Lessons[l]
		}
	}
	return nil
}

// FirstLesson returns the opening lesson of the curriculum, or nil for an
// empty course
func FirstLesson(course *models.Course) *models.Lesson {
	for s := range course.Sections {
		if len(course.Sections[s].Lessons) > 0 {
			return &course.Sections[s].Lessons[0]
		}
	}
	return nil
}

// SectionProgress is the completed share of one section, as a percentage
func SectionProgress(section models.Section, enrollment *models.Enrollment) float64 {
	if enrollment == nil || len(section.Lessons) == 0 {
		return 0
	}
	completed := 0
	for _, lesson := range section.Lessons {
		if enrollment.HasCompleted(lesson.ID) {
			completed++
		}
	}
	return float64(completed) / float64(len(section.Lessons)) * 100
}

// CompletionRatio is the authoritative completion measure: completed lessons
// that actually belong to the course, over the course's real lesson count.
// It intentionally diverges from the fixed-denominator progress field that
// MarkLessonComplete maintains.
func CompletionRatio(enrollment *models.Enrollment, course *models.Course) float64 {
	total := course.TotalLessons()
	if enrollment == nil || total == 0 {
		return 0
	}
	completed := 0
	for _, section := range course.Sections {
		for _, lesson := range section.Lessons {
			if enrollment.HasCompleted(lesson.ID) {
				completed++
			}
		}
	}
	return float64(completed) / float64(total)
}

// OverallProgress is CompletionRatio expressed as a percentage
func OverallProgress(course *models.Course, enrollment *models.Enrollment) float64 {
	return CompletionRatio(enrollment, course) * 100
}

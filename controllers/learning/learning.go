package controllers

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"learnflow/database"
	"learnflow/middleware"
	"learnflow/models"
	"learnflow/progress"
	"learnflow/services"
	"learnflow/store"
	"learnflow/utils"
)

func storeError(c *fiber.Ctx, err error, notFoundMsg string) error {
	if errors.Is(err, store.ErrNotFound) {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, notFoundMsg, nil)
	}
	if errors.Is(err, store.ErrUnavailable) {
		return middleware.JsonResponse(c, fiber.StatusServiceUnavailable, false, "Service temporarily unavailable. Please try again.", nil)
	}
	return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Something went wrong!", nil)
}

func GetEnrollments(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	enrollments, err := services.Enrollments.ListByUser(c.Context(), userID)
	if err != nil {
		return storeError(c, err, "Enrollments not found!")
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Enrollments fetched successfully!", enrollments)
}

func GetEnrollment(c *fiber.Ctx) error {
	enrollmentID := c.Locals("enrollmentID").(uint)

	enrollment, err := services.Enrollments.Get(c.Context(), enrollmentID)
	if err != nil {
		return storeError(c, err, "Enrollment not found!")
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Enrollment fetched successfully!", enrollment)
}

func EnrollInCourse(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	courseID := c.Locals("courseID").(uint)

	// Snapshot the course at enrollment time
	course, err := services.Catalog.GetByID(c.Context(), courseID)
	if err != nil {
		return storeError(c, err, "Course not found!")
	}

	enrollment, err := services.Enrollments.Enroll(c.Context(), userID, course.Snapshot())
	if err != nil {
		if errors.Is(err, store.ErrAlreadyEnrolled) {
			return middleware.JsonResponse(c, fiber.StatusConflict, false, "Already enrolled in this course!", nil)
		}
		return storeError(c, err, "Course not found!")
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Enrolled in course successfully!", enrollment)
}

// UpdateProgress handles the frequent viewing-progress pings from the player
func UpdateProgress(c *fiber.Ctx) error {
	enrollmentID := c.Locals("enrollmentID").(uint)
	lessonID := c.Locals("lessonID").(uint)
	playback := c.Locals("playbackProgress").(float64)

	enrollment, err := services.Tracker.UpdateProgress(c.Context(), enrollmentID, lessonID, playback)
	if err != nil {
		return storeError(c, err, "Enrollment not found!")
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Progress updated!", enrollment)
}

func MarkLessonComplete(c *fiber.Ctx) error {
	enrollmentID := c.Locals("enrollmentID").(uint)
	lessonID := c.Locals("lessonID").(uint)

	enrollment, err := services.Tracker.MarkLessonComplete(c.Context(), enrollmentID, lessonID)
	if err != nil {
		return storeError(c, err, "Enrollment not found!")
	}

	// First time reaching 100% sends the certificate email
	if enrollment.CertificateEarned {
		var user models.User
		if err := database.Database.Db.Where("id = ? AND is_deleted = ?", enrollment.UserID, false).First(&user).Error; err == nil {
			go utils.SendCertificateEmail(user.Email, user.Name, enrollment.Course.Title)
		}
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Lesson completed!", enrollment)
}

// GetLessonNavigation resolves a lesson plus its neighbors in curriculum order
func GetLessonNavigation(c *fiber.Ctx) error {
	courseID := c.Locals("courseID").(uint)
	lessonID := c.Locals("lessonID").(uint)

	course, err := services.Catalog.GetByID(c.Context(), courseID)
	if err != nil {
		return storeError(c, err, "Course not found!")
	}

	lesson := progress.FindLessonByID(course, lessonID)
	if lesson == nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Lesson not found!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Lesson fetched successfully!", fiber.Map{
		"lesson":   lesson,
		"next":     progress.NextLesson(course, lessonID),
		"previous": progress.PreviousLesson(course, lessonID),
	})
}

// GetCourseProgress returns the per-section and overall completion view
func GetCourseProgress(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	courseID := c.Locals("courseID").(uint)

	course, err := services.Catalog.GetByID(c.Context(), courseID)
	if err != nil {
		return storeError(c, err, "Course not found!")
	}

	enrollment, err := services.Enrollments.GetByCourse(c.Context(), courseID, userID)
	if err != nil {
		return storeError(c, err, "Enrollment not found!")
	}

	sections := make([]fiber.Map, 0, len(course.Sections))
	for _, section := range course.Sections {
		sections = append(sections, fiber.Map{
			"section_id": section.ID,
			"title":      section.Title,
			"progress":   progress.SectionProgress(section, enrollment),
		})
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Progress fetched successfully!", fiber.Map{
		"overall_progress": progress.OverallProgress(course, enrollment),
		"stored_progress":  enrollment.Progress,
		"sections":         sections,
		"current_lesson":   enrollment.CurrentLesson,
	})
}

func Unenroll(c *fiber.Ctx) error {
	enrollmentID := c.Locals("enrollmentID").(uint)

	if err := services.Enrollments.Unenroll(c.Context(), enrollmentID); err != nil {
		return storeError(c, err, "Enrollment not found!")
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Unenrolled successfully!", nil)
}

func ResetProgress(c *fiber.Ctx) error {
	enrollmentID := c.Locals("enrollmentID").(uint)

	enrollment, err := services.Enrollments.ResetProgress(c.Context(), enrollmentID)
	if err != nil {
		return storeError(c, err, "Enrollment not found!")
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Progress reset!", enrollment)
}

func GetStatistics(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	stats, err := services.Enrollments.StatisticsByUser(c.Context(), userID)
	if err != nil {
		return storeError(c, err, "Statistics not found!")
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Statistics fetched successfully!", stats)
}

func GetLearningStreak(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	streak, err := services.Enrollments.LearningStreak(c.Context(), userID)
	if err != nil {
		return storeError(c, err, "Streak not found!")
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Streak fetched successfully!", streak)
}

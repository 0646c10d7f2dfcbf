package learningRoutes

import (
	"github.com/gofiber/fiber/v2"

	controllers "learnflow/controllers/learning"
	"learnflow/middleware"
	validators "learnflow/validators/learning"
)

// SetupLearningRoutes sets up enrollment and progress tracking routes
func SetupLearningRoutes(app *fiber.App) {
	// Enrollment into a course
	courseGroup := app.Group("/course")
	courseGroup.Post("/:id/enroll", middleware.JWTMiddleware, validators.EnrollCourse(), controllers.EnrollInCourse)
	courseGroup.Get("/:id/progress", middleware.JWTMiddleware, validators.EnrollCourse(), controllers.GetCourseProgress)
	courseGroup.Get("/:id/lesson/:lessonId", middleware.JWTMiddleware, validators.EnrollCourse(), validators.LessonParam(), controllers.GetLessonNavigation)

	// Enrollment state and progress events
	enrollGroup := app.Group("/enrollments")
	enrollGroup.Get("/", middleware.JWTMiddleware, controllers.GetEnrollments)
	enrollGroup.Get("/statistics", middleware.JWTMiddleware, controllers.GetStatistics)
	enrollGroup.Get("/streak", middleware.JWTMiddleware, controllers.GetLearningStreak)
	enrollGroup.Get("/:id", middleware.JWTMiddleware, validators.EnrollmentParam(), controllers.GetEnrollment)
	enrollGroup.Put("/:id/progress", middleware.JWTMiddleware, validators.EnrollmentParam(), validators.UpdateProgress(), controllers.UpdateProgress)
	enrollGroup.Post("/:id/complete", middleware.JWTMiddleware, validators.EnrollmentParam(), validators.CompleteLesson(), controllers.MarkLessonComplete)
	enrollGroup.Post("/:id/reset", middleware.JWTMiddleware, validators.EnrollmentParam(), controllers.ResetProgress)
	enrollGroup.Delete("/:id", middleware.JWTMiddleware, validators.EnrollmentParam(), controllers.Unenroll)
}

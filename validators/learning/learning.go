package learningValidator

import (
	"strconv"

	"github.com/gofiber/fiber/v2"

	"learnflow/middleware"
)

// EnrollCourse validates the :id route param
func EnrollCourse() fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := strconv.Atoi(c.Params("id"))
		if err != nil || id < 1 {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid course ID!", nil)
		}

		c.Locals("courseID", uint(id))
		return c.Next()
	}
}

// EnrollmentParam validates the :id route param for enrollment routes
func EnrollmentParam() fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := strconv.Atoi(c.Params("id"))
		if err != nil || id < 1 {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid enrollment ID!", nil)
		}

		c.Locals("enrollmentID", uint(id))
		return c.Next()
	}
}

// UpdateProgress validates the viewing-progress ping body
func UpdateProgress() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			LessonID uint    `json:"lesson_id"`
			Progress float64 `json:"progress"`
		})

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		if reqData.LessonID == 0 {
			errors["lesson_id"] = "Lesson ID is required!"
		}
		if reqData.Progress < 0 || reqData.Progress > 100 {
			errors["progress"] = "Progress must be between 0 and 100!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("lessonID", reqData.LessonID)
		c.Locals("playbackProgress", reqData.Progress)
		return c.Next()
	}
}

// CompleteLesson validates the completion body
func CompleteLesson() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			LessonID uint `json:"lesson_id"`
		})

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		if reqData.LessonID == 0 {
			return middleware.ValidationErrorResponse(c, map[string]string{"lesson_id": "Lesson ID is required!"})
		}

		c.Locals("lessonID", reqData.LessonID)
		return c.Next()
	}
}

// LessonParam validates the :lessonId route param
func LessonParam() fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := strconv.Atoi(c.Params("lessonId"))
		if err != nil || id < 1 {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid lesson ID!", nil)
		}

		c.Locals("lessonID", uint(id))
		return c.Next()
	}
}

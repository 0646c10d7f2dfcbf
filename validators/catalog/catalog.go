package catalogValidator

import (
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"

	"learnflow/middleware"
)

// GetCourseDetail validates the :id route param
func GetCourseDetail() fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := strconv.Atoi(c.Params("id"))
		if err != nil || id < 1 {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid course ID!", nil)
		}

		c.Locals("courseID", uint(id))
		return c.Next()
	}
}

// SearchCourses validates the q query param
func SearchCourses() fiber.Handler {
	return func(c *fiber.Ctx) error {
		query := strings.TrimSpace(c.Query("q"))

		c.Locals("searchQuery", query)
		return c.Next()
	}
}

// RankingLimit validates the optional limit query param for featured/popular
func RankingLimit(defaultLimit int) fiber.Handler {
	return func(c *fiber.Ctx) error {
		limit := defaultLimit
		if raw := c.Query("limit"); raw != "" {
			parsed, err := strconv.Atoi(raw)
			if err != nil || parsed < 1 {
				return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Limit must be greater than 0!", nil)
			}
			limit = parsed
		}

		c.Locals("rankingLimit", limit)
		return c.Next()
	}
}

// GetByCategory validates the :category route param
func GetByCategory() fiber.Handler {
	return func(c *fiber.Ctx) error {
		category := strings.TrimSpace(c.Params("category"))
		if category == "" {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Category is required!", nil)
		}

		c.Locals("category", category)
		return c.Next()
	}
}

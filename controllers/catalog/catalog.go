package controllers

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"learnflow/middleware"
	"learnflow/services"
	"learnflow/store"
)

// storeError maps repository failures onto the response envelope. Transient
// chaos failures ask the caller to retry; unknown ids do not.
func storeError(c *fiber.Ctx, err error, notFoundMsg string) error {
	if errors.Is(err, store.ErrNotFound) {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, notFoundMsg, nil)
	}
	if errors.Is(err, store.ErrUnavailable) {
		return middleware.JsonResponse(c, fiber.StatusServiceUnavailable, false, "Service temporarily unavailable. Please try again.", nil)
	}
	return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Something went wrong!", nil)
}

func GetAllCourses(c *fiber.Ctx) error {
	courses, err := services.Catalog.List(c.Context())
	if err != nil {
		return storeError(c, err, "Courses not found!")
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Courses fetched successfully!", courses)
}

func GetCourseDetails(c *fiber.Ctx) error {
	courseID := c.Locals("courseID").(uint)

	course, err := services.Catalog.GetByID(c.Context(), courseID)
	if err != nil {
		return storeError(c, err, "Course not found!")
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Course fetched successfully!", course)
}

func SearchCourses(c *fiber.Ctx) error {
	query := c.Locals("searchQuery").(string)

	courses, err := services.Catalog.Search(c.Context(), query)
	if err != nil {
		return storeError(c, err, "Courses not found!")
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Search completed successfully!", courses)
}

// SuggestCourses feeds a type-ahead keystroke into the debounced suggester
// and answers with the latest suggestions that won the race. A keystroke's
// own results usually land on a later poll.
func SuggestCourses(c *fiber.Ctx) error {
	query := c.Locals("searchQuery").(string)

	services.Suggest.Input(query)
	currentQuery, results := services.Suggestions.Current()

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Suggestions fetched successfully!", fiber.Map{
		"query":       currentQuery,
		"suggestions": results,
	})
}

func GetCoursesByCategory(c *fiber.Ctx) error {
	category := c.Locals("category").(string)

	courses, err := services.Catalog.ByCategory(c.Context(), category)
	if err != nil {
		return storeError(c, err, "Courses not found!")
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Courses fetched successfully!", courses)
}

func GetFeaturedCourses(c *fiber.Ctx) error {
	limit := c.Locals("rankingLimit").(int)

	courses, err := services.Catalog.Featured(c.Context(), limit)
	if err != nil {
		return storeError(c, err, "Courses not found!")
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Featured courses fetched successfully!", courses)
}

func GetPopularCourses(c *fiber.Ctx) error {
	limit := c.Locals("rankingLimit").(int)

	courses, err := services.Catalog.Popular(c.Context(), limit)
	if err != nil {
		return storeError(c, err, "Courses not found!")
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Popular courses fetched successfully!", courses)
}

func GetRecommendations(c *fiber.Ctx) error {
	courseID := c.Locals("courseID").(uint)

	courses, err := services.Catalog.Recommendations(c.Context(), courseID, 4)
	if err != nil {
		return storeError(c, err, "Course not found!")
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Recommendations fetched successfully!", courses)
}

func GetCourseReviews(c *fiber.Ctx) error {
	courseID := c.Locals("courseID").(uint)

	reviews, err := services.Catalog.Reviews(c.Context(), courseID)
	if err != nil {
		return storeError(c, err, "Course not found!")
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Reviews fetched successfully!", reviews)
}

func GetCourseStatistics(c *fiber.Ctx) error {
	courseID := c.Locals("courseID").(uint)

	stats, err := services.Catalog.Statistics(c.Context(), courseID)
	if err != nil {
		return storeError(c, err, "Course not found!")
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Statistics fetched successfully!", stats)
}

package cartValidator

import (
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"

	"learnflow/middleware"
)

// AddToCart validates the course id in the request body
func AddToCart() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			CourseID uint `json:"course_id"`
		})

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		if reqData.CourseID == 0 {
			errors["course_id"] = "Course ID is required!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("courseID", reqData.CourseID)
		return c.Next()
	}
}

// CourseParam validates the :courseId route param
func CourseParam() fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := strconv.Atoi(c.Params("courseId"))
		if err != nil || id < 1 {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid course ID!", nil)
		}

		c.Locals("courseID", uint(id))
		return c.Next()
	}
}

// UpdateQuantity validates the quantity change request. Negative quantities
// are rejected here; zero passes through because it means removal.
func UpdateQuantity() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			CourseID uint `json:"course_id"`
			Quantity *int `json:"quantity"`
		})

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		if reqData.CourseID == 0 {
			errors["course_id"] = "Course ID is required!"
		}
		if reqData.Quantity == nil {
			errors["quantity"] = "Quantity is required!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("courseID", reqData.CourseID)
		c.Locals("quantity", *reqData.Quantity)
		return c.Next()
	}
}

// ApplyDiscount validates the discount code body
func ApplyDiscount() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			Code string `json:"code"`
		})

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		if strings.TrimSpace(reqData.Code) == "" {
			return middleware.ValidationErrorResponse(c, map[string]string{"code": "Discount code is required!"})
		}

		c.Locals("discountCode", reqData.Code)
		return c.Next()
	}
}

package checkoutValidator

import (
	"github.com/gofiber/fiber/v2"

	"learnflow/checkout"
	"learnflow/middleware"
)

// Billing parses the billing step body. Required-field checks live in the
// checkout flow itself so the wizard owns its own validation rules.
func Billing() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(checkout.BillingInfo)

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		c.Locals("validatedBilling", reqData)
		return c.Next()
	}
}

// Payment parses the payment step body
func Payment() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(checkout.PaymentInfo)

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		c.Locals("validatedPayment", reqData)
		return c.Next()
	}
}

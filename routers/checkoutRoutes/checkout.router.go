package checkoutRoutes

import (
	"github.com/gofiber/fiber/v2"

	controllers "learnflow/controllers/checkout"
	"learnflow/middleware"
	cartValidators "learnflow/validators/cart"
	validators "learnflow/validators/checkout"
)

// SetupCheckoutRoutes sets up the checkout wizard routes
func SetupCheckoutRoutes(app *fiber.App) {
	checkoutGroup := app.Group("/checkout")

	checkoutGroup.Post("/start", middleware.JWTMiddleware, controllers.StartCheckout)
	checkoutGroup.Post("/billing", middleware.JWTMiddleware, validators.Billing(), controllers.SubmitBilling)
	checkoutGroup.Post("/payment", middleware.JWTMiddleware, validators.Payment(), controllers.SubmitPayment)
	checkoutGroup.Post("/back", middleware.JWTMiddleware, controllers.StepBack)
	checkoutGroup.Post("/discount", middleware.JWTMiddleware, cartValidators.ApplyDiscount(), controllers.ApplyDiscount)
	checkoutGroup.Get("/review", middleware.JWTMiddleware, controllers.Review)
	checkoutGroup.Post("/submit", middleware.JWTMiddleware, controllers.Submit)

	orderGroup := app.Group("/orders")
	orderGroup.Get("/", middleware.JWTMiddleware, controllers.GetOrders)
}

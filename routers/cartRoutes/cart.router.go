package cartRoutes

import (
	"github.com/gofiber/fiber/v2"

	controllers "learnflow/controllers/cart"
	"learnflow/middleware"
	validators "learnflow/validators/cart"
)

// SetupCartRoutes sets up the shopping cart routes
func SetupCartRoutes(app *fiber.App) {
	cartGroup := app.Group("/cart")

	cartGroup.Get("/", middleware.JWTMiddleware, controllers.GetCart)
	cartGroup.Get("/summary", middleware.JWTMiddleware, controllers.GetCartSummary)
	cartGroup.Post("/add", middleware.JWTMiddleware, validators.AddToCart(), controllers.AddToCart)
	cartGroup.Put("/quantity", middleware.JWTMiddleware, validators.UpdateQuantity(), controllers.UpdateQuantity)
	cartGroup.Delete("/clear", middleware.JWTMiddleware, controllers.ClearCart)
	cartGroup.Delete("/:courseId", middleware.JWTMiddleware, validators.CourseParam(), controllers.RemoveFromCart)
	cartGroup.Post("/discount", middleware.JWTMiddleware, validators.ApplyDiscount(), controllers.ApplyDiscount)
	cartGroup.Post("/checkout/prepare", middleware.JWTMiddleware, controllers.PrepareCheckout)
}

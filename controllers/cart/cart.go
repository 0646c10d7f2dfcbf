package controllers

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"learnflow/cart"
	"learnflow/middleware"
	"learnflow/services"
	"learnflow/store"
)

func AddToCart(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	courseID := c.Locals("courseID").(uint)

	// Snapshot the course at time of add so later price changes don't leak in
	course, err := services.Catalog.GetByID(c.Context(), courseID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Course not found!", nil)
		}
		return middleware.JsonResponse(c, fiber.StatusServiceUnavailable, false, "Service temporarily unavailable. Please try again.", nil)
	}

	engine := services.Carts.ForUser(userID)
	engine.AddToCart(*course)

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Course added to cart!", fiber.Map{
		"items":   engine.Items(),
		"summary": engine.GetCartSummary(),
	})
}

func GetCart(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	engine := services.Carts.ForUser(userID)
	engine.ValidateCart()

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Cart fetched successfully!", fiber.Map{
		"items":   engine.Items(),
		"summary": engine.GetCartSummary(),
	})
}

func RemoveFromCart(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	courseID := c.Locals("courseID").(uint)

	engine := services.Carts.ForUser(userID)
	engine.RemoveFromCart(courseID)

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Course removed from cart!", fiber.Map{
		"items":   engine.Items(),
		"summary": engine.GetCartSummary(),
	})
}

func UpdateQuantity(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	courseID := c.Locals("courseID").(uint)
	quantity := c.Locals("quantity").(int)

	engine := services.Carts.ForUser(userID)
	if err := engine.UpdateQuantity(courseID, quantity); err != nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid quantity!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Cart updated!", fiber.Map{
		"items":   engine.Items(),
		"summary": engine.GetCartSummary(),
	})
}

func ClearCart(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	engine := services.Carts.ForUser(userID)
	engine.ClearCart()

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Cart cleared!", nil)
}

func GetCartSummary(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	engine := services.Carts.ForUser(userID)

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Summary fetched successfully!", engine.GetCartSummary())
}

func ApplyDiscount(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	code := c.Locals("discountCode").(string)

	engine := services.Carts.ForUser(userID)
	discount, err := engine.ApplyDiscount(code)
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Invalid discount code!", nil)
	}

	summary := engine.GetCartSummary()
	amount := cart.DiscountAmount(discount, summary.Subtotal)

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Discount applied: "+discount.Description, fiber.Map{
		"discount":        discount,
		"discount_amount": amount,
		"payable_total":   cart.FinalTotal(summary.Total, amount),
	})
}

func PrepareCheckout(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	engine := services.Carts.ForUser(userID)
	order, err := engine.PrepareCheckout()
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Cart is empty!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Checkout prepared!", order)
}

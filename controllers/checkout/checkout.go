package controllers

import (
	"encoding/json"
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"learnflow/cart"
	"learnflow/checkout"
	"learnflow/database"
	"learnflow/middleware"
	"learnflow/models"
	"learnflow/services"
	"learnflow/utils"
)

// StartCheckout opens the wizard for the user's cart. An empty cart is
// refused and the caller is told to go back to the catalog.
func StartCheckout(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	engine := services.Carts.ForUser(userID)
	flow, err := services.Checkouts.Start(userID, engine)
	if err != nil {
		if errors.Is(err, cart.ErrEmptyCart) {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Cart is empty! Add some courses before checking out.", fiber.Map{
				"redirect": "/courses",
			})
		}
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to start checkout!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Checkout started!", fiber.Map{
		"step": flow.Step().String(),
	})
}

func getFlow(c *fiber.Ctx) (*checkout.Flow, uint, error) {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return nil, 0, middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}
	flow := services.Checkouts.Get(userID)
	if flow == nil {
		return nil, 0, middleware.JsonResponse(c, fiber.StatusBadRequest, false, "No checkout in progress!", nil)
	}
	return flow, userID, nil
}

// SubmitBilling stores billing fields and advances past step one
func SubmitBilling(c *fiber.Ctx) error {
	flow, _, err := getFlow(c)
	if err != nil {
		return err
	}

	reqData := c.Locals("validatedBilling").(*checkout.BillingInfo)
	flow.SetBilling(*reqData)

	if err := flow.Next(); err != nil {
		return middleware.JsonResponse(c, fiber.StatusUnprocessableEntity, false, "Please fill in all required billing information!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Billing information saved!", fiber.Map{
		"step": flow.Step().String(),
	})
}

// SubmitPayment stores payment fields and advances past step two
func SubmitPayment(c *fiber.Ctx) error {
	flow, _, err := getFlow(c)
	if err != nil {
		return err
	}

	reqData := c.Locals("validatedPayment").(*checkout.PaymentInfo)
	flow.SetPayment(*reqData)

	if err := flow.Next(); err != nil {
		return middleware.JsonResponse(c, fiber.StatusUnprocessableEntity, false, "Please fill in all required payment information!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Payment information saved!", fiber.Map{
		"step": flow.Step().String(),
	})
}

// StepBack always succeeds and clamps at the billing step
func StepBack(c *fiber.Ctx) error {
	flow, _, err := getFlow(c)
	if err != nil {
		return err
	}

	flow.Back()

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Moved back a step!", fiber.Map{
		"step": flow.Step().String(),
	})
}

// ApplyDiscount attaches a discount code to the in-progress checkout
func ApplyDiscount(c *fiber.Ctx) error {
	flow, _, err := getFlow(c)
	if err != nil {
		return err
	}

	code := c.Locals("discountCode").(string)
	discount, err := flow.ApplyDiscount(code)
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Invalid discount code!", nil)
	}

	summary, amount, payable := flow.Review()

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Discount applied: "+discount.Description, fiber.Map{
		"summary":         summary,
		"discount":        discount,
		"discount_amount": amount,
		"payable_total":   payable,
	})
}

// Review shows the payable amount before submission
func Review(c *fiber.Ctx) error {
	flow, _, err := getFlow(c)
	if err != nil {
		return err
	}

	summary, amount, payable := flow.Review()

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Review fetched successfully!", fiber.Map{
		"step":            flow.Step().String(),
		"summary":         summary,
		"discount_amount": amount,
		"payable_total":   payable,
	})
}

// Submit processes the payment, records the order and clears the cart
func Submit(c *fiber.Ctx) error {
	flow, userID, err := getFlow(c)
	if err != nil {
		return err
	}

	result, err := flow.Submit(c.Context())
	if err != nil {
		if errors.Is(err, checkout.ErrNotAtReview) {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Complete all checkout steps first!", nil)
		}
		return middleware.JsonResponse(c, fiber.StatusBadGateway, false, "Payment failed. Please try again.", nil)
	}

	items, _ := json.Marshal(result.Order.Items)
	discountCode := ""
	if result.Discount != nil {
		discountCode = result.Discount.Code
	}
	order := models.Order{
		OrderNumber:   uuid.NewString(),
		UserID:        userID,
		Items:         items,
		Subtotal:      result.Order.Summary.Subtotal,
		Tax:           result.Order.Summary.Tax,
		DiscountCode:  discountCode,
		Discount:      result.DiscountValue,
		Total:         result.PayableTotal,
		Status:        models.OrderStatusPaid,
		TransactionID: result.TransactionID,
		BillingName:   result.Billing.FirstName + " " + result.Billing.LastName,
		BillingEmail:  result.Billing.Email,
	}

	tx := database.Database.Db.Begin()
	if err := tx.Create(&order).Error; err != nil {
		tx.Rollback()
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to record order!", nil)
	}
	tx.Commit()

	services.Checkouts.Finish(userID)

	// Send confirmation email (async)
	go utils.SendOrderConfirmationEmail(result.Billing.Email, order.BillingName, order.OrderNumber, order.Total)

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Payment successful! Welcome to your courses.", fiber.Map{
		"order":    order,
		"redirect": "/dashboard",
	})
}

// GetOrders lists the user's past orders
func GetOrders(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	var orders []models.Order
	if err := database.Database.Db.Where("user_id = ? AND is_deleted = ?", userID, false).Order("created_at desc").Find(&orders).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch orders!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Orders fetched successfully!", orders)
}

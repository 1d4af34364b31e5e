package controllers

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/log"

	"github.com/latehar-tourism/backend/internal/pkg/payments"
)

// PaymentController exposes the payment order lifecycle over HTTP.
type PaymentController struct {
	service *payments.Service
}

// NewPaymentController creates a payment controller around the service.
func NewPaymentController(service *payments.Service) *PaymentController {
	return &PaymentController{service: service}
}

type createOrderRequest struct {
	Amount     float64 `json:"amount"`
	Currency   string  `json:"currency"`
	ProviderID string  `json:"providerId"`
}

type verifyPaymentRequest struct {
	RazorpayOrderID   string `json:"razorpay_order_id"`
	RazorpayPaymentID string `json:"razorpay_payment_id"`
	RazorpaySignature string `json:"razorpay_signature"`
	PaymentID         string `json:"paymentId"`
}

// HandleCreateOrder creates a gateway order and an internal record.
func (pc *PaymentController) HandleCreateOrder(c *fiber.Ctx) error {
	var req createOrderRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"success": false, "error": "Invalid request body"})
	}

	result, err := pc.service.CreateOrder(c.Context(), req.Amount, req.Currency, req.ProviderID)
	var upstream *payments.UpstreamError
	switch {
	case errors.Is(err, payments.ErrInvalidAmount):
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"success": false, "error": "Amount is required and must be positive"})
	case errors.As(err, &upstream):
		log.Errorf("create order failed upstream: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"success": false, "error": "Failed to create order: " + upstream.Err.Error()})
	case err != nil:
		log.Errorf("create order failed: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"success": false, "error": "Failed to create order"})
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"success":   true,
		"order":     result.Order,
		"paymentId": result.PaymentID,
	})
}

// HandleVerifyPayment validates a payment confirmation and transitions
// the matching record to paid.
func (pc *PaymentController) HandleVerifyPayment(c *fiber.Ctx) error {
	var req verifyPaymentRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"success": false, "error": "Invalid request body"})
	}

	payment, err := pc.service.VerifyPayment(req.RazorpayOrderID, req.RazorpayPaymentID, req.RazorpaySignature, req.PaymentID)
	switch {
	case errors.Is(err, payments.ErrSignatureMismatch):
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"success": false, "error": "Invalid signature"})
	case errors.Is(err, payments.ErrRecordNotFound):
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"success": false, "error": "Payment record not found"})
	case err != nil:
		log.Errorf("verify payment failed: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"success": false, "error": "Payment verification failed"})
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"success": true,
		"message": "Payment verified successfully",
		"payment": payment,
	})
}

// HandleListPayments dumps every payment record. Admin key middleware
// is attached in the router.
func (pc *PaymentController) HandleListPayments(c *fiber.Ctx) error {
	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"success":  true,
		"payments": pc.service.ListPayments(),
	})
}

package controllers

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/log"

	"github.com/latehar-tourism/backend/app/models"
	"github.com/latehar-tourism/backend/app/repository"
	"github.com/latehar-tourism/backend/internal/pkg/notify"
)

// BookingController accepts booking form submissions and hands the
// acknowledgement off to the notification queue. The queue's outcome
// never affects the response.
type BookingController struct {
	repo     repository.BookingRepository
	notifier *notify.Queue
}

// NewBookingController creates a booking controller.
func NewBookingController(repo repository.BookingRepository, notifier *notify.Queue) *BookingController {
	return &BookingController{repo: repo, notifier: notifier}
}

// HandleCreateBooking stores a booking and enqueues the WhatsApp
// acknowledgement.
func (bc *BookingController) HandleCreateBooking(c *fiber.Ctx) error {
	var req models.BookingRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"success": false, "error": "Invalid request body"})
	}
	if err := req.Validate(); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"success": false, "error": "name and contact required"})
	}

	id := bc.repo.Add(models.Booking{
		Name:      req.Name,
		Contact:   req.Contact,
		Checkin:   req.Checkin,
		Checkout:  req.Checkout,
		Guests:    req.Guests,
		Notes:     req.Notes,
		CreatedAt: time.Now(),
	})
	log.Infof("new booking %d from %s", id, req.Name)

	bc.notifier.EnqueueBookingAck(notify.BookingAckPayload{
		BookingID: id,
		Name:      req.Name,
		Contact:   req.Contact,
		Checkin:   req.Checkin,
		Checkout:  req.Checkout,
	})

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"success":   true,
		"bookingId": id,
	})
}

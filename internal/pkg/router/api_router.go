package router

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/limiter"

	"github.com/latehar-tourism/backend/app/controllers"
	"github.com/latehar-tourism/backend/internal/pkg/middleware"
)

// ApiRouter mounts the JSON API: health, payments, bookings and the
// admin listing.
type ApiRouter struct {
	Payments *controllers.PaymentController
	Bookings *controllers.BookingController
}

// NewApiRouter creates the API router from its controllers.
func NewApiRouter(payments *controllers.PaymentController, bookings *controllers.BookingController) *ApiRouter {
	return &ApiRouter{Payments: payments, Bookings: bookings}
}

func (h *ApiRouter) InstallRouter(app *fiber.App) {
	api := app.Group("/api", limiter.New())

	api.Get("/health", controllers.HandleHealthCheck)

	payments := api.Group("/payments")
	payments.Post("/create-order", h.Payments.HandleCreateOrder)
	payments.Post("/verify-payment", h.Payments.HandleVerifyPayment)

	api.Post("/bookings", h.Bookings.HandleCreateBooking)

	admin := api.Group("/admin", middleware.AdminKeyMiddleware())
	admin.Get("/payments", h.Payments.HandleListPayments)
}

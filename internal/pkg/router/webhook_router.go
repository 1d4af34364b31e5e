package router

import (
	"github.com/gofiber/fiber/v2"

	"github.com/latehar-tourism/backend/app/controllers"
)

// WebhookRouter mounts the Meta webhook endpoints at the root path,
// where the Cloud API subscription points.
type WebhookRouter struct {
	Webhooks *controllers.WebhookController
}

func NewWebhookRouter(webhooks *controllers.WebhookController) *WebhookRouter {
	return &WebhookRouter{Webhooks: webhooks}
}

func (h *WebhookRouter) InstallRouter(app *fiber.App) {
	app.Get("/webhook", h.Webhooks.HandleVerify)
	app.Post("/webhook", h.Webhooks.HandleReceive)
}

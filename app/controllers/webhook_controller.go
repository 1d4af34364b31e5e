package controllers

import (
	"context"
	"crypto/hmac"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/log"

	"github.com/latehar-tourism/backend/internal/pkg/env"
	"github.com/latehar-tourism/backend/internal/pkg/whatsapp"
)

const inquiryReply = "🌿 Thank you for contacting Latehar Tourism! We've received your booking inquiry. Our team will reach out shortly."

// WebhookController implements the Meta webhook endpoints for the
// WhatsApp Cloud API: the subscribe handshake and the message
// receiver.
type WebhookController struct {
	client *whatsapp.Client
}

// NewWebhookController creates a webhook controller.
func NewWebhookController(client *whatsapp.Client) *WebhookController {
	return &WebhookController{client: client}
}

// HandleVerify answers the Meta subscription handshake: echo
// hub.challenge when the verify token matches, 403 otherwise.
func (wc *WebhookController) HandleVerify(c *fiber.Ctx) error {
	mode := c.Query("hub.mode")
	token := c.Query("hub.verify_token")
	challenge := c.Query("hub.challenge")

	expected := env.GetEnv("WEBHOOK_VERIFY_TOKEN", "")
	if mode == "subscribe" && expected != "" && hmac.Equal([]byte(token), []byte(expected)) {
		log.Info("whatsapp webhook verified")
		return c.Status(fiber.StatusOK).SendString(challenge)
	}
	return c.SendStatus(fiber.StatusForbidden)
}

// webhookPayload mirrors the slice of the Cloud API event envelope we
// care about: inbound messages and their senders.
type webhookPayload struct {
	Entry []struct {
		Changes []struct {
			Value struct {
				Messages []struct {
					From string `json:"from"`
					Text *struct {
						Body string `json:"body"`
					} `json:"text"`
				} `json:"messages"`
			} `json:"value"`
		} `json:"changes"`
	} `json:"entry"`
}

// HandleReceive acknowledges the delivery immediately and replies to
// any contained messages in the background. Meta retries on non-200,
// so even a malformed body gets a 200 with a log line.
func (wc *WebhookController) HandleReceive(c *fiber.Ctx) error {
	var payload webhookPayload
	if err := c.BodyParser(&payload); err != nil {
		log.Warnf("webhook payload parse failed: %v", err)
		return c.SendStatus(fiber.StatusOK)
	}

	var senders []string
	for _, entry := range payload.Entry {
		for _, change := range entry.Changes {
			for _, msg := range change.Value.Messages {
				if msg.From != "" {
					senders = append(senders, msg.From)
				}
			}
		}
	}

	if len(senders) > 0 && wc.client.Configured() {
		go func(recipients []string) {
			ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
			defer cancel()
			for _, from := range recipients {
				if err := wc.client.SendText(ctx, from, inquiryReply); err != nil {
					log.Warnf("webhook auto-reply to %s failed: %v", from, err)
				}
			}
		}(senders)
	}

	return c.SendStatus(fiber.StatusOK)
}

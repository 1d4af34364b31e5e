package whatsapp

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/latehar-tourism/backend/internal/pkg/env"
)

const defaultGraphAPIBaseURL = "https://graph.facebook.com/v16.0"

// ErrNotConfigured is returned when phone id or access token are
// missing; callers are expected to skip the send, not fail a request.
var ErrNotConfigured = errors.New("whatsapp client is not configured")

// Client sends messages through the WhatsApp Cloud API.
type Client struct {
	PhoneID     string
	AccessToken string
	BaseURL     string

	HTTPClient *http.Client
}

// NewClientFromEnv builds a client from WHATSAPP_PHONE_ID /
// WHATSAPP_ACCESS_TOKEN. The base URL is overridable for tests.
func NewClientFromEnv() *Client {
	return &Client{
		PhoneID:     strings.TrimSpace(env.GetEnv("WHATSAPP_PHONE_ID", "")),
		AccessToken: strings.TrimSpace(env.GetEnv("WHATSAPP_ACCESS_TOKEN", "")),
		BaseURL:     strings.TrimRight(env.GetEnv("WHATSAPP_API_BASE_URL", defaultGraphAPIBaseURL), "/"),
		HTTPClient: &http.Client{
			Timeout: 15 * time.Second,
		},
	}
}

// Configured reports whether the Cloud API credentials are present.
func (c *Client) Configured() bool {
	return c.PhoneID != "" && c.AccessToken != ""
}

// SendText delivers a plain text message to a digits-only
// international number.
func (c *Client) SendText(ctx context.Context, to, body string) error {
	payload := map[string]interface{}{
		"messaging_product": "whatsapp",
		"to":                to,
		"text":              map[string]string{"body": body},
	}
	return c.post(ctx, payload)
}

// SendTemplate delivers a pre-approved template message. Business-
// initiated conversations often require templates, so this is the
// fallback when a plain text send is rejected.
func (c *Client) SendTemplate(ctx context.Context, to, name, language string, components []interface{}) error {
	if strings.TrimSpace(name) == "" {
		return errors.New("template name is required")
	}
	if language == "" {
		language = "en_US"
	}

	template := map[string]interface{}{
		"name":     name,
		"language": map[string]string{"code": language},
	}
	if len(components) > 0 {
		template["components"] = components
	}

	payload := map[string]interface{}{
		"messaging_product": "whatsapp",
		"to":                to,
		"type":              "template",
		"template":          template,
	}
	return c.post(ctx, payload)
}

func (c *Client) post(ctx context.Context, payload map[string]interface{}) error {
	if !c.Configured() {
		return ErrNotConfigured
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return err
	}

	url := fmt.Sprintf("%s/%s/messages", c.BaseURL, c.PhoneID)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.AccessToken)

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	respBody, _ := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("whatsapp send failed: status=%d body=%s", resp.StatusCode, string(respBody))
	}
	return nil
}

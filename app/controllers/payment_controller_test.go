package controllers

import (
	"bytes"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/latehar-tourism/backend/app/repository"
	"github.com/latehar-tourism/backend/internal/pkg/middleware"
	"github.com/latehar-tourism/backend/internal/pkg/payments"
)

const testSecret = "test-key-secret"

type fakeGateway struct {
	orderID string
	err     error
}

func (f *fakeGateway) CreateOrder(data map[string]interface{}) (map[string]interface{}, error) {
	if f.err != nil {
		return nil, f.err
	}
	return map[string]interface{}{"id": f.orderID, "status": "created"}, nil
}

func newTestApp(gw payments.GatewayClient) *fiber.App {
	repo := repository.NewMemoryPaymentRepository()
	service := payments.NewService(repo, gw, testSecret)
	pc := NewPaymentController(service)

	app := fiber.New()
	app.Post("/api/payments/create-order", pc.HandleCreateOrder)
	app.Post("/api/payments/verify-payment", pc.HandleVerifyPayment)
	app.Get("/api/admin/payments", middleware.AdminKeyMiddleware(), pc.HandleListPayments)
	return app
}

func signPayload(orderID, paymentID string) string {
	mac := hmac.New(sha256.New, []byte(testSecret))
	mac.Write([]byte(orderID + "|" + paymentID))
	return hex.EncodeToString(mac.Sum(nil))
}

func doJSON(t *testing.T, app *fiber.App, method, target string, payload any) (*http.Response, map[string]interface{}) {
	t.Helper()
	var body io.Reader
	if payload != nil {
		raw, err := json.Marshal(payload)
		require.NoError(t, err)
		body = bytes.NewReader(raw)
	}
	req := httptest.NewRequest(method, target, body)
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)

	var decoded map[string]interface{}
	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	if len(raw) > 0 {
		require.NoError(t, json.Unmarshal(raw, &decoded))
	}
	return resp, decoded
}

func TestCreateOrderEndpoint(t *testing.T) {
	app := newTestApp(&fakeGateway{orderID: "order_abc"})

	resp, body := doJSON(t, app, http.MethodPost, "/api/payments/create-order", fiber.Map{"amount": 500, "currency": "INR"})
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, true, body["success"])
	assert.NotEmpty(t, body["paymentId"])

	order := body["order"].(map[string]interface{})
	assert.Equal(t, "order_abc", order["id"])
}

func TestCreateOrderEndpoint_MissingAmount(t *testing.T) {
	app := newTestApp(&fakeGateway{orderID: "order_abc"})

	resp, body := doJSON(t, app, http.MethodPost, "/api/payments/create-order", fiber.Map{"currency": "INR"})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, false, body["success"])
}

func TestCreateOrderEndpoint_UpstreamFailure(t *testing.T) {
	app := newTestApp(&fakeGateway{err: errors.New("gateway down")})

	resp, body := doJSON(t, app, http.MethodPost, "/api/payments/create-order", fiber.Map{"amount": 500})
	assert.Equal(t, http.StatusInternalServerError, resp.StatusCode)
	assert.Equal(t, false, body["success"])
	assert.Contains(t, body["error"], "gateway down")
}

// Full lifecycle: create a 500 INR order, confirm it with a correctly
// signed payload, read it back through the admin listing.
func TestPaymentLifecycle(t *testing.T) {
	t.Setenv("ADMIN_API_KEY", "admin-key")
	app := newTestApp(&fakeGateway{orderID: "order_abc"})

	resp, body := doJSON(t, app, http.MethodPost, "/api/payments/create-order", fiber.Map{"amount": 500, "currency": "INR"})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	paymentID := body["paymentId"].(string)

	resp, body = doJSON(t, app, http.MethodPost, "/api/payments/verify-payment", fiber.Map{
		"razorpay_order_id":   "order_abc",
		"razorpay_payment_id": "pay_xyz",
		"razorpay_signature":  signPayload("order_abc", "pay_xyz"),
		"paymentId":           paymentID,
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, true, body["success"])
	assert.Equal(t, "Payment verified successfully", body["message"])

	payment := body["payment"].(map[string]interface{})
	assert.Equal(t, "paid", payment["status"])
	assert.Equal(t, "pay_xyz", payment["gatewayPaymentId"])

	req := httptest.NewRequest(http.MethodGet, "/api/admin/payments", nil)
	req.Header.Set("X-API-Key", "admin-key")
	listResp, err := app.Test(req, -1)
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, listResp.StatusCode)

	var listBody map[string]interface{}
	require.NoError(t, json.NewDecoder(listResp.Body).Decode(&listBody))
	paymentsList := listBody["payments"].([]interface{})
	require.Len(t, paymentsList, 1)
	assert.Equal(t, "paid", paymentsList[0].(map[string]interface{})["status"])
}

func TestVerifyPaymentEndpoint_InvalidSignature(t *testing.T) {
	app := newTestApp(&fakeGateway{orderID: "order_abc"})

	resp, createBody := doJSON(t, app, http.MethodPost, "/api/payments/create-order", fiber.Map{"amount": 500})
	require.Equal(t, http.StatusOK, resp.StatusCode)

	resp, body := doJSON(t, app, http.MethodPost, "/api/payments/verify-payment", fiber.Map{
		"razorpay_order_id":   "order_abc",
		"razorpay_payment_id": "pay_xyz",
		"razorpay_signature":  "deadbeef",
		"paymentId":           createBody["paymentId"],
	})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, false, body["success"])
	assert.Equal(t, "Invalid signature", body["error"])
}

func TestVerifyPaymentEndpoint_UnknownRecord(t *testing.T) {
	app := newTestApp(&fakeGateway{orderID: "order_abc"})

	resp, body := doJSON(t, app, http.MethodPost, "/api/payments/verify-payment", fiber.Map{
		"razorpay_order_id":   "order_abc",
		"razorpay_payment_id": "pay_xyz",
		"razorpay_signature":  signPayload("order_abc", "pay_xyz"),
		"paymentId":           "pay_unknown",
	})
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	assert.Equal(t, false, body["success"])
}

func TestAdminListing_AccessControl(t *testing.T) {
	app := newTestApp(&fakeGateway{orderID: "order_abc"})

	// Fail closed with no key configured.
	req := httptest.NewRequest(http.MethodGet, "/api/admin/payments", nil)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	assert.Equal(t, http.StatusServiceUnavailable, resp.StatusCode)

	t.Setenv("ADMIN_API_KEY", "admin-key")

	req = httptest.NewRequest(http.MethodGet, "/api/admin/payments", nil)
	resp, err = app.Test(req, -1)
	require.NoError(t, err)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)

	req = httptest.NewRequest(http.MethodGet, "/api/admin/payments", nil)
	req.Header.Set("X-API-Key", "wrong-key")
	resp, err = app.Test(req, -1)
	require.NoError(t, err)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)

	req = httptest.NewRequest(http.MethodGet, "/api/admin/payments", nil)
	req.Header.Set("Authorization", "Bearer admin-key")
	resp, err = app.Test(req, -1)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

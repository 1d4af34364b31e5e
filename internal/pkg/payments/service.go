package payments

import (
	"context"
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2/log"
	"github.com/google/uuid"

	"github.com/latehar-tourism/backend/app/models"
	"github.com/latehar-tourism/backend/app/repository"
)

const (
	// DefaultCurrency is used when the client omits a currency code.
	DefaultCurrency = "INR"

	// gatewayTimeout bounds how long a create-order request waits on
	// Razorpay before the caller gets an UpstreamError.
	gatewayTimeout = 10 * time.Second
)

// Service orchestrates the payment order lifecycle: order creation
// against the gateway, signature-gated verification, and the admin
// listing. The webhook secret is fixed at construction and never
// changes afterwards.
type Service struct {
	repo    repository.PaymentRepository
	gateway GatewayClient
	secret  string
}

// NewService creates a payment service from an injected repository and
// gateway client.
func NewService(repo repository.PaymentRepository, gateway GatewayClient, secret string) *Service {
	return &Service{repo: repo, gateway: gateway, secret: secret}
}

// CreateOrderResult carries the internal payment id together with the
// gateway order object exactly as Razorpay returned it.
type CreateOrderResult struct {
	PaymentID string
	Order     map[string]interface{}
}

// CreateOrder creates a Razorpay order for amount (major currency
// units) and stores a created-status record under a fresh internal id.
// No record is written when the gateway call fails.
func (s *Service) CreateOrder(ctx context.Context, amount float64, currency, providerID string) (*CreateOrderResult, error) {
	// The gateway wait is detached from ctx; see createGatewayOrder.
	_ = ctx
	if amount <= 0 {
		return nil, ErrInvalidAmount
	}
	if currency == "" {
		currency = DefaultCurrency
	}

	// The timestamp-only scheme of the old backend could collide under
	// concurrent requests; a UUID suffix keeps ids unique while the
	// pay_ prefix stays wire compatible with existing clients.
	paymentID := "pay_" + uuid.NewString()

	data := map[string]interface{}{
		// Razorpay expects the amount in minor units (paise for INR).
		"amount":   int64(amount * 100),
		"currency": currency,
		"receipt":  fmt.Sprintf("receipt_%d", time.Now().Unix()),
		"notes": map[string]interface{}{
			"providerId": providerIDOrDefault(providerID),
			"paymentId":  paymentID,
		},
	}

	order, err := s.createGatewayOrder(paymentID, data)
	if err != nil {
		return nil, err
	}

	orderID, _ := order["id"].(string)
	s.repo.Put(models.PaymentRecord{
		ID:         paymentID,
		OrderID:    orderID,
		Amount:     amount,
		Currency:   currency,
		ProviderID: providerID,
		Status:     models.PaymentStatusCreated,
		CreatedAt:  time.Now(),
	})

	return &CreateOrderResult{PaymentID: paymentID, Order: order}, nil
}

// createGatewayOrder runs the SDK call in its own goroutine so a hung
// upstream cannot pin the request past the timeout. The wait is
// detached from the request context on purpose: a client disconnect
// must not abort an in-flight gateway call. When the timeout wins, the
// call keeps running; a late success is logged and discarded since no
// record was written for it.
func (s *Service) createGatewayOrder(paymentID string, data map[string]interface{}) (map[string]interface{}, error) {
	ctx, cancel := context.WithTimeout(context.Background(), gatewayTimeout)
	defer cancel()

	type result struct {
		order map[string]interface{}
		err   error
	}
	done := make(chan result, 1)
	go func() {
		order, err := s.gateway.CreateOrder(data)
		done <- result{order: order, err: err}
	}()

	select {
	case res := <-done:
		if res.err != nil {
			return nil, &UpstreamError{Err: res.err}
		}
		return res.order, nil
	case <-ctx.Done():
		go func() {
			if res := <-done; res.err == nil {
				log.Warnf("gateway order for %s completed after timeout, discarding", paymentID)
			}
		}()
		return nil, &UpstreamError{Err: ctx.Err()}
	}
}

// VerifyPayment validates an inbound payment confirmation. The
// signature check gates every state transition: a record reaches paid
// only through a confirmation the verifier accepted. Re-delivery of an
// already-verified confirmation is a no-op returning the final state,
// since gateways retry webhook delivery.
func (s *Service) VerifyPayment(gatewayOrderID, gatewayPaymentID, suppliedSignature, internalID string) (*models.PaymentRecord, error) {
	if !VerifySignature(gatewayOrderID, gatewayPaymentID, s.secret, suppliedSignature) {
		log.Warnf("signature mismatch for payment %s (gateway order %s); treating as tampered confirmation", internalID, gatewayOrderID)
		return nil, ErrSignatureMismatch
	}

	record, ok := s.repo.Get(internalID)
	if !ok {
		return nil, ErrRecordNotFound
	}

	if record.IsPaid() {
		return &record, nil
	}

	now := time.Now()
	record.Status = models.PaymentStatusPaid
	record.GatewayPaymentID = gatewayPaymentID
	record.UpdatedAt = &now
	s.repo.Put(record)

	return &record, nil
}

// ListPayments returns every stored payment record.
func (s *Service) ListPayments() []models.PaymentRecord {
	return s.repo.ListAll()
}

func providerIDOrDefault(providerID string) string {
	if providerID == "" {
		return "default"
	}
	return providerID
}

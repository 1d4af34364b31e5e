package payments

import (
	razorpay "github.com/razorpay/razorpay-go"

	"github.com/latehar-tourism/backend/internal/pkg/env"
)

// GatewayClient creates orders on the external payment gateway. The
// concrete implementation wraps the official Razorpay SDK; tests
// inject a fake.
type GatewayClient interface {
	CreateOrder(data map[string]interface{}) (map[string]interface{}, error)
}

type razorpayClient struct {
	client *razorpay.Client
}

// NewRazorpayClientFromEnv builds a gateway client from
// RAZORPAY_KEY_ID / RAZORPAY_KEY_SECRET.
func NewRazorpayClientFromEnv() GatewayClient {
	return &razorpayClient{
		client: razorpay.NewClient(
			env.GetEnv("RAZORPAY_KEY_ID", ""),
			env.GetEnv("RAZORPAY_KEY_SECRET", ""),
		),
	}
}

func (c *razorpayClient) CreateOrder(data map[string]interface{}) (map[string]interface{}, error) {
	return c.client.Order.Create(data, nil)
}

package payments

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidAmount rejects order creation without a positive amount.
	ErrInvalidAmount = errors.New("amount must be a positive number")
	// ErrSignatureMismatch means the confirmation failed verification
	// and must be treated as untrusted.
	ErrSignatureMismatch = errors.New("invalid signature")
	// ErrRecordNotFound means the internal payment id resolved to no
	// stored record.
	ErrRecordNotFound = errors.New("payment record not found")
)

// UpstreamError wraps a failure from the payment gateway so handlers
// can map it to a 500 distinct from caller mistakes.
type UpstreamError struct {
	Err error
}

func (e *UpstreamError) Error() string {
	return fmt.Sprintf("payment gateway error: %v", e.Err)
}

func (e *UpstreamError) Unwrap() error { return e.Err }

package repository

import "github.com/latehar-tourism/backend/app/models"

// PaymentRepository defines the storage boundary for payment records.
// The default implementation keeps records for the process lifetime
// only; swapping in a durable backend must not touch the service
// layer. Records are passed by value so callers never share mutable
// state with the store.
type PaymentRepository interface {
	// Put inserts or overwrites the record under its ID.
	Put(record models.PaymentRecord)
	// Get returns the record for id, or ok=false when absent.
	Get(id string) (models.PaymentRecord, bool)
	// ListAll returns every stored record. The current implementation
	// yields insertion order, but ordering is not part of the contract.
	ListAll() []models.PaymentRecord
}

// BookingRepository stores booking form submissions.
type BookingRepository interface {
	// Add assigns the next id, stores the booking and returns the id.
	Add(booking models.Booking) int
	ListAll() []models.Booking
}

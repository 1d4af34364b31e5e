package repository

// Factory wires the concrete repositories. Handlers receive them
// through constructor injection at router setup instead of reaching
// for package-level shared state.
type Factory struct {
	payments PaymentRepository
	bookings BookingRepository
}

// NewFactory creates a factory backed by the in-memory stores.
func NewFactory() *Factory {
	return &Factory{
		payments: NewMemoryPaymentRepository(),
		bookings: NewMemoryBookingRepository(),
	}
}

// GetPaymentRepository returns the payment repository instance.
func (f *Factory) GetPaymentRepository() PaymentRepository {
	return f.payments
}

// GetBookingRepository returns the booking repository instance.
func (f *Factory) GetBookingRepository() BookingRepository {
	return f.bookings
}

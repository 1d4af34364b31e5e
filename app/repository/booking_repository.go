package repository

import (
	"sync"

	"github.com/latehar-tourism/backend/app/models"
)

type memoryBookingRepository struct {
	mu       sync.RWMutex
	bookings []models.Booking
}

// NewMemoryBookingRepository creates an empty in-memory booking store.
func NewMemoryBookingRepository() BookingRepository {
	return &memoryBookingRepository{}
}

func (r *memoryBookingRepository) Add(booking models.Booking) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	booking.ID = len(r.bookings) + 1
	r.bookings = append(r.bookings, booking)
	return booking.ID
}

func (r *memoryBookingRepository) ListAll() []models.Booking {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]models.Booking, len(r.bookings))
	copy(out, r.bookings)
	return out
}

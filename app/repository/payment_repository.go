package repository

import (
	"sync"

	"github.com/latehar-tourism/backend/app/models"
)

// memoryPaymentRepository is a process-lifetime in-memory store. All
// mutations take the write lock, so concurrent create/verify requests
// cannot lose updates. A restart loses all records; that is an
// accepted limitation of this deployment, not a bug.
type memoryPaymentRepository struct {
	mu      sync.RWMutex
	records map[string]models.PaymentRecord
	order   []string
}

// NewMemoryPaymentRepository creates an empty in-memory payment store.
func NewMemoryPaymentRepository() PaymentRepository {
	return &memoryPaymentRepository{
		records: make(map[string]models.PaymentRecord),
	}
}

func (r *memoryPaymentRepository) Put(record models.PaymentRecord) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, exists := r.records[record.ID]; !exists {
		r.order = append(r.order, record.ID)
	}
	r.records[record.ID] = record
}

func (r *memoryPaymentRepository) Get(id string) (models.PaymentRecord, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	record, ok := r.records[id]
	return record, ok
}

func (r *memoryPaymentRepository) ListAll() []models.PaymentRecord {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]models.PaymentRecord, 0, len(r.order))
	for _, id := range r.order {
		out = append(out, r.records[id])
	}
	return out
}

package repository

import (
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/latehar-tourism/backend/app/models"
)

func TestPaymentRepository_PutGet(t *testing.T) {
	repo := NewMemoryPaymentRepository()

	_, ok := repo.Get("pay_missing")
	assert.False(t, ok)

	record := models.PaymentRecord{
		ID:        "pay_1",
		OrderID:   "order_1",
		Amount:    250,
		Currency:  "INR",
		Status:    models.PaymentStatusCreated,
		CreatedAt: time.Now(),
	}
	repo.Put(record)

	got, ok := repo.Get("pay_1")
	require.True(t, ok)
	assert.Equal(t, record, got)

	// Overwrite under the same id replaces, not appends.
	record.Status = models.PaymentStatusPaid
	repo.Put(record)
	got, ok = repo.Get("pay_1")
	require.True(t, ok)
	assert.Equal(t, models.PaymentStatusPaid, got.Status)
	assert.Len(t, repo.ListAll(), 1)
}

func TestPaymentRepository_ListAllInsertionOrder(t *testing.T) {
	repo := NewMemoryPaymentRepository()
	for i := 0; i < 5; i++ {
		repo.Put(models.PaymentRecord{ID: fmt.Sprintf("pay_%d", i), Status: models.PaymentStatusCreated})
	}

	all := repo.ListAll()
	require.Len(t, all, 5)
	for i, record := range all {
		assert.Equal(t, fmt.Sprintf("pay_%d", i), record.ID)
	}
}

func TestPaymentRepository_ConcurrentPuts(t *testing.T) {
	repo := NewMemoryPaymentRepository()

	var wg sync.WaitGroup
	for i := 0; i < 100; i++ {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()
			repo.Put(models.PaymentRecord{ID: fmt.Sprintf("pay_%d", n), Status: models.PaymentStatusCreated})
		}(i)
	}
	wg.Wait()

	assert.Len(t, repo.ListAll(), 100)
}

func TestBookingRepository(t *testing.T) {
	repo := NewMemoryBookingRepository()

	first := repo.Add(models.Booking{Name: "Asha", Contact: "9876543210"})
	second := repo.Add(models.Booking{Name: "Ravi", Contact: "ravi@example.com"})
	assert.Equal(t, 1, first)
	assert.Equal(t, 2, second)

	all := repo.ListAll()
	require.Len(t, all, 2)
	assert.Equal(t, "Asha", all[0].Name)
	assert.Equal(t, 2, all[1].ID)
}

package notify

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/gofiber/fiber/v2/log"
	"github.com/google/uuid"

	"github.com/latehar-tourism/backend/internal/pkg/env"
	"github.com/latehar-tourism/backend/internal/pkg/whatsapp"
)

const (
	defaultWorkers = 2
	queueCapacity  = 64
	sendTimeout    = 30 * time.Second
)

// Sender is the outbound messaging boundary; the WhatsApp client
// satisfies it and tests inject a fake.
type Sender interface {
	Configured() bool
	SendText(ctx context.Context, to, body string) error
	SendTemplate(ctx context.Context, to, name, language string, components []interface{}) error
}

type job struct {
	id      string
	payload BookingAckPayload
}

// Queue runs fire-and-forget booking acknowledgements on background
// workers. A full buffer or a failed send is logged and never surfaces
// to the request that enqueued the job.
type Queue struct {
	sender  Sender
	workers int
	jobs    chan job
	stopCh  chan struct{}
	wg      sync.WaitGroup
	mu      sync.Mutex
	running bool
}

// NewQueue creates a notification queue; it does nothing until Start.
func NewQueue(sender Sender) *Queue {
	return &Queue{
		sender:  sender,
		workers: defaultWorkers,
		jobs:    make(chan job, queueCapacity),
		stopCh:  make(chan struct{}),
	}
}

// Start starts the worker goroutines.
func (q *Queue) Start() {
	q.mu.Lock()
	defer q.mu.Unlock()

	if q.running {
		return
	}
	q.running = true
	log.Infof("[Notify] Starting %d workers", q.workers)

	for i := 0; i < q.workers; i++ {
		q.wg.Add(1)
		go q.worker()
	}
}

// Stop stops the workers and waits for in-flight jobs to finish.
func (q *Queue) Stop() {
	q.mu.Lock()
	defer q.mu.Unlock()

	if !q.running {
		return
	}
	close(q.stopCh)
	q.running = false
	q.wg.Wait()
	log.Info("[Notify] All workers stopped")
}

// EnqueueBookingAck schedules an acknowledgement without blocking the
// caller. When the buffer is full the job is dropped with a log line.
func (q *Queue) EnqueueBookingAck(payload BookingAckPayload) {
	j := job{id: uuid.NewString(), payload: payload}
	select {
	case q.jobs <- j:
	default:
		log.Warnf("[Notify] queue full, dropping ack %s for booking %d", j.id, payload.BookingID)
	}
}

func (q *Queue) worker() {
	defer q.wg.Done()
	for {
		select {
		case <-q.stopCh:
			return
		case j := <-q.jobs:
			q.process(j)
		}
	}
}

func (q *Queue) process(j job) {
	p := j.payload

	to := whatsapp.NormalizePhone(p.Contact)
	if to == "" {
		log.Infof("[Notify] booking %d contact does not look like a phone number, skipping ack", p.BookingID)
		return
	}
	if !q.sender.Configured() {
		log.Infof("[Notify] whatsapp not configured, skipping ack for booking %d", p.BookingID)
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), sendTimeout)
	defer cancel()

	if err := q.sender.SendText(ctx, to, ackMessage(p)); err != nil {
		log.Warnf("[Notify] text ack for booking %d failed: %v", p.BookingID, err)

		// Business-initiated messages often require a pre-approved
		// template, so fall back to one when configured.
		templateName := env.GetEnv("WHATSAPP_TEMPLATE_NAME", "")
		if templateName == "" {
			log.Info("[Notify] no WHATSAPP_TEMPLATE_NAME configured, skipping template fallback")
			return
		}
		language := env.GetEnv("WHATSAPP_TEMPLATE_LANGUAGE", "en_US")
		if err := q.sender.SendTemplate(ctx, to, templateName, language, nil); err != nil {
			log.Errorf("[Notify] template ack for booking %d failed: %v", p.BookingID, err)
		}
		return
	}
	log.Infof("[Notify] ack %s delivered to %s", j.id, to)
}

func ackMessage(p BookingAckPayload) string {
	checkin := p.Checkin
	if checkin == "" {
		checkin = "N/A"
	}
	checkout := p.Checkout
	if checkout == "" {
		checkout = "N/A"
	}
	return fmt.Sprintf("🌿 Hi %s, thanks for your booking request! We received your request for %s - %s. Our team will contact you shortly.", p.Name, checkin, checkout)
}

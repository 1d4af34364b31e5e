package notify

// BookingAckPayload carries everything the acknowledgement message
// needs; the job never reads back from the booking store.
type BookingAckPayload struct {
	BookingID int    `json:"booking_id"`
	Name      string `json:"name"`
	Contact   string `json:"contact"`
	Checkin   string `json:"checkin,omitempty"`
	Checkout  string `json:"checkout,omitempty"`
}

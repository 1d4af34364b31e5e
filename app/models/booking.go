package models

import (
	"time"

	"github.com/go-playground/validator/v10"
)

// Booking is one accommodation request submitted through the booking
// form. Contact is free-form; it may or may not be a phone number.
type Booking struct {
	ID        int       `json:"id"`
	Name      string    `json:"name"`
	Contact   string    `json:"contact"`
	Checkin   string    `json:"checkin,omitempty"`
	Checkout  string    `json:"checkout,omitempty"`
	Guests    int       `json:"guests,omitempty"`
	Notes     string    `json:"notes,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
}

// BookingRequest is the inbound form payload.
type BookingRequest struct {
	Name     string `json:"name" validate:"required"`
	Contact  string `json:"contact" validate:"required"`
	Checkin  string `json:"checkin"`
	Checkout string `json:"checkout"`
	Guests   int    `json:"guests" validate:"omitempty,min=1"`
	Notes    string `json:"notes"`
}

func (br *BookingRequest) Validate() error {
	v := validator.New()
	return v.Struct(br)
}

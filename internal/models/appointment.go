package models

import "time"

type Appointment struct {
	ID string `json:"id"`

	UserID    string `json:"user_id"`
	BarberID  string `json:"barber_id"`
	ServiceID string `json:"service_id"`

	// Date is "2006-01-02", Time is "15:04" on a 30-minute grid.
	Date string `json:"date"`
	Time string `json:"time"`

	Status string `json:"status"`

	CancelledAt *time.Time `json:"cancelled_at,omitempty"`
	CompletedAt *time.Time `json:"completed_at,omitempty"`

	CreatedAt time.Time `json:"created_at"`
}

package models

import "time"

type User struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Phone string `json:"phone,omitempty"`

	IsAdmin           bool   `json:"is_admin"`
	PreferredBarberID string `json:"preferred_barber_id,omitempty"`

	// Stored at registration; login resolves the identity by email only.
	PasswordHash string `json:"-"`

	CreatedAt time.Time `json:"created_at"`
}

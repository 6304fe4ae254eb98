package appointment

import (
	"time"

	"github.com/studio316/booking-api/internal/httperr"
	"github.com/studio316/booking-api/internal/models"
)

// ===============================
// Appointment Status
// ===============================

type Status string

const (
	StatusPending   Status = "pending"
	StatusConfirmed Status = "confirmed"
	StatusCompleted Status = "completed"
	StatusCancelled Status = "cancelled"
)

// IsActive reports whether a status still occupies its slot. Everything
// short of cancellation keeps the slot taken.
func IsActive(status string) bool {
	return status != string(StatusCancelled)
}

// ===============================
// Domain Actions
// ===============================

// Cancel mutates the record to cancelled. Cancelling an already cancelled
// appointment is a no-op success: the record is never removed, so a repeat
// cancel must not look like a missing appointment.
func Cancel(ap *models.Appointment, now time.Time) error {
	if ap.Status == string(StatusCancelled) {
		return nil
	}

	ap.Status = string(StatusCancelled)
	ap.CancelledAt = &now
	return nil
}

func Complete(ap *models.Appointment, now time.Time) error {
	if err := CanComplete(Status(ap.Status)); err != nil {
		return err
	}

	ap.Status = string(StatusCompleted)
	ap.CompletedAt = &now
	return nil
}

// CanComplete allows completion only from a live booking state.
func CanComplete(current Status) error {
	if current != StatusPending && current != StatusConfirmed {
		return httperr.ErrBusiness("invalid_state")
	}
	return nil
}

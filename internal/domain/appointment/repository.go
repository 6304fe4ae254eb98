package appointment

import (
	"context"

	"github.com/studio316/booking-api/internal/models"
)

type Repository interface {
	// -------- Reference data --------
	GetUser(
		ctx context.Context,
		id string,
	) (*models.User, error)

	GetBarber(
		ctx context.Context,
		id string,
	) (*models.Barber, error)

	GetService(
		ctx context.Context,
		id string,
	) (*models.Service, error)

	// -------- Ledger (create / conflict) --------

	// CreateAppointmentIfFree appends the record only when no live
	// appointment holds the same (barber, date, time); the check and the
	// append are one atomic step.
	CreateAppointmentIfFree(
		ctx context.Context,
		ap *models.Appointment,
	) error

	// -------- Ledger (state change) --------
	GetAppointment(
		ctx context.Context,
		id string,
	) (*models.Appointment, error)

	UpdateAppointment(
		ctx context.Context,
		ap *models.Appointment,
	) error

	// -------- Ledger (queries) --------

	// ListForBarberDate returns the live (non-cancelled) appointments of
	// one barber on one date.
	ListForBarberDate(
		ctx context.Context,
		barberID string,
		date string,
	) ([]models.Appointment, error)

	ListForUser(
		ctx context.Context,
		userID string,
	) ([]models.Appointment, error)

	// ListForDate returns every appointment on a date; an empty date
	// returns the whole ledger.
	ListForDate(
		ctx context.Context,
		date string,
	) ([]models.Appointment, error)
}

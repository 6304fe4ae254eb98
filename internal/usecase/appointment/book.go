package appointment

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/studio316/booking-api/internal/audit"
	domain "github.com/studio316/booking-api/internal/domain/appointment"
	"github.com/studio316/booking-api/internal/httperr"
	"github.com/studio316/booking-api/internal/models"
	"github.com/studio316/booking-api/internal/reconcile"
)

// ======================================================
// INPUT
// ======================================================

type BookAppointmentInput struct {
	UserID    string
	BarberID  string
	ServiceID string

	Date string
	Time string
}

// ======================================================
// USE CASE
// ======================================================

type BookAppointment struct {
	repo       domain.Repository
	source     domain.Source
	window     domain.Window
	audit      *audit.Dispatcher
	reconciler *reconcile.Dispatcher
	clock      func() time.Time
}

func NewBookAppointment(
	repo domain.Repository,
	source domain.Source,
	window domain.Window,
	auditd *audit.Dispatcher,
	reconciler *reconcile.Dispatcher,
	clock func() time.Time,
) *BookAppointment {
	return &BookAppointment{
		repo:       repo,
		source:     source,
		window:     window,
		audit:      auditd,
		reconciler: reconciler,
		clock:      clock,
	}
}

// ======================================================
// EXECUTE
// ======================================================

func (uc *BookAppointment) Execute(
	ctx context.Context,
	in BookAppointmentInput,
) (*models.Appointment, error) {

	if in.UserID == "" {
		return nil, httperr.ErrBusiness("unauthenticated")
	}

	if _, err := time.Parse("2006-01-02", in.Date); err != nil {
		return nil, httperr.ErrBusiness("invalid_date_or_time")
	}
	if _, err := time.Parse("15:04", in.Time); err != nil {
		return nil, httperr.ErrBusiness("invalid_date_or_time")
	}

	if _, err := uc.repo.GetBarber(ctx, in.BarberID); err != nil {
		return nil, err
	}
	if _, err := uc.repo.GetService(ctx, in.ServiceID); err != nil {
		return nil, err
	}

	// The requested time has to be a slot the shop actually offers and
	// be open in the current derivation.
	if !uc.window.Contains(in.Time) {
		return nil, httperr.ErrBusiness("slot_unavailable")
	}
	if !uc.source.Available(in.BarberID, in.Date, in.Time) {
		return nil, httperr.ErrBusiness("slot_unavailable")
	}

	ap := &models.Appointment{
		ID:        uuid.NewString(),
		UserID:    in.UserID,
		BarberID:  in.BarberID,
		ServiceID: in.ServiceID,
		Date:      in.Date,
		Time:      in.Time,
		Status:    string(domain.StatusConfirmed),
		CreatedAt: uc.clock(),
	}

	// Conflict check and append are one atomic step in the ledger.
	if err := uc.repo.CreateAppointmentIfFree(ctx, ap); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		UserID:   &in.UserID,
		Action:   "appointment_booked",
		Entity:   "appointment",
		EntityID: &ap.ID,
	})

	uc.reconciler.Trigger()

	return ap, nil
}

package appointment

import (
	"context"
	"time"

	"github.com/studio316/booking-api/internal/audit"
	domain "github.com/studio316/booking-api/internal/domain/appointment"
	"github.com/studio316/booking-api/internal/httperr"
	"github.com/studio316/booking-api/internal/models"
	"github.com/studio316/booking-api/internal/reconcile"
)

type CancelAppointment struct {
	repo       domain.Repository
	audit      *audit.Dispatcher
	reconciler *reconcile.Dispatcher
	clock      func() time.Time
}

func NewCancelAppointment(
	repo domain.Repository,
	auditd *audit.Dispatcher,
	reconciler *reconcile.Dispatcher,
	clock func() time.Time,
) *CancelAppointment {
	return &CancelAppointment{
		repo:       repo,
		audit:      auditd,
		reconciler: reconciler,
		clock:      clock,
	}
}

func (uc *CancelAppointment) Execute(
	ctx context.Context,
	appointmentID string,
	actingUserID string,
) (*models.Appointment, error) {

	if actingUserID == "" {
		return nil, httperr.ErrBusiness("unauthenticated")
	}

	actor, err := uc.repo.GetUser(ctx, actingUserID)
	if err != nil {
		return nil, httperr.ErrBusiness("unauthenticated")
	}

	ap, err := uc.repo.GetAppointment(ctx, appointmentID)
	if err != nil {
		return nil, err
	}

	// Only the owner or an admin may cancel.
	if ap.UserID != actor.ID && !actor.IsAdmin {
		return nil, httperr.ErrBusiness("forbidden")
	}

	if err := domain.Cancel(ap, uc.clock()); err != nil {
		return nil, err
	}

	if err := uc.repo.UpdateAppointment(ctx, ap); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		UserID:   &actingUserID,
		Action:   "appointment_cancelled",
		Entity:   "appointment",
		EntityID: &ap.ID,
	})

	uc.reconciler.Trigger()

	return ap, nil
}

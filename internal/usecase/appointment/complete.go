package appointment

import (
	"context"
	"time"

	"github.com/studio316/booking-api/internal/audit"
	domain "github.com/studio316/booking-api/internal/domain/appointment"
	"github.com/studio316/booking-api/internal/models"
	"github.com/studio316/booking-api/internal/reconcile"
)

type CompleteAppointment struct {
	repo       domain.Repository
	audit      *audit.Dispatcher
	reconciler *reconcile.Dispatcher
	clock      func() time.Time
}

func NewCompleteAppointment(
	repo domain.Repository,
	auditd *audit.Dispatcher,
	reconciler *reconcile.Dispatcher,
	clock func() time.Time,
) *CompleteAppointment {
	return &CompleteAppointment{
		repo:       repo,
		audit:      auditd,
		reconciler: reconciler,
		clock:      clock,
	}
}

func (uc *CompleteAppointment) Execute(
	ctx context.Context,
	appointmentID string,
	actingUserID string,
) (*models.Appointment, error) {

	ap, err := uc.repo.GetAppointment(ctx, appointmentID)
	if err != nil {
		return nil, err
	}

	if err := domain.Complete(ap, uc.clock()); err != nil {
		return nil, err
	}

	if err := uc.repo.UpdateAppointment(ctx, ap); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		UserID:   &actingUserID,
		Action:   "appointment_completed",
		Entity:   "appointment",
		EntityID: &ap.ID,
	})

	uc.reconciler.Trigger()

	return ap, nil
}

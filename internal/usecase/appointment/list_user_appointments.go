package appointment

import (
	"context"

	domain "github.com/studio316/booking-api/internal/domain/appointment"
	"github.com/studio316/booking-api/internal/httperr"
	"github.com/studio316/booking-api/internal/models"
)

type ListUserAppointments struct {
	repo domain.Repository
}

func NewListUserAppointments(
	repo domain.Repository,
) *ListUserAppointments {
	return &ListUserAppointments{
		repo: repo,
	}
}

func (uc *ListUserAppointments) Execute(
	ctx context.Context,
	userID string,
) ([]models.Appointment, error) {

	if userID == "" {
		return nil, httperr.ErrBusiness("unauthenticated")
	}

	return uc.repo.ListForUser(ctx, userID)
}

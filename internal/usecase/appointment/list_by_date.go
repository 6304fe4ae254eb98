package appointment

import (
	"context"
	"time"

	domain "github.com/studio316/booking-api/internal/domain/appointment"
	"github.com/studio316/booking-api/internal/dto"
	"github.com/studio316/booking-api/internal/httperr"
)

type ListAppointmentsByDate struct {
	repo domain.Repository
}

func NewListAppointmentsByDate(
	repo domain.Repository,
) *ListAppointmentsByDate {
	return &ListAppointmentsByDate{
		repo: repo,
	}
}

// Execute returns the ledger for one date, or the whole ledger when date is
// empty, with names resolved for display.
func (uc *ListAppointmentsByDate) Execute(
	ctx context.Context,
	date string,
) ([]dto.AppointmentListDTO, error) {

	if date != "" {
		if _, err := time.Parse("2006-01-02", date); err != nil {
			return nil, httperr.ErrBusiness("invalid_date_or_time")
		}
	}

	appointments, err := uc.repo.ListForDate(ctx, date)
	if err != nil {
		return nil, err
	}

	userNames := map[string]string{}
	barberNames := map[string]string{}
	serviceNames := map[string]string{}

	out := make([]dto.AppointmentListDTO, 0, len(appointments))
	for _, ap := range appointments {
		if _, ok := userNames[ap.UserID]; !ok {
			if u, err := uc.repo.GetUser(ctx, ap.UserID); err == nil {
				userNames[ap.UserID] = u.Name
			}
		}
		if _, ok := barberNames[ap.BarberID]; !ok {
			if b, err := uc.repo.GetBarber(ctx, ap.BarberID); err == nil {
				barberNames[ap.BarberID] = b.Name
			}
		}
		if _, ok := serviceNames[ap.ServiceID]; !ok {
			if sv, err := uc.repo.GetService(ctx, ap.ServiceID); err == nil {
				serviceNames[ap.ServiceID] = sv.Name
			}
		}

		out = append(out, dto.AppointmentListDTO{
			ID:          ap.ID,
			Date:        ap.Date,
			Time:        ap.Time,
			Status:      ap.Status,
			UserName:    userNames[ap.UserID],
			BarberName:  barberNames[ap.BarberID],
			ServiceName: serviceNames[ap.ServiceID],
			CreatedAt:   ap.CreatedAt,
		})
	}

	return out, nil
}

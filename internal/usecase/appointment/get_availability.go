package appointment

import (
	"context"
	"time"

	domain "github.com/studio316/booking-api/internal/domain/appointment"
	"github.com/studio316/booking-api/internal/httperr"
)

type GetAvailability struct {
	repo   domain.Repository
	source domain.Source
	window domain.Window
}

func NewGetAvailability(
	repo domain.Repository,
	source domain.Source,
	window domain.Window,
) *GetAvailability {
	return &GetAvailability{
		repo:   repo,
		source: source,
		window: window,
	}
}

func (uc *GetAvailability) Execute(
	ctx context.Context,
	barberID string,
	date string,
) ([]domain.TimeSlot, error) {

	if _, err := uc.repo.GetBarber(ctx, barberID); err != nil {
		return nil, err
	}

	if _, err := time.Parse("2006-01-02", date); err != nil {
		return nil, httperr.ErrBusiness("invalid_date_or_time")
	}

	live, err := uc.repo.ListForBarberDate(ctx, barberID, date)
	if err != nil {
		return nil, err
	}

	booked := make(map[string]bool, len(live))
	for _, ap := range live {
		booked[ap.Time] = true
	}

	return domain.DeriveSlots(uc.window, uc.source, barberID, date, booked), nil
}

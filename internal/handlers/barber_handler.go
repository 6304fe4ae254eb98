package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/studio316/booking-api/internal/httperr"
	"github.com/studio316/booking-api/internal/httpresp"
	"github.com/studio316/booking-api/internal/store"
	ucAppointment "github.com/studio316/booking-api/internal/usecase/appointment"
)

// ======================================================
// HANDLER
// ======================================================

type BarberHandler struct {
	store        *store.Store
	availability *ucAppointment.GetAvailability
}

func NewBarberHandler(st *store.Store, availability *ucAppointment.GetAvailability) *BarberHandler {
	return &BarberHandler{
		store:        st,
		availability: availability,
	}
}

// ======================================================
// SHOP FLOOR
// ======================================================

// List returns every barber with their live status and floor position.
func (h *BarberHandler) List(c *gin.Context) {
	barbers, err := h.store.ListBarbers(c.Request.Context())
	if err != nil {
		httperr.Internal(c, "failed_to_list_barbers", "Could not load barbers.")
		return
	}

	httpresp.List(c, barbers)
}

func (h *BarberHandler) Get(c *gin.Context) {
	barber, err := h.store.GetBarber(c.Request.Context(), c.Param("id"))
	if err != nil {
		httperr.NotFound(c, "not_found", "Barber not found.")
		return
	}

	httpresp.OK(c, barber)
}

// ======================================================
// AVAILABILITY
// ======================================================

func (h *BarberHandler) Slots(c *gin.Context) {
	date := c.Query("date")
	if date == "" {
		httperr.BadRequest(c, "missing_date", "A date is required.")
		return
	}

	slots, err := h.availability.Execute(c.Request.Context(), c.Param("id"), date)
	if err != nil {
		httperr.Business(c, err)
		return
	}

	httpresp.List(c, slots)
}

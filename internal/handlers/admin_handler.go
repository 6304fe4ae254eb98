package handlers

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/studio316/booking-api/internal/audit"
	barberdomain "github.com/studio316/booking-api/internal/domain/barber"
	"github.com/studio316/booking-api/internal/httperr"
	"github.com/studio316/booking-api/internal/httpresp"
	"github.com/studio316/booking-api/internal/middleware"
	"github.com/studio316/booking-api/internal/store"
	ucAppointment "github.com/studio316/booking-api/internal/usecase/appointment"
)

// ======================================================
// HANDLER
// ======================================================

type AdminHandler struct {
	store      *store.Store
	listByDate *ucAppointment.ListAppointmentsByDate
	complete   *ucAppointment.CompleteAppointment
	audit      *audit.Dispatcher
	clock      func() time.Time
}

func NewAdminHandler(
	st *store.Store,
	listByDate *ucAppointment.ListAppointmentsByDate,
	complete *ucAppointment.CompleteAppointment,
	auditd *audit.Dispatcher,
	clock func() time.Time,
) *AdminHandler {
	return &AdminHandler{
		store:      st,
		listByDate: listByDate,
		complete:   complete,
		audit:      auditd,
		clock:      clock,
	}
}

// ======================================================
// REQUESTS
// ======================================================

type UpdateBarberStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

// ======================================================
// BARBER STATUS (manual override)
// ======================================================

func (h *AdminHandler) UpdateBarberStatus(c *gin.Context) {
	adminID := c.GetString(middleware.ContextUserID)
	barberID := c.Param("id")

	var req UpdateBarberStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", err.Error())
		return
	}

	status, err := barberdomain.Parse(req.Status)
	if err != nil {
		httperr.Business(c, err)
		return
	}

	barber, err := h.store.SetBarberStatus(c.Request.Context(), barberID, status)
	if err != nil {
		httperr.Business(c, err)
		return
	}

	h.audit.Dispatch(audit.Event{
		UserID:   &adminID,
		Action:   "barber_status_changed",
		Entity:   "barber",
		EntityID: &barberID,
		Metadata: gin.H{"status": req.Status},
	})

	httpresp.OK(c, barber)
}

// ======================================================
// LEDGER VIEW
// ======================================================

func (h *AdminHandler) ListAppointments(c *gin.Context) {
	appointments, err := h.listByDate.Execute(c.Request.Context(), c.Query("date"))
	if err != nil {
		httperr.Business(c, err)
		return
	}

	httpresp.List(c, appointments)
}

func (h *AdminHandler) CompleteAppointment(c *gin.Context) {
	adminID := c.GetString(middleware.ContextUserID)

	ap, err := h.complete.Execute(c.Request.Context(), c.Param("id"), adminID)
	if err != nil {
		httperr.Business(c, err)
		return
	}

	httpresp.OK(c, ap)
}

// ======================================================
// OVERVIEW
// ======================================================

func (h *AdminHandler) Stats(c *gin.Context) {
	today := h.clock().Format("2006-01-02")

	stats, err := h.store.ComputeStats(c.Request.Context(), today)
	if err != nil {
		httperr.Internal(c, "failed_to_compute_stats", "Could not compute stats.")
		return
	}

	httpresp.OK(c, stats)
}

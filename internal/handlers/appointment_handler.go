package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/studio316/booking-api/internal/httperr"
	"github.com/studio316/booking-api/internal/httpresp"
	"github.com/studio316/booking-api/internal/metrics"
	"github.com/studio316/booking-api/internal/middleware"
	ucAppointment "github.com/studio316/booking-api/internal/usecase/appointment"
)

// ======================================================
// HANDLER
// ======================================================

type AppointmentHandler struct {
	book     *ucAppointment.BookAppointment
	cancel   *ucAppointment.CancelAppointment
	listMine *ucAppointment.ListUserAppointments
	metrics  *metrics.Metrics
}

func NewAppointmentHandler(
	book *ucAppointment.BookAppointment,
	cancel *ucAppointment.CancelAppointment,
	listMine *ucAppointment.ListUserAppointments,
	m *metrics.Metrics,
) *AppointmentHandler {
	return &AppointmentHandler{
		book:     book,
		cancel:   cancel,
		listMine: listMine,
		metrics:  m,
	}
}

// ======================================================
// REQUESTS
// ======================================================

type BookAppointmentRequest struct {
	BarberID  string `json:"barber_id" binding:"required"`
	ServiceID string `json:"service_id" binding:"required"`
	Date      string `json:"date" binding:"required"`
	Time      string `json:"time" binding:"required"`
}

// ======================================================
// BOOK
// ======================================================

func (h *AppointmentHandler) Book(c *gin.Context) {
	userID := c.GetString(middleware.ContextUserID)

	var req BookAppointmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", err.Error())
		return
	}

	ap, err := h.book.Execute(c.Request.Context(), ucAppointment.BookAppointmentInput{
		UserID:    userID,
		BarberID:  req.BarberID,
		ServiceID: req.ServiceID,
		Date:      req.Date,
		Time:      req.Time,
	})
	if err != nil {
		httperr.Business(c, err)
		return
	}

	h.metrics.BookingsTotal.Inc()
	httpresp.Created(c, ap)
}

// ======================================================
// CANCEL
// ======================================================

func (h *AppointmentHandler) Cancel(c *gin.Context) {
	userID := c.GetString(middleware.ContextUserID)

	ap, err := h.cancel.Execute(c.Request.Context(), c.Param("id"), userID)
	if err != nil {
		httperr.Business(c, err)
		return
	}

	h.metrics.CancellationsTotal.Inc()
	httpresp.OK(c, ap)
}

// ======================================================
// LIST MINE
// ======================================================

func (h *AppointmentHandler) ListMine(c *gin.Context) {
	userID := c.GetString(middleware.ContextUserID)

	appointments, err := h.listMine.Execute(c.Request.Context(), userID)
	if err != nil {
		httperr.Business(c, err)
		return
	}

	httpresp.List(c, appointments)
}

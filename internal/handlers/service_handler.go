package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/studio316/booking-api/internal/httperr"
	"github.com/studio316/booking-api/internal/httpresp"
	"github.com/studio316/booking-api/internal/store"
)

type ServiceHandler struct {
	store *store.Store
}

func NewServiceHandler(st *store.Store) *ServiceHandler {
	return &ServiceHandler{store: st}
}

func (h *ServiceHandler) List(c *gin.Context) {
	services, err := h.store.ListServices(c.Request.Context())
	if err != nil {
		httperr.Internal(c, "failed_to_list_services", "Could not load services.")
		return
	}

	httpresp.List(c, services)
}

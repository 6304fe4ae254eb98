package handlers

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/studio316/booking-api/internal/httperr"
	"github.com/studio316/booking-api/internal/httpresp"
	"github.com/studio316/booking-api/internal/store"
)

type AuditLogsHandler struct {
	store *store.Store
}

func NewAuditLogsHandler(st *store.Store) *AuditLogsHandler {
	return &AuditLogsHandler{store: st}
}

func (h *AuditLogsHandler) List(c *gin.Context) {
	limit := 50
	if v := c.Query("limit"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n <= 0 || n > 500 {
			httperr.BadRequest(c, "invalid_limit", "Limit must be between 1 and 500.")
			return
		}
		limit = n
	}

	logs, err := h.store.ListAuditLogs(c.Request.Context(), limit)
	if err != nil {
		httperr.Internal(c, "failed_to_list_audit_logs", "Could not load audit logs.")
		return
	}

	httpresp.List(c, logs)
}

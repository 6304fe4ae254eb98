package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/studio316/booking-api/internal/middleware"
	"github.com/studio316/booking-api/internal/session"
	"github.com/studio316/booking-api/internal/store"
)

type MeHandler struct {
	store     *store.Store
	snapshots *session.Snapshots
}

func NewMeHandler(st *store.Store, snapshots *session.Snapshots) *MeHandler {
	return &MeHandler{store: st, snapshots: snapshots}
}

func (h *MeHandler) GetMe(c *gin.Context) {
	userID := c.GetString(middleware.ContextUserID)
	tokenID := c.GetString(middleware.ContextTokenID)

	// Snapshot first, the store as fallback.
	if user, ok, _ := h.snapshots.Load(c.Request.Context(), tokenID); ok {
		c.JSON(http.StatusOK, gin.H{"user": user})
		return
	}

	user, err := h.store.GetUser(c.Request.Context(), userID)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "user_not_found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"user": user})
}

package handlers

import (
	"net/http"

	"bettermann/models"
	"bettermann/services/booking"

	"github.com/gin-gonic/gin"
)

// SessionHandler exposes the session booking endpoint.
type SessionHandler struct {
	Service booking.Service
}

func NewSessionHandler(svc booking.Service) *SessionHandler {
	return &SessionHandler{Service: svc}
}

// CreateSessionHandler handles POST /api/sessions.
func (h *SessionHandler) CreateSessionHandler(c *gin.Context) {
	var in models.SessionInput
	if !bindJSON(c, &in) {
		return
	}
	id, err := h.Service.CreateSession(c.Request.Context(), in)
	if err != nil {
		storeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"id": id})
}

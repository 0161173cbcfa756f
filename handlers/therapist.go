package handlers

import (
	"net/http"

	"bettermann/models"
	"bettermann/services/directory"
	"bettermann/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// TherapistHandler exposes the therapist directory and matching endpoints.
type TherapistHandler struct {
	Service directory.Service
}

func NewTherapistHandler(svc directory.Service) *TherapistHandler {
	return &TherapistHandler{Service: svc}
}

// ListTherapistsHandler handles GET /api/therapists with optional language,
// city and q query parameters.
func (h *TherapistHandler) ListTherapistsHandler(c *gin.Context) {
	items, err := h.Service.List(
		c.Request.Context(),
		c.Query("language"),
		c.Query("city"),
		c.Query("q"),
	)
	if err != nil {
		storeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"items": items})
}

// AddTherapistHandler handles POST /api/therapists.
func (h *TherapistHandler) AddTherapistHandler(c *gin.Context) {
	logger := utils.GetLogger()

	var in models.TherapistInput
	if !bindJSON(c, &in) {
		return
	}

	id, err := h.Service.Add(c.Request.Context(), in)
	if err != nil {
		logger.Error("Failed to add therapist", zap.String("email", in.Email), zap.Error(err))
		storeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"id": id})
}

// MatchHandler handles POST /api/match.
func (h *TherapistHandler) MatchHandler(c *gin.Context) {
	var req models.MatchRequest
	if !bindJSON(c, &req) {
		return
	}

	matches, err := h.Service.Match(c.Request.Context(), req)
	if err != nil {
		storeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"matches": matches})
}

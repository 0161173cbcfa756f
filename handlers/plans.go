package handlers

import (
	"net/http"

	"bettermann/models"

	"github.com/gin-gonic/gin"
)

// fixedPlans is the static plan catalogue. Served regardless of store state.
var fixedPlans = []models.Plan{
	{Name: "Starter", PriceINR: 799, Period: "per week", Features: []string{"Unlimited chat", "1 live session"}},
	{Name: "Standard", PriceINR: 1399, Period: "per week", Features: []string{"Unlimited chat", "2 live sessions", "Priority support"}},
	{Name: "Premium", PriceINR: 2199, Period: "per week", Features: []string{"Unlimited chat", "4 live sessions", "Dedicated care manager"}},
}

// ListPlansHandler handles GET /api/plans.
func ListPlansHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"items": fixedPlans})
}

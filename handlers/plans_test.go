package handlers

import (
	"encoding/json"
	"net/http"
	"testing"

	"bettermann/models"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// The plan catalogue is fixed: exactly three tiers, served even with no
// store configured.
func TestListPlans(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/api/plans", ListPlansHandler)

	rec := doJSON(t, r, http.MethodGet, "/api/plans", "")
	assert.Equal(t, http.StatusOK, rec.Code)

	var resp struct {
		Items []models.Plan `json:"items"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.Len(t, resp.Items, 3)

	assert.Equal(t, "Starter", resp.Items[0].Name)
	assert.Equal(t, 799, resp.Items[0].PriceINR)
	assert.Equal(t, "Standard", resp.Items[1].Name)
	assert.Equal(t, 1399, resp.Items[1].PriceINR)
	assert.Equal(t, "Premium", resp.Items[2].Name)
	assert.Equal(t, 2199, resp.Items[2].PriceINR)
	for _, p := range resp.Items {
		assert.Equal(t, "per week", p.Period)
		assert.NotEmpty(t, p.Features)
	}
}

package handlers

import (
	"encoding/json"
	"net/http"
	"testing"

	"bettermann/database/repository"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRootHandler(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/", RootHandler)

	rec := doJSON(t, r, http.MethodGet, "/", "")
	assert.Equal(t, http.StatusOK, rec.Code)

	var resp map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "BetterMann API running", resp["message"])
}

func TestDiagnosticsWithoutStore(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	h := NewDiagnosticsHandler(repository.NewMongoStore(nil))
	r.GET("/test", h.TestHandler)

	rec := doJSON(t, r, http.MethodGet, "/test", "")
	assert.Equal(t, http.StatusOK, rec.Code)

	var resp map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "✅ Running", resp["backend"])
	assert.Equal(t, "⚠️  Available but not initialized", resp["database"])
	assert.Equal(t, "Not Connected", resp["connection_status"])
	assert.Empty(t, resp["collections"])
}

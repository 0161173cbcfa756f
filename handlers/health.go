package handlers

import (
	"net/http"

	"bettermann/config"
	"bettermann/database/repository"

	"github.com/gin-gonic/gin"
)

// RootHandler handles GET /, the liveness message.
func RootHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"message": "BetterMann API running"})
}

// DiagnosticsHandler exposes GET /test, the store diagnostics endpoint. It is
// the only place store-level errors are caught and rendered (truncated)
// instead of surfacing as store_unavailable.
type DiagnosticsHandler struct {
	Store repository.Store
}

func NewDiagnosticsHandler(store repository.Store) *DiagnosticsHandler {
	return &DiagnosticsHandler{Store: store}
}

func (h *DiagnosticsHandler) TestHandler(c *gin.Context) {
	response := gin.H{
		"backend":           "✅ Running",
		"database":          "❌ Not Available",
		"database_url":      nil,
		"database_name":     nil,
		"connection_status": "Not Connected",
		"collections":       []string{},
	}

	names, err := h.Store.Collections(c.Request.Context())
	switch {
	case err == repository.ErrStoreUnavailable:
		response["database"] = "⚠️  Available but not initialized"
	case err != nil:
		response["database"] = "⚠️  Connected but Error: " + truncate(err.Error(), 50)
		response["database_url"] = setFlag(config.AppConfig.DatabaseURL != "")
		response["database_name"] = setFlag(config.AppConfig.DatabaseName != "")
	default:
		if len(names) > 20 {
			names = names[:20]
		}
		response["database"] = "✅ Connected & Working"
		response["connection_status"] = "Connected"
		response["collections"] = names
		response["database_url"] = setFlag(config.AppConfig.DatabaseURL != "")
		response["database_name"] = setFlag(config.AppConfig.DatabaseName != "")
	}

	c.JSON(http.StatusOK, response)
}

func setFlag(set bool) string {
	if set {
		return "✅ Set"
	}
	return "❌ Not Set"
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n]
}

package handlers

import (
	"net/http"
	"time"

	"returnfilers/pkg/logger"

	"github.com/gin-gonic/gin"
)

// HealthCheck reports liveness and the settings store state.
// It stays 200 while settings are missing because the site renders from defaults.
func (h *HandlerService) HealthCheck(c *gin.Context) {
	health := gin.H{
		"status":    "healthy",
		"service":   ServiceName,
		"version":   Version,
		"timestamp": time.Now().UTC(),
		"uptime":    time.Since(h.startedAt).Round(time.Second).String(),
		"logLevel":  logger.GetLevel().String(),
	}

	if h.store != nil {
		store := gin.H{
			"loading": h.store.IsLoading(),
			"loaded":  h.store.Current() != nil,
		}
		if updated := h.store.UpdatedAt(); !updated.IsZero() {
			store["updatedAt"] = updated.UTC()
		}
		health["settings"] = store
	}

	c.JSON(http.StatusOK, health)
}

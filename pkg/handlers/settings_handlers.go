package handlers

import (
	"net/http"

	"returnfilers/pkg/logger"
	"returnfilers/pkg/response"
	"returnfilers/pkg/settings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// GetSettings serves the persisted document in the envelope HTTPFetcher decodes
func (h *HandlerService) GetSettings(c *gin.Context) {
	if h.settingsRepo == nil {
		HandleError(c, NewAPIError(http.StatusServiceUnavailable, "Settings storage unavailable", ErrServiceUnavailable))
		return
	}

	doc, _, err := h.settingsRepo.Get(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, settings.Envelope{
			Success: settings.Bool(false),
			Message: "Failed to load settings",
		})
		logger.FromContext(c.Request.Context()).Error("Failed to load settings", zap.Error(err))
		return
	}

	c.JSON(http.StatusOK, settings.Envelope{Success: settings.Bool(true), Data: doc})
}

// SaveSettings replaces the document, then refreshes the store so the site
// picks it up. A failed refresh is reported but the save stands.
func (h *HandlerService) SaveSettings(c *gin.Context) {
	if h.settingsRepo == nil {
		HandleError(c, NewAPIError(http.StatusServiceUnavailable, "Settings storage unavailable", ErrServiceUnavailable))
		return
	}

	var doc settings.Settings
	if err := c.ShouldBindJSON(&doc); err != nil {
		HandleError(c, NewBadRequestError("Invalid settings document", err))
		return
	}

	ctx := c.Request.Context()
	if err := h.settingsRepo.Save(ctx, &doc, "admin"); err != nil {
		HandleError(c, NewInternalServerError("Failed to save settings", err))
		return
	}
	logger.FromContext(ctx).Info("Settings saved", zap.String("company", doc.CompanyName))

	message := "Settings saved"
	if err := h.refreshStore(c); err != nil {
		message = "Settings saved; refresh failed, the site keeps the previous settings"
	}
	response.JSON(c, http.StatusOK, &doc, message)
}

// RefreshSettings re-fetches the store on demand
func (h *HandlerService) RefreshSettings(c *gin.Context) {
	if err := h.refreshStore(c); err != nil {
		HandleError(c, NewAPIError(http.StatusBadGateway, "Settings refresh failed", err))
		return
	}
	response.JSON(c, http.StatusOK, gin.H{"updatedAt": h.store.UpdatedAt().UTC()}, "Settings refreshed")
}

func (h *HandlerService) refreshStore(c *gin.Context) error {
	if h.store == nil {
		return settings.ErrNoFetcher
	}
	return h.store.Refresh(c.Request.Context())
}

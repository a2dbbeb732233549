package handlers

import (
	"net/http"

	"returnfilers/internal/models"
	"returnfilers/pkg/content"
	"returnfilers/pkg/logger"
	"returnfilers/pkg/response"
	"returnfilers/pkg/theme"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// testimonialLimit caps the rotation on a page
const testimonialLimit = 6

// siteViewResponse adds the testimonial rotation to the composed view
type siteViewResponse struct {
	content.SiteView
	Testimonials []models.Testimonial `json:"testimonials,omitempty"`
}

// GetSiteView composes branding, navigation and widget visibility for ?path=.
// Missing or failed settings degrade to defaults, never to an error.
func (h *HandlerService) GetSiteView(c *gin.Context) {
	path := c.DefaultQuery("path", "/")

	view := content.Compose(h.currentSettings(), h.defaults, path, h.rules)
	if h.store != nil {
		view.Loading = h.store.IsLoading()
	}

	out := siteViewResponse{SiteView: view}
	if view.Sections.Testimonials && h.testimonials != nil {
		items, err := h.testimonials.ListPublished(c.Request.Context(), testimonialLimit)
		if err != nil {
			logger.FromContext(c.Request.Context()).Warn("Testimonials unavailable", zap.Error(err))
		} else {
			out.Testimonials = items
		}
	}

	response.OK(c, out)
}

// GetColors derives the CSS color set for ?hex=; invalid input yields the fallback
func (h *HandlerService) GetColors(c *gin.Context) {
	hex := c.Query("hex")
	response.OK(c, gin.H{
		"hex":    hex,
		"valid":  theme.IsValidHex(hex),
		"colors": theme.DeriveColors(hex),
	})
}

// GetPalette derives every brand color slot from the current settings
func (h *HandlerService) GetPalette(c *gin.Context) {
	colors := content.ResolveBrandColors(h.currentSettings(), h.defaults.BrandColors)
	response.OK(c, theme.NewPalette(theme.PaletteInput{
		Primary:          colors.Primary,
		Secondary:        colors.Secondary,
		Accent:           colors.Accent,
		FooterBackground: colors.FooterBackground,
		FooterText:       colors.FooterText,
	}))
}

// NotFound answers unknown routes with the JSON envelope
func (h *HandlerService) NotFound(c *gin.Context) {
	response.Error(c, http.StatusNotFound, "Resource not found", nil)
}

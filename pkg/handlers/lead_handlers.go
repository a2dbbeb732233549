package handlers

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"returnfilers/internal/models"
	"returnfilers/pkg/logger"
	"returnfilers/pkg/repository"
	"returnfilers/pkg/response"
	"returnfilers/pkg/visibility"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/datatypes"
)

// leadRequest is the body shared by every public form
type leadRequest struct {
	Name          string                 `json:"name" binding:"max=120"`
	Email         string                 `json:"email" binding:"required,email,max=255"`
	Phone         string                 `json:"phone" binding:"max=32"`
	Service       string                 `json:"service" binding:"max=120"`
	Message       string                 `json:"message" binding:"max=5000"`
	PreferredDate *time.Time             `json:"preferredDate"`
	Details       map[string]interface{} `json:"details"`
	SourcePath    string                 `json:"sourcePath" binding:"max=255"`
}

// check applies the per-kind rules binding tags cannot express
func (r *leadRequest) check(kind models.LeadKind) error {
	if kind != models.LeadKindNewsletter && strings.TrimSpace(r.Name) == "" {
		return fmt.Errorf("%w: name is required", ErrInvalidParam)
	}
	if kind == models.LeadKindBooking && r.PreferredDate == nil {
		return fmt.Errorf("%w: preferredDate is required for bookings", ErrInvalidParam)
	}
	return nil
}

type leadStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

// SubmitLead stores a form submission. Newsletter signups are refused while
// the newsletter feature is off.
func (h *HandlerService) SubmitLead(c *gin.Context) {
	kind, ok := models.ParseLeadKind(c.Param("kind"))
	if !ok {
		HandleError(c, NewNotFoundError("Unknown form", fmt.Errorf("%w: %s", ErrResourceNotFound, c.Param("kind"))))
		return
	}
	if kind == models.LeadKindNewsletter && !h.features().Newsletter {
		HandleError(c, ErrFeatureDisabled)
		return
	}

	var req leadRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		HandleError(c, NewBadRequestError("Invalid form submission", err))
		return
	}
	if err := req.check(kind); err != nil {
		HandleError(c, NewBadRequestError("Invalid form submission", err))
		return
	}

	lead := &models.Lead{
		Kind:          kind,
		Name:          strings.TrimSpace(req.Name),
		Email:         strings.ToLower(strings.TrimSpace(req.Email)),
		Phone:         req.Phone,
		Service:       req.Service,
		Message:       req.Message,
		PreferredDate: req.PreferredDate,
		SourcePath:    visibility.Normalize(req.SourcePath),
	}
	if len(req.Details) > 0 {
		raw, err := json.Marshal(req.Details)
		if err != nil {
			HandleError(c, NewBadRequestError("Invalid form details", err))
			return
		}
		lead.Details = datatypes.JSON(raw)
	}

	if h.leads == nil {
		HandleError(c, ErrServiceUnavailable)
		return
	}
	if err := h.leads.Create(c.Request.Context(), lead); err != nil {
		HandleError(c, NewInternalServerError("Failed to save submission", err))
		return
	}

	logger.FromContext(c.Request.Context()).Info("Lead captured",
		zap.String("lead_id", lead.ID),
		zap.String("kind", string(kind)))

	h.notifyLead(lead)

	response.Created(c, gin.H{"id": lead.ID, "kind": kind})
}

// notifyLead alerts staff in the background so a slow chat API never delays the form
func (h *HandlerService) notifyLead(lead *models.Lead) {
	if h.notifier == nil {
		return
	}

	snapshot := *lead
	timeout := h.config.GetNotifyConfig().SendTimeout()
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), timeout)
		defer cancel()

		if err := h.notifier.NotifyLead(ctx, &snapshot); err != nil {
			logger.Warn("Lead notification failed",
				zap.String("lead_id", snapshot.ID),
				zap.Error(err))
		}
	}()
}

// ListLeads returns recent leads for the admin panel
func (h *HandlerService) ListLeads(c *gin.Context) {
	if h.leads == nil {
		HandleError(c, ErrServiceUnavailable)
		return
	}

	var kind models.LeadKind
	if raw := c.Query("kind"); raw != "" {
		parsed, ok := models.ParseLeadKind(raw)
		if !ok {
			HandleError(c, fmt.Errorf("%w: kind %q", ErrInvalidParam, raw))
			return
		}
		kind = parsed
	}

	limit := repository.DefaultLeadPageSize
	if raw := c.Query("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n <= 0 {
			HandleError(c, fmt.Errorf("%w: limit %q", ErrInvalidParam, raw))
			return
		}
		limit = n
	}

	leads, err := h.leads.List(c.Request.Context(), kind, limit)
	if err != nil {
		HandleError(c, NewInternalServerError("Failed to list leads", err))
		return
	}

	response.OK(c, gin.H{"leads": leads, "count": len(leads)})
}

// UpdateLeadStatus moves a lead through follow-up
func (h *HandlerService) UpdateLeadStatus(c *gin.Context) {
	if h.leads == nil {
		HandleError(c, ErrServiceUnavailable)
		return
	}

	var req leadStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		HandleError(c, NewBadRequestError("Invalid status update", err))
		return
	}
	status, ok := models.ParseLeadStatus(req.Status)
	if !ok {
		HandleError(c, fmt.Errorf("%w: status %q", ErrInvalidParam, req.Status))
		return
	}

	id := c.Param("id")
	if err := h.leads.UpdateStatus(c.Request.Context(), id, status); err != nil {
		HandleError(c, fmt.Errorf("update lead %s: %w", id, err))
		return
	}

	response.JSON(c, http.StatusOK, gin.H{"id": id, "status": status}, "Lead updated")
}

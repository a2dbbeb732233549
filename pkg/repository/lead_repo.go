// Package repository holds the gorm-backed stores for settings, leads and testimonials.
package repository

import (
	"context"
	"fmt"
	"time"

	"returnfilers/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// DefaultLeadPageSize applies when a list call passes no limit
const DefaultLeadPageSize = 50

type LeadRepo struct {
	db *gorm.DB
}

func NewLeadRepo(db *gorm.DB) *LeadRepo {
	return &LeadRepo{db: db}
}

// Create assigns an ID and the new status, then inserts
func (r *LeadRepo) Create(ctx context.Context, lead *models.Lead) error {
	if lead.ID == "" {
		lead.ID = uuid.NewString()
	}
	if lead.Status == "" {
		lead.Status = models.LeadStatusNew
	}
	if err := r.db.WithContext(ctx).Create(lead).Error; err != nil {
		return fmt.Errorf("create lead: %w", err)
	}
	return nil
}

// List returns leads newest first, optionally filtered by kind
func (r *LeadRepo) List(ctx context.Context, kind models.LeadKind, limit int) ([]models.Lead, error) {
	if limit <= 0 || limit > 500 {
		limit = DefaultLeadPageSize
	}

	q := r.db.WithContext(ctx).Order("created_at DESC").Limit(limit)
	if kind != "" {
		q = q.Where("kind = ?", kind)
	}

	var leads []models.Lead
	if err := q.Find(&leads).Error; err != nil {
		return nil, fmt.Errorf("list leads: %w", err)
	}
	return leads, nil
}

// UpdateStatus moves a lead through follow-up
func (r *LeadRepo) UpdateStatus(ctx context.Context, id string, status models.LeadStatus) error {
	res := r.db.WithContext(ctx).Model(&models.Lead{}).Where("id = ?", id).Update("status", status)
	if res.Error != nil {
		return fmt.Errorf("update lead: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return ErrLeadNotFound
	}
	return nil
}

// PruneClosed soft-deletes closed leads created before cutoff
func (r *LeadRepo) PruneClosed(ctx context.Context, cutoff time.Time) (int64, error) {
	res := r.db.WithContext(ctx).
		Where("status = ? AND created_at < ?", models.LeadStatusClosed, cutoff).
		Delete(&models.Lead{})
	if res.Error != nil {
		return 0, fmt.Errorf("prune leads: %w", res.Error)
	}
	return res.RowsAffected, nil
}

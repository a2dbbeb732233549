package repository

import (
	"context"
	"fmt"

	"returnfilers/internal/models"

	"gorm.io/gorm"
)

type TestimonialRepo struct {
	db *gorm.DB
}

func NewTestimonialRepo(db *gorm.DB) *TestimonialRepo {
	return &TestimonialRepo{db: db}
}

// ListPublished returns published testimonials in display order
func (r *TestimonialRepo) ListPublished(ctx context.Context, limit int) ([]models.Testimonial, error) {
	if limit <= 0 {
		limit = 10
	}

	var items []models.Testimonial
	err := r.db.WithContext(ctx).
		Where("published = ?", true).
		Order("sort_order ASC, id ASC").
		Limit(limit).
		Find(&items).Error
	if err != nil {
		return nil, fmt.Errorf("list testimonials: %w", err)
	}
	return items, nil
}

func (r *TestimonialRepo) Create(ctx context.Context, t *models.Testimonial) error {
	if err := r.db.WithContext(ctx).Create(t).Error; err != nil {
		return fmt.Errorf("create testimonial: %w", err)
	}
	return nil
}

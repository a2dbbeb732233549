package models

import (
	"time"

	"gorm.io/gorm"
)

// Testimonial is a client quote shown in the testimonial rotation
type Testimonial struct {
	ID        uint           `gorm:"primaryKey" json:"id"`
	Author    string         `gorm:"size:120;not null" json:"author"`
	Role      string         `gorm:"size:120" json:"role"`
	Quote     string         `gorm:"type:text;not null" json:"quote"`
	Rating    int            `gorm:"default:5" json:"rating"`
	Published bool           `gorm:"index;default:false" json:"published"`
	SortOrder int            `gorm:"default:0" json:"sort_order"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}

// TableName returns the table name for Testimonial model
func (Testimonial) TableName() string {
	return "testimonials"
}

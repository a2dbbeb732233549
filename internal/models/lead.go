package models

import (
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// LeadKind is the form a lead came from
type LeadKind string

const (
	LeadKindQuote        LeadKind = "quote"
	LeadKindBooking      LeadKind = "booking"
	LeadKindConsultation LeadKind = "consultation"
	LeadKindContact      LeadKind = "contact"
	LeadKindNewsletter   LeadKind = "newsletter"
)

// LeadStatus tracks follow-up progress
type LeadStatus string

const (
	LeadStatusNew       LeadStatus = "new"
	LeadStatusContacted LeadStatus = "contacted"
	LeadStatusClosed    LeadStatus = "closed"
)

// Lead is a submission from one of the public lead-capture forms
type Lead struct {
	ID            string         `gorm:"primaryKey;size:36" json:"id"`
	Kind          LeadKind       `gorm:"index;size:32;not null" json:"kind"`
	Status        LeadStatus     `gorm:"index;size:32;default:new" json:"status"`
	Name          string         `gorm:"size:120" json:"name"`
	Email         string         `gorm:"index;size:255" json:"email"`
	Phone         string         `gorm:"size:32" json:"phone"`
	Service       string         `gorm:"size:120" json:"service"`
	Message       string         `gorm:"type:text" json:"message"`
	PreferredDate *time.Time     `json:"preferred_date,omitempty"`
	Details       datatypes.JSON `json:"details,omitempty"`
	SourcePath    string         `gorm:"size:255" json:"source_path"`
	CreatedAt     time.Time      `gorm:"index" json:"created_at"`
	UpdatedAt     time.Time      `json:"updated_at"`
	DeletedAt     gorm.DeletedAt `gorm:"index" json:"-"`
}

// TableName returns the table name for Lead model
func (Lead) TableName() string {
	return "leads"
}

// ParseLeadKind validates a kind taken from a URL segment
func ParseLeadKind(s string) (LeadKind, bool) {
	switch k := LeadKind(s); k {
	case LeadKindQuote, LeadKindBooking, LeadKindConsultation, LeadKindContact, LeadKindNewsletter:
		return k, true
	}
	return "", false
}

// ParseLeadStatus validates a status value
func ParseLeadStatus(s string) (LeadStatus, bool) {
	switch st := LeadStatus(s); st {
	case LeadStatusNew, LeadStatusContacted, LeadStatusClosed:
		return st, true
	}
	return "", false
}

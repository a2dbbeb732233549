package models

import (
	"time"

	"gorm.io/datatypes"
)

// SiteSettingKey identifies the single settings row
const SiteSettingKey = "site"

// SiteSetting stores the whole site configuration document as one JSON column
type SiteSetting struct {
	ID        uint           `gorm:"primaryKey" json:"id"`
	Key       string         `gorm:"column:setting_key;uniqueIndex;not null;size:64" json:"key"`
	Document  datatypes.JSON `json:"document"`
	Version   int            `gorm:"default:1" json:"version"`
	UpdatedBy string         `json:"updated_by"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
}

// TableName returns the table name for SiteSetting model
func (SiteSetting) TableName() string {
	return "site_settings"
}

package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"returnfilers/internal/models"
	"returnfilers/pkg/settings"

	"gorm.io/datatypes"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// SettingsRepo persists the single settings document
type SettingsRepo struct {
	db *gorm.DB
}

func NewSettingsRepo(db *gorm.DB) *SettingsRepo {
	return &SettingsRepo{db: db}
}

// Get loads the document. A missing row yields an empty document and found=false.
func (r *SettingsRepo) Get(ctx context.Context) (doc *settings.Settings, found bool, err error) {
	var row models.SiteSetting
	err = r.db.WithContext(ctx).Where("setting_key = ?", models.SiteSettingKey).First(&row).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return &settings.Settings{}, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("load settings: %w", err)
	}

	doc = &settings.Settings{}
	if len(row.Document) > 0 {
		if err := json.Unmarshal(row.Document, doc); err != nil {
			return nil, true, fmt.Errorf("%w: %v", ErrCorruptDocument, err)
		}
	}
	return doc, true, nil
}

// Fetch satisfies settings.Fetcher for in-process deployments
func (r *SettingsRepo) Fetch(ctx context.Context) (*settings.Settings, error) {
	doc, _, err := r.Get(ctx)
	return doc, err
}

// Save replaces the whole document and bumps its version
func (r *SettingsRepo) Save(ctx context.Context, doc *settings.Settings, updatedBy string) error {
	if doc == nil {
		return ErrNilDocument
	}

	data, err := json.Marshal(doc)
	if err != nil {
		return fmt.Errorf("encode settings: %w", err)
	}

	row := models.SiteSetting{
		Key:       models.SiteSettingKey,
		Document:  datatypes.JSON(data),
		UpdatedBy: updatedBy,
	}

	err = r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "setting_key"}},
		DoUpdates: clause.Assignments(map[string]interface{}{
			"document":   row.Document,
			"updated_by": updatedBy,
			"version":    gorm.Expr("version + 1"),
			"updated_at": gorm.Expr("CURRENT_TIMESTAMP"),
		}),
	}).Create(&row).Error
	if err != nil {
		return fmt.Errorf("save settings: %w", err)
	}
	return nil
}

// Version returns the stored revision, zero when nothing is saved
func (r *SettingsRepo) Version(ctx context.Context) (int, error) {
	var row models.SiteSetting
	err := r.db.WithContext(ctx).Select("version").Where("setting_key = ?", models.SiteSettingKey).First(&row).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return 0, nil
	}
	if err != nil {
		return 0, err
	}
	return row.Version, nil
}

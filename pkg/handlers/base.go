package handlers

import (
	"context"
	"time"

	"returnfilers/internal/models"
	"returnfilers/pkg/config"
	"returnfilers/pkg/content"
	"returnfilers/pkg/logger"
	"returnfilers/pkg/notifier"
	"returnfilers/pkg/scheduler"
	"returnfilers/pkg/settings"
	"returnfilers/pkg/visibility"
)

const ServiceName = "returnfilers"

// Version is overridden at build time with -ldflags "-X returnfilers/pkg/handlers.Version=..."
var Version = "dev"

// SettingsRepository is the persisted settings document
type SettingsRepository interface {
	Get(ctx context.Context) (*settings.Settings, bool, error)
	Save(ctx context.Context, doc *settings.Settings, updatedBy string) error
}

// LeadRepository stores lead form submissions
type LeadRepository interface {
	Create(ctx context.Context, lead *models.Lead) error
	List(ctx context.Context, kind models.LeadKind, limit int) ([]models.Lead, error)
	UpdateStatus(ctx context.Context, id string, status models.LeadStatus) error
}

// TestimonialLister returns testimonials ready for display
type TestimonialLister interface {
	ListPublished(ctx context.Context, limit int) ([]models.Testimonial, error)
}

// Dependencies are the collaborators a HandlerService needs
type Dependencies struct {
	Store        *settings.Store
	Settings     SettingsRepository
	Leads        LeadRepository
	Testimonials TestimonialLister
	Notifier     notifier.LeadNotifier // optional; alerts staff about new leads
	Defaults     *content.Defaults
}

// HandlerService provides the HTTP handlers for the site API
type HandlerService struct {
	config       *config.Config
	store        *settings.Store
	settingsRepo SettingsRepository
	leads        LeadRepository
	testimonials TestimonialLister
	notifier     notifier.LeadNotifier
	rules        visibility.Rules
	defaults     content.Defaults
	scheduler    *scheduler.TaskScheduler
	startedAt    time.Time
}

// NewHandlerService wires the handlers. A nil Defaults uses content.SiteDefaults.
func NewHandlerService(cfg *config.Config, deps Dependencies) *HandlerService {
	logger.Info("Initializing handler service")

	if cfg == nil {
		cfg = config.Default()
	}
	defaults := content.SiteDefaults()
	if deps.Defaults != nil {
		defaults = *deps.Defaults
	}

	return &HandlerService{
		config:       cfg,
		store:        deps.Store,
		settingsRepo: deps.Settings,
		leads:        deps.Leads,
		testimonials: deps.Testimonials,
		notifier:     deps.Notifier,
		rules:        visibility.NewRules(cfg.GetSiteConfig().WidgetAllowList),
		defaults:     defaults,
		startedAt:    time.Now(),
	}
}

// GetConfig returns the handler service configuration
func (h *HandlerService) GetConfig() *config.Config {
	return h.config
}

// SetScheduler sets the scheduler reference (called after scheduler is created)
func (h *HandlerService) SetScheduler(s *scheduler.TaskScheduler) {
	h.scheduler = s
}

// currentSettings is the store's document, nil when no store is wired
func (h *HandlerService) currentSettings() *settings.Settings {
	if h.store == nil {
		return nil
	}
	return h.store.Current()
}

func (h *HandlerService) features() content.Features {
	return content.ResolveFeatures(h.currentSettings())
}

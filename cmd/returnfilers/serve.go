package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"returnfilers/pkg/config"
	"returnfilers/pkg/database"
	"returnfilers/pkg/handlers"
	"returnfilers/pkg/logger"
	"returnfilers/pkg/notifier"
	"returnfilers/pkg/repository"
	"returnfilers/pkg/scheduler"
	"returnfilers/pkg/server"
	"returnfilers/pkg/settings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

func newServeCmd(flags *rootFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API and maintenance jobs",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()
			return runServe(ctx, flags.configPath)
		},
	}
}

func loadConfig(path string) (*config.Config, error) {
	cfg, err := config.LoadConfig(path)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	if err := cfg.ValidateConfig(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

// newFetcher reads from the remote endpoint when one is configured and from
// the local database otherwise
func newFetcher(site *config.SiteConfig, repo *repository.SettingsRepo) settings.Fetcher {
	if site.SettingsURL == "" {
		return repo
	}
	return settings.NewHTTPFetcher(site.SettingsURL, &http.Client{Timeout: site.Timeout()})
}

func runServe(ctx context.Context, configPath string) error {
	cfg, err := loadConfig(configPath)
	if err != nil {
		return err
	}

	app := cfg.GetAppConfig()
	if err := logger.InitLogger(app.IsDevelopment(), app.LogFile, app.LogLevel); err != nil {
		return fmt.Errorf("failed to init logger: %w", err)
	}
	defer func() { _ = logger.Sync() }()

	db, err := database.Open(cfg.GetDatabaseConfig())
	if err != nil {
		return err
	}
	defer func() {
		if err := database.Close(db); err != nil {
			logger.Warn("Failed to close database", zap.Error(err))
		}
	}()

	settingsRepo := repository.NewSettingsRepo(db)
	leadRepo := repository.NewLeadRepo(db)
	site := cfg.GetSiteConfig()

	store := settings.NewStore(newFetcher(site, settingsRepo),
		settings.WithTimeout(site.Timeout()),
		settings.WithLogger(logger.Named("settings")))

	deps := handlers.Dependencies{
		Store:        store,
		Settings:     settingsRepo,
		Leads:        leadRepo,
		Testimonials: repository.NewTestimonialRepo(db),
	}
	if deps.Notifier = notifier.FromConfig(cfg.GetNotifyConfig()); deps.Notifier == nil {
		logger.Info("Lead notifications disabled")
	}
	handlerSvc := handlers.NewHandlerService(cfg, deps)

	srv, err := server.NewHTTPServer(cfg, handlerSvc)
	if err != nil {
		return err
	}

	g, gctx := errgroup.WithContext(ctx)

	var sweeper scheduler.Sweeper
	if limiter := srv.Limiter(); limiter != nil {
		sweeper = limiter
	}
	ts, err := scheduler.NewTaskScheduler(gctx, scheduler.DefaultJobs(cfg, leadRepo, sweeper)...)
	if err != nil {
		return err
	}
	handlerSvc.SetScheduler(ts)

	logger.Info("Starting services",
		zap.String("version", handlers.Version),
		zap.Bool("remote_settings", site.SettingsURL != ""))

	store.Start(gctx)

	g.Go(srv.Start)
	g.Go(ts.Start)
	g.Go(func() error {
		<-gctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.GetServerConfig().ShutdownTimeout())
		defer cancel()
		return errors.Join(srv.Shutdown(shutdownCtx), ts.Shutdown(shutdownCtx))
	})

	if err := g.Wait(); err != nil {
		logger.Error("Service stopped with error", zap.Error(err))
		return err
	}
	logger.Info("Service stopped")
	return nil
}

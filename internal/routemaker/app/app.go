package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	httpapi "github.com/aussiebroadwan/routemaker/internal/routemaker/http"
	"github.com/aussiebroadwan/routemaker/internal/routemaker/notify"
	"github.com/aussiebroadwan/routemaker/internal/routemaker/service"
	"github.com/aussiebroadwan/routemaker/internal/routemaker/store"
	"github.com/aussiebroadwan/routemaker/internal/routemaker/store/drivers/postgres"
	"github.com/aussiebroadwan/routemaker/internal/routemaker/store/drivers/sqlite"
	"github.com/aussiebroadwan/routemaker/pkg/geocode"
	"github.com/aussiebroadwan/routemaker/pkg/httpx"
	"github.com/aussiebroadwan/routemaker/pkg/jwtx"
	"github.com/aussiebroadwan/routemaker/pkg/slogx"
)

// BuildVersion is overridden at build time with -ldflags "-X ...app.BuildVersion=...".
var BuildVersion = "v0.1.0"

// Application wires RouteMaker's dependencies together.
type Application struct {
	cfg    Config
	logger *slog.Logger

	// Core dependencies
	db       store.Store
	verifier jwtx.Verifier
	mailer   notify.Mailer
	geocoder geocode.Geocoder
	proxies  httpx.TrustedProxies

	// Services
	organizationService *service.OrganizationService
	invitationService   *service.InvitationService
	profileService      *service.ProfileService
	projectService      *service.ProjectService
	locationService     *service.LocationService
	technicianService   *service.TechnicianService
	housekeepingService *service.HousekeepingService

	// HTTP server
	server *http.Server
	router *httpapi.Router
}

// New creates an Application with every dependency initialized.
func New(cfg Config) (*Application, error) {
	app := &Application{
		cfg: cfg,
		logger: slogx.New(slogx.Config{
			Service: "routemaker",
			Version: BuildVersion,
			Env:     cfg.Env,
			Level:   cfg.LogLevel,
			Format:  cfg.LogFormat,
		}),
	}

	verifier, err := jwtx.NewHS256Verifier([]byte(cfg.JWTSecret), jwtx.VerifyOptions{
		Issuer:   cfg.JWTIssuer,
		Audience: cfg.JWTAudience,
		Leeway:   cfg.JWTLeeway,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to initialize token verifier: %w", err)
	}
	app.verifier = verifier

	if app.proxies, err = httpx.ParseTrustedProxies(cfg.Proxies); err != nil {
		return nil, fmt.Errorf("failed to parse trusted proxies: %w", err)
	}

	if err := app.initDatabase(); err != nil {
		return nil, err
	}
	if err := app.initIntegrations(); err != nil {
		_ = app.db.Close()
		return nil, err
	}

	app.initServices()
	app.initHTTP()

	return app, nil
}

// Handler exposes the fully wired router, mainly for in-process tests.
func (app *Application) Handler() http.Handler { return app.router }

// Run starts the application and blocks until shutdown is requested.
func (app *Application) Run() error {
	app.housekeepingService.Start()

	app.logger.Info("routemaker starting",
		"port", app.cfg.Port,
		"version", BuildVersion,
		"database", app.cfg.DatabaseDriver,
	)

	serverErrors := make(chan error, 1)
	go func() {
		serverErrors <- app.server.ListenAndServe()
	}()

	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)

	select {
	case err := <-serverErrors:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			app.housekeepingService.Stop()
			_ = app.db.Close()
			return fmt.Errorf("server failed: %w", err)
		}
	case sig := <-shutdown:
		app.logger.Info("shutdown signal received", "signal", sig)

		if err := app.Shutdown(); err != nil {
			return fmt.Errorf("graceful shutdown failed: %w", err)
		}
	}

	return nil
}

// Shutdown drains in-flight requests, stops the housekeeping worker and
// closes the database.
func (app *Application) Shutdown() error {
	app.logger.Info("shutting down routemaker...")

	ctx, cancel := context.WithTimeout(context.Background(), app.cfg.ShutdownGracePeriod)
	defer cancel()

	if err := app.server.Shutdown(ctx); err != nil {
		app.logger.Error("graceful server shutdown failed", "error", err)
		if err := app.server.Close(); err != nil {
			app.logger.Error("error closing server", "error", err)
		}
	}

	app.housekeepingService.Stop()

	if err := app.db.Close(); err != nil {
		app.logger.Error("error closing database", "error", err)
		return err
	}

	app.logger.Info("routemaker stopped")
	return nil
}

// initDatabase opens the configured driver and applies migrations.
func (app *Application) initDatabase() error {
	var (
		db  store.Store
		err error
	)
	switch app.cfg.DatabaseDriver {
	case DriverPostgres:
		ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
		defer cancel()
		db, err = postgres.NewStore(ctx, app.cfg.DatabaseURL)
	default:
		db, err = sqlite.NewStore(sqlite.DSN(app.cfg.DatabaseFile))
	}
	if err != nil {
		return fmt.Errorf("failed to initialize database: %w", err)
	}
	app.db = db

	if err := db.ApplyMigrations(); err != nil {
		_ = db.Close()
		return fmt.Errorf("failed to apply database migrations: %w", err)
	}

	app.logger.Info("database migrations applied successfully", "driver", app.cfg.DatabaseDriver)
	return nil
}

// initIntegrations picks the mailer and geocoder. Both are optional: without
// credentials invitation email is dropped and geocoding answers 502.
func (app *Application) initIntegrations() error {
	if app.cfg.ResendAPIKey != "" {
		m, err := notify.NewResendMailer(app.cfg.ResendAPIKey, notify.WithFrom(app.cfg.EmailFrom))
		if err != nil {
			return fmt.Errorf("failed to initialize mailer: %w", err)
		}
		app.mailer = m
		app.logger.Info("invitation email enabled", "provider", "resend")
	} else {
		app.mailer = notify.NewNoopMailer()
		app.logger.Warn("RESEND_API_KEY not set, invitation email is disabled")
	}

	if app.cfg.GeocodingAPIKey != "" {
		g, err := geocode.New(app.cfg.GeocodingProvider, app.cfg.GeocodingAPIKey)
		if err != nil {
			return fmt.Errorf("failed to initialize geocoder: %w", err)
		}
		app.geocoder = g
		app.logger.Info("geocoding enabled", "provider", app.cfg.GeocodingProvider)
	} else {
		app.logger.Warn("GEOCODING_API_KEY not set, geocoding is disabled")
	}
	return nil
}

// initServices initializes the business logic services.
func (app *Application) initServices() {
	app.organizationService = &service.OrganizationService{Store: app.db}
	app.invitationService = &service.InvitationService{
		Store:   app.db,
		Mailer:  app.mailer,
		BaseURL: app.cfg.ClientURL,
		TTL:     app.cfg.InvitationTTL,
	}
	app.profileService = &service.ProfileService{Store: app.db}
	app.projectService = &service.ProjectService{Store: app.db}
	app.locationService = &service.LocationService{
		Store:       app.db,
		Geocoder:    app.geocoder,
		Concurrency: app.cfg.GeocodeConcurrency,
	}
	app.technicianService = &service.TechnicianService{Store: app.db}

	app.housekeepingService = service.NewHousekeepingService(
		app.db,
		app.logger,
		app.cfg.HousekeepingInterval,
	)
}

// initHTTP initializes the HTTP router and server.
func (app *Application) initHTTP() {
	router := httpapi.NewRouter(
		app.verifier,
		BuildVersion,
		app.db,
		app.logger,
		httpapi.Options{
			CORSAllowedOrigins: app.cfg.CORSOrigins,
			IsDevelopment:      app.cfg.IsDevelopment(),
			TrustedProxies:     app.proxies,
		},
	)

	router.OrganizationService = app.organizationService
	router.InvitationService = app.invitationService
	router.ProfileService = app.profileService
	router.ProjectService = app.projectService
	router.LocationService = app.locationService
	router.TechnicianService = app.technicianService
	router.ApplyRoutes()

	app.router = router

	app.server = &http.Server{
		Addr:              fmt.Sprintf(":%d", app.cfg.Port),
		Handler:           router,
		ReadHeaderTimeout: 3 * time.Second,
	}
}

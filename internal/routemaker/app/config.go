package app

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"

	"github.com/aussiebroadwan/routemaker/internal/routemaker/service"
	"github.com/aussiebroadwan/routemaker/pkg/geocode"
	"github.com/aussiebroadwan/routemaker/pkg/httpx"
	"github.com/aussiebroadwan/routemaker/pkg/jwtx"
)

// Database drivers accepted in DATABASE_DRIVER.
const (
	DriverSQLite   = "sqlite"
	DriverPostgres = "postgres"
)

type Config struct {
	Env       string // Environment (dev, staging, prod) (default: dev)
	LogLevel  string // Log level (debug, info, warn, error) (default: info)
	LogFormat string // Log format (json, text) (default: json)
	Port      int    // HTTP server port (default: 8080)

	DatabaseDriver string // sqlite or postgres (default: sqlite)
	DatabaseFile   string // SQLite file (default: ./routemaker.db)
	DatabaseURL    string // Postgres URL, required for the postgres driver

	JWTSecret    string   // Required: identity provider's HS256 secret, at least 32 bytes
	JWTIssuer    string   // Optional: expected iss claim
	JWTAudience  []string // Optional: expected aud claim values
	JWTLeeway    time.Duration
	ClientURL    string   // Web client origin used in invite links (default: http://localhost:3000)
	CORSOrigins  []string // Allowed CORS origins (default: ClientURL)
	Proxies      []string // Reverse proxies (CIDRs or addresses) whose X-Forwarded-For is believed
	EmailFrom    string   // Optional: sender for invitation email
	ResendAPIKey string   // Optional: without it invitation email is not sent

	GeocodingProvider  string // opencage or google (default: opencage)
	GeocodingAPIKey    string // Optional: without it geocoding endpoints answer 502
	GeocodeConcurrency int    // Bulk geocode worker pool size (default: 4)

	InvitationTTL        time.Duration // Invitation lifetime (default: 7 days)
	ShutdownGracePeriod  time.Duration // Graceful shutdown timeout (default: 10s)
	HousekeepingInterval time.Duration // Invitation expiry sweep interval (default: 1h)
}

// IsDevelopment reports whether the service runs in a local environment.
func (c Config) IsDevelopment() bool {
	switch strings.ToLower(c.Env) {
	case "dev", "development", "local", "test":
		return true
	}
	return false
}

func newViper() *viper.Viper {
	v := viper.New()
	v.AutomaticEnv()

	v.SetDefault("ENV", "dev")
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("LOG_FORMAT", "json")
	v.SetDefault("PORT", 8080)
	v.SetDefault("DATABASE_DRIVER", DriverSQLite)
	v.SetDefault("DATABASE_FILE", "routemaker.db")
	v.SetDefault("AUTH_LEEWAY", "30s")
	v.SetDefault("CLIENT_URL", "http://localhost:3000")
	v.SetDefault("GEOCODING_PROVIDER", geocode.ProviderOpenCage)
	v.SetDefault("GEOCODE_CONCURRENCY", service.DefaultGeocodeConcurrency)
	v.SetDefault("INVITATION_TTL", "168h")
	v.SetDefault("SHUTDOWN_GRACE_PERIOD", "10s")
	v.SetDefault("HOUSEKEEPING_INTERVAL", "1h")
	return v
}

// LoadConfig reads configuration from the environment, overlaid on the file
// named by CONFIG_FILE when it is set.
func LoadConfig() (Config, error) {
	v := newViper()

	if path := v.GetString("CONFIG_FILE"); path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return Config{}, fmt.Errorf("read config file: %w", err)
		}
	}

	cfg := Config{
		Env:       v.GetString("ENV"),
		LogLevel:  v.GetString("LOG_LEVEL"),
		LogFormat: v.GetString("LOG_FORMAT"),
		Port:      v.GetInt("PORT"),

		DatabaseDriver: strings.ToLower(v.GetString("DATABASE_DRIVER")),
		DatabaseFile:   v.GetString("DATABASE_FILE"),
		DatabaseURL:    v.GetString("DATABASE_URL"),

		JWTSecret:    v.GetString("AUTH_JWT_SECRET"),
		JWTIssuer:    v.GetString("AUTH_ISSUER"),
		JWTAudience:  splitList(v.GetString("AUTH_AUDIENCE")),
		JWTLeeway:    v.GetDuration("AUTH_LEEWAY"),
		ClientURL:    strings.TrimRight(v.GetString("CLIENT_URL"), "/"),
		CORSOrigins:  splitList(v.GetString("CORS_ALLOWED_ORIGINS")),
		Proxies:      splitList(v.GetString("TRUSTED_PROXIES")),
		EmailFrom:    v.GetString("EMAIL_FROM"),
		ResendAPIKey: v.GetString("RESEND_API_KEY"),

		GeocodingProvider:  strings.ToLower(v.GetString("GEOCODING_PROVIDER")),
		GeocodingAPIKey:    v.GetString("GEOCODING_API_KEY"),
		GeocodeConcurrency: v.GetInt("GEOCODE_CONCURRENCY"),

		InvitationTTL:        v.GetDuration("INVITATION_TTL"),
		ShutdownGracePeriod:  v.GetDuration("SHUTDOWN_GRACE_PERIOD"),
		HousekeepingInterval: v.GetDuration("HOUSEKEEPING_INTERVAL"),
	}
	if len(cfg.CORSOrigins) == 0 {
		cfg.CORSOrigins = []string{cfg.ClientURL}
	}

	return cfg, cfg.Validate()
}

// Validate reports every problem at once.
func (c Config) Validate() error {
	var errs []error

	if len(c.JWTSecret) < jwtx.MinSecretLength {
		errs = append(errs, fmt.Errorf("AUTH_JWT_SECRET must be at least %d bytes", jwtx.MinSecretLength))
	}
	switch c.DatabaseDriver {
	case DriverSQLite:
		if c.DatabaseFile == "" {
			errs = append(errs, errors.New("DATABASE_FILE is required for the sqlite driver"))
		}
	case DriverPostgres:
		if c.DatabaseURL == "" {
			errs = append(errs, errors.New("DATABASE_URL is required for the postgres driver"))
		}
	default:
		errs = append(errs, fmt.Errorf("DATABASE_DRIVER must be %q or %q", DriverSQLite, DriverPostgres))
	}
	if c.Port <= 0 || c.Port > 65535 {
		errs = append(errs, errors.New("PORT must be between 1 and 65535"))
	}
	if c.GeocodeConcurrency <= 0 {
		errs = append(errs, errors.New("GEOCODE_CONCURRENCY must be positive"))
	}
	if c.HousekeepingInterval <= 0 {
		errs = append(errs, errors.New("HOUSEKEEPING_INTERVAL must be positive"))
	}
	if _, err := httpx.ParseTrustedProxies(c.Proxies); err != nil {
		errs = append(errs, fmt.Errorf("TRUSTED_PROXIES: %w", err))
	}

	return errors.Join(errs...)
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

package config

import (
	"context"
	"fmt"
	"time"

	"github.com/sethvargo/go-envconfig"

	"github.com/blue-screen-of-app/internal/qr"
)

const (
	EnvDevelopment = "development"
	EnvTest        = "test"
	EnvProduction  = "production"
)

type Config struct {
	Environment string   `env:"APP_ENV,default=development"`
	Port        int      `env:"PORT,default=3000"`
	AppName     string   `env:"APP_NAME,default=Blue Screen of App"`
	AppURL      string   `env:"APP_URL,default=http://localhost:3000"`
	LogLevel    string   `env:"LOG_LEVEL,default=info"`
	CORSOrigins []string `env:"CORS_ORIGINS,default=*"`

	SecurityHeaders bool          `env:"SECURITY_HEADERS_ENABLED,default=true"`
	RateLimitWindow time.Duration `env:"RATE_LIMIT_WINDOW,default=15m"`
	RateLimitMax    int           `env:"RATE_LIMIT_MAX_REQUESTS,default=100"`

	EnableAnalytics bool   `env:"ENABLE_ANALYTICS,default=false"`
	EnableQRCodes   bool   `env:"ENABLE_QR_CODES,default=true"`
	DefaultQRURL    string `env:"DEFAULT_QR_URL,default=https://github.com"`
	QRCodeSize      int    `env:"QR_CODE_SIZE,default=150"`
	CatalogFile     string `env:"CATALOG_FILE"`

	// HTTP server timeouts
	ReadTimeout  time.Duration `env:"HTTP_READ_TIMEOUT,default=15s"`
	WriteTimeout time.Duration `env:"HTTP_WRITE_TIMEOUT,default=30s"`
	IdleTimeout  time.Duration `env:"HTTP_IDLE_TIMEOUT,default=60s"`
}

// Load reads the configuration from the process environment.
func Load() (*Config, error) {
	return LoadWith(context.Background(), envconfig.OsLookuper())
}

// LoadWith reads the configuration from l.
func LoadWith(ctx context.Context, l envconfig.Lookuper) (*Config, error) {
	var cfg Config
	if err := envconfig.ProcessWith(ctx, &envconfig.Config{Target: &cfg, Lookuper: l}); err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) validate() error {
	switch c.Environment {
	case EnvDevelopment, EnvTest, EnvProduction:
	default:
		return fmt.Errorf("APP_ENV must be one of development, test, production, got %q", c.Environment)
	}

	if c.Port < 1 || c.Port > 65535 {
		return fmt.Errorf("PORT must be between 1 and 65535, got %d", c.Port)
	}

	if c.RateLimitMax < 1 {
		return fmt.Errorf("RATE_LIMIT_MAX_REQUESTS must be positive, got %d", c.RateLimitMax)
	}
	if c.RateLimitWindow <= 0 {
		return fmt.Errorf("RATE_LIMIT_WINDOW must be positive, got %s", c.RateLimitWindow)
	}

	if c.EnableQRCodes && c.DefaultQRURL == "" {
		return fmt.Errorf("DEFAULT_QR_URL is required when ENABLE_QR_CODES is set")
	}
	if c.QRCodeSize < qr.MinSize || c.QRCodeSize > qr.MaxSize {
		return fmt.Errorf("QR_CODE_SIZE must be between %d and %d, got %d", qr.MinSize, qr.MaxSize, c.QRCodeSize)
	}

	return nil
}

func (c *Config) IsProduction() bool {
	return c.Environment == EnvProduction
}

func (c *Config) Addr() string {
	return fmt.Sprintf(":%d", c.Port)
}

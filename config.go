package portfolio

import (
	"time"

	"github.com/caarlos0/env/v11"
)

// SiteConfig holds all configuration for the site, populated from
// environment variables. Templates read the branding values so nothing
// is hardcoded.
type SiteConfig struct {
	Name        string `env:"SITE_NAME" envDefault:"Hatami Sugandi"`
	URL         string `env:"SITE_URL" envDefault:"http://localhost:3000"`
	Description string `env:"SITE_DESCRIPTION"`
	Author      string `env:"SITE_AUTHOR" envDefault:"Hatami Sugandi"`

	Addr         string `env:"ADDR" envDefault:":3000"`
	DatabasePath string `env:"DATABASE_PATH" envDefault:"data/portfolio.db"`

	AdminPassword string `env:"ADMIN_PASSWORD"`
	SessionSecret string `env:"ADMIN_SESSION_SECRET"`
	CookieSecure  bool   `env:"COOKIE_SECURE"`

	ContentCacheTTL time.Duration `env:"CONTENT_CACHE_TTL" envDefault:"5m"`
}

// LoadConfig parses SiteConfig from the environment.
func LoadConfig() (SiteConfig, error) {
	var cfg SiteConfig
	if err := env.Parse(&cfg); err != nil {
		return SiteConfig{}, err
	}
	return cfg, nil
}

// Option configures additional App behavior.
type Option func(*App)

// WithStaticDir sets the directory for static assets (default "public").
func WithStaticDir(dir string) Option {
	return func(a *App) {
		a.staticDir = dir
	}
}

// WithCustomRoutes registers additional routes on the Echo instance.
// The callback runs after the built-in routes, before the server starts.
func WithCustomRoutes(fn func(*App)) Option {
	return func(a *App) {
		a.customRoutes = append(a.customRoutes, fn)
	}
}

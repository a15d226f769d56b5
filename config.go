package playlearn

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/labstack/gommon/log"
	"github.com/spf13/viper"

	"github.com/littlewonders/playlearn/content"
)

// SiteConfig holds all configuration for the site.
type SiteConfig struct {
	Name        string `mapstructure:"name"`        // Site name (default "Little Wonders")
	URL         string `mapstructure:"url"`         // Canonical URL (default "http://localhost:3000")
	Description string `mapstructure:"description"` // Fallback meta description
	Addr        string `mapstructure:"addr"`        // Listen address (default ":3000")

	StaticDir    string `mapstructure:"static_dir"`    // Photos, logos and stylesheet (default "public")
	ContentPath  string `mapstructure:"content_path"`  // YAML override for the built-in tables
	WatchContent bool   `mapstructure:"watch_content"` // Reload ContentPath when it changes

	HtmxSrc    string `mapstructure:"htmx_src"`   // htmx script URL
	Stylesheet string `mapstructure:"stylesheet"` // Compiled stylesheet href (default "/styles.css")
	LogLevel   string `mapstructure:"log_level"`  // debug, info, warn or error (default info)

	ProspectusPerMinute int           `mapstructure:"prospectus_per_minute"` // Download budget per IP (default 10)
	ShutdownTimeout     time.Duration `mapstructure:"shutdown_timeout"`      // Graceful shutdown budget (default 10s)
}

const defaultHtmxSrc = "https://unpkg.com/htmx.org@2.0.4"

func (c *SiteConfig) setDefaults() {
	if c.Name == "" {
		c.Name = "Little Wonders"
	}
	if c.URL == "" {
		c.URL = "http://localhost:3000"
	}
	if c.Addr == "" {
		c.Addr = ":3000"
	}
	if c.StaticDir == "" {
		c.StaticDir = "public"
	}
	if c.HtmxSrc == "" {
		c.HtmxSrc = defaultHtmxSrc
	}
	if c.Stylesheet == "" {
		c.Stylesheet = "/styles.css"
	}
	if c.LogLevel == "" {
		c.LogLevel = "info"
	}
	if c.ProspectusPerMinute <= 0 {
		c.ProspectusPerMinute = 10
	}
	if c.ShutdownTimeout <= 0 {
		c.ShutdownTimeout = 10 * time.Second
	}
}

// LoadConfig reads configuration from an optional file and the environment.
// Environment overrides use the SITE_ prefix, e.g. SITE_STATIC_DIR. An empty
// path falls back to SITE_CONFIG; with neither set only env and defaults apply.
func LoadConfig(path string) (SiteConfig, error) {
	v := viper.New()

	v.SetDefault("name", "Little Wonders")
	v.SetDefault("url", "http://localhost:3000")
	v.SetDefault("description", "")
	v.SetDefault("addr", ":3000")
	v.SetDefault("static_dir", "public")
	v.SetDefault("content_path", "")
	v.SetDefault("watch_content", false)
	v.SetDefault("htmx_src", defaultHtmxSrc)
	v.SetDefault("stylesheet", "/styles.css")
	v.SetDefault("log_level", "info")
	v.SetDefault("prospectus_per_minute", 10)
	v.SetDefault("shutdown_timeout", "10s")

	v.SetEnvPrefix("SITE")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	if path == "" {
		path = v.GetString("config")
	}
	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return SiteConfig{}, fmt.Errorf("playlearn: read config %s: %w", path, err)
		}
	}

	var c SiteConfig
	if err := v.Unmarshal(&c); err != nil {
		return SiteConfig{}, fmt.Errorf("playlearn: unmarshal config: %w", err)
	}
	c.setDefaults()
	if _, err := parseLogLevel(c.LogLevel); err != nil {
		return SiteConfig{}, err
	}
	return c, nil
}

var errLogLevel = errors.New("playlearn: unknown log level")

func parseLogLevel(s string) (log.Lvl, error) {
	switch strings.ToLower(s) {
	case "debug":
		return log.DEBUG, nil
	case "", "info":
		return log.INFO, nil
	case "warn", "warning":
		return log.WARN, nil
	case "error":
		return log.ERROR, nil
	case "off":
		return log.OFF, nil
	}
	return log.INFO, fmt.Errorf("%w %q", errLogLevel, s)
}

// Option configures additional App behavior.
type Option func(*App)

// WithCustomRoutes registers additional routes on the Echo instance.
// The callback receives the App after the built-in routes are registered.
func WithCustomRoutes(fn func(*App)) Option {
	return func(a *App) {
		a.customRoutes = append(a.customRoutes, fn)
	}
}

// WithStaticDir sets the directory for site assets, overriding SiteConfig.StaticDir.
func WithStaticDir(dir string) Option {
	return func(a *App) {
		a.Config.StaticDir = dir
	}
}

// WithViews replaces some or all of the default page renderers. Nil fields
// keep their defaults.
func WithViews(v ViewFuncs) Option {
	return func(a *App) {
		a.Views = v.merge(a.Views)
	}
}

// WithContentStore serves tables from s instead of loading SiteConfig.ContentPath.
func WithContentStore(s *content.Store) Option {
	return func(a *App) {
		a.Content = s
	}
}

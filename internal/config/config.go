// Package config provides configuration loading and validation for the site server.
package config

import (
	"encoding/json"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"
)

// Contact delivery modes.
const (
	DeliveryNotify = "notify" // acknowledge only, nothing is transmitted
	DeliveryStore  = "store"  // persist to the contact_messages table
)

// Defaults applied by MergeWithDefaults.
const (
	DefaultPort           = 8080
	DefaultAPITimeout     = 15 * time.Second
	DefaultRenderTimeout  = 20 * time.Second
	DefaultFlashTTL       = time.Minute
	DefaultMaxUploadBytes = 5 << 20
)

// Config represents the server configuration. Values come from a JSON file,
// the environment, and CLI flags, in increasing order of precedence.
type Config struct {
	APIBaseURL      string   `json:"api_base_url,omitempty"`     // Root of the backend, e.g. https://api.selamsoftware.com
	Port            int      `json:"port,omitempty"`             // HTTP listen port
	APITimeout      Duration `json:"api_timeout,omitempty"`      // Deadline for each backend call
	RenderTimeout   Duration `json:"render_timeout,omitempty"`   // How long a page waits for its list fetch
	SessionSecret   string   `json:"session_secret,omitempty"`   // Signs flash and CSRF cookies
	FlashTTL        Duration `json:"flash_ttl,omitempty"`        // Lifetime of a notification cookie
	MaxUploadBytes  int64    `json:"max_upload_bytes,omitempty"` // Per-file upload cap
	DatabaseURL     string   `json:"database_url,omitempty"`     // PostgreSQL connection URL (optional)
	ContactDelivery string   `json:"contact_delivery,omitempty"` // notify or store
}

// Duration is a time.Duration that reads "15s"-style strings or whole seconds from JSON.
type Duration time.Duration

// UnmarshalJSON implements json.Unmarshaler.
func (d *Duration) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		parsed, err := time.ParseDuration(s)
		if err != nil {
			return fmt.Errorf("invalid duration %q: %w", s, err)
		}
		*d = Duration(parsed)
		return nil
	}
	var secs float64
	if err := json.Unmarshal(data, &secs); err != nil {
		return fmt.Errorf("invalid duration %s", string(data))
	}
	*d = Duration(secs * float64(time.Second))
	return nil
}

// MarshalJSON implements json.Marshaler.
func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Duration(d).String())
}

// Std returns the value as a time.Duration.
func (d Duration) Std() time.Duration {
	return time.Duration(d)
}

// LoadConfig loads configuration from a JSON file.
// Returns an error if the file cannot be read or parsed.
func LoadConfig(path string) (*Config, error) {
	if path == "" {
		return nil, fmt.Errorf("config path is empty")
	}

	if !filepath.IsAbs(path) {
		cwd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("failed to get current directory: %w", err)
		}
		path = filepath.Join(cwd, path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config JSON: %w", err)
	}

	return &cfg, nil
}

// FromEnv reads the configuration from environment variables. Unset or
// unparsable values are left at zero so MergeWithDefaults can fill them.
func FromEnv() Config {
	return Config{
		APIBaseURL:      getEnvString("SITE_API_URL", ""),
		Port:            getEnvInt("PORT", 0),
		APITimeout:      Duration(getEnvDuration("SITE_API_TIMEOUT", 0)),
		RenderTimeout:   Duration(getEnvDuration("SITE_RENDER_TIMEOUT", 0)),
		SessionSecret:   getEnvString("SESSION_SECRET", ""),
		FlashTTL:        Duration(getEnvDuration("FLASH_TTL", 0)),
		MaxUploadBytes:  int64(getEnvInt("MAX_UPLOAD_BYTES", 0)),
		DatabaseURL:     getEnvString("DATABASE_URL", ""),
		ContactDelivery: getEnvString("CONTACT_DELIVERY", ""),
	}
}

// Validate checks that the configuration has usable values.
func (c *Config) Validate() error {
	if c.APIBaseURL == "" {
		return fmt.Errorf("config error: 'api_base_url' is required (SITE_API_URL)")
	}
	u, err := url.Parse(c.APIBaseURL)
	if err != nil || u.Host == "" || (u.Scheme != "http" && u.Scheme != "https") {
		return fmt.Errorf("config error: 'api_base_url' must be an absolute http(s) URL, got %q", c.APIBaseURL)
	}

	if c.Port < 0 || c.Port > 65535 {
		return fmt.Errorf("config error: 'port' out of range: %d", c.Port)
	}
	if c.APITimeout < 0 || c.RenderTimeout < 0 || c.FlashTTL < 0 {
		return fmt.Errorf("config error: timeouts must be positive")
	}
	if c.MaxUploadBytes < 0 {
		return fmt.Errorf("config error: 'max_upload_bytes' must be non-negative")
	}

	switch c.ContactDelivery {
	case "", DeliveryNotify:
	case DeliveryStore:
		if c.DatabaseURL == "" {
			return fmt.Errorf("config error: contact delivery %q requires 'database_url'", DeliveryStore)
		}
	default:
		return fmt.Errorf("config error: unknown contact delivery %q", c.ContactDelivery)
	}

	return nil
}

// MergeWithDefaults returns a new Config with zero fields filled from defaults,
// then from the package defaults.
func (c *Config) MergeWithDefaults(defaults Config) Config {
	result := *c

	if result.APIBaseURL == "" {
		result.APIBaseURL = defaults.APIBaseURL
	}
	if result.SessionSecret == "" {
		result.SessionSecret = defaults.SessionSecret
	}
	if result.DatabaseURL == "" {
		result.DatabaseURL = defaults.DatabaseURL
	}
	if result.ContactDelivery == "" {
		result.ContactDelivery = defaults.ContactDelivery
	}
	if result.Port == 0 {
		result.Port = defaults.Port
	}
	if result.APITimeout == 0 {
		result.APITimeout = defaults.APITimeout
	}
	if result.RenderTimeout == 0 {
		result.RenderTimeout = defaults.RenderTimeout
	}
	if result.FlashTTL == 0 {
		result.FlashTTL = defaults.FlashTTL
	}
	if result.MaxUploadBytes == 0 {
		result.MaxUploadBytes = defaults.MaxUploadBytes
	}

	result.APIBaseURL = strings.TrimRight(result.APIBaseURL, "/")
	result.fillBuiltins()
	return result
}

func (c *Config) fillBuiltins() {
	if c.Port == 0 {
		c.Port = DefaultPort
	}
	if c.APITimeout == 0 {
		c.APITimeout = Duration(DefaultAPITimeout)
	}
	if c.RenderTimeout == 0 {
		c.RenderTimeout = Duration(DefaultRenderTimeout)
	}
	if c.FlashTTL == 0 {
		c.FlashTTL = Duration(DefaultFlashTTL)
	}
	if c.MaxUploadBytes == 0 {
		c.MaxUploadBytes = DefaultMaxUploadBytes
	}
	if c.ContactDelivery == "" {
		c.ContactDelivery = DeliveryNotify
	}
}

// getEnvString gets an environment variable as a string with a default value.
func getEnvString(key string, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getEnvInt gets an environment variable as an integer with a default value.
func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

// getEnvDuration gets an environment variable as a duration with a default value.
func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if duration, err := time.ParseDuration(value); err == nil {
			return duration
		}
	}
	return defaultValue
}

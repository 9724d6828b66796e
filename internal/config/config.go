// Package config loads and validates the clipnote configuration. Values are
// loaded once at process start from .env files, environment variables, and
// an optional config file, then held immutably for the run's duration.
package config

import (
	"os"
	"sort"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	"github.com/clipnote/clipnote/pkg/catalog"
	"github.com/clipnote/clipnote/pkg/errors"
	"github.com/clipnote/clipnote/pkg/sync"
)

// Config holds everything a sync run needs. All fields are read-only after
// Load returns.
type Config struct {
	// Remote API credentials
	YouTubeAPIKey string
	NotionToken   string

	// Notion database identifiers
	VideoDatabaseID   string
	ChannelDatabaseID string

	// Sync behavior
	Timezone  string
	BatchSize int

	// Logging configuration
	LogLevel  string
	LogFormat string
}

// Load reads configuration from all sources in order of precedence:
// environment variables, .env files, an optional config file
// (.clipnote.yaml in the working directory or home), then defaults.
func Load() (*Config, error) {
	loadEnvFiles()

	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))

	// Search for config in standard locations
	viper.SetConfigType("yaml")
	viper.SetConfigName(".clipnote")
	viper.AddConfigPath(".")
	if home, err := os.UserHomeDir(); err == nil {
		viper.AddConfigPath(home)
	}

	// Read config file (ignore error if not found)
	_ = viper.ReadInConfig()

	cfg := &Config{
		YouTubeAPIKey:     viper.GetString("YOUTUBE_API_KEY"),
		NotionToken:       viper.GetString("NOTION_API_KEY"),
		VideoDatabaseID:   viper.GetString("NOTION_VIDEO_DATABASE_ID"),
		ChannelDatabaseID: viper.GetString("NOTION_CHANNEL_DATABASE_ID"),

		Timezone:  viper.GetString("CLIPNOTE_TIMEZONE"),
		BatchSize: viper.GetInt("CLIPNOTE_BATCH_SIZE"),

		LogLevel:  getEnvOrDefault("LOG_LEVEL", "info"),
		LogFormat: getEnvOrDefault("LOG_FORMAT", "auto"),
	}

	if cfg.Timezone == "" {
		cfg.Timezone = catalog.DefaultTimezone
	}
	if cfg.BatchSize == 0 {
		cfg.BatchSize = sync.DefaultBatchSize
	}

	return cfg, nil
}

// Validate reports every missing required field at once. A failed validation
// halts the run before any remote call.
func (c *Config) Validate() error {
	var missing []string
	for name, value := range map[string]string{
		"YOUTUBE_API_KEY":            c.YouTubeAPIKey,
		"NOTION_API_KEY":             c.NotionToken,
		"NOTION_VIDEO_DATABASE_ID":   c.VideoDatabaseID,
		"NOTION_CHANNEL_DATABASE_ID": c.ChannelDatabaseID,
	} {
		if value == "" {
			missing = append(missing, name)
		}
	}

	if len(missing) > 0 {
		return errors.NewConfigError("clipnote",
			"missing required settings: "+joinSorted(missing), errors.ErrAPIKeyRequired)
	}

	if c.BatchSize < 1 || c.BatchSize > sync.DefaultBatchSize {
		return errors.NewConfigError("clipnote", "CLIPNOTE_BATCH_SIZE must be between 1 and 50", nil)
	}

	return nil
}

// loadEnvFiles loads environment variables from .env files.
// .env.local overrides .env.
func loadEnvFiles() {
	for _, envFile := range []string{".env", ".env.local"} {
		if _, err := os.Stat(envFile); err == nil {
			_ = godotenv.Overload(envFile)
		}
	}
}

func getEnvOrDefault(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func joinSorted(names []string) string {
	// The map above iterates in random order; keep the message stable.
	sort.Strings(names)
	return strings.Join(names, ", ")
}

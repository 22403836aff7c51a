package config

import (
	"os"
	"strconv"

	"github.com/hasnatAfzal/LinkdinScrapper/internal/constants"
	"github.com/hasnatAfzal/LinkdinScrapper/internal/util"
	"github.com/hasnatAfzal/LinkdinScrapper/pkg/errors"
	"github.com/joho/godotenv"
)

type Config struct {
	Google  GoogleConfig
	Search  SearchConfig
	Export  ExportConfig
	Logging LoggingConfig
}

// GoogleConfig carries the Custom Search credentials. There are no embedded
// defaults: both values must come from the environment or a .env file.
type GoogleConfig struct {
	APIKey         string
	SearchEngineID string
}

type SearchConfig struct {
	MaxPages     int
	DelaySeconds int
	SiteFilter   string
	Language     string
	Country      string
}

type ExportConfig struct {
	OutputDir string
}

type LoggingConfig struct {
	Level string
	File  string
}

func Load() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{
		Google: GoogleConfig{
			APIKey:         getEnv("GOOGLE_API_KEY", ""),
			SearchEngineID: getEnv("GOOGLE_CSE_ID", ""),
		},
		Search: SearchConfig{
			MaxPages: util.Clamp(getEnvInt("SEARCH_MAX_PAGES", 3),
				constants.SearchConfig.MinPages, constants.SearchConfig.MaxPages),
			DelaySeconds: util.Clamp(getEnvInt("SEARCH_DELAY_SECONDS", 5),
				constants.SearchConfig.MinDelay, constants.SearchConfig.MaxDelay),
			SiteFilter: getEnv("SEARCH_SITE_FILTER", "linkedin.com/in"),
			Language:   getEnv("SEARCH_LANGUAGE", ""),
			Country:    getEnv("SEARCH_COUNTRY", ""),
		},
		Export: ExportConfig{
			OutputDir: getEnv("EXPORT_DIR", "."),
		},
		Logging: LoggingConfig{
			Level: getEnv("LOG_LEVEL", "info"),
			File:  getEnv("LOG_FILE", ""),
		},
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func (c *Config) Validate() error {
	if c.Google.APIKey == "" {
		return errors.NewConfigError("GOOGLE_API_KEY is required", "GOOGLE_API_KEY")
	}
	if c.Google.SearchEngineID == "" {
		return errors.NewConfigError("GOOGLE_CSE_ID is required", "GOOGLE_CSE_ID")
	}
	return nil
}

// ExtraParams returns the passthrough query parameters (language/region
// filters) to forward verbatim on every search request.
func (c SearchConfig) ExtraParams() map[string]string {
	params := make(map[string]string)
	if c.Language != "" {
		params["lr"] = c.Language
	}
	if c.Country != "" {
		params["gl"] = c.Country
	}
	return params
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return defaultValue
}

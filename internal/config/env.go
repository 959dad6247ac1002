package config

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"

	"searchgrip/internal/domain"
)

// Environment variables that override the file configuration
const (
	EnvAPIURL     = "SEARCHGRIP_API_URL"
	EnvAPIKey     = "SEARCHGRIP_API_KEY"
	EnvCollection = "SEARCHGRIP_COLLECTION"
	EnvSearchType = "SEARCHGRIP_SEARCH_TYPE"
)

// ApplyEnv overlays values from an optional dotenv file and then the
// process environment onto cfg. Process variables win over the file.
// A missing envFile is not an error.
func ApplyEnv(cfg *Config, envFile string) error {
	values := map[string]string{}
	if envFile != "" {
		fileValues, err := godotenv.Read(envFile)
		if err != nil && !os.IsNotExist(err) {
			return fmt.Errorf("failed to read env file %s: %w", envFile, err)
		}
		for k, v := range fileValues {
			values[k] = v
		}
	}
	for _, key := range []string{EnvAPIURL, EnvAPIKey, EnvCollection, EnvSearchType} {
		if v, ok := os.LookupEnv(key); ok {
			values[key] = v
		}
	}

	if v := values[EnvAPIURL]; v != "" {
		cfg.Backend.URL = v
	}
	if v := values[EnvAPIKey]; v != "" {
		cfg.Backend.APIKey = v
	}
	if v := values[EnvCollection]; v != "" {
		cfg.Backend.Collection = v
	}
	if v := values[EnvSearchType]; v != "" {
		cfg.Backend.SearchType = string(domain.ParseSearchType(v))
	}
	return nil
}

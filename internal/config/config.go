package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml/v2"

	"searchgrip/internal/domain"
	"searchgrip/internal/eventbus"
)

// ErrConfigNotFound is returned by LoadFromPath when the file does not exist
var ErrConfigNotFound = errors.New("config file not found")

// Config represents the application configuration
type Config struct {
	Version    int             `toml:"version"`
	Backend    BackendSettings `toml:"backend"`
	UISettings UISettings      `toml:"ui"`
	Sources    []string        `toml:"sources,omitempty"` // default source filter, empty means all
}

// BackendSettings describes how to reach the search backend
type BackendSettings struct {
	URL            string `toml:"url"`
	APIKey         string `toml:"api_key,omitempty"`
	Collection     string `toml:"collection"`
	SearchType     string `toml:"search_type"`
	TimeoutSeconds int    `toml:"timeout_seconds"`
	ResultLimit    int    `toml:"result_limit"`
}

// UISettings represents UI-related configuration
type UISettings struct {
	BaselineHeight int    `toml:"baseline_height"` // rows of an empty search box
	MaxHeight      int    `toml:"max_height"`      // rows the search box may grow to
	Placeholder    string `toml:"placeholder"`
	ShowBlurbs     bool   `toml:"show_blurbs"`
	LogLevel       string `toml:"log_level"`
}

// ConfigService handles configuration management
type ConfigService interface {
	Load() (*Config, error)
	Save(config *Config) error
	LoadFromPath(path string) (*Config, error)
	SaveToPath(config *Config, path string) error
}

// configService is the concrete implementation
type configService struct {
	bus      eventbus.EventBus
	filePath string
}

// DefaultPath returns the per-user config location
func DefaultPath() string {
	configDir, err := os.UserConfigDir()
	if err != nil {
		configDir, err = os.UserHomeDir()
		if err != nil {
			configDir = "."
		}
		configDir = filepath.Join(configDir, ".config")
	}
	return filepath.Join(configDir, "searchgrip", "config.toml")
}

// NewConfigService creates a config service reading and writing filePath.
// An empty path uses DefaultPath.
func NewConfigService(filePath string) ConfigService {
	if filePath == "" {
		filePath = DefaultPath()
	}
	return &configService{filePath: filePath}
}

// NewConfigServiceWithBus creates a config service with event bus support
func NewConfigServiceWithBus(filePath string, bus eventbus.EventBus) ConfigService {
	cs := NewConfigService(filePath).(*configService)
	cs.bus = bus
	return cs
}

// Load loads the configuration from the service's file, falling back to
// defaults when it does not exist yet
func (cs *configService) Load() (*Config, error) {
	cfg, err := cs.LoadFromPath(cs.filePath)
	if errors.Is(err, ErrConfigNotFound) {
		cfg = DefaultConfig()
	} else if err != nil {
		return nil, err
	}

	if cs.bus != nil {
		cs.bus.Publish(eventbus.ConfigLoadedEvent{
			BackendURL: cfg.Backend.URL,
			SearchType: domain.ParseSearchType(cfg.Backend.SearchType),
		})
	}

	return cfg, nil
}

// Save saves the configuration to the service's file
func (cs *configService) Save(config *Config) error {
	if err := cs.SaveToPath(config, cs.filePath); err != nil {
		return err
	}

	if cs.bus != nil {
		cs.bus.Publish(eventbus.ConfigSavedEvent{})
	}

	return nil
}

// LoadFromPath loads configuration from a specific path. Missing fields
// keep their default values.
func (cs *configService) LoadFromPath(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return nil, fmt.Errorf("%w: %s", ErrConfigNotFound, path)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	cfg := DefaultConfig()
	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	cfg.normalize()

	return cfg, nil
}

// SaveToPath saves configuration to a specific path
func (cs *configService) SaveToPath(config *Config, path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := toml.Marshal(config)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// DefaultConfig returns the default configuration
func DefaultConfig() *Config {
	return &Config{
		Version: 1,
		Backend: BackendSettings{
			URL:            "http://localhost:8080",
			Collection:     "danswer_index",
			SearchType:     string(domain.SearchKeyword),
			TimeoutSeconds: 10,
			ResultLimit:    20,
		},
		UISettings: UISettings{
			BaselineHeight: 1,
			MaxHeight:      8,
			Placeholder:    "Search your documents...",
			ShowBlurbs:     true,
			LogLevel:       "info",
		},
	}
}

// SourceFilter parses the configured default sources, skipping unknown names
func (c *Config) SourceFilter() ([]domain.DocumentSource, []error) {
	var sources []domain.DocumentSource
	var errs []error
	for _, name := range c.Sources {
		s, err := domain.ParseSource(name)
		if err != nil {
			errs = append(errs, err)
			continue
		}
		sources = append(sources, s)
	}
	return sources, errs
}

// normalize repairs values a hand-edited file may have broken
func (c *Config) normalize() {
	defaults := DefaultConfig()
	if c.UISettings.BaselineHeight < 1 {
		c.UISettings.BaselineHeight = defaults.UISettings.BaselineHeight
	}
	if c.UISettings.MaxHeight < c.UISettings.BaselineHeight {
		c.UISettings.MaxHeight = c.UISettings.BaselineHeight
	}
	if c.Backend.TimeoutSeconds <= 0 {
		c.Backend.TimeoutSeconds = defaults.Backend.TimeoutSeconds
	}
	if c.Backend.ResultLimit <= 0 {
		c.Backend.ResultLimit = defaults.Backend.ResultLimit
	}
	c.Backend.SearchType = string(domain.ParseSearchType(c.Backend.SearchType))
}

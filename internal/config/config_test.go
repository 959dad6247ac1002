package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"searchgrip/internal/domain"
	"searchgrip/internal/eventbus"
)

func TestSaveAndLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.toml")
	cs := NewConfigService(path)

	cfg := DefaultConfig()
	cfg.Backend.URL = "http://search.internal:9000"
	cfg.Backend.SearchType = "semantic"
	cfg.Sources = []string{"slack", "jira"}
	require.NoError(t, cs.Save(cfg))

	loaded, err := cs.Load()
	require.NoError(t, err)
	assert.Equal(t, cfg, loaded)
}

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	cs := NewConfigService(filepath.Join(t.TempDir(), "absent.toml"))

	cfg, err := cs.Load()
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), cfg)

	_, err = cs.LoadFromPath(filepath.Join(t.TempDir(), "absent.toml"))
	require.ErrorIs(t, err, ErrConfigNotFound)
}

func TestLoadPartialFileKeepsDefaultsAndNormalizes(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	content := `
[backend]
url = "http://example.test"
search_type = "fuzzy"
timeout_seconds = -1

[ui]
baseline_height = 0
max_height = 0
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	cfg, err := NewConfigService(path).Load()
	require.NoError(t, err)
	assert.Equal(t, "http://example.test", cfg.Backend.URL)
	assert.Equal(t, "danswer_index", cfg.Backend.Collection)
	assert.Equal(t, string(domain.SearchKeyword), cfg.Backend.SearchType)
	assert.Equal(t, 10, cfg.Backend.TimeoutSeconds)
	assert.Equal(t, 1, cfg.UISettings.BaselineHeight)
	assert.Equal(t, 1, cfg.UISettings.MaxHeight)
}

func TestLoadInvalidToml(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte("version = ["), 0644))

	_, err := NewConfigService(path).Load()
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrConfigNotFound)
}

func TestLoadPublishesEvent(t *testing.T) {
	bus := eventbus.New()
	defer bus.Close()

	got := make(chan eventbus.DomainEvent, 1)
	bus.Subscribe(eventbus.EventConfigLoaded, func(e eventbus.DomainEvent) {
		got <- e
	})

	cs := NewConfigServiceWithBus(filepath.Join(t.TempDir(), "config.toml"), bus)
	_, err := cs.Load()
	require.NoError(t, err)

	select {
	case e := <-got:
		ev := e.(eventbus.ConfigLoadedEvent)
		assert.Equal(t, "http://localhost:8080", ev.BackendURL)
		assert.Equal(t, domain.SearchKeyword, ev.SearchType)
	case <-time.After(time.Second):
		t.Fatal("ConfigLoaded not published")
	}
}

func TestSourceFilter(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Sources = []string{"slack", "nope", "Google Drive"}

	sources, errs := cfg.SourceFilter()
	assert.Equal(t, []domain.DocumentSource{domain.SourceSlack, domain.SourceGoogleDrive}, sources)
	assert.Len(t, errs, 1)
}

func TestApplyEnv(t *testing.T) {
	envFile := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(envFile, []byte(
		"SEARCHGRIP_API_URL=http://from-file\nSEARCHGRIP_COLLECTION=file_collection\n"), 0644))
	t.Setenv(EnvCollection, "env_collection")
	t.Setenv(EnvSearchType, "semantic")

	cfg := DefaultConfig()
	require.NoError(t, ApplyEnv(cfg, envFile))

	assert.Equal(t, "http://from-file", cfg.Backend.URL)
	assert.Equal(t, "env_collection", cfg.Backend.Collection)
	assert.Equal(t, "semantic", cfg.Backend.SearchType)
	assert.Empty(t, cfg.Backend.APIKey)
}

func TestApplyEnvMissingFile(t *testing.T) {
	cfg := DefaultConfig()
	require.NoError(t, ApplyEnv(cfg, filepath.Join(t.TempDir(), "missing.env")))
	assert.Equal(t, DefaultConfig().Backend, cfg.Backend)
}

package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validConfig() Config {
	var cfg Config
	cfg.App.Port = 38471
	cfg.App.Bucket = "job-data"
	cfg.HackerNews.MonthsBack = 1
	cfg.HackerNews.MaxRetries = 3
	return cfg
}

func TestLoad_ParsesYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yml")
	require.NoError(t, os.WriteFile(path, []byte(`
app:
  port: 38471
  bucket: job-data
hackernews:
  months_back: 1
  max_retries: 3
  retry_delay_seconds: 2
  fetch_pause_millis: 100
sources:
  adzuna:
    enabled: true
    country: us
    keywords: ["python developer", "data engineer"]
    results_per_page: 50
  jooble:
    enabled: false
limits:
  requests_per_sec: 2.0
  burst: 1
`), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 38471, cfg.App.Port)
	assert.Equal(t, "job-data", cfg.App.Bucket)
	assert.Equal(t, 1, cfg.HackerNews.MonthsBack)
	assert.True(t, cfg.Sources.Adzuna.Enabled)
	assert.Equal(t, []string{"python developer", "data engineer"}, cfg.Sources.Adzuna.Keywords)
	assert.False(t, cfg.Sources.Jooble.Enabled)
	assert.Equal(t, 2.0, cfg.Limits.RequestsPerSec)
}

func TestValidate(t *testing.T) {
	require.NoError(t, Validate(validConfig()))

	t.Run("bad port", func(t *testing.T) {
		cfg := validConfig()
		cfg.App.Port = 0
		err := Validate(cfg)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "app.port")
	})

	t.Run("missing bucket", func(t *testing.T) {
		cfg := validConfig()
		cfg.App.Bucket = ""
		err := Validate(cfg)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "app.bucket")
	})

	t.Run("months back below one", func(t *testing.T) {
		cfg := validConfig()
		cfg.HackerNews.MonthsBack = 0
		err := Validate(cfg)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "months_back")
	})

	t.Run("enabled source needs terms", func(t *testing.T) {
		cfg := validConfig()
		cfg.Sources.Adzuna.Enabled = true
		err := Validate(cfg)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "adzuna.keywords")
	})

	t.Run("rate without burst", func(t *testing.T) {
		cfg := validConfig()
		cfg.Limits.RequestsPerSec = 2.0
		cfg.Limits.Burst = 0
		err := Validate(cfg)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "limits.burst")
	})

	t.Run("no rate limit at all is fine", func(t *testing.T) {
		cfg := validConfig()
		cfg.Limits.RequestsPerSec = 0
		cfg.Limits.Burst = 0
		assert.NoError(t, Validate(cfg))
	})

	t.Run("disabled source may be empty", func(t *testing.T) {
		cfg := validConfig()
		cfg.Sources.Adzuna.Enabled = false
		assert.NoError(t, Validate(cfg))
	})
}

func TestSaveAtomic_RoundTripAndBackup(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yml")

	cfg := validConfig()
	require.NoError(t, SaveAtomic(path, cfg))

	loaded, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, cfg, loaded)

	cfg.App.Port = 38472
	require.NoError(t, SaveAtomic(path, cfg))

	// Previous version kept as .bak, no stray .tmp left behind.
	_, err = os.Stat(path + ".bak")
	assert.NoError(t, err)
	_, err = os.Stat(path + ".tmp")
	assert.True(t, os.IsNotExist(err))

	loaded, err = Load(path)
	require.NoError(t, err)
	assert.Equal(t, 38472, loaded.App.Port)
}

func TestSaveAtomic_RejectsInvalidConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yml")

	cfg := validConfig()
	cfg.App.Bucket = ""
	require.Error(t, SaveAtomic(path, cfg))

	_, err := os.Stat(path)
	assert.True(t, os.IsNotExist(err), "invalid config must not be written")
}

func TestEnsureUserConfig(t *testing.T) {
	dataDir := t.TempDir()
	defaultPath := filepath.Join(t.TempDir(), "default.yml")
	require.NoError(t, os.WriteFile(defaultPath, []byte("app:\n  port: 1\n"), 0o644))

	userPath, err := EnsureUserConfig(dataDir, defaultPath)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dataDir, "config.yml"), userPath)

	b, err := os.ReadFile(userPath)
	require.NoError(t, err)
	assert.Contains(t, string(b), "port: 1")

	// Second call must not clobber user edits.
	require.NoError(t, os.WriteFile(userPath, []byte("app:\n  port: 2\n"), 0o644))
	again, err := EnsureUserConfig(dataDir, defaultPath)
	require.NoError(t, err)
	assert.Equal(t, userPath, again)

	b, err = os.ReadFile(userPath)
	require.NoError(t, err)
	assert.Contains(t, string(b), "port: 2")
}

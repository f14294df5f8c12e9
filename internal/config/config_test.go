package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/palemoky/wordle/internal/game"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	configPath := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(configPath, []byte(content), 0o600))
	return configPath
}

func TestLoad_ValidConfig(t *testing.T) {
	t.Parallel()

	content := `
words:
  source_url: "http://localhost:8087/word?number=1&length=5"
  checker_url: "http://localhost:8087/words"
  score_threshold: 1000
  timeout: 2
  fallback_file: "words.txt"

game:
  max_attempts: 8
  scoring: naive

redis:
  enabled: true
  addr: "redis:6379"
  password: "secret"
  db: 1
  ttl_hours: 48

sound:
  muted: true
  dir: "/tmp/sounds"

log:
  dir: "/tmp/wordle"
  level: debug
`
	cfg, err := Load(writeConfig(t, content))
	require.NoError(t, err)
	require.NotNil(t, cfg)

	assert.Equal(t, "http://localhost:8087/word?number=1&length=5", cfg.Words.SourceURL)
	assert.Equal(t, "http://localhost:8087/words", cfg.Words.CheckerURL)
	assert.Equal(t, 1000.0, cfg.Words.ScoreThreshold)
	assert.Equal(t, 2*time.Second, cfg.Words.TimeoutDuration())
	assert.Equal(t, "words.txt", cfg.Words.FallbackFile)
	assert.Equal(t, 8, cfg.Game.MaxAttempts)
	assert.True(t, cfg.Redis.Enabled)
	assert.Equal(t, "redis:6379", cfg.Redis.Addr)
	assert.Equal(t, "secret", cfg.Redis.Password)
	assert.Equal(t, 1, cfg.Redis.DB)
	assert.Equal(t, 48*time.Hour, cfg.Redis.TTLDuration())
	assert.True(t, cfg.Sound.Muted)
	assert.Equal(t, "/tmp/sounds", cfg.Sound.Dir)
	assert.Equal(t, "/tmp/wordle", cfg.Log.Dir)
	assert.Equal(t, "debug", cfg.Log.Level)

	mode, err := cfg.Game.ScoringMode()
	require.NoError(t, err)
	assert.Equal(t, game.ScoringNaive, mode)
}

func TestLoad_FileNotFound(t *testing.T) {
	t.Parallel()

	cfg, err := Load("/nonexistent/path/config.yaml")
	assert.Error(t, err)
	assert.Nil(t, cfg)
}

func TestLoad_InvalidYAML(t *testing.T) {
	t.Parallel()

	cfg, err := Load(writeConfig(t, "invalid: yaml: :::"))
	assert.Error(t, err)
	assert.Nil(t, cfg)
}

func TestLoad_InvalidValues(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		content string
	}{
		{"unknown scoring", "game:\n  scoring: fancy\n"},
		{"negative attempts", "game:\n  max_attempts: -1\n"},
		{"negative timeout", "words:\n  timeout: -3\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			cfg, err := Load(writeConfig(t, tt.content))
			assert.Error(t, err)
			assert.Nil(t, cfg)
		})
	}
}

func TestLoad_AppliesDefaults(t *testing.T) {
	t.Parallel()

	cfg, err := Load(writeConfig(t, `{}`))
	require.NoError(t, err)
	require.NotNil(t, cfg)

	assert.Equal(t, defaultSourceURL, cfg.Words.SourceURL)
	assert.Equal(t, defaultCheckerURL, cfg.Words.CheckerURL)
	assert.Equal(t, float64(defaultScoreThreshold), cfg.Words.ScoreThreshold)
	assert.Equal(t, defaultTimeout, cfg.Words.Timeout)
	assert.Equal(t, game.DefaultMaxAttempts, cfg.Game.MaxAttempts)
	assert.Equal(t, defaultScoring, cfg.Game.Scoring)
	assert.False(t, cfg.Redis.Enabled)
	assert.Equal(t, defaultRedisAddr, cfg.Redis.Addr)
	assert.Equal(t, defaultVerdictTTL, cfg.Redis.TTL)
	assert.Equal(t, defaultSoundDir, cfg.Sound.Dir)
	assert.Equal(t, defaultLogLevel, cfg.Log.Level)
}

func TestDefault(t *testing.T) {
	// Note: Not parallel because Default() reads the environment

	cfg := Default()
	require.NotNil(t, cfg)
	require.NoError(t, cfg.Validate())

	assert.Equal(t, game.DefaultMaxAttempts, cfg.Game.MaxAttempts)
	assert.Equal(t, defaultCheckerURL, cfg.Words.CheckerURL)
}

func TestLoadFromEnv(t *testing.T) {
	// Not parallel because it modifies environment variables

	t.Setenv("WORDLE_WORD_SOURCE_URL", "http://env-host/word")
	t.Setenv("WORDLE_MAX_ATTEMPTS", "4")
	t.Setenv("WORDLE_REDIS_ENABLED", "true")
	t.Setenv("WORDLE_REDIS_ADDR", "env-redis:6380")
	t.Setenv("WORDLE_SCORE_THRESHOLD", "12.5")

	cfg, err := Load(writeConfig(t, "game:\n  max_attempts: 9\n"))
	require.NoError(t, err)
	require.NotNil(t, cfg)

	assert.Equal(t, "http://env-host/word", cfg.Words.SourceURL)
	assert.Equal(t, 4, cfg.Game.MaxAttempts)
	assert.True(t, cfg.Redis.Enabled)
	assert.Equal(t, "env-redis:6380", cfg.Redis.Addr)
	assert.Equal(t, 12.5, cfg.Words.ScoreThreshold)
}

func TestDefault_BadEnvKeepsDefaults(t *testing.T) {
	t.Setenv("WORDLE_MAX_ATTEMPTS", "lots")

	cfg := Default()
	assert.Equal(t, game.DefaultMaxAttempts, cfg.Game.MaxAttempts)
}

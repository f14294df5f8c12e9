package config

import (
	"fmt"
	"os"
	"time"

	"github.com/caarlos0/env/v11"
	"gopkg.in/yaml.v3"

	"github.com/palemoky/wordle/internal/game"
)

const (
	defaultSourceURL      = "https://random-word-api.herokuapp.com/word?number=1&length=5"
	defaultCheckerURL     = "https://api.datamuse.com/words"
	defaultScoreThreshold = 50000
	defaultTimeout        = 5
	defaultMaxAttempts    = game.DefaultMaxAttempts
	defaultScoring        = "standard"
	defaultRedisAddr      = "localhost:6379"
	defaultVerdictTTL     = 24
	defaultSoundDir       = "assets/sounds"
	defaultLogLevel       = "info"
)

// Config 客户端配置
type Config struct {
	Words WordsConfig `yaml:"words"`
	Game  GameConfig  `yaml:"game"`
	Redis RedisConfig `yaml:"redis"`
	Sound SoundConfig `yaml:"sound"`
	Log   LogConfig   `yaml:"log"`
}

// WordsConfig points at the word source and the validity service.
type WordsConfig struct {
	SourceURL      string  `yaml:"source_url"      env:"WORDLE_WORD_SOURCE_URL"`
	CheckerURL     string  `yaml:"checker_url"     env:"WORDLE_CHECKER_URL"`
	ScoreThreshold float64 `yaml:"score_threshold" env:"WORDLE_SCORE_THRESHOLD"`
	Timeout        int     `yaml:"timeout"         env:"WORDLE_TIMEOUT"`       // 请求超时（秒）
	FallbackFile   string  `yaml:"fallback_file"   env:"WORDLE_FALLBACK_FILE"` // 本地备用词表，每行一个
}

// GameConfig 游戏配置
type GameConfig struct {
	MaxAttempts int    `yaml:"max_attempts" env:"WORDLE_MAX_ATTEMPTS"`
	Scoring     string `yaml:"scoring"      env:"WORDLE_SCORING"` // standard | naive
}

// RedisConfig Redis 配置，用于缓存单词校验结果
type RedisConfig struct {
	Enabled  bool   `yaml:"enabled"   env:"WORDLE_REDIS_ENABLED"`
	Addr     string `yaml:"addr"      env:"WORDLE_REDIS_ADDR"`
	Password string `yaml:"password"  env:"WORDLE_REDIS_PASSWORD"`
	DB       int    `yaml:"db"        env:"WORDLE_REDIS_DB"`
	TTL      int    `yaml:"ttl_hours" env:"WORDLE_REDIS_TTL_HOURS"`
}

// SoundConfig 音效配置
type SoundConfig struct {
	Muted bool   `yaml:"muted" env:"WORDLE_SOUND_MUTED"`
	Dir   string `yaml:"dir"   env:"WORDLE_SOUND_DIR"`
}

// LogConfig 日志配置
type LogConfig struct {
	Dir   string `yaml:"dir"   env:"WORDLE_LOG_DIR"` // 默认 ~/.wordle
	Level string `yaml:"level" env:"WORDLE_LOG_LEVEL"`
}

// TimeoutDuration 返回请求超时时长
func (c *WordsConfig) TimeoutDuration() time.Duration {
	return time.Duration(c.Timeout) * time.Second
}

// TTLDuration 返回校验结果缓存时长
func (c *RedisConfig) TTLDuration() time.Duration {
	return time.Duration(c.TTL) * time.Hour
}

// ScoringMode parses Scoring.
func (c *GameConfig) ScoringMode() (game.Scoring, error) {
	return game.ParseScoring(c.Scoring)
}

// Load reads a YAML file, fills in defaults and applies environment
// overrides.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, err
	}

	applyDefaults(&cfg)
	if err := env.Parse(&cfg); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Default 返回默认配置（含环境变量覆盖）
func Default() *Config {
	var cfg Config
	applyDefaults(&cfg)
	overridden := cfg
	if err := env.Parse(&overridden); err == nil && overridden.Validate() == nil {
		return &overridden
	}
	return &cfg
}

// Validate rejects values the game cannot run with.
func (c *Config) Validate() error {
	if c.Game.MaxAttempts < 1 {
		return fmt.Errorf("game.max_attempts must be at least 1, got %d", c.Game.MaxAttempts)
	}
	if _, err := c.Game.ScoringMode(); err != nil {
		return fmt.Errorf("game.scoring: %w", err)
	}
	if c.Words.Timeout < 1 {
		return fmt.Errorf("words.timeout must be at least 1 second, got %d", c.Words.Timeout)
	}
	return nil
}

func applyDefaults(cfg *Config) {
	if cfg.Words.SourceURL == "" {
		cfg.Words.SourceURL = defaultSourceURL
	}
	if cfg.Words.CheckerURL == "" {
		cfg.Words.CheckerURL = defaultCheckerURL
	}
	if cfg.Words.ScoreThreshold == 0 {
		cfg.Words.ScoreThreshold = defaultScoreThreshold
	}
	if cfg.Words.Timeout == 0 {
		cfg.Words.Timeout = defaultTimeout
	}
	if cfg.Game.MaxAttempts == 0 {
		cfg.Game.MaxAttempts = defaultMaxAttempts
	}
	if cfg.Game.Scoring == "" {
		cfg.Game.Scoring = defaultScoring
	}
	if cfg.Redis.Addr == "" {
		cfg.Redis.Addr = defaultRedisAddr
	}
	if cfg.Redis.TTL == 0 {
		cfg.Redis.TTL = defaultVerdictTTL
	}
	if cfg.Sound.Dir == "" {
		cfg.Sound.Dir = defaultSoundDir
	}
	if cfg.Log.Level == "" {
		cfg.Log.Level = defaultLogLevel
	}
}

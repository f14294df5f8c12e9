package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/joho/godotenv"

	"github.com/palemoky/wordle/internal/config"
	"github.com/palemoky/wordle/internal/logger"
	"github.com/palemoky/wordle/internal/sound"
	"github.com/palemoky/wordle/internal/storage"
	"github.com/palemoky/wordle/internal/ui"
	"github.com/palemoky/wordle/internal/words"
)

func main() {
	configPath := flag.String("config", "configs/config.yaml", "配置文件路径")
	flag.Parse()

	_ = godotenv.Load()

	// 加载配置
	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Printf("加载配置文件失败，使用默认配置: %v", err)
		cfg = config.Default()
	}

	if err := logger.Init(cfg.Log.Dir, cfg.Log.Level); err != nil {
		log.Printf("日志初始化失败: %v", err)
	}
	defer logger.Close()

	defer func() {
		if r := recover(); r != nil {
			logger.LogPanic(r)
			panic(r)
		}
	}()

	deps, cleanup, err := buildDeps(context.Background(), cfg)
	if err != nil {
		logger.Close()
		log.Fatalf("初始化游戏失败: %v", err)
	}
	defer cleanup()

	if !cfg.Sound.Muted {
		sm := sound.NewSoundManager(cfg.Sound.Dir)
		go func() {
			if err := sm.Init(); err != nil {
				logger.LogError("sound init failed: %v", err)
			}
		}()
		defer sm.Close()
		deps.Sound = sm
	}

	p := tea.NewProgram(ui.New(deps), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		logger.LogError("program exited: %v", err)
		log.Fatalf("启动游戏时出错: %v", err)
	}
}

// buildDeps wires the word source, the checker (cached in Redis when
// enabled) and the game settings. cleanup releases the Redis client.
func buildDeps(ctx context.Context, cfg *config.Config) (ui.Deps, func(), error) {
	cleanup := func() {}

	scoring, err := cfg.Game.ScoringMode()
	if err != nil {
		return ui.Deps{}, cleanup, fmt.Errorf("game.scoring: %w", err)
	}
	timeout := cfg.Words.TimeoutDuration()

	source, err := newSource(cfg)
	if err != nil {
		return ui.Deps{}, cleanup, fmt.Errorf("read fallback list: %w", err)
	}

	var checker words.Checker = words.NewDatamuseChecker(cfg.Words.CheckerURL, cfg.Words.ScoreThreshold, timeout)
	if cfg.Redis.Enabled {
		client, err := storage.NewClient(ctx, storage.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		if err != nil {
			logger.LogError("redis unavailable, word checks are not cached: %v", err)
		} else {
			store := storage.NewRedisStore(client)
			cleanup = func() { _ = store.Close() }
			checker = words.NewCachedChecker(checker, store, cfg.Redis.TTLDuration())
		}
	}

	return ui.Deps{
		Source:      source,
		Checker:     checker,
		MaxAttempts: cfg.Game.MaxAttempts,
		Scoring:     scoring,
		Timeout:     timeout,
	}, cleanup, nil
}

// newSource prefers the remote word source and falls back to the local list.
func newSource(cfg *config.Config) (words.Source, error) {
	list := words.DefaultList()
	if cfg.Words.FallbackFile != "" {
		data, err := os.ReadFile(cfg.Words.FallbackFile)
		if err != nil {
			return nil, err
		}
		if parsed := words.ParseList(string(data)); len(parsed) > 0 {
			list = parsed
		}
	}

	return &words.FallbackSource{
		Primary:  words.NewHTTPSource(cfg.Words.SourceURL, cfg.Words.TimeoutDuration()),
		Fallback: words.NewListSource(list),
	}, nil
}

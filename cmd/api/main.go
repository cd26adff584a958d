package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"a2a-orchestrator/config"
	_ "a2a-orchestrator/docs" // Swagger docs
	"a2a-orchestrator/internal/httpserver"
	"a2a-orchestrator/internal/middleware"
	"a2a-orchestrator/internal/model"
	"a2a-orchestrator/internal/orchestrator/usecase"
	"a2a-orchestrator/internal/registry"
	"a2a-orchestrator/internal/session"
	"a2a-orchestrator/pkg/agents"
	"a2a-orchestrator/pkg/llmprovider"
	"a2a-orchestrator/pkg/log"
)

// @title       A2A Orchestrator API
// @description LLM-driven conversational orchestrator that classifies user intents and dispatches them to specialized agents.
// @version     1
// @host        localhost:8080
// @schemes     http
func main() {
	// 1. Configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Failed to load config: ", err)
		return
	}

	// 2. Logger
	logger := log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info(ctx, "Starting A2A Orchestrator...")
	logger.Infof(ctx, "Environment: %s", cfg.Environment.Name)
	logger.Infof(ctx, "Agents API: %s", cfg.Agents.BaseURL)

	// 3. LLM providers
	providers, err := llmprovider.InitializeProviders(&cfg.LLM)
	if err != nil {
		logger.Error(ctx, "Failed to initialize LLM providers: ", err)
		return
	}
	logger.Infof(ctx, "Initialized %d LLM provider(s)", len(providers))

	llmManager := llmprovider.NewManager(providers, &llmprovider.Config{
		FallbackEnabled: cfg.LLM.FallbackEnabled,
		RetryAttempts:   cfg.LLM.RetryAttempts,
		RetryDelay:      parseDuration(cfg.LLM.RetryDelay, time.Second),
		MaxTotalTimeout: parseDuration(cfg.LLM.MaxTotalTimeout, 60*time.Second),
	}, logger)

	// 4. Agents API client
	agentsClient := agents.NewClient(agents.Config{
		BaseURL: cfg.Agents.BaseURL,
		APIKey:  cfg.Agents.APIKey,
		Timeout: parseDuration(cfg.Agents.Timeout, agents.DefaultTimeout),
	})

	// 5. Session store
	var store session.Store
	switch cfg.Session.Store {
	case "lru":
		ttl := parseDuration(cfg.Session.TTL, time.Hour)
		store = session.NewLRU(cfg.Session.Capacity, ttl)
		logger.Infof(ctx, "Session store: lru (capacity=%d, ttl=%s)", cfg.Session.Capacity, ttl)
	default:
		store = session.NewMemory()
		logger.Info(ctx, "Session store: memory")
	}

	// 6. Agent registry
	reg := registry.Default()
	if len(cfg.Registry) > 0 {
		cards := make([]model.AgentCard, 0, len(cfg.Registry))
		for _, a := range cfg.Registry {
			cards = append(cards, model.AgentCard{
				Intent:        a.Intent,
				ID:            a.ID,
				Name:          a.Name,
				Description:   a.Description,
				RequiredSlots: a.RequiredSlots,
				SelfServe:     a.SelfServe,
			})
		}
		reg = registry.New(cards)
		logger.Infof(ctx, "Agent registry loaded from config: %d agent(s)", len(cards))
	}

	// 7. Orchestrator use case
	orchestratorUC := usecase.New(
		logger,
		llmManager,
		agentsClient,
		reg,
		store,
		cfg.Orchestrator.VoiceTone,
	)

	// 8. HTTP Server
	httpServer, err := httpserver.New(logger, httpserver.Config{
		Logger:         logger,
		Port:           cfg.HTTPServer.Port,
		Mode:           cfg.HTTPServer.Mode,
		Environment:    cfg.Environment.Name,
		OrchestratorUC: orchestratorUC,
		RateLimit: middleware.RateLimitConfig{
			RequestsPerSecond: cfg.RateLimit.RequestsPerSecond,
			Burst:             cfg.RateLimit.Burst,
		},
	})
	if err != nil {
		logger.Error(ctx, "Failed to initialize HTTP server: ", err)
		return
	}

	// 9. Run
	if err := httpServer.Run(); err != nil {
		logger.Error(ctx, "Failed to run server: ", err)
		return
	}

	logger.Info(ctx, "Server stopped gracefully")
}

func parseDuration(raw string, fallback time.Duration) time.Duration {
	if raw == "" {
		return fallback
	}
	d, err := time.ParseDuration(raw)
	if err != nil {
		return fallback
	}
	return d
}

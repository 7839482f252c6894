package main

import (
	"bot-chat/ai"
	"bot-chat/engine"
	"bot-chat/flow"
	"bot-chat/internal"
	"bot-chat/moderation"
	"bot-chat/repositories"
	"bot-chat/runtime/workers"
	"bot-chat/server"
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/Netflix/go-env"
	"github.com/dgraph-io/badger/v4"
	"github.com/joho/godotenv"
	"github.com/mama165/sdk-go/logs"
	"github.com/valyala/fasthttp"
)

// Exit codes to provide meaningful status to the service manager.
const (
	exitOK      = 0
	exitRuntime = 1
	exitConfig  = 2
)

func main() {
	code, err := run()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Server terminated with error: %v\n", err)
	}
	os.Exit(code)
}

// run wires storage, the flow engine and the HTTP surface, then blocks until a signal.
func run() (int, error) {
	// 1. Configuration & Logger
	_ = godotenv.Load()
	var config internal.ServerConfig
	if _, err := env.UnmarshalFromEnviron(&config); err != nil {
		return exitConfig, fmt.Errorf("config error: %w", err)
	}
	charReplacement, err := internal.CharacterRune(config.CharReplacement)
	if err != nil {
		return exitConfig, err
	}
	var seed []byte
	if config.FlowFile != "" {
		if seed, err = os.ReadFile(config.FlowFile); err != nil {
			return exitConfig, fmt.Errorf("flow file: %w", err)
		}
	}
	log := logs.GetLoggerFromString(config.LogLevel)

	// 2. Database (BadgerDB)
	db, err := badger.Open(badger.DefaultOptions(config.BadgerFilepath).WithLoggingLevel(badger.WARNING))
	if err != nil {
		return exitRuntime, fmt.Errorf("database opening failed: %w", err)
	}
	defer func() {
		log.Info("Closing BadgerDB...")
		_ = db.Close()
	}()

	// 3. Flow, engine and moderation
	repo := repositories.NewFlowRepository(db, log)
	holder := flow.NewHolder(log)
	if err := server.LoadActiveFlow(log, repo, holder, seed); err != nil {
		return exitRuntime, fmt.Errorf("active flow: %w", err)
	}

	var detector ai.IntentDetector = ai.NoopDetector{}
	if config.OpenAIAPIKey != "" {
		detector = ai.NewOpenAIDetector(log, &fasthttp.Client{}, ai.OpenAIConfig{
			APIKey:  config.OpenAIAPIKey,
			Model:   config.OpenAIModel,
			APIURL:  config.OpenAIAPIURL,
			Timeout: config.IntentTimeout,
		})
	}
	conversations := engine.NewEngine(log, holder, detector)

	var moderator *moderation.Moderator
	if words := config.Words(); len(words) > 0 {
		if moderator, err = moderation.NewModerator(words, charReplacement, log); err != nil {
			return exitConfig, fmt.Errorf("moderation: %w", err)
		}
	}

	// 4. HTTP surface
	metrics := server.NewMetrics()
	health := server.NewHealth(log, holder, repo)
	router := server.NewRouter(
		server.NewEndpoint(log, server.NewBotController(log, conversations, moderator, metrics), metrics, config.WriteTimeout),
		server.NewConfigAPI(log, repo, holder, metrics),
		health,
		metrics,
	)

	// 5. Supervision
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	sup := workers.NewSupervisor(log, config.RestartInterval).
		OnRestart(func(name string) { metrics.WorkerRestarts.WithLabelValues(name).Inc() })
	sup.Add(
		workers.NewHTTPServerWorker(log, config.Addr(), router),
		workers.NewHealthSamplerWorker(log, health, config.HealthInterval),
	)
	log.Info("Bot server starting", "addr", config.Addr())
	sup.Run(ctx)

	log.Info("Program stopped cleanly")
	return exitOK, nil
}

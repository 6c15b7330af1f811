package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/dgallion1/clauseparse/internal/api"
	"github.com/dgallion1/clauseparse/internal/config"
	"github.com/dgallion1/clauseparse/internal/llm"
	"github.com/dgallion1/clauseparse/internal/pipeline"
	"github.com/dgallion1/clauseparse/internal/rules"
	"github.com/dgallion1/clauseparse/internal/store"
	"github.com/joho/godotenv"
)

func main() {
	_ = godotenv.Load()

	log := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		log.Error("invalid configuration", "error", err)
		os.Exit(1)
	}

	heur, err := config.LoadHeuristics(cfg.HeuristicsPath)
	if err != nil {
		log.Error("failed to load heuristics", "path", cfg.HeuristicsPath, "error", err)
		os.Exit(1)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	db, err := store.Open(ctx, cfg.DBPath)
	if err != nil {
		log.Error("failed to open artifact store", "path", cfg.DBPath, "error", err)
		os.Exit(1)
	}

	var claude *llm.Client
	if cfg.UseLLM {
		claude = llm.NewClient(cfg.AnthropicAPIKey, cfg.AnthropicModel)
	}

	engine := rules.New(heur.VerbCues, heur.DateCues)

	orch := pipeline.NewOrchestrator(cfg, engine, claude, db, log)
	orch.Start(ctx)

	srv := api.NewServer(orch, log, cfg)

	httpServer := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      srv,
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 120 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Graceful shutdown.
	go func() {
		sigCh := make(chan os.Signal, 1)
		signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
		<-sigCh
		log.Info("shutting down...")

		orch.Stop()

		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer shutdownCancel()
		httpServer.Shutdown(shutdownCtx)

		if claude != nil {
			claude.Close()
		}
		db.Close()
	}()

	log.Info("starting clauseparse", "port", cfg.Port, "llm_enabled", cfg.UseLLM)
	if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.Error("server error", "error", err)
		os.Exit(1)
	}
}

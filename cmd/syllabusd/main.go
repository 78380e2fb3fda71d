package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/Ibraheem715/syllabus-to-calendar/internal/common"
	"github.com/Ibraheem715/syllabus-to-calendar/internal/llm"
	"github.com/Ibraheem715/syllabus-to-calendar/internal/llm/openai"
	"github.com/Ibraheem715/syllabus-to-calendar/internal/pipeline"
	"github.com/Ibraheem715/syllabus-to-calendar/internal/server"
	"github.com/Ibraheem715/syllabus-to-calendar/internal/store"
)

func main() {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))
	slog.SetDefault(logger)

	_ = godotenv.Load()
	cfg := common.LoadConfig()
	if err := cfg.Validate(); err != nil {
		// Keep serving so health checks pass; each extraction request will
		// report NOT_CONFIGURED until the credential shows up.
		logger.Warn("config incomplete", "error", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	st, err := store.Open(cfg.Store.DBPath, logger)
	if err != nil {
		logger.Error("open store", "path", cfg.Store.DBPath, "error", err)
		os.Exit(1)
	}
	defer st.Close()

	processor := pipeline.NewProcessor(logger, buildInvoker(cfg.LLM, logger), cfg.LLM.APIKey)
	srv := server.New(cfg.Server, processor, st, logger)

	go func() {
		if err := srv.Start(); err != nil {
			logger.Error("http serve", "error", err)
			stop()
		}
	}()

	<-ctx.Done()
	logger.Info("shutting down...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("shutdown", "error", err)
	}
	logger.Info("stopped")
}

func buildInvoker(cfg common.LLMConfig, logger *slog.Logger) llm.Invoker {
	primary := openai.NewClient(openai.Config{
		APIKey:      cfg.APIKey,
		BaseURL:     cfg.BaseURL,
		Model:       cfg.PrimaryModel,
		Temperature: cfg.Temperature,
		MaxTokens:   cfg.PrimaryMaxTokens,
		Timeout:     cfg.Timeout,
	}, logger)
	fallback := openai.NewClient(openai.Config{
		APIKey:      cfg.APIKey,
		BaseURL:     cfg.BaseURL,
		Model:       cfg.FallbackModel,
		Temperature: cfg.Temperature,
		MaxTokens:   cfg.FallbackMaxTokens,
		Timeout:     cfg.Timeout,
	}, logger)
	return llm.NewFallbackInvoker(primary, fallback, logger)
}

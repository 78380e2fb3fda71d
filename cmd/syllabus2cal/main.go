// syllabus2cal runs one extraction from the command line: a syllabus PDF
// in, the validated event list as JSON on stdout, optionally an .ics file.
package main

import (
	"context"
	"encoding/json"
	"flag"
	"log/slog"
	"os"
	"time"

	"github.com/joho/godotenv"

	"github.com/Ibraheem715/syllabus-to-calendar/internal/common"
	"github.com/Ibraheem715/syllabus-to-calendar/internal/export"
	"github.com/Ibraheem715/syllabus-to-calendar/internal/llm"
	"github.com/Ibraheem715/syllabus-to-calendar/internal/llm/openai"
	"github.com/Ibraheem715/syllabus-to-calendar/internal/pipeline"
)

func main() {
	icsPath := flag.String("ics", "", "also write an iCalendar file to this path")
	quiet := flag.Bool("quiet", false, "log errors only")
	flag.Parse()

	level := slog.LevelInfo
	if *quiet {
		level = slog.LevelError
	}
	logger := slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(logger)

	if flag.NArg() != 1 {
		logger.Error("usage: syllabus2cal [-ics out.ics] <syllabus.pdf>")
		os.Exit(2)
	}

	_ = godotenv.Load()
	cfg := common.LoadConfig()
	if err := cfg.Validate(); err != nil {
		logger.Error("configuration", "error", err)
		os.Exit(2)
	}

	data, err := os.ReadFile(flag.Arg(0))
	if err != nil {
		logger.Error("read syllabus", "path", flag.Arg(0), "error", err)
		os.Exit(1)
	}

	primary := openai.NewClient(openai.Config{
		APIKey:      cfg.LLM.APIKey,
		BaseURL:     cfg.LLM.BaseURL,
		Model:       cfg.LLM.PrimaryModel,
		Temperature: cfg.LLM.Temperature,
		MaxTokens:   cfg.LLM.PrimaryMaxTokens,
		Timeout:     cfg.LLM.Timeout,
	}, logger)
	fallback := openai.NewClient(openai.Config{
		APIKey:      cfg.LLM.APIKey,
		BaseURL:     cfg.LLM.BaseURL,
		Model:       cfg.LLM.FallbackModel,
		Temperature: cfg.LLM.Temperature,
		MaxTokens:   cfg.LLM.FallbackMaxTokens,
		Timeout:     cfg.LLM.Timeout,
	}, logger)
	processor := pipeline.NewProcessor(logger,
		llm.NewFallbackInvoker(primary, fallback, logger), cfg.LLM.APIKey)

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	result, err := processor.Extract(ctx, data)
	if err != nil {
		logger.Error("extraction failed", "error", err)
		os.Exit(1)
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	if err := enc.Encode(result); err != nil {
		logger.Error("encode result", "error", err)
		os.Exit(1)
	}

	if *icsPath != "" {
		ical, err := export.BuildICS(result.Events)
		if err != nil {
			logger.Error("build ics", "error", err)
			os.Exit(1)
		}
		if err := os.WriteFile(*icsPath, []byte(ical), 0o644); err != nil {
			logger.Error("write ics", "path", *icsPath, "error", err)
			os.Exit(1)
		}
		logger.Info("wrote calendar", "path", *icsPath, "events", len(result.Events))
	}
}

package llm

import (
	"context"
	"log/slog"
	"time"

	"github.com/Ibraheem715/syllabus-to-calendar/internal/common"
)

// FallbackInvoker tries the primary model once and, on any failure, retries
// exactly once with the fallback model using the identical prompt. It never
// loops or backs off; if the fallback also fails the surfaced error is
// EXTRACTION_FAILED wrapping the fallback's cause.
type FallbackInvoker struct {
	primary  Invoker
	fallback Invoker
	logger   *slog.Logger
}

func NewFallbackInvoker(primary, fallback Invoker, logger *slog.Logger) *FallbackInvoker {
	if logger == nil {
		logger = slog.Default()
	}
	return &FallbackInvoker{primary: primary, fallback: fallback, logger: logger}
}

func (f *FallbackInvoker) Model() string {
	return f.primary.Model()
}

func (f *FallbackInvoker) Invoke(ctx context.Context, prompt string) (string, error) {
	start := time.Now()

	reply, err := f.primary.Invoke(ctx, prompt)
	if err == nil {
		return reply, nil
	}
	f.logger.Warn("llm.invoke.primary_failed",
		"model", f.primary.Model(),
		"fallback_model", f.fallback.Model(),
		"error", err,
	)

	reply, ferr := f.fallback.Invoke(ctx, prompt)
	if ferr != nil {
		f.logger.Error("llm.invoke.fallback_failed",
			"model", f.fallback.Model(),
			"error", ferr,
			"elapsed_ms", time.Since(start).Milliseconds(),
		)
		return "", common.NewAppError(common.CodeExtractionFailed,
			"primary and fallback model calls failed", ferr)
	}

	f.logger.Info("llm.invoke.fallback_ok",
		"model", f.fallback.Model(),
		"elapsed_ms", time.Since(start).Milliseconds(),
	)
	return reply, nil
}

// Package pipeline runs one syllabus extraction end to end: decode the
// document, normalize its text, build the extraction prompt, invoke the
// model (with a single fallback), and sanitize the reply into events.
// Each run is stateless and sequential; nothing feeds back upstream.
package pipeline

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/Ibraheem715/syllabus-to-calendar/internal/common"
	"github.com/Ibraheem715/syllabus-to-calendar/internal/document"
	"github.com/Ibraheem715/syllabus-to-calendar/internal/entity"
	"github.com/Ibraheem715/syllabus-to-calendar/internal/llm"
)

type Processor struct {
	logger  *slog.Logger
	invoker llm.Invoker
	apiKey  string

	// extract is document.ExtractText unless a test swaps it out.
	extract func([]byte) (document.ExtractedText, error)
	now     func() time.Time
}

// NewProcessor wires the pipeline entry point. The credential is passed in
// explicitly so its absence is detected here, before any decoding or
// network work, rather than deep inside a transport error.
func NewProcessor(logger *slog.Logger, invoker llm.Invoker, apiKey string) *Processor {
	if logger == nil {
		logger = slog.Default()
	}
	return &Processor{
		logger:  logger,
		invoker: invoker,
		apiKey:  apiKey,
		extract: document.ExtractText,
		now:     time.Now,
	}
}

// Extract runs the whole pipeline for one uploaded document.
func (p *Processor) Extract(ctx context.Context, data []byte) (*entity.ExtractionResult, error) {
	rid := uuid.New().String()
	start := time.Now()

	if strings.TrimSpace(p.apiKey) == "" {
		return nil, common.NewAppError(common.CodeNotConfigured,
			"model API credential is not configured", common.ErrNotConfigured)
	}

	doc, err := p.extract(data)
	if err != nil {
		p.logger.Error("pipeline.extract_text.failed", "req_id", rid, "error", err)
		return nil, err
	}
	p.logger.Debug("pipeline.extract_text.ok",
		"req_id", rid, "pages", doc.Pages, "chars", len(doc.Text))

	normalized := document.Normalize(doc.Text)
	prompt := llm.BuildExtractionPrompt(normalized, p.now())

	reply, err := p.invoker.Invoke(ctx, prompt)
	if err != nil {
		p.logger.Error("pipeline.invoke.failed", "req_id", rid, "error", err,
			"elapsed_ms", time.Since(start).Milliseconds())
		return nil, err
	}

	result, dropped, err := llm.ParseResult([]byte(reply), p.logger)
	if err != nil {
		p.logger.Error("pipeline.sanitize.failed", "req_id", rid, "error", err,
			"elapsed_ms", time.Since(start).Milliseconds())
		return nil, err
	}

	p.logger.Info("pipeline.extract.ok",
		"req_id", rid,
		"events", len(result.Events),
		"dropped", dropped,
		"course", result.CourseName,
		"elapsed_ms", time.Since(start).Milliseconds(),
	)
	return result, nil
}

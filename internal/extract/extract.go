// Package extract turns a course-module PDF into raw text plus basic
// statistics. The PDF itself is a black box: text comes out of the poppler
// pdftotext binary, run through a stubbed Runner.
package extract

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/edaudit/course-auditor/internal/common"
)

type Config struct {
	Pdftotext string // binary name or absolute path; if empty -> "pdftotext"
	Timeout   time.Duration
}

// Result is the extraction output handed to the audit engine.
type Result struct {
	Text      string
	PageCount int
	WordCount int
	Stats     TextStats
	Duration  time.Duration
}

type Extractor struct {
	cfg    Config
	runner Runner
	logger *slog.Logger
}

func NewExtractor(cfg Config, logger *slog.Logger) *Extractor {
	if logger == nil {
		logger = slog.Default()
	}
	if cfg.Pdftotext == "" {
		cfg.Pdftotext = "pdftotext"
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = 2 * time.Minute
	}
	return &Extractor{cfg: cfg, runner: execRunner{}, logger: logger}
}

// WithRunner replaces the exec runner. Used by tests.
func (e *Extractor) WithRunner(r Runner) *Extractor {
	e.runner = r
	return e
}

// Extract runs pdftotext over the document at path.
func (e *Extractor) Extract(ctx context.Context, path string) (Result, error) {
	start := time.Now()

	if _, err := os.Stat(path); err != nil {
		return Result{}, fmt.Errorf("%w: %q: %v", common.ErrExtraction, path, err)
	}

	ctx, cancel := context.WithTimeout(ctx, e.cfg.Timeout)
	defer cancel()

	// pdftotext -layout -enc UTF-8 -eol unix <path> -
	out, errb, err := e.runner.Run(ctx, e.cfg.Pdftotext, "-layout", "-enc", "UTF-8", "-eol", "unix", path, "-")
	if err != nil {
		return Result{}, fmt.Errorf("%w: pdftotext %q: %v: %s", common.ErrExtraction, path, err, truncate(string(errb), 512))
	}

	text := strings.TrimSpace(string(out))
	if text == "" {
		return Result{}, fmt.Errorf("%w: %q: no text layer found", common.ErrExtraction, path)
	}

	// pdftotext separates pages with form feeds.
	pages := 1 + strings.Count(string(out), "\f")
	stats := AnalyzeText(text)

	res := Result{
		Text:      text,
		PageCount: pages,
		WordCount: stats.WordCount,
		Stats:     stats,
		Duration:  time.Since(start),
	}

	e.logger.Info("extract.ok",
		"path", path,
		"pages", res.PageCount,
		"words", res.WordCount,
		"elapsed_ms", res.Duration.Milliseconds(),
	)
	return res, nil
}

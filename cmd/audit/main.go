package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"

	"github.com/edaudit/course-auditor/internal/audit"
	"github.com/edaudit/course-auditor/internal/common"
	"github.com/edaudit/course-auditor/internal/evaluate"
	"github.com/edaudit/course-auditor/internal/extract"
	"github.com/edaudit/course-auditor/internal/llm/openai"
	"github.com/edaudit/course-auditor/internal/report"
	"github.com/edaudit/course-auditor/internal/store"
)

func main() {
	logger := slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelInfo}))
	slog.SetDefault(logger)

	subject := flag.String("subject", "", "subject-expert profile key (optional)")
	support := flag.String("support", "", "path to a complementary support PDF (optional)")
	chapters := flag.Bool("chapters", false, "audit chapter by chapter instead of globally")
	flag.Parse()

	if flag.NArg() < 1 {
		logger.Error("usage: audit [-subject key] [-support file.pdf] [-chapters] <module.pdf>")
		os.Exit(2)
	}
	path := flag.Arg(0)
	filename := filepath.Base(path)

	cfg := common.LoadConfig()
	if cfg.LLM.APIKey == "" {
		logger.Error("GROQ_API_KEY env var is required")
		os.Exit(2)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Minute)
	defer cancel()
	ctx = common.WithAuditID(ctx, uuid.New().String())

	extractor := extract.NewExtractor(extract.Config{
		Pdftotext: cfg.Extraction.Pdftotext,
		Timeout:   cfg.Extraction.Timeout,
	}, logger)

	client := openai.NewClient(openai.Config{
		APIKey:  cfg.LLM.APIKey,
		BaseURL: cfg.LLM.BaseURL,
		Model:   cfg.LLM.Model,
		Timeout: cfg.LLM.Timeout,
	}, logger)

	engine, err := audit.NewEngine(audit.Options{
		RubricPath:     cfg.Store.RubricPath,
		ExpertPath:     cfg.Store.ExpertPath,
		Extractor:      extractor,
		Evaluator:      evaluate.New(client, logger).WithTemperature(cfg.LLM.Temperature),
		Store:          store.New(cfg.Store.DataDir, logger),
		Logger:         logger,
		CriterionDelay: cfg.LLM.CriterionDelay,
		ChapterDelay:   cfg.LLM.ChapterDelay,
	})
	if err != nil {
		logger.Error("creating audit engine", "error", err)
		os.Exit(1)
	}

	var rep *report.AuditReport
	switch {
	case *chapters:
		rep = engine.AuditChapters(ctx, path, filename, *subject)
	case *support != "":
		rep = engine.AuditWithSupport(ctx, path, *support, filename, *subject)
	default:
		rep = engine.Audit(ctx, path, filename, *subject)
	}

	if rep.Error != "" {
		logger.Error("audit failed", "filename", filename, "error", rep.Error)
		os.Exit(1)
	}

	key, err := engine.Save(rep)
	if err != nil {
		logger.Error("save report", "error", err)
		os.Exit(1)
	}

	fmt.Printf("audit: %s\n", filename)
	fmt.Printf("score: %.2f/100 (%s)\n", rep.Scores.FinalScore, rep.Scores.Grade)
	fmt.Printf("report: %s\n", key)
}

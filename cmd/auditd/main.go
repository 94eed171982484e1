package main

import (
	"context"
	"fmt"
	"log/slog"
	"net"
	"os"
	"os/signal"
	"path/filepath"

	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/reflection"

	"go.uber.org/zap"

	auditv1 "github.com/edaudit/course-auditor/gen/audit/v1"
	"github.com/edaudit/course-auditor/internal/audit"
	"github.com/edaudit/course-auditor/internal/common"
	"github.com/edaudit/course-auditor/internal/cryptofields"
	"github.com/edaudit/course-auditor/internal/evaluate"
	"github.com/edaudit/course-auditor/internal/export"
	"github.com/edaudit/course-auditor/internal/extract"
	"github.com/edaudit/course-auditor/internal/llm/openai"
	"github.com/edaudit/course-auditor/internal/server"
	"github.com/edaudit/course-auditor/internal/store"
)

func main() {
	// Logger
	logger, _ := zap.NewProduction()
	defer logger.Sync()
	log := logger.Sugar()

	cfg := common.LoadConfig()
	if cfg.LLM.APIKey == "" {
		log.Fatal("GROQ_API_KEY env var is required")
	}

	// Context with signal
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	// Internal packages log through slog; keep one JSON handler for them.
	slogger := slog.New(slog.NewJSONHandler(os.Stderr, nil))

	extractor := extract.NewExtractor(extract.Config{
		Pdftotext: cfg.Extraction.Pdftotext,
		Timeout:   cfg.Extraction.Timeout,
	}, slogger)

	client := openai.NewClient(openai.Config{
		APIKey:  cfg.LLM.APIKey,
		BaseURL: cfg.LLM.BaseURL,
		Model:   cfg.LLM.Model,
		Timeout: cfg.LLM.Timeout,
	}, slogger)
	evaluator := evaluate.New(client, slogger).WithTemperature(cfg.LLM.Temperature)

	st := store.New(cfg.Store.DataDir, slogger)
	if cfg.Encryption.Enabled {
		saltPath := filepath.Join(cfg.Store.DataDir, ".audit_salt")
		cipher, err := cryptofields.New(cfg.Encryption.Password, saltPath, cryptofields.DefaultSensitiveFields)
		if err != nil {
			log.Fatalf("init report encryption: %v", err)
		}
		st = st.WithCipher(cipher)
		log.Infow("report encryption enabled")
	}

	engine, err := audit.NewEngine(audit.Options{
		RubricPath:     cfg.Store.RubricPath,
		ExpertPath:     cfg.Store.ExpertPath,
		Extractor:      extractor,
		Evaluator:      evaluator,
		Store:          st,
		Logger:         slogger,
		CriterionDelay: cfg.LLM.CriterionDelay,
		ChapterDelay:   cfg.LLM.ChapterDelay,
	})
	if err != nil {
		log.Fatalf("creating audit engine: %v", err)
	}
	log.Infow("rubric loaded", "path", cfg.Store.RubricPath)

	// gRPC server
	grpcServer := grpc.NewServer()
	// Health service
	hs := health.NewServer()
	healthpb.RegisterHealthServer(grpcServer, hs)
	hs.SetServingStatus("", healthpb.HealthCheckResponse_SERVING)
	// Reflection for grpcurl
	reflection.Register(grpcServer)

	// Business service
	svc := server.NewAuditService(engine, export.NewService(st, slogger), logger)
	auditv1.RegisterAuditServiceServer(grpcServer, svc)

	lis, err := net.Listen("tcp", cfg.Server.GRPCAddr)
	if err != nil {
		log.Fatalf("listen: %v", err)
	}
	log.Infof("gRPC serving on %s", cfg.Server.GRPCAddr)

	go func() {
		if err := grpcServer.Serve(lis); err != nil {
			log.Fatalf("grpc serve: %v", err)
		}
	}()

	<-ctx.Done()
	log.Info("shutting down...")
	grpcServer.GracefulStop()
	fmt.Println("stopped.")
}

package server

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	auditv1 "github.com/edaudit/course-auditor/gen/audit/v1"
	"github.com/edaudit/course-auditor/internal/audit"
	"github.com/edaudit/course-auditor/internal/common"
	"github.com/edaudit/course-auditor/internal/export"
	"github.com/edaudit/course-auditor/internal/report"
)

// AuditService exposes the audit engine over gRPC.
type AuditService struct {
	auditv1.UnimplementedAuditServiceServer
	engine   *audit.Engine
	exporter *export.Service
	logger   *zap.Logger
}

func NewAuditService(engine *audit.Engine, exporter *export.Service, logger *zap.Logger) *AuditService {
	return &AuditService{engine: engine, exporter: exporter, logger: logger}
}

func (s *AuditService) RunAudit(ctx context.Context, req *auditv1.RunAuditRequest) (*auditv1.RunAuditResponse, error) {
	path := req.GetPath()
	if path == "" {
		return nil, status.Error(codes.InvalidArgument, "path is required")
	}
	name := req.GetDisplayName()
	if name == "" {
		name = path
	}

	auditID := uuid.New().String()
	ctx = common.WithAuditID(ctx, auditID)
	s.logger.Info("run audit",
		zap.String("audit_id", auditID),
		zap.String("filename", name),
		zap.String("mode", req.GetMode().String()),
	)

	rep := s.runForMode(ctx, req, path, name)

	if rep.Error != "" {
		s.logger.Warn("audit failed", zap.String("filename", name), zap.String("error", rep.Error))
		return &auditv1.RunAuditResponse{Error: rep.Error}, nil
	}

	key, err := s.engine.Save(rep)
	if err != nil {
		s.logger.Warn("save report failed", zap.Error(err))
		return nil, status.Error(codes.Internal, "save report failed")
	}

	body, err := json.Marshal(rep)
	if err != nil {
		s.logger.Warn("encode report failed", zap.Error(err))
		return nil, status.Error(codes.Internal, "encode report failed")
	}

	return &auditv1.RunAuditResponse{
		StorageKey: key,
		ReportJson: string(body),
		FinalScore: rep.Scores.FinalScore,
		Grade:      rep.Scores.Grade,
	}, nil
}

func (s *AuditService) runForMode(ctx context.Context, req *auditv1.RunAuditRequest, path, name string) *report.AuditReport {
	subject := req.GetSubject()
	switch {
	case req.GetMode() == auditv1.AuditMode_AUDIT_MODE_CHAPTERS:
		return s.engine.AuditChapters(ctx, path, name, subject)
	case req.GetSupportPath() != "":
		return s.engine.AuditWithSupport(ctx, path, req.GetSupportPath(), name, subject)
	default:
		return s.engine.Audit(ctx, path, name, subject)
	}
}

func (s *AuditService) GetHistory(ctx context.Context, _ *auditv1.GetHistoryRequest) (*auditv1.GetHistoryResponse, error) {
	hist, err := s.engine.History()
	if err != nil {
		s.logger.Warn("read history failed", zap.Error(err))
		return nil, status.Error(codes.Internal, "read history failed")
	}
	out := make([]*auditv1.HistoryEntry, 0, len(hist.Audits))
	for _, e := range hist.Audits {
		out = append(out, &auditv1.HistoryEntry{
			Id:         int32(e.ID),
			Filename:   e.Filename,
			AuditDate:  e.AuditDate,
			FinalScore: e.FinalScore,
			Grade:      e.Grade,
			JsonFile:   e.JSONFile,
			WordCount:  int32(e.WordCount),
		})
	}
	return &auditv1.GetHistoryResponse{
		TotalAudits: int32(hist.Metadata.TotalAudits),
		LastUpdated: hist.Metadata.LastUpdated,
		Audits:      out,
	}, nil
}

func (s *AuditService) GetReport(ctx context.Context, req *auditv1.GetReportRequest) (*auditv1.GetReportResponse, error) {
	key := req.GetJsonFile()
	if key == "" {
		return nil, status.Error(codes.InvalidArgument, "json_file is required")
	}
	rep, err := s.engine.Report(key)
	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			return nil, status.Error(codes.NotFound, "report not found")
		}
		s.logger.Warn("load report failed", zap.String("json_file", key), zap.Error(err))
		return nil, status.Error(codes.Internal, "load report failed")
	}
	body, err := json.Marshal(rep)
	if err != nil {
		return nil, status.Error(codes.Internal, "encode report failed")
	}
	return &auditv1.GetReportResponse{ReportJson: string(body)}, nil
}

func (s *AuditService) ListSubjects(ctx context.Context, _ *auditv1.ListSubjectsRequest) (*auditv1.ListSubjectsResponse, error) {
	keys := s.engine.Subjects()
	out := make([]*auditv1.Subject, 0, len(keys))
	for _, k := range keys {
		name := k
		if p, ok := s.engine.SubjectProfile(k); ok && p.Name != "" {
			name = p.Name
		}
		out = append(out, &auditv1.Subject{Key: k, Name: name})
	}
	return &auditv1.ListSubjectsResponse{Subjects: out}, nil
}

func (s *AuditService) ExportHistory(ctx context.Context, _ *auditv1.ExportHistoryRequest) (*auditv1.ExportHistoryResponse, error) {
	data, err := s.exporter.ExportHistoryXLSX()
	if err != nil {
		s.logger.Warn("export history failed", zap.Error(err))
		return nil, status.Error(codes.Internal, "export history failed")
	}
	return &auditv1.ExportHistoryResponse{Xlsx: data}, nil
}

func (s *AuditService) ExportCriteria(ctx context.Context, req *auditv1.ExportCriteriaRequest) (*auditv1.ExportCriteriaResponse, error) {
	key := req.GetJsonFile()
	if key == "" {
		return nil, status.Error(codes.InvalidArgument, "json_file is required")
	}
	data, err := s.exporter.ExportCriteriaXLSX(key)
	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			return nil, status.Error(codes.NotFound, "report not found")
		}
		s.logger.Warn("export criteria failed", zap.String("json_file", key), zap.Error(err))
		return nil, status.Error(codes.Internal, "export criteria failed")
	}
	return &auditv1.ExportCriteriaResponse{Xlsx: data}, nil
}

package export

import (
	"fmt"
	"log/slog"
	"sort"
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/edaudit/course-auditor/internal/report"
	"github.com/edaudit/course-auditor/internal/store"
)

// Service is a tiny façade over the report store that produces XLSX bytes
// for history exports.
type Service struct {
	store  *store.Store
	logger *slog.Logger
}

func NewService(st *store.Store, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{store: st, logger: logger}
}

// ExportHistoryXLSX returns an XLSX workbook (as bytes) listing every audit
// in the history index, newest last.
func (s *Service) ExportHistoryXLSX() ([]byte, error) {
	start := time.Now()

	idx, err := s.store.History()
	if err != nil {
		return nil, fmt.Errorf("read history: %w", err)
	}

	f := excelize.NewFile()
	const sheet = "Audits"
	if index, _ := f.GetSheetIndex(sheet); index == -1 {
		if _, err := f.NewSheet(sheet); err != nil {
			return nil, err
		}
	}
	activeIndex, _ := f.GetSheetIndex(sheet)
	f.SetActiveSheet(activeIndex)

	headers := []string{
		"ID",
		"Fichier",
		"Date d'audit",
		"Score final",
		"Grade",
		"Nombre de mots",
		"Rapport JSON",
	}
	for i, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		_ = f.SetCellValue(sheet, cell, h)
	}

	for row, entry := range idx.Audits {
		values := []any{
			entry.ID,
			entry.Filename,
			entry.AuditDate,
			entry.FinalScore,
			entry.Grade,
			entry.WordCount,
			entry.JSONFile,
		}
		for col, v := range values {
			cell, _ := excelize.CoordinatesToCellName(col+1, row+2)
			_ = f.SetCellValue(sheet, cell, v)
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("write workbook: %w", err)
	}

	s.logger.Info("export.history.ok",
		"audits", len(idx.Audits),
		"bytes", buf.Len(),
		"elapsed_ms", time.Since(start).Milliseconds(),
	)
	return buf.Bytes(), nil
}

// ExportCriteriaXLSX renders one stored report's per-criterion scores as a
// workbook, reloading the report through the store.
func (s *Service) ExportCriteriaXLSX(key string) ([]byte, error) {
	rep, err := s.store.Load(key)
	if err != nil {
		return nil, err
	}

	f := excelize.NewFile()
	const sheet = "Critères"
	if index, _ := f.GetSheetIndex(sheet); index == -1 {
		if _, err := f.NewSheet(sheet); err != nil {
			return nil, err
		}
	}
	activeIndex, _ := f.GetSheetIndex(sheet)
	f.SetActiveSheet(activeIndex)

	headers := []string{"Critère", "Score /5", "Commentaire"}
	for i, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		_ = f.SetCellValue(sheet, cell, h)
	}

	row := 2
	for _, kv := range sortedScoresList(rep.Scores.CriteriaScores) {
		cells := []any{kv.key, kv.res.Score, kv.res.Commentaire}
		for col, v := range cells {
			cell, _ := excelize.CoordinatesToCellName(col+1, row)
			_ = f.SetCellValue(sheet, cell, v)
		}
		row++
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("write workbook: %w", err)
	}
	return buf.Bytes(), nil
}

type scoredCriterion struct {
	key string
	res report.CriterionResult
}

func sortedScoresList(scores map[string]report.CriterionResult) []scoredCriterion {
	out := make([]scoredCriterion, 0, len(scores))
	for k, v := range scores {
		out = append(out, scoredCriterion{key: k, res: v})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].key < out[j].key })
	return out
}

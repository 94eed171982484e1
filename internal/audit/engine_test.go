package audit

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/edaudit/course-auditor/internal/common"
	"github.com/edaudit/course-auditor/internal/evaluate"
	"github.com/edaudit/course-auditor/internal/extract"
	"github.com/edaudit/course-auditor/internal/report"
	"github.com/edaudit/course-auditor/internal/segment"
	"github.com/edaudit/course-auditor/internal/store"
)

const engineTestRubric = `{
  "metadata": {"version": "2.1"},
  "criteria": {
    "objectifs": {"name": "Objectifs", "description": "d", "weight": 60},
    "contenu": {"name": "Contenu", "description": "d", "weight": 40}
  },
  "keywords": {"objectifs": ["objectif"]},
  "mandatory_sections": ["introduction", "conclusion"],
  "grading_scale": {
    "A": {"min_score": 85, "max_score": 100, "description": "Excellent"},
    "B": {"min_score": 70, "max_score": 84.99, "description": "Bien"},
    "C": {"min_score": 55, "max_score": 69.99, "description": "Moyen"},
    "D": {"min_score": 40, "max_score": 54.99, "description": "Insuffisant"},
    "E": {"min_score": 0, "max_score": 39.99, "description": "Très insuffisant"}
  }
}`

type fakeExtractor struct {
	texts map[string]string
	err   error
}

func (f *fakeExtractor) Extract(_ context.Context, path string) (extract.Result, error) {
	if f.err != nil {
		return extract.Result{}, f.err
	}
	text, ok := f.texts[path]
	if !ok {
		return extract.Result{}, fmt.Errorf("%w: %q", common.ErrExtraction, path)
	}
	stats := extract.AnalyzeText(text)
	return extract.Result{
		Text:      text,
		PageCount: 2,
		WordCount: stats.WordCount,
		Stats:     stats,
	}, nil
}

// fakeEvaluator returns fixed per-criterion scores and marks every chapter
// conforme except titles listed in nonConforme.
type fakeEvaluator struct {
	scores      map[string]float64
	nonConforme map[string]bool

	criterionCalls []string
	chapterCalls   int
}

func (f *fakeEvaluator) EvaluateCriterion(_ context.Context, req evaluate.CriterionRequest) report.CriterionResult {
	f.criterionCalls = append(f.criterionCalls, req.Key)
	return report.CriterionResult{
		Score:           f.scores[req.Key],
		Commentaire:     "évaluation " + req.Key,
		Forces:          []string{"force " + req.Key},
		Faiblesses:      []string{},
		Recommandations: []string{"recommandation " + req.Key},
	}
}

func (f *fakeEvaluator) EvaluateChapter(_ context.Context, number int, ch segment.Chapter) report.ChapterConformity {
	f.chapterCalls++
	conf := report.Conforme
	score := 4.0
	if f.nonConforme[ch.Title] {
		conf = report.NonConforme
		score = 1.0
	}
	return report.ChapterConformity{
		ChapterInfo: report.ChapterInfo{Title: ch.Title, WordCount: ch.WordCount, ChapterNumber: number},
		ScoreGlobal: score,
		Objectifs:   report.ObjectifsResult{Score: score},
		Conformite:  conf,
	}
}

func newTestEngine(t *testing.T, ext Extractor, eval Evaluator) (*Engine, *store.Store) {
	t.Helper()
	dir := t.TempDir()
	rubricPath := filepath.Join(dir, "grille.json")
	require.NoError(t, os.WriteFile(rubricPath, []byte(engineTestRubric), 0o644))

	st := store.New(filepath.Join(dir, "data"), nil)
	e, err := NewEngine(Options{
		RubricPath: rubricPath,
		ExpertPath: filepath.Join(dir, "absent_experts.json"),
		Extractor:  ext,
		Evaluator:  eval,
		Store:      st,
	})
	require.NoError(t, err)
	e.WithSleep(func(time.Duration) {})
	return e, st
}

func TestNewEngine(t *testing.T) {
	t.Run("missing rubric is fatal", func(t *testing.T) {
		_, err := NewEngine(Options{RubricPath: filepath.Join(t.TempDir(), "absent.json")})
		require.Error(t, err)
		assert.True(t, errors.Is(err, common.ErrConfiguration))
	})

	t.Run("missing experts file is not fatal", func(t *testing.T) {
		e, _ := newTestEngine(t, &fakeExtractor{}, &fakeEvaluator{})
		assert.Empty(t, e.Subjects())
	})
}

func TestAudit(t *testing.T) {
	ctx := context.Background()

	t.Run("standard audit aggregates weighted scores", func(t *testing.T) {
		ext := &fakeExtractor{texts: map[string]string{
			"/tmp/cours.pdf": "Introduction du module. Objectifs : tout maîtriser. Conclusion.",
		}}
		eval := &fakeEvaluator{scores: map[string]float64{"objectifs": 5, "contenu": 0}}
		e, _ := newTestEngine(t, ext, eval)

		rep := e.Audit(ctx, "/tmp/cours.pdf", "cours.pdf", "")
		require.Empty(t, rep.Error)

		assert.Equal(t, 60.00, rep.Scores.FinalScore)
		assert.Equal(t, "C", rep.Scores.Grade)
		assert.Equal(t, "Moyen", rep.Scores.GradeDescription)
		assert.Equal(t, "2.1", rep.Metadata.GrilleVersion)
		assert.Equal(t, "cours.pdf", rep.Metadata.Filename)
		assert.Len(t, rep.Scores.CriteriaScores, 2)

		// Criteria run in the fixed sorted order.
		assert.Equal(t, []string{"contenu", "objectifs"}, eval.criterionCalls)

		require.NotNil(t, rep.Analysis)
		assert.Contains(t, rep.Analysis.MandatorySections.FoundSections, "introduction")
		assert.NotEmpty(t, rep.Analysis.GlobalRecommendations.RecommandationsPrioritaires)
		require.NotNil(t, rep.RawData)
		assert.NotEmpty(t, rep.RawData.ExtractedTextPreview)
	})

	t.Run("extraction failure returns an error report", func(t *testing.T) {
		ext := &fakeExtractor{err: fmt.Errorf("%w: fichier illisible", common.ErrExtraction)}
		e, _ := newTestEngine(t, ext, &fakeEvaluator{})

		rep := e.Audit(ctx, "/tmp/corrompu.pdf", "corrompu.pdf", "")
		assert.Contains(t, rep.Error, "Erreur d'extraction PDF")
		assert.Equal(t, "corrompu.pdf", rep.Metadata.Filename)
		assert.Zero(t, rep.Scores.FinalScore)
	})

	t.Run("save and reload through the engine", func(t *testing.T) {
		ext := &fakeExtractor{texts: map[string]string{"/tmp/cours.pdf": "Introduction. Conclusion."}}
		eval := &fakeEvaluator{scores: map[string]float64{"objectifs": 4, "contenu": 4}}
		e, _ := newTestEngine(t, ext, eval)

		rep := e.Audit(ctx, "/tmp/cours.pdf", "cours.pdf", "")
		key, err := e.Save(rep)
		require.NoError(t, err)

		loaded, err := e.Report(key)
		require.NoError(t, err)
		assert.Equal(t, rep.Scores.FinalScore, loaded.Scores.FinalScore)

		hist, err := e.History()
		require.NoError(t, err)
		assert.Equal(t, 1, hist.Metadata.TotalAudits)
	})
}

func TestAuditWithSupport(t *testing.T) {
	ctx := context.Background()

	ext := &fakeExtractor{texts: map[string]string{
		"/tmp/cours.pdf":   "Contenu principal du module.",
		"/tmp/support.pdf": "Transparents de support.",
	}}
	eval := &fakeEvaluator{scores: map[string]float64{"objectifs": 3, "contenu": 3}}
	e, _ := newTestEngine(t, ext, eval)

	rep := e.AuditWithSupport(ctx, "/tmp/cours.pdf", "/tmp/support.pdf", "cours.pdf", "")
	require.Empty(t, rep.Error)

	assert.True(t, rep.Metadata.SupportDocument)
	assert.Equal(t, 2, rep.Metadata.ModulePages)
	assert.Equal(t, 2, rep.Metadata.SupportPages)
	assert.Equal(t, 4, rep.Metadata.TotalPages)
	require.NotNil(t, rep.RawData)
	assert.NotNil(t, rep.RawData.SupportStatistics)
	// Both texts reach the preview of the combined evaluation input.
	assert.Contains(t, rep.RawData.ExtractedTextPreview, "CONTENU PRINCIPAL DU MODULE")
}

func TestAuditChapters(t *testing.T) {
	ctx := context.Background()

	text := "Chapitre 1 : Introduction\ncontenu du premier chapitre\n" +
		"Chapitre 2 : Les bases\ncontenu du second chapitre\n" +
		"Chapitre 3 : Avancé\ncontenu du troisième chapitre\n" +
		"Chapitre 4 : Annexes\ncontenu du quatrième chapitre\n"

	t.Run("three of four conforme", func(t *testing.T) {
		ext := &fakeExtractor{texts: map[string]string{"/tmp/cours.pdf": text}}
		eval := &fakeEvaluator{
			scores:      map[string]float64{"objectifs": 3, "contenu": 3},
			nonConforme: map[string]bool{"4 - Annexes": true},
		}
		e, _ := newTestEngine(t, ext, eval)

		rep := e.AuditChapters(ctx, "/tmp/cours.pdf", "cours.pdf", "")
		require.Empty(t, rep.Error)

		assert.Equal(t, ChapterByChapter, rep.Metadata.AuditType)
		assert.Equal(t, 4, rep.Metadata.ChaptersCount)
		assert.Equal(t, 4, eval.chapterCalls)
		require.Len(t, rep.Chapters, 4)

		assert.Equal(t, 75.00, rep.Scores.FinalScore)
		assert.Equal(t, "B", rep.Scores.Grade)

		require.NotNil(t, rep.ChapterAnalysis)
		assert.Equal(t, 3, rep.ChapterAnalysis.ConformitySummary[report.Conforme])
		assert.Equal(t, 1, rep.ChapterAnalysis.ConformitySummary[report.NonConforme])
		assert.Equal(t, 75.00, rep.ChapterAnalysis.ConformityRate)

		require.NotNil(t, rep.Synthesis)
		assert.Equal(t, report.Conforme, rep.Synthesis.OverallConformity)
		assert.Contains(t, rep.Synthesis.CriticalIssues, `Chapitre "4 - Annexes" non conforme`)

		// The embedded whole-document audit is carried as the global analysis.
		require.NotNil(t, rep.GlobalAnalysis)
		assert.NotEmpty(t, rep.GlobalAnalysis.Scores.CriteriaScores)
	})

	t.Run("document without headings is one pseudo-chapter", func(t *testing.T) {
		ext := &fakeExtractor{texts: map[string]string{"/tmp/plat.pdf": "du texte sans aucun titre reconnaissable"}}
		eval := &fakeEvaluator{scores: map[string]float64{"objectifs": 2, "contenu": 2}}
		e, _ := newTestEngine(t, ext, eval)

		rep := e.AuditChapters(ctx, "/tmp/plat.pdf", "plat.pdf", "")
		require.Len(t, rep.Chapters, 1)
		assert.Equal(t, segment.FallbackTitle, rep.Chapters[0].ChapterInfo.Title)
		assert.Equal(t, 100.00, rep.Scores.FinalScore)
	})
}

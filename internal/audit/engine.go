// Package audit orchestrates a complete module audit: extraction,
// per-criterion or per-chapter evaluation, aggregation and persistence.
package audit

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/edaudit/course-auditor/internal/common"
	"github.com/edaudit/course-auditor/internal/evaluate"
	"github.com/edaudit/course-auditor/internal/extract"
	"github.com/edaudit/course-auditor/internal/report"
	"github.com/edaudit/course-auditor/internal/rubric"
	"github.com/edaudit/course-auditor/internal/segment"
	"github.com/edaudit/course-auditor/internal/store"
)

// ChapterByChapter marks chapter-mode reports in metadata.audit_type.
const ChapterByChapter = "chapter_by_chapter"

// Extractor is the text-extraction collaborator.
type Extractor interface {
	Extract(ctx context.Context, path string) (extract.Result, error)
}

// Evaluator runs the structured model evaluations. Both methods are total:
// failures come back as degraded results, never as errors.
type Evaluator interface {
	EvaluateCriterion(ctx context.Context, req evaluate.CriterionRequest) report.CriterionResult
	EvaluateChapter(ctx context.Context, number int, ch segment.Chapter) report.ChapterConformity
}

// Options wires an Engine.
type Options struct {
	RubricPath string
	ExpertPath string

	Extractor Extractor
	Evaluator Evaluator
	Store     *store.Store
	Logger    *slog.Logger

	// Inter-call throttle delays. Zero keeps the defaults; tests inject a
	// no-op sleeper instead.
	CriterionDelay time.Duration
	ChapterDelay   time.Duration
}

// Engine runs audits as a sequential pipeline. All evaluation calls happen
// in the rubric's fixed criterion order (or chapter order), serialized with
// an inter-call delay to respect provider rate limits.
type Engine struct {
	rubric    *rubric.Store
	experts   *rubric.Experts
	extractor Extractor
	evaluator Evaluator
	store     *store.Store
	logger    *slog.Logger

	criterionDelay time.Duration
	chapterDelay   time.Duration
	sleep          func(time.Duration)
	now            func() time.Time
}

// NewEngine loads the rubric (fatal when missing) and the optional
// subject-expert profiles (generic mode when missing).
func NewEngine(opts Options) (*Engine, error) {
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}
	rs, err := rubric.Load(opts.RubricPath)
	if err != nil {
		return nil, err
	}
	experts := rubric.LoadExperts(opts.ExpertPath, logger)

	criterionDelay := opts.CriterionDelay
	if criterionDelay <= 0 {
		criterionDelay = time.Second
	}
	chapterDelay := opts.ChapterDelay
	if chapterDelay <= 0 {
		chapterDelay = 2 * time.Second
	}

	return &Engine{
		rubric:         rs,
		experts:        experts,
		extractor:      opts.Extractor,
		evaluator:      opts.Evaluator,
		store:          opts.Store,
		logger:         logger,
		criterionDelay: criterionDelay,
		chapterDelay:   chapterDelay,
		sleep:          time.Sleep,
		now:            time.Now,
	}, nil
}

// WithSleep replaces the throttle sleeper. Used by tests.
func (e *Engine) WithSleep(fn func(time.Duration)) *Engine {
	e.sleep = fn
	return e
}

// WithClock replaces the timestamp source. Used by tests.
func (e *Engine) WithClock(fn func() time.Time) *Engine {
	e.now = fn
	return e
}

// auditLogger tags log lines with the audit id carried on the context, when
// the caller assigned one.
func (e *Engine) auditLogger(ctx context.Context) *slog.Logger {
	if id := common.AuditIDFromContext(ctx); id != "" {
		return e.logger.With("audit_id", id)
	}
	return e.logger
}

// Subjects lists the available subject-expert keys.
func (e *Engine) Subjects() []string { return e.experts.Subjects() }

// SubjectProfile returns the expert profile for a subject key.
func (e *Engine) SubjectProfile(subject string) (rubric.ExpertProfile, bool) {
	return e.experts.Profile(subject)
}

// Save persists a completed report through the store.
func (e *Engine) Save(rep *report.AuditReport) (string, error) {
	return e.store.Save(rep)
}

// Report reloads a stored report by its storage key.
func (e *Engine) Report(key string) (*report.AuditReport, error) {
	return e.store.Load(key)
}

// History returns the cumulative audit index.
func (e *Engine) History() (*report.HistoryIndex, error) {
	return e.store.History()
}

// Audit evaluates the document against every rubric criterion (standard
// mode). It always returns a report: an unreadable document produces a
// report whose Error field is set, and individual evaluation failures
// surface as degraded zero-score entries.
func (e *Engine) Audit(ctx context.Context, path, filename, subject string) *report.AuditReport {
	e.auditLogger(ctx).Info("audit.start", "filename", filename, "subject", subject)

	res, err := e.extractor.Extract(ctx, path)
	if err != nil {
		return e.extractionErrorReport(filename, err)
	}

	scores := e.evaluateCriteria(ctx, res.Text, subject)
	rep := e.buildStandardReport(filename, res, scores)

	e.logger.Info("audit.done",
		"filename", filename,
		"final_score", rep.Scores.FinalScore,
		"grade", rep.Scores.Grade,
	)
	return rep
}

// AuditWithSupport audits a module together with a complementary support
// document: both texts are combined for every evaluation and the metadata
// records both page counts.
func (e *Engine) AuditWithSupport(ctx context.Context, modulePath, supportPath, filename, subject string) *report.AuditReport {
	e.auditLogger(ctx).Info("audit.with_support.start", "filename", filename)

	moduleRes, err := e.extractor.Extract(ctx, modulePath)
	if err != nil {
		return e.extractionErrorReport(filename, err)
	}
	supportRes, err := e.extractor.Extract(ctx, supportPath)
	if err != nil {
		return e.extractionErrorReport(filename, err)
	}

	combined := "CONTENU PRINCIPAL DU MODULE:\n" + moduleRes.Text +
		"\n\nDOCUMENT SUPPORT COMPLÉMENTAIRE:\n" + supportRes.Text

	scores := e.evaluateCriteria(ctx, combined, subject)

	combinedRes := extract.Result{
		Text:      combined,
		PageCount: moduleRes.PageCount + supportRes.PageCount,
		WordCount: moduleRes.WordCount + supportRes.WordCount,
		Stats:     extract.AnalyzeText(combined),
	}
	rep := e.buildStandardReport(filename, combinedRes, scores)
	rep.Metadata.SupportDocument = true
	rep.Metadata.ModulePages = moduleRes.PageCount
	rep.Metadata.SupportPages = supportRes.PageCount
	rep.RawData.SupportStatistics = &supportRes.Stats

	e.logger.Info("audit.with_support.done",
		"filename", filename,
		"final_score", rep.Scores.FinalScore,
		"grade", rep.Scores.Grade,
	)
	return rep
}

// AuditChapters segments the document and evaluates each chapter against the
// five conformity dimensions, then embeds a standard whole-document audit as
// the global analysis.
func (e *Engine) AuditChapters(ctx context.Context, path, filename, subject string) *report.AuditReport {
	e.auditLogger(ctx).Info("audit.chapters.start", "filename", filename)

	res, err := e.extractor.Extract(ctx, path)
	if err != nil {
		return e.extractionErrorReport(filename, err)
	}

	chapters := segment.Split(res.Text)
	e.logger.Info("audit.chapters.segmented", "filename", filename, "chapters", len(chapters))

	conformities := make([]report.ChapterConformity, 0, len(chapters))
	for i, ch := range chapters {
		conformities = append(conformities, e.evaluator.EvaluateChapter(ctx, i+1, ch))
		if i < len(chapters)-1 {
			e.sleep(e.chapterDelay)
		}
	}

	global := e.Audit(ctx, path, filename, subject)

	summary := report.ConformitySummary(conformities)
	averages := report.CriteriaAverages(conformities)
	finalScore := report.ChapterFinalScore(conformities)
	band := e.rubric.GradeFor(finalScore)
	synthesis := report.BuildSynthesis(conformities, summary, averages)

	rep := &report.AuditReport{
		Metadata: report.Metadata{
			Filename:      filename,
			AuditType:     ChapterByChapter,
			AuditDate:     e.now().Format(time.RFC3339),
			GrilleVersion: e.rubric.Version(),
			TotalPages:    res.PageCount,
			WordCount:     res.WordCount,
			ChaptersCount: len(chapters),
		},
		Scores: report.Scores{
			FinalScore:       finalScore,
			Grade:            band.Grade,
			GradeDescription: band.Description,
		},
		Chapters: conformities,
		ChapterAnalysis: &report.ChapterAnalysis{
			ConformitySummary: summary,
			CriteriaAverages:  averages,
			ConformityRate:    finalScore,
		},
		GlobalAnalysis:  global,
		Synthesis:       &synthesis,
		Recommendations: report.PrioritizeRecommendations(conformities, finalScore),
	}

	e.logger.Info("audit.chapters.done",
		"filename", filename,
		"conformity", synthesis.OverallConformity,
		"conforme", summary[report.Conforme],
		"total", len(chapters),
	)
	return rep
}

// evaluateCriteria runs one evaluation per rubric criterion, in the fixed
// key order, with the throttle delay between consecutive calls.
func (e *Engine) evaluateCriteria(ctx context.Context, text, subject string) map[string]report.CriterionResult {
	keys := e.rubric.CriterionKeys()
	expertContext := e.experts.PromptContext(subject)
	subjectName := ""
	if p, ok := e.experts.Profile(subject); ok {
		subjectName = p.Name
	}

	scores := make(map[string]report.CriterionResult, len(keys))
	for i, key := range keys {
		c, _ := e.rubric.Criterion(key)
		e.logger.Info("audit.criterion", "key", key, "name", c.Name)
		scores[key] = e.evaluator.EvaluateCriterion(ctx, evaluate.CriterionRequest{
			Key:           key,
			Criterion:     c,
			Keywords:      e.rubric.Keywords(key),
			Text:          text,
			SubjectName:   subjectName,
			ExpertContext: expertContext,
		})
		if i < len(keys)-1 {
			e.sleep(e.criterionDelay)
		}
	}
	return scores
}

func (e *Engine) buildStandardReport(filename string, res extract.Result, scores map[string]report.CriterionResult) *report.AuditReport {
	finalScore := report.FinalScore(scores, e.rubric)
	band := e.rubric.GradeFor(finalScore)

	return &report.AuditReport{
		Metadata: report.Metadata{
			Filename:      filename,
			AuditDate:     e.now().Format(time.RFC3339),
			GrilleVersion: e.rubric.Version(),
			TotalPages:    res.PageCount,
			WordCount:     res.WordCount,
		},
		Scores: report.Scores{
			FinalScore:       finalScore,
			Grade:            band.Grade,
			GradeDescription: band.Description,
			CriteriaScores:   scores,
		},
		Analysis: &report.Analysis{
			MandatorySections:     report.CheckMandatorySections(res.Text, e.rubric.MandatorySections()),
			ElementsCount:         report.CountElements(res.Text),
			GlobalRecommendations: report.SynthesizeRecommendations(scores, finalScore),
		},
		RawData: &report.RawData{
			ExtractedTextPreview: res.Stats.ContentPreview,
			PDFStatistics:        res.Stats,
		},
	}
}

func (e *Engine) extractionErrorReport(filename string, err error) *report.AuditReport {
	e.logger.Error("audit.extraction_failed", "filename", filename, "error", err)
	return &report.AuditReport{
		Error: fmt.Sprintf("Erreur d'extraction PDF: %v", err),
		Metadata: report.Metadata{
			Filename:  filename,
			AuditDate: e.now().Format(time.RFC3339),
		},
	}
}

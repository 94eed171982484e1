// Package evaluate drives structured-output requests against the language
// model, one per rubric criterion or one per chapter. Evaluations never fail
// upward: any unrecoverable error degrades to a zero-score placeholder so a
// single bad response cannot abort the whole audit.
package evaluate

import (
	"context"
	"log/slog"
	"time"

	"github.com/edaudit/course-auditor/internal/common"
	"github.com/edaudit/course-auditor/internal/llm"
	"github.com/edaudit/course-auditor/internal/report"
	"github.com/edaudit/course-auditor/internal/rubric"
)

const (
	maxAttempts = 3
	baseBackoff = 2 * time.Second

	defaultTemperature = 0.3
	criterionMaxTokens = 1000
	chapterMaxTokens   = 1500
)

type Evaluator struct {
	client      llm.ChatClient
	logger      *slog.Logger
	sleep       func(time.Duration)
	temperature float32
}

func New(client llm.ChatClient, logger *slog.Logger) *Evaluator {
	if logger == nil {
		logger = slog.Default()
	}
	return &Evaluator{
		client:      client,
		logger:      logger,
		sleep:       time.Sleep,
		temperature: defaultTemperature,
	}
}

// WithSleep replaces the backoff sleeper. Used by tests.
func (e *Evaluator) WithSleep(fn func(time.Duration)) *Evaluator {
	e.sleep = fn
	return e
}

// WithTemperature overrides the sampling temperature sent with every
// evaluation request.
func (e *Evaluator) WithTemperature(t float32) *Evaluator {
	e.temperature = t
	return e
}

// CriterionRequest is one (criterion, text) evaluation.
type CriterionRequest struct {
	Key           string
	Criterion     rubric.Criterion
	Keywords      []string
	Text          string
	SubjectName   string
	ExpertContext string
}

// EvaluateCriterion sends one structured evaluation request and returns the
// parsed result, retrying only on provider throttling. Any unrecoverable
// failure yields a degraded zero-score result, never an error.
func (e *Evaluator) EvaluateCriterion(ctx context.Context, req CriterionRequest) report.CriterionResult {
	start := time.Now()

	content, err := e.chatWithRetry(ctx, llm.ChatRequest{
		System:      BuildCriterionSystemPrompt(req.SubjectName),
		User:        BuildCriterionUserPrompt(req.Criterion, req.Keywords, req.Text, req.ExpertContext),
		Temperature: e.temperature,
		MaxTokens:   criterionMaxTokens,
	})
	if err != nil {
		e.logger.Error("evaluate.criterion.degraded",
			"criterion", req.Key, "error", err,
			"elapsed_ms", time.Since(start).Milliseconds(),
		)
		return degradedCriterion(err)
	}

	cleaned := []byte(llm.ExtractJSONObject(llm.StripCodeFence(content)))
	if verr := llm.ValidateJSONAgainstSchema(llm.BuildCriterionResultSchema(), cleaned); verr != nil {
		// Loose responses are still decoded field by field with defaults.
		e.logger.Warn("evaluate.criterion.loose_response", "criterion", req.Key, "error", verr)
	}

	res, err := decodeCriterionResult(cleaned)
	if err != nil {
		e.logger.Error("evaluate.criterion.parse_failed",
			"criterion", req.Key, "error", err, "content_len", len(content),
		)
		return degradedCriterion(err)
	}

	e.logger.Info("evaluate.criterion.ok",
		"criterion", req.Key,
		"score", res.Score,
		"elapsed_ms", time.Since(start).Milliseconds(),
	)
	return res
}

// chatWithRetry runs the model call with the fixed retry budget. Only
// rate-limited failures are retried, with the delay doubling each attempt;
// any other failure is permanent and returned immediately.
func (e *Evaluator) chatWithRetry(ctx context.Context, req llm.ChatRequest) (string, error) {
	delay := baseBackoff
	var lastErr error
	for attempt := 1; attempt <= maxAttempts; attempt++ {
		content, err := e.client.Chat(ctx, req)
		if err == nil {
			return content, nil
		}
		lastErr = err
		if !common.IsRateLimited(err) {
			return "", err
		}
		if attempt < maxAttempts {
			e.logger.Warn("evaluate.rate_limited",
				"attempt", attempt,
				"retry_in", delay.String(),
			)
			e.sleep(delay)
			delay *= 2
		}
	}
	return "", lastErr
}

func degradedCriterion(err error) report.CriterionResult {
	return report.CriterionResult{
		Score:           0,
		Commentaire:     "Erreur d'analyse: " + err.Error(),
		Preuves:         []string{},
		Forces:          []string{},
		Faiblesses:      []string{"Analyse impossible"},
		Recommandations: []string{"Vérifier le contenu et relancer l'analyse"},
	}
}

package evaluate

import (
	"context"
	"time"

	"github.com/edaudit/course-auditor/internal/llm"
	"github.com/edaudit/course-auditor/internal/report"
	"github.com/edaudit/course-auditor/internal/segment"
)

const chapterSystemPrompt = "Tu es un expert en évaluation pédagogique. Réponds uniquement en JSON valide."

// EvaluateChapter checks one chapter against the five fixed conformity
// dimensions in a single request. Same non-throwing contract as
// EvaluateCriterion: failure degrades every dimension to score 0 and forces
// conformite = non_conforme.
func (e *Evaluator) EvaluateChapter(ctx context.Context, number int, ch segment.Chapter) report.ChapterConformity {
	start := time.Now()
	info := report.ChapterInfo{
		Title:         ch.Title,
		WordCount:     ch.WordCount,
		ChapterNumber: number,
	}

	content, err := e.chatWithRetry(ctx, llm.ChatRequest{
		System:      chapterSystemPrompt,
		User:        BuildChapterUserPrompt(ch),
		Temperature: e.temperature,
		MaxTokens:   chapterMaxTokens,
	})
	if err != nil {
		e.logger.Error("evaluate.chapter.degraded",
			"chapter", number, "title", ch.Title, "error", err,
			"elapsed_ms", time.Since(start).Milliseconds(),
		)
		return degradedChapter(info, err)
	}

	cleaned := []byte(llm.ExtractJSONObject(llm.StripCodeFence(content)))
	if verr := llm.ValidateJSONAgainstSchema(llm.BuildChapterConformitySchema(), cleaned); verr != nil {
		e.logger.Warn("evaluate.chapter.loose_response", "chapter", number, "error", verr)
	}

	res, err := decodeChapterConformity(cleaned)
	if err != nil {
		e.logger.Error("evaluate.chapter.parse_failed",
			"chapter", number, "error", err, "content_len", len(content),
		)
		return degradedChapter(info, err)
	}
	res.ChapterInfo = info

	e.logger.Info("evaluate.chapter.ok",
		"chapter", number,
		"conformite", res.Conformite,
		"score_global", res.ScoreGlobal,
		"elapsed_ms", time.Since(start).Milliseconds(),
	)
	return res
}

func degradedChapter(info report.ChapterInfo, err error) report.ChapterConformity {
	msg := "Erreur d'analyse: " + err.Error()
	return report.ChapterConformity{
		ChapterInfo: info,
		Objectifs:   report.ObjectifsResult{Commentaire: msg},
		Competences: report.CompetencesResult{Commentaire: msg},
		Contenu:     report.ContenuResult{Commentaire: msg},
		References:  report.ReferencesResult{Commentaire: msg},
		Volume:      report.VolumeResult{Commentaire: msg},
		ScoreGlobal: 0,
		Conformite:  report.NonConforme,
		Recommandations: []string{
			"Relancer l'analyse après vérification du contenu",
		},
	}
}

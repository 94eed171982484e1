package report

import (
	"fmt"
	"math"
	"sort"

	"github.com/edaudit/course-auditor/internal/rubric"
)

// Display caps applied when synthesizing global recommendations.
const (
	maxForces          = 5
	maxFaiblesses      = 5
	maxRecommandations = 10
)

// Round2 rounds to 2 decimals, the precision of every reported score.
func Round2(v float64) float64 {
	return math.Round(v*100) / 100
}

// FinalScore computes the weighted final score over [0,100]:
//
//	final = Σ(score/5 * weight) / Σ(weight) * 100
//
// Criteria absent from the rubric contribute nothing. Zero total weight
// yields 0.
func FinalScore(scores map[string]CriterionResult, store *rubric.Store) float64 {
	var weighted, total float64
	for key, res := range scores {
		w := store.Weight(key)
		if w <= 0 {
			continue
		}
		weighted += (res.Score / 5) * w
		total += w
	}
	if total == 0 {
		return 0
	}
	return Round2(weighted / total * 100)
}

// ChapterFinalScore is the conformity rate: conforme chapters / total * 100.
func ChapterFinalScore(chapters []ChapterConformity) float64 {
	if len(chapters) == 0 {
		return 0
	}
	conforme := 0
	for _, ch := range chapters {
		if ch.Conformite == Conforme {
			conforme++
		}
	}
	return Round2(float64(conforme) / float64(len(chapters)) * 100)
}

// ConformitySummary counts chapters per conformity class. All three classes
// are always present in the map.
func ConformitySummary(chapters []ChapterConformity) map[string]int {
	summary := map[string]int{
		Conforme:              0,
		PartiellementConforme: 0,
		NonConforme:           0,
	}
	for _, ch := range chapters {
		if _, ok := summary[ch.Conformite]; ok {
			summary[ch.Conformite]++
		}
	}
	return summary
}

// CriteriaAverages averages each dimension score across chapters that
// produced a usable result (score_global > 0), rounded to 2 decimals.
func CriteriaAverages(chapters []ChapterConformity) map[string]float64 {
	averages := make(map[string]float64, len(DimensionKeys))
	for _, k := range DimensionKeys {
		averages[k] = 0
	}

	var valid []ChapterConformity
	for _, ch := range chapters {
		if ch.ScoreGlobal > 0 {
			valid = append(valid, ch)
		}
	}
	if len(valid) == 0 {
		return averages
	}
	for _, k := range DimensionKeys {
		var sum float64
		for _, ch := range valid {
			sum += ch.DimensionScore(k)
		}
		averages[k] = Round2(sum / float64(len(valid)))
	}
	return averages
}

// SynthesizeRecommendations merges forces/faiblesses/recommandations across
// all criterion results into deduplicated, capped lists, and selects the
// priority recommendations from the band the final score falls into.
func SynthesizeRecommendations(scores map[string]CriterionResult, finalScore float64) GlobalRecommendations {
	keys := make([]string, 0, len(scores))
	for k := range scores {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var forces, faiblesses, recommandations []string
	for _, k := range keys {
		forces = append(forces, scores[k].Forces...)
		faiblesses = append(faiblesses, scores[k].Faiblesses...)
		recommandations = append(recommandations, scores[k].Recommandations...)
	}

	return GlobalRecommendations{
		Forces:                      capList(dedupKeepOrder(forces), maxForces),
		Faiblesses:                  capList(dedupKeepOrder(faiblesses), maxFaiblesses),
		RecommandationsPrioritaires: PriorityRecommendations(finalScore),
		RecommandationsDetaillees:   capList(dedupKeepOrder(recommandations), maxRecommandations),
	}
}

// PriorityRecommendations returns the fixed template for the score band the
// final score falls into, independent of per-criterion text.
func PriorityRecommendations(finalScore float64) []string {
	switch {
	case finalScore < 40:
		return []string{
			"Refonte complète du contenu nécessaire",
			"Restructuration de l'organisation pédagogique",
			"Amélioration majeure de la clarté",
		}
	case finalScore < 55:
		return []string{
			"Amélioration de la structure générale",
			"Ajout d'exemples et d'exercices",
			"Clarification des objectifs",
		}
	case finalScore < 70:
		return []string{
			"Enrichissement des exemples concrets",
			"Amélioration des méthodes d'évaluation",
			"Renforcement des références",
		}
	default:
		return []string{
			"Optimisation des détails",
			"Enrichissement des ressources complémentaires",
		}
	}
}

// BuildSynthesis produces the chapter-mode verdict.
func BuildSynthesis(chapters []ChapterConformity, summary map[string]int, averages map[string]float64) Synthesis {
	var issues, recs []string
	for _, ch := range chapters {
		recs = append(recs, ch.Recommandations...)
		if ch.Conformite == NonConforme {
			issues = append(issues, fmt.Sprintf("Chapitre %q non conforme", ch.ChapterInfo.Title))
		}
	}

	overall := NonConforme
	switch {
	case summary[Conforme]*2 > len(chapters):
		overall = Conforme
	case summary[PartiellementConforme] > 0:
		overall = PartiellementConforme
	}

	var weak []string
	for _, k := range DimensionKeys {
		if averages[k] < 3 {
			weak = append(weak, k)
		}
	}

	return Synthesis{
		CriticalIssues:          dedupKeepOrder(issues),
		PriorityRecommendations: capList(dedupKeepOrder(recs), maxRecommandations),
		OverallConformity:       overall,
		ImprovementAreas:        weak,
	}
}

// PrioritizeRecommendations labels chapter recommendations by urgency based
// on the final conformity rate.
func PrioritizeRecommendations(chapters []ChapterConformity, finalScore float64) []PrioritizedRecommendation {
	priority := "low"
	switch {
	case finalScore < 50:
		priority = "high"
	case finalScore < 70:
		priority = "medium"
	}

	var recs []string
	for _, ch := range chapters {
		recs = append(recs, ch.Recommandations...)
	}
	recs = capList(dedupKeepOrder(recs), maxRecommandations)

	out := make([]PrioritizedRecommendation, 0, len(recs))
	for _, r := range recs {
		out = append(out, PrioritizedRecommendation{Priority: priority, Message: r})
	}
	return out
}

func dedupKeepOrder(in []string) []string {
	seen := make(map[string]struct{}, len(in))
	out := make([]string, 0, len(in))
	for _, s := range in {
		if s == "" {
			continue
		}
		if _, ok := seen[s]; ok {
			continue
		}
		seen[s] = struct{}{}
		out = append(out, s)
	}
	return out
}

func capList(in []string, max int) []string {
	if len(in) > max {
		return in[:max]
	}
	return in
}

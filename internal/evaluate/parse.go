package evaluate

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"github.com/edaudit/course-auditor/internal/report"
)

// The parsed model response is untrusted input: every field is pulled out
// individually with a safe default substituted for anything missing or of
// the wrong type. Only a body that is not a JSON object at all fails.

func decodeCriterionResult(data []byte) (report.CriterionResult, error) {
	var m map[string]any
	if err := json.Unmarshal(data, &m); err != nil {
		return report.CriterionResult{}, fmt.Errorf("decode criterion result: %w", err)
	}
	return report.CriterionResult{
		Score:           clampScore(numberOf(m["score"])),
		Commentaire:     stringOf(m["commentaire"]),
		Preuves:         stringSliceOf(m["preuves"]),
		Forces:          stringSliceOf(m["forces"]),
		Faiblesses:      stringSliceOf(m["faiblesses"]),
		Recommandations: stringSliceOf(m["recommandations"]),
	}, nil
}

func decodeChapterConformity(data []byte) (report.ChapterConformity, error) {
	var m map[string]any
	if err := json.Unmarshal(data, &m); err != nil {
		return report.ChapterConformity{}, fmt.Errorf("decode chapter conformity: %w", err)
	}

	obj := mapOf(m["objectifs"])
	comp := mapOf(m["competences"])
	cont := mapOf(m["contenu"])
	refs := mapOf(m["references"])
	vol := mapOf(m["volume"])

	out := report.ChapterConformity{
		Objectifs: report.ObjectifsResult{
			Present:     boolOf(obj["present"]),
			Clairs:      boolOf(obj["clairs"]),
			Score:       clampScore(numberOf(obj["score"])),
			Commentaire: stringOf(obj["commentaire"]),
		},
		Competences: report.CompetencesResult{
			Definies:    boolOf(comp["definies"]),
			Explicites:  boolOf(comp["explicites"]),
			Score:       clampScore(numberOf(comp["score"])),
			Commentaire: stringOf(comp["commentaire"]),
		},
		Contenu: report.ContenuResult{
			Structure:   boolOf(cont["structure"]),
			Progression: boolOf(cont["progression"]),
			Adapte:      boolOf(cont["adapte"]),
			Score:       clampScore(numberOf(cont["score"])),
			Commentaire: stringOf(cont["commentaire"]),
		},
		References: report.ReferencesResult{
			Presentes:   boolOf(refs["presentes"]),
			Pertinentes: boolOf(refs["pertinentes"]),
			Score:       clampScore(numberOf(refs["score"])),
			Commentaire: stringOf(refs["commentaire"]),
		},
		Volume: report.VolumeResult{
			Approprie:          boolOf(vol["approprie"]),
			EquilibreCoursTdTp: boolOf(vol["equilibre_cours_td_tp"]),
			Score:              clampScore(numberOf(vol["score"])),
			Commentaire:        stringOf(vol["commentaire"]),
		},
		ScoreGlobal:     clampScore(numberOf(m["score_global"])),
		Conformite:      conformityOf(m["conformite"]),
		Recommandations: stringSliceOf(m["recommandations"]),
	}
	return out, nil
}

// clampScore forces a raw model score into [0,5].
func clampScore(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 5 {
		return 5
	}
	return v
}

// numberOf coerces a loosely-typed score value. Non-numeric values (and
// numeric strings that do not parse) default to 0.
func numberOf(v any) float64 {
	switch t := v.(type) {
	case float64:
		return t
	case int:
		return float64(t)
	case json.Number:
		f, err := t.Float64()
		if err != nil {
			return 0
		}
		return f
	case string:
		f, err := strconv.ParseFloat(strings.TrimSpace(t), 64)
		if err != nil {
			return 0
		}
		return f
	default:
		return 0
	}
}

func stringOf(v any) string {
	s, _ := v.(string)
	return s
}

func stringSliceOf(v any) []string {
	items, ok := v.([]any)
	if !ok {
		return []string{}
	}
	out := make([]string, 0, len(items))
	for _, it := range items {
		switch t := it.(type) {
		case string:
			out = append(out, t)
		case float64, bool:
			out = append(out, fmt.Sprint(t))
		}
	}
	return out
}

func boolOf(v any) bool {
	b, _ := v.(bool)
	return b
}

func mapOf(v any) map[string]any {
	m, _ := v.(map[string]any)
	return m
}

func conformityOf(v any) string {
	switch stringOf(v) {
	case report.Conforme:
		return report.Conforme
	case report.PartiellementConforme:
		return report.PartiellementConforme
	default:
		return report.NonConforme
	}
}

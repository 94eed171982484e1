package rubric

import (
	"encoding/json"
	"log/slog"
	"os"
	"sort"
	"strings"
)

// ExpertProfile augments evaluation prompts with subject-specific context.
type ExpertProfile struct {
	Name           string    `json:"name"`
	AnalysisPrompt string    `json:"analysis_prompt"`
	Expertise      Expertise `json:"expertise"`
}

type Expertise struct {
	KeyConcepts        []string          `json:"key_concepts"`
	EvaluationCriteria map[string]string `json:"evaluation_criteria"`
	PedagogicalFocus   []string          `json:"pedagogical_focus"`
}

type expertDocument struct {
	Subjects map[string]ExpertProfile `json:"subjects"`
}

// Experts holds the optional subject-expert profiles. An absent document
// degrades to generic evaluation mode, never an error.
type Experts struct {
	subjects map[string]ExpertProfile
}

// LoadExperts reads the subject-expert document. A missing or unreadable file
// returns an empty (generic-mode) set.
func LoadExperts(path string, logger *slog.Logger) *Experts {
	if logger == nil {
		logger = slog.Default()
	}
	raw, err := os.ReadFile(path)
	if err != nil {
		logger.Info("experts.generic_mode", "path", path, "reason", err)
		return &Experts{subjects: map[string]ExpertProfile{}}
	}
	var doc expertDocument
	if err := json.Unmarshal(raw, &doc); err != nil {
		logger.Warn("experts.invalid_document", "path", path, "error", err)
		return &Experts{subjects: map[string]ExpertProfile{}}
	}
	if doc.Subjects == nil {
		doc.Subjects = map[string]ExpertProfile{}
	}
	return &Experts{subjects: doc.Subjects}
}

// Subjects returns the available subject keys, sorted.
func (e *Experts) Subjects() []string {
	keys := make([]string, 0, len(e.subjects))
	for k := range e.subjects {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Profile returns the profile for a subject key, if defined.
func (e *Experts) Profile(subject string) (ExpertProfile, bool) {
	p, ok := e.subjects[subject]
	return p, ok
}

// PromptContext renders the expert block appended to criterion prompts.
// Empty when the subject is unknown (generic mode).
func (e *Experts) PromptContext(subject string) string {
	p, ok := e.subjects[subject]
	if !ok {
		return ""
	}
	var b strings.Builder
	b.WriteString("\nCONTEXTE EXPERT - ")
	b.WriteString(p.Name)
	b.WriteString(" :\n")
	b.WriteString(p.AnalysisPrompt)
	if len(p.Expertise.KeyConcepts) > 0 {
		b.WriteString("\n\nCONCEPTS CLÉS À ÉVALUER :\n")
		b.WriteString(strings.Join(p.Expertise.KeyConcepts, ", "))
	}
	if len(p.Expertise.EvaluationCriteria) > 0 {
		b.WriteString("\n\nCRITÈRES D'ÉVALUATION SPÉCIALISÉS :\n")
		keys := make([]string, 0, len(p.Expertise.EvaluationCriteria))
		for k := range p.Expertise.EvaluationCriteria {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		for _, k := range keys {
			b.WriteString("- " + k + ": " + p.Expertise.EvaluationCriteria[k] + "\n")
		}
	}
	if len(p.Expertise.PedagogicalFocus) > 0 {
		b.WriteString("\nFOCUS PÉDAGOGIQUE :\n")
		for _, f := range p.Expertise.PedagogicalFocus {
			b.WriteString("- " + f + "\n")
		}
	}
	return b.String()
}

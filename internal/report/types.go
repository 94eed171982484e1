// Package report defines the audit report data model and the pure scoring
// logic that turns per-criterion or per-chapter results into a weighted final
// score, a letter grade and synthesized recommendations.
package report

import "github.com/edaudit/course-auditor/internal/extract"

// Conformity classifications for a chapter.
const (
	Conforme              = "conforme"
	PartiellementConforme = "partiellement_conforme"
	NonConforme           = "non_conforme"
)

// DimensionKeys lists the five fixed chapter-conformity dimensions, in the
// order they are reported.
var DimensionKeys = []string{"objectifs", "competences", "contenu", "references", "volume"}

// CriterionResult is the outcome of evaluating one rubric criterion.
// Score is always within [0,5]; out-of-range and non-numeric model values
// are coerced before this struct is built.
type CriterionResult struct {
	Score           float64  `json:"score"`
	Commentaire     string   `json:"commentaire"`
	Preuves         []string `json:"preuves"`
	Forces          []string `json:"forces"`
	Faiblesses      []string `json:"faiblesses"`
	Recommandations []string `json:"recommandations"`
}

// ObjectifsResult reports whether learning objectives exist and are clear.
type ObjectifsResult struct {
	Present     bool    `json:"present"`
	Clairs      bool    `json:"clairs"`
	Score       float64 `json:"score"`
	Commentaire string  `json:"commentaire"`
}

// CompetencesResult reports whether target skills are defined and explicit.
type CompetencesResult struct {
	Definies    bool    `json:"definies"`
	Explicites  bool    `json:"explicites"`
	Score       float64 `json:"score"`
	Commentaire string  `json:"commentaire"`
}

// ContenuResult reports on structure, progression and fit of the content.
type ContenuResult struct {
	Structure   bool    `json:"structure"`
	Progression bool    `json:"progression"`
	Adapte      bool    `json:"adapte"`
	Score       float64 `json:"score"`
	Commentaire string  `json:"commentaire"`
}

// ReferencesResult reports on bibliographic references and resources.
type ReferencesResult struct {
	Presentes   bool    `json:"presentes"`
	Pertinentes bool    `json:"pertinentes"`
	Score       float64 `json:"score"`
	Commentaire string  `json:"commentaire"`
}

// VolumeResult reports whether the content volume is appropriate.
type VolumeResult struct {
	Approprie          bool    `json:"approprie"`
	EquilibreCoursTdTp bool    `json:"equilibre_cours_td_tp"`
	Score              float64 `json:"score"`
	Commentaire        string  `json:"commentaire"`
}

// ChapterInfo identifies the chapter a conformity result belongs to.
type ChapterInfo struct {
	Title         string `json:"title"`
	WordCount     int    `json:"word_count"`
	ChapterNumber int    `json:"chapter_number"`
}

// ChapterConformity is the outcome of evaluating one chapter against the
// five fixed dimensions.
type ChapterConformity struct {
	ChapterInfo     ChapterInfo       `json:"chapter_info"`
	Objectifs       ObjectifsResult   `json:"objectifs"`
	Competences     CompetencesResult `json:"competences"`
	Contenu         ContenuResult     `json:"contenu"`
	References      ReferencesResult  `json:"references"`
	Volume          VolumeResult      `json:"volume"`
	ScoreGlobal     float64           `json:"score_global"`
	Conformite      string            `json:"conformite"`
	Recommandations []string          `json:"recommandations"`
}

// DimensionScore returns the score of a dimension by key.
func (c ChapterConformity) DimensionScore(key string) float64 {
	switch key {
	case "objectifs":
		return c.Objectifs.Score
	case "competences":
		return c.Competences.Score
	case "contenu":
		return c.Contenu.Score
	case "references":
		return c.References.Score
	case "volume":
		return c.Volume.Score
	}
	return 0
}

// Metadata describes the audited document.
type Metadata struct {
	Filename        string `json:"filename"`
	AuditType       string `json:"audit_type,omitempty"`
	SupportDocument bool   `json:"support_document,omitempty"`
	AuditDate       string `json:"audit_date"`
	GrilleVersion   string `json:"grille_version"`
	TotalPages      int    `json:"total_pages"`
	WordCount       int    `json:"word_count"`
	ChaptersCount   int    `json:"chapters_count,omitempty"`
	ModulePages     int    `json:"module_pages,omitempty"`
	SupportPages    int    `json:"support_pages,omitempty"`
}

// Scores carries the aggregate outcome.
type Scores struct {
	FinalScore       float64                    `json:"final_score"`
	Grade            string                     `json:"grade"`
	GradeDescription string                     `json:"grade_description"`
	CriteriaScores   map[string]CriterionResult `json:"criteria_scores,omitempty"`
}

// SectionsCheck is the keyword-based mandatory-section presence check.
type SectionsCheck struct {
	FoundSections   []string `json:"found_sections"`
	MissingSections []string `json:"missing_sections"`
	CompletionRate  float64  `json:"completion_rate"`
}

// ElementsCount holds the count-based detection of examples and exercises.
type ElementsCount struct {
	ExamplesCount  int `json:"examples_count"`
	ExercisesCount int `json:"exercises_count"`
}

// GlobalRecommendations is the synthesized view across all criteria.
type GlobalRecommendations struct {
	Forces                      []string `json:"forces"`
	Faiblesses                  []string `json:"faiblesses"`
	RecommandationsPrioritaires []string `json:"recommandations_prioritaires"`
	RecommandationsDetaillees   []string `json:"recommandations_detaillees"`
}

// Analysis groups the supplementary non-AI metrics.
type Analysis struct {
	MandatorySections     SectionsCheck         `json:"mandatory_sections"`
	ElementsCount         ElementsCount         `json:"elements_count"`
	GlobalRecommendations GlobalRecommendations `json:"global_recommendations"`
}

// ChapterAnalysis summarizes a chapter-mode audit.
type ChapterAnalysis struct {
	ConformitySummary map[string]int     `json:"conformity_summary"`
	CriteriaAverages  map[string]float64 `json:"criteria_averages"`
	ConformityRate    float64            `json:"conformity_rate"`
}

// Synthesis is the high-level verdict of a chapter-mode audit.
type Synthesis struct {
	CriticalIssues          []string `json:"critical_issues"`
	PriorityRecommendations []string `json:"priority_recommendations"`
	OverallConformity       string   `json:"overall_conformity"`
	ImprovementAreas        []string `json:"improvement_areas"`
}

// PrioritizedRecommendation pairs a recommendation with its urgency.
type PrioritizedRecommendation struct {
	Priority string `json:"priority"`
	Message  string `json:"message"`
}

// RawData keeps extraction traces useful for later inspection.
type RawData struct {
	ExtractedTextPreview string             `json:"extracted_text_preview"`
	PDFStatistics        extract.TextStats  `json:"pdf_statistics"`
	SupportStatistics    *extract.TextStats `json:"support_statistics,omitempty"`
}

// AuditReport is the persisted outcome of one audit invocation. Constructed
// once, immutable after return; a later view always reloads from storage.
type AuditReport struct {
	Error           string                      `json:"error,omitempty"`
	Metadata        Metadata                    `json:"metadata"`
	Scores          Scores                      `json:"scores"`
	Analysis        *Analysis                   `json:"analysis,omitempty"`
	Chapters        []ChapterConformity         `json:"chapters,omitempty"`
	ChapterAnalysis *ChapterAnalysis            `json:"chapter_analysis,omitempty"`
	GlobalAnalysis  *AuditReport                `json:"global_analysis,omitempty"`
	Synthesis       *Synthesis                  `json:"synthesis,omitempty"`
	Recommendations []PrioritizedRecommendation `json:"recommendations,omitempty"`
	RawData         *RawData                    `json:"raw_data,omitempty"`
}

// HistoryEntry is one line of the cumulative audit ledger.
type HistoryEntry struct {
	ID         int     `json:"id"`
	Filename   string  `json:"filename"`
	AuditDate  string  `json:"audit_date"`
	FinalScore float64 `json:"final_score"`
	Grade      string  `json:"grade"`
	JSONFile   string  `json:"json_file"`
	WordCount  int     `json:"word_count"`
}

// HistoryMetadata describes the index itself.
type HistoryMetadata struct {
	CreatedDate string `json:"created_date,omitempty"`
	TotalAudits int    `json:"total_audits"`
	LastUpdated string `json:"last_updated,omitempty"`
	Version     string `json:"version,omitempty"`
}

// HistoryIndex is the single source of truth for which reports exist.
type HistoryIndex struct {
	Metadata HistoryMetadata `json:"metadata"`
	Audits   []HistoryEntry  `json:"audits"`
}

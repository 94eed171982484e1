// Package rubric loads the evaluation grid (criteria, keywords, mandatory
// sections, grading scale) and the optional subject-expert profiles. Both are
// plain JSON data documents, loaded once and read-only afterwards.
package rubric

import (
	"encoding/json"
	"fmt"
	"os"
	"sort"

	"github.com/edaudit/course-auditor/internal/common"
)

// Criterion is one weighted rubric dimension.
type Criterion struct {
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Indicators  []string `json:"indicators"`
	Weight      float64  `json:"weight"`
}

// GradeBand maps a contiguous score range to a letter grade.
type GradeBand struct {
	Grade       string
	MinScore    float64
	MaxScore    float64
	Description string
}

type gradeBandJSON struct {
	MinScore    float64 `json:"min_score"`
	MaxScore    float64 `json:"max_score"`
	Description string  `json:"description"`
}

type rubricDocument struct {
	Metadata struct {
		Version string `json:"version"`
	} `json:"metadata"`
	Criteria          map[string]Criterion     `json:"criteria"`
	Keywords          map[string][]string      `json:"keywords"`
	MandatorySections []string                 `json:"mandatory_sections"`
	GradingScale      map[string]gradeBandJSON `json:"grading_scale"`
}

// Store holds the loaded rubric. Read-only after Load.
type Store struct {
	version           string
	criteria          map[string]Criterion
	criterionKeys     []string // sorted, fixes evaluation order
	keywords          map[string][]string
	mandatorySections []string
	bands             []GradeBand // sorted ascending by MinScore
}

// Load reads and validates the rubric document. A missing or invalid file is
// a fatal configuration error for the engine.
func Load(path string) (*Store, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: rubric %q: %v", common.ErrConfiguration, path, err)
	}
	var doc rubricDocument
	if err := json.Unmarshal(raw, &doc); err != nil {
		return nil, fmt.Errorf("%w: rubric %q: %v", common.ErrConfiguration, path, err)
	}
	if len(doc.Criteria) == 0 {
		return nil, fmt.Errorf("%w: rubric %q: no criteria defined", common.ErrConfiguration, path)
	}
	if len(doc.GradingScale) == 0 {
		return nil, fmt.Errorf("%w: rubric %q: no grading scale defined", common.ErrConfiguration, path)
	}

	keys := make([]string, 0, len(doc.Criteria))
	for k, c := range doc.Criteria {
		if c.Weight <= 0 {
			return nil, fmt.Errorf("%w: rubric %q: criterion %q has non-positive weight", common.ErrConfiguration, path, k)
		}
		keys = append(keys, k)
	}
	sort.Strings(keys)

	// JSON objects are unordered in Go; materialize the scale into a slice
	// sorted by min_score so "first matching band" is deterministic.
	bands := make([]GradeBand, 0, len(doc.GradingScale))
	for grade, b := range doc.GradingScale {
		if b.MinScore < 0 || b.MaxScore > 100 || b.MinScore > b.MaxScore {
			return nil, fmt.Errorf("%w: rubric %q: grade %q has invalid range [%v,%v]",
				common.ErrConfiguration, path, grade, b.MinScore, b.MaxScore)
		}
		bands = append(bands, GradeBand{
			Grade:       grade,
			MinScore:    b.MinScore,
			MaxScore:    b.MaxScore,
			Description: b.Description,
		})
	}
	sort.Slice(bands, func(i, j int) bool { return bands[i].MinScore < bands[j].MinScore })

	return &Store{
		version:           doc.Metadata.Version,
		criteria:          doc.Criteria,
		criterionKeys:     keys,
		keywords:          doc.Keywords,
		mandatorySections: doc.MandatorySections,
		bands:             bands,
	}, nil
}

// Version returns the grille version string from the document metadata.
func (s *Store) Version() string { return s.version }

// CriterionKeys returns the criterion keys in their fixed evaluation order.
func (s *Store) CriterionKeys() []string {
	out := make([]string, len(s.criterionKeys))
	copy(out, s.criterionKeys)
	return out
}

// Criterion returns the criterion for key, if defined.
func (s *Store) Criterion(key string) (Criterion, bool) {
	c, ok := s.criteria[key]
	return c, ok
}

// Keywords returns the keyword hints for a criterion key.
func (s *Store) Keywords(key string) []string { return s.keywords[key] }

// MandatorySections returns the section names every module must contain.
func (s *Store) MandatorySections() []string {
	out := make([]string, len(s.mandatorySections))
	copy(out, s.mandatorySections)
	return out
}

// Weight returns the weight of a criterion, or 0 if unknown.
func (s *Store) Weight(key string) float64 {
	return s.criteria[key].Weight
}

// GradeFor returns the first band (ascending by min_score) whose inclusive
// range contains score. Scores outside every band fall back to grade E.
func (s *Store) GradeFor(score float64) GradeBand {
	for _, b := range s.bands {
		if score >= b.MinScore && score <= b.MaxScore {
			return b
		}
	}
	return GradeBand{Grade: "E", Description: "Non évalué"}
}

package report

import (
	"regexp"
	"strings"
)

// Keyword synonyms per mandatory section. Sections without an entry fall
// back to matching their own name.
var sectionKeywords = map[string][]string{
	"introduction":      {"introduction", "présentation", "avant-propos"},
	"objectifs":         {"objectif", "but", "finalité", "compétence"},
	"contenu principal": {"chapitre", "section", "partie", "cours"},
	"conclusion":        {"conclusion", "synthèse", "bilan", "résumé"},
}

var examplePatterns = []*regexp.Regexp{
	regexp.MustCompile(`exemple\s*\d*\s*:`),
	regexp.MustCompile(`par exemple`),
	regexp.MustCompile(`illustration\s*\d*`),
	regexp.MustCompile(`cas\s*\d*\s*:`),
}

var exercisePatterns = []*regexp.Regexp{
	regexp.MustCompile(`exercice\s*\d*`),
	regexp.MustCompile(`activité\s*\d*`),
	regexp.MustCompile(`travail\s*pratique`),
	regexp.MustCompile(`tp\s*\d*`),
	regexp.MustCompile(`question\s*\d*`),
}

// CheckMandatorySections reports which mandatory sections the document
// contains, by keyword presence.
func CheckMandatorySections(text string, mandatory []string) SectionsCheck {
	textLower := strings.ToLower(text)

	check := SectionsCheck{
		FoundSections:   []string{},
		MissingSections: []string{},
	}
	for _, section := range mandatory {
		keywords, ok := sectionKeywords[section]
		if !ok {
			keywords = []string{section}
		}
		found := false
		for _, kw := range keywords {
			if strings.Contains(textLower, kw) {
				found = true
				break
			}
		}
		if found {
			check.FoundSections = append(check.FoundSections, section)
		} else {
			check.MissingSections = append(check.MissingSections, section)
		}
	}
	if len(mandatory) > 0 {
		check.CompletionRate = Round2(float64(len(check.FoundSections)) / float64(len(mandatory)) * 100)
	}
	return check
}

// CountElements counts worked examples and exercises by pattern matching.
func CountElements(text string) ElementsCount {
	textLower := strings.ToLower(text)

	var count ElementsCount
	for _, re := range examplePatterns {
		count.ExamplesCount += len(re.FindAllString(textLower, -1))
	}
	for _, re := range exercisePatterns {
		count.ExercisesCount += len(re.FindAllString(textLower, -1))
	}
	return count
}

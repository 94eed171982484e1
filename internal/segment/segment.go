// Package segment splits extracted course text into an ordered sequence of
// chapters using heading heuristics. Segmentation never fails: a document
// with no recognizable headings becomes a single pseudo-chapter.
package segment

import (
	"regexp"
	"strings"
)

// Chapter is one detected unit of the document.
type Chapter struct {
	Title     string `json:"title"`
	Content   string `json:"content"`
	WordCount int    `json:"word_count"`
}

// FallbackTitle names the pseudo-chapter used when nothing is detected.
const FallbackTitle = "Document complet"

// A matcher inspects one trimmed line (and the following raw line, for
// standalone-heading detection) and reports the chapter title on match.
type matcher func(line, next string) (title string, ok bool)

var (
	reChapitre = regexp.MustCompile(`(?i)^chapitre\s+(\d+|[ivxlc]+)\s*[:.\-]?\s*(.*)$`)
	rePartie   = regexp.MustCompile(`(?i)^partie\s+(\d+|[ivxlc]+)\s*[:.\-]?\s*(.*)$`)
	reSection  = regexp.MustCompile(`(?i)^section\s+(\d+(?:\.\d+)*)\s*[:.\-]?\s*(.*)$`)
	reNumbered = regexp.MustCompile(`^(\d+(?:\.\d+)*)\s*[:.\-]\s*(.+)$`)
	reUpper    = regexp.MustCompile(`^[A-ZÀ-Þ]`)
)

func submatchTitle(re *regexp.Regexp) matcher {
	return func(line, _ string) (string, bool) {
		m := re.FindStringSubmatch(line)
		if m == nil {
			return "", false
		}
		num, rest := m[1], strings.TrimSpace(m[2])
		if rest == "" {
			return line, true
		}
		return num + " - " + rest, true
	}
}

// standaloneHeading accepts a short capitalized line that stands on its own,
// i.e. the next raw line is blank.
func standaloneHeading(line, next string) (string, bool) {
	if len(line) < 10 || len(line) > 80 {
		return "", false
	}
	if !reUpper.MatchString(line) {
		return "", false
	}
	if strings.TrimSpace(next) != "" {
		return "", false
	}
	return line, true
}

// Tried in order; first match wins.
var headingMatchers = []matcher{
	submatchTitle(reChapitre),
	submatchTitle(rePartie),
	submatchTitle(reSection),
	submatchTitle(reNumbered),
	standaloneHeading,
}

// Split segments text into chapters. The result is never empty.
func Split(text string) []Chapter {
	rawLines := strings.Split(text, "\n")

	var chapters []Chapter
	var currentTitle string
	var content []string

	flush := func() {
		if currentTitle != "" && len(content) > 0 {
			body := strings.Join(content, "\n")
			chapters = append(chapters, Chapter{
				Title:     currentTitle,
				Content:   body,
				WordCount: len(strings.Fields(body)),
			})
		}
	}

	for i, raw := range rawLines {
		line := strings.TrimSpace(raw)
		if line == "" {
			continue
		}
		next := ""
		if i+1 < len(rawLines) {
			next = rawLines[i+1]
		}

		title, isHeading := "", false
		for _, m := range headingMatchers {
			if t, ok := m(line, next); ok {
				title, isHeading = t, true
				break
			}
		}

		if isHeading {
			flush()
			currentTitle = title
			content = content[:0]
			continue
		}
		if currentTitle != "" {
			content = append(content, line)
		}
	}
	flush()

	if len(chapters) == 0 {
		return []Chapter{{
			Title:     FallbackTitle,
			Content:   text,
			WordCount: len(strings.Fields(text)),
		}}
	}
	return chapters
}

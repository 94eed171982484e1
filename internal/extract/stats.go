package extract

import (
	"regexp"
	"sort"
	"strings"
	"unicode/utf8"
)

var (
	reWord  = regexp.MustCompile(`\b\w{4,}\b`)
	reEmail = regexp.MustCompile(`\b[A-Za-z0-9._%+-]+@[A-Za-z0-9.-]+\.[A-Za-z]{2,}\b`)
	reURL   = regexp.MustCompile(`https?://[^\s<>"')]+`)
	reDate  = regexp.MustCompile(`\b\d{1,2}[/-]\d{1,2}[/-]\d{2,4}\b`)
)

// KeywordFreq is one entry of the top-keyword table.
type KeywordFreq struct {
	Word  string `json:"word"`
	Count int    `json:"count"`
}

// TextStats carries the non-AI document metrics stored under report raw_data.
type TextStats struct {
	WordCount      int           `json:"word_count"`
	CharacterCount int           `json:"character_count"`
	LineCount      int           `json:"line_count"`
	TopKeywords    []KeywordFreq `json:"top_keywords"`
	Emails         []string      `json:"emails"`
	URLs           []string      `json:"urls"`
	Dates          []string      `json:"dates"`
	ContentPreview string        `json:"content_preview"`
}

const previewLen = 500

// AnalyzeText computes basic statistics over extracted text.
func AnalyzeText(text string) TextStats {
	stats := TextStats{
		WordCount:      len(strings.Fields(text)),
		CharacterCount: len(text),
		LineCount:      len(strings.Split(text, "\n")),
		Emails:         dedup(reEmail.FindAllString(text, -1)),
		URLs:           dedup(reURL.FindAllString(text, -1)),
		Dates:          dedup(reDate.FindAllString(text, -1)),
	}

	freq := map[string]int{}
	for _, w := range reWord.FindAllString(strings.ToLower(text), -1) {
		freq[w]++
	}
	keywords := make([]KeywordFreq, 0, len(freq))
	for w, n := range freq {
		keywords = append(keywords, KeywordFreq{Word: w, Count: n})
	}
	sort.Slice(keywords, func(i, j int) bool {
		if keywords[i].Count != keywords[j].Count {
			return keywords[i].Count > keywords[j].Count
		}
		return keywords[i].Word < keywords[j].Word
	})
	if len(keywords) > 10 {
		keywords = keywords[:10]
	}
	stats.TopKeywords = keywords

	if len(text) > previewLen {
		cut := previewLen
		// Never split a multi-byte rune at the preview boundary.
		for cut > 0 && !utf8.RuneStart(text[cut]) {
			cut--
		}
		stats.ContentPreview = text[:cut] + "..."
	} else {
		stats.ContentPreview = text
	}
	return stats
}

func dedup(in []string) []string {
	seen := map[string]struct{}{}
	out := make([]string, 0, len(in))
	for _, s := range in {
		if _, ok := seen[s]; ok {
			continue
		}
		seen[s] = struct{}{}
		out = append(out, s)
	}
	return out
}

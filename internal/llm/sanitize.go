package llm

import "strings"

// StripCodeFence removes a surrounding markdown code fence (``` or ```json)
// from a model response. Models regularly fence their JSON even when asked
// not to; the wrapper must be gone before structured parsing.
func StripCodeFence(s string) string {
	s = strings.TrimSpace(s)
	if !strings.HasPrefix(s, "```") {
		return s
	}
	s = strings.TrimPrefix(s, "```")
	// Language tag on the opening fence, e.g. ```json
	if i := strings.IndexByte(s, '\n'); i >= 0 {
		first := strings.TrimSpace(s[:i])
		if first == "json" || first == "JSON" || first == "" {
			s = s[i+1:]
		}
	}
	s = strings.TrimSpace(s)
	s = strings.TrimSuffix(s, "```")
	return strings.TrimSpace(s)
}

// ExtractJSONObject returns the outermost {...} slice of s, tolerating prose
// before or after the object. Returns s unchanged when no braces are found.
func ExtractJSONObject(s string) string {
	start := strings.IndexByte(s, '{')
	end := strings.LastIndexByte(s, '}')
	if start < 0 || end <= start {
		return s
	}
	return s[start : end+1]
}

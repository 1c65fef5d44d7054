package render

import "regexp"

// DefaultPattern matches bracketed uppercase keywords such as [NAME] or
// [LAST NAME], including the delimiters. Pipes and underscores are allowed so
// tokens like [FIRST|LAST] and [API_KEY] work out of the box.
var DefaultPattern = regexp.MustCompile(`\[[A-Z _|]+\]`)

// ExtractKeywords scans text with pattern and returns every matched token in
// first-seen order, deduplicated, case-sensitive. It is pure: syncing tokens
// into a parameter store is the renderer's job, not the extractor's.
func ExtractKeywords(text string, pattern *regexp.Regexp) []string {
	if pattern == nil {
		pattern = DefaultPattern
	}
	matches := pattern.FindAllString(text, -1)
	if len(matches) == 0 {
		return nil
	}
	seen := make(map[string]bool, len(matches))
	keywords := make([]string, 0, len(matches))
	for _, m := range matches {
		if seen[m] {
			continue
		}
		seen[m] = true
		keywords = append(keywords, m)
	}
	return keywords
}

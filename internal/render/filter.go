package render

import "strings"

const (
	// Terminator marks the start of a trailing documentation section that is
	// never part of the rendered output.
	Terminator = "__END__"

	commentSentinel   = "#"
	directiveSentinel = "//"
)

// Clean shapes raw template text for rendering:
//
//  1. everything from the first line equal to __END__ (trailing whitespace
//     ignored) onward is discarded,
//  2. comment lines (trimmed content starting with #) are discarded,
//  3. blank lines at the very start are discarded.
//
// Directive lines survive Clean; the renderer replaces them in place after
// dispatch. Remaining lines are joined with a single newline.
func Clean(text string) string {
	lines := splitLines(text)
	lines = truncateAtTerminator(lines)

	kept := make([]string, 0, len(lines))
	for _, line := range lines {
		if strings.HasPrefix(strings.TrimLeft(line, " \t"), commentSentinel) {
			continue
		}
		kept = append(kept, line)
	}
	return strings.Join(dropLeadingBlanks(kept), "\n")
}

// StripDirectives removes directive lines from text. A line is a directive
// iff its content begins with // once leading whitespace is stripped; // in
// the middle of a line (URLs, inline code) does not count.
func StripDirectives(text string) string {
	lines := splitLines(text)
	kept := make([]string, 0, len(lines))
	for _, line := range lines {
		if IsDirectiveLine(line) {
			continue
		}
		kept = append(kept, line)
	}
	return strings.Join(kept, "\n")
}

// Filter returns the plain-text view of raw template text: no __END__
// section, no comments, no directives, no leading blanks.
func Filter(text string) string {
	return strings.Join(dropLeadingBlanks(splitLines(StripDirectives(Clean(text)))), "\n")
}

// IsDirectiveLine reports whether line qualifies as a directive.
func IsDirectiveLine(line string) bool {
	return strings.HasPrefix(strings.TrimLeft(line, " \t"), directiveSentinel)
}

func splitLines(text string) []string {
	if text == "" {
		return nil
	}
	return strings.Split(text, "\n")
}

func truncateAtTerminator(lines []string) []string {
	for i, line := range lines {
		if strings.TrimRight(line, " \t\r") == Terminator {
			return lines[:i]
		}
	}
	return lines
}

func dropLeadingBlanks(lines []string) []string {
	for len(lines) > 0 && strings.TrimSpace(lines[0]) == "" {
		lines = lines[1:]
	}
	return lines
}

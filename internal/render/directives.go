package render

import (
	"context"
	"strings"
)

// DirectiveEntry is one directive line found in post-substitution text. Raw
// is the full line as it appears (leading whitespace included), Name the
// first whitespace-delimited token after the // sentinel, and Args the
// remaining tokens joined with single spaces.
type DirectiveEntry struct {
	Raw  string
	Name string
	Args string
}

// Dispatcher resolves collected directives into replacement text. The
// returned map is keyed by DirectiveEntry.Raw. Run never fails: unknown or
// broken directives resolve to literal "Error: ..." text so one bad directive
// cannot abort an otherwise valid render.
type Dispatcher interface {
	Run(ctx context.Context, entries []DirectiveEntry) map[string]string
}

// CollectDirectives scans text top to bottom and returns its directive lines
// in order of first appearance. Identical raw lines collapse to a single
// entry, so a directive repeated verbatim is dispatched once and every
// occurrence receives the same replacement.
//
// Collection runs on post-substitution text so dynamically named directives
// ("//[COMMAND] [OPTIONS]") work after their keywords are filled in.
func CollectDirectives(text string) []DirectiveEntry {
	entries := CollectAllDirectives(text)
	if len(entries) == 0 {
		return entries
	}
	seen := make(map[string]bool, len(entries))
	deduped := entries[:0]
	for _, e := range entries {
		if seen[e.Raw] {
			continue
		}
		seen[e.Raw] = true
		deduped = append(deduped, e)
	}
	return deduped
}

// CollectAllDirectives is CollectDirectives without the duplicate collapse:
// every directive line yields its own entry, repeats included. Dispatchers
// whose directives have side effects per occurrence can use this variant.
func CollectAllDirectives(text string) []DirectiveEntry {
	var entries []DirectiveEntry
	for _, line := range splitLines(text) {
		if !IsDirectiveLine(line) {
			continue
		}
		entries = append(entries, parseDirective(line))
	}
	return entries
}

func parseDirective(line string) DirectiveEntry {
	trimmed := strings.TrimLeft(line, " \t")
	fields := strings.Fields(strings.TrimPrefix(trimmed, directiveSentinel))
	entry := DirectiveEntry{Raw: line}
	if len(fields) > 0 {
		entry.Name = fields[0]
		entry.Args = strings.Join(fields[1:], " ")
	}
	return entry
}

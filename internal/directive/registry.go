package directive

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/isaacphi/promptstash/internal/render"
)

// HandlerFunc implements one directive. args are the whitespace-split
// directive arguments. A returned error becomes inline "Error: ..." text in
// the rendered output; it never aborts the render.
type HandlerFunc func(ctx context.Context, args []string) (string, error)

// reservedNames are handler names that collide with Registry internals and
// can never be registered or invoked from a template.
var reservedNames = map[string]bool{
	"run":      true,
	"register": true,
}

// Registry is the concrete directive dispatcher: a name-to-handler table with
// the built-in include directive. It satisfies render.Dispatcher.
//
// The include loop guard is per Run, so a Registry must not be shared by
// concurrent renders. That matches the pipeline's single-threaded contract.
type Registry struct {
	handlers map[string]HandlerFunc
	root     string
	logger   *slog.Logger
	included map[string]bool
}

// Option configures a Registry.
type Option func(*Registry)

// WithRoot sets the directory that relative include paths resolve against.
func WithRoot(dir string) Option {
	return func(r *Registry) { r.root = dir }
}

// WithLogger sets the logger used for debug output.
func WithLogger(l *slog.Logger) Option {
	return func(r *Registry) { r.logger = l }
}

// New returns a Registry with the built-in directives registered. Relative
// include paths resolve against the current directory unless WithRoot is
// given.
func New(opts ...Option) *Registry {
	r := &Registry{
		handlers: make(map[string]HandlerFunc),
		root:     ".",
		logger:   slog.Default(),
	}
	for _, opt := range opts {
		opt(r)
	}
	r.handlers["include"] = r.include
	r.handlers["import"] = r.include
	return r
}

// Register adds a custom directive handler. Reserved names are rejected.
func (r *Registry) Register(name string, fn HandlerFunc) error {
	if name == "" || fn == nil {
		return fmt.Errorf("directive registration requires a name and a handler")
	}
	if reservedNames[name] {
		return fmt.Errorf("directive name %q is reserved", name)
	}
	r.handlers[name] = fn
	return nil
}

// Run resolves every entry and returns replacement text keyed by raw line.
// It never fails: unknown names, reserved names and handler errors all
// resolve to literal error text.
func (r *Registry) Run(ctx context.Context, entries []render.DirectiveEntry) map[string]string {
	r.included = make(map[string]bool)
	results := make(map[string]string, len(entries))
	for _, e := range entries {
		results[e.Raw] = r.resolve(ctx, e)
	}
	return results
}

func (r *Registry) resolve(ctx context.Context, e render.DirectiveEntry) string {
	if e.Name == "" || reservedNames[e.Name] {
		return unknownDirective(e)
	}
	handler, ok := r.handlers[e.Name]
	if !ok {
		return unknownDirective(e)
	}
	var args []string
	if e.Args != "" {
		args = strings.Fields(e.Args)
	}
	out, err := handler(ctx, args)
	if err != nil {
		r.logger.Debug("directive failed", "name", e.Name, "error", err)
		return "Error: " + err.Error()
	}
	return out
}

// resolveText resolves directive lines nested inside already-resolved
// content, e.g. an included file that itself contains directives.
func (r *Registry) resolveText(ctx context.Context, text string) string {
	entries := render.CollectDirectives(text)
	if len(entries) == 0 {
		return text
	}
	resolved := make(map[string]string, len(entries))
	for _, e := range entries {
		resolved[e.Raw] = r.resolve(ctx, e)
	}
	lines := strings.Split(text, "\n")
	out := make([]string, 0, len(lines))
	for _, line := range lines {
		if replacement, ok := resolved[line]; ok && render.IsDirectiveLine(line) {
			out = append(out, replacement)
			continue
		}
		out = append(out, line)
	}
	return strings.Join(out, "\n")
}

func unknownDirective(e render.DirectiveEntry) string {
	return fmt.Sprintf("Error: Unknown directive '%s'", strings.TrimSpace(e.Raw))
}

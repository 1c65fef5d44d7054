package render

import (
	"context"
	"fmt"
	"log/slog"
	"regexp"
	"strings"

	"github.com/isaacphi/promptstash/internal/domain"
	"github.com/isaacphi/promptstash/internal/storage"
)

// Renderer turns a prompt document into final text. Each render call is a
// strictly sequential pipeline: clean the raw text, substitute parameters,
// collect directives, dispatch them, splice the results back in. The keyword
// pattern and the dispatcher are per-renderer configuration rather than
// process globals, so tests and callers with different conventions do not
// interfere with each other.
type Renderer struct {
	store      storage.Store
	dispatcher Dispatcher
	pattern    *regexp.Regexp
	logger     *slog.Logger
}

// Option configures a Renderer.
type Option func(*Renderer)

// WithDispatcher sets the directive dispatcher. Without one, directive lines
// are dropped from the output, same as Filter.
func WithDispatcher(d Dispatcher) Option {
	return func(r *Renderer) { r.dispatcher = d }
}

// WithPattern sets the keyword pattern used for extraction and substitution.
func WithPattern(p *regexp.Regexp) Option {
	return func(r *Renderer) { r.pattern = p }
}

// WithLogger sets the logger used for debug output.
func WithLogger(l *slog.Logger) Option {
	return func(r *Renderer) { r.logger = l }
}

// New builds a Renderer on top of the given storage collaborator.
func New(store storage.Store, opts ...Option) (*Renderer, error) {
	if store == nil {
		return nil, domain.InvalidArgumentError{Reason: "renderer requires a storage collaborator"}
	}
	r := &Renderer{
		store:   store,
		pattern: DefaultPattern,
		logger:  slog.Default(),
	}
	for _, opt := range opts {
		opt(r)
	}
	if r.pattern == nil {
		r.pattern = DefaultPattern
	}
	return r, nil
}

// Load fetches a prompt from storage. Storage errors, including
// domain.NotFoundError, propagate unmodified.
func (r *Renderer) Load(ctx context.Context, id string) (*domain.Prompt, error) {
	p, err := domain.NewPrompt(id)
	if err != nil {
		return nil, err
	}
	rec, err := r.store.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	p.RawText = rec.Text
	p.Params = domain.ParameterStoreFromMap(rec.Parameters)
	return p, nil
}

// Render produces final text from p.RawText and p.Params.
//
// Keyword discovery runs over the raw text so every keyword anywhere in the
// document, including inside comments and directive lines, gets a parameter
// store entry. Substitution then runs over the cleaned text only. Keywords
// with no current value stay as literal tokens in the output.
func (r *Renderer) Render(ctx context.Context, p *domain.Prompt) (string, error) {
	if p == nil {
		return "", domain.InvalidInputError{Reason: "cannot render a nil prompt"}
	}
	if p.Params == nil {
		return "", domain.InvalidInputError{Reason: fmt.Sprintf("prompt %q has no parameter store", p.ID)}
	}

	for _, keyword := range ExtractKeywords(p.RawText, r.pattern) {
		p.Params.EnsureKey(keyword)
	}

	text := Clean(p.RawText)
	text = r.substitute(text, p.Params)

	entries := CollectDirectives(text)
	if len(entries) > 0 {
		var resolved map[string]string
		if r.dispatcher != nil {
			resolved = r.dispatcher.Run(ctx, entries)
		}
		r.logger.Debug("resolved directives", "prompt", p.ID, "count", len(entries))
		text = spliceDirectives(text, resolved)
	}
	return text, nil
}

// Save persists the prompt's raw text and parameter snapshot. The raw text is
// always the original template, never rendered output; re-rendering has to
// start from the unprocessed source or comment and directive stripping would
// compound across saves.
func (r *Renderer) Save(ctx context.Context, p *domain.Prompt) error {
	if p == nil {
		return domain.InvalidInputError{Reason: "cannot save a nil prompt"}
	}
	if err := domain.ValidateID(p.ID); err != nil {
		return err
	}
	params := map[string][]string{}
	if p.Params != nil {
		params = p.Params.Snapshot()
	}
	return r.store.Save(ctx, p.ID, p.RawText, params)
}

func (r *Renderer) substitute(text string, params *domain.ParameterStore) string {
	return r.pattern.ReplaceAllStringFunc(text, func(token string) string {
		value, ok := params.CurrentValue(token)
		if !ok || value == "" {
			return token
		}
		return value
	})
}

// spliceDirectives replaces each directive line with its resolved text at the
// line's original position. A raw line that occurs more than once gets the
// same replacement everywhere, consistent with the collector's collapse of
// duplicate lines. Lines with no resolution (nil dispatcher) are dropped.
func spliceDirectives(text string, resolved map[string]string) string {
	lines := splitLines(text)
	out := make([]string, 0, len(lines))
	for _, line := range lines {
		if !IsDirectiveLine(line) {
			out = append(out, line)
			continue
		}
		if replacement, ok := resolved[line]; ok {
			out = append(out, replacement)
		}
	}
	return strings.Join(out, "\n")
}

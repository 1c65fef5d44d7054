package render_test

import (
	"context"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/isaacphi/promptstash/internal/domain"
	"github.com/isaacphi/promptstash/internal/render"
	"github.com/isaacphi/promptstash/internal/storage/memory"
)

// stubDispatcher resolves directives from a fixed table and reports unknown
// ones the way the real registry does: as inline error text.
type stubDispatcher struct {
	resolutions map[string]string
}

func (d stubDispatcher) Run(ctx context.Context, entries []render.DirectiveEntry) map[string]string {
	out := make(map[string]string, len(entries))
	for _, e := range entries {
		if text, ok := d.resolutions[strings.TrimSpace(e.Raw)]; ok {
			out[e.Raw] = text
			continue
		}
		out[e.Raw] = fmt.Sprintf("Error: Unknown directive '%s'", strings.TrimSpace(e.Raw))
	}
	return out
}

func newTestRenderer(t *testing.T, opts ...render.Option) (*render.Renderer, *memory.Store) {
	t.Helper()
	store := memory.New()
	r, err := render.New(store, opts...)
	require.NoError(t, err)
	return r, store
}

func TestRenderEndToEnd(t *testing.T) {
	rawText := "# Demo\n//include greeting.txt\nHello [NAME]!\n__END__\nignored"
	dispatcher := stubDispatcher{resolutions: map[string]string{
		"//include greeting.txt": "Greetings!",
	}}

	r, _ := newTestRenderer(t, render.WithDispatcher(dispatcher))

	p, err := domain.NewPrompt("demo")
	require.NoError(t, err)
	p.RawText = rawText
	p.Params.ReplaceHistory("[NAME]", []string{"World"})

	out, err := r.Render(context.Background(), p)
	require.NoError(t, err)
	assert.Equal(t, "Greetings!\nHello World!", out)
}

func TestRenderSyncsKeywordsFromRawText(t *testing.T) {
	r, _ := newTestRenderer(t)

	p, err := domain.NewPrompt("sync")
	require.NoError(t, err)
	// Keywords in comments, directives and the __END__ section all count for
	// discovery even though those lines never reach the output.
	p.RawText = "Hi [A] and [B]\n# note about [C]\n//cmd [D]\n__END__\n[E]"

	_, err = r.Render(context.Background(), p)
	require.NoError(t, err)

	assert.Equal(t, []string{"[A]", "[B]", "[C]", "[D]", "[E]"}, p.Params.Keys())
	for _, key := range []string{"[A]", "[B]", "[C]", "[D]", "[E]"} {
		assert.Equal(t, []string{}, p.Params.Get(key))
	}
}

func TestRenderLeavesUnsetKeywordsLiteral(t *testing.T) {
	r, _ := newTestRenderer(t)

	p, err := domain.NewPrompt("literal")
	require.NoError(t, err)
	p.RawText = "Hello [NAME], welcome to [CITY]"
	p.Params.AppendValue("[NAME]", "Alice")
	p.Params.EnsureKey("[CITY]")

	out, err := r.Render(context.Background(), p)
	require.NoError(t, err)
	assert.Equal(t, "Hello Alice, welcome to [CITY]", out)
}

func TestRenderEmptyCurrentValueLeavesToken(t *testing.T) {
	r, _ := newTestRenderer(t)

	p, err := domain.NewPrompt("empty-value")
	require.NoError(t, err)
	p.RawText = "Hello [NAME]"
	p.Params.ReplaceHistory("[NAME]", []string{""})

	out, err := r.Render(context.Background(), p)
	require.NoError(t, err)
	assert.Equal(t, "Hello [NAME]", out)
}

func TestRenderIsIdempotent(t *testing.T) {
	dispatcher := stubDispatcher{resolutions: map[string]string{
		"//include a.txt": "included",
	}}
	r, _ := newTestRenderer(t, render.WithDispatcher(dispatcher))

	p, err := domain.NewPrompt("idem")
	require.NoError(t, err)
	p.RawText = "# header\n//include a.txt\nHi [NAME]\n[UNSET]"
	p.Params.AppendValue("[NAME]", "Bob")

	first, err := r.Render(context.Background(), p)
	require.NoError(t, err)
	second, err := r.Render(context.Background(), p)
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestRenderDynamicDirectiveName(t *testing.T) {
	dispatcher := stubDispatcher{resolutions: map[string]string{
		"//greet now": "hello from directive",
	}}
	r, _ := newTestRenderer(t, render.WithDispatcher(dispatcher))

	p, err := domain.NewPrompt("dynamic")
	require.NoError(t, err)
	p.RawText = "//[COMMAND] [OPTIONS]\nbody"
	p.Params.AppendValue("[COMMAND]", "greet")
	p.Params.AppendValue("[OPTIONS]", "now")

	out, err := r.Render(context.Background(), p)
	require.NoError(t, err)
	assert.Equal(t, "hello from directive\nbody", out)
}

func TestRenderUnknownDirectiveYieldsInlineError(t *testing.T) {
	dispatcher := stubDispatcher{}
	r, _ := newTestRenderer(t, render.WithDispatcher(dispatcher))

	p, err := domain.NewPrompt("bogus")
	require.NoError(t, err)
	p.RawText = "//bogus foo\nrest of prompt"

	out, err := r.Render(context.Background(), p)
	require.NoError(t, err, "a bad directive must not abort the render")
	assert.Contains(t, out, "Error: Unknown directive '//bogus foo'")
	assert.Contains(t, out, "rest of prompt")
}

func TestRenderRepeatedDirectiveLinesShareResolution(t *testing.T) {
	dispatcher := stubDispatcher{resolutions: map[string]string{
		"//include a.txt": "once",
	}}
	r, _ := newTestRenderer(t, render.WithDispatcher(dispatcher))

	p, err := domain.NewPrompt("repeat")
	require.NoError(t, err)
	p.RawText = "//include a.txt\nmiddle\n//include a.txt"

	out, err := r.Render(context.Background(), p)
	require.NoError(t, err)
	assert.Equal(t, "once\nmiddle\nonce", out)
}

func TestRenderNilPrompt(t *testing.T) {
	r, _ := newTestRenderer(t)

	_, err := r.Render(context.Background(), nil)
	assert.True(t, domain.IsInvalidInputError(err))
}

func TestRenderNilParameterStore(t *testing.T) {
	r, _ := newTestRenderer(t)

	_, err := r.Render(context.Background(), &domain.Prompt{ID: "p", RawText: "x"})
	assert.True(t, domain.IsInvalidInputError(err))
}

func TestNewRequiresStorage(t *testing.T) {
	_, err := render.New(nil)
	assert.True(t, domain.IsInvalidArgumentError(err))
}

func TestLoadPropagatesNotFound(t *testing.T) {
	r, _ := newTestRenderer(t)

	_, err := r.Load(context.Background(), "missing")
	assert.True(t, domain.IsNotFoundError(err))
}

func TestLoadRejectsBadID(t *testing.T) {
	r, _ := newTestRenderer(t)

	_, err := r.Load(context.Background(), "bad id!")
	assert.True(t, domain.IsInvalidArgumentError(err))
}

func TestSavePreservesRawText(t *testing.T) {
	dispatcher := stubDispatcher{resolutions: map[string]string{
		"//include a.txt": "resolved",
	}}
	r, store := newTestRenderer(t, render.WithDispatcher(dispatcher))
	ctx := context.Background()

	rawText := "# comment\n//include a.txt\nHello [NAME]"
	p, err := domain.NewPrompt("keep-raw")
	require.NoError(t, err)
	p.RawText = rawText
	p.Params.AppendValue("[NAME]", "Alice")

	_, err = r.Render(ctx, p)
	require.NoError(t, err)
	require.NoError(t, r.Save(ctx, p))

	rec, err := store.Get(ctx, "keep-raw")
	require.NoError(t, err)
	assert.Equal(t, rawText, rec.Text, "save must persist the original template, never rendered output")
	assert.Equal(t, []string{"Alice"}, rec.Parameters["[NAME]"])
}

func TestLoadRoundTrip(t *testing.T) {
	r, store := newTestRenderer(t)
	ctx := context.Background()

	require.NoError(t, store.Save(ctx, "round", "Hi [WHO]", map[string][]string{
		"[WHO]": {"old", "new"},
	}))

	p, err := r.Load(ctx, "round")
	require.NoError(t, err)
	assert.Equal(t, "Hi [WHO]", p.RawText)

	current, ok := p.Params.CurrentValue("[WHO]")
	require.True(t, ok)
	assert.Equal(t, "new", current)

	out, err := r.Render(ctx, p)
	require.NoError(t, err)
	assert.Equal(t, "Hi new", out)
}

func TestRenderWithCustomPattern(t *testing.T) {
	r, _ := newTestRenderer(t, render.WithPattern(render.DefaultPattern))

	p, err := domain.NewPrompt("pattern")
	require.NoError(t, err)
	p.RawText = "[GREETING] [name]"
	p.Params.AppendValue("[GREETING]", "Hi")

	out, err := r.Render(context.Background(), p)
	require.NoError(t, err)
	// Lowercase token does not match the default pattern and stays literal.
	assert.Equal(t, "Hi [name]", out)
}

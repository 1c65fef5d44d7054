package service_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/isaacphi/promptstash/internal/config"
	"github.com/isaacphi/promptstash/internal/domain"
	"github.com/isaacphi/promptstash/internal/service"
	"github.com/isaacphi/promptstash/internal/storage/memory"
)

func newTestService(t *testing.T) *service.PromptService {
	t.Helper()
	svc, err := service.NewWithStore(memory.New())
	require.NoError(t, err)
	return svc
}

func TestCreateAndRender(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	_, err := svc.Create(ctx, "greeting", "# header\nHello [NAME]!\n__END__\nnotes")
	require.NoError(t, err)

	require.NoError(t, svc.SetParameter(ctx, "greeting", "[NAME]", "World", false))

	out, err := svc.Render(ctx, "greeting")
	require.NoError(t, err)
	assert.Equal(t, "Hello World!", out)
}

func TestCreateRejectsBadID(t *testing.T) {
	svc := newTestService(t)

	_, err := svc.Create(context.Background(), "bad id!", "text")
	assert.True(t, domain.IsInvalidArgumentError(err))
}

func TestRenderMissingPrompt(t *testing.T) {
	svc := newTestService(t)

	_, err := svc.Render(context.Background(), "missing")
	assert.True(t, domain.IsNotFoundError(err))
}

func TestRenderPersistsDiscoveredKeywords(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	_, err := svc.Create(ctx, "discover", "Hi [A] and [B]")
	require.NoError(t, err)

	_, err = svc.Render(ctx, "discover")
	require.NoError(t, err)

	p, err := svc.Get(ctx, "discover")
	require.NoError(t, err)
	assert.Equal(t, []string{"[A]", "[B]"}, p.Params.Keys())
	assert.Equal(t, []string{}, p.Params.Get("[A]"))
	assert.Equal(t, []string{}, p.Params.Get("[B]"))
}

func TestSetParameterAppendAndReplace(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	_, err := svc.Create(ctx, "p", "Hello [NAME]")
	require.NoError(t, err)

	require.NoError(t, svc.SetParameter(ctx, "p", "[NAME]", "Alice", false))
	require.NoError(t, svc.SetParameter(ctx, "p", "[NAME]", "Bob", false))

	p, err := svc.Get(ctx, "p")
	require.NoError(t, err)
	assert.Equal(t, []string{"Alice", "Bob"}, p.Params.Get("[NAME]"))

	require.NoError(t, svc.SetParameter(ctx, "p", "[NAME]", "Carol", true))
	p, err = svc.Get(ctx, "p")
	require.NoError(t, err)
	assert.Equal(t, []string{"Carol"}, p.Params.Get("[NAME]"))
}

func TestDeleteAndList(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	_, err := svc.Create(ctx, "a", "one")
	require.NoError(t, err)
	_, err = svc.Create(ctx, "b", "two")
	require.NoError(t, err)

	require.NoError(t, svc.Delete(ctx, "a"))

	ids, err := svc.List(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"b"}, ids)

	assert.True(t, domain.IsNotFoundError(svc.Delete(ctx, "a")))
}

func TestSearch(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	_, err := svc.Create(ctx, "greeting", "Hello World")
	require.NoError(t, err)
	_, err = svc.Create(ctx, "farewell", "Goodbye")
	require.NoError(t, err)

	ids, err := svc.Search(ctx, "hello")
	require.NoError(t, err)
	assert.Equal(t, []string{"greeting"}, ids)
}

func TestNewPromptServiceMemoryBackend(t *testing.T) {
	cfg := &config.ConfigSchema{
		Storage:          "memory",
		PromptsDir:       t.TempDir(),
		DBPath:           "unused.db",
		ParameterPattern: `\[[A-Z _|]+\]`,
	}

	svc, err := service.NewPromptService(cfg)
	require.NoError(t, err)

	_, err = svc.Create(context.Background(), "p", "Hello [NAME]")
	require.NoError(t, err)
}

func TestNewPromptServiceUnknownBackend(t *testing.T) {
	cfg := &config.ConfigSchema{
		Storage:          "carrier-pigeon",
		PromptsDir:       t.TempDir(),
		DBPath:           "unused.db",
		ParameterPattern: `\[[A-Z _|]+\]`,
	}

	_, err := service.NewPromptService(cfg)
	assert.Error(t, err)
}

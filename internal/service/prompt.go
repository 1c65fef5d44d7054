package service

import (
	"context"
	"fmt"
	"regexp"

	"github.com/isaacphi/promptstash/internal/config"
	"github.com/isaacphi/promptstash/internal/directive"
	"github.com/isaacphi/promptstash/internal/domain"
	"github.com/isaacphi/promptstash/internal/render"
	"github.com/isaacphi/promptstash/internal/storage"
	"github.com/isaacphi/promptstash/internal/storage/fs"
	"github.com/isaacphi/promptstash/internal/storage/memory"
	"github.com/isaacphi/promptstash/internal/storage/sqlite"
)

// PromptService glues the configured storage backend to the rendering
// pipeline for the CLI commands.
type PromptService struct {
	store    storage.Store
	renderer *render.Renderer
}

// NewPromptService builds the service from config: it picks the storage
// backend, compiles the keyword pattern and roots the include directive at
// the prompts directory.
func NewPromptService(cfg *config.ConfigSchema) (*PromptService, error) {
	store, err := newStore(cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize %s storage: %w", cfg.Storage, err)
	}

	pattern, err := regexp.Compile(cfg.ParameterPattern)
	if err != nil {
		return nil, fmt.Errorf("invalid parameter pattern: %w", err)
	}

	dispatcher := directive.New(directive.WithRoot(cfg.PromptsDir))
	renderer, err := render.New(store,
		render.WithDispatcher(dispatcher),
		render.WithPattern(pattern),
	)
	if err != nil {
		return nil, err
	}

	return &PromptService{store: store, renderer: renderer}, nil
}

// NewWithStore builds a service on an explicit store and renderer options.
// Tests use this with the memory backend and stub dispatchers.
func NewWithStore(store storage.Store, opts ...render.Option) (*PromptService, error) {
	renderer, err := render.New(store, opts...)
	if err != nil {
		return nil, err
	}
	return &PromptService{store: store, renderer: renderer}, nil
}

func newStore(cfg *config.ConfigSchema) (storage.Store, error) {
	switch cfg.Storage {
	case "filesystem":
		return fs.New(cfg.PromptsDir)
	case "sqlite":
		return sqlite.Initialize(cfg.DBPath)
	case "memory":
		return memory.New(), nil
	default:
		return nil, domain.InvalidArgumentError{Reason: fmt.Sprintf("unknown storage backend %q", cfg.Storage)}
	}
}

// Get loads a prompt document without rendering it.
func (s *PromptService) Get(ctx context.Context, id string) (*domain.Prompt, error) {
	return s.renderer.Load(ctx, id)
}

// Render loads a prompt, runs the pipeline, and persists the parameter store
// so keywords discovered during the render survive it.
func (s *PromptService) Render(ctx context.Context, id string) (string, error) {
	p, err := s.renderer.Load(ctx, id)
	if err != nil {
		return "", err
	}
	out, err := s.renderer.Render(ctx, p)
	if err != nil {
		return "", err
	}
	if err := s.renderer.Save(ctx, p); err != nil {
		return "", fmt.Errorf("failed to save parameters for %s: %w", id, err)
	}
	return out, nil
}

// Save persists a prompt document.
func (s *PromptService) Save(ctx context.Context, p *domain.Prompt) error {
	return s.renderer.Save(ctx, p)
}

// Create validates id and stores a new prompt with the given raw text.
func (s *PromptService) Create(ctx context.Context, id, text string) (*domain.Prompt, error) {
	p, err := domain.NewPrompt(id)
	if err != nil {
		return nil, err
	}
	p.RawText = text
	if err := s.renderer.Save(ctx, p); err != nil {
		return nil, err
	}
	return p, nil
}

// SetParameter records a value for a keyword. With replace set, the keyword's
// full history is replaced by the single value; otherwise the value is
// appended as the new current value.
func (s *PromptService) SetParameter(ctx context.Context, id, key, value string, replace bool) error {
	p, err := s.renderer.Load(ctx, id)
	if err != nil {
		return err
	}
	if replace {
		p.Params.ReplaceHistory(key, []string{value})
	} else {
		p.Params.AppendValue(key, value)
	}
	return s.renderer.Save(ctx, p)
}

// Delete removes a prompt from storage.
func (s *PromptService) Delete(ctx context.Context, id string) error {
	if err := domain.ValidateID(id); err != nil {
		return err
	}
	return s.store.Delete(ctx, id)
}

// List returns all known prompt identifiers.
func (s *PromptService) List(ctx context.Context) ([]string, error) {
	return s.store.List(ctx)
}

// Search returns identifiers matching term.
func (s *PromptService) Search(ctx context.Context, term string) ([]string, error) {
	return s.store.Search(ctx, term)
}

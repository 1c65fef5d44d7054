package shared

import (
	"fmt"

	"github.com/isaacphi/promptstash/internal/appState"
	"github.com/isaacphi/promptstash/internal/service"
)

// InitializePromptService builds the prompt service from the globally
// initialized configuration. CLI commands call this in their RunE.
func InitializePromptService() (*service.PromptService, error) {
	cfg := appState.Get().Config

	svc, err := service.NewPromptService(cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to create prompt service: %w", err)
	}
	return svc, nil
}

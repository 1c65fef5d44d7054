package config

import (
	"fmt"
	"os"

	"github.com/isaacphi/promptstash/internal/appState"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

var ConfigCmd = &cobra.Command{
	Use:   "config",
	Short: "Show effective configuration",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := appState.Get().Config

		out, err := yaml.Marshal(cfg)
		if err != nil {
			return fmt.Errorf("failed to marshal config: %w", err)
		}
		fmt.Fprint(os.Stdout, string(out))
		return nil
	},
}

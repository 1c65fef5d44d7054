package prompt

import (
	"fmt"

	"github.com/isaacphi/promptstash/internal/shared"
	"github.com/spf13/cobra"
)

var catCmd = &cobra.Command{
	Use:   "cat [id]",
	Short: "Print a prompt's raw template text",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		svc, err := shared.InitializePromptService()
		if err != nil {
			return err
		}

		p, err := svc.Get(cmd.Context(), args[0])
		if err != nil {
			return fmt.Errorf("failed to load prompt: %w", err)
		}

		fmt.Println(p.RawText)
		return nil
	},
}

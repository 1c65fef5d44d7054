package prompt

import (
	"fmt"

	"github.com/isaacphi/promptstash/internal/shared"
	"github.com/spf13/cobra"
)

var searchCmd = &cobra.Command{
	Use:   "search [term]",
	Short: "Search prompts by identifier and text",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		svc, err := shared.InitializePromptService()
		if err != nil {
			return err
		}

		ids, err := svc.Search(cmd.Context(), args[0])
		if err != nil {
			return fmt.Errorf("search failed: %w", err)
		}

		if len(ids) == 0 {
			fmt.Println("No prompts found")
			return nil
		}
		for _, id := range ids {
			fmt.Println(id)
		}
		return nil
	},
}

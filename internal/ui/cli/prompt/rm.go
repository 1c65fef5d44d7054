package prompt

import (
	"fmt"
	"strings"

	"github.com/isaacphi/promptstash/internal/shared"
	"github.com/spf13/cobra"
)

var deleteCmd = &cobra.Command{
	Use:   "rm [id]",
	Short: "Delete a prompt and its parameter history",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		svc, err := shared.InitializePromptService()
		if err != nil {
			return err
		}

		p, err := svc.Get(cmd.Context(), args[0])
		if err != nil {
			return fmt.Errorf("failed to find prompt: %w", err)
		}

		fmt.Printf("About to delete prompt %s (%d keywords)\n", p.ID, p.Params.Len())

		if !forceFlag {
			fmt.Print("\nAre you sure you want to delete this prompt? [y/N] ")
			var response string
			fmt.Scanln(&response)

			response = strings.ToLower(strings.TrimSpace(response))
			if response != "y" && response != "yes" {
				fmt.Println("Operation cancelled")
				return nil
			}
		}

		if err := svc.Delete(cmd.Context(), p.ID); err != nil {
			return fmt.Errorf("failed to delete prompt: %w", err)
		}

		fmt.Println("Prompt deleted successfully")
		return nil
	},
}

func init() {
	deleteCmd.Flags().BoolVarP(&forceFlag, "force", "f", false, "Delete without confirmation")
}

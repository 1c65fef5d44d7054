package prompt

import (
	"fmt"
	"io"
	"os"

	"github.com/isaacphi/promptstash/internal/shared"
	"github.com/spf13/cobra"
)

var newCmd = &cobra.Command{
	Use:   "new [id]",
	Short: "Create a prompt from a file or stdin",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		svc, err := shared.InitializePromptService()
		if err != nil {
			return err
		}

		var text []byte
		if fileFlag != "" {
			text, err = os.ReadFile(fileFlag)
			if err != nil {
				return fmt.Errorf("failed to read %s: %w", fileFlag, err)
			}
		} else {
			text, err = io.ReadAll(os.Stdin)
			if err != nil {
				return fmt.Errorf("failed to read stdin: %w", err)
			}
		}

		p, err := svc.Create(cmd.Context(), args[0], string(text))
		if err != nil {
			return fmt.Errorf("failed to create prompt: %w", err)
		}

		fmt.Printf("Created prompt %s\n", p.ID)
		return nil
	},
}

func init() {
	newCmd.Flags().StringVarP(&fileFlag, "file", "F", "", "Read template text from a file instead of stdin")
}

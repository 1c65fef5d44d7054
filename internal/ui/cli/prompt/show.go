package prompt

import (
	"fmt"

	"github.com/charmbracelet/glamour"
	"github.com/isaacphi/promptstash/internal/shared"
	"github.com/spf13/cobra"
)

var showCmd = &cobra.Command{
	Use:   "show [id]",
	Short: "Render a prompt and print the result",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		svc, err := shared.InitializePromptService()
		if err != nil {
			return err
		}

		out, err := svc.Render(cmd.Context(), args[0])
		if err != nil {
			return fmt.Errorf("failed to render prompt: %w", err)
		}

		if prettyFlag {
			renderer, err := glamour.NewTermRenderer(
				glamour.WithAutoStyle(),
				glamour.WithWordWrap(100),
			)
			if err != nil {
				return fmt.Errorf("failed to create markdown renderer: %w", err)
			}
			pretty, err := renderer.Render(out)
			if err != nil {
				return fmt.Errorf("failed to render markdown: %w", err)
			}
			fmt.Print(pretty)
			return nil
		}

		fmt.Println(out)
		return nil
	},
}

func init() {
	showCmd.Flags().BoolVarP(&prettyFlag, "pretty", "p", false, "Render the output as markdown")
}

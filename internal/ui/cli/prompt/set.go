package prompt

import (
	"fmt"

	"github.com/isaacphi/promptstash/internal/shared"
	"github.com/spf13/cobra"
)

var setCmd = &cobra.Command{
	Use:   "set [id] [keyword] [value]",
	Short: "Record a parameter value for a keyword",
	Long: `Record a parameter value for a keyword, e.g.

  promptstash prompt set greeting "[NAME]" "Alice"

The value is appended to the keyword's history and becomes the current value.
With --replace, the history is discarded and the value becomes the only entry.`,
	Args: cobra.ExactArgs(3),
	RunE: func(cmd *cobra.Command, args []string) error {
		svc, err := shared.InitializePromptService()
		if err != nil {
			return err
		}

		if err := svc.SetParameter(cmd.Context(), args[0], args[1], args[2], replaceFlag); err != nil {
			return fmt.Errorf("failed to set parameter: %w", err)
		}

		fmt.Printf("Set %s = %q for prompt %s\n", args[1], args[2], args[0])
		return nil
	},
}

func init() {
	setCmd.Flags().BoolVar(&replaceFlag, "replace", false, "Replace the keyword's history instead of appending")
}

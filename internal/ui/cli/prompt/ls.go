package prompt

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/isaacphi/promptstash/internal/shared"
	"github.com/spf13/cobra"
)

var listCmd = &cobra.Command{
	Use:   "ls",
	Short: "List stored prompts",
	RunE: func(cmd *cobra.Command, args []string) error {
		svc, err := shared.InitializePromptService()
		if err != nil {
			return err
		}

		ids, err := svc.List(cmd.Context())
		if err != nil {
			return fmt.Errorf("failed to list prompts: %w", err)
		}

		w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
		fmt.Fprintln(w, "ID\tKeywords")

		for _, id := range ids {
			p, err := svc.Get(cmd.Context(), id)
			if err != nil {
				return fmt.Errorf("failed to load prompt %s: %w", id, err)
			}
			fmt.Fprintf(w, "%s\t%d\n", id, p.Params.Len())
		}
		w.Flush()

		return nil
	},
}

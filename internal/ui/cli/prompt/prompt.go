package prompt

import "github.com/spf13/cobra"

var (
	forceFlag   bool
	prettyFlag  bool
	replaceFlag bool
	fileFlag    string
)

var PromptCmd = &cobra.Command{
	Use:   "prompt",
	Short: "Manage prompt templates",
}

func init() {
	PromptCmd.AddCommand(
		listCmd,
		showCmd,
		catCmd,
		newCmd,
		deleteCmd,
		setCmd,
		searchCmd,
	)
}

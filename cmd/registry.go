package cmd

import "github.com/spf13/cobra"

func RegisterCommands(root *cobra.Command) {
	root.AddCommand(versionCmd)

	root.AddCommand(searchCmd)
	root.AddCommand(copyCmd)
	root.AddCommand(recentCmd)
	root.AddCommand(groupsCmd)
	root.AddCommand(configCmd)

	recentCmd.AddCommand(recentClearCmd)

	configCmd.AddCommand(
		configShowCmd,
		configPathCmd,
		configInitCmd,
	)
}

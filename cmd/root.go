package cmd

import (
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "oasis",
	Short: "Oasis - a voice-driven Dubai real estate concierge",
	Long: `Oasis connects to a realtime Gemini session and acts as a property
concierge for Dubai: it locates communities, marks projects on a 3D map,
keeps a client profile up to date and manages a favorites shortlist.

Running oasis without a subcommand starts a chat session.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runChat(cmd, args)
	},
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

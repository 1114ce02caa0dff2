package cli

import (
	"github.com/spf13/cobra"
)

// The root of the wvl command tree. Subcommand packages attach themselves to
// this in their init functions; main blank-imports them.
var WvlCommand = &cobra.Command{
	Use:   "wvl",
	Short: "Wavelength podcast tools",
	Run: func(cmd *cobra.Command, args []string) {
		cmd.Help()
	},
}

package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/notedeck/notedeck/internal/ui"
)

var themesCmd = &cobra.Command{
	Use:   "themes",
	Short: "List the available color themes",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		for _, name := range ui.ThemeNames() {
			fmt.Fprintln(cmd.OutOrStdout(), name)
		}
	},
}

func init() {
	rootCmd.AddCommand(themesCmd)
}

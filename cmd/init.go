package cmd

import (
	"fmt"
	"os"

	huh "charm.land/huh/v2"
	"github.com/spf13/cobra"

	"github.com/notedeck/notedeck/internal/config"
	"github.com/notedeck/notedeck/internal/ui"
)

var forceInit bool

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Write a starter config file",
	Long: `Writes a config file listing one document of each kind: inline content,
a local file and a URL. An existing file is only replaced after confirmation
or with --force.`,
	Args: cobra.NoArgs,
	RunE: runInit,
}

func init() {
	initCmd.Flags().BoolVarP(&forceInit, "force", "f", false, "Overwrite an existing config without asking")
	rootCmd.AddCommand(initCmd)
}

func runInit(cmd *cobra.Command, args []string) error {
	path := configPath
	if path == "" {
		p, err := config.DefaultPath()
		if err != nil {
			return err
		}
		path = p
	}
	return writeStarter(cmd, path, confirmOverwrite)
}

// writeStarter saves the starter config to path, asking confirm first when
// the file exists.
func writeStarter(cmd *cobra.Command, path string, confirm func(string) (bool, error)) error {
	if _, err := os.Stat(path); err == nil && !forceInit {
		ok, err := confirm(path)
		if err != nil {
			return err
		}
		if !ok {
			fmt.Fprintln(cmd.OutOrStdout(), "Aborted.")
			return nil
		}
	}

	if err := config.Starter().Save(path); err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s\n", path)
	return nil
}

func confirmOverwrite(path string) (bool, error) {
	var ok bool
	err := huh.NewForm(
		huh.NewGroup(
			huh.NewConfirm().
				Title(fmt.Sprintf("%s exists. Overwrite?", path)).
				Affirmative("Overwrite").
				Negative("Keep").
				Value(&ok),
		),
	).WithTheme(ui.FormTheme()).Run()
	return ok, err
}

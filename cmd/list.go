package cmd

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/notedeck/notedeck/internal/document"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List the configured documents",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return fmt.Errorf("error loading config: %w", err)
		}
		coll, err := cfg.Collection()
		if err != nil {
			return err
		}
		return writeList(cmd.OutOrStdout(), coll)
	},
}

func init() {
	rootCmd.AddCommand(listCmd)
}

// writeList prints one row per entry in collection order.
func writeList(w io.Writer, coll *document.Collection) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "#\tID\tNAME\tKIND\tFORMAT\tSOURCE")
	for i, e := range coll.Entries() {
		source := "-"
		if e.Content.IsLocator() {
			source = e.Content.Locator()
		}
		fmt.Fprintf(tw, "%d\t%s\t%s\t%s\t%s\t%s\n",
			i+1, e.ID, e.Name, e.Content.Kind(), e.Content.Format(), source)
	}
	return tw.Flush()
}

package commands

import (
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	"github.com/leapstack-labs/lookgen/pkg/dialect"
)

// NewDialectsCommand creates the dialects command.
func NewDialectsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "dialects",
		Short: "List supported warehouse dialects",
		RunE: func(cmd *cobra.Command, _ []string) error {
			t := table.NewWriter()
			t.SetOutputMirror(cmd.OutOrStdout())
			t.AppendHeader(table.Row{"Dialect", "Mapped Types"})
			for _, name := range dialect.List() {
				d, err := dialect.Get(name)
				if err != nil {
					return err
				}
				t.AppendRow(table.Row{name, len(d.Types)})
			}
			t.SetStyle(table.StyleLight)
			t.Render()
			return nil
		},
	}
}

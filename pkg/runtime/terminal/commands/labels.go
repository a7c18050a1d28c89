package commands

import (
	"github.com/de-tools/rental-atlas/pkg/models/domain"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"
)

func NewLabelsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "labels",
		Short: "List the season and weather labels accepted by report",
		RunE: func(cmd *cobra.Command, _ []string) error {
			t := table.NewWriter()
			t.SetOutputMirror(cmd.OutOrStdout())
			t.SetStyle(table.StyleLight)
			t.AppendHeader(table.Row{"Code", "Season", "Weather"})

			seasons := domain.Seasons()
			weathers := domain.Weathers()
			for i := range seasons {
				t.AppendRow(table.Row{int(seasons[i]), seasons[i].String(), weathers[i].String()})
			}
			t.Render()
			return nil
		},
	}
}

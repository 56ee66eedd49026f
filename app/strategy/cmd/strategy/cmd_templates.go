package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jamieroller/amazon-strategy-assistant/app/strategy/pkg/engine"
	dm "github.com/jamieroller/amazon-strategy-assistant/app/strategy/pkg/model"
)

// newTemplatesCmd 列出报告模板
func newTemplatesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "templates",
		Short: "List the report template used for each category",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			for _, c := range dm.Categories {
				tpl := engine.Template(c)
				fmt.Fprintf(out, "%-12s %s\n", c, tpl.Title)
				for _, s := range tpl.Sections {
					fmt.Fprintf(out, "%12s - %s\n", "", s)
				}
			}
			return nil
		},
	}
}

package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/kailas-cloud/faqdex/internal/domain/faq/catalog"
)

func newCategoriesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "categories",
		Short: "List catalog categories with item counts",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cat, err := catalog.Load()
			if err != nil {
				return err
			}
			counts := cat.CountByCategory()

			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
			fmt.Fprintln(w, "CATEGORY\tITEMS\tDESCRIPTION")
			for _, c := range cat.Categories {
				fmt.Fprintf(w, "%s\t%d\t%s\n", c.Name(), counts[c.Name()], c.Description())
			}
			return w.Flush()
		},
	}
}

package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	domfaq "github.com/kailas-cloud/faqdex/internal/domain/faq"
	"github.com/kailas-cloud/faqdex/internal/domain/faq/catalog"
	"github.com/kailas-cloud/faqdex/internal/domain/search/ranking"
)

type searchHit struct {
	ID       string `json:"id"`
	Category string `json:"category"`
	Question string `json:"question"`
	Score    int    `json:"score"`
}

func newSearchCmd() *cobra.Command {
	var (
		limit  int
		asJSON bool
	)
	cmd := &cobra.Command{
		Use:   "search <query...>",
		Short: "Rank the built-in catalog against a query",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cat, err := catalog.Load()
			if err != nil {
				return err
			}
			hits := rankCatalog(cat.Items, strings.Join(args, " "), limit)
			if asJSON {
				enc := json.NewEncoder(cmd.OutOrStdout())
				enc.SetIndent("", "  ")
				return enc.Encode(hits)
			}
			printHits(cmd.OutOrStdout(), strings.Join(args, " "), hits)
			return nil
		},
	}
	cmd.Flags().IntVarP(&limit, "limit", "n", 20, "Maximum number of results")
	cmd.Flags().BoolVar(&asJSON, "json", false, "Print results as JSON")
	return cmd
}

func rankCatalog(items []domfaq.Item, query string, limit int) []searchHit {
	ranked := ranking.Search(items, query, limit)
	hits := make([]searchHit, len(ranked))
	q, _ := ranking.Prepare(query)
	for i := range ranked {
		hits[i] = searchHit{
			ID:       ranked[i].ID(),
			Category: ranked[i].Category(),
			Question: ranked[i].Question(),
			Score:    ranking.Score(q, &ranked[i]),
		}
	}
	return hits
}

func printHits(out io.Writer, query string, hits []searchHit) {
	fmt.Fprintf(out, "faqctl search %q\n\n", query)
	fmt.Fprintf(out, "Results (%d found):\n", len(hits))
	if len(hits) == 0 {
		return
	}
	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "SCORE\tCATEGORY\tQUESTION")
	for _, h := range hits {
		fmt.Fprintf(w, "%d\t%s\t%s\n", h.Score, h.Category, h.Question)
	}
	_ = w.Flush()
}

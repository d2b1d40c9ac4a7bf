package main

import (
	"github.com/spf13/cobra"

	"github.com/kailas-cloud/faqdex/internal/version"
)

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:          "faqctl",
		Short:        "faqdex catalog and store tooling",
		SilenceUsage: true,
		Version:      version.Version + " (" + version.Commit + ")",
		Long: `faqctl searches the built-in FAQ catalog offline and seeds the
configured Redis store. The store is selected by ENV (config/<env>.yaml).`,
	}
	root.AddCommand(newSearchCmd(), newCategoriesCmd(), newSeedCmd())
	return root
}

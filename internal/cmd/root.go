// Package cmd implements the sem-planner command line.
package cmd

import (
	"github.com/spf13/cobra"
)

// Version is stamped at build time with -ldflags "-X ...cmd.Version=...".
var Version = "dev"

// NewRootCmd builds the sem-planner command tree.
func NewRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "sem-planner",
		Short: "Generate templated SEM campaign plans",
		Long: `sem-planner builds a starting search engine marketing plan from a brand
website, a competitor website, service locations and a monthly budget.

The plan covers the channel budget split, seed keywords with bid
recommendations, ad groups, Performance Max search themes and shopping
product bids.`,
		SilenceUsage: true,
	}

	root.PersistentFlags().String("log-level", "", "log level override (debug, info, warn, error)")

	root.AddCommand(newGenerateCmd(), newServeCmd(), newVersionCmd())
	return root
}

// Execute runs the root command
func Execute() error {
	return NewRootCmd().Execute()
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the sem-planner version",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			_, err := cmd.OutOrStdout().Write([]byte(Version + "\n"))
			return err
		},
	}
}

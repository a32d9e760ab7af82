package cmd

import (
	"github.com/huangsam/repoprobe/core"
	"github.com/huangsam/repoprobe/internal/contract"
	"github.com/spf13/cobra"
)

// commitsCmd reports the recent history window of a single path.
var commitsCmd = &cobra.Command{
	Use:   "commits [repo-path]",
	Short: "Show the resolved remote branch and up to five recent commits.",
	Long: `Fetch the recent history of a working copy.

Resolves the first non-HEAD remote branch and reads up to five recent
commits from it, each with author, committer, date, message, and tree
hash. Commits whose date cannot be parsed are dropped rather than
failing the whole listing.

Examples:
  # Recent commits of the current directory
  repoprobe commits

  # Recent commits of another working copy as CSV
  repoprobe commits ~/src/someproject --output csv --output-file commits.csv`,
	Args:    cobra.MaximumNArgs(1),
	PreRunE: sharedSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		if err := core.ExecuteCommits(rootCtx, cfg); err != nil {
			contract.LogFatal("Cannot run commits inspection", err)
		}
	},
}

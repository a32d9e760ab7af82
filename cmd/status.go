package cmd

import (
	"github.com/huangsam/repoprobe/core"
	"github.com/huangsam/repoprobe/internal/contract"
	"github.com/spf13/cobra"
)

// statusCmd reports the working-tree state of a single path.
var statusCmd = &cobra.Command{
	Use:   "status [repo-path]",
	Short: "Show whether the working tree is modified or dirty.",
	Long: `Check the working tree of a path without touching it.

Reports two flags and their combination:
- is_modified: the short status listing is non-empty
- is_dirty: the diff summary against HEAD is non-empty

A path without a .git entry is reported as not a repository; that is a
regular answer, not an error.

Examples:
  # Check the current directory
  repoprobe status

  # Check another working copy and emit JSON
  repoprobe status ~/src/someproject --output json`,
	Args:    cobra.MaximumNArgs(1),
	PreRunE: sharedSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		if err := core.ExecuteStatus(rootCtx, cfg); err != nil {
			contract.LogFatal("Cannot run status inspection", err)
		}
	},
}

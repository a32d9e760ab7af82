package cmd

import (
	"github.com/huangsam/repoprobe/core"
	"github.com/huangsam/repoprobe/internal/contract"
	"github.com/spf13/cobra"
)

// inspectCmd runs the full inspection for a single path.
var inspectCmd = &cobra.Command{
	Use:   "inspect [repo-path]",
	Short: "Run the full inspection: probe, status, and recent commits.",
	Long: `Run every pipeline against a working copy and report the combined snapshot.

This is the status and commits commands in one pass. With --save, the
resulting snapshot is persisted to the configured snapshot store so
later runs and dashboards can read the last-known state without
re-running git.

Examples:
  # Inspect the current directory
  repoprobe inspect

  # Inspect and persist a snapshot
  repoprobe inspect ~/src/someproject --save

  # Persist to MySQL instead of the default SQLite file
  REPOPROBE_SNAPSHOT_DB_CONNECT="user:pass@tcp(localhost:3306)/repoprobe" \
    repoprobe inspect --save --snapshot-backend mysql`,
	Args:    cobra.MaximumNArgs(1),
	PreRunE: sharedSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		if err := core.ExecuteInspect(rootCtx, cfg, snapshotManager); err != nil {
			contract.LogFatal("Cannot run inspection", err)
		}
	},
}

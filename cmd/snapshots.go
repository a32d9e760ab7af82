package cmd

import (
	"fmt"

	"github.com/huangsam/repoprobe/internal/contract"
	"github.com/huangsam/repoprobe/internal/iocache"
	"github.com/huangsam/repoprobe/internal/outwriter"
	"github.com/huangsam/repoprobe/schema"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// snapshotSetup loads minimal configuration needed for snapshot operations.
// This is used by commands that need store access without full shared setup.
func snapshotSetup() error {
	if err := loadConfigFile(); err != nil {
		return err
	}

	// Get snapshot-related config values
	backend := schema.DatabaseBackend(viper.GetString("snapshot-backend"))
	connStr := viper.GetString("snapshot-db-connect")

	// Basic validation for database backends
	if err := contract.ValidateDatabaseConnectionString(backend, connStr); err != nil {
		return err
	}

	// Initialize persistence with the loaded config
	if err := iocache.InitSnapshots(backend, connStr); err != nil {
		return fmt.Errorf("failed to initialize snapshot store: %w", err)
	}

	cfg.SnapshotBackend = backend
	cfg.SnapshotDBConnect = connStr
	cfg.Output = schema.OutputMode(viper.GetString("output"))
	cfg.OutputFile = viper.GetString("output-file")
	cfg.Width = viper.GetInt("width")
	if colors, err := contract.ParseBoolString(viper.GetString("color")); err == nil {
		cfg.UseColors = colors
	}

	return nil
}

// snapshotSetupWrapper wraps snapshotSetup to provide PreRunE for snapshot commands.
func snapshotSetupWrapper(_ *cobra.Command, _ []string) error {
	return snapshotSetup()
}

// snapshotsCmd focused on snapshot store management.
//
// Note: Snapshot subcommands use minimal initialization (snapshotSetup) instead
// of the full sharedSetup used by inspection commands. This avoids repository
// path resolution for operations that never touch a working copy.
var snapshotsCmd = &cobra.Command{
	Use:   "snapshots",
	Short: "Manage stored inspection snapshots",
	Long: `Manage the snapshot store that keeps the last-known state of each working copy.

Snapshots are written by 'repoprobe inspect --save' and read here.

Supported backends: SQLite (default), MySQL, PostgreSQL, or None (disabled)

Subcommands:
  status  - Show store statistics and connection info
  list    - List stored snapshots, most recent first
  clear   - Remove all stored snapshots
  export  - Export stored snapshots to a Parquet file
  migrate - Run schema migrations for the snapshot table

Examples:
  # Check store status
  repoprobe snapshots status

  # List what has been recorded
  repoprobe snapshots list`,
}

// snapshotsStatusCmd shows snapshot store status.
var snapshotsStatusCmd = &cobra.Command{
	Use:   "status",
	Short: "Display snapshot store statistics and connection details",
	Long: `Show detailed information about the snapshot store.

Displays:
- Backend type and connection status
- Total number of stored snapshots
- Last and oldest snapshot timestamps
- Table size

Examples:
  # Check store status
  repoprobe snapshots status`,
	PreRunE: snapshotSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		status, err := iocache.Manager.GetSnapshotStore().GetStatus()
		if err != nil {
			contract.LogFatal("Failed to get snapshot status", err)
		}
		iocache.PrintSnapshotStatus(status)
	},
}

// snapshotsListCmd lists stored snapshots.
var snapshotsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List stored snapshots, most recent first",
	Long: `List every stored snapshot with its directory, branch, and working-tree state.

Respects the global --output flag, so the listing can be read as a table,
JSON (including the full persisted snapshot payload), or CSV.

Examples:
  # Human-readable table
  repoprobe snapshots list

  # Full payloads for scripting
  repoprobe snapshots list --output json`,
	PreRunE: snapshotSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		records, err := iocache.Manager.GetSnapshotStore().List()
		if err != nil {
			contract.LogFatal("Failed to list snapshots", err)
		}
		if err := outwriter.NewOutWriter().WriteSnapshots(records, cfg); err != nil {
			contract.LogFatal("Failed to print snapshots", err)
		}
	},
}

// snapshotsClearCmd clears the snapshot store.
var snapshotsClearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Remove all stored snapshots",
	Long: `Delete all stored snapshots from the configured backend.

For SQLite: Deletes the database file
For MySQL/PostgreSQL: Drops the snapshot table

Examples:
  # Clear SQLite store (default)
  repoprobe snapshots clear

  # Clear MySQL store (set connection string via env variable)
  REPOPROBE_SNAPSHOT_BACKEND=mysql REPOPROBE_SNAPSHOT_DB_CONNECT="..." repoprobe snapshots clear`,
	PreRunE: snapshotSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		if err := iocache.ClearSnapshots(cfg.SnapshotBackend, iocache.GetDBFilePath(), cfg.SnapshotDBConnect); err != nil {
			contract.LogFatal("Failed to clear snapshots", err)
		}
		fmt.Println("Snapshots cleared successfully.")
	},
}

// snapshotsExportCmd exports stored snapshots to Parquet.
var snapshotsExportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export stored snapshots to a Parquet file",
	Long: `Write every stored snapshot to a Parquet file for analytical tooling.

The output file is taken from --output-file and is required.

Examples:
  # Export to a local file
  repoprobe snapshots export --output-file snapshots.parquet`,
	PreRunE: snapshotSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		if err := iocache.ExecuteSnapshotExport(cfg.OutputFile); err != nil {
			contract.LogFatal("Failed to export snapshots", err)
		}
	},
}

// snapshotsMigrateCmd runs schema migrations for the snapshot store.
var snapshotsMigrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Run schema migrations for the snapshot table",
	Long: `Apply or roll back schema migrations for the snapshot store.

Target versions:
  -1  migrate to the latest version (default)
   0  roll back all migrations
   N  migrate to version N

Examples:
  # Migrate to the latest schema
  repoprobe snapshots migrate

  # Roll everything back
  repoprobe snapshots migrate --target-version 0`,
	PreRunE: func(_ *cobra.Command, _ []string) error {
		// Migrations open their own connection, so only the config file load
		// and backend validation from the minimal setup are needed here.
		if err := loadConfigFile(); err != nil {
			return err
		}
		backend := schema.DatabaseBackend(viper.GetString("snapshot-backend"))
		connStr := viper.GetString("snapshot-db-connect")
		if err := contract.ValidateDatabaseConnectionString(backend, connStr); err != nil {
			return err
		}
		cfg.SnapshotBackend = backend
		cfg.SnapshotDBConnect = connStr
		return nil
	},
	Run: func(_ *cobra.Command, _ []string) {
		targetVersion := viper.GetInt("target-version")
		if err := iocache.MigrateSnapshots(cfg.SnapshotBackend, cfg.SnapshotDBConnect, targetVersion); err != nil {
			contract.LogFatal("Failed to migrate snapshot store", err)
		}
	},
}

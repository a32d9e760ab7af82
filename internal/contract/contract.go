// Package contract provides interfaces and shared utilities for internal architecture.
package contract

import (
	"context"
	"time"

	"github.com/huangsam/repoprobe/schema"
)

// GitClient defines the operations the inspection pipelines need from the
// version-control tool. This allows the core logic to be tested without a
// real git executable, and leaves room for a library-backed client later.
type GitClient interface {
	// --- Generic / Low-Level ---

	// Run executes a git command in repoPath and returns captured stdout.
	// Its use should be minimized in favor of the explicit methods below.
	Run(ctx context.Context, repoPath string, args ...string) ([]byte, error)

	// --- Status checks ---

	// ShortStatus returns the raw `git status -s` output.
	ShortStatus(ctx context.Context, repoPath string) ([]byte, error)

	// DiffSummary returns the raw `git diff --stat` output.
	DiffSummary(ctx context.Context, repoPath string) ([]byte, error)

	// --- History ---

	// RemoteBranches returns the raw `git branch -r` listing.
	RemoteBranches(ctx context.Context, repoPath string) ([]byte, error)

	// CommitLog returns the raw log output with one formatted record per
	// line. An empty branch falls back to git's default revision selection.
	CommitLog(ctx context.Context, repoPath string, format string, branch string) ([]byte, error)
}

// SnapshotManager defines the interface for reaching the snapshot store.
// This allows the persistence layer to be mocked for testing.
type SnapshotManager interface {
	GetSnapshotStore() SnapshotStore
}

// SnapshotStore defines the interface for persisted RepoInfo snapshots.
// This allows mocking the store for testing.
type SnapshotStore interface {
	// Save upserts the latest snapshot for info.Dir.
	Save(info schema.RepoInfo, recordedAt time.Time) error

	// Load returns the stored snapshot row for a directory.
	Load(dir string) (schema.SnapshotRecord, error)

	// List returns all stored snapshot rows, most recent first.
	List() ([]schema.SnapshotRecord, error)

	// GetStatus returns status information about the snapshot store.
	GetStatus() (schema.SnapshotStatus, error)

	// Close closes the underlying connection.
	Close() error
}

// Package parquet provides data structures and functions for exporting stored
// repository snapshots to Parquet files using github.com/parquet-go/parquet-go.
package parquet

import (
	"fmt"
	"os"
	"time"

	"github.com/huangsam/repoprobe/schema"
	"github.com/parquet-go/parquet-go"
)

// Snapshot represents one stored inspection snapshot.
// This struct maps to the repo_snapshots database table.
type Snapshot struct {
	// Dir is the inspected directory path
	Dir string `parquet:"dir,snappy"`

	// IsGit reports whether the directory held a .git entry
	IsGit bool `parquet:"is_git,snappy"`

	// Branch is the resolved remote branch (nullable)
	Branch *string `parquet:"branch,optional,snappy"`

	// GitDirty is the combined working-tree flag (nullable)
	GitDirty *bool `parquet:"git_dirty,optional,snappy"`

	// Payload is the full JSON-encoded inspection snapshot
	Payload string `parquet:"payload,snappy"`

	// RecordedAt is when the snapshot was persisted (stored as TIMESTAMP)
	RecordedAt time.Time `parquet:"recorded_at,snappy"`
}

// ConvertSnapshotRecords maps database rows to their Parquet form.
func ConvertSnapshotRecords(records []schema.SnapshotRecord) []Snapshot {
	out := make([]Snapshot, 0, len(records))
	for _, r := range records {
		out = append(out, Snapshot{
			Dir:        r.Dir,
			IsGit:      r.IsGit,
			Branch:     r.Branch,
			GitDirty:   r.GitDirty,
			Payload:    string(r.Payload),
			RecordedAt: r.RecordedAt,
		})
	}
	return out
}

// WriteSnapshotsParquet writes a slice of Snapshot structs to a Parquet file.
func WriteSnapshotsParquet(data []Snapshot, outputPath string) error {
	// Create the output file
	file, err := os.Create(outputPath)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}
	defer func() { _ = file.Close() }()

	// Create a Parquet writer using struct schema inference
	// The schema is automatically derived from the Snapshot struct tags
	writer := parquet.NewGenericWriter[Snapshot](file)
	defer func() { _ = writer.Close() }()

	// Write all records to the file
	// The Write method accepts a variadic slice
	if _, err := writer.Write(data); err != nil {
		return fmt.Errorf("failed to write data to parquet file: %w", err)
	}

	return nil
}

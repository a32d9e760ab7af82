package schema

import "time"

// SnapshotStatus represents the status of the snapshot store.
type SnapshotStatus struct {
	Backend         string    `json:"backend"`
	Connected       bool      `json:"connected"`
	TotalEntries    int       `json:"total_entries"`
	LastEntryTime   time.Time `json:"last_entry_time"`
	OldestEntryTime time.Time `json:"oldest_entry_time"`
	TableSizeBytes  int64     `json:"table_size_bytes"`
}

// SnapshotRecord represents a row from the repo_snapshots table.
type SnapshotRecord struct {
	Dir        string
	IsGit      bool
	Branch     *string
	GitDirty   *bool
	Payload    []byte
	RecordedAt time.Time
}

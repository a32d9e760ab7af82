package iocache

import (
	"database/sql"
	"encoding/json"
	"path/filepath"
	"testing"
	"time"

	"github.com/huangsam/repoprobe/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func strPtr(s string) *string { return &s }

func boolPtr(b bool) *bool { return &b }

func sampleInfo(dir string, dirty bool) schema.RepoInfo {
	return schema.RepoInfo{
		Dir:    dir,
		IsGit:  true,
		Branch: strPtr("origin/main"),
		Status: &schema.Status{
			GitDirty: boolPtr(dirty),
			Summary:  map[string]bool{schema.SummaryModified: dirty, schema.SummaryDirty: false},
		},
	}
}

func newSQLiteStore(t *testing.T) (string, *SnapshotStoreImpl) {
	t.Helper()
	dbPath := filepath.Join(t.TempDir(), "snapshots.db")
	store, err := NewSnapshotStore(schema.SQLiteBackend, dbPath)
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close() })
	return dbPath, store.(*SnapshotStoreImpl)
}

func TestSnapshotStoreSQLiteRoundTrip(t *testing.T) {
	_, store := newSQLiteStore(t)

	recordedAt := time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)
	require.NoError(t, store.Save(sampleInfo("/tmp/repo", true), recordedAt))

	rec, err := store.Load("/tmp/repo")
	require.NoError(t, err)
	assert.Equal(t, "/tmp/repo", rec.Dir)
	assert.True(t, rec.IsGit)
	require.NotNil(t, rec.Branch)
	assert.Equal(t, "origin/main", *rec.Branch)
	require.NotNil(t, rec.GitDirty)
	assert.True(t, *rec.GitDirty)
	assert.Equal(t, recordedAt.Unix(), rec.RecordedAt.Unix())

	// Payload holds the full serialized snapshot
	var decoded schema.RepoInfo
	require.NoError(t, json.Unmarshal(rec.Payload, &decoded))
	assert.Equal(t, "/tmp/repo", decoded.Dir)
	require.NotNil(t, decoded.Status)
	assert.True(t, decoded.Status.Summary[schema.SummaryModified])
}

func TestSnapshotStoreSQLiteUpsert(t *testing.T) {
	_, store := newSQLiteStore(t)

	require.NoError(t, store.Save(sampleInfo("/tmp/repo", true), time.Unix(1000, 0)))
	require.NoError(t, store.Save(sampleInfo("/tmp/repo", false), time.Unix(2000, 0)))

	rec, err := store.Load("/tmp/repo")
	require.NoError(t, err)
	require.NotNil(t, rec.GitDirty)
	assert.False(t, *rec.GitDirty, "second save must replace the first")
	assert.Equal(t, int64(2000), rec.RecordedAt.Unix())

	records, err := store.List()
	require.NoError(t, err)
	assert.Len(t, records, 1)
}

func TestSnapshotStoreSQLiteListOrder(t *testing.T) {
	_, store := newSQLiteStore(t)

	require.NoError(t, store.Save(sampleInfo("/tmp/older", false), time.Unix(1000, 0)))
	require.NoError(t, store.Save(sampleInfo("/tmp/newer", false), time.Unix(2000, 0)))

	records, err := store.List()
	require.NoError(t, err)
	require.Len(t, records, 2)
	assert.Equal(t, "/tmp/newer", records[0].Dir, "most recent first")
	assert.Equal(t, "/tmp/older", records[1].Dir)
}

func TestSnapshotStoreSQLiteNullableColumns(t *testing.T) {
	_, store := newSQLiteStore(t)

	// A non-repo snapshot has no branch and no dirty flag.
	info := schema.RepoInfo{Dir: "/tmp/plain", Status: &schema.Status{}}
	require.NoError(t, store.Save(info, time.Unix(1000, 0)))

	rec, err := store.Load("/tmp/plain")
	require.NoError(t, err)
	assert.False(t, rec.IsGit)
	assert.Nil(t, rec.Branch)
	assert.Nil(t, rec.GitDirty)
}

func TestSnapshotStoreSQLiteLoadMissing(t *testing.T) {
	_, store := newSQLiteStore(t)

	_, err := store.Load("/tmp/never-saved")
	assert.ErrorIs(t, err, sql.ErrNoRows)
}

func TestSnapshotStoreSQLiteStatus(t *testing.T) {
	_, store := newSQLiteStore(t)

	status, err := store.GetStatus()
	require.NoError(t, err)
	assert.Equal(t, string(schema.SQLiteBackend), status.Backend)
	assert.True(t, status.Connected)
	assert.Zero(t, status.TotalEntries)

	require.NoError(t, store.Save(sampleInfo("/tmp/a", false), time.Unix(1000, 0)))
	require.NoError(t, store.Save(sampleInfo("/tmp/b", false), time.Unix(2000, 0)))

	status, err = store.GetStatus()
	require.NoError(t, err)
	assert.Equal(t, 2, status.TotalEntries)
	assert.Equal(t, int64(2000), status.LastEntryTime.Unix())
	assert.Equal(t, int64(1000), status.OldestEntryTime.Unix())
}

func TestSnapshotStoreNoneBackend(t *testing.T) {
	store, err := NewSnapshotStore(schema.NoneBackend, "")
	require.NoError(t, err)

	assert.NoError(t, store.Save(sampleInfo("/tmp/repo", false), time.Now()))

	_, err = store.Load("/tmp/repo")
	assert.ErrorIs(t, err, sql.ErrNoRows)

	records, err := store.List()
	assert.NoError(t, err)
	assert.Nil(t, records)

	status, err := store.GetStatus()
	require.NoError(t, err)
	assert.False(t, status.Connected)

	assert.NoError(t, store.Close())
}

func TestNewSnapshotStoreUnsupportedBackend(t *testing.T) {
	_, err := NewSnapshotStore(schema.DatabaseBackend("oracle"), "")
	assert.Error(t, err)
}

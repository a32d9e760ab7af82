package iocache

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/huangsam/repoprobe/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClearSnapshotsSQLite(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "snapshots.db")
	require.NoError(t, os.WriteFile(dbPath, []byte("stub"), 0o644))

	require.NoError(t, ClearSnapshots(schema.SQLiteBackend, dbPath, ""))
	_, err := os.Stat(dbPath)
	assert.True(t, os.IsNotExist(err), "database file should be removed")

	// Clearing again is a no-op, the file is already gone
	assert.NoError(t, ClearSnapshots(schema.SQLiteBackend, dbPath, ""))
}

func TestClearSnapshotsSQLiteEmptyPath(t *testing.T) {
	assert.Error(t, ClearSnapshots(schema.SQLiteBackend, "", ""))
}

func TestClearSnapshotsNoneBackend(t *testing.T) {
	assert.NoError(t, ClearSnapshots(schema.NoneBackend, "", ""))
}

func TestClearSnapshotsUnsupportedBackend(t *testing.T) {
	assert.Error(t, ClearSnapshots(schema.DatabaseBackend("oracle"), "", ""))
}

func TestMigrateSnapshotsNoneBackend(t *testing.T) {
	assert.Error(t, MigrateSnapshots(schema.NoneBackend, "", -1))
}

func TestMigrateSnapshotsSQLite(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "snapshots.db")

	// Up to latest, then all the way back down
	require.NoError(t, MigrateSnapshots(schema.SQLiteBackend, dbPath, -1))
	require.NoError(t, MigrateSnapshots(schema.SQLiteBackend, dbPath, 0))
}

func TestMockSnapshotManager(t *testing.T) {
	store := new(MockSnapshotStore)
	mgr := new(MockSnapshotManager)
	mgr.On("GetSnapshotStore").Return(store).Once()

	assert.Equal(t, store, mgr.GetSnapshotStore())
	mgr.AssertExpectations(t)
}

func TestMockSnapshotStore(t *testing.T) {
	store := new(MockSnapshotStore)
	info := schema.RepoInfo{Dir: "/tmp/repo", IsGit: true}
	now := time.Now()

	store.On("Save", info, now).Return(nil).Once()
	store.On("Load", "/tmp/repo").Return(schema.SnapshotRecord{Dir: "/tmp/repo"}, nil).Once()
	store.On("List").Return([]schema.SnapshotRecord(nil), nil).Once()
	store.On("GetStatus").Return(schema.SnapshotStatus{Backend: "none"}, nil).Once()
	store.On("Close").Return(nil).Once()

	assert.NoError(t, store.Save(info, now))

	rec, err := store.Load("/tmp/repo")
	assert.NoError(t, err)
	assert.Equal(t, "/tmp/repo", rec.Dir)

	records, err := store.List()
	assert.NoError(t, err)
	assert.Nil(t, records)

	status, err := store.GetStatus()
	assert.NoError(t, err)
	assert.Equal(t, "none", status.Backend)

	assert.NoError(t, store.Close())
	store.AssertExpectations(t)
}

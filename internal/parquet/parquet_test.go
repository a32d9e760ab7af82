package parquet

import (
	"io"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/huangsam/repoprobe/schema"
	"github.com/parquet-go/parquet-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleRecords() []schema.SnapshotRecord {
	branch := "origin/main"
	dirty := true
	return []schema.SnapshotRecord{
		{
			Dir:        "/tmp/repo",
			IsGit:      true,
			Branch:     &branch,
			GitDirty:   &dirty,
			Payload:    []byte(`{"dir":"/tmp/repo","is_git":true}`),
			RecordedAt: time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC),
		},
		{
			Dir:        "/tmp/plain",
			IsGit:      false,
			Payload:    []byte(`{"dir":"/tmp/plain","is_git":false}`),
			RecordedAt: time.Date(2024, 4, 30, 9, 0, 0, 0, time.UTC),
		},
	}
}

func TestSnapshotStructTags(t *testing.T) {
	// Verify struct tags are properly defined for parquet schema inference
	sch := parquet.SchemaOf(new(Snapshot))
	require.NotNil(t, sch)

	expectedColumns := []string{
		"dir",
		"is_git",
		"branch",
		"git_dirty",
		"payload",
		"recorded_at",
	}

	for _, colName := range expectedColumns {
		col, ok := sch.Lookup(colName)
		require.True(t, ok, "Column %s should exist in schema", colName)
		require.NotNil(t, col, "Column %s should not be nil", colName)
	}
}

func TestConvertSnapshotRecords(t *testing.T) {
	converted := ConvertSnapshotRecords(sampleRecords())
	require.Len(t, converted, 2)

	assert.Equal(t, "/tmp/repo", converted[0].Dir)
	require.NotNil(t, converted[0].Branch)
	assert.Equal(t, "origin/main", *converted[0].Branch)
	require.NotNil(t, converted[0].GitDirty)
	assert.True(t, *converted[0].GitDirty)

	assert.Nil(t, converted[1].Branch, "missing branch stays nullable")
	assert.Nil(t, converted[1].GitDirty)
	assert.Contains(t, converted[1].Payload, `"is_git":false`)
}

func TestWriteSnapshotsParquet(t *testing.T) {
	tmpDir := t.TempDir()
	outputPath := filepath.Join(tmpDir, "snapshots.parquet")

	data := ConvertSnapshotRecords(sampleRecords())
	require.NoError(t, WriteSnapshotsParquet(data, outputPath))

	// Verify file was created
	info, err := os.Stat(outputPath)
	require.NoError(t, err, "Output file should exist")
	assert.Greater(t, info.Size(), int64(0), "Output file should not be empty")

	// Read back and verify data
	file, err := os.Open(outputPath)
	require.NoError(t, err)
	defer func() { _ = file.Close() }()

	reader := parquet.NewGenericReader[Snapshot](file)
	defer func() { _ = reader.Close() }()

	rows := make([]Snapshot, 4)
	n, err := reader.Read(rows)
	if err != nil && err != io.EOF {
		require.NoError(t, err)
	}
	require.Equal(t, 2, n)

	assert.Equal(t, "/tmp/repo", rows[0].Dir)
	assert.True(t, rows[0].IsGit)
	require.NotNil(t, rows[0].Branch)
	assert.Equal(t, "origin/main", *rows[0].Branch)
	assert.Equal(t, "/tmp/plain", rows[1].Dir)
	assert.Nil(t, rows[1].Branch)
}

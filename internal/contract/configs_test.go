package contract

import (
	"path/filepath"
	"testing"

	"github.com/huangsam/repoprobe/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProcessAndValidate(t *testing.T) {
	tests := []struct {
		name        string
		input       *ConfigRawInput
		expectError bool
	}{
		{
			name: "valid minimal config",
			input: &ConfigRawInput{
				Output:          "text",
				Color:           "yes",
				SnapshotBackend: "sqlite",
				RepoPathStr:     ".",
			},
			expectError: false,
		},
		{
			name: "invalid output format",
			input: &ConfigRawInput{
				Output:          "yaml",
				Color:           "yes",
				SnapshotBackend: "sqlite",
				RepoPathStr:     ".",
			},
			expectError: true,
		},
		{
			name: "invalid color value",
			input: &ConfigRawInput{
				Output:          "json",
				Color:           "maybe",
				SnapshotBackend: "sqlite",
				RepoPathStr:     ".",
			},
			expectError: true,
		},
		{
			name: "invalid snapshot backend",
			input: &ConfigRawInput{
				Output:          "text",
				Color:           "no",
				SnapshotBackend: "oracle",
				RepoPathStr:     ".",
			},
			expectError: true,
		},
		{
			name: "mysql backend without connection string",
			input: &ConfigRawInput{
				Output:          "text",
				Color:           "no",
				SnapshotBackend: "mysql",
				RepoPathStr:     ".",
			},
			expectError: true,
		},
		{
			name: "mysql backend with valid connection string",
			input: &ConfigRawInput{
				Output:            "text",
				Color:             "no",
				SnapshotBackend:   "mysql",
				SnapshotDBConnect: "user:pass@tcp(localhost:3306)/repoprobe",
				RepoPathStr:       ".",
			},
			expectError: false,
		},
		{
			name: "postgresql backend with valid connection string",
			input: &ConfigRawInput{
				Output:            "csv",
				Color:             "no",
				SnapshotBackend:   "postgresql",
				SnapshotDBConnect: "host=localhost port=5432 dbname=repoprobe sslmode=disable",
				RepoPathStr:       ".",
			},
			expectError: false,
		},
		{
			name: "uppercase output and backend are normalized",
			input: &ConfigRawInput{
				Output:          "JSON",
				Color:           "TRUE",
				SnapshotBackend: "SQLITE",
				RepoPathStr:     ".",
			},
			expectError: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := &Config{}
			err := ProcessAndValidate(cfg, tt.input)
			if tt.expectError {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.True(t, filepath.IsAbs(cfg.RepoPath))
		})
	}
}

func TestProcessAndValidateNormalization(t *testing.T) {
	cfg := &Config{}
	input := &ConfigRawInput{
		Output:          "JSON",
		Color:           "no",
		Width:           120,
		SnapshotBackend: "None",
		RepoPathStr:     "/tmp/some/repo",
		Save:            true,
	}
	require.NoError(t, ProcessAndValidate(cfg, input))

	assert.Equal(t, schema.JSONOut, cfg.Output)
	assert.Equal(t, schema.NoneBackend, cfg.SnapshotBackend)
	assert.False(t, cfg.UseColors)
	assert.Equal(t, 120, cfg.Width)
	assert.Equal(t, "/tmp/some/repo", cfg.RepoPath)
	assert.True(t, cfg.SaveSnapshot)
}

func TestValidateDatabaseConnectionString(t *testing.T) {
	tests := []struct {
		name        string
		backend     schema.DatabaseBackend
		connStr     string
		expectError bool
	}{
		{"sqlite never needs a connection string", schema.SQLiteBackend, "", false},
		{"none never needs a connection string", schema.NoneBackend, "", false},
		{"mysql missing tcp host", schema.MySQLBackend, "user:pass/db", true},
		{"mysql missing database", schema.MySQLBackend, "user:pass@tcp(localhost:3306)", true},
		{"mysql well formed", schema.MySQLBackend, "user:pass@tcp(localhost:3306)/db", false},
		{"postgres missing host", schema.PostgreSQLBackend, "dbname=db", true},
		{"postgres missing dbname", schema.PostgreSQLBackend, "host=localhost", true},
		{"postgres well formed", schema.PostgreSQLBackend, "host=localhost dbname=db", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateDatabaseConnectionString(tt.backend, tt.connStr)
			if tt.expectError {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestParseBoolString(t *testing.T) {
	for _, s := range []string{"yes", "YES", "true", "1"} {
		got, err := ParseBoolString(s)
		require.NoError(t, err)
		assert.True(t, got)
	}
	for _, s := range []string{"no", "False", "0"} {
		got, err := ParseBoolString(s)
		require.NoError(t, err)
		assert.False(t, got)
	}
	_, err := ParseBoolString("sometimes")
	assert.Error(t, err)
}

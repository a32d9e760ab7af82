package contract

import (
	"context"
	"errors"
	"os/exec"
	"testing"

	"github.com/stretchr/testify/assert"
)

// skipIfGitNotAvailable skips the test if git binary is not found in PATH
func skipIfGitNotAvailable(t *testing.T) {
	t.Helper()
	if _, err := exec.LookPath("git"); err != nil {
		t.Skipf("git binary not found in PATH: %v", err)
	}
}

// TestMockGitClient_Run ensures the mock correctly records and returns
// expected values when its Run method is called.
func TestMockGitClient_Run(t *testing.T) {
	mockClient := new(MockGitClient)

	const expectedRepoPath = "/path/to/repo"
	expectedArgs := []string{"log", "--format=%H"}
	expectedOutput := []byte("a1b2c3d")
	expectedError := errors.New("mocked git error")

	// The `Run` method flattens (ctx, repoPath, args...) into a single
	// argument list for m.Called(), so .On() must match that structure.
	var calledArgs []any
	ctx := context.Background()
	calledArgs = append(calledArgs, ctx, expectedRepoPath)
	for _, arg := range expectedArgs {
		calledArgs = append(calledArgs, arg)
	}

	mockClient.
		On("Run", calledArgs...).
		Return(expectedOutput, expectedError).
		Once()

	actualOutput, actualError := mockClient.Run(ctx, expectedRepoPath, expectedArgs...)

	assert.Equal(t, expectedOutput, actualOutput, "Run should return the programmed output")
	assert.Equal(t, expectedError, actualError, "Run should return the programmed error")
	mockClient.AssertExpectations(t)
}

// TestMockGitClient_Helpers checks that the explicit methods route through
// their own expectations rather than the generic Run.
func TestMockGitClient_Helpers(t *testing.T) {
	mockClient := new(MockGitClient)
	ctx := context.Background()

	mockClient.On("ShortStatus", ctx, "/repo").Return([]byte(" M main.go\n"), nil).Once()
	mockClient.On("DiffSummary", ctx, "/repo").Return([]byte(""), nil).Once()
	mockClient.On("RemoteBranches", ctx, "/repo").Return([]byte("  origin/main\n"), nil).Once()
	mockClient.On("CommitLog", ctx, "/repo", "%H", "origin/main").Return([]byte("abc\n"), nil).Once()

	out, err := mockClient.ShortStatus(ctx, "/repo")
	assert.NoError(t, err)
	assert.Equal(t, []byte(" M main.go\n"), out)

	out, err = mockClient.DiffSummary(ctx, "/repo")
	assert.NoError(t, err)
	assert.Empty(t, out)

	out, err = mockClient.RemoteBranches(ctx, "/repo")
	assert.NoError(t, err)
	assert.Equal(t, []byte("  origin/main\n"), out)

	out, err = mockClient.CommitLog(ctx, "/repo", "%H", "origin/main")
	assert.NoError(t, err)
	assert.Equal(t, []byte("abc\n"), out)

	mockClient.AssertExpectations(t)
}

// TestNewLocalGitClient tests the constructor for LocalGitClient.
func TestNewLocalGitClient(t *testing.T) {
	client := NewLocalGitClient()
	assert.NotNil(t, client, "NewLocalGitClient should return a non-nil client")
	assert.IsType(t, &LocalGitClient{}, client, "NewLocalGitClient should return a LocalGitClient instance")
}

// TestLocalGitClient_Run tests the Run method with various failure scenarios.
func TestLocalGitClient_Run(t *testing.T) {
	skipIfGitNotAvailable(t)

	client := NewLocalGitClient()
	ctx := context.Background()

	tests := []struct {
		name        string
		repoPath    string
		args        []string
		expectError bool
	}{
		{
			name:        "invalid repo path",
			repoPath:    "/nonexistent/path",
			args:        []string{"status", "-s"},
			expectError: true,
		},
		{
			name:        "invalid git command",
			repoPath:    ".",
			args:        []string{"definitely-not-a-command"},
			expectError: true,
		},
		{
			name:        "version works anywhere",
			repoPath:    ".",
			args:        []string{"--version"},
			expectError: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := client.Run(ctx, tt.repoPath, tt.args...)
			if tt.expectError {
				assert.Error(t, err, "Run should return an error for %s", tt.name)
			} else {
				assert.NoError(t, err, "Run should not return an error for %s", tt.name)
			}
		})
	}
}

// TestLocalGitClient_StatusOutsideRepo verifies failures in a plain directory
// are reported as errors with the git stderr folded in.
func TestLocalGitClient_StatusOutsideRepo(t *testing.T) {
	skipIfGitNotAvailable(t)

	client := NewLocalGitClient()
	dir := t.TempDir()

	_, err := client.ShortStatus(context.Background(), dir)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "exit")
}

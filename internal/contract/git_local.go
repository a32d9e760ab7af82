package contract

import (
	"context"
	"errors"
	"fmt"
	"os/exec"
	"strings"
)

// LocalGitClient implements the GitClient interface by executing the
// local 'git' binary installed on the machine.
type LocalGitClient struct{}

var _ GitClient = &LocalGitClient{} // Compile-time check

// NewLocalGitClient creates a new instance of the local Git client.
func NewLocalGitClient() *LocalGitClient {
	return &LocalGitClient{}
}

// Run executes a git command and returns its stdout output.
// A non-zero exit and a spawn failure both surface as errors; stderr is
// folded into the error text, never parsed. There is no retry and no
// timeout: an unresponsive git call blocks until it finishes.
func (c *LocalGitClient) Run(_ context.Context, repoPath string, args ...string) ([]byte, error) {
	fullArgs := append([]string{"-C", repoPath}, args...)
	cmd := exec.Command("git", fullArgs...)
	out, err := cmd.Output()
	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		return nil, fmt.Errorf("git '%v' exit: %s", strings.Join(fullArgs, " "), strings.TrimSpace(string(exitErr.Stderr)))
	} else if err != nil {
		return nil, fmt.Errorf("git '%v' unknown: %w", strings.Join(fullArgs, " "), err)
	}
	return out, nil
}

// ShortStatus implements the GitClient interface.
func (c *LocalGitClient) ShortStatus(ctx context.Context, repoPath string) ([]byte, error) {
	return c.Run(ctx, repoPath, "status", "-s")
}

// DiffSummary implements the GitClient interface.
func (c *LocalGitClient) DiffSummary(ctx context.Context, repoPath string) ([]byte, error) {
	return c.Run(ctx, repoPath, "diff", "--stat")
}

// RemoteBranches implements the GitClient interface.
func (c *LocalGitClient) RemoteBranches(ctx context.Context, repoPath string) ([]byte, error) {
	return c.Run(ctx, repoPath, "branch", "-r")
}

// CommitLog implements the GitClient interface.
func (c *LocalGitClient) CommitLog(ctx context.Context, repoPath string, format string, branch string) ([]byte, error) {
	args := []string{"log", "--format=" + format}
	if branch != "" {
		args = append(args, branch)
	}
	return c.Run(ctx, repoPath, args...)
}

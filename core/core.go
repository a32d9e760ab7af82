// Package core has core logic for probing, status checks and commit history.
package core

import (
	"context"
	"time"

	"github.com/huangsam/repoprobe/internal/contract"
	"github.com/huangsam/repoprobe/internal/outwriter"
	"github.com/huangsam/repoprobe/schema"
)

// ExecutorFunc defines the function signature for executing different inspection modes.
type ExecutorFunc func(ctx context.Context, cfg *contract.Config) error

// GetStatusResult runs the working-tree status pipeline for a path.
func GetStatusResult(ctx context.Context, repoPath string) schema.RepoInfo {
	ins := NewInspector(contract.NewLocalGitClient())
	return ins.StatusInfo(ctx, NewRepoInfo(repoPath))
}

// GetCommitsResult runs the commit-history pipeline for a path.
func GetCommitsResult(ctx context.Context, repoPath string) schema.RepoInfo {
	ins := NewInspector(contract.NewLocalGitClient())
	return ins.CommitInfo(ctx, NewRepoInfo(repoPath))
}

// GetInspectResult runs both pipelines for a path.
func GetInspectResult(ctx context.Context, repoPath string) schema.RepoInfo {
	ins := NewInspector(contract.NewLocalGitClient())
	info := NewRepoInfo(repoPath)
	info = ins.StatusInfo(ctx, info)
	return ins.CommitInfo(ctx, info)
}

// ExecuteStatus runs the working-tree status pipeline and prints the result.
// It serves as the main entry point for the 'status' command.
func ExecuteStatus(ctx context.Context, cfg *contract.Config) error {
	start := time.Now()
	info := GetStatusResult(ctx, cfg.RepoPath)
	return outwriter.NewOutWriter().WriteRepoInfo(info, cfg, time.Since(start))
}

// ExecuteCommits runs the commit-history pipeline and prints the result.
// It serves as the main entry point for the 'commits' command.
func ExecuteCommits(ctx context.Context, cfg *contract.Config) error {
	start := time.Now()
	info := GetCommitsResult(ctx, cfg.RepoPath)
	return outwriter.NewOutWriter().WriteRepoInfo(info, cfg, time.Since(start))
}

// ExecuteInspect runs both pipelines, optionally persists the snapshot, and
// prints the result. It serves as the main entry point for the 'inspect'
// command.
func ExecuteInspect(ctx context.Context, cfg *contract.Config, mgr contract.SnapshotManager) error {
	start := time.Now()
	info := GetInspectResult(ctx, cfg.RepoPath)

	if cfg.SaveSnapshot {
		if store := mgr.GetSnapshotStore(); store != nil {
			if err := store.Save(info, time.Now()); err != nil {
				contract.LogWarn("saving snapshot", err)
			}
		}
	}

	return outwriter.NewOutWriter().WriteRepoInfo(info, cfg, time.Since(start))
}

package core

import (
	"os"
	"path/filepath"

	"github.com/huangsam/repoprobe/schema"
)

// NewRepoInfo probes a directory and returns the initial inspection snapshot.
// A directory counts as a repository when <dir>/.git exists; a plain file at
// that path also counts, since linked worktrees keep a .git file there. No
// git process is spawned for the probe, and every later pipeline gates on
// the resulting IsGit flag.
func NewRepoInfo(dir string) schema.RepoInfo {
	_, err := os.Stat(filepath.Join(dir, ".git"))
	return schema.RepoInfo{
		Dir:   dir,
		IsGit: err == nil,
	}
}

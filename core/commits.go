package core

import (
	"context"
	"encoding/json"
	"strings"

	"github.com/huangsam/repoprobe/schema"
)

// commitLogFormat asks git to print each commit as one JSON object per line.
// The field keys match the schema.Commit wire format, so each line feeds
// straight into the JSON decoder. Messages containing double quotes will
// break a line; that line then degrades to an all-null record.
const commitLogFormat = `{"commit_date":"%ci", "commit_message":"%s", "author_name":"%an", "author_email":"%ae", "committer_name":"%cn", "committer_email":"%ce",  "tree_hash":"%t"}`

// CommitInfo returns a copy of info with Branch and Commits populated from
// the repository history. The log output is capped to CommitWindow lines
// first and filtered for dateless records second, so a malformed line inside
// the window shrinks the result instead of pulling in older commits. The
// method itself never fails.
func (ins *Inspector) CommitInfo(ctx context.Context, info schema.RepoInfo) schema.RepoInfo {
	next := info
	if !next.IsGit {
		return next
	}

	branch := ins.resolveBranch(ctx, next.Dir)
	next.Branch = &branch

	logOut := classify(ins.git.CommitLog(ctx, next.Dir, commitLogFormat, branch)).
		orSentinel(emptyCommitLine())

	lines := strings.Split(logOut.text, "\n")
	if len(lines) > schema.CommitWindow {
		lines = lines[:schema.CommitWindow]
	}

	var commits []schema.Commit
	for _, line := range lines {
		var c schema.Commit
		if err := json.Unmarshal([]byte(line), &c); err != nil {
			c = schema.Commit{}
		}
		if c.HasDate() {
			commits = append(commits, c)
		}
	}
	next.Commits = commits
	return next
}

// resolveBranch picks the first non-HEAD entry from the remote branch
// listing. Any failure, including a repository with no remotes, yields an
// empty token, which makes the log call fall back to git's default revision
// selection.
func (ins *Inspector) resolveBranch(ctx context.Context, dir string) string {
	out, err := ins.git.RemoteBranches(ctx, dir)
	if err != nil {
		return ""
	}
	for _, line := range strings.Split(string(out), "\n") {
		line = strings.TrimSpace(line)
		if line == "" || strings.Contains(line, "HEAD") {
			continue
		}
		return line
	}
	return ""
}

// emptyCommitLine serializes the all-null Commit sentinel that substitutes
// for the log output when the invocation fails. It decodes cleanly and is
// dropped by the dateless filter, so a failed log call yields nil Commits.
func emptyCommitLine() string {
	data, _ := json.Marshal(schema.Commit{})
	return string(data)
}

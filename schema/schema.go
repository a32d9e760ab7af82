// Package schema has the data model, constants and codecs for all parts of repoprobe.
package schema

// RepoInfo is the aggregate snapshot for a single working copy inspection.
// Operations never mutate a RepoInfo in place; they copy it and populate the
// field they own, so a shared snapshot is safe to read concurrently.
type RepoInfo struct {
	// Dir is the directory path the inspection targets.
	Dir string `json:"dir"`
	// IsGit reports whether Dir contains a .git metadata directory.
	IsGit bool `json:"is_git"`
	// Branch is the resolved remote branch, set by the commit pipeline.
	// Nil means the pipeline has not run; an empty string means resolution
	// fell back to the default revision selection.
	Branch *string `json:"branch"`
	// Status holds the working tree status, set by the status pipeline.
	Status *Status `json:"status"`
	// Commits holds up to CommitWindow recent commits, most recent first.
	// Nil means "no history available", which is distinct from empty.
	Commits []Commit `json:"commits"`
}

// Status describes whether the working tree is modified or dirty.
type Status struct {
	// Error carries the textual form of a failed short-status invocation.
	Error *string `json:"error"`
	// GitDirty is set only when both underlying checks ran without an
	// invocation error, and is then is_modified OR is_dirty.
	GitDirty *bool `json:"git_dirty"`
	// Summary maps the two recognized flag names, SummaryModified and
	// SummaryDirty, to their boolean results.
	Summary map[string]bool `json:"summary"`
}

// Commit is one entry of the recent-history window. Every field is optional
// because a malformed log line degrades to an all-empty record instead of
// failing the batch; records without a commit date are filtered out before
// they reach a RepoInfo.
type Commit struct {
	CommitDate     GitDate `json:"commit_date"`
	CommitMessage  *string `json:"commit_message"`
	AuthorName     *string `json:"author_name"`
	AuthorEmail    *string `json:"author_email"`
	CommitterName  *string `json:"committer_name"`
	CommitterEmail *string `json:"committer_email"`
	TreeHash       *string `json:"tree_hash"`
}

// HasDate reports whether the commit carries a successfully parsed date.
func (c Commit) HasDate() bool {
	return !c.CommitDate.IsZero()
}

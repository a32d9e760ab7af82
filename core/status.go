package core

import (
	"context"

	"github.com/huangsam/repoprobe/schema"
)

// diffSentinel substitutes for `git diff --stat` output when the invocation
// fails. It is non-empty on purpose, so a broken diff check reads as dirty
// rather than silently clean.
const diffSentinel = "ERR"

// StatusInfo returns a copy of info with the Status field populated from the
// working tree. The short-status check is load-bearing: if it fails, the
// failure text lands in Status.Error and the dirty computation is skipped.
// A diff-summary failure only degrades to the sentinel. The method itself
// never fails.
func (ins *Inspector) StatusInfo(ctx context.Context, info schema.RepoInfo) schema.RepoInfo {
	next := info
	next.Status = &schema.Status{}
	if !next.IsGit {
		return next
	}

	short := classify(ins.git.ShortStatus(ctx, next.Dir))
	if short.fatal() {
		msg := short.err.Error()
		next.Status.Error = &msg
		return next
	}

	diff := classify(ins.git.DiffSummary(ctx, next.Dir)).orSentinel(diffSentinel)

	modified := short.text != ""
	dirty := diff.text != ""
	next.Status.Summary = map[string]bool{
		schema.SummaryModified: modified,
		schema.SummaryDirty:    dirty,
	}
	combined := modified || dirty
	next.Status.GitDirty = &combined
	return next
}

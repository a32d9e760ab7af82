package outwriter

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"time"

	"github.com/huangsam/repoprobe/internal/contract"
	"github.com/huangsam/repoprobe/schema"

	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/tw"
)

// PrintRepoInfo outputs an inspection snapshot, dispatching based on the output format configured.
func PrintRepoInfo(info schema.RepoInfo, cfg *contract.Config, duration time.Duration) error {
	switch cfg.Output {
	case schema.JSONOut:
		if err := writeRepoInfoJSON(info, cfg); err != nil {
			return fmt.Errorf("error writing JSON output: %w", err)
		}
	case schema.CSVOut:
		if err := writeRepoInfoCSV(info, cfg); err != nil {
			return fmt.Errorf("error writing CSV output: %w", err)
		}
	default:
		// Default to human-readable table
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeRepoInfoTable(info, cfg, duration, w)
		}, "Wrote table")
	}
	return nil
}

// writeRepoInfoJSON handles opening the file and encoding the full snapshot.
func writeRepoInfoJSON(info schema.RepoInfo, cfg *contract.Config) error {
	return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
		return writeJSON(w, info)
	}, "Wrote JSON")
}

// writeRepoInfoCSV writes one row per commit, repeating the repository
// columns. A snapshot without commits still yields a single row so the
// repository state is never silently dropped.
func writeRepoInfoCSV(info schema.RepoInfo, cfg *contract.Config) error {
	return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
		csvWriter := csv.NewWriter(w)
		defer csvWriter.Flush()

		header := []string{
			"dir",
			"is_git",
			"branch",
			"state",
			"commit_date",
			"author_name",
			"author_email",
			"committer_name",
			"committer_email",
			"tree_hash",
			"message",
		}
		if err := csvWriter.Write(header); err != nil {
			return err
		}

		repoCols := []string{
			info.Dir,
			strconv.FormatBool(info.IsGit),
			derefOr(info.Branch, ""),
			contract.GetPlainStateLabel(statusDirty(info.Status)),
		}
		if len(info.Commits) == 0 {
			rec := append(repoCols, "", "", "", "", "", "", "")
			return csvWriter.Write(rec)
		}
		for _, c := range info.Commits {
			rec := append([]string{}, repoCols...)
			rec = append(rec,
				c.CommitDate.String(),
				derefOr(c.AuthorName, ""),
				derefOr(c.AuthorEmail, ""),
				derefOr(c.CommitterName, ""),
				derefOr(c.CommitterEmail, ""),
				derefOr(c.TreeHash, ""),
				derefOr(c.CommitMessage, ""),
			)
			if err := csvWriter.Write(rec); err != nil {
				return err
			}
		}
		return nil
	}, "Wrote CSV")
}

// writeRepoInfoTable generates and writes the human-readable report.
func writeRepoInfoTable(info schema.RepoInfo, cfg *contract.Config, duration time.Duration, writer io.Writer) error {
	if _, err := fmt.Fprintf(writer, "Repository: %s\n", info.Dir); err != nil {
		return err
	}
	if !info.IsGit {
		if _, err := fmt.Fprintln(writer, "Not a git repository (no .git entry found)"); err != nil {
			return err
		}
		return writeTableFooter(info, cfg, duration, writer)
	}

	if info.Branch != nil {
		branch := *info.Branch
		if branch == "" {
			branch = "(default revision)"
		}
		if _, err := fmt.Fprintf(writer, "Branch: %s\n", branch); err != nil {
			return err
		}
	}

	if info.Status != nil {
		if err := writeStatusLine(info.Status, cfg, writer); err != nil {
			return err
		}
	}

	if len(info.Commits) > 0 {
		if err := writeCommitTable(info.Commits, cfg, writer); err != nil {
			return err
		}
	}

	return writeTableFooter(info, cfg, duration, writer)
}

// writeStatusLine renders the working-tree state with its two summary flags.
func writeStatusLine(st *schema.Status, cfg *contract.Config, writer io.Writer) error {
	if st.Error != nil {
		_, err := fmt.Fprintf(writer, "Working tree: %s (%s)\n",
			stateLabel(nil, cfg), *st.Error)
		return err
	}
	if st.GitDirty == nil {
		_, err := fmt.Fprintf(writer, "Working tree: %s\n", stateLabel(nil, cfg))
		return err
	}
	_, err := fmt.Fprintf(writer, "Working tree: %s (modified=%t, dirty=%t)\n",
		stateLabel(st.GitDirty, cfg),
		st.Summary[schema.SummaryModified],
		st.Summary[schema.SummaryDirty])
	return err
}

// writeCommitTable renders the recent-history window as a table.
func writeCommitTable(commits []schema.Commit, cfg *contract.Config, writer io.Writer) error {
	table := tablewriter.NewWriter(writer)
	table.Header([]string{"Seq", "Date", "Author", "Message", "Tree"})
	table.Configure(func(tcfg *tablewriter.Config) {
		tcfg.Row.Alignment.Global = tw.AlignLeft
	})

	maxMsg := getMaxTableMessageWidth(cfg)
	var data [][]string
	for i, c := range commits {
		row := []string{
			strconv.Itoa(i + 1),
			c.CommitDate.String(),
			derefOr(c.AuthorName, ""),
			contract.TruncatePath(derefOr(c.CommitMessage, ""), maxMsg),
			derefOr(c.TreeHash, ""),
		}
		data = append(data, row)
	}

	if err := table.Bulk(data); err != nil {
		return err
	}
	return table.Render()
}

// writeTableFooter prints the closing summary stats.
func writeTableFooter(info schema.RepoInfo, cfg *contract.Config, duration time.Duration, writer io.Writer) error {
	if _, err := fmt.Fprintf(writer, "Showing %d recent commit(s)\n", len(info.Commits)); err != nil {
		return err
	}
	_, err := fmt.Fprintf(writer, "Inspection completed in %v. Snapshot backend: %s\n", duration, cfg.SnapshotBackend)
	return err
}

// stateLabel picks the colored or plain working-tree label per config.
func stateLabel(dirty *bool, cfg *contract.Config) string {
	if cfg.UseColors {
		return contract.GetColorStateLabel(dirty)
	}
	return contract.GetPlainStateLabel(dirty)
}

// statusDirty extracts the dirty flag from an optional status.
func statusDirty(st *schema.Status) *bool {
	if st == nil {
		return nil
	}
	return st.GitDirty
}

package outwriter

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"time"

	"github.com/huangsam/repoprobe/internal/contract"
	"github.com/huangsam/repoprobe/schema"

	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/tw"
)

// snapshotRow is the JSON projection of a stored snapshot. The persisted
// payload is surfaced verbatim so consumers get the full inspection shape.
type snapshotRow struct {
	Dir        string          `json:"dir"`
	IsGit      bool            `json:"is_git"`
	Branch     *string         `json:"branch"`
	GitDirty   *bool           `json:"git_dirty"`
	RecordedAt time.Time       `json:"recorded_at"`
	Info       json.RawMessage `json:"info"`
}

// PrintSnapshots outputs stored snapshot rows, dispatching based on the output format configured.
func PrintSnapshots(records []schema.SnapshotRecord, cfg *contract.Config) error {
	switch cfg.Output {
	case schema.JSONOut:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			rows := make([]snapshotRow, 0, len(records))
			for _, r := range records {
				rows = append(rows, snapshotRow{
					Dir:        r.Dir,
					IsGit:      r.IsGit,
					Branch:     r.Branch,
					GitDirty:   r.GitDirty,
					RecordedAt: r.RecordedAt,
					Info:       json.RawMessage(r.Payload),
				})
			}
			return writeJSON(w, rows)
		}, "Wrote JSON")
	case schema.CSVOut:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			csvWriter := csv.NewWriter(w)
			defer csvWriter.Flush()
			if err := csvWriter.Write([]string{"dir", "is_git", "branch", "state", "recorded_at"}); err != nil {
				return err
			}
			for _, r := range records {
				rec := []string{
					r.Dir,
					strconv.FormatBool(r.IsGit),
					derefOr(r.Branch, ""),
					contract.GetPlainStateLabel(r.GitDirty),
					r.RecordedAt.UTC().Format(time.RFC3339),
				}
				if err := csvWriter.Write(rec); err != nil {
					return err
				}
			}
			return nil
		}, "Wrote CSV")
	default:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeSnapshotTable(records, cfg, w)
		}, "Wrote table")
	}
}

// writeSnapshotTable renders stored snapshots as a table.
func writeSnapshotTable(records []schema.SnapshotRecord, cfg *contract.Config, writer io.Writer) error {
	if len(records) == 0 {
		_, err := fmt.Fprintln(writer, "No snapshots stored")
		return err
	}

	table := tablewriter.NewWriter(writer)
	table.Header([]string{"Dir", "Git", "Branch", "State", "Recorded"})
	table.Configure(func(tcfg *tablewriter.Config) {
		tcfg.Row.Alignment.Global = tw.AlignLeft
	})

	maxDir := getMaxTableMessageWidth(cfg)
	var data [][]string
	for _, r := range records {
		row := []string{
			contract.TruncatePath(r.Dir, maxDir),
			strconv.FormatBool(r.IsGit),
			derefOr(r.Branch, ""),
			stateLabel(r.GitDirty, cfg),
			r.RecordedAt.UTC().Format(time.RFC3339),
		}
		data = append(data, row)
	}

	if err := table.Bulk(data); err != nil {
		return err
	}
	if err := table.Render(); err != nil {
		return err
	}
	_, err := fmt.Fprintf(writer, "Showing %d snapshot(s)\n", len(records))
	return err
}

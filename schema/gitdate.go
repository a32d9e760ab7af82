package schema

import (
	"encoding/json"
	"fmt"
	"time"
)

// GitDateFormat is the wire format for commit dates, matching the textual
// form produced by git's %ci placeholder with a timezone abbreviation.
const GitDateFormat = "2006-01-02 15:04:05 MST"

// gitDateOffsetFormat covers git's numeric-offset spelling of the same
// timestamp (e.g. "2014-08-29 16:09:40 -0600").
const gitDateOffsetFormat = "2006-01-02 15:04:05 -0700"

// gitDateNull is the literal text an absent date encodes as.
const gitDateNull = "null"

// GitDate is a commit timestamp that serializes as GitDateFormat text.
// The zero value means "absent" and encodes as the literal string "null".
// Decoded values are normalized to UTC.
type GitDate struct {
	time.Time
}

// NewGitDate wraps a time.Time into a GitDate, normalized to UTC.
func NewGitDate(t time.Time) GitDate {
	return GitDate{t.UTC()}
}

// String formats the date per GitDateFormat, or "null" when absent.
func (d GitDate) String() string {
	if d.IsZero() {
		return gitDateNull
	}
	return d.UTC().Format(GitDateFormat)
}

// MarshalJSON encodes the date as a GitDateFormat string, or as the literal
// string "null" when the date is absent.
func (d GitDate) MarshalJSON() ([]byte, error) {
	return json.Marshal(d.String())
}

// UnmarshalJSON decodes a GitDateFormat or numeric-offset timestamp string
// into a UTC date. JSON null and the literal string "null" decode to the
// absent value. Any other unparseable text is an error; the commit pipeline
// treats that as a per-line parse failure.
func (d *GitDate) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		*d = GitDate{}
		return nil
	}

	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	if s == "" || s == gitDateNull {
		*d = GitDate{}
		return nil
	}

	// git emits numeric offsets by default; abbreviations come from
	// consumers that re-serialize through this codec.
	if t, err := time.Parse(gitDateOffsetFormat, s); err == nil {
		*d = GitDate{t.UTC()}
		return nil
	}
	t, err := time.Parse(GitDateFormat, s)
	if err != nil {
		return fmt.Errorf("invalid commit date %q: %w", s, err)
	}
	*d = GitDate{t.UTC()}
	return nil
}

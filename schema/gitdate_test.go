package schema

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestGitDateRoundTrip verifies encode-then-decode yields the original
// timestamp to one-second precision.
func TestGitDateRoundTrip(t *testing.T) {
	orig := NewGitDate(time.Date(2022, 3, 14, 9, 26, 53, 123456789, time.UTC))

	data, err := json.Marshal(orig)
	require.NoError(t, err)

	var decoded GitDate
	require.NoError(t, json.Unmarshal(data, &decoded))

	assert.Equal(t, orig.Truncate(time.Second), decoded.Time)
}

// TestGitDateMarshalAbsent verifies the zero value encodes as the literal
// string "null".
func TestGitDateMarshalAbsent(t *testing.T) {
	data, err := json.Marshal(GitDate{})
	require.NoError(t, err)
	assert.Equal(t, `"null"`, string(data))
}

// TestGitDateUnmarshal exercises the accepted and rejected wire forms.
func TestGitDateUnmarshal(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    time.Time
		wantErr bool
	}{
		{
			name:  "numeric offset from git %ci",
			input: `"2014-08-29 16:09:40 -0600"`,
			want:  time.Date(2014, 8, 29, 22, 9, 40, 0, time.UTC),
		},
		{
			name:  "timezone abbreviation",
			input: `"2014-08-29 16:09:40 UTC"`,
			want:  time.Date(2014, 8, 29, 16, 9, 40, 0, time.UTC),
		},
		{
			name:  "literal null string",
			input: `"null"`,
		},
		{
			name:  "json null",
			input: `null`,
		},
		{
			name:  "empty string",
			input: `""`,
		},
		{
			name:    "truncated timestamp",
			input:   `"2014-08-29"`,
			wantErr: true,
		},
		{
			name:    "not a string",
			input:   `42`,
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var d GitDate
			err := json.Unmarshal([]byte(tt.input), &d)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			if tt.want.IsZero() {
				assert.True(t, d.IsZero())
			} else {
				assert.Equal(t, tt.want, d.Time)
			}
		})
	}
}

// TestGitDateString verifies the textual form used by table output.
func TestGitDateString(t *testing.T) {
	assert.Equal(t, "null", GitDate{}.String())

	d := NewGitDate(time.Date(2021, 6, 1, 12, 0, 0, 0, time.UTC))
	assert.Equal(t, "2021-06-01 12:00:00 UTC", d.String())
}

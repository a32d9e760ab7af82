// Package outwriter has output and writer logic.
package outwriter

import (
	"os"
	"time"

	"github.com/huangsam/repoprobe/internal/contract"
	"github.com/huangsam/repoprobe/schema"
	"golang.org/x/term"
)

// OutWriter provides a unified interface for all output operations.
// It encapsulates the various output formats and provides a clean API for the core logic.
type OutWriter struct{}

// NewOutWriter creates a new instance of the output writer.
func NewOutWriter() *OutWriter {
	return &OutWriter{}
}

// WriteRepoInfo prints an inspection snapshot using the configured output format.
func (ow *OutWriter) WriteRepoInfo(info schema.RepoInfo, cfg *contract.Config, duration time.Duration) error {
	return PrintRepoInfo(info, cfg, duration)
}

// WriteSnapshots prints stored snapshot rows using the configured output format.
func (ow *OutWriter) WriteSnapshots(records []schema.SnapshotRecord, cfg *contract.Config) error {
	return PrintSnapshots(records, cfg)
}

// getMaxTableMessageWidth calculates the maximum width for commit messages in
// table output based on terminal width and the fixed columns.
func getMaxTableMessageWidth(cfg *contract.Config) int {
	var termWidth int

	// Check for absolute width override from flag/env
	if cfg.Width > 0 {
		termWidth = cfg.Width
	}

	if termWidth == 0 { // Not set by override
		detectedWidth, _, err := term.GetSize(int(os.Stdout.Fd()))
		if err != nil || detectedWidth <= 0 {
			// Fallback to conservative default for narrow terminals and CI
			termWidth = 80
		} else {
			termWidth = detectedWidth
		}
	}

	// Reserve space for Seq + Date + Author + Tree with borders/padding
	baseWidth := 55

	available := termWidth - baseWidth
	if available < 15 {
		// Minimum reasonable message width
		return 15
	}
	if available > 70 {
		// Maximum message width to prevent unwieldy rows
		return 70
	}
	return available
}

package contract

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/fatih/color"
)

// Working-tree state label constants.
const (
	DirtyValue   = "Dirty"   // Uncommitted changes present
	CleanValue   = "Clean"   // Working tree matches HEAD
	UnknownValue = "Unknown" // State could not be determined
)

// Color variables for console output.
var (
	DirtyColor   = color.New(color.FgRed, color.Bold) // dirtyColor flags repos needing attention.
	CleanColor   = color.New(color.FgGreen)           // cleanColor represents the happy path.
	UnknownColor = color.New(color.FgYellow)          // unknownColor represents degraded inspection.
)

// GetPlainStateLabel returns a plain text label for a working-tree state.
// A nil dirty flag means the status probe failed or never ran.
// This is the core logic used for CSV, JSON, and table printing.
func GetPlainStateLabel(dirty *bool) string {
	switch {
	case dirty == nil:
		return UnknownValue
	case *dirty:
		return DirtyValue
	default:
		return CleanValue
	}
}

// GetColorStateLabel returns a colored text label for console output (table).
// It uses GetPlainStateLabel to determine the string, and then applies the
// appropriate color.
func GetColorStateLabel(dirty *bool) string {
	text := GetPlainStateLabel(dirty)

	switch text {
	case DirtyValue:
		return DirtyColor.Sprint(text)
	case CleanValue:
		return CleanColor.Sprint(text)
	default: // "Unknown"
		return UnknownColor.Sprint(text)
	}
}

// SelectOutputFile returns the appropriate file handle for output, based on
// the provided file path. An empty path means stdout.
func SelectOutputFile(filePath string) (*os.File, error) {
	if filePath == "" {
		return os.Stdout, nil
	}
	return os.Create(filePath)
}

// LogFatal logs an error and exits the program.
func LogFatal(msg string, err error) {
	_, _ = fmt.Fprintf(os.Stderr, "Fatal %s: %v\n", msg, err)
	os.Exit(1)
}

// LogWarn logs a warning message to stderr.
func LogWarn(msg string, err error) {
	_, _ = fmt.Fprintf(os.Stderr, "Warn %s: %v\n", msg, err)
}

// GetSnapshotDBFilePath returns the path to the SQLite DB file for snapshot storage.
func GetSnapshotDBFilePath() string {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return ".repoprobe_snapshots.db"
	}
	return filepath.Join(homeDir, ".repoprobe_snapshots.db")
}

// TruncatePath truncates a file path to a maximum width with ellipsis prefix.
// Requires maxWidth > 3 to ensure there's space for both the "..." prefix and
// at least one character of content.
func TruncatePath(path string, maxWidth int) string {
	runes := []rune(path)
	if len(runes) > maxWidth && maxWidth > 3 {
		return "..." + string(runes[len(runes)-maxWidth+3:])
	}
	return path
}

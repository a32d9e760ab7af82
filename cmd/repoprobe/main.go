// main is the entry point for the repoprobe CLI.
package main

import (
	"github.com/huangsam/repoprobe/cmd"
	"github.com/huangsam/repoprobe/internal/contract"
	"github.com/huangsam/repoprobe/internal/iocache"
)

func main() {
	// Wire the global snapshot manager into the command layer before any
	// command runs, and make sure open stores are flushed on exit.
	cmd.SetSnapshotManager(iocache.Manager)

	err := cmd.Execute()

	// Close stores before any exit path. LogFatal calls os.Exit, which would
	// skip a deferred close.
	iocache.CloseSnapshots()

	if err != nil {
		contract.LogFatal("Command failed", err)
	}
}

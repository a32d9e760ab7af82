package core

import "github.com/huangsam/repoprobe/internal/contract"

// Inspector aggregates the inspection pipelines over a single GitClient.
// Its methods are independent and commute: each takes a snapshot, runs its
// own git calls, and returns a new snapshot with only its own fields set.
type Inspector struct {
	git contract.GitClient
}

// NewInspector creates an Inspector backed by the given client.
func NewInspector(git contract.GitClient) *Inspector {
	return &Inspector{git: git}
}

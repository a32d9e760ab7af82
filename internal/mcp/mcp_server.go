// Package mcp provides the Model Context Protocol (MCP) server implementation.
package mcp

import (
	"context"

	"github.com/huangsam/repoprobe/internal/contract"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

// NewMCPServer initializes and configures the repoprobe MCP server without starting it.
// This is exposed for unit testing.
func NewMCPServer(baseCfg *contract.Config, mgr contract.SnapshotManager) *server.MCPServer {
	s := server.NewMCPServer(
		"Repoprobe Inspection Server",
		"1.0.0",
		server.WithLogging(),
	)

	h := &toolHandler{
		baseCfg: baseCfg,
		mgr:     mgr,
	}

	// --- 1. Tool: get_repo_status ---
	s.AddTool(mcp.NewTool("get_repo_status",
		mcp.WithDescription("Check whether a working copy is modified or dirty."),
		mcp.WithString("repo_path", mcp.Description("Path to the working copy (defaults to the configured path if not specified).")),
	), h.handleGetRepoStatus)

	// --- 2. Tool: get_repo_commits ---
	s.AddTool(mcp.NewTool("get_repo_commits",
		mcp.WithDescription("Fetch the resolved remote branch and up to five recent commits of a working copy."),
		mcp.WithString("repo_path", mcp.Description("Path to the working copy.")),
	), h.handleGetRepoCommits)

	// --- 3. Tool: inspect_repo ---
	s.AddTool(mcp.NewTool("inspect_repo",
		mcp.WithDescription("Run the full inspection: repository probe, working-tree status, and recent commits."),
		mcp.WithString("repo_path", mcp.Description("Path to the working copy.")),
		mcp.WithBoolean("save", mcp.Description("Persist the inspection result to the snapshot store.")),
	), h.handleInspectRepo)

	// --- 4. Tool: get_repo_snapshots ---
	s.AddTool(mcp.NewTool("get_repo_snapshots",
		mcp.WithDescription("List the stored inspection snapshots, most recent first."),
	), h.handleGetRepoSnapshots)

	return s
}

// StartMCPServer starts the repoprobe MCP server.
func StartMCPServer(_ context.Context, baseCfg *contract.Config, mgr contract.SnapshotManager) error {
	s := NewMCPServer(baseCfg, mgr)
	return server.ServeStdio(s)
}

package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/huangsam/repoprobe/core"
	"github.com/huangsam/repoprobe/internal/contract"
	"github.com/mark3labs/mcp-go/mcp"
)

// toolHandler holds common dependencies for MCP tool handlers.
type toolHandler struct {
	baseCfg *contract.Config
	mgr     contract.SnapshotManager
}

// repoPathFrom resolves the target path, falling back to the base config.
func (h *toolHandler) repoPathFrom(request mcp.CallToolRequest) string {
	if p := request.GetString("repo_path", ""); p != "" {
		return p
	}
	return h.baseCfg.RepoPath
}

func (h *toolHandler) handleGetRepoStatus(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	info := core.GetStatusResult(ctx, h.repoPathFrom(request))

	jsonData, _ := json.MarshalIndent(info, "", "  ")
	return mcp.NewToolResultText(string(jsonData)), nil
}

func (h *toolHandler) handleGetRepoCommits(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	info := core.GetCommitsResult(ctx, h.repoPathFrom(request))

	jsonData, _ := json.MarshalIndent(info, "", "  ")
	return mcp.NewToolResultText(string(jsonData)), nil
}

func (h *toolHandler) handleInspectRepo(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	info := core.GetInspectResult(ctx, h.repoPathFrom(request))

	if request.GetBool("save", false) {
		store := h.mgr.GetSnapshotStore()
		if store == nil {
			return mcp.NewToolResultError("snapshot store is not initialized"), nil
		}
		if err := store.Save(info, time.Now()); err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("saving snapshot failed: %v", err)), nil
		}
	}

	jsonData, _ := json.MarshalIndent(info, "", "  ")
	return mcp.NewToolResultText(string(jsonData)), nil
}

func (h *toolHandler) handleGetRepoSnapshots(_ context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	store := h.mgr.GetSnapshotStore()
	if store == nil {
		return mcp.NewToolResultError("snapshot store is not initialized"), nil
	}

	records, err := store.List()
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("listing snapshots failed: %v", err)), nil
	}

	jsonData, _ := json.MarshalIndent(records, "", "  ")
	return mcp.NewToolResultText(string(jsonData)), nil
}

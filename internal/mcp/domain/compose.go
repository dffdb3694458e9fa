package domain

import (
	"context"
	"fmt"

	"github.com/louisbranch/postforge/internal/compose"
	"github.com/louisbranch/postforge/internal/draft"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// ComposePostInput represents the MCP tool input for composing a draft.
type ComposePostInput struct {
	DraftID string `json:"draft_id,omitempty" jsonschema:"draft identifier (defaults to the active draft)"`
}

// ComposePostResult represents the MCP tool output for composing a draft.
type ComposePostResult struct {
	DraftID        string   `json:"draft_id" jsonschema:"draft that was composed"`
	Text           string   `json:"text" jsonschema:"final post text"`
	CharacterCount int      `json:"character_count" jsonschema:"character count of the final text"`
	Skipped        []string `json:"skipped_components,omitempty" jsonschema:"component kinds skipped because their parameters failed validation"`
}

// ComposePostTool defines the MCP tool schema for composing a draft.
func ComposePostTool() *mcp.Tool {
	return &mcp.Tool{
		Name:        "compose_post",
		Description: "Renders a draft's components into final post text; fails when the text runs over the 3000-character limit",
	}
}

// ComposePostHandler executes a compose request.
func ComposePostHandler(drafts *draft.Service) mcp.ToolHandlerFor[ComposePostInput, ComposePostResult] {
	return func(ctx context.Context, _ *mcp.CallToolRequest, input ComposePostInput) (*mcp.CallToolResult, ComposePostResult, error) {
		d, res, err := drafts.ComposeDraft(ctx, input.DraftID)
		if err != nil {
			return nil, ComposePostResult{}, fmt.Errorf("compose post: %w", err)
		}
		out := ComposePostResult{
			DraftID:        d.ID,
			Text:           res.Text,
			CharacterCount: len([]rune(res.Text)),
		}
		for _, kind := range res.Skipped {
			out.Skipped = append(out.Skipped, string(kind))
		}
		return nil, out, nil
	}
}

// PreviewPostInput represents the MCP tool input for previewing a draft.
type PreviewPostInput struct {
	DraftID string `json:"draft_id,omitempty" jsonschema:"draft identifier (defaults to the active draft)"`
	Chars   int    `json:"chars,omitempty" jsonschema:"fold position in characters (defaults to 210)"`
}

// PreviewPostResult represents the MCP tool output for previewing a draft.
type PreviewPostResult struct {
	DraftID string `json:"draft_id" jsonschema:"draft that was previewed"`
	Preview string `json:"preview" jsonschema:"text visible above the fold, with a truncation marker when cut"`
}

// PreviewPostTool defines the MCP tool schema for previewing a draft.
func PreviewPostTool() *mcp.Tool {
	return &mcp.Tool{
		Name:        "preview_post",
		Description: "Shows what the feed displays before the see-more fold",
	}
}

// PreviewPostHandler executes a preview request.
func PreviewPostHandler(drafts *draft.Service) mcp.ToolHandlerFor[PreviewPostInput, PreviewPostResult] {
	return func(ctx context.Context, _ *mcp.CallToolRequest, input PreviewPostInput) (*mcp.CallToolResult, PreviewPostResult, error) {
		d, err := drafts.GetDraft(ctx, input.DraftID)
		if err != nil {
			return nil, PreviewPostResult{}, fmt.Errorf("preview post: %w", err)
		}
		preview, err := drafts.PreviewDraft(ctx, d.ID, input.Chars)
		if err != nil {
			return nil, PreviewPostResult{}, fmt.Errorf("preview post: %w", err)
		}
		return nil, PreviewPostResult{DraftID: d.ID, Preview: preview}, nil
	}
}

// OptimizePostInput represents the MCP tool input for optimizing a draft.
type OptimizePostInput struct {
	DraftID string `json:"draft_id,omitempty" jsonschema:"draft identifier (defaults to the active draft)"`
}

// OptimizePostResult represents the MCP tool output for optimizing a draft.
type OptimizePostResult struct {
	DraftID    string `json:"draft_id" jsonschema:"draft that was optimized"`
	Changed    bool   `json:"changed" jsonschema:"whether the component order changed"`
	Components int    `json:"components" jsonschema:"component count after optimizing"`
}

// OptimizePostTool defines the MCP tool schema for optimizing a draft.
func OptimizePostTool() *mcp.Tool {
	return &mcp.Tool{
		Name:        "optimize_post",
		Description: "Reorders components into the hook, body, call-to-action, hashtags engagement order",
	}
}

// OptimizePostHandler executes an optimize request.
func OptimizePostHandler(drafts *draft.Service) mcp.ToolHandlerFor[OptimizePostInput, OptimizePostResult] {
	return func(ctx context.Context, _ *mcp.CallToolRequest, input OptimizePostInput) (*mcp.CallToolResult, OptimizePostResult, error) {
		d, changed, err := drafts.OptimizeDraft(ctx, input.DraftID)
		if err != nil {
			return nil, OptimizePostResult{}, fmt.Errorf("optimize post: %w", err)
		}
		return nil, OptimizePostResult{DraftID: d.ID, Changed: changed, Components: len(d.Components)}, nil
	}
}

// ExportPostInput represents the MCP tool input for exporting a draft.
type ExportPostInput struct {
	DraftID string `json:"draft_id,omitempty" jsonschema:"draft identifier (defaults to the active draft)"`
}

// ExportPostTool defines the MCP tool schema for exporting a draft.
func ExportPostTool() *mcp.Tool {
	return &mcp.Tool{
		Name:        "export_post",
		Description: "Exports a draft's components, rendered text, and fold preview as one document",
	}
}

// ExportPostHandler executes an export request.
func ExportPostHandler(drafts *draft.Service) mcp.ToolHandlerFor[ExportPostInput, compose.Export] {
	return func(ctx context.Context, _ *mcp.CallToolRequest, input ExportPostInput) (*mcp.CallToolResult, compose.Export, error) {
		export, err := drafts.ExportDraft(ctx, input.DraftID)
		if err != nil {
			return nil, compose.Export{}, fmt.Errorf("export post: %w", err)
		}
		return nil, export, nil
	}
}

package domain

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/louisbranch/postforge/internal/draft"
	"github.com/louisbranch/postforge/internal/draft/storage"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// DraftSummary represents a draft record in MCP tool output.
type DraftSummary struct {
	ID           string            `json:"id" jsonschema:"draft identifier"`
	Name         string            `json:"name" jsonschema:"draft name"`
	PostType     string            `json:"post_type" jsonschema:"post type (text, poll, document)"`
	Theme        string            `json:"theme,omitempty" jsonschema:"theme key, if one is set"`
	Components   int               `json:"components" jsonschema:"number of components"`
	Selections   map[string]string `json:"selections,omitempty" jsonschema:"variant axis selections"`
	PreviewToken string            `json:"preview_token" jsonschema:"token for the shareable preview URL"`
	CreatedAt    string            `json:"created_at" jsonschema:"RFC3339 timestamp"`
	UpdatedAt    string            `json:"updated_at" jsonschema:"RFC3339 timestamp"`
}

func draftSummary(d storage.Draft) DraftSummary {
	return DraftSummary{
		ID:           d.ID,
		Name:         d.Name,
		PostType:     d.PostType,
		Theme:        d.Theme,
		Components:   len(d.Components),
		Selections:   d.Selections,
		PreviewToken: d.PreviewToken,
		CreatedAt:    formatTimestamp(d.CreatedAt),
		UpdatedAt:    formatTimestamp(d.UpdatedAt),
	}
}

// formatTimestamp returns an RFC3339 timestamp or empty string.
func formatTimestamp(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format(time.RFC3339)
}

// CreateDraftInput represents the MCP tool input for draft creation.
type CreateDraftInput struct {
	Name       string            `json:"name" jsonschema:"draft name"`
	PostType   string            `json:"post_type,omitempty" jsonschema:"post type (text, poll, document; defaults to text)"`
	Theme      string            `json:"theme,omitempty" jsonschema:"theme key to apply"`
	Selections map[string]string `json:"selections,omitempty" jsonschema:"variant axis selections (axis name to option)"`
}

// CreateDraftTool defines the MCP tool schema for draft creation.
func CreateDraftTool() *mcp.Tool {
	return &mcp.Tool{
		Name:        "create_draft",
		Description: "Creates a new post draft and makes it the active draft",
	}
}

// CreateDraftHandler executes a draft creation request.
func CreateDraftHandler(drafts *draft.Service) mcp.ToolHandlerFor[CreateDraftInput, DraftSummary] {
	return func(ctx context.Context, _ *mcp.CallToolRequest, input CreateDraftInput) (*mcp.CallToolResult, DraftSummary, error) {
		d, err := drafts.CreateDraft(ctx, draft.CreateInput{
			Name:       input.Name,
			PostType:   input.PostType,
			Theme:      input.Theme,
			Selections: input.Selections,
		})
		if err != nil {
			return nil, DraftSummary{}, fmt.Errorf("create draft: %w", err)
		}
		return nil, draftSummary(d), nil
	}
}

// ComponentEntry represents one stored component in MCP tool output.
type ComponentEntry struct {
	Kind   string `json:"kind" jsonschema:"component kind"`
	Params string `json:"params,omitempty" jsonschema:"stored parameters as JSON"`
}

// GetDraftInput represents the MCP tool input for reading a draft.
type GetDraftInput struct {
	DraftID string `json:"draft_id,omitempty" jsonschema:"draft identifier (defaults to the active draft)"`
}

// GetDraftResult represents the MCP tool output for reading a draft.
type GetDraftResult struct {
	Draft        DraftSummary     `json:"draft" jsonschema:"draft record"`
	Components   []ComponentEntry `json:"components,omitempty" jsonschema:"stored components in insertion order"`
	ComposedText string           `json:"composed_text,omitempty" jsonschema:"cached composed text, if any"`
}

// GetDraftTool defines the MCP tool schema for reading a draft.
func GetDraftTool() *mcp.Tool {
	return &mcp.Tool{
		Name:        "get_draft",
		Description: "Returns a draft with its stored components",
	}
}

// GetDraftHandler executes a draft read request.
func GetDraftHandler(drafts *draft.Service) mcp.ToolHandlerFor[GetDraftInput, GetDraftResult] {
	return func(ctx context.Context, _ *mcp.CallToolRequest, input GetDraftInput) (*mcp.CallToolResult, GetDraftResult, error) {
		d, err := drafts.GetDraft(ctx, input.DraftID)
		if err != nil {
			return nil, GetDraftResult{}, fmt.Errorf("get draft: %w", err)
		}

		components := make([]ComponentEntry, 0, len(d.Components))
		for _, c := range d.Components {
			components = append(components, ComponentEntry{Kind: string(c.Kind), Params: string(c.Params)})
		}
		return nil, GetDraftResult{
			Draft:        draftSummary(d),
			Components:   components,
			ComposedText: d.ComposedText,
		}, nil
	}
}

// ListDraftsInput represents the MCP tool input for listing drafts.
type ListDraftsInput struct {
	Filter string `json:"filter,omitempty" jsonschema:"AIP-160 filter over name, post_type, theme, created_at, updated_at"`
	Limit  int    `json:"limit,omitempty" jsonschema:"maximum number of drafts to return"`
}

// ListDraftsResult represents the MCP tool output for listing drafts.
type ListDraftsResult struct {
	Drafts        []DraftSummary `json:"drafts" jsonschema:"matching drafts, newest first"`
	ActiveDraftID string         `json:"active_draft_id,omitempty" jsonschema:"identifier of the active draft"`
}

// ListDraftsTool defines the MCP tool schema for listing drafts.
func ListDraftsTool() *mcp.Tool {
	return &mcp.Tool{
		Name:        "list_drafts",
		Description: "Lists stored drafts, optionally narrowed by an AIP-160 filter such as post_type = \"text\"",
	}
}

// ListDraftsHandler executes a draft listing request.
func ListDraftsHandler(drafts *draft.Service) mcp.ToolHandlerFor[ListDraftsInput, ListDraftsResult] {
	return func(ctx context.Context, _ *mcp.CallToolRequest, input ListDraftsInput) (*mcp.CallToolResult, ListDraftsResult, error) {
		records, err := drafts.ListDrafts(ctx, input.Filter, input.Limit)
		if err != nil {
			return nil, ListDraftsResult{}, fmt.Errorf("list drafts: %w", err)
		}

		result := ListDraftsResult{
			Drafts:        make([]DraftSummary, 0, len(records)),
			ActiveDraftID: drafts.ActiveID(),
		}
		for _, d := range records {
			result.Drafts = append(result.Drafts, draftSummary(d))
		}
		return nil, result, nil
	}
}

// DeleteDraftInput represents the MCP tool input for deleting a draft.
type DeleteDraftInput struct {
	DraftID string `json:"draft_id" jsonschema:"draft identifier"`
}

// DeleteDraftResult represents the MCP tool output for deleting a draft.
type DeleteDraftResult struct {
	DraftID string `json:"draft_id" jsonschema:"deleted draft identifier"`
	Deleted bool   `json:"deleted" jsonschema:"whether the draft was removed"`
}

// DeleteDraftTool defines the MCP tool schema for deleting a draft.
func DeleteDraftTool() *mcp.Tool {
	return &mcp.Tool{
		Name:        "delete_draft",
		Description: "Deletes a draft; clears the active selection when it was active",
	}
}

// DeleteDraftHandler executes a draft deletion request.
func DeleteDraftHandler(drafts *draft.Service) mcp.ToolHandlerFor[DeleteDraftInput, DeleteDraftResult] {
	return func(ctx context.Context, _ *mcp.CallToolRequest, input DeleteDraftInput) (*mcp.CallToolResult, DeleteDraftResult, error) {
		if err := drafts.DeleteDraft(ctx, input.DraftID); err != nil {
			return nil, DeleteDraftResult{}, fmt.Errorf("delete draft: %w", err)
		}
		return nil, DeleteDraftResult{DraftID: input.DraftID, Deleted: true}, nil
	}
}

// SetActiveDraftInput represents the MCP tool input for selecting the active draft.
type SetActiveDraftInput struct {
	DraftID string `json:"draft_id" jsonschema:"draft identifier"`
}

// SetActiveDraftTool defines the MCP tool schema for selecting the active draft.
func SetActiveDraftTool() *mcp.Tool {
	return &mcp.Tool{
		Name:        "set_active_draft",
		Description: "Makes a draft the target of draft-less tool calls",
	}
}

// SetActiveDraftHandler executes an active draft selection request.
func SetActiveDraftHandler(drafts *draft.Service) mcp.ToolHandlerFor[SetActiveDraftInput, DraftSummary] {
	return func(ctx context.Context, _ *mcp.CallToolRequest, input SetActiveDraftInput) (*mcp.CallToolResult, DraftSummary, error) {
		d, err := drafts.SetActive(ctx, input.DraftID)
		if err != nil {
			return nil, DraftSummary{}, fmt.Errorf("set active draft: %w", err)
		}
		return nil, draftSummary(d), nil
	}
}

// DraftStatsInput represents the MCP tool input for draft statistics.
type DraftStatsInput struct {
	DraftID string `json:"draft_id,omitempty" jsonschema:"draft identifier (defaults to the active draft)"`
}

// DraftStatsTool defines the MCP tool schema for draft statistics.
func DraftStatsTool() *mcp.Tool {
	return &mcp.Tool{
		Name:        "draft_stats",
		Description: "Reports character, word, and engagement statistics for a draft, even when it runs over the length limit",
	}
}

// DraftStatsHandler executes a draft statistics request.
func DraftStatsHandler(drafts *draft.Service) mcp.ToolHandlerFor[DraftStatsInput, draft.Stats] {
	return func(ctx context.Context, _ *mcp.CallToolRequest, input DraftStatsInput) (*mcp.CallToolResult, draft.Stats, error) {
		stats, err := drafts.DraftStats(ctx, input.DraftID)
		if err != nil {
			return nil, draft.Stats{}, fmt.Errorf("draft stats: %w", err)
		}
		return nil, stats, nil
	}
}

// DraftsPayload represents the MCP resource payload for draft listings.
type DraftsPayload struct {
	Drafts []DraftSummary `json:"drafts"`
}

// DraftListResource defines the MCP resource for draft listings.
func DraftListResource() *mcp.Resource {
	return &mcp.Resource{
		Name:        "draft_list",
		Title:       "Drafts",
		Description: "Readable listing of stored post drafts, newest first",
		MIMEType:    "application/json",
		URI:         "drafts://list",
	}
}

// DraftListResourceHandler returns a readable draft listing resource.
func DraftListResourceHandler(drafts *draft.Service) mcp.ResourceHandler {
	return func(ctx context.Context, req *mcp.ReadResourceRequest) (*mcp.ReadResourceResult, error) {
		if drafts == nil {
			return nil, fmt.Errorf("draft service is not configured")
		}

		uri := DraftListResource().URI
		if req != nil && req.Params != nil && req.Params.URI != "" {
			uri = req.Params.URI
		}

		records, err := drafts.ListDrafts(ctx, "", 50)
		if err != nil {
			return nil, fmt.Errorf("list drafts: %w", err)
		}

		payload := DraftsPayload{Drafts: make([]DraftSummary, 0, len(records))}
		for _, d := range records {
			payload.Drafts = append(payload.Drafts, draftSummary(d))
		}

		data, err := json.MarshalIndent(payload, "", "  ")
		if err != nil {
			return nil, fmt.Errorf("marshal draft list: %w", err)
		}

		return &mcp.ReadResourceResult{
			Contents: []*mcp.ResourceContents{
				{
					URI:      uri,
					MIMEType: "application/json",
					Text:     string(data),
				},
			},
		}, nil
	}
}

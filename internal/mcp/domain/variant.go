package domain

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"
	"strings"

	"github.com/louisbranch/postforge/internal/compose/theme"
	"github.com/louisbranch/postforge/internal/compose/variant"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// VariantAxis is one configuration dimension of a post type as reported to
// MCP clients.
type VariantAxis struct {
	Name    string   `json:"name" jsonschema:"axis name, e.g. style or length"`
	Options []string `json:"options" jsonschema:"valid options for the axis"`
	Default string   `json:"default,omitempty" jsonschema:"option used when the axis is not selected"`
}

func variantAxes(t *variant.Table) []VariantAxis {
	axes := make([]VariantAxis, 0, len(t.Axes))
	for _, a := range t.Axes {
		options := make([]string, 0, len(a.Options))
		for name := range a.Options {
			options = append(options, name)
		}
		sort.Strings(options)
		axes = append(axes, VariantAxis{Name: a.Name, Options: options, Default: t.Defaults[a.Name]})
	}
	return axes
}

// ListVariantsInput represents the MCP tool input for listing variant axes.
type ListVariantsInput struct {
	PostType string `json:"post_type,omitempty" jsonschema:"post type (text, poll, document; defaults to text)"`
}

// ListVariantsResult represents the MCP tool output for listing variant axes.
type ListVariantsResult struct {
	PostType string            `json:"post_type" jsonschema:"post type the axes belong to"`
	Axes     []VariantAxis     `json:"axes" jsonschema:"configuration dimensions with their options"`
	Defaults map[string]string `json:"defaults,omitempty" jsonschema:"option applied per axis when none is selected"`
}

// ListVariantsTool defines the MCP tool schema for listing variant axes.
func ListVariantsTool() *mcp.Tool {
	return &mcp.Tool{
		Name:        "list_variants",
		Description: "Lists the variant axes and options available for a post type",
	}
}

// ListVariantsHandler executes a variant listing request.
func ListVariantsHandler() mcp.ToolHandlerFor[ListVariantsInput, ListVariantsResult] {
	return func(ctx context.Context, _ *mcp.CallToolRequest, input ListVariantsInput) (*mcp.CallToolResult, ListVariantsResult, error) {
		postType := input.PostType
		if postType == "" {
			postType = "text"
		}
		t, ok := variant.TableFor(postType)
		if !ok {
			return nil, ListVariantsResult{}, fmt.Errorf("list variants: unknown post type %q", postType)
		}
		return nil, ListVariantsResult{PostType: t.PostType, Axes: variantAxes(t), Defaults: t.Defaults}, nil
	}
}

// ResolveVariantsInput represents the MCP tool input for resolving variants.
type ResolveVariantsInput struct {
	PostType   string            `json:"post_type,omitempty" jsonschema:"post type (text, poll, document; defaults to text)"`
	Selections map[string]string `json:"selections,omitempty" jsonschema:"option per axis; unselected axes fall back to defaults"`
	Theme      string            `json:"theme,omitempty" jsonschema:"theme whose overrides apply last"`
}

// ResolveVariantsResult represents the MCP tool output for resolving variants.
type ResolveVariantsResult struct {
	PostType   string             `json:"post_type" jsonschema:"post type that was resolved"`
	Selections map[string]string  `json:"selections" jsonschema:"selections after defaults were filled in"`
	Properties variant.Properties `json:"properties" jsonschema:"merged rendering properties"`
}

// ResolveVariantsTool defines the MCP tool schema for resolving variants.
func ResolveVariantsTool() *mcp.Tool {
	return &mcp.Tool{
		Name:        "resolve_variants",
		Description: "Merges base, axis, compound, and theme layers into the rendering properties for a selection",
	}
}

// ResolveVariantsHandler executes a variant resolution request.
func ResolveVariantsHandler(themes *theme.Manager) mcp.ToolHandlerFor[ResolveVariantsInput, ResolveVariantsResult] {
	return func(ctx context.Context, _ *mcp.CallToolRequest, input ResolveVariantsInput) (*mcp.CallToolResult, ResolveVariantsResult, error) {
		postType := input.PostType
		if postType == "" {
			postType = "text"
		}
		t, ok := variant.TableFor(postType)
		if !ok {
			return nil, ResolveVariantsResult{}, fmt.Errorf("resolve variants: unknown post type %q", postType)
		}
		var th *theme.Theme
		if input.Theme != "" {
			loaded, err := themes.Get(theme.Key(input.Theme))
			if err != nil {
				return nil, ResolveVariantsResult{}, fmt.Errorf("resolve variants: %w", err)
			}
			th = loaded
		}
		selected := t.Canonical(input.Selections)
		props := variant.Resolve(t, selected, th)
		return nil, ResolveVariantsResult{PostType: t.PostType, Selections: selected.Map(), Properties: props}, nil
	}
}

// SuggestVariantsInput represents the MCP tool input for variant suggestions.
type SuggestVariantsInput struct {
	PostType string `json:"post_type,omitempty" jsonschema:"post type (text, poll, document; defaults to text)"`
	Goal     string `json:"goal" jsonschema:"what the post should achieve, e.g. authority or engagement"`
}

// SuggestVariantsResult represents the MCP tool output for variant suggestions.
type SuggestVariantsResult struct {
	PostType   string            `json:"post_type" jsonschema:"post type the suggestion targets"`
	Goal       string            `json:"goal" jsonschema:"goal the suggestion was matched against"`
	Selections map[string]string `json:"selections" jsonschema:"suggested option per axis"`
}

// SuggestVariantsTool defines the MCP tool schema for variant suggestions.
func SuggestVariantsTool() *mcp.Tool {
	return &mcp.Tool{
		Name:        "suggest_variants",
		Description: "Suggests a variant selection for a post type and goal",
	}
}

// SuggestVariantsHandler executes a variant suggestion request.
func SuggestVariantsHandler() mcp.ToolHandlerFor[SuggestVariantsInput, SuggestVariantsResult] {
	return func(ctx context.Context, _ *mcp.CallToolRequest, input SuggestVariantsInput) (*mcp.CallToolResult, SuggestVariantsResult, error) {
		postType := input.PostType
		if postType == "" {
			postType = "text"
		}
		if _, ok := variant.TableFor(postType); !ok {
			return nil, SuggestVariantsResult{}, fmt.Errorf("suggest variants: unknown post type %q", postType)
		}
		return nil, SuggestVariantsResult{
			PostType:   postType,
			Goal:       input.Goal,
			Selections: variant.Suggest(postType, input.Goal),
		}, nil
	}
}

// VariantTablePayload is the JSON document served by the variant table
// resource template.
type VariantTablePayload struct {
	PostType string             `json:"post_type"`
	Axes     []VariantAxis      `json:"axes"`
	Defaults map[string]string  `json:"defaults,omitempty"`
	Base     variant.Properties `json:"base,omitempty"`
}

// VariantTableResourceTemplate describes the per-post-type variant table
// resource.
func VariantTableResourceTemplate() *mcp.ResourceTemplate {
	return &mcp.ResourceTemplate{
		Name:        "variants",
		Title:       "Variant table",
		Description: "Variant axes, options, and defaults for one post type",
		MIMEType:    "application/json",
		URITemplate: "variants://{post_type}",
	}
}

// parsePostTypeFromResourceURI extracts the post type from a URI of the form
// variants://{post_type}.
func parsePostTypeFromResourceURI(uri string) (string, error) {
	prefix := "variants://"

	if !strings.HasPrefix(uri, prefix) {
		return "", fmt.Errorf("URI must start with %q", prefix)
	}

	postType := strings.TrimPrefix(uri, prefix)
	postType = strings.TrimSpace(postType)

	if postType == "" {
		return "", fmt.Errorf("post type is required in URI")
	}

	if postType == "_" {
		return "", fmt.Errorf("post type placeholder '_' is not a valid post type")
	}

	return postType, nil
}

// VariantTableResourceHandler serves the variant table for the post type
// named by the request URI.
func VariantTableResourceHandler() mcp.ResourceHandler {
	return func(ctx context.Context, req *mcp.ReadResourceRequest) (*mcp.ReadResourceResult, error) {
		if req == nil || req.Params == nil {
			return nil, fmt.Errorf("read request is required")
		}
		postType, err := parsePostTypeFromResourceURI(req.Params.URI)
		if err != nil {
			return nil, err
		}
		t, ok := variant.TableFor(postType)
		if !ok {
			return nil, fmt.Errorf("unknown post type %q", postType)
		}
		payload := VariantTablePayload{
			PostType: t.PostType,
			Axes:     variantAxes(t),
			Defaults: t.Defaults,
			Base:     t.Base,
		}
		data, err := json.MarshalIndent(payload, "", "  ")
		if err != nil {
			return nil, fmt.Errorf("encode variants: %w", err)
		}
		return &mcp.ReadResourceResult{
			Contents: []*mcp.ResourceContents{{
				URI:      req.Params.URI,
				MIMEType: "application/json",
				Text:     string(data),
			}},
		}, nil
	}
}

package domain

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/louisbranch/postforge/internal/compose/theme"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

const themeListURI = "themes://list"

// ListThemesInput represents the MCP tool input for listing themes.
type ListThemesInput struct{}

// ListThemesResult represents the MCP tool output for listing themes.
type ListThemesResult struct {
	Themes []theme.Summary `json:"themes" jsonschema:"registered themes, built-ins first"`
}

// ListThemesTool defines the MCP tool schema for listing themes.
func ListThemesTool() *mcp.Tool {
	return &mcp.Tool{
		Name:        "list_themes",
		Description: "Lists every registered voice theme with its tone and goal",
	}
}

// ListThemesHandler executes a theme list request.
func ListThemesHandler(themes *theme.Manager) mcp.ToolHandlerFor[ListThemesInput, ListThemesResult] {
	return func(ctx context.Context, _ *mcp.CallToolRequest, _ ListThemesInput) (*mcp.CallToolResult, ListThemesResult, error) {
		out := ListThemesResult{}
		for _, key := range themes.List() {
			summary, err := themes.Summary(key)
			if err != nil {
				return nil, ListThemesResult{}, fmt.Errorf("list themes: %w", err)
			}
			out.Themes = append(out.Themes, summary)
		}
		return nil, out, nil
	}
}

// GetThemeInput represents the MCP tool input for fetching a theme.
type GetThemeInput struct {
	Name string `json:"name" jsonschema:"theme name or key"`
}

// GetThemeResult represents the MCP tool output for fetching a theme.
type GetThemeResult struct {
	Key   string      `json:"key" jsonschema:"registry key for the theme"`
	Theme theme.Input `json:"theme" jsonschema:"full theme definition"`
}

// GetThemeTool defines the MCP tool schema for fetching a theme.
func GetThemeTool() *mcp.Tool {
	return &mcp.Tool{
		Name:        "get_theme",
		Description: "Returns the full definition of one theme",
	}
}

// GetThemeHandler executes a theme fetch request.
func GetThemeHandler(themes *theme.Manager) mcp.ToolHandlerFor[GetThemeInput, GetThemeResult] {
	return func(ctx context.Context, _ *mcp.CallToolRequest, input GetThemeInput) (*mcp.CallToolResult, GetThemeResult, error) {
		def, err := themes.Export(theme.Key(input.Name))
		if err != nil {
			return nil, GetThemeResult{}, fmt.Errorf("get theme: %w", err)
		}
		return nil, GetThemeResult{Key: theme.Key(def.Name), Theme: def}, nil
	}
}

// CreateThemeResult represents the MCP tool output for creating a theme.
type CreateThemeResult struct {
	Key   string        `json:"key" jsonschema:"registry key for the new theme"`
	Theme theme.Summary `json:"theme" jsonschema:"summary of the created theme"`
}

// CreateCustomThemeTool defines the MCP tool schema for creating a custom theme.
func CreateCustomThemeTool() *mcp.Tool {
	return &mcp.Tool{
		Name:        "create_custom_theme",
		Description: "Registers a custom theme; content mix weights must sum to 1.0",
	}
}

// CreateCustomThemeHandler executes a custom theme creation request.
func CreateCustomThemeHandler(themes *theme.Manager) mcp.ToolHandlerFor[theme.Input, CreateThemeResult] {
	return func(ctx context.Context, _ *mcp.CallToolRequest, input theme.Input) (*mcp.CallToolResult, CreateThemeResult, error) {
		created, err := themes.CreateCustom(input)
		if err != nil {
			return nil, CreateThemeResult{}, fmt.Errorf("create custom theme: %w", err)
		}
		return nil, CreateThemeResult{Key: theme.Key(created.Name), Theme: created.Summarize()}, nil
	}
}

// RecommendThemesInput represents the MCP tool input for theme recommendations.
type RecommendThemesInput struct {
	Goal string `json:"goal" jsonschema:"what the post should achieve, e.g. authority or engagement"`
}

// RecommendThemesResult represents the MCP tool output for theme recommendations.
type RecommendThemesResult struct {
	Goal   string   `json:"goal" jsonschema:"goal the recommendations were matched against"`
	Themes []string `json:"themes" jsonschema:"theme keys whose primary goal matches"`
}

// RecommendThemesTool defines the MCP tool schema for theme recommendations.
func RecommendThemesTool() *mcp.Tool {
	return &mcp.Tool{
		Name:        "recommend_themes",
		Description: "Recommends themes whose primary goal matches the stated goal",
	}
}

// RecommendThemesHandler executes a theme recommendation request.
func RecommendThemesHandler(themes *theme.Manager) mcp.ToolHandlerFor[RecommendThemesInput, RecommendThemesResult] {
	return func(ctx context.Context, _ *mcp.CallToolRequest, input RecommendThemesInput) (*mcp.CallToolResult, RecommendThemesResult, error) {
		return nil, RecommendThemesResult{Goal: input.Goal, Themes: themes.Recommend(input.Goal)}, nil
	}
}

// ExportThemeInput represents the MCP tool input for exporting a theme.
type ExportThemeInput struct {
	Name string `json:"name" jsonschema:"theme name or key"`
}

// ExportThemeResult represents the MCP tool output for exporting a theme.
type ExportThemeResult struct {
	Key  string `json:"key" jsonschema:"registry key for the theme"`
	YAML string `json:"yaml" jsonschema:"theme definition encoded as YAML"`
}

// ExportThemeTool defines the MCP tool schema for exporting a theme.
func ExportThemeTool() *mcp.Tool {
	return &mcp.Tool{
		Name:        "export_theme",
		Description: "Exports a theme definition as YAML for sharing or backup",
	}
}

// ExportThemeHandler executes a theme export request.
func ExportThemeHandler(themes *theme.Manager) mcp.ToolHandlerFor[ExportThemeInput, ExportThemeResult] {
	return func(ctx context.Context, _ *mcp.CallToolRequest, input ExportThemeInput) (*mcp.CallToolResult, ExportThemeResult, error) {
		t, err := themes.Get(theme.Key(input.Name))
		if err != nil {
			return nil, ExportThemeResult{}, fmt.Errorf("export theme: %w", err)
		}
		data, err := theme.EncodeYAML(t)
		if err != nil {
			return nil, ExportThemeResult{}, fmt.Errorf("export theme: %w", err)
		}
		return nil, ExportThemeResult{Key: theme.Key(t.Name), YAML: string(data)}, nil
	}
}

// ImportThemeInput represents the MCP tool input for importing a theme.
type ImportThemeInput struct {
	YAML string `json:"yaml" jsonschema:"theme definition encoded as YAML"`
}

// ImportThemeTool defines the MCP tool schema for importing a theme.
func ImportThemeTool() *mcp.Tool {
	return &mcp.Tool{
		Name:        "import_theme",
		Description: "Imports a YAML theme definition as a custom theme",
	}
}

// ImportThemeHandler executes a theme import request.
func ImportThemeHandler(themes *theme.Manager) mcp.ToolHandlerFor[ImportThemeInput, CreateThemeResult] {
	return func(ctx context.Context, _ *mcp.CallToolRequest, input ImportThemeInput) (*mcp.CallToolResult, CreateThemeResult, error) {
		def, err := theme.DecodeYAML([]byte(input.YAML))
		if err != nil {
			return nil, CreateThemeResult{}, fmt.Errorf("import theme: %w", err)
		}
		imported, err := themes.Import(def)
		if err != nil {
			return nil, CreateThemeResult{}, fmt.Errorf("import theme: %w", err)
		}
		return nil, CreateThemeResult{Key: theme.Key(imported.Name), Theme: imported.Summarize()}, nil
	}
}

// ThemesPayload is the JSON document served by the theme list resource.
type ThemesPayload struct {
	Themes []theme.Summary `json:"themes"`
}

// ThemeListResource describes the theme catalog resource.
func ThemeListResource() *mcp.Resource {
	return &mcp.Resource{
		Name:        "themes",
		Title:       "Theme catalog",
		Description: "Every registered voice theme with its tone and goal",
		MIMEType:    "application/json",
		URI:         themeListURI,
	}
}

// ThemeListResourceHandler serves the theme catalog resource.
func ThemeListResourceHandler(themes *theme.Manager) mcp.ResourceHandler {
	return func(ctx context.Context, req *mcp.ReadResourceRequest) (*mcp.ReadResourceResult, error) {
		uri := themeListURI
		if req != nil && req.Params != nil && req.Params.URI != "" {
			uri = req.Params.URI
		}
		payload := ThemesPayload{}
		for _, key := range themes.List() {
			summary, err := themes.Summary(key)
			if err != nil {
				return nil, fmt.Errorf("list themes: %w", err)
			}
			payload.Themes = append(payload.Themes, summary)
		}
		data, err := json.MarshalIndent(payload, "", "  ")
		if err != nil {
			return nil, fmt.Errorf("encode themes: %w", err)
		}
		return &mcp.ReadResourceResult{
			Contents: []*mcp.ResourceContents{{
				URI:      uri,
				MIMEType: "application/json",
				Text:     string(data),
			}},
		}, nil
	}
}

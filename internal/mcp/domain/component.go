package domain

import (
	"context"
	"fmt"

	"github.com/louisbranch/postforge/internal/compose"
	"github.com/louisbranch/postforge/internal/draft"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// ComponentAddResult represents the MCP tool output shared by every
// component-adding tool.
type ComponentAddResult struct {
	DraftID    string `json:"draft_id" jsonschema:"draft the component was added to"`
	Kind       string `json:"kind" jsonschema:"component kind that was stored"`
	Components int    `json:"components" jsonschema:"component count after the append"`
}

// appendComponent validates and stores one component, then reports the
// draft's new component count.
func appendComponent(ctx context.Context, drafts *draft.Service, draftID string, kind compose.Kind, params any) (*mcp.CallToolResult, ComponentAddResult, error) {
	c, err := draft.NewComponent(kind, params)
	if err != nil {
		return nil, ComponentAddResult{}, fmt.Errorf("encode %s: %w", kind, err)
	}
	d, err := drafts.AppendComponent(ctx, draftID, c)
	if err != nil {
		return nil, ComponentAddResult{}, fmt.Errorf("add %s: %w", kind, err)
	}
	return nil, ComponentAddResult{DraftID: d.ID, Kind: string(kind), Components: len(d.Components)}, nil
}

// AddHookInput represents the MCP tool input for adding an opening hook.
type AddHookInput struct {
	DraftID string `json:"draft_id,omitempty" jsonschema:"draft identifier (defaults to the active draft)"`
	Type    string `json:"type,omitempty" jsonschema:"hook style (question, stat, story, controversy, list, curiosity)"`
	Content string `json:"content" jsonschema:"hook text, at most 210 characters"`
}

// AddHookTool defines the MCP tool schema for adding an opening hook.
func AddHookTool() *mcp.Tool {
	return &mcp.Tool{
		Name:        "add_hook",
		Description: "Adds an opening hook that must fit above the 210-character feed fold",
	}
}

// AddHookHandler executes a hook append request.
func AddHookHandler(drafts *draft.Service) mcp.ToolHandlerFor[AddHookInput, ComponentAddResult] {
	return func(ctx context.Context, _ *mcp.CallToolRequest, input AddHookInput) (*mcp.CallToolResult, ComponentAddResult, error) {
		return appendComponent(ctx, drafts, input.DraftID, compose.KindHook,
			draft.HookParams{Type: input.Type, Content: input.Content})
	}
}

// AddBodyInput represents the MCP tool input for adding a body section.
type AddBodyInput struct {
	DraftID   string `json:"draft_id,omitempty" jsonschema:"draft identifier (defaults to the active draft)"`
	Content   string `json:"content" jsonschema:"body text; framework structure splits on ||"`
	Structure string `json:"structure,omitempty" jsonschema:"body structure (linear, framework; defaults to the resolved variant)"`
}

// AddBodyTool defines the MCP tool schema for adding a body section.
func AddBodyTool() *mcp.Tool {
	return &mcp.Tool{
		Name:        "add_body",
		Description: "Adds the main body text of the post",
	}
}

// AddBodyHandler executes a body append request.
func AddBodyHandler(drafts *draft.Service) mcp.ToolHandlerFor[AddBodyInput, ComponentAddResult] {
	return func(ctx context.Context, _ *mcp.CallToolRequest, input AddBodyInput) (*mcp.CallToolResult, ComponentAddResult, error) {
		return appendComponent(ctx, drafts, input.DraftID, compose.KindBody,
			draft.BodyParams{Content: input.Content, Structure: input.Structure})
	}
}

// AddCTAInput represents the MCP tool input for adding a call to action.
type AddCTAInput struct {
	DraftID string `json:"draft_id,omitempty" jsonschema:"draft identifier (defaults to the active draft)"`
	Type    string `json:"type,omitempty" jsonschema:"call-to-action style (direct, curiosity, action, share, soft)"`
	Text    string `json:"text" jsonschema:"call-to-action text"`
}

// AddCTATool defines the MCP tool schema for adding a call to action.
func AddCTATool() *mcp.Tool {
	return &mcp.Tool{
		Name:        "add_cta",
		Description: "Adds a closing call to action",
	}
}

// AddCTAHandler executes a call-to-action append request.
func AddCTAHandler(drafts *draft.Service) mcp.ToolHandlerFor[AddCTAInput, ComponentAddResult] {
	return func(ctx context.Context, _ *mcp.CallToolRequest, input AddCTAInput) (*mcp.CallToolResult, ComponentAddResult, error) {
		return appendComponent(ctx, drafts, input.DraftID, compose.KindCallToAction,
			draft.CTAParams{Type: input.Type, Text: input.Text})
	}
}

// AddHashtagsInput represents the MCP tool input for adding hashtags.
type AddHashtagsInput struct {
	DraftID   string   `json:"draft_id,omitempty" jsonschema:"draft identifier (defaults to the active draft)"`
	Tags      []string `json:"tags" jsonschema:"1 to 30 tags, leading # optional"`
	Placement string   `json:"placement,omitempty" jsonschema:"where the tags go (inline, mid, end, first_comment)"`
}

// AddHashtagsTool defines the MCP tool schema for adding hashtags.
func AddHashtagsTool() *mcp.Tool {
	return &mcp.Tool{
		Name:        "add_hashtags",
		Description: "Adds a hashtag block",
	}
}

// AddHashtagsHandler executes a hashtags append request.
func AddHashtagsHandler(drafts *draft.Service) mcp.ToolHandlerFor[AddHashtagsInput, ComponentAddResult] {
	return func(ctx context.Context, _ *mcp.CallToolRequest, input AddHashtagsInput) (*mcp.CallToolResult, ComponentAddResult, error) {
		return appendComponent(ctx, drafts, input.DraftID, compose.KindHashtags,
			draft.HashtagsParams{Tags: input.Tags, Placement: input.Placement})
	}
}

// AddSeparatorInput represents the MCP tool input for adding a separator.
type AddSeparatorInput struct {
	DraftID string `json:"draft_id,omitempty" jsonschema:"draft identifier (defaults to the active draft)"`
	Style   string `json:"style,omitempty" jsonschema:"separator style (line, dots, wave, heavy, double, minimal)"`
}

// AddSeparatorTool defines the MCP tool schema for adding a separator.
func AddSeparatorTool() *mcp.Tool {
	return &mcp.Tool{
		Name:        "add_separator",
		Description: "Adds a visual break between sections",
	}
}

// AddSeparatorHandler executes a separator append request.
func AddSeparatorHandler(drafts *draft.Service) mcp.ToolHandlerFor[AddSeparatorInput, ComponentAddResult] {
	return func(ctx context.Context, _ *mcp.CallToolRequest, input AddSeparatorInput) (*mcp.CallToolResult, ComponentAddResult, error) {
		return appendComponent(ctx, drafts, input.DraftID, compose.KindSeparator,
			draft.SeparatorParams{Style: input.Style})
	}
}

// AddQuoteInput represents the MCP tool input for adding a quote.
type AddQuoteInput struct {
	DraftID string `json:"draft_id,omitempty" jsonschema:"draft identifier (defaults to the active draft)"`
	Text    string `json:"text" jsonschema:"quoted text"`
	Author  string `json:"author" jsonschema:"who said it"`
	Source  string `json:"source,omitempty" jsonschema:"where it was said"`
}

// AddQuoteTool defines the MCP tool schema for adding a quote.
func AddQuoteTool() *mcp.Tool {
	return &mcp.Tool{
		Name:        "add_quote",
		Description: "Adds an attributed quote",
	}
}

// AddQuoteHandler executes a quote append request.
func AddQuoteHandler(drafts *draft.Service) mcp.ToolHandlerFor[AddQuoteInput, ComponentAddResult] {
	return func(ctx context.Context, _ *mcp.CallToolRequest, input AddQuoteInput) (*mcp.CallToolResult, ComponentAddResult, error) {
		return appendComponent(ctx, drafts, input.DraftID, compose.KindQuote,
			draft.QuoteParams{Text: input.Text, Author: input.Author, Source: input.Source})
	}
}

// AddBigStatInput represents the MCP tool input for adding a big statistic.
type AddBigStatInput struct {
	DraftID string `json:"draft_id,omitempty" jsonschema:"draft identifier (defaults to the active draft)"`
	Number  string `json:"number" jsonschema:"the statistic itself, e.g. 87%"`
	Label   string `json:"label" jsonschema:"what the number measures"`
	Context string `json:"context,omitempty" jsonschema:"optional qualifier shown under the label"`
}

// AddBigStatTool defines the MCP tool schema for adding a big statistic.
func AddBigStatTool() *mcp.Tool {
	return &mcp.Tool{
		Name:        "add_big_stat",
		Description: "Adds one large statistic callout",
	}
}

// AddBigStatHandler executes a big statistic append request.
func AddBigStatHandler(drafts *draft.Service) mcp.ToolHandlerFor[AddBigStatInput, ComponentAddResult] {
	return func(ctx context.Context, _ *mcp.CallToolRequest, input AddBigStatInput) (*mcp.CallToolResult, ComponentAddResult, error) {
		return appendComponent(ctx, drafts, input.DraftID, compose.KindBigStat,
			draft.BigStatParams{Number: input.Number, Label: input.Label, Context: input.Context})
	}
}

// AddBarChartInput represents the MCP tool input for adding a bar chart.
type AddBarChartInput struct {
	DraftID string          `json:"draft_id,omitempty" jsonschema:"draft identifier (defaults to the active draft)"`
	Items   []draft.BarItem `json:"items" jsonschema:"bars to render, scaled against the largest value"`
	Title   string          `json:"title,omitempty" jsonschema:"chart title"`
	Unit    string          `json:"unit,omitempty" jsonschema:"unit suffix shown after each value"`
}

// AddBarChartTool defines the MCP tool schema for adding a bar chart.
func AddBarChartTool() *mcp.Tool {
	return &mcp.Tool{
		Name:        "add_bar_chart",
		Description: "Adds a text bar chart built from colored square glyphs",
	}
}

// AddBarChartHandler executes a bar chart append request.
func AddBarChartHandler(drafts *draft.Service) mcp.ToolHandlerFor[AddBarChartInput, ComponentAddResult] {
	return func(ctx context.Context, _ *mcp.CallToolRequest, input AddBarChartInput) (*mcp.CallToolResult, ComponentAddResult, error) {
		return appendComponent(ctx, drafts, input.DraftID, compose.KindBarChart,
			draft.BarChartParams{Items: input.Items, Title: input.Title, Unit: input.Unit})
	}
}

// AddComparisonChartInput represents the MCP tool input for adding a comparison chart.
type AddComparisonChartInput struct {
	DraftID string                 `json:"draft_id,omitempty" jsonschema:"draft identifier (defaults to the active draft)"`
	Sides   []draft.ComparisonSide `json:"sides" jsonschema:"exactly two sides to compare"`
	Title   string                 `json:"title,omitempty" jsonschema:"chart title"`
}

// AddComparisonChartTool defines the MCP tool schema for adding a comparison chart.
func AddComparisonChartTool() *mcp.Tool {
	return &mcp.Tool{
		Name:        "add_comparison_chart",
		Description: "Adds a two-sided comparison block",
	}
}

// AddComparisonChartHandler executes a comparison chart append request.
func AddComparisonChartHandler(drafts *draft.Service) mcp.ToolHandlerFor[AddComparisonChartInput, ComponentAddResult] {
	return func(ctx context.Context, _ *mcp.CallToolRequest, input AddComparisonChartInput) (*mcp.CallToolResult, ComponentAddResult, error) {
		return appendComponent(ctx, drafts, input.DraftID, compose.KindComparisonChart,
			draft.ComparisonChartParams{Sides: input.Sides, Title: input.Title})
	}
}

// AddMetricsChartInput represents the MCP tool input for adding a metrics chart.
type AddMetricsChartInput struct {
	DraftID string         `json:"draft_id,omitempty" jsonschema:"draft identifier (defaults to the active draft)"`
	Metrics []draft.Metric `json:"metrics" jsonschema:"labeled values to display"`
	Title   string         `json:"title,omitempty" jsonschema:"chart title"`
}

// AddMetricsChartTool defines the MCP tool schema for adding a metrics chart.
func AddMetricsChartTool() *mcp.Tool {
	return &mcp.Tool{
		Name:        "add_metrics_chart",
		Description: "Adds a metrics dashboard block",
	}
}

// AddMetricsChartHandler executes a metrics chart append request.
func AddMetricsChartHandler(drafts *draft.Service) mcp.ToolHandlerFor[AddMetricsChartInput, ComponentAddResult] {
	return func(ctx context.Context, _ *mcp.CallToolRequest, input AddMetricsChartInput) (*mcp.CallToolResult, ComponentAddResult, error) {
		return appendComponent(ctx, drafts, input.DraftID, compose.KindMetricsChart,
			draft.MetricsChartParams{Metrics: input.Metrics, Title: input.Title})
	}
}

// AddProgressChartInput represents the MCP tool input for adding a progress chart.
type AddProgressChartInput struct {
	DraftID string               `json:"draft_id,omitempty" jsonschema:"draft identifier (defaults to the active draft)"`
	Items   []draft.ProgressItem `json:"items" jsonschema:"labeled percentages, 0 to 100"`
	Title   string               `json:"title,omitempty" jsonschema:"chart title"`
}

// AddProgressChartTool defines the MCP tool schema for adding a progress chart.
func AddProgressChartTool() *mcp.Tool {
	return &mcp.Tool{
		Name:        "add_progress_chart",
		Description: "Adds progress bars drawn with block glyphs",
	}
}

// AddProgressChartHandler executes a progress chart append request.
func AddProgressChartHandler(drafts *draft.Service) mcp.ToolHandlerFor[AddProgressChartInput, ComponentAddResult] {
	return func(ctx context.Context, _ *mcp.CallToolRequest, input AddProgressChartInput) (*mcp.CallToolResult, ComponentAddResult, error) {
		return appendComponent(ctx, drafts, input.DraftID, compose.KindProgressChart,
			draft.ProgressChartParams{Items: input.Items, Title: input.Title})
	}
}

// AddRankingChartInput represents the MCP tool input for adding a ranking chart.
type AddRankingChartInput struct {
	DraftID    string               `json:"draft_id,omitempty" jsonschema:"draft identifier (defaults to the active draft)"`
	Entries    []draft.RankingEntry `json:"entries" jsonschema:"entries in rank order"`
	Title      string               `json:"title,omitempty" jsonschema:"chart title"`
	ShowMedals bool                 `json:"show_medals,omitempty" jsonschema:"medal emoji for the top three"`
}

// AddRankingChartTool defines the MCP tool schema for adding a ranking chart.
func AddRankingChartTool() *mcp.Tool {
	return &mcp.Tool{
		Name:        "add_ranking_chart",
		Description: "Adds a ranked list, optionally with medals for the top three",
	}
}

// AddRankingChartHandler executes a ranking chart append request.
func AddRankingChartHandler(drafts *draft.Service) mcp.ToolHandlerFor[AddRankingChartInput, ComponentAddResult] {
	return func(ctx context.Context, _ *mcp.CallToolRequest, input AddRankingChartInput) (*mcp.CallToolResult, ComponentAddResult, error) {
		return appendComponent(ctx, drafts, input.DraftID, compose.KindRankingChart,
			draft.RankingChartParams{Entries: input.Entries, Title: input.Title, ShowMedals: input.ShowMedals})
	}
}

// AddTimelineInput represents the MCP tool input for adding a timeline.
type AddTimelineInput struct {
	DraftID string               `json:"draft_id,omitempty" jsonschema:"draft identifier (defaults to the active draft)"`
	Steps   []draft.TimelineStep `json:"steps" jsonschema:"progression steps in order"`
	Title   string               `json:"title,omitempty" jsonschema:"timeline title"`
	Style   string               `json:"style,omitempty" jsonschema:"timeline style (arrow, numbered, dated)"`
}

// AddTimelineTool defines the MCP tool schema for adding a timeline.
func AddTimelineTool() *mcp.Tool {
	return &mcp.Tool{
		Name:        "add_timeline",
		Description: "Adds a step-by-step progression timeline",
	}
}

// AddTimelineHandler executes a timeline append request.
func AddTimelineHandler(drafts *draft.Service) mcp.ToolHandlerFor[AddTimelineInput, ComponentAddResult] {
	return func(ctx context.Context, _ *mcp.CallToolRequest, input AddTimelineInput) (*mcp.CallToolResult, ComponentAddResult, error) {
		return appendComponent(ctx, drafts, input.DraftID, compose.KindTimeline,
			draft.TimelineParams{Steps: input.Steps, Title: input.Title, Style: input.Style})
	}
}

// AddKeyTakeawayInput represents the MCP tool input for adding a key takeaway.
type AddKeyTakeawayInput struct {
	DraftID string `json:"draft_id,omitempty" jsonschema:"draft identifier (defaults to the active draft)"`
	Message string `json:"message" jsonschema:"the takeaway, at most 500 characters"`
	Title   string `json:"title,omitempty" jsonschema:"title for the box style"`
	Style   string `json:"style,omitempty" jsonschema:"takeaway style (box, highlight, simple)"`
}

// AddKeyTakeawayTool defines the MCP tool schema for adding a key takeaway.
func AddKeyTakeawayTool() *mcp.Tool {
	return &mcp.Tool{
		Name:        "add_key_takeaway",
		Description: "Adds a highlighted key takeaway",
	}
}

// AddKeyTakeawayHandler executes a key takeaway append request.
func AddKeyTakeawayHandler(drafts *draft.Service) mcp.ToolHandlerFor[AddKeyTakeawayInput, ComponentAddResult] {
	return func(ctx context.Context, _ *mcp.CallToolRequest, input AddKeyTakeawayInput) (*mcp.CallToolResult, ComponentAddResult, error) {
		return appendComponent(ctx, drafts, input.DraftID, compose.KindKeyTakeaway,
			draft.KeyTakeawayParams{Message: input.Message, Title: input.Title, Style: input.Style})
	}
}

// AddProConInput represents the MCP tool input for adding a pros and cons block.
type AddProConInput struct {
	DraftID string   `json:"draft_id,omitempty" jsonschema:"draft identifier (defaults to the active draft)"`
	Pros    []string `json:"pros" jsonschema:"points in favor"`
	Cons    []string `json:"cons" jsonschema:"points against"`
	Title   string   `json:"title,omitempty" jsonschema:"block title"`
}

// AddProConTool defines the MCP tool schema for adding a pros and cons block.
func AddProConTool() *mcp.Tool {
	return &mcp.Tool{
		Name:        "add_pro_con",
		Description: "Adds a pros and cons block",
	}
}

// AddProConHandler executes a pros and cons append request.
func AddProConHandler(drafts *draft.Service) mcp.ToolHandlerFor[AddProConInput, ComponentAddResult] {
	return func(ctx context.Context, _ *mcp.CallToolRequest, input AddProConInput) (*mcp.CallToolResult, ComponentAddResult, error) {
		return appendComponent(ctx, drafts, input.DraftID, compose.KindProCon,
			draft.ProConParams{Pros: input.Pros, Cons: input.Cons, Title: input.Title})
	}
}

// AddChecklistInput represents the MCP tool input for adding a checklist.
type AddChecklistInput struct {
	DraftID      string                `json:"draft_id,omitempty" jsonschema:"draft identifier (defaults to the active draft)"`
	Items        []draft.ChecklistItem `json:"items" jsonschema:"checklist entries with their checked state"`
	Title        string                `json:"title,omitempty" jsonschema:"checklist title"`
	ShowProgress bool                  `json:"show_progress,omitempty" jsonschema:"append an N/M progress line"`
}

// AddChecklistTool defines the MCP tool schema for adding a checklist.
func AddChecklistTool() *mcp.Tool {
	return &mcp.Tool{
		Name:        "add_checklist",
		Description: "Adds a checklist with check and cross marks",
	}
}

// AddChecklistHandler executes a checklist append request.
func AddChecklistHandler(drafts *draft.Service) mcp.ToolHandlerFor[AddChecklistInput, ComponentAddResult] {
	return func(ctx context.Context, _ *mcp.CallToolRequest, input AddChecklistInput) (*mcp.CallToolResult, ComponentAddResult, error) {
		return appendComponent(ctx, drafts, input.DraftID, compose.KindChecklist,
			draft.ChecklistParams{Items: input.Items, Title: input.Title, ShowProgress: input.ShowProgress})
	}
}

// AddBeforeAfterInput represents the MCP tool input for adding a before and after block.
type AddBeforeAfterInput struct {
	DraftID     string   `json:"draft_id,omitempty" jsonschema:"draft identifier (defaults to the active draft)"`
	Before      []string `json:"before" jsonschema:"points describing the before state"`
	After       []string `json:"after" jsonschema:"points describing the after state"`
	Title       string   `json:"title,omitempty" jsonschema:"block title"`
	BeforeLabel string   `json:"before_label,omitempty" jsonschema:"label for the before column (defaults to Before)"`
	AfterLabel  string   `json:"after_label,omitempty" jsonschema:"label for the after column (defaults to After)"`
}

// AddBeforeAfterTool defines the MCP tool schema for adding a before and after block.
func AddBeforeAfterTool() *mcp.Tool {
	return &mcp.Tool{
		Name:        "add_before_after",
		Description: "Adds a before and after transformation block",
	}
}

// AddBeforeAfterHandler executes a before and after append request.
func AddBeforeAfterHandler(drafts *draft.Service) mcp.ToolHandlerFor[AddBeforeAfterInput, ComponentAddResult] {
	return func(ctx context.Context, _ *mcp.CallToolRequest, input AddBeforeAfterInput) (*mcp.CallToolResult, ComponentAddResult, error) {
		return appendComponent(ctx, drafts, input.DraftID, compose.KindBeforeAfter,
			draft.BeforeAfterParams{
				Before:      input.Before,
				After:       input.After,
				Title:       input.Title,
				BeforeLabel: input.BeforeLabel,
				AfterLabel:  input.AfterLabel,
			})
	}
}

// AddTipBoxInput represents the MCP tool input for adding a tip box.
type AddTipBoxInput struct {
	DraftID string `json:"draft_id,omitempty" jsonschema:"draft identifier (defaults to the active draft)"`
	Message string `json:"message" jsonschema:"the tip text"`
	Title   string `json:"title,omitempty" jsonschema:"box title (defaults per style)"`
	Style   string `json:"style,omitempty" jsonschema:"tip style (info, tip, warning, success)"`
}

// AddTipBoxTool defines the MCP tool schema for adding a tip box.
func AddTipBoxTool() *mcp.Tool {
	return &mcp.Tool{
		Name:        "add_tip_box",
		Description: "Adds a tip box set apart with blank lines",
	}
}

// AddTipBoxHandler executes a tip box append request.
func AddTipBoxHandler(drafts *draft.Service) mcp.ToolHandlerFor[AddTipBoxInput, ComponentAddResult] {
	return func(ctx context.Context, _ *mcp.CallToolRequest, input AddTipBoxInput) (*mcp.CallToolResult, ComponentAddResult, error) {
		return appendComponent(ctx, drafts, input.DraftID, compose.KindTipBox,
			draft.TipBoxParams{Message: input.Message, Title: input.Title, Style: input.Style})
	}
}

// AddStatsGridInput represents the MCP tool input for adding a stats grid.
type AddStatsGridInput struct {
	DraftID string       `json:"draft_id,omitempty" jsonschema:"draft identifier (defaults to the active draft)"`
	Stats   []draft.Stat `json:"stats" jsonschema:"labeled values to arrange in a grid"`
	Title   string       `json:"title,omitempty" jsonschema:"grid title"`
	Columns int          `json:"columns,omitempty" jsonschema:"cells per row (defaults to 2)"`
}

// AddStatsGridTool defines the MCP tool schema for adding a stats grid.
func AddStatsGridTool() *mcp.Tool {
	return &mcp.Tool{
		Name:        "add_stats_grid",
		Description: "Adds stats arranged in pipe-separated rows",
	}
}

// AddStatsGridHandler executes a stats grid append request.
func AddStatsGridHandler(drafts *draft.Service) mcp.ToolHandlerFor[AddStatsGridInput, ComponentAddResult] {
	return func(ctx context.Context, _ *mcp.CallToolRequest, input AddStatsGridInput) (*mcp.CallToolResult, ComponentAddResult, error) {
		return appendComponent(ctx, drafts, input.DraftID, compose.KindStatsGrid,
			draft.StatsGridParams{Stats: input.Stats, Title: input.Title, Columns: input.Columns})
	}
}

// AddPollPreviewInput represents the MCP tool input for adding a poll preview.
type AddPollPreviewInput struct {
	DraftID  string   `json:"draft_id,omitempty" jsonschema:"draft identifier (defaults to the active draft)"`
	Question string   `json:"question" jsonschema:"poll question, at most 140 characters"`
	Options  []string `json:"options" jsonschema:"2 to 4 answer options, each at most 30 characters"`
}

// AddPollPreviewTool defines the MCP tool schema for adding a poll preview.
func AddPollPreviewTool() *mcp.Tool {
	return &mcp.Tool{
		Name:        "add_poll_preview",
		Description: "Adds a poll mock-up; poll drafts publish it as a native poll",
	}
}

// AddPollPreviewHandler executes a poll preview append request.
func AddPollPreviewHandler(drafts *draft.Service) mcp.ToolHandlerFor[AddPollPreviewInput, ComponentAddResult] {
	return func(ctx context.Context, _ *mcp.CallToolRequest, input AddPollPreviewInput) (*mcp.CallToolResult, ComponentAddResult, error) {
		return appendComponent(ctx, drafts, input.DraftID, compose.KindPollPreview,
			draft.PollPreviewParams{Question: input.Question, Options: input.Options})
	}
}

// AddFeatureListInput represents the MCP tool input for adding a feature list.
type AddFeatureListInput struct {
	DraftID  string          `json:"draft_id,omitempty" jsonschema:"draft identifier (defaults to the active draft)"`
	Features []draft.Feature `json:"features" jsonschema:"features with an optional icon and description"`
	Title    string          `json:"title,omitempty" jsonschema:"list title"`
}

// AddFeatureListTool defines the MCP tool schema for adding a feature list.
func AddFeatureListTool() *mcp.Tool {
	return &mcp.Tool{
		Name:        "add_feature_list",
		Description: "Adds a feature list with icons",
	}
}

// AddFeatureListHandler executes a feature list append request.
func AddFeatureListHandler(drafts *draft.Service) mcp.ToolHandlerFor[AddFeatureListInput, ComponentAddResult] {
	return func(ctx context.Context, _ *mcp.CallToolRequest, input AddFeatureListInput) (*mcp.CallToolResult, ComponentAddResult, error) {
		return appendComponent(ctx, drafts, input.DraftID, compose.KindFeatureList,
			draft.FeatureListParams{Features: input.Features, Title: input.Title})
	}
}

// AddNumberedListInput represents the MCP tool input for adding a numbered list.
type AddNumberedListInput struct {
	DraftID string   `json:"draft_id,omitempty" jsonschema:"draft identifier (defaults to the active draft)"`
	Items   []string `json:"items" jsonschema:"list entries in order"`
	Title   string   `json:"title,omitempty" jsonschema:"list title"`
	Style   string   `json:"style,omitempty" jsonschema:"numbering style (numbers, emoji_numbers, bold_numbers)"`
	Start   int      `json:"start,omitempty" jsonschema:"starting number (defaults to 1)"`
}

// AddNumberedListTool defines the MCP tool schema for adding a numbered list.
func AddNumberedListTool() *mcp.Tool {
	return &mcp.Tool{
		Name:        "add_numbered_list",
		Description: "Adds a numbered list",
	}
}

// AddNumberedListHandler executes a numbered list append request.
func AddNumberedListHandler(drafts *draft.Service) mcp.ToolHandlerFor[AddNumberedListInput, ComponentAddResult] {
	return func(ctx context.Context, _ *mcp.CallToolRequest, input AddNumberedListInput) (*mcp.CallToolResult, ComponentAddResult, error) {
		return appendComponent(ctx, drafts, input.DraftID, compose.KindNumberedList,
			draft.NumberedListParams{Items: input.Items, Title: input.Title, Style: input.Style, Start: input.Start})
	}
}

package service

import (
	"github.com/louisbranch/postforge/internal/compose/theme"
	"github.com/louisbranch/postforge/internal/draft"
	"github.com/louisbranch/postforge/internal/mcp/domain"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

func registerDraftTools(mcpServer *mcp.Server, drafts *draft.Service) {
	mcp.AddTool(mcpServer, domain.CreateDraftTool(), domain.CreateDraftHandler(drafts))
	mcp.AddTool(mcpServer, domain.GetDraftTool(), domain.GetDraftHandler(drafts))
	mcp.AddTool(mcpServer, domain.ListDraftsTool(), domain.ListDraftsHandler(drafts))
	mcp.AddTool(mcpServer, domain.DeleteDraftTool(), domain.DeleteDraftHandler(drafts))
	mcp.AddTool(mcpServer, domain.SetActiveDraftTool(), domain.SetActiveDraftHandler(drafts))
	mcp.AddTool(mcpServer, domain.DraftStatsTool(), domain.DraftStatsHandler(drafts))
}

func registerComponentTools(mcpServer *mcp.Server, drafts *draft.Service) {
	mcp.AddTool(mcpServer, domain.AddHookTool(), domain.AddHookHandler(drafts))
	mcp.AddTool(mcpServer, domain.AddBodyTool(), domain.AddBodyHandler(drafts))
	mcp.AddTool(mcpServer, domain.AddCTATool(), domain.AddCTAHandler(drafts))
	mcp.AddTool(mcpServer, domain.AddHashtagsTool(), domain.AddHashtagsHandler(drafts))
	mcp.AddTool(mcpServer, domain.AddSeparatorTool(), domain.AddSeparatorHandler(drafts))
	mcp.AddTool(mcpServer, domain.AddQuoteTool(), domain.AddQuoteHandler(drafts))
	mcp.AddTool(mcpServer, domain.AddBigStatTool(), domain.AddBigStatHandler(drafts))
	mcp.AddTool(mcpServer, domain.AddBarChartTool(), domain.AddBarChartHandler(drafts))
	mcp.AddTool(mcpServer, domain.AddComparisonChartTool(), domain.AddComparisonChartHandler(drafts))
	mcp.AddTool(mcpServer, domain.AddMetricsChartTool(), domain.AddMetricsChartHandler(drafts))
	mcp.AddTool(mcpServer, domain.AddProgressChartTool(), domain.AddProgressChartHandler(drafts))
	mcp.AddTool(mcpServer, domain.AddRankingChartTool(), domain.AddRankingChartHandler(drafts))
	mcp.AddTool(mcpServer, domain.AddTimelineTool(), domain.AddTimelineHandler(drafts))
	mcp.AddTool(mcpServer, domain.AddKeyTakeawayTool(), domain.AddKeyTakeawayHandler(drafts))
	mcp.AddTool(mcpServer, domain.AddProConTool(), domain.AddProConHandler(drafts))
	mcp.AddTool(mcpServer, domain.AddChecklistTool(), domain.AddChecklistHandler(drafts))
	mcp.AddTool(mcpServer, domain.AddBeforeAfterTool(), domain.AddBeforeAfterHandler(drafts))
	mcp.AddTool(mcpServer, domain.AddTipBoxTool(), domain.AddTipBoxHandler(drafts))
	mcp.AddTool(mcpServer, domain.AddStatsGridTool(), domain.AddStatsGridHandler(drafts))
	mcp.AddTool(mcpServer, domain.AddPollPreviewTool(), domain.AddPollPreviewHandler(drafts))
	mcp.AddTool(mcpServer, domain.AddFeatureListTool(), domain.AddFeatureListHandler(drafts))
	mcp.AddTool(mcpServer, domain.AddNumberedListTool(), domain.AddNumberedListHandler(drafts))
}

func registerComposeTools(mcpServer *mcp.Server, drafts *draft.Service) {
	mcp.AddTool(mcpServer, domain.ComposePostTool(), domain.ComposePostHandler(drafts))
	mcp.AddTool(mcpServer, domain.PreviewPostTool(), domain.PreviewPostHandler(drafts))
	mcp.AddTool(mcpServer, domain.OptimizePostTool(), domain.OptimizePostHandler(drafts))
	mcp.AddTool(mcpServer, domain.ExportPostTool(), domain.ExportPostHandler(drafts))
}

func registerThemeTools(mcpServer *mcp.Server, themes *theme.Manager) {
	mcp.AddTool(mcpServer, domain.ListThemesTool(), domain.ListThemesHandler(themes))
	mcp.AddTool(mcpServer, domain.GetThemeTool(), domain.GetThemeHandler(themes))
	mcp.AddTool(mcpServer, domain.CreateCustomThemeTool(), domain.CreateCustomThemeHandler(themes))
	mcp.AddTool(mcpServer, domain.RecommendThemesTool(), domain.RecommendThemesHandler(themes))
	mcp.AddTool(mcpServer, domain.ExportThemeTool(), domain.ExportThemeHandler(themes))
	mcp.AddTool(mcpServer, domain.ImportThemeTool(), domain.ImportThemeHandler(themes))
	mcpServer.AddPrompt(domain.PostBriefPrompt(), domain.PostBriefPromptHandler(themes))
}

func registerVariantTools(mcpServer *mcp.Server, themes *theme.Manager) {
	mcp.AddTool(mcpServer, domain.ListVariantsTool(), domain.ListVariantsHandler())
	mcp.AddTool(mcpServer, domain.ResolveVariantsTool(), domain.ResolveVariantsHandler(themes))
	mcp.AddTool(mcpServer, domain.SuggestVariantsTool(), domain.SuggestVariantsHandler())
}

func registerPublishTools(mcpServer *mcp.Server, drafts *draft.Service, publisher domain.Publisher) {
	mcp.AddTool(mcpServer, domain.PublishDraftTool(), domain.PublishDraftHandler(drafts, publisher))
	mcp.AddTool(mcpServer, domain.LinkedInUserinfoTool(), domain.LinkedInUserinfoHandler(publisher))
}

// registerDraftResources registers readable draft MCP resources.
func registerDraftResources(mcpServer *mcp.Server, drafts *draft.Service) {
	mcpServer.AddResource(domain.DraftListResource(), domain.DraftListResourceHandler(drafts))
}

// registerThemeResources registers readable theme MCP resources.
func registerThemeResources(mcpServer *mcp.Server, themes *theme.Manager) {
	mcpServer.AddResource(domain.ThemeListResource(), domain.ThemeListResourceHandler(themes))
}

// registerVariantResources registers the per-post-type variant table resource.
func registerVariantResources(mcpServer *mcp.Server) {
	mcpServer.AddResourceTemplate(domain.VariantTableResourceTemplate(), domain.VariantTableResourceHandler())
}

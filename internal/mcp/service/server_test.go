// Package service tests the MCP server wiring.
package service

import (
	"context"
	"errors"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/louisbranch/postforge/internal/compose/theme"
	"github.com/louisbranch/postforge/internal/draft"
	"github.com/louisbranch/postforge/internal/draft/storage/sqlite"
	"github.com/louisbranch/postforge/internal/linkedin"
	"github.com/louisbranch/postforge/internal/mcp/domain"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// fakePublisher implements domain.Publisher for tests.
type fakePublisher struct {
	postURN     string
	postErr     error
	uploadURN   string
	uploadErr   error
	userinfo    linkedin.Userinfo
	userinfoErr error

	posts          int
	lastText       string
	lastVisibility linkedin.Visibility
	lastMedia      []linkedin.Media
	lastPoll       linkedin.Poll
	lastUploadPath string
}

// CreatePost records the request and returns the configured URN.
func (f *fakePublisher) CreatePost(ctx context.Context, text string, visibility linkedin.Visibility) (string, error) {
	f.posts++
	f.lastText = text
	f.lastVisibility = visibility
	return f.postURN, f.postErr
}

// CreateMediaPost records the request and returns the configured URN.
func (f *fakePublisher) CreateMediaPost(ctx context.Context, text string, visibility linkedin.Visibility, media ...linkedin.Media) (string, error) {
	f.posts++
	f.lastText = text
	f.lastVisibility = visibility
	f.lastMedia = media
	return f.postURN, f.postErr
}

// CreatePollPost records the request and returns the configured URN.
func (f *fakePublisher) CreatePollPost(ctx context.Context, text string, visibility linkedin.Visibility, poll linkedin.Poll) (string, error) {
	f.posts++
	f.lastText = text
	f.lastVisibility = visibility
	f.lastPoll = poll
	return f.postURN, f.postErr
}

// UploadImage records the path and returns the configured URN.
func (f *fakePublisher) UploadImage(ctx context.Context, path string) (string, error) {
	f.lastUploadPath = path
	return f.uploadURN, f.uploadErr
}

// UploadDocument records the path and returns the configured URN.
func (f *fakePublisher) UploadDocument(ctx context.Context, path string) (string, error) {
	f.lastUploadPath = path
	return f.uploadURN, f.uploadErr
}

// Userinfo returns the configured profile.
func (f *fakePublisher) Userinfo(ctx context.Context) (linkedin.Userinfo, error) {
	return f.userinfo, f.userinfoErr
}

// failingTransport returns a connection error for tests.
type failingTransport struct{}

// Connect returns the configured error for tests.
func (f failingTransport) Connect(context.Context) (mcp.Connection, error) {
	return nil, errors.New("transport failure")
}

func newTestDeps(t *testing.T) (Deps, *draft.Service, *fakePublisher) {
	t.Helper()

	store, err := sqlite.Open(filepath.Join(t.TempDir(), "drafts.db"))
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	t.Cleanup(func() {
		if err := store.Close(); err != nil {
			t.Fatalf("close store: %v", err)
		}
	})

	themes := theme.NewManager()
	drafts := draft.NewService(store, themes)
	publisher := &fakePublisher{postURN: "urn:li:share:99", uploadURN: "urn:li:image:7"}
	return Deps{Drafts: drafts, Themes: themes, Publisher: publisher}, drafts, publisher
}

// TestNewConfiguresServer ensures New returns a configured server.
func TestNewConfiguresServer(t *testing.T) {
	deps, _, _ := newTestDeps(t)
	server, err := New(deps)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if server == nil || server.mcpServer == nil {
		t.Fatal("expected configured server")
	}
}

// TestNewRequiresDeps ensures New rejects missing dependencies.
func TestNewRequiresDeps(t *testing.T) {
	deps, _, _ := newTestDeps(t)

	tests := []struct {
		name string
		deps Deps
	}{
		{name: "missing drafts", deps: Deps{Themes: deps.Themes, Publisher: deps.Publisher}},
		{name: "missing themes", deps: Deps{Drafts: deps.Drafts, Publisher: deps.Publisher}},
		{name: "missing publisher", deps: Deps{Drafts: deps.Drafts, Themes: deps.Themes}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := New(tt.deps); err == nil {
				t.Fatal("expected error")
			}
		})
	}
}

// TestServeRequiresConfiguredServer ensures Serve returns an error when unconfigured.
func TestServeRequiresConfiguredServer(t *testing.T) {
	tests := []struct {
		name   string
		server *Server
	}{
		{name: "nil server", server: nil},
		{name: "missing mcp server", server: &Server{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := tt.server.Serve(context.Background()); err == nil {
				t.Fatal("expected error")
			}
		})
	}
}

// TestServeStopsOnContext ensures Serve exits when the context is cancelled.
func TestServeStopsOnContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	deps, _, _ := newTestDeps(t)
	server, err := New(deps)
	if err != nil {
		t.Fatalf("new server: %v", err)
	}

	serverTransport, clientTransport := mcp.NewInMemoryTransports()
	serveErr := make(chan error, 1)
	go func() {
		serveErr <- server.serveWithTransport(ctx, serverTransport)
	}()

	client := mcp.NewClient(&mcp.Implementation{Name: "client", Version: "v0.0.1"}, nil)
	clientCtx, clientCancel := context.WithTimeout(context.Background(), time.Second)
	defer clientCancel()
	clientSession, err := client.Connect(clientCtx, clientTransport, nil)
	if err != nil {
		t.Fatalf("connect client: %v", err)
	}
	defer clientSession.Close()

	cancel()

	select {
	case err := <-serveErr:
		if err != nil {
			t.Fatalf("serve returned error: %v", err)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("server did not stop after cancel")
	}
}

// TestServeReturnsTransportError ensures transport failures are reported.
func TestServeReturnsTransportError(t *testing.T) {
	deps, _, _ := newTestDeps(t)
	server, err := New(deps)
	if err != nil {
		t.Fatalf("new server: %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()

	if err := server.serveWithTransport(ctx, failingTransport{}); err == nil {
		t.Fatal("expected transport error")
	}
}

// TestRunRejectsUnknownTransport ensures Run fails on unsupported transports.
func TestRunRejectsUnknownTransport(t *testing.T) {
	deps, _, _ := newTestDeps(t)

	err := Run(context.Background(), deps, Config{Transport: "carrier-pigeon"})
	if err == nil {
		t.Fatal("expected error")
	}
	if !strings.Contains(err.Error(), "carrier-pigeon") {
		t.Fatalf("expected transport name in error, got %v", err)
	}
}

// TestCompletionHandler ensures argument completion draws from the registries.
func TestCompletionHandler(t *testing.T) {
	deps, _, _ := newTestDeps(t)
	server, err := New(deps)
	if err != nil {
		t.Fatalf("new server: %v", err)
	}

	t.Run("empty request", func(t *testing.T) {
		result, err := server.completionHandler(context.Background(), &mcp.CompleteRequest{})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if result == nil {
			t.Fatal("expected non-nil result")
		}
		if len(result.Completion.Values) != 0 {
			t.Errorf("expected empty values, got %v", result.Completion.Values)
		}
	})

	t.Run("post type prefix", func(t *testing.T) {
		result, err := server.completionHandler(context.Background(), &mcp.CompleteRequest{
			Params: &mcp.CompleteParams{
				Argument: mcp.CompleteParamsArgument{Name: "post_type", Value: "po"},
			},
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(result.Completion.Values) != 1 || result.Completion.Values[0] != "poll" {
			t.Fatalf("expected [poll], got %v", result.Completion.Values)
		}
	})

	t.Run("theme prefix", func(t *testing.T) {
		result, err := server.completionHandler(context.Background(), &mcp.CompleteRequest{
			Params: &mcp.CompleteParams{
				Argument: mcp.CompleteParamsArgument{Name: "theme", Value: "thought"},
			},
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(result.Completion.Values) != 1 || result.Completion.Values[0] != "thought_leader" {
			t.Fatalf("expected [thought_leader], got %v", result.Completion.Values)
		}
	})
}

// TestCreateDraftHandlerCreatesDraft ensures the tool stores a draft and
// reports its summary.
func TestCreateDraftHandlerCreatesDraft(t *testing.T) {
	_, drafts, _ := newTestDeps(t)
	handler := domain.CreateDraftHandler(drafts)

	_, result, err := handler(context.Background(), &mcp.CallToolRequest{}, domain.CreateDraftInput{
		Name:       "Launch post",
		PostType:   "text",
		Theme:      "thought_leader",
		Selections: map[string]string{"style": "story"},
	})
	if err != nil {
		t.Fatalf("create draft: %v", err)
	}
	if result.ID == "" {
		t.Fatal("expected draft id")
	}
	if result.PostType != "text" || result.Theme != "thought_leader" {
		t.Fatalf("unexpected summary: %+v", result)
	}
	if drafts.ActiveID() != result.ID {
		t.Fatalf("expected new draft to be active, got %q", drafts.ActiveID())
	}
}

// TestCreateDraftHandlerRejectsUnknownTheme ensures theme validation errors
// surface as tool errors.
func TestCreateDraftHandlerRejectsUnknownTheme(t *testing.T) {
	_, drafts, _ := newTestDeps(t)
	handler := domain.CreateDraftHandler(drafts)

	_, _, err := handler(context.Background(), &mcp.CallToolRequest{}, domain.CreateDraftInput{
		Name:  "Launch post",
		Theme: "ghost",
	})
	if err == nil {
		t.Fatal("expected error")
	}
}

// TestAddHookHandlerAppendsToActiveDraft ensures component tools default to
// the active draft.
func TestAddHookHandlerAppendsToActiveDraft(t *testing.T) {
	_, drafts, _ := newTestDeps(t)
	ctx := context.Background()

	d, err := drafts.CreateDraft(ctx, draft.CreateInput{Name: "Launch post"})
	if err != nil {
		t.Fatalf("create draft: %v", err)
	}

	handler := domain.AddHookHandler(drafts)
	_, result, err := handler(ctx, &mcp.CallToolRequest{}, domain.AddHookInput{
		Type:    "question",
		Content: "What would you build with a free afternoon?",
	})
	if err != nil {
		t.Fatalf("add hook: %v", err)
	}
	if result.DraftID != d.ID {
		t.Fatalf("DraftID = %q, want %q", result.DraftID, d.ID)
	}
	if result.Kind != "hook" || result.Components != 1 {
		t.Fatalf("unexpected result: %+v", result)
	}
}

// TestComposePostHandlerRendersComponents ensures composition returns the
// final text.
func TestComposePostHandlerRendersComponents(t *testing.T) {
	_, drafts, _ := newTestDeps(t)
	ctx := context.Background()

	if _, err := drafts.CreateDraft(ctx, draft.CreateInput{Name: "Launch post"}); err != nil {
		t.Fatalf("create draft: %v", err)
	}
	if _, _, err := domain.AddHookHandler(drafts)(ctx, &mcp.CallToolRequest{}, domain.AddHookInput{Content: "Build in public."}); err != nil {
		t.Fatalf("add hook: %v", err)
	}
	if _, _, err := domain.AddBodyHandler(drafts)(ctx, &mcp.CallToolRequest{}, domain.AddBodyInput{Content: "We shipped the composer today."}); err != nil {
		t.Fatalf("add body: %v", err)
	}

	_, result, err := domain.ComposePostHandler(drafts)(ctx, &mcp.CallToolRequest{}, domain.ComposePostInput{})
	if err != nil {
		t.Fatalf("compose post: %v", err)
	}
	if !strings.Contains(result.Text, "Build in public.") {
		t.Fatalf("expected hook in text, got %q", result.Text)
	}
	if !strings.Contains(result.Text, "We shipped the composer today.") {
		t.Fatalf("expected body in text, got %q", result.Text)
	}
	if result.CharacterCount == 0 {
		t.Fatal("expected character count")
	}
	if len(result.Skipped) != 0 {
		t.Fatalf("expected no skipped components, got %v", result.Skipped)
	}
}

// TestPublishDraftHandlerPublishesText ensures a composed draft publishes
// through the client.
func TestPublishDraftHandlerPublishesText(t *testing.T) {
	_, drafts, publisher := newTestDeps(t)
	ctx := context.Background()

	if _, err := drafts.CreateDraft(ctx, draft.CreateInput{Name: "Launch post"}); err != nil {
		t.Fatalf("create draft: %v", err)
	}
	if _, _, err := domain.AddBodyHandler(drafts)(ctx, &mcp.CallToolRequest{}, domain.AddBodyInput{Content: "We shipped the composer today."}); err != nil {
		t.Fatalf("add body: %v", err)
	}

	handler := domain.PublishDraftHandler(drafts, publisher)
	_, result, err := handler(ctx, &mcp.CallToolRequest{}, domain.PublishDraftInput{})
	if err != nil {
		t.Fatalf("publish draft: %v", err)
	}
	if result.PostURN != "urn:li:share:99" {
		t.Fatalf("PostURN = %q, want %q", result.PostURN, "urn:li:share:99")
	}
	if result.Visibility != "PUBLIC" {
		t.Fatalf("Visibility = %q, want PUBLIC", result.Visibility)
	}
	if publisher.posts != 1 {
		t.Fatalf("posts = %d, want 1", publisher.posts)
	}
	if !strings.Contains(publisher.lastText, "We shipped the composer today.") {
		t.Fatalf("unexpected published text %q", publisher.lastText)
	}
	if publisher.lastVisibility != linkedin.VisibilityPublic {
		t.Fatalf("visibility = %q, want PUBLIC", publisher.lastVisibility)
	}
}

// TestPublishDraftHandlerDryRun ensures dry runs never reach the client.
func TestPublishDraftHandlerDryRun(t *testing.T) {
	_, drafts, publisher := newTestDeps(t)
	ctx := context.Background()

	if _, err := drafts.CreateDraft(ctx, draft.CreateInput{Name: "Launch post"}); err != nil {
		t.Fatalf("create draft: %v", err)
	}
	if _, _, err := domain.AddBodyHandler(drafts)(ctx, &mcp.CallToolRequest{}, domain.AddBodyInput{Content: "We shipped the composer today."}); err != nil {
		t.Fatalf("add body: %v", err)
	}

	handler := domain.PublishDraftHandler(drafts, publisher)
	_, result, err := handler(ctx, &mcp.CallToolRequest{}, domain.PublishDraftInput{DryRun: true})
	if err != nil {
		t.Fatalf("publish draft: %v", err)
	}
	if !result.DryRun {
		t.Fatal("expected dry run result")
	}
	if result.PostURN != "" {
		t.Fatalf("expected no URN on dry run, got %q", result.PostURN)
	}
	if !strings.Contains(result.Text, "We shipped the composer today.") {
		t.Fatalf("expected text preview, got %q", result.Text)
	}
	if publisher.posts != 0 {
		t.Fatalf("posts = %d, want 0", publisher.posts)
	}
}

// TestPublishDraftHandlerPollDraft ensures poll drafts publish natively with
// the mock-up stripped from the commentary.
func TestPublishDraftHandlerPollDraft(t *testing.T) {
	_, drafts, publisher := newTestDeps(t)
	ctx := context.Background()

	if _, err := drafts.CreateDraft(ctx, draft.CreateInput{Name: "Poll post", PostType: "poll"}); err != nil {
		t.Fatalf("create draft: %v", err)
	}
	if _, _, err := domain.AddBodyHandler(drafts)(ctx, &mcp.CallToolRequest{}, domain.AddBodyInput{Content: "Settle this for us."}); err != nil {
		t.Fatalf("add body: %v", err)
	}
	if _, _, err := domain.AddPollPreviewHandler(drafts)(ctx, &mcp.CallToolRequest{}, domain.AddPollPreviewInput{
		Question: "Tabs or spaces?",
		Options:  []string{"Tabs", "Spaces"},
	}); err != nil {
		t.Fatalf("add poll preview: %v", err)
	}

	handler := domain.PublishDraftHandler(drafts, publisher)
	_, result, err := handler(ctx, &mcp.CallToolRequest{}, domain.PublishDraftInput{PollDuration: "SEVEN_DAYS"})
	if err != nil {
		t.Fatalf("publish draft: %v", err)
	}
	if result.PostURN != "urn:li:share:99" {
		t.Fatalf("PostURN = %q", result.PostURN)
	}
	if publisher.lastPoll.Question != "Tabs or spaces?" {
		t.Fatalf("poll question = %q", publisher.lastPoll.Question)
	}
	if len(publisher.lastPoll.Options) != 2 {
		t.Fatalf("poll options = %v", publisher.lastPoll.Options)
	}
	if publisher.lastPoll.Duration != "SEVEN_DAYS" {
		t.Fatalf("poll duration = %q", publisher.lastPoll.Duration)
	}
	if !strings.Contains(publisher.lastText, "Settle this for us.") {
		t.Fatalf("expected commentary in %q", publisher.lastText)
	}
	if strings.Contains(publisher.lastText, "Tabs or spaces?") {
		t.Fatalf("expected mock-up stripped from commentary, got %q", publisher.lastText)
	}
}

// TestPublishDraftHandlerAttachesMedia ensures a media path uploads and
// attaches the asset.
func TestPublishDraftHandlerAttachesMedia(t *testing.T) {
	_, drafts, publisher := newTestDeps(t)
	ctx := context.Background()

	if _, err := drafts.CreateDraft(ctx, draft.CreateInput{Name: "Launch post"}); err != nil {
		t.Fatalf("create draft: %v", err)
	}
	if _, _, err := domain.AddBodyHandler(drafts)(ctx, &mcp.CallToolRequest{}, domain.AddBodyInput{Content: "Chart attached."}); err != nil {
		t.Fatalf("add body: %v", err)
	}

	handler := domain.PublishDraftHandler(drafts, publisher)
	_, result, err := handler(ctx, &mcp.CallToolRequest{}, domain.PublishDraftInput{
		MediaPath:  "growth.png",
		MediaTitle: "Q3 growth",
	})
	if err != nil {
		t.Fatalf("publish draft: %v", err)
	}
	if result.PostURN == "" {
		t.Fatal("expected post URN")
	}
	if publisher.lastUploadPath != "growth.png" {
		t.Fatalf("upload path = %q", publisher.lastUploadPath)
	}
	if len(publisher.lastMedia) != 1 || publisher.lastMedia[0].URN != "urn:li:image:7" {
		t.Fatalf("media = %+v", publisher.lastMedia)
	}
	if publisher.lastMedia[0].Title != "Q3 growth" {
		t.Fatalf("media title = %q", publisher.lastMedia[0].Title)
	}
}

// TestPublishDraftHandlerRejectsVisibility ensures bad visibility fails
// before composing.
func TestPublishDraftHandlerRejectsVisibility(t *testing.T) {
	_, drafts, publisher := newTestDeps(t)

	handler := domain.PublishDraftHandler(drafts, publisher)
	_, _, err := handler(context.Background(), &mcp.CallToolRequest{}, domain.PublishDraftInput{Visibility: "friends"})
	if err == nil {
		t.Fatal("expected error")
	}
	if publisher.posts != 0 {
		t.Fatalf("posts = %d, want 0", publisher.posts)
	}
}

// TestLinkedInUserinfoHandler ensures the profile passes through.
func TestLinkedInUserinfoHandler(t *testing.T) {
	_, _, publisher := newTestDeps(t)
	publisher.userinfo = linkedin.Userinfo{Sub: "abc123", Name: "Ada Lovelace"}

	handler := domain.LinkedInUserinfoHandler(publisher)
	_, result, err := handler(context.Background(), &mcp.CallToolRequest{}, domain.LinkedInUserinfoInput{})
	if err != nil {
		t.Fatalf("userinfo: %v", err)
	}
	if result.Sub != "abc123" || result.Name != "Ada Lovelace" {
		t.Fatalf("unexpected profile: %+v", result)
	}
}

// TestLinkedInUserinfoHandlerReturnsClientError ensures client errors are
// returned as tool errors.
func TestLinkedInUserinfoHandlerReturnsClientError(t *testing.T) {
	_, _, publisher := newTestDeps(t)
	publisher.userinfoErr = errors.New("boom")

	handler := domain.LinkedInUserinfoHandler(publisher)
	result, _, err := handler(context.Background(), &mcp.CallToolRequest{}, domain.LinkedInUserinfoInput{})
	if err == nil {
		t.Fatal("expected error")
	}
	if result != nil {
		t.Fatal("expected nil result on error")
	}
}

// TestListThemesHandlerListsBuiltins ensures the built-in personas come
// back in their fixed order.
func TestListThemesHandlerListsBuiltins(t *testing.T) {
	deps, _, _ := newTestDeps(t)

	handler := domain.ListThemesHandler(deps.Themes)
	_, result, err := handler(context.Background(), &mcp.CallToolRequest{}, domain.ListThemesInput{})
	if err != nil {
		t.Fatalf("list themes: %v", err)
	}
	if len(result.Themes) != 10 {
		t.Fatalf("themes = %d, want 10", len(result.Themes))
	}
	if result.Themes[0].Name != "Thought Leader" {
		t.Fatalf("first theme = %q", result.Themes[0].Name)
	}
}

// TestGetThemeHandlerNormalizesName ensures display names resolve to keys.
func TestGetThemeHandlerNormalizesName(t *testing.T) {
	deps, _, _ := newTestDeps(t)

	handler := domain.GetThemeHandler(deps.Themes)
	_, result, err := handler(context.Background(), &mcp.CallToolRequest{}, domain.GetThemeInput{Name: "Thought Leader"})
	if err != nil {
		t.Fatalf("get theme: %v", err)
	}
	if result.Key != "thought_leader" {
		t.Fatalf("Key = %q", result.Key)
	}
	if result.Theme.Tone == "" {
		t.Fatal("expected theme definition")
	}
}

// TestCreateCustomThemeHandlerRejectsBadMix ensures content mix validation
// surfaces as a tool error.
func TestCreateCustomThemeHandlerRejectsBadMix(t *testing.T) {
	deps, _, _ := newTestDeps(t)

	handler := domain.CreateCustomThemeHandler(deps.Themes)
	_, _, err := handler(context.Background(), &mcp.CallToolRequest{}, theme.Input{
		Name:        "Unbalanced",
		ContentMix:  theme.ContentMix{Educational: 0.9, Personal: 0.9, Promotional: 0.9},
		PrimaryGoal: "authority",
	})
	if err == nil {
		t.Fatal("expected error")
	}
}

// TestThemeExportImportRoundTrip ensures a theme exported as YAML imports
// back under a new name.
func TestThemeExportImportRoundTrip(t *testing.T) {
	deps, _, _ := newTestDeps(t)
	ctx := context.Background()

	_, exported, err := domain.ExportThemeHandler(deps.Themes)(ctx, &mcp.CallToolRequest{}, domain.ExportThemeInput{Name: "storyteller"})
	if err != nil {
		t.Fatalf("export theme: %v", err)
	}
	if exported.Key != "storyteller" || exported.YAML == "" {
		t.Fatalf("unexpected export: %+v", exported)
	}

	yaml := strings.Replace(exported.YAML, "Storyteller", "Campfire Voice", 1)
	_, imported, err := domain.ImportThemeHandler(deps.Themes)(ctx, &mcp.CallToolRequest{}, domain.ImportThemeInput{YAML: yaml})
	if err != nil {
		t.Fatalf("import theme: %v", err)
	}
	if imported.Key != "campfire_voice" {
		t.Fatalf("imported key = %q", imported.Key)
	}
	if _, err := deps.Themes.Get("campfire_voice"); err != nil {
		t.Fatalf("imported theme not registered: %v", err)
	}
}

// TestListVariantsHandlerDefaultsToText ensures a blank post type lists the
// text table.
func TestListVariantsHandlerDefaultsToText(t *testing.T) {
	handler := domain.ListVariantsHandler()
	_, result, err := handler(context.Background(), &mcp.CallToolRequest{}, domain.ListVariantsInput{})
	if err != nil {
		t.Fatalf("list variants: %v", err)
	}
	if result.PostType != "text" {
		t.Fatalf("PostType = %q", result.PostType)
	}
	var style *domain.VariantAxis
	for i := range result.Axes {
		if result.Axes[i].Name == "style" {
			style = &result.Axes[i]
		}
	}
	if style == nil {
		t.Fatal("expected style axis")
	}
	found := false
	for _, option := range style.Options {
		if option == "story" {
			found = true
		}
	}
	if !found {
		t.Fatalf("expected story option, got %v", style.Options)
	}
}

// TestResolveVariantsHandlerRejectsUnknownPostType ensures bad post types
// fail.
func TestResolveVariantsHandlerRejectsUnknownPostType(t *testing.T) {
	deps, _, _ := newTestDeps(t)

	handler := domain.ResolveVariantsHandler(deps.Themes)
	_, _, err := handler(context.Background(), &mcp.CallToolRequest{}, domain.ResolveVariantsInput{PostType: "carousel"})
	if err == nil {
		t.Fatal("expected error")
	}
}

// TestResolveVariantsHandlerMergesLayers ensures selections fill from
// defaults and properties merge.
func TestResolveVariantsHandlerMergesLayers(t *testing.T) {
	deps, _, _ := newTestDeps(t)

	handler := domain.ResolveVariantsHandler(deps.Themes)
	_, result, err := handler(context.Background(), &mcp.CallToolRequest{}, domain.ResolveVariantsInput{
		Selections: map[string]string{"style": "story"},
		Theme:      "storyteller",
	})
	if err != nil {
		t.Fatalf("resolve variants: %v", err)
	}
	if result.Selections["style"] != "story" {
		t.Fatalf("style = %q", result.Selections["style"])
	}
	if result.Selections["tone"] == "" || result.Selections["length"] == "" {
		t.Fatalf("expected defaults filled, got %v", result.Selections)
	}
	if result.Properties["type"] != "text" {
		t.Fatalf("type property = %v", result.Properties["type"])
	}
	if result.Properties["structure"] != "story_arc" {
		t.Fatalf("structure property = %v", result.Properties["structure"])
	}
}

// TestSuggestVariantsHandler ensures goal suggestions come back.
func TestSuggestVariantsHandler(t *testing.T) {
	handler := domain.SuggestVariantsHandler()
	_, result, err := handler(context.Background(), &mcp.CallToolRequest{}, domain.SuggestVariantsInput{Goal: "engagement"})
	if err != nil {
		t.Fatalf("suggest variants: %v", err)
	}
	if result.Selections["style"] != "question" {
		t.Fatalf("style = %q", result.Selections["style"])
	}
}

// TestDraftListResourceHandler ensures the resource lists stored drafts.
func TestDraftListResourceHandler(t *testing.T) {
	_, drafts, _ := newTestDeps(t)
	ctx := context.Background()

	if _, err := drafts.CreateDraft(ctx, draft.CreateInput{Name: "Launch post"}); err != nil {
		t.Fatalf("create draft: %v", err)
	}

	handler := domain.DraftListResourceHandler(drafts)
	result, err := handler(ctx, &mcp.ReadResourceRequest{})
	if err != nil {
		t.Fatalf("read resource: %v", err)
	}
	if len(result.Contents) != 1 {
		t.Fatalf("contents = %d, want 1", len(result.Contents))
	}
	if result.Contents[0].MIMEType != "application/json" {
		t.Fatalf("mime = %q", result.Contents[0].MIMEType)
	}
	if !strings.Contains(result.Contents[0].Text, "Launch post") {
		t.Fatalf("expected draft in payload, got %q", result.Contents[0].Text)
	}
}

// TestThemeListResourceHandler ensures the resource serves the catalog.
func TestThemeListResourceHandler(t *testing.T) {
	deps, _, _ := newTestDeps(t)

	handler := domain.ThemeListResourceHandler(deps.Themes)
	result, err := handler(context.Background(), &mcp.ReadResourceRequest{})
	if err != nil {
		t.Fatalf("read resource: %v", err)
	}
	if !strings.Contains(result.Contents[0].Text, "Thought Leader") {
		t.Fatalf("expected catalog, got %q", result.Contents[0].Text)
	}
}

// TestVariantTableResourceHandler ensures the template serves per-type
// tables and rejects malformed URIs.
func TestVariantTableResourceHandler(t *testing.T) {
	handler := domain.VariantTableResourceHandler()

	result, err := handler(context.Background(), &mcp.ReadResourceRequest{
		Params: &mcp.ReadResourceParams{URI: "variants://poll"},
	})
	if err != nil {
		t.Fatalf("read resource: %v", err)
	}
	if result.Contents[0].URI != "variants://poll" {
		t.Fatalf("URI = %q", result.Contents[0].URI)
	}
	if !strings.Contains(result.Contents[0].Text, "question_type") {
		t.Fatalf("expected poll axes, got %q", result.Contents[0].Text)
	}

	tests := []struct {
		name string
		uri  string
	}{
		{name: "wrong scheme", uri: "drafts://poll"},
		{name: "missing post type", uri: "variants://"},
		{name: "placeholder", uri: "variants://_"},
		{name: "unknown post type", uri: "variants://carousel"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := handler(context.Background(), &mcp.ReadResourceRequest{
				Params: &mcp.ReadResourceParams{URI: tt.uri},
			}); err == nil {
				t.Fatal("expected error")
			}
		})
	}
}

// TestPostBriefPromptHandler ensures the prompt assembles theme and goal
// guidance.
func TestPostBriefPromptHandler(t *testing.T) {
	deps, _, _ := newTestDeps(t)

	handler := domain.PostBriefPromptHandler(deps.Themes)
	result, err := handler(context.Background(), &mcp.GetPromptRequest{
		Params: &mcp.GetPromptParams{
			Arguments: map[string]string{"theme": "Thought Leader", "goal": "authority"},
		},
	})
	if err != nil {
		t.Fatalf("post brief: %v", err)
	}
	if len(result.Messages) != 1 {
		t.Fatalf("messages = %d, want 1", len(result.Messages))
	}
	text, ok := result.Messages[0].Content.(*mcp.TextContent)
	if !ok {
		t.Fatalf("content type %T", result.Messages[0].Content)
	}
	if !strings.Contains(text.Text, "Thought Leader") {
		t.Fatalf("expected theme voice in brief, got %q", text.Text)
	}
	if !strings.Contains(text.Text, "style=insight") {
		t.Fatalf("expected variant suggestion in brief, got %q", text.Text)
	}
}

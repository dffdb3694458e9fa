package domain

import (
	"context"
	"fmt"

	"github.com/louisbranch/postforge/internal/draft"
	"github.com/louisbranch/postforge/internal/linkedin"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// Publisher is the slice of the LinkedIn client the publish tools need.
type Publisher interface {
	CreatePost(ctx context.Context, text string, visibility linkedin.Visibility) (string, error)
	CreateMediaPost(ctx context.Context, text string, visibility linkedin.Visibility, media ...linkedin.Media) (string, error)
	CreatePollPost(ctx context.Context, text string, visibility linkedin.Visibility, poll linkedin.Poll) (string, error)
	UploadImage(ctx context.Context, path string) (string, error)
	UploadDocument(ctx context.Context, path string) (string, error)
	Userinfo(ctx context.Context) (linkedin.Userinfo, error)
}

// PublishDraftInput represents the MCP tool input for publishing a draft.
type PublishDraftInput struct {
	DraftID      string `json:"draft_id,omitempty" jsonschema:"draft identifier (defaults to the active draft)"`
	Visibility   string `json:"visibility,omitempty" jsonschema:"who can see the post (PUBLIC, CONNECTIONS, LOGGED_IN; defaults to PUBLIC)"`
	DryRun       bool   `json:"dry_run,omitempty" jsonschema:"report what would be published without posting"`
	MediaPath    string `json:"media_path,omitempty" jsonschema:"local image or document to attach"`
	MediaTitle   string `json:"media_title,omitempty" jsonschema:"title for the attached media"`
	MediaAltText string `json:"media_alt_text,omitempty" jsonschema:"alt text for an attached image"`
	PollDuration string `json:"poll_duration,omitempty" jsonschema:"poll duration (ONE_DAY, THREE_DAYS, SEVEN_DAYS, FOURTEEN_DAYS; defaults to THREE_DAYS)"`
}

// PublishDraftResult represents the MCP tool output for publishing a draft.
type PublishDraftResult struct {
	DraftID    string `json:"draft_id" jsonschema:"draft that was published"`
	PostURN    string `json:"post_urn,omitempty" jsonschema:"URN of the created post, empty on a dry run"`
	Visibility string `json:"visibility" jsonschema:"visibility the post was published with"`
	Characters int    `json:"characters" jsonschema:"character count of the published text"`
	DryRun     bool   `json:"dry_run,omitempty" jsonschema:"whether this was a dry run"`
	Text       string `json:"text,omitempty" jsonschema:"text that would be published, dry runs only"`
}

// PublishDraftTool defines the MCP tool schema for publishing a draft.
func PublishDraftTool() *mcp.Tool {
	return &mcp.Tool{
		Name:        "publish_draft",
		Description: "Composes a draft and publishes it to LinkedIn as a text, media, or poll post",
	}
}

// PublishDraftHandler executes a publish request. Poll drafts with a poll
// mock-up publish as native polls; a media path uploads the file first and
// attaches the resulting asset.
func PublishDraftHandler(drafts *draft.Service, publisher Publisher) mcp.ToolHandlerFor[PublishDraftInput, PublishDraftResult] {
	return func(ctx context.Context, _ *mcp.CallToolRequest, input PublishDraftInput) (*mcp.CallToolResult, PublishDraftResult, error) {
		visibility, err := linkedin.ParseVisibility(input.Visibility)
		if err != nil {
			return nil, PublishDraftResult{}, fmt.Errorf("publish draft: %w", err)
		}
		d, res, poll, err := drafts.ComposeForPublish(ctx, input.DraftID)
		if err != nil {
			return nil, PublishDraftResult{}, fmt.Errorf("publish draft: %w", err)
		}
		out := PublishDraftResult{
			DraftID:    d.ID,
			Visibility: string(visibility),
			Characters: len([]rune(res.Text)),
		}
		if input.DryRun {
			out.DryRun = true
			out.Text = res.Text
			return nil, out, nil
		}
		var urn string
		switch {
		case poll != nil:
			urn, err = publisher.CreatePollPost(ctx, res.Text, visibility, linkedin.Poll{
				Question: poll.Question,
				Options:  poll.Options,
				Duration: input.PollDuration,
			})
		case input.MediaPath != "":
			urn, err = publishWithMedia(ctx, publisher, res.Text, visibility, input)
		default:
			urn, err = publisher.CreatePost(ctx, res.Text, visibility)
		}
		if err != nil {
			return nil, PublishDraftResult{}, fmt.Errorf("publish draft: %w", err)
		}
		out.PostURN = urn
		return nil, out, nil
	}
}

func publishWithMedia(ctx context.Context, publisher Publisher, text string, visibility linkedin.Visibility, input PublishDraftInput) (string, error) {
	kind, err := linkedin.MediaKindForPath(input.MediaPath)
	if err != nil {
		return "", err
	}
	var urn string
	switch kind {
	case "image":
		urn, err = publisher.UploadImage(ctx, input.MediaPath)
	default:
		urn, err = publisher.UploadDocument(ctx, input.MediaPath)
	}
	if err != nil {
		return "", err
	}
	return publisher.CreateMediaPost(ctx, text, visibility, linkedin.Media{
		URN:     urn,
		Title:   input.MediaTitle,
		AltText: input.MediaAltText,
	})
}

// LinkedInUserinfoInput represents the MCP tool input for the profile check.
type LinkedInUserinfoInput struct{}

// LinkedInUserinfoTool defines the MCP tool schema for the profile check.
func LinkedInUserinfoTool() *mcp.Tool {
	return &mcp.Tool{
		Name:        "linkedin_userinfo",
		Description: "Verifies LinkedIn credentials and returns the profile behind the access token",
	}
}

// LinkedInUserinfoHandler executes a profile check request.
func LinkedInUserinfoHandler(publisher Publisher) mcp.ToolHandlerFor[LinkedInUserinfoInput, linkedin.Userinfo] {
	return func(ctx context.Context, _ *mcp.CallToolRequest, _ LinkedInUserinfoInput) (*mcp.CallToolResult, linkedin.Userinfo, error) {
		info, err := publisher.Userinfo(ctx)
		if err != nil {
			return nil, linkedin.Userinfo{}, fmt.Errorf("linkedin userinfo: %w", err)
		}
		return nil, info, nil
	}
}

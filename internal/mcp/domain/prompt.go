package domain

import (
	"context"
	"fmt"
	"strings"

	"github.com/louisbranch/postforge/internal/compose/theme"
	"github.com/louisbranch/postforge/internal/compose/variant"
	"github.com/louisbranch/postforge/internal/tokens"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// PostBriefPrompt defines the MCP prompt schema for a post-writing brief.
func PostBriefPrompt() *mcp.Prompt {
	return &mcp.Prompt{
		Name:        "post_brief",
		Description: "Builds a writing brief from a theme and goal: voice, structure, and which tools to use.",
		Arguments: []*mcp.PromptArgument{
			{Name: "theme", Description: "Theme to write in", Required: false},
			{Name: "goal", Description: "What the post should achieve", Required: false},
		},
	}
}

// PostBriefPromptHandler assembles the brief from the theme registry and
// the variant suggestions for the stated goal.
func PostBriefPromptHandler(themes *theme.Manager) mcp.PromptHandler {
	return func(ctx context.Context, req *mcp.GetPromptRequest) (*mcp.GetPromptResult, error) {
		themeName := ""
		goal := ""
		if req != nil && req.Params != nil && req.Params.Arguments != nil {
			themeName = req.Params.Arguments["theme"]
			goal = req.Params.Arguments["goal"]
		}
		if themeName == "" && goal != "" {
			if recommended := themes.Recommend(goal); len(recommended) > 0 {
				themeName = recommended[0]
			}
		}

		lines := []string{"Write a LinkedIn post using the draft tools."}
		if themeName != "" {
			th, err := themes.Get(theme.Key(themeName))
			if err != nil {
				return nil, fmt.Errorf("post brief: %w", err)
			}
			lines = append(lines,
				fmt.Sprintf("Voice: %s (%s). Tone: %s. Emoji level: %s.",
					th.Name, th.Description, th.Tone, th.EmojiLevel),
				fmt.Sprintf("Create the draft with theme %q so composition applies this voice.", theme.Key(themeName)),
			)
			lines = append(lines, hookGuidance(th.HookStyle))
			lines = append(lines, ctaGuidance(th.CTAStyle))
			tags := tokens.HashtagCount(th.HashtagStrategy)
			lines = append(lines, fmt.Sprintf("Use %d to %d hashtags.", tags.Min, tags.Max))
			if len(th.PreferredStructures) > 0 {
				structure := th.PreferredStructures[0]
				profile := tokens.StructureFormatFor(structure)
				lines = append(lines, fmt.Sprintf("Structure the body as %s: %s.", structure, strings.ToLower(profile.Description)))
			}
			if budget := tokens.EmojiCount(100, th.EmojiLevel); budget > 0 {
				lines = append(lines, fmt.Sprintf("Budget roughly %d emojis per 100 words.", budget))
			}
		}
		if goal != "" {
			selections := variant.Suggest("text", goal)
			pairs := make([]string, 0, len(selections))
			for _, axis := range []string{"style", "tone", "length"} {
				if option, ok := selections[axis]; ok {
					pairs = append(pairs, fmt.Sprintf("%s=%s", axis, option))
				}
			}
			if len(pairs) > 0 {
				lines = append(lines, fmt.Sprintf("Goal: %s. Suggested variants: %s.", goal, strings.Join(pairs, ", ")))
			} else {
				lines = append(lines, fmt.Sprintf("Goal: %s.", goal))
			}
			if option, ok := selections["length"]; ok {
				span := tokens.IdealLength(option)
				lines = append(lines, fmt.Sprintf("Target %d to %d characters.", span.Min, span.Max))
			}
		}
		lines = append(lines,
			"Open with add_hook (the first 210 characters decide whether readers expand the post).",
			"Add the argument with add_body, then close with add_cta and add_hashtags.",
			"Run compose_post and preview_post before publishing; the post must stay under 3000 characters.",
		)

		return &mcp.GetPromptResult{
			Messages: []*mcp.PromptMessage{
				{
					Role: "user",
					Content: &mcp.TextContent{
						Text: strings.Join(lines, "\n"),
					},
				},
			},
		}, nil
	}
}

// hookGuidance describes how well a hook style performs and shows an
// example opener.
func hookGuidance(style string) string {
	power := tokens.HookPower(style)
	if profile, ok := tokens.Hooks[style]; ok && len(profile.Examples) > 0 {
		return fmt.Sprintf("Open with a %s hook (%.2f engagement), e.g. %q.", style, power, profile.Examples[0])
	}
	return fmt.Sprintf("Open with a %s hook (%.2f engagement).", style, power)
}

// ctaGuidance describes how well a call-to-action style performs and shows
// an example closer.
func ctaGuidance(style string) string {
	power := tokens.CTAPower(style)
	if profile, ok := tokens.CTAStyles[style]; ok && len(profile.Examples) > 0 {
		return fmt.Sprintf("Close with a %s call-to-action (%.2f engagement), e.g. %q.", style, power, profile.Examples[0])
	}
	return fmt.Sprintf("Close with a %s call-to-action (%.2f engagement).", style, power)
}

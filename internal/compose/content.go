package compose

import (
	"strings"

	"github.com/louisbranch/postforge/internal/compose/theme"
	"github.com/louisbranch/postforge/internal/tokens"
)

// Hook is the opening line of a post. Types: question, stat, story,
// controversy, list, curiosity.
type Hook struct {
	Type    string
	Content string
	theme   *theme.Theme
}

func (h *Hook) Kind() Kind { return KindHook }

func (h *Hook) Render(th *theme.Theme) string {
	th = pickTheme(th, h.theme)
	rendered := h.Content
	if th != nil && h.Type == "controversy" {
		if th.ControversyLevel == "bold" || th.ControversyLevel == "provocative" {
			rendered = "🚨 " + rendered
		}
	}
	return rendered
}

func (h *Hook) Validate() bool {
	n := runeLen(h.Content)
	return n > 0 && n <= 200
}

// Body is the main content block. Structures: linear, listicle, framework,
// story_arc, comparison.
type Body struct {
	Content   string
	Structure string
	theme     *theme.Theme
}

func (b *Body) Kind() Kind { return KindBody }

func (b *Body) Render(th *theme.Theme) string {
	th = pickTheme(th, b.theme)
	switch b.Structure {
	case "listicle":
		return b.renderListicle(th)
	case "framework":
		return b.renderFramework(th)
	case "story_arc":
		return b.renderStoryArc(th)
	case "comparison":
		return b.renderComparison()
	default:
		return b.renderLinear(th)
	}
}

func (b *Body) renderLinear(th *theme.Theme) string {
	if th == nil {
		return b.Content
	}
	breaks := strings.Repeat("\n", tokens.LineBreakCount(th.LineBreakStyle))
	return strings.Join(strings.Split(b.Content, "\n\n"), breaks)
}

func (b *Body) renderListicle(th *theme.Theme) string {
	symbol := tokens.Symbol("arrow", "→")
	if th != nil && th.EmojiLevel == "none" {
		symbol = "-"
	}
	var lines []string
	for _, line := range strings.Split(strings.TrimSpace(b.Content), "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		if hasListPrefix(line) {
			lines = append(lines, line)
		} else {
			lines = append(lines, symbol+" "+line)
		}
	}
	return strings.Join(lines, "\n")
}

func hasListPrefix(line string) bool {
	for _, prefix := range []string{"→", "-", "•", "✓"} {
		if strings.HasPrefix(line, prefix) {
			return true
		}
	}
	return false
}

func (b *Body) renderFramework(th *theme.Theme) string {
	symbol := tokens.Symbol("pin", "📌")
	if th != nil && (th.EmojiLevel == "none" || th.EmojiLevel == "minimal") {
		symbol = "•"
	}
	var parts []string
	for _, part := range strings.Split(b.Content, "||") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		parts = append(parts, symbol+" "+part)
	}
	return strings.Join(parts, "\n\n")
}

func (b *Body) renderStoryArc(th *theme.Theme) string {
	breaks := "\n\n"
	if th != nil && th.LineBreakStyle == "extreme" {
		breaks = "\n\n\n"
	}
	var paragraphs []string
	for _, p := range strings.Split(b.Content, "\n\n") {
		p = strings.TrimSpace(p)
		if p == "" {
			continue
		}
		paragraphs = append(paragraphs, p)
	}
	return strings.Join(paragraphs, breaks)
}

func (b *Body) renderComparison() string {
	parts := strings.Split(b.Content, "||")
	if len(parts) == 2 {
		return "❌ " + strings.TrimSpace(parts[0]) + "\n\n✅ " + strings.TrimSpace(parts[1])
	}
	return b.Content
}

func (b *Body) Validate() bool {
	n := runeLen(b.Content)
	return n > 0 && n <= 2800
}

// CallToAction closes a post with an engagement prompt. Types: direct,
// curiosity, action, share, soft.
type CallToAction struct {
	Type  string
	Text  string
	theme *theme.Theme
}

func (c *CallToAction) Kind() Kind { return KindCallToAction }

func (c *CallToAction) Render(th *theme.Theme) string {
	th = pickTheme(th, c.theme)
	if th != nil {
		switch th.EmojiLevel {
		case "moderate", "expressive", "heavy":
			if emoji, ok := tokens.CTAEmojis[c.Type]; ok {
				return emoji + " " + c.Text
			}
		}
	}
	return c.Text
}

func (c *CallToAction) Validate() bool {
	n := runeLen(c.Text)
	return n > 0 && n <= 200
}

// Hashtags renders the tag list, capped by the theme's hashtag strategy.
// Placement is carried for draft metadata; the composer already separates
// sections with a blank line, so placement does not change the rendered
// text.
type Hashtags struct {
	Tags      []string
	Placement string
	theme     *theme.Theme
}

func (h *Hashtags) Kind() Kind { return KindHashtags }

func (h *Hashtags) Render(th *theme.Theme) string {
	th = pickTheme(th, h.theme)
	maxTags := 5
	if th != nil && th.HashtagStrategy == "minimal" {
		maxTags = 3
	}
	tags := h.Tags
	if len(tags) > maxTags {
		tags = tags[:maxTags]
	}
	parts := make([]string, 0, len(tags))
	for _, tag := range tags {
		parts = append(parts, "#"+tag)
	}
	return strings.Join(parts, " ")
}

func (h *Hashtags) Validate() bool {
	if len(h.Tags) == 0 {
		return false
	}
	for _, tag := range h.Tags {
		if tag == "" {
			return false
		}
	}
	return true
}

// Separator is a visual break between sections. Styles: line, dots, wave,
// heavy, double, minimal.
type Separator struct {
	Style string
}

func (s *Separator) Kind() Kind { return KindSeparator }

func (s *Separator) Render(*theme.Theme) string {
	return tokens.Separator(s.Style)
}

func (s *Separator) Validate() bool { return true }

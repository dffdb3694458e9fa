package compose

import (
	"fmt"
	"strings"

	"github.com/louisbranch/postforge/internal/compose/theme"
	"github.com/louisbranch/postforge/internal/compose/variant"
	"github.com/louisbranch/postforge/internal/tokens"
)

// LengthExceededError reports a composed post over the platform character
// limit.
type LengthExceededError struct {
	Length int
	Limit  int
}

func (e *LengthExceededError) Error() string {
	return fmt.Sprintf("post exceeds %d character limit: %d chars", e.Limit, e.Length)
}

// Post assembles components into a LinkedIn post. Components render in
// insertion order; the ones that fail validation are skipped. The optional
// theme is shared with every component added after it is set.
type Post struct {
	PostType   string
	Theme      *theme.Theme
	Config     variant.Properties
	Components []Component
}

// NewPost returns an empty post of the given type. Theme and config may be
// nil.
func NewPost(postType string, th *theme.Theme, config variant.Properties) *Post {
	return &Post{PostType: postType, Theme: th, Config: config}
}

// AddComponent appends a prebuilt component.
func (p *Post) AddComponent(c Component) *Post {
	p.Components = append(p.Components, c)
	return p
}

// AddHook appends an opening hook.
func (p *Post) AddHook(hookType, content string) *Post {
	return p.AddComponent(&Hook{Type: hookType, Content: content, theme: p.Theme})
}

// AddBody appends a content body. An empty structure falls back to the
// resolved variant config, then to linear.
func (p *Post) AddBody(content, structure string) *Post {
	if structure == "" {
		structure = "linear"
		if s, ok := p.Config["structure"].(string); ok && s != "" {
			structure = s
		}
	}
	return p.AddComponent(&Body{Content: content, Structure: structure, theme: p.Theme})
}

// AddCTA appends a call-to-action.
func (p *Post) AddCTA(ctaType, text string) *Post {
	return p.AddComponent(&CallToAction{Type: ctaType, Text: text, theme: p.Theme})
}

// AddHashtags appends a hashtag block. An empty placement defaults to end.
func (p *Post) AddHashtags(tags []string, placement string) *Post {
	if placement == "" {
		placement = "end"
	}
	return p.AddComponent(&Hashtags{Tags: tags, Placement: placement, theme: p.Theme})
}

// AddSeparator appends a visual break. An empty style defaults to line.
func (p *Post) AddSeparator(style string) *Post {
	if style == "" {
		style = "line"
	}
	return p.AddComponent(&Separator{Style: style})
}

// AddBarChart appends a horizontal bar chart.
func (p *Post) AddBarChart(items []BarItem, title, unit string) *Post {
	return p.AddComponent(&BarChart{Items: items, Title: title, Unit: unit, theme: p.Theme})
}

// AddMetricsChart appends a KPI chart.
func (p *Post) AddMetricsChart(metrics []Metric, title string) *Post {
	return p.AddComponent(&MetricsChart{Metrics: metrics, Title: title, theme: p.Theme})
}

// AddComparisonChart appends a side-by-side comparison.
func (p *Post) AddComparisonChart(sides []ComparisonSide, title string) *Post {
	return p.AddComponent(&ComparisonChart{Sides: sides, Title: title, theme: p.Theme})
}

// AddProgressChart appends completion bars.
func (p *Post) AddProgressChart(items []ProgressItem, title string) *Post {
	return p.AddComponent(&ProgressChart{Items: items, Title: title, theme: p.Theme})
}

// AddRankingChart appends a leaderboard.
func (p *Post) AddRankingChart(entries []RankingEntry, title string, showMedals bool) *Post {
	return p.AddComponent(&RankingChart{Entries: entries, Title: title, ShowMedals: showMedals, theme: p.Theme})
}

// AddQuote appends a quotation with attribution.
func (p *Post) AddQuote(text, author, source string) *Post {
	return p.AddComponent(&Quote{Text: text, Author: author, Source: source, theme: p.Theme})
}

// AddBigStat appends a headline number.
func (p *Post) AddBigStat(number, label, context string) *Post {
	return p.AddComponent(&BigStat{Number: number, Label: label, Context: context, theme: p.Theme})
}

// AddTimeline appends a step display. An empty style defaults to arrow.
func (p *Post) AddTimeline(steps []TimelineStep, title, style string) *Post {
	if style == "" {
		style = "arrow"
	}
	return p.AddComponent(&Timeline{Steps: steps, Title: title, Style: style, theme: p.Theme})
}

// AddKeyTakeaway appends an insight box. Empty title and style default to
// KEY TAKEAWAY and box.
func (p *Post) AddKeyTakeaway(message, title, style string) *Post {
	if title == "" {
		title = "KEY TAKEAWAY"
	}
	if style == "" {
		style = "box"
	}
	return p.AddComponent(&KeyTakeaway{Message: message, Title: title, Style: style, theme: p.Theme})
}

// AddProCon appends a pros and cons comparison.
func (p *Post) AddProCon(pros, cons []string, title string) *Post {
	return p.AddComponent(&ProCon{Pros: pros, Cons: cons, Title: title, theme: p.Theme})
}

// AddChecklist appends a checklist.
func (p *Post) AddChecklist(items []ChecklistItem, title string, showProgress bool) *Post {
	return p.AddComponent(&Checklist{Items: items, Title: title, ShowProgress: showProgress, theme: p.Theme})
}

// AddBeforeAfter appends a transformation comparison. Empty labels default
// to BEFORE and AFTER.
func (p *Post) AddBeforeAfter(before, after []string, title, beforeLabel, afterLabel string) *Post {
	return p.AddComponent(&BeforeAfter{
		Before:      before,
		After:       after,
		Title:       title,
		BeforeLabel: beforeLabel,
		AfterLabel:  afterLabel,
		theme:       p.Theme,
	})
}

// AddTipBox appends a highlighted note. An empty style defaults to info.
func (p *Post) AddTipBox(message, title, style string) *Post {
	if style == "" {
		style = "info"
	}
	return p.AddComponent(&TipBox{Message: message, Title: title, Style: style, theme: p.Theme})
}

// AddStatsGrid appends a stat grid. Zero columns defaults to two.
func (p *Post) AddStatsGrid(stats []Stat, title string, columns int) *Post {
	if columns == 0 {
		columns = 2
	}
	return p.AddComponent(&StatsGrid{Stats: stats, Title: title, Columns: columns, theme: p.Theme})
}

// AddPollPreview appends a poll sketch.
func (p *Post) AddPollPreview(question string, options []string) *Post {
	return p.AddComponent(&PollPreview{Question: question, Options: options, theme: p.Theme})
}

// AddFeatureList appends product or service highlights.
func (p *Post) AddFeatureList(features []Feature, title string) *Post {
	return p.AddComponent(&FeatureList{Features: features, Title: title, theme: p.Theme})
}

// AddNumberedList appends an ordered list. Empty style defaults to
// numbers, zero start to 1.
func (p *Post) AddNumberedList(items []string, title, style string, start int) *Post {
	if style == "" {
		style = "numbers"
	}
	if start == 0 {
		start = 1
	}
	return p.AddComponent(&NumberedList{Items: items, Title: title, Style: style, Start: start, theme: p.Theme})
}

// Result is a composed post plus the kinds of components dropped by
// validation.
type Result struct {
	Text    string
	Skipped []Kind
}

// ComposeResult renders every valid component in insertion order, joins
// the sections with blank lines, and reports which components were
// skipped. Posts over the character limit fail with LengthExceededError;
// the result still carries the rendered text so callers can report how
// far over the post ran.
func (p *Post) ComposeResult() (Result, error) {
	var sections []string
	var skipped []Kind
	for _, c := range p.Components {
		if !c.Validate() {
			skipped = append(skipped, c.Kind())
			continue
		}
		sections = append(sections, c.Render(p.Theme))
	}
	text := strings.Join(sections, "\n\n")
	res := Result{Text: text, Skipped: skipped}
	if n := runeLen(text); n > tokens.MaxPostLength {
		return res, &LengthExceededError{Length: n, Limit: tokens.MaxPostLength}
	}
	return res, nil
}

// Compose renders the final post text, discarding the skip list.
func (p *Post) Compose() (string, error) {
	res, err := p.ComposeResult()
	if err != nil {
		return "", err
	}
	return res.Text, nil
}

// Preview returns what readers see above the fold: the first chars
// characters plus an ellipsis when the text runs longer.
func (p *Post) Preview(chars int) (string, error) {
	text, err := p.Compose()
	if err != nil {
		return "", err
	}
	return Truncate(text, chars), nil
}

// Truncate cuts text after chars characters, appending an ellipsis when
// anything was trimmed.
func Truncate(text string, chars int) string {
	runes := []rune(text)
	if len(runes) <= chars {
		return text
	}
	return string(runes[:chars]) + "..."
}

// OptimizeForEngagement makes sure a themed post opens with a hook and
// closes with a call-to-action. The inserted hook carries no content, so
// it is dropped again at composition; only the closing prompt survives.
func (p *Post) OptimizeForEngagement() *Post {
	if p.Theme == nil {
		return p
	}
	hasHook, hasCTA := false, false
	for _, c := range p.Components {
		switch c.Kind() {
		case KindHook:
			hasHook = true
		case KindCallToAction:
			hasCTA = true
		}
	}
	if !hasHook {
		hook := &Hook{Type: p.Theme.HookStyle, theme: p.Theme}
		p.Components = append([]Component{hook}, p.Components...)
	}
	if !hasCTA {
		p.AddCTA(p.Theme.CTAStyle, "What's your take?")
	}
	return p
}

// ExportedComponent is one rendered component in a post export.
type ExportedComponent struct {
	Type    Kind   `json:"type"`
	Content string `json:"content"`
}

// Export is a serializable snapshot of a composed post.
type Export struct {
	PostType       string              `json:"post_type"`
	Theme          string              `json:"theme,omitempty"`
	Components     []ExportedComponent `json:"components"`
	FinalText      string              `json:"final_text"`
	CharacterCount int                 `json:"character_count"`
	Preview        string              `json:"preview"`
}

// Export snapshots the post. Every component is rendered, including the
// ones composition would skip; the final text carries only the valid ones.
func (p *Post) Export() (Export, error) {
	text, err := p.Compose()
	if err != nil {
		return Export{}, err
	}
	components := make([]ExportedComponent, 0, len(p.Components))
	for _, c := range p.Components {
		components = append(components, ExportedComponent{Type: c.Kind(), Content: c.Render(p.Theme)})
	}
	themeName := ""
	if p.Theme != nil {
		themeName = p.Theme.Name
	}
	return Export{
		PostType:       p.PostType,
		Theme:          themeName,
		Components:     components,
		FinalText:      text,
		CharacterCount: runeLen(text),
		Preview:        Truncate(text, tokens.TruncationPoint),
	}, nil
}

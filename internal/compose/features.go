package compose

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/louisbranch/postforge/internal/compose/theme"
	"github.com/louisbranch/postforge/internal/tokens"
)

// Quote renders a quotation with attribution.
type Quote struct {
	Text   string
	Author string
	Source string
	theme  *theme.Theme
}

func (q *Quote) Kind() Kind { return KindQuote }

func (q *Quote) Render(*theme.Theme) string {
	lines := []string{tokens.Symbol("quote", "💬") + " \"" + q.Text + "\""}
	if q.Source != "" {
		lines = append(lines, "   — "+q.Author+", "+q.Source)
	} else {
		lines = append(lines, "   — "+q.Author)
	}
	return strings.Join(lines, "\n")
}

func (q *Quote) Validate() bool {
	n := runeLen(q.Text)
	return n > 0 && n <= 500 && len(q.Author) > 0
}

// BigStat puts one number front and center, with a label and optional
// context line.
type BigStat struct {
	Number  string
	Label   string
	Context string
	theme   *theme.Theme
}

func (b *BigStat) Kind() Kind { return KindBigStat }

func (b *BigStat) Render(*theme.Theme) string {
	lines := []string{
		tokens.ChartEmoji("metrics", "📈") + " " + b.Number,
		b.Label,
	}
	if b.Context != "" {
		lines = append(lines, "", b.Context)
	}
	return strings.Join(lines, "\n")
}

func (b *BigStat) Validate() bool {
	return len(b.Number) > 0 && len(b.Label) > 0
}

// TimelineStep is one entry of a timeline.
type TimelineStep struct {
	Label  string
	Detail string
}

// Timeline renders a process or progression. Styles: arrow, numbered,
// dated.
type Timeline struct {
	Steps []TimelineStep
	Title string
	Style string
	theme *theme.Theme
}

func (t *Timeline) Kind() Kind { return KindTimeline }

func (t *Timeline) Render(*theme.Theme) string {
	var lines []string
	if t.Title != "" {
		lines = append(lines, tokens.Symbol("calendar", "📅")+" "+strings.ToUpper(t.Title)+":", "")
	}
	for idx, step := range t.Steps {
		switch t.Style {
		case "numbered":
			lines = append(lines, strconv.Itoa(idx+1)+". "+step.Label+": "+step.Detail)
		case "dated":
			lines = append(lines, step.Label+" | "+step.Detail)
		default:
			lines = append(lines, step.Label+" "+tokens.Symbol("arrow", "→")+" "+step.Detail)
		}
	}
	return strings.Join(lines, "\n")
}

func (t *Timeline) Validate() bool {
	switch t.Style {
	case "arrow", "numbered", "dated":
		return len(t.Steps) >= 2
	}
	return false
}

// KeyTakeaway highlights the main point. Styles: box (titled), highlight
// (inline emoji), simple (bare message).
type KeyTakeaway struct {
	Message string
	Title   string
	Style   string
	theme   *theme.Theme
}

func (k *KeyTakeaway) Kind() Kind { return KindKeyTakeaway }

func (k *KeyTakeaway) Render(*theme.Theme) string {
	emoji := tokens.Symbol("lightbulb", "💡")
	switch k.Style {
	case "highlight":
		return emoji + " " + k.Message
	case "simple":
		return k.Message
	default:
		return emoji + " " + k.Title + ":\n\n" + k.Message
	}
}

func (k *KeyTakeaway) Validate() bool {
	n := runeLen(k.Message)
	if n == 0 || n > 500 {
		return false
	}
	switch k.Style {
	case "box", "highlight", "simple":
		return true
	}
	return false
}

// ProCon weighs both sides of a decision.
type ProCon struct {
	Pros  []string
	Cons  []string
	Title string
	theme *theme.Theme
}

func (p *ProCon) Kind() Kind { return KindProCon }

func (p *ProCon) Render(*theme.Theme) string {
	var lines []string
	if p.Title != "" {
		lines = append(lines, tokens.ChartEmoji("comparison", "⚖️")+" "+strings.ToUpper(p.Title)+":", "")
	}
	bullet := tokens.Symbol("bullet", "•")
	lines = append(lines, tokens.Indicator("positive", "✅")+" PROS:")
	for _, pro := range p.Pros {
		lines = append(lines, bullet+" "+pro)
	}
	lines = append(lines, "", tokens.Indicator("negative", "❌")+" CONS:")
	for _, con := range p.Cons {
		lines = append(lines, bullet+" "+con)
	}
	return strings.Join(lines, "\n")
}

func (p *ProCon) Validate() bool {
	return allNonBlank(p.Pros) && allNonBlank(p.Cons)
}

func allNonBlank(items []string) bool {
	if len(items) == 0 {
		return false
	}
	for _, item := range items {
		if strings.TrimSpace(item) == "" {
			return false
		}
	}
	return true
}

// ChecklistItem is one entry of a checklist.
type ChecklistItem struct {
	Text    string
	Checked bool
}

// Checklist renders action items with check marks, optionally preceded by
// a completion tally.
type Checklist struct {
	Items        []ChecklistItem
	Title        string
	ShowProgress bool
	theme        *theme.Theme
}

func (c *Checklist) Kind() Kind { return KindChecklist }

func (c *Checklist) Render(*theme.Theme) string {
	var lines []string
	if c.Title != "" {
		lines = append(lines, tokens.Symbol("checklist", "✓")+" "+strings.ToUpper(c.Title)+":", "")
	}
	if c.ShowProgress {
		completed := 0
		for _, item := range c.Items {
			if item.Checked {
				completed++
			}
		}
		lines = append(lines, fmt.Sprintf("Progress: %d/%d complete", completed, len(c.Items)), "")
	}
	checked := tokens.Symbol("checkmark", "✅")
	unchecked := tokens.Symbol("checkbox", "☐")
	for _, item := range c.Items {
		mark := unchecked
		if item.Checked {
			mark = checked
		}
		lines = append(lines, mark+" "+item.Text)
	}
	return strings.Join(lines, "\n")
}

func (c *Checklist) Validate() bool {
	if len(c.Items) == 0 {
		return false
	}
	for _, item := range c.Items {
		if item.Text == "" {
			return false
		}
	}
	return true
}

// BeforeAfter contrasts a starting state with an outcome. Labels default
// to BEFORE and AFTER.
type BeforeAfter struct {
	Before      []string
	After       []string
	Title       string
	BeforeLabel string
	AfterLabel  string
	theme       *theme.Theme
}

func (b *BeforeAfter) Kind() Kind { return KindBeforeAfter }

func (b *BeforeAfter) Render(*theme.Theme) string {
	var lines []string
	if b.Title != "" {
		lines = append(lines, tokens.Symbol("transformation", "🔄")+" "+strings.ToUpper(b.Title)+":", "")
	}
	beforeLabel := b.BeforeLabel
	if beforeLabel == "" {
		beforeLabel = "BEFORE"
	}
	afterLabel := b.AfterLabel
	if afterLabel == "" {
		afterLabel = "AFTER"
	}
	lines = append(lines, "❌ "+beforeLabel+":")
	for _, item := range b.Before {
		lines = append(lines, "• "+item)
	}
	lines = append(lines, "", "✅ "+afterLabel+":")
	for _, item := range b.After {
		lines = append(lines, "• "+item)
	}
	return strings.Join(lines, "\n")
}

func (b *BeforeAfter) Validate() bool {
	return allNonBlank(b.Before) && allNonBlank(b.After)
}

// tipStyles maps tip box styles to their emoji and default title.
var tipStyles = map[string]struct {
	emoji string
	title string
}{
	"info":    {"ℹ️", "INFO"},
	"tip":     {"💡", "PRO TIP"},
	"warning": {"⚠️", "WARNING"},
	"success": {"✅", "SUCCESS"},
}

// TipBox sets a note apart with blank lines around it. Styles: info, tip,
// warning, success.
type TipBox struct {
	Message string
	Title   string
	Style   string
	theme   *theme.Theme
}

func (t *TipBox) Kind() Kind { return KindTipBox }

func (t *TipBox) Render(*theme.Theme) string {
	style, ok := tipStyles[t.Style]
	if !ok {
		style.emoji = "💡"
		style.title = "TIP"
	}
	title := t.Title
	if title == "" {
		title = style.title
	}
	lines := []string{
		"",
		style.emoji + " " + strings.ToUpper(title) + ":",
		"",
		t.Message,
		"",
	}
	return strings.Join(lines, "\n")
}

func (t *TipBox) Validate() bool {
	if strings.TrimSpace(t.Message) == "" {
		return false
	}
	_, ok := tipStyles[t.Style]
	return ok
}

// Stat is one cell of a stats grid.
type Stat struct {
	Label string
	Value string
}

// StatsGrid renders stats in rows of Columns cells separated by pipes.
type StatsGrid struct {
	Stats   []Stat
	Title   string
	Columns int
	theme   *theme.Theme
}

func (s *StatsGrid) Kind() Kind { return KindStatsGrid }

func (s *StatsGrid) Render(*theme.Theme) string {
	lines := chartTitle(nil, "stats", s.Title)
	for i := 0; i < len(s.Stats); i += s.Columns {
		end := i + s.Columns
		if end > len(s.Stats) {
			end = len(s.Stats)
		}
		parts := make([]string, 0, end-i)
		for _, stat := range s.Stats[i:end] {
			parts = append(parts, stat.Label+": "+stat.Value)
		}
		lines = append(lines, strings.Join(parts, "  |  "))
	}
	return strings.Join(lines, "\n")
}

func (s *StatsGrid) Validate() bool {
	if len(s.Stats) < 2 || s.Columns < 1 || s.Columns > 4 {
		return false
	}
	for _, stat := range s.Stats {
		if strings.TrimSpace(stat.Label) == "" || strings.TrimSpace(stat.Value) == "" {
			return false
		}
	}
	return true
}

// PollPreview sketches a poll inside post text, pointing readers at the
// real poll.
type PollPreview struct {
	Question string
	Options  []string
	theme    *theme.Theme
}

func (p *PollPreview) Kind() Kind { return KindPollPreview }

func (p *PollPreview) Render(*theme.Theme) string {
	lines := []string{
		tokens.Symbol("poll", "📊") + " POLL:",
		"",
		p.Question,
		"",
	}
	for _, option := range p.Options {
		lines = append(lines, "◯ "+option)
	}
	lines = append(lines, "", "💬 Vote in the poll below!")
	return strings.Join(lines, "\n")
}

func (p *PollPreview) Validate() bool {
	if strings.TrimSpace(p.Question) == "" {
		return false
	}
	if len(p.Options) < 2 || len(p.Options) > 4 {
		return false
	}
	return allNonBlank(p.Options)
}

// Feature is one entry of a feature list.
type Feature struct {
	Icon        string
	Title       string
	Description string
}

// FeatureList renders product or service highlights, icons defaulting to
// a plain bullet.
type FeatureList struct {
	Features []Feature
	Title    string
	theme    *theme.Theme
}

func (f *FeatureList) Kind() Kind { return KindFeatureList }

func (f *FeatureList) Render(*theme.Theme) string {
	var lines []string
	if f.Title != "" {
		lines = append(lines, tokens.Symbol("features", "✨")+" "+strings.ToUpper(f.Title)+":", "")
	}
	for _, feature := range f.Features {
		icon := feature.Icon
		if icon == "" {
			icon = "•"
		}
		lines = append(lines, icon+" "+feature.Title)
		if feature.Description != "" {
			lines = append(lines, "   "+feature.Description)
		}
	}
	return strings.Join(lines, "\n")
}

func (f *FeatureList) Validate() bool {
	if len(f.Features) == 0 {
		return false
	}
	for _, feature := range f.Features {
		if strings.TrimSpace(feature.Title) == "" {
			return false
		}
	}
	return true
}

// NumberedList renders ordered items. Styles: numbers, emoji_numbers,
// bold_numbers. Emoji numbering covers items 1 through 10 and falls back
// to plain numerals past that.
type NumberedList struct {
	Items []string
	Title string
	Style string
	Start int
	theme *theme.Theme
}

func (n *NumberedList) Kind() Kind { return KindNumberedList }

func (n *NumberedList) Render(*theme.Theme) string {
	var lines []string
	if n.Title != "" {
		lines = append(lines, tokens.Symbol("list", "📝")+" "+strings.ToUpper(n.Title)+":", "")
	}
	for i, item := range n.Items {
		number := n.Start + i
		var prefix string
		switch n.Style {
		case "emoji_numbers":
			if number >= 1 && number <= len(tokens.EmojiDigits) {
				prefix = tokens.EmojiDigits[number-1]
			} else {
				prefix = strconv.Itoa(number) + "."
			}
		case "bold_numbers":
			prefix = "[" + strconv.Itoa(number) + "]"
		default:
			prefix = strconv.Itoa(number) + "."
		}
		lines = append(lines, prefix+" "+item)
	}
	return strings.Join(lines, "\n")
}

func (n *NumberedList) Validate() bool {
	if !allNonBlank(n.Items) || n.Start < 1 {
		return false
	}
	switch n.Style {
	case "numbers", "emoji_numbers", "bold_numbers":
		return true
	}
	return false
}

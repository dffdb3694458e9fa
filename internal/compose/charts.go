package compose

import (
	"strconv"
	"strings"

	"github.com/louisbranch/postforge/internal/compose/theme"
	"github.com/louisbranch/postforge/internal/tokens"
)

func chartTitle(lines []string, category, title string) []string {
	if title == "" {
		return lines
	}
	emoji := tokens.ChartEmoji(category, "📊")
	lines = append(lines, emoji+" "+strings.ToUpper(title)+":")
	return append(lines, "")
}

// BarItem is one row of a bar chart.
type BarItem struct {
	Label string
	Value int
}

// BarChart renders horizontal bars from colored emoji squares, one square
// per unit. Rows cycle through the bar color palette.
type BarChart struct {
	Items []BarItem
	Title string
	Unit  string
	theme *theme.Theme
}

func (b *BarChart) Kind() Kind { return KindBarChart }

func (b *BarChart) Render(*theme.Theme) string {
	lines := chartTitle(nil, "time", b.Title)
	colors := tokens.BarColors
	for idx, item := range b.Items {
		color := colors[idx%len(colors)]
		bar := strings.Repeat(color, max(item.Value, 0))
		value := strconv.Itoa(item.Value)
		if b.Unit != "" {
			value = strings.TrimSpace(value + " " + b.Unit)
		}
		lines = append(lines, bar+" "+item.Label+": "+value)
	}
	return strings.Join(lines, "\n")
}

func (b *BarChart) Validate() bool {
	return len(b.Items) > 0
}

// ComparisonSide is one side of a comparison chart. Points render as an
// indented bullet list; when empty, Summary renders as a single indented
// line.
type ComparisonSide struct {
	Label   string
	Points  []string
	Summary string
}

// ComparisonChart contrasts two or more options. The last side gets the
// positive marker, every other side the negative one.
type ComparisonChart struct {
	Sides []ComparisonSide
	Title string
	theme *theme.Theme
}

func (c *ComparisonChart) Kind() Kind { return KindComparisonChart }

func (c *ComparisonChart) Render(*theme.Theme) string {
	lines := chartTitle(nil, "comparison", c.Title)
	bullet := tokens.Symbol("bullet", "•")
	if len(c.Sides) >= 2 {
		for idx, side := range c.Sides {
			marker := tokens.Indicator("negative", "❌")
			if idx == len(c.Sides)-1 {
				marker = tokens.Indicator("positive", "✅")
			}
			lines = append(lines, marker+" "+side.Label+":")
			if len(side.Points) > 0 {
				for _, point := range side.Points {
					lines = append(lines, "  "+bullet+" "+point)
				}
			} else {
				lines = append(lines, "  "+side.Summary)
			}
			if idx < len(c.Sides)-1 {
				lines = append(lines, "")
			}
		}
	}
	return strings.Join(lines, "\n")
}

func (c *ComparisonChart) Validate() bool {
	return len(c.Sides) >= 2
}

// Metric is one row of a metrics chart.
type Metric struct {
	Label string
	Value string
}

// MetricsChart lists KPI values with outcome markers. A row reads as
// negative only when its label mentions a decline and nothing marks it
// positive first: a percent sign in the value or growth wording in the
// label wins.
type MetricsChart struct {
	Metrics []Metric
	Title   string
	theme   *theme.Theme
}

func (m *MetricsChart) Kind() Kind { return KindMetricsChart }

func (m *MetricsChart) Render(*theme.Theme) string {
	lines := chartTitle(nil, "metrics", m.Title)
	arrow := tokens.Symbol("arrow", "→")
	for _, metric := range m.Metrics {
		label := strings.ToLower(metric.Label)
		positive := strings.Contains(metric.Value, "%") ||
			strings.Contains(label, "increase") ||
			strings.Contains(label, "growth")
		declining := strings.Contains(label, "decrease") || strings.Contains(label, "down")
		marker := tokens.Indicator("positive", "✅")
		if !positive && declining {
			marker = tokens.Indicator("negative", "❌")
		}
		lines = append(lines, marker+" "+metric.Value+" "+arrow+" "+metric.Label)
	}
	return strings.Join(lines, "\n")
}

func (m *MetricsChart) Validate() bool {
	return len(m.Metrics) > 0
}

// ProgressItem is one row of a progress chart. Percent is clamped to
// [0, 100] by validation.
type ProgressItem struct {
	Label   string
	Percent int
}

// ProgressChart renders ten-slot completion bars, labels padded to align.
type ProgressChart struct {
	Items []ProgressItem
	Title string
	theme *theme.Theme
}

func (p *ProgressChart) Kind() Kind { return KindProgressChart }

func (p *ProgressChart) Render(*theme.Theme) string {
	lines := chartTitle(nil, "progress", p.Title)
	maxLabel := 0
	for _, item := range p.Items {
		if n := runeLen(item.Label); n > maxLabel {
			maxLabel = n
		}
	}
	for _, item := range p.Items {
		filled := item.Percent / 10
		if filled > 10 {
			filled = 10
		}
		if filled < 0 {
			filled = 0
		}
		bar := strings.Repeat(tokens.ProgressFilled, filled) + strings.Repeat(tokens.ProgressEmpty, 10-filled)
		padded := item.Label + strings.Repeat(" ", maxLabel-runeLen(item.Label))
		lines = append(lines, padded+"  "+bar+" "+strconv.Itoa(item.Percent)+"%")
	}
	return strings.Join(lines, "\n")
}

func (p *ProgressChart) Validate() bool {
	if len(p.Items) == 0 {
		return false
	}
	for _, item := range p.Items {
		if item.Percent < 0 || item.Percent > 100 {
			return false
		}
	}
	return true
}

// RankingEntry is one row of a ranking chart.
type RankingEntry struct {
	Label string
	Value string
}

// RankingChart renders a leaderboard. The top three entries get medal
// glyphs when ShowMedals is set; everything else gets its ordinal.
type RankingChart struct {
	Entries    []RankingEntry
	Title      string
	ShowMedals bool
	theme      *theme.Theme
}

func (r *RankingChart) Kind() Kind { return KindRankingChart }

func (r *RankingChart) Render(*theme.Theme) string {
	lines := chartTitle(nil, "ranking", r.Title)
	medals := []string{
		tokens.Indicator("gold_medal", "🥇"),
		tokens.Indicator("silver_medal", "🥈"),
		tokens.Indicator("bronze_medal", "🥉"),
	}
	for idx, entry := range r.Entries {
		prefix := strconv.Itoa(idx+1) + "."
		if r.ShowMedals && idx < 3 {
			prefix = medals[idx]
		}
		lines = append(lines, prefix+" "+entry.Label+": "+entry.Value)
	}
	return strings.Join(lines, "\n")
}

func (r *RankingChart) Validate() bool {
	return len(r.Entries) > 0
}

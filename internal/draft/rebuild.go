package draft

import (
	"encoding/json"

	"github.com/louisbranch/postforge/internal/compose"
	"github.com/louisbranch/postforge/internal/compose/theme"
	"github.com/louisbranch/postforge/internal/compose/variant"
	"github.com/louisbranch/postforge/internal/draft/storage"
	apperrors "github.com/louisbranch/postforge/internal/platform/errors"
)

// Param structs are the stored JSON form of each component kind. They
// mirror the compose package's constructor arguments so a draft can be
// rebuilt into an identical post at any time.

// HookParams stores an opening hook.
type HookParams struct {
	Type    string `json:"type,omitempty"`
	Content string `json:"content"`
}

// BodyParams stores a body section. A blank structure falls back to the
// draft's resolved variant properties.
type BodyParams struct {
	Content   string `json:"content"`
	Structure string `json:"structure,omitempty"`
}

// CTAParams stores a closing call to action.
type CTAParams struct {
	Type string `json:"type,omitempty"`
	Text string `json:"text"`
}

// HashtagsParams stores a hashtag block.
type HashtagsParams struct {
	Tags      []string `json:"tags"`
	Placement string   `json:"placement,omitempty"`
}

// SeparatorParams stores a visual separator.
type SeparatorParams struct {
	Style string `json:"style,omitempty"`
}

// BarItem is one labeled bar in a stored bar chart.
type BarItem struct {
	Label string `json:"label"`
	Value int    `json:"value"`
}

// BarChartParams stores a text bar chart.
type BarChartParams struct {
	Items []BarItem `json:"items"`
	Title string    `json:"title,omitempty"`
	Unit  string    `json:"unit,omitempty"`
}

// ComparisonSide is one side of a stored comparison chart.
type ComparisonSide struct {
	Label   string   `json:"label"`
	Points  []string `json:"points,omitempty"`
	Summary string   `json:"summary,omitempty"`
}

// ComparisonChartParams stores a side-by-side comparison.
type ComparisonChartParams struct {
	Sides []ComparisonSide `json:"sides"`
	Title string           `json:"title,omitempty"`
}

// Metric is one labeled value in a stored metrics chart.
type Metric struct {
	Label string `json:"label"`
	Value string `json:"value"`
}

// MetricsChartParams stores a metrics dashboard.
type MetricsChartParams struct {
	Metrics []Metric `json:"metrics"`
	Title   string   `json:"title,omitempty"`
}

// ProgressItem is one labeled percentage in a stored progress chart.
type ProgressItem struct {
	Label   string `json:"label"`
	Percent int    `json:"percent"`
}

// ProgressChartParams stores a progress bar chart.
type ProgressChartParams struct {
	Items []ProgressItem `json:"items"`
	Title string         `json:"title,omitempty"`
}

// RankingEntry is one entry in a stored ranking chart.
type RankingEntry struct {
	Label string `json:"label"`
	Value string `json:"value,omitempty"`
}

// RankingChartParams stores a ranked list.
type RankingChartParams struct {
	Entries    []RankingEntry `json:"entries"`
	Title      string         `json:"title,omitempty"`
	ShowMedals bool           `json:"show_medals,omitempty"`
}

// QuoteParams stores a formatted quote.
type QuoteParams struct {
	Text   string `json:"text"`
	Author string `json:"author"`
	Source string `json:"source,omitempty"`
}

// BigStatParams stores a large statistic callout.
type BigStatParams struct {
	Number  string `json:"number"`
	Label   string `json:"label"`
	Context string `json:"context,omitempty"`
}

// TimelineStep is one step in a stored timeline.
type TimelineStep struct {
	Label  string `json:"label"`
	Detail string `json:"detail"`
}

// TimelineParams stores a progression timeline.
type TimelineParams struct {
	Steps []TimelineStep `json:"steps"`
	Title string         `json:"title,omitempty"`
	Style string         `json:"style,omitempty"`
}

// KeyTakeawayParams stores a highlighted takeaway.
type KeyTakeawayParams struct {
	Message string `json:"message"`
	Title   string `json:"title,omitempty"`
	Style   string `json:"style,omitempty"`
}

// ProConParams stores a pros and cons block.
type ProConParams struct {
	Pros  []string `json:"pros"`
	Cons  []string `json:"cons"`
	Title string   `json:"title,omitempty"`
}

// ChecklistItem is one entry in a stored checklist.
type ChecklistItem struct {
	Text    string `json:"text"`
	Checked bool   `json:"checked,omitempty"`
}

// ChecklistParams stores a checklist.
type ChecklistParams struct {
	Items        []ChecklistItem `json:"items"`
	Title        string          `json:"title,omitempty"`
	ShowProgress bool            `json:"show_progress,omitempty"`
}

// BeforeAfterParams stores a before and after comparison.
type BeforeAfterParams struct {
	Before      []string `json:"before"`
	After       []string `json:"after"`
	Title       string   `json:"title,omitempty"`
	BeforeLabel string   `json:"before_label,omitempty"`
	AfterLabel  string   `json:"after_label,omitempty"`
}

// TipBoxParams stores a highlighted tip box.
type TipBoxParams struct {
	Message string `json:"message"`
	Title   string `json:"title,omitempty"`
	Style   string `json:"style,omitempty"`
}

// Stat is one labeled value in a stored stats grid.
type Stat struct {
	Label string `json:"label"`
	Value string `json:"value"`
}

// StatsGridParams stores a stats grid.
type StatsGridParams struct {
	Stats   []Stat `json:"stats"`
	Title   string `json:"title,omitempty"`
	Columns int    `json:"columns,omitempty"`
}

// PollPreviewParams stores a poll mock-up.
type PollPreviewParams struct {
	Question string   `json:"question"`
	Options  []string `json:"options"`
}

// Feature is one entry in a stored feature list.
type Feature struct {
	Icon        string `json:"icon,omitempty"`
	Title       string `json:"title"`
	Description string `json:"description,omitempty"`
}

// FeatureListParams stores a feature list.
type FeatureListParams struct {
	Features []Feature `json:"features"`
	Title    string    `json:"title,omitempty"`
}

// NumberedListParams stores a numbered list.
type NumberedListParams struct {
	Items []string `json:"items"`
	Title string   `json:"title,omitempty"`
	Style string   `json:"style,omitempty"`
	Start int      `json:"start,omitempty"`
}

// NewComponent encodes params for storage under the given kind.
func NewComponent(kind compose.Kind, params any) (storage.Component, error) {
	c := storage.Component{Kind: kind}
	if params == nil {
		return c, nil
	}
	raw, err := json.Marshal(params)
	if err != nil {
		return storage.Component{}, apperrors.WrapWithMetadata(apperrors.CodeDraftComponentInvalid,
			"component params do not encode", map[string]string{"kind": string(kind)}, err)
	}
	c.Params = raw
	return c, nil
}

// Rebuild reconstructs a composable post from a stored draft. The variant
// layers for the draft's post type are resolved against its selections and
// theme; the resolved properties feed component defaults during assembly.
func Rebuild(d storage.Draft, th *theme.Theme) (*compose.Post, error) {
	var cfg variant.Properties
	if table, ok := variant.TableFor(d.PostType); ok {
		cfg = variant.Resolve(table, table.Canonical(d.Selections), th)
	}
	post := compose.NewPost(d.PostType, th, cfg)
	for _, c := range d.Components {
		if err := applyComponent(post, c); err != nil {
			return nil, err
		}
	}
	return post, nil
}

// applyComponent decodes one stored component and adds it to the post.
func applyComponent(post *compose.Post, c storage.Component) error {
	switch c.Kind {
	case compose.KindHook:
		var p HookParams
		if err := decodeParams(c, &p); err != nil {
			return err
		}
		post.AddHook(p.Type, p.Content)

	case compose.KindBody:
		var p BodyParams
		if err := decodeParams(c, &p); err != nil {
			return err
		}
		post.AddBody(p.Content, p.Structure)

	case compose.KindCallToAction:
		var p CTAParams
		if err := decodeParams(c, &p); err != nil {
			return err
		}
		post.AddCTA(p.Type, p.Text)

	case compose.KindHashtags:
		var p HashtagsParams
		if err := decodeParams(c, &p); err != nil {
			return err
		}
		post.AddHashtags(p.Tags, p.Placement)

	case compose.KindSeparator:
		var p SeparatorParams
		if err := decodeParams(c, &p); err != nil {
			return err
		}
		post.AddSeparator(p.Style)

	case compose.KindBarChart:
		var p BarChartParams
		if err := decodeParams(c, &p); err != nil {
			return err
		}
		items := make([]compose.BarItem, 0, len(p.Items))
		for _, it := range p.Items {
			items = append(items, compose.BarItem{Label: it.Label, Value: it.Value})
		}
		post.AddBarChart(items, p.Title, p.Unit)

	case compose.KindComparisonChart:
		var p ComparisonChartParams
		if err := decodeParams(c, &p); err != nil {
			return err
		}
		sides := make([]compose.ComparisonSide, 0, len(p.Sides))
		for _, side := range p.Sides {
			sides = append(sides, compose.ComparisonSide{Label: side.Label, Points: side.Points, Summary: side.Summary})
		}
		post.AddComparisonChart(sides, p.Title)

	case compose.KindMetricsChart:
		var p MetricsChartParams
		if err := decodeParams(c, &p); err != nil {
			return err
		}
		metrics := make([]compose.Metric, 0, len(p.Metrics))
		for _, m := range p.Metrics {
			metrics = append(metrics, compose.Metric{Label: m.Label, Value: m.Value})
		}
		post.AddMetricsChart(metrics, p.Title)

	case compose.KindProgressChart:
		var p ProgressChartParams
		if err := decodeParams(c, &p); err != nil {
			return err
		}
		items := make([]compose.ProgressItem, 0, len(p.Items))
		for _, it := range p.Items {
			items = append(items, compose.ProgressItem{Label: it.Label, Percent: it.Percent})
		}
		post.AddProgressChart(items, p.Title)

	case compose.KindRankingChart:
		var p RankingChartParams
		if err := decodeParams(c, &p); err != nil {
			return err
		}
		entries := make([]compose.RankingEntry, 0, len(p.Entries))
		for _, e := range p.Entries {
			entries = append(entries, compose.RankingEntry{Label: e.Label, Value: e.Value})
		}
		post.AddRankingChart(entries, p.Title, p.ShowMedals)

	case compose.KindQuote:
		var p QuoteParams
		if err := decodeParams(c, &p); err != nil {
			return err
		}
		post.AddQuote(p.Text, p.Author, p.Source)

	case compose.KindBigStat:
		var p BigStatParams
		if err := decodeParams(c, &p); err != nil {
			return err
		}
		post.AddBigStat(p.Number, p.Label, p.Context)

	case compose.KindTimeline:
		var p TimelineParams
		if err := decodeParams(c, &p); err != nil {
			return err
		}
		steps := make([]compose.TimelineStep, 0, len(p.Steps))
		for _, step := range p.Steps {
			steps = append(steps, compose.TimelineStep{Label: step.Label, Detail: step.Detail})
		}
		post.AddTimeline(steps, p.Title, p.Style)

	case compose.KindKeyTakeaway:
		var p KeyTakeawayParams
		if err := decodeParams(c, &p); err != nil {
			return err
		}
		post.AddKeyTakeaway(p.Message, p.Title, p.Style)

	case compose.KindProCon:
		var p ProConParams
		if err := decodeParams(c, &p); err != nil {
			return err
		}
		post.AddProCon(p.Pros, p.Cons, p.Title)

	case compose.KindChecklist:
		var p ChecklistParams
		if err := decodeParams(c, &p); err != nil {
			return err
		}
		items := make([]compose.ChecklistItem, 0, len(p.Items))
		for _, it := range p.Items {
			items = append(items, compose.ChecklistItem{Text: it.Text, Checked: it.Checked})
		}
		post.AddChecklist(items, p.Title, p.ShowProgress)

	case compose.KindBeforeAfter:
		var p BeforeAfterParams
		if err := decodeParams(c, &p); err != nil {
			return err
		}
		post.AddBeforeAfter(p.Before, p.After, p.Title, p.BeforeLabel, p.AfterLabel)

	case compose.KindTipBox:
		var p TipBoxParams
		if err := decodeParams(c, &p); err != nil {
			return err
		}
		post.AddTipBox(p.Message, p.Title, p.Style)

	case compose.KindStatsGrid:
		var p StatsGridParams
		if err := decodeParams(c, &p); err != nil {
			return err
		}
		stats := make([]compose.Stat, 0, len(p.Stats))
		for _, st := range p.Stats {
			stats = append(stats, compose.Stat{Label: st.Label, Value: st.Value})
		}
		post.AddStatsGrid(stats, p.Title, p.Columns)

	case compose.KindPollPreview:
		var p PollPreviewParams
		if err := decodeParams(c, &p); err != nil {
			return err
		}
		post.AddPollPreview(p.Question, p.Options)

	case compose.KindFeatureList:
		var p FeatureListParams
		if err := decodeParams(c, &p); err != nil {
			return err
		}
		features := make([]compose.Feature, 0, len(p.Features))
		for _, f := range p.Features {
			features = append(features, compose.Feature{Icon: f.Icon, Title: f.Title, Description: f.Description})
		}
		post.AddFeatureList(features, p.Title)

	case compose.KindNumberedList:
		var p NumberedListParams
		if err := decodeParams(c, &p); err != nil {
			return err
		}
		post.AddNumberedList(p.Items, p.Title, p.Style, p.Start)

	default:
		return apperrors.WithMetadata(apperrors.CodeDraftComponentUnknown, "unknown component kind",
			map[string]string{"kind": string(c.Kind)})
	}
	return nil
}

func decodeParams(c storage.Component, target any) error {
	if len(c.Params) == 0 {
		return nil
	}
	if err := json.Unmarshal(c.Params, target); err != nil {
		return apperrors.WrapWithMetadata(apperrors.CodeDraftComponentInvalid,
			"component params do not decode", map[string]string{"kind": string(c.Kind)}, err)
	}
	return nil
}

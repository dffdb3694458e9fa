// Package compose builds LinkedIn post text from small, independently
// validated components. Components capture their parameters and an optional
// theme at construction; the Post composer renders them in insertion order,
// drops the ones that fail validation, and enforces the platform length
// limit.
package compose

import (
	"unicode/utf8"

	"github.com/louisbranch/postforge/internal/compose/theme"
)

// Kind identifies a concrete component type. The set is closed; draft
// records and tool payloads carry these values.
type Kind string

const (
	KindHook         Kind = "hook"
	KindBody         Kind = "body"
	KindCallToAction Kind = "call_to_action"
	KindHashtags     Kind = "hashtags"
	KindSeparator    Kind = "separator"

	KindBarChart        Kind = "bar_chart"
	KindComparisonChart Kind = "comparison_chart"
	KindMetricsChart    Kind = "metrics_chart"
	KindProgressChart   Kind = "progress_chart"
	KindRankingChart    Kind = "ranking_chart"

	KindQuote        Kind = "quote"
	KindBigStat      Kind = "big_stat"
	KindTimeline     Kind = "timeline"
	KindKeyTakeaway  Kind = "key_takeaway"
	KindProCon       Kind = "pro_con"
	KindChecklist    Kind = "checklist"
	KindBeforeAfter  Kind = "before_after"
	KindTipBox       Kind = "tip_box"
	KindStatsGrid    Kind = "stats_grid"
	KindPollPreview  Kind = "poll_preview"
	KindFeatureList  Kind = "feature_list"
	KindNumberedList Kind = "numbered_list"
)

// Kinds lists every component kind in a stable order.
func Kinds() []Kind {
	return []Kind{
		KindHook, KindBody, KindCallToAction, KindHashtags, KindSeparator,
		KindBarChart, KindComparisonChart, KindMetricsChart, KindProgressChart, KindRankingChart,
		KindQuote, KindBigStat, KindTimeline, KindKeyTakeaway, KindProCon, KindChecklist,
		KindBeforeAfter, KindTipBox, KindStatsGrid, KindPollPreview, KindFeatureList, KindNumberedList,
	}
}

// Component is the contract every building block satisfies. Render is a pure
// function of the component's state plus the optional theme; a nil theme
// argument falls back to the theme captured at construction. Validate is a
// local shape check and never fails the whole post on its own: the composer
// silently skips invalid components.
type Component interface {
	Kind() Kind
	Render(th *theme.Theme) string
	Validate() bool
}

// length limits are measured in characters, not bytes.
func runeLen(s string) int {
	return utf8.RuneCountInString(s)
}

func pickTheme(override, own *theme.Theme) *theme.Theme {
	if override != nil {
		return override
	}
	return own
}

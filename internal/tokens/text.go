// Package tokens holds the formatting constants used when rendering post
// components: character limits, line-break counts, separator glyphs, symbol
// and emoji tables, and engagement heuristics.
package tokens

// LinkedIn character limits.
const (
	// MaxPostLength is the hard cap on composed post length.
	MaxPostLength = 3000
	// TruncationPoint is where the feed folds a post behind "...see more".
	TruncationPoint = 210
)

// LengthRange is an inclusive character range.
type LengthRange struct {
	Min int
	Max int
}

// IdealLengths maps post length profiles to recommended character ranges.
var IdealLengths = map[string]LengthRange{
	"micro":  {50, 150},
	"short":  {150, 300},
	"medium": {300, 800},
	"long":   {800, 1500},
	"story":  {1000, 3000},
}

// LineBreaks maps line-break styles to the number of newlines between
// paragraphs.
var LineBreaks = map[string]int{
	"dense":     1,
	"readable":  2,
	"scannable": 3,
	"dramatic":  5,
	"extreme":   7,
}

// EmojiRatios maps emoji levels to emojis-per-word ratios.
var EmojiRatios = map[string]float64{
	"none":       0.0,
	"minimal":    0.01,
	"moderate":   0.05,
	"expressive": 0.1,
	"heavy":      0.15,
}

// HashtagCounts maps hashtag strategies to recommended tag count ranges.
var HashtagCounts = map[string]LengthRange{
	"minimal": {1, 2},
	"optimal": {3, 5},
	"maximum": {5, 7},
}

// Symbols maps symbol names to their glyphs.
var Symbols = map[string]string{
	"arrow":          "→",
	"bullet":         "•",
	"checkmark":      "✓",
	"cross":          "✗",
	"lightning":      "⚡",
	"bulb":           "💡",
	"target":         "🎯",
	"pin":            "📌",
	"quote":          "💬",
	"checkbox":       "☐",
	"checklist":      "✓",
	"transformation": "🔄",
	"list":           "📝",
	"features":       "✨",
	"calendar":       "📅",
	"lightbulb":      "💡",
	"poll":           "📊",
}

// ChartEmojis maps chart categories to their header emoji.
var ChartEmojis = map[string]string{
	"time":       "⏱️",
	"comparison": "⚖️",
	"metrics":    "📈",
	"progress":   "📊",
	"ranking":    "🏆",
	"stats":      "📊",
}

// Indicators maps outcome markers to their glyphs.
var Indicators = map[string]string{
	"positive":     "✅",
	"negative":     "❌",
	"gold_medal":   "🥇",
	"silver_medal": "🥈",
	"bronze_medal": "🥉",
}

// BarColors are the colored squares bar charts cycle through per row.
var BarColors = []string{"🟦", "🟩", "🟨", "🟧", "🟪", "🟥"}

// Progress bar glyphs.
const (
	ProgressFilled = "█"
	ProgressEmpty  = "░"
)

// LineBreakCount returns the newline count for a line-break style,
// defaulting to 2 for unknown styles.
func LineBreakCount(style string) int {
	if n, ok := LineBreaks[style]; ok {
		return n
	}
	return 2
}

// Symbol returns the glyph for a symbol name, or fallback when unknown.
func Symbol(name, fallback string) string {
	if s, ok := Symbols[name]; ok {
		return s
	}
	return fallback
}

// ChartEmoji returns the header emoji for a chart category, or fallback
// when unknown.
func ChartEmoji(name, fallback string) string {
	if s, ok := ChartEmojis[name]; ok {
		return s
	}
	return fallback
}

// Indicator returns the glyph for an outcome marker, or fallback when
// unknown.
func Indicator(name, fallback string) string {
	if s, ok := Indicators[name]; ok {
		return s
	}
	return fallback
}

// IdealLength returns the character range for a length profile, defaulting
// to the medium profile.
func IdealLength(profile string) LengthRange {
	if r, ok := IdealLengths[profile]; ok {
		return r
	}
	return IdealLengths["medium"]
}

// HashtagCount returns the recommended tag count range for a strategy,
// defaulting to the optimal range.
func HashtagCount(strategy string) LengthRange {
	if r, ok := HashtagCounts[strategy]; ok {
		return r
	}
	return HashtagCounts["optimal"]
}

// EmojiCount returns the recommended emoji count for a word count at the
// given emoji level.
func EmojiCount(wordCount int, level string) int {
	ratio, ok := EmojiRatios[level]
	if !ok {
		ratio = 0.05
	}
	return int(float64(wordCount) * ratio)
}

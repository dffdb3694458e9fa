// Package theme defines content personas: named bundles of voice, formatting,
// and engagement preferences applied when rendering post components.
//
// Themes are immutable value objects. Lookups hand out shared pointers that
// must never be mutated after construction.
package theme

import (
	"errors"
	"fmt"
	"strings"
)

const (
	// contentMixTolerance is how far the content mix sum may drift from 1.0.
	contentMixTolerance = 0.05
)

var (
	// ErrNameEmpty indicates a missing theme name.
	ErrNameEmpty = errors.New("theme name is required")
	// ErrContentMixInvalid indicates content mix weights outside [0,1] or a
	// sum outside 1.0 ± 0.05.
	ErrContentMixInvalid = errors.New("content mix weights must each lie in [0,1] and sum to 1.0 within ±0.05")
	// ErrNotFound indicates an unknown theme name.
	ErrNotFound = errors.New("theme not found")
)

// ContentMix is the share of educational, personal, and promotional content
// a persona aims for. Weights each lie in [0,1] and sum to 1.0 ± 0.05.
type ContentMix struct {
	Educational float64 `yaml:"educational" json:"educational"`
	Personal    float64 `yaml:"personal" json:"personal"`
	Promotional float64 `yaml:"promotional" json:"promotional"`
}

// Sum returns the total of the three weights.
func (m ContentMix) Sum() float64 {
	return m.Educational + m.Personal + m.Promotional
}

// Validate reports whether the weights satisfy the construction invariant.
func (m ContentMix) Validate() error {
	for _, w := range []float64{m.Educational, m.Personal, m.Promotional} {
		if w < 0 || w > 1 {
			return ErrContentMixInvalid
		}
	}
	sum := m.Sum()
	if sum < 1-contentMixTolerance || sum > 1+contentMixTolerance {
		return ErrContentMixInvalid
	}
	return nil
}

// Theme is a complete persona definition for post voice and strategy.
type Theme struct {
	// Identity
	Name        string
	Description string

	// Voice and tone
	Tone      string // professional, casual, inspirational, technical, humorous
	Formality string // formal, conversational, friendly, casual
	Emotion   string // neutral, warm, passionate, analytical, playful

	// Content strategy
	PrimaryGoal string // authority, engagement, community, leads, awareness
	ContentMix  ContentMix

	// Formatting style
	EmojiLevel      string // none, minimal, moderate, expressive, heavy
	LineBreakStyle  string // dense, readable, scannable, dramatic, extreme
	ParagraphLength string // tight, standard, loose

	// Structure preferences
	PreferredStructures []string // listicle, framework, story_arc, ...
	HookStyle           string   // question, stat, story, controversy, list, curiosity
	CTAStyle            string   // direct, curiosity, action, share, soft

	// Engagement style
	HashtagStrategy  string // minimal, optimal, branded, trending, niche, mixed
	HashtagPlacement string // inline, mid, end, first_comment
	CommentStyle     string // brief, thoughtful, conversational, deep

	// Content characteristics
	ControversyLevel   string // safe, moderate, bold, provocative
	VulnerabilityLevel string // guarded, selective, open, raw
	HumorLevel         string // none, subtle, moderate, frequent

	// Visual preferences
	PreferredFormats []string // text, carousel, video, document, ...
	MediaFrequency   float64  // 0.0 to 1.0

	// Scheduling
	PostFrequency    int      // posts per week
	BestPostingTimes []string // morning, lunch, evening
}

// Input describes the fields needed to construct a theme.
type Input struct {
	Name                string     `yaml:"name" json:"name"`
	Description         string     `yaml:"description" json:"description"`
	Tone                string     `yaml:"tone" json:"tone"`
	Formality           string     `yaml:"formality" json:"formality"`
	Emotion             string     `yaml:"emotion" json:"emotion"`
	PrimaryGoal         string     `yaml:"primary_goal" json:"primary_goal"`
	ContentMix          ContentMix `yaml:"content_mix" json:"content_mix"`
	EmojiLevel          string     `yaml:"emoji_level" json:"emoji_level"`
	LineBreakStyle      string     `yaml:"line_break_style" json:"line_break_style"`
	ParagraphLength     string     `yaml:"paragraph_length" json:"paragraph_length"`
	PreferredStructures []string   `yaml:"preferred_structures" json:"preferred_structures"`
	HookStyle           string     `yaml:"hook_style" json:"hook_style"`
	CTAStyle            string     `yaml:"cta_style" json:"cta_style"`
	HashtagStrategy     string     `yaml:"hashtag_strategy" json:"hashtag_strategy"`
	HashtagPlacement    string     `yaml:"hashtag_placement" json:"hashtag_placement"`
	CommentStyle        string     `yaml:"comment_style" json:"comment_style"`
	ControversyLevel    string     `yaml:"controversy_level" json:"controversy_level"`
	VulnerabilityLevel  string     `yaml:"vulnerability_level" json:"vulnerability_level"`
	HumorLevel          string     `yaml:"humor_level" json:"humor_level"`
	PreferredFormats    []string   `yaml:"preferred_formats" json:"preferred_formats"`
	MediaFrequency      float64    `yaml:"media_frequency" json:"media_frequency"`
	PostFrequency       int        `yaml:"post_frequency" json:"post_frequency"`
	BestPostingTimes    []string   `yaml:"best_posting_times" json:"best_posting_times"`
}

// New constructs a theme from input, enforcing the content mix invariant.
func New(input Input) (*Theme, error) {
	input.Name = strings.TrimSpace(input.Name)
	if input.Name == "" {
		return nil, ErrNameEmpty
	}
	if err := input.ContentMix.Validate(); err != nil {
		return nil, fmt.Errorf("theme %q: %w", input.Name, err)
	}

	return &Theme{
		Name:                input.Name,
		Description:         input.Description,
		Tone:                input.Tone,
		Formality:           input.Formality,
		Emotion:             input.Emotion,
		PrimaryGoal:         input.PrimaryGoal,
		ContentMix:          input.ContentMix,
		EmojiLevel:          input.EmojiLevel,
		LineBreakStyle:      input.LineBreakStyle,
		ParagraphLength:     input.ParagraphLength,
		PreferredStructures: append([]string(nil), input.PreferredStructures...),
		HookStyle:           input.HookStyle,
		CTAStyle:            input.CTAStyle,
		HashtagStrategy:     input.HashtagStrategy,
		HashtagPlacement:    input.HashtagPlacement,
		CommentStyle:        input.CommentStyle,
		ControversyLevel:    input.ControversyLevel,
		VulnerabilityLevel:  input.VulnerabilityLevel,
		HumorLevel:          input.HumorLevel,
		PreferredFormats:    append([]string(nil), input.PreferredFormats...),
		MediaFrequency:      input.MediaFrequency,
		PostFrequency:       input.PostFrequency,
		BestPostingTimes:    append([]string(nil), input.BestPostingTimes...),
	}, nil
}

// Key derives the registry key for a theme name: lower-cased with spaces
// replaced by underscores.
func Key(name string) string {
	return strings.ReplaceAll(strings.ToLower(strings.TrimSpace(name)), " ", "_")
}

// Input returns the theme's fields as a construction input, used for export
// and round-tripping.
func (t *Theme) Input() Input {
	return Input{
		Name:                t.Name,
		Description:         t.Description,
		Tone:                t.Tone,
		Formality:           t.Formality,
		Emotion:             t.Emotion,
		PrimaryGoal:         t.PrimaryGoal,
		ContentMix:          t.ContentMix,
		EmojiLevel:          t.EmojiLevel,
		LineBreakStyle:      t.LineBreakStyle,
		ParagraphLength:     t.ParagraphLength,
		PreferredStructures: append([]string(nil), t.PreferredStructures...),
		HookStyle:           t.HookStyle,
		CTAStyle:            t.CTAStyle,
		HashtagStrategy:     t.HashtagStrategy,
		HashtagPlacement:    t.HashtagPlacement,
		CommentStyle:        t.CommentStyle,
		ControversyLevel:    t.ControversyLevel,
		VulnerabilityLevel:  t.VulnerabilityLevel,
		HumorLevel:          t.HumorLevel,
		PreferredFormats:    append([]string(nil), t.PreferredFormats...),
		MediaFrequency:      t.MediaFrequency,
		PostFrequency:       t.PostFrequency,
		BestPostingTimes:    append([]string(nil), t.BestPostingTimes...),
	}
}

// Summary is a condensed view of a theme's characteristics.
type Summary struct {
	Name             string   `json:"name"`
	Description      string   `json:"description"`
	Tone             string   `json:"tone"`
	Goal             string   `json:"goal"`
	PostFrequency    string   `json:"post_frequency"`
	BestFormats      []string `json:"best_formats"`
	EmojiLevel       string   `json:"emoji_level"`
	ControversyLevel string   `json:"controversy_level"`
}

// Summarize returns the condensed view of the theme.
func (t *Theme) Summarize() Summary {
	return Summary{
		Name:             t.Name,
		Description:      t.Description,
		Tone:             t.Tone,
		Goal:             t.PrimaryGoal,
		PostFrequency:    fmt.Sprintf("%dx per week", t.PostFrequency),
		BestFormats:      append([]string(nil), t.PreferredFormats...),
		EmojiLevel:       t.EmojiLevel,
		ControversyLevel: t.ControversyLevel,
	}
}

// Package variant holds the per-post-type axis tables and the resolver that
// folds base defaults, selected axis options, compound rules, and theme
// gap-fill into one effective configuration.
package variant

import "encoding/json"

// Range is an inclusive numeric interval used by table properties such as
// ideal lengths and slide counts. It serializes as a two-element array.
type Range struct {
	Min int
	Max int
}

// MarshalJSON renders the range as [min, max].
func (r Range) MarshalJSON() ([]byte, error) {
	return json.Marshal([2]int{r.Min, r.Max})
}

// UnmarshalJSON parses a [min, max] pair.
func (r *Range) UnmarshalJSON(data []byte) error {
	var pair [2]int
	if err := json.Unmarshal(data, &pair); err != nil {
		return err
	}
	r.Min, r.Max = pair[0], pair[1]
	return nil
}

// Properties is a partial configuration: a bag of style keys merged by the
// resolver. Values are strings, bools, ints, floats, or Range.
type Properties map[string]any

func (p Properties) clone() Properties {
	out := make(Properties, len(p))
	for k, v := range p {
		out[k] = v
	}
	return out
}

// Axis is one independent configuration dimension with a closed option set.
type Axis struct {
	Name    string
	Options map[string]Properties
}

// Compound is a conditional override applied after axis merging when every
// condition matches the caller's selection.
type Compound struct {
	Conditions map[string]string
	Applies    Properties
}

// Table is the static variant registry for one post type. Tables are
// read-only; the resolver never mutates them.
type Table struct {
	PostType  string
	Base      Properties
	Axes      []Axis
	Compounds []Compound
	Defaults  map[string]string
}

// Axis returns the named axis when the table declares it.
func (t *Table) Axis(name string) (Axis, bool) {
	for _, a := range t.Axes {
		if a.Name == name {
			return a, true
		}
	}
	return Axis{}, false
}

var textTable = &Table{
	PostType: "text",
	Base: Properties{
		"type":       "text",
		"max_length": 3000,
		"has_media":  false,
	},
	Axes: []Axis{
		{
			Name: "style",
			Options: map[string]Properties{
				"story": {
					"structure":              "story_arc",
					"emoji_level":            "moderate",
					"line_break_style":       "dramatic",
					"paragraph_length":       "tight",
					"ideal_length":           Range{1000, 2000},
					"hook_style":             "story",
					"vulnerability_required": true,
				},
				"insight": {
					"structure":           "framework",
					"emoji_level":         "minimal",
					"line_break_style":    "scannable",
					"paragraph_length":    "standard",
					"ideal_length":        Range{300, 800},
					"hook_style":          "stat",
					"credibility_markers": true,
				},
				"question": {
					"structure":        "question_based",
					"emoji_level":      "moderate",
					"line_break_style": "scannable",
					"paragraph_length": "tight",
					"ideal_length":     Range{50, 200},
					"hook_style":       "question",
					"requires_cta":     true,
				},
				"listicle": {
					"structure":        "listicle",
					"emoji_level":      "minimal",
					"line_break_style": "scannable",
					"paragraph_length": "tight",
					"ideal_length":     Range{200, 600},
					"hook_style":       "list",
					"numbered":         true,
				},
				"hot_take": {
					"structure":         "linear",
					"emoji_level":       "minimal",
					"line_break_style":  "dramatic",
					"paragraph_length":  "tight",
					"ideal_length":      Range{100, 400},
					"hook_style":        "controversy",
					"controversy_level": "bold",
				},
			},
		},
		{
			Name: "tone",
			Options: map[string]Properties{
				"professional": {
					"formality":           "formal",
					"emoji_level":         "none",
					"humor_level":         "none",
					"vulnerability_level": "guarded",
				},
				"conversational": {
					"formality":           "conversational",
					"emoji_level":         "moderate",
					"humor_level":         "subtle",
					"vulnerability_level": "selective",
				},
				"casual": {
					"formality":           "friendly",
					"emoji_level":         "moderate",
					"humor_level":         "moderate",
					"vulnerability_level": "open",
				},
				"inspiring": {
					"formality":           "friendly",
					"emoji_level":         "expressive",
					"humor_level":         "subtle",
					"vulnerability_level": "open",
					"emotion":             "warm",
				},
				"humorous": {
					"formality":           "casual",
					"emoji_level":         "expressive",
					"humor_level":         "frequent",
					"vulnerability_level": "open",
				},
			},
		},
		{
			Name: "length",
			Options: map[string]Properties{
				"micro": {
					"ideal_length":     Range{50, 150},
					"line_break_style": "readable",
					"paragraph_length": "tight",
					"hook_required":    true,
				},
				"short": {
					"ideal_length":     Range{150, 300},
					"line_break_style": "scannable",
					"paragraph_length": "tight",
				},
				"medium": {
					"ideal_length":     Range{300, 800},
					"line_break_style": "scannable",
					"paragraph_length": "standard",
				},
				"long": {
					"ideal_length":       Range{800, 1500},
					"line_break_style":   "dramatic",
					"paragraph_length":   "standard",
					"structure_required": true,
				},
				"story": {
					"ideal_length":     Range{1000, 3000},
					"line_break_style": "extreme",
					"paragraph_length": "loose",
					"structure":        "story_arc",
				},
			},
		},
	},
	Compounds: []Compound{
		{
			Conditions: map[string]string{"style": "story", "tone": "inspiring"},
			Applies: Properties{
				"emoji_level":         "expressive",
				"line_break_style":    "extreme",
				"vulnerability_level": "raw",
				"cta_style":           "soft",
			},
		},
		{
			Conditions: map[string]string{"style": "hot_take", "tone": "professional"},
			Applies: Properties{
				"emoji_level":       "none",
				"line_break_style":  "dramatic",
				"controversy_level": "moderate",
				"cta_style":         "curiosity",
			},
		},
		{
			Conditions: map[string]string{"style": "listicle", "length": "long"},
			Applies: Properties{
				"numbered":         true,
				"visual_symbols":   true,
				"line_break_style": "scannable",
				"paragraph_length": "tight",
			},
		},
		{
			Conditions: map[string]string{"tone": "humorous", "length": "micro"},
			Applies: Properties{
				"structure":  "linear",
				"hook_style": "curiosity",
				"cta_style":  "share",
			},
		},
	},
	Defaults: map[string]string{
		"style":  "insight",
		"tone":   "conversational",
		"length": "medium",
	},
}

var pollTable = &Table{
	PostType: "poll",
	Base: Properties{
		"type":          "poll",
		"options_range": Range{2, 4},
		"duration_days": Range{1, 14},
	},
	Axes: []Axis{
		{
			Name: "purpose",
			Options: map[string]Properties{
				"engagement": {
					"question_style":     "provocative",
					"duration_days":      3,
					"commentary_length":  "short",
					"follow_up_required": true,
				},
				"research": {
					"question_style":        "neutral",
					"duration_days":         7,
					"commentary_length":     "medium",
					"results_post_required": true,
				},
				"decision": {
					"question_style":      "help_seeking",
					"duration_days":       3,
					"commentary_length":   "medium",
					"vulnerability_level": "open",
				},
				"fun": {
					"question_style":    "playful",
					"duration_days":     1,
					"commentary_length": "micro",
					"emoji_level":       "expressive",
				},
			},
		},
		{
			Name: "question_type",
			Options: map[string]Properties{
				"binary": {
					"options_count":         2,
					"controversy_potential": "high",
				},
				"multiple_choice": {
					"options_count": Range{3, 4},
					"include_other": true,
				},
			},
		},
	},
	Defaults: map[string]string{
		"purpose":       "engagement",
		"question_type": "binary",
	},
}

var documentTable = &Table{
	PostType: "document",
	Base: Properties{
		"type":        "document",
		"format":      "pdf",
		"slide_limit": Range{5, 10},
	},
	Axes: []Axis{
		{
			Name: "content_type",
			Options: map[string]Properties{
				"guide": {
					"slide_count":  Range{7, 10},
					"layout":       "educational",
					"text_density": "medium",
					"visual_ratio": 0.4,
				},
				"checklist": {
					"slide_count":  Range{5, 8},
					"layout":       "list_based",
					"text_density": "low",
					"visual_ratio": 0.3,
					"checkboxes":   true,
				},
				"stats": {
					"slide_count":     Range{5, 7},
					"layout":          "data_focused",
					"text_density":    "low",
					"visual_ratio":    0.7,
					"charts_required": true,
				},
				"report": {
					"slide_count":         Range{8, 10},
					"layout":              "professional",
					"text_density":        "high",
					"visual_ratio":        0.5,
					"credibility_markers": true,
				},
			},
		},
		{
			Name: "design_style",
			Options: map[string]Properties{
				"minimal": {
					"color_count": 2,
					"font_count":  1,
					"decoration":  "none",
					"white_space": "high",
				},
				"professional": {
					"color_count": 3,
					"font_count":  2,
					"decoration":  "subtle",
					"white_space": "medium",
					"branding":    true,
				},
				"vibrant": {
					"color_count": 5,
					"font_count":  2,
					"decoration":  "bold",
					"white_space": "low",
					"gradients":   true,
				},
			},
		},
	},
	Defaults: map[string]string{
		"content_type": "guide",
		"design_style": "professional",
	},
}

var tables = map[string]*Table{
	"text":     textTable,
	"poll":     pollTable,
	"document": documentTable,
}

// TableFor returns the variant table registered for postType.
func TableFor(postType string) (*Table, bool) {
	t, ok := tables[postType]
	return t, ok
}

// PostTypes lists the post types with a registered variant table.
func PostTypes() []string {
	return []string{"text", "poll", "document"}
}

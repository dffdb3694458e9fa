package variant

import (
	"sort"

	"github.com/louisbranch/postforge/internal/compose/theme"
)

// Selection binds one axis to a chosen option.
type Selection struct {
	Axis   string
	Option string
}

// Selections is an ordered list of axis choices. Order matters: later
// selections overwrite earlier ones when their option properties collide.
type Selections []Selection

// Option returns the chosen option for axis.
func (s Selections) Option(axis string) (string, bool) {
	for _, sel := range s {
		if sel.Axis == axis {
			return sel.Option, true
		}
	}
	return "", false
}

// Has reports whether the caller selected axis, whether or not the table
// declares it.
func (s Selections) Has(axis string) bool {
	_, ok := s.Option(axis)
	return ok
}

// Map returns the selections as a plain axis to option map.
func (s Selections) Map() map[string]string {
	out := make(map[string]string, len(s))
	for _, sel := range s {
		out[sel.Axis] = sel.Option
	}
	return out
}

// Canonical orders a plain selection map by the table's axis declaration
// order. Keys the table does not declare keep their blocking effect on theme
// gap-fill and are appended last, sorted for determinism.
func (t *Table) Canonical(selected map[string]string) Selections {
	out := make(Selections, 0, len(selected))
	seen := make(map[string]bool, len(selected))
	for _, axis := range t.Axes {
		if option, ok := selected[axis.Name]; ok {
			out = append(out, Selection{Axis: axis.Name, Option: option})
			seen[axis.Name] = true
		}
	}
	var rest []string
	for axis := range selected {
		if !seen[axis] {
			rest = append(rest, axis)
		}
	}
	sort.Strings(rest)
	for _, axis := range rest {
		out = append(out, Selection{Axis: axis, Option: selected[axis]})
	}
	return out
}

// themeBridges are the theme fields the resolver may copy into the effective
// configuration. The theme fills a key only when the caller did not select an
// axis with that name.
var themeBridges = []struct {
	key   string
	value func(*theme.Theme) string
}{
	{"emoji_level", func(t *theme.Theme) string { return t.EmojiLevel }},
	{"line_break_style", func(t *theme.Theme) string { return t.LineBreakStyle }},
	{"formality", func(t *theme.Theme) string { return t.Formality }},
	{"hook_style", func(t *theme.Theme) string { return t.HookStyle }},
	{"cta_style", func(t *theme.Theme) string { return t.CTAStyle }},
}

// Resolve folds the table's base, the selected axis options, matching
// compound rules, and theme gap-fill into one effective configuration.
// Unknown axes and unknown options merge nothing. The input table is never
// mutated.
func Resolve(t *Table, selected Selections, th *theme.Theme) Properties {
	config := t.Base.clone()

	for _, sel := range selected {
		axis, ok := t.Axis(sel.Axis)
		if !ok {
			continue
		}
		for k, v := range axis.Options[sel.Option] {
			config[k] = v
		}
	}

	for _, compound := range t.Compounds {
		if !conditionsMatch(compound.Conditions, selected) {
			continue
		}
		for k, v := range compound.Applies {
			config[k] = v
		}
	}

	if th != nil {
		for _, bridge := range themeBridges {
			value := bridge.value(th)
			if value == "" || selected.Has(bridge.key) {
				continue
			}
			config[bridge.key] = value
		}
	}

	return config
}

func conditionsMatch(conditions map[string]string, selected Selections) bool {
	for axis, want := range conditions {
		got, ok := selected.Option(axis)
		if !ok || got != want {
			return false
		}
	}
	return true
}

// Suggest returns the recommended axis selection for a post type and goal.
// Unknown combinations return an empty map rather than failing.
func Suggest(postType, goal string) map[string]string {
	byGoal, ok := suggestions[postType]
	if !ok {
		return map[string]string{}
	}
	selected, ok := byGoal[goal]
	if !ok {
		return map[string]string{}
	}
	out := make(map[string]string, len(selected))
	for k, v := range selected {
		out[k] = v
	}
	return out
}

var suggestions = map[string]map[string]map[string]string{
	"text": {
		"authority":  {"style": "insight", "tone": "professional", "length": "medium"},
		"engagement": {"style": "question", "tone": "conversational", "length": "short"},
		"virality":   {"style": "hot_take", "tone": "conversational", "length": "micro"},
		"community":  {"style": "story", "tone": "inspiring", "length": "long"},
	},
	"document": {
		"authority":  {"content_type": "report", "design_style": "professional"},
		"engagement": {"content_type": "checklist", "design_style": "vibrant"},
		"education":  {"content_type": "guide", "design_style": "professional"},
	},
	"poll": {
		"engagement": {"purpose": "engagement", "question_type": "binary"},
		"research":   {"purpose": "research", "question_type": "multiple_choice"},
		"community":  {"purpose": "decision", "question_type": "multiple_choice"},
	},
}

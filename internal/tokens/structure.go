package tokens

// Separators maps separator styles to the full glyph block inserted between
// sections, blank lines included.
var Separators = map[string]string{
	"line":    "\n\n---\n\n",
	"dots":    "\n\n• • •\n\n",
	"wave":    "\n\n~\n\n",
	"heavy":   "\n\n━━━\n\n",
	"double":  "\n\n===\n\n",
	"minimal": "\n\n",
}

// Separator returns the glyph block for a separator style, defaulting to
// the minimal blank-line separator.
func Separator(style string) string {
	if s, ok := Separators[style]; ok {
		return s
	}
	return Separators["minimal"]
}

// StructureFormat describes a body structure and when to reach for it.
type StructureFormat struct {
	Description string
	BestFor     []string
	Readability string
	Engagement  float64
}

// StructureFormats maps body structure names to their profiles.
var StructureFormats = map[string]StructureFormat{
	"linear": {
		Description: "Traditional paragraph flow",
		BestFor:     []string{"stories", "analysis", "long_form"},
		Readability: "medium",
		Engagement:  0.6,
	},
	"listicle": {
		Description: "Numbered or bulleted points",
		BestFor:     []string{"tips", "frameworks", "how_tos"},
		Readability: "high",
		Engagement:  0.85,
	},
	"framework": {
		Description: "Acronym or structured framework",
		BestFor:     []string{"thought_leadership", "teaching", "credibility"},
		Readability: "high",
		Engagement:  0.8,
	},
	"story_arc": {
		Description: "Problem, journey, solution, lesson",
		BestFor:     []string{"personal_brand", "inspiration", "relatability"},
		Readability: "medium",
		Engagement:  0.9,
	},
	"comparison": {
		Description: "Option A vs option B",
		BestFor:     []string{"decision_making", "education", "clarity"},
		Readability: "high",
		Engagement:  0.75,
	},
	"question_based": {
		Description: "Series of questions with answers",
		BestFor:     []string{"engagement", "teaching", "FAQ"},
		Readability: "high",
		Engagement:  0.8,
	},
}

// StructureFormatFor returns the profile for a body structure, defaulting
// to linear.
func StructureFormatFor(name string) StructureFormat {
	if f, ok := StructureFormats[name]; ok {
		return f
	}
	return StructureFormats["linear"]
}

package theme

// builtinOrder fixes the listing order of the built-in personas.
var builtinOrder = []string{
	"thought_leader",
	"personal_brand",
	"technical_expert",
	"community_builder",
	"corporate_professional",
	"contrarian_voice",
	"storyteller",
	"data_driven",
	"coach_mentor",
	"entertainer",
}

// builtins returns the pre-built personas keyed by registry key.
func builtins() map[string]*Theme {
	return map[string]*Theme{
		"thought_leader": {
			Name:                "Thought Leader",
			Description:         "Establish expertise and industry authority",
			Tone:                "professional",
			Formality:           "conversational",
			Emotion:             "analytical",
			PrimaryGoal:         "authority",
			ContentMix:          ContentMix{Educational: 0.6, Personal: 0.2, Promotional: 0.2},
			EmojiLevel:          "minimal",
			LineBreakStyle:      "scannable",
			ParagraphLength:     "standard",
			PreferredStructures: []string{"framework", "listicle", "comparison"},
			HookStyle:           "stat",
			CTAStyle:            "curiosity",
			HashtagStrategy:     "minimal",
			HashtagPlacement:    "end",
			CommentStyle:        "thoughtful",
			ControversyLevel:    "moderate",
			VulnerabilityLevel:  "selective",
			HumorLevel:          "subtle",
			PreferredFormats:    []string{"text", "document", "carousel"},
			MediaFrequency:      0.4,
			PostFrequency:       4,
			BestPostingTimes:    []string{"morning", "lunch"},
		},
		"personal_brand": {
			Name:                "Personal Brand Builder",
			Description:         "Build authentic personal connection and following",
			Tone:                "inspirational",
			Formality:           "friendly",
			Emotion:             "warm",
			PrimaryGoal:         "engagement",
			ContentMix:          ContentMix{Personal: 0.5, Educational: 0.3, Promotional: 0.2},
			EmojiLevel:          "moderate",
			LineBreakStyle:      "dramatic",
			ParagraphLength:     "tight",
			PreferredStructures: []string{"story_arc", "linear", "question_based"},
			HookStyle:           "story",
			CTAStyle:            "share",
			HashtagStrategy:     "mixed",
			HashtagPlacement:    "end",
			CommentStyle:        "conversational",
			ControversyLevel:    "safe",
			VulnerabilityLevel:  "open",
			HumorLevel:          "moderate",
			PreferredFormats:    []string{"text", "image", "video"},
			MediaFrequency:      0.6,
			PostFrequency:       5,
			BestPostingTimes:    []string{"morning", "evening"},
		},
		"technical_expert": {
			Name:                "Technical Expert",
			Description:         "Deep technical knowledge and precision",
			Tone:                "technical",
			Formality:           "formal",
			Emotion:             "analytical",
			PrimaryGoal:         "authority",
			ContentMix:          ContentMix{Educational: 0.7, Personal: 0.1, Promotional: 0.2},
			EmojiLevel:          "none",
			LineBreakStyle:      "readable",
			ParagraphLength:     "standard",
			PreferredStructures: []string{"listicle", "framework", "linear"},
			HookStyle:           "question",
			CTAStyle:            "direct",
			HashtagStrategy:     "niche",
			HashtagPlacement:    "end",
			CommentStyle:        "deep",
			ControversyLevel:    "safe",
			VulnerabilityLevel:  "guarded",
			HumorLevel:          "none",
			PreferredFormats:    []string{"text", "document", "carousel"},
			MediaFrequency:      0.3,
			PostFrequency:       3,
			BestPostingTimes:    []string{"morning"},
		},
		"community_builder": {
			Name:                "Community Builder",
			Description:         "Foster connection and conversation",
			Tone:                "casual",
			Formality:           "friendly",
			Emotion:             "playful",
			PrimaryGoal:         "community",
			ContentMix:          ContentMix{Personal: 0.4, Educational: 0.4, Promotional: 0.2},
			EmojiLevel:          "expressive",
			LineBreakStyle:      "scannable",
			ParagraphLength:     "tight",
			PreferredStructures: []string{"question_based", "story_arc", "listicle"},
			HookStyle:           "question",
			CTAStyle:            "curiosity",
			HashtagStrategy:     "trending",
			HashtagPlacement:    "first_comment",
			CommentStyle:        "conversational",
			ControversyLevel:    "safe",
			VulnerabilityLevel:  "open",
			HumorLevel:          "frequent",
			PreferredFormats:    []string{"poll", "text", "video"},
			MediaFrequency:      0.5,
			PostFrequency:       5,
			BestPostingTimes:    []string{"morning", "lunch", "evening"},
		},
		"corporate_professional": {
			Name:                "Corporate Professional",
			Description:         "Polished corporate communication",
			Tone:                "professional",
			Formality:           "formal",
			Emotion:             "neutral",
			PrimaryGoal:         "awareness",
			ContentMix:          ContentMix{Educational: 0.5, Promotional: 0.3, Personal: 0.2},
			EmojiLevel:          "minimal",
			LineBreakStyle:      "readable",
			ParagraphLength:     "standard",
			PreferredStructures: []string{"linear", "listicle", "comparison"},
			HookStyle:           "stat",
			CTAStyle:            "direct",
			HashtagStrategy:     "branded",
			HashtagPlacement:    "end",
			CommentStyle:        "brief",
			ControversyLevel:    "safe",
			VulnerabilityLevel:  "guarded",
			HumorLevel:          "none",
			PreferredFormats:    []string{"document", "image", "article"},
			MediaFrequency:      0.7,
			PostFrequency:       3,
			BestPostingTimes:    []string{"morning", "lunch"},
		},
		"contrarian_voice": {
			Name:                "Contrarian Voice",
			Description:         "Challenge status quo, spark debate",
			Tone:                "professional",
			Formality:           "conversational",
			Emotion:             "passionate",
			PrimaryGoal:         "engagement",
			ContentMix:          ContentMix{Educational: 0.5, Personal: 0.3, Promotional: 0.2},
			EmojiLevel:          "minimal",
			LineBreakStyle:      "dramatic",
			ParagraphLength:     "tight",
			PreferredStructures: []string{"linear", "comparison", "question_based"},
			HookStyle:           "controversy",
			CTAStyle:            "curiosity",
			HashtagStrategy:     "minimal",
			HashtagPlacement:    "mid",
			CommentStyle:        "thoughtful",
			ControversyLevel:    "bold",
			VulnerabilityLevel:  "selective",
			HumorLevel:          "subtle",
			PreferredFormats:    []string{"text", "carousel", "video"},
			MediaFrequency:      0.3,
			PostFrequency:       4,
			BestPostingTimes:    []string{"morning", "lunch"},
		},
		"storyteller": {
			Name:                "Storyteller",
			Description:         "Narrative-driven, emotional connection",
			Tone:                "inspirational",
			Formality:           "conversational",
			Emotion:             "warm",
			PrimaryGoal:         "engagement",
			ContentMix:          ContentMix{Personal: 0.6, Educational: 0.3, Promotional: 0.1},
			EmojiLevel:          "moderate",
			LineBreakStyle:      "dramatic",
			ParagraphLength:     "loose",
			PreferredStructures: []string{"story_arc", "linear"},
			HookStyle:           "story",
			CTAStyle:            "soft",
			HashtagStrategy:     "minimal",
			HashtagPlacement:    "end",
			CommentStyle:        "conversational",
			ControversyLevel:    "safe",
			VulnerabilityLevel:  "raw",
			HumorLevel:          "moderate",
			PreferredFormats:    []string{"text", "video", "image"},
			MediaFrequency:      0.5,
			PostFrequency:       4,
			BestPostingTimes:    []string{"morning", "evening"},
		},
		"data_driven": {
			Name:                "Data-Driven Analyst",
			Description:         "Let the numbers tell the story",
			Tone:                "professional",
			Formality:           "conversational",
			Emotion:             "analytical",
			PrimaryGoal:         "authority",
			ContentMix:          ContentMix{Educational: 0.7, Personal: 0.1, Promotional: 0.2},
			EmojiLevel:          "minimal",
			LineBreakStyle:      "scannable",
			ParagraphLength:     "tight",
			PreferredStructures: []string{"listicle", "comparison", "framework"},
			HookStyle:           "stat",
			CTAStyle:            "direct",
			HashtagStrategy:     "niche",
			HashtagPlacement:    "end",
			CommentStyle:        "thoughtful",
			ControversyLevel:    "moderate",
			VulnerabilityLevel:  "guarded",
			HumorLevel:          "subtle",
			PreferredFormats:    []string{"document", "carousel", "image"},
			MediaFrequency:      0.8,
			PostFrequency:       3,
			BestPostingTimes:    []string{"morning", "lunch"},
		},
		"coach_mentor": {
			Name:                "Coach/Mentor",
			Description:         "Guide and support your audience",
			Tone:                "inspirational",
			Formality:           "friendly",
			Emotion:             "warm",
			PrimaryGoal:         "community",
			ContentMix:          ContentMix{Educational: 0.5, Personal: 0.4, Promotional: 0.1},
			EmojiLevel:          "moderate",
			LineBreakStyle:      "scannable",
			ParagraphLength:     "tight",
			PreferredStructures: []string{"framework", "question_based", "listicle"},
			HookStyle:           "question",
			CTAStyle:            "action",
			HashtagStrategy:     "optimal",
			HashtagPlacement:    "end",
			CommentStyle:        "deep",
			ControversyLevel:    "safe",
			VulnerabilityLevel:  "open",
			HumorLevel:          "moderate",
			PreferredFormats:    []string{"text", "carousel", "video"},
			MediaFrequency:      0.5,
			PostFrequency:       5,
			BestPostingTimes:    []string{"morning", "evening"},
		},
		"entertainer": {
			Name:                "The Entertainer",
			Description:         "Make LinkedIn fun and memorable",
			Tone:                "humorous",
			Formality:           "casual",
			Emotion:             "playful",
			PrimaryGoal:         "engagement",
			ContentMix:          ContentMix{Personal: 0.5, Educational: 0.3, Promotional: 0.2},
			EmojiLevel:          "expressive",
			LineBreakStyle:      "dramatic",
			ParagraphLength:     "tight",
			PreferredStructures: []string{"story_arc", "linear", "question_based"},
			HookStyle:           "curiosity",
			CTAStyle:            "share",
			HashtagStrategy:     "trending",
			HashtagPlacement:    "first_comment",
			CommentStyle:        "conversational",
			ControversyLevel:    "moderate",
			VulnerabilityLevel:  "open",
			HumorLevel:          "frequent",
			PreferredFormats:    []string{"text", "video", "image"},
			MediaFrequency:      0.6,
			PostFrequency:       5,
			BestPostingTimes:    []string{"lunch", "evening"},
		},
	}
}

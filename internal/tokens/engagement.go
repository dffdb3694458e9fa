package tokens

// HookProfile describes a hook style's effectiveness and example openers.
type HookProfile struct {
	Power    float64
	Examples []string
	BestFor  []string
}

// Hooks maps hook styles to their engagement profiles.
var Hooks = map[string]HookProfile{
	"question": {
		Power:    0.8,
		Examples: []string{"What if...?", "Why do...?", "How can...?"},
		BestFor:  []string{"polls", "discussion", "community"},
	},
	"stat": {
		Power:    0.9,
		Examples: []string{"95% of...", "Only 3 out of 10...", "2025 data shows..."},
		BestFor:  []string{"thought_leadership", "credibility", "shock_value"},
	},
	"story": {
		Power:    0.85,
		Examples: []string{"Last Tuesday changed everything...", "I'll never forget when..."},
		BestFor:  []string{"personal_brand", "relatability", "emotion"},
	},
	"controversy": {
		Power:    0.95,
		Examples: []string{"Unpopular opinion:", "Everyone's wrong about...", "Stop doing..."},
		BestFor:  []string{"virality", "debate", "attention"},
	},
	"list": {
		Power:    0.7,
		Examples: []string{"5 ways to...", "The 3 mistakes...", "Here's what works:"},
		BestFor:  []string{"value", "clarity", "scannability"},
	},
	"curiosity": {
		Power:    0.75,
		Examples: []string{"The secret to...", "What nobody tells you...", "Here's the truth..."},
		BestFor:  []string{"intrigue", "retention", "click_through"},
	},
}

// CTAProfile describes a call-to-action style.
type CTAProfile struct {
	Power    float64
	Examples []string
	BestFor  string
}

// CTAStyles maps call-to-action styles to their engagement profiles.
var CTAStyles = map[string]CTAProfile{
	"direct": {
		Power:    0.7,
		Examples: []string{"Comment below", "Share your thoughts", "Let me know"},
		BestFor:  "straightforward_engagement",
	},
	"curiosity": {
		Power:    0.85,
		Examples: []string{"What do you think?", "Am I missing something?", "Agree or disagree?"},
		BestFor:  "opinion_seeking",
	},
	"action": {
		Power:    0.75,
		Examples: []string{"Try this today", "Save this for later", "Tag someone who needs this"},
		BestFor:  "utility_posts",
	},
	"share": {
		Power:    0.9,
		Examples: []string{"Tag someone who...", "Share if you...", "Send this to..."},
		BestFor:  "viral_potential",
	},
	"poll": {
		Power:    0.95,
		Examples: []string{"Vote in the poll", "Which option?", "Pick one"},
		BestFor:  "poll_posts",
	},
	"soft": {
		Power:    0.8,
		Examples: []string{"Thoughts?", "Your take?", "What's your experience?"},
		BestFor:  "natural_conversation",
	},
}

// CTAEmojis maps call-to-action styles to the emoji prefixed under
// emoji-friendly themes.
var CTAEmojis = map[string]string{
	"direct":    "👇",
	"curiosity": "🤔",
	"action":    "⚡",
	"share":     "🔄",
	"soft":      "💭",
}

// EmojiDigits are the glyphs for emoji-numbered list items 1 through 10.
// Lists past the tenth item fall back to plain numerals.
var EmojiDigits = []string{"1️⃣", "2️⃣", "3️⃣", "4️⃣", "5️⃣", "6️⃣", "7️⃣", "8️⃣", "9️⃣", "🔟"}

// HookPower returns the effectiveness rating for a hook style, defaulting
// to 0.5 for unknown styles.
func HookPower(style string) float64 {
	if p, ok := Hooks[style]; ok {
		return p.Power
	}
	return 0.5
}

// CTAPower returns the effectiveness rating for a call-to-action style,
// defaulting to 0.5 for unknown styles.
func CTAPower(style string) float64 {
	if p, ok := CTAStyles[style]; ok {
		return p.Power
	}
	return 0.5
}

package compose

import (
	"strings"

	"github.com/louisbranch/postforge/internal/compose/theme"
)

// Prebuilt post patterns for the most common shapes. Each returns a ready
// Post the caller can keep extending before composing.

// ThoughtLeadershipPost opens with a statistic, walks through a named
// framework, and closes asking which part resonates.
func ThoughtLeadershipPost(hookStat, frameworkName string, frameworkParts []string, conclusion string, th *theme.Theme) *Post {
	p := NewPost("text", th, nil)
	p.AddHook("stat", hookStat)
	p.AddBody("Here's the "+frameworkName+":", "linear")
	p.AddBody(strings.Join(frameworkParts, "||"), "framework")
	p.AddSeparator("line")
	p.AddBody(conclusion, "linear")
	p.AddCTA("curiosity", "Which resonates most with you?")
	p.AddHashtags([]string{strings.ReplaceAll(frameworkName, " ", ""), "Leadership", "Strategy"}, "")
	return p
}

// StoryPost follows the problem, journey, solution arc and lands on the
// lesson.
func StoryPost(hook, problem, journey, solution, lesson string, th *theme.Theme) *Post {
	p := NewPost("text", th, nil)
	p.AddHook("story", hook)
	p.AddBody(problem+"\n\n"+journey+"\n\n"+solution, "story_arc")
	p.AddSeparator("dots")
	p.AddBody("The lesson: "+lesson, "linear")
	p.AddCTA("soft", "Have you experienced something similar?")
	return p
}

// ListiclePost renders items as a scannable list with a save-worthy close.
func ListiclePost(hook string, items []string, conclusion string, th *theme.Theme) *Post {
	p := NewPost("text", th, nil)
	p.AddHook("list", hook)
	p.AddBody(strings.Join(items, "\n"), "listicle")
	p.AddSeparator("wave")
	p.AddBody(conclusion, "linear")
	p.AddCTA("action", "Save this for later")
	return p
}

// ComparisonPost weighs two options and states a recommendation.
func ComparisonPost(hook, optionA, optionB, recommendation string, th *theme.Theme) *Post {
	p := NewPost("text", th, nil)
	p.AddHook("question", hook)
	p.AddBody(optionA+"||"+optionB, "comparison")
	p.AddSeparator("line")
	p.AddBody("My take: "+recommendation, "linear")
	p.AddCTA("curiosity", "Which would you choose?")
	return p
}

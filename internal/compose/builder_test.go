package compose

import "testing"

func TestThoughtLeadershipPost(t *testing.T) {
	p := ThoughtLeadershipPost(
		"Only 12% of strategies survive contact",
		"GROW model",
		[]string{"Goal", "Reality", "Options", "Will"},
		"Write goals down",
		nil,
	)
	got, err := p.Compose()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := "Only 12% of strategies survive contact\n\n" +
		"Here's the GROW model:\n\n" +
		"📌 Goal\n\n📌 Reality\n\n📌 Options\n\n📌 Will\n\n" +
		"\n\n---\n\n\n\n" +
		"Write goals down\n\n" +
		"Which resonates most with you?\n\n" +
		"#GROWmodel #Leadership #Strategy"
	if got != want {
		t.Fatalf("expected %q, got %q", want, got)
	}
}

func TestStoryPost(t *testing.T) {
	p := StoryPost(
		"I almost quit in 2021",
		"The product flopped",
		"I spent a year talking to users",
		"We relaunched smaller",
		"ship less, listen more",
		nil,
	)
	got, err := p.Compose()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := "I almost quit in 2021\n\n" +
		"The product flopped\n\nI spent a year talking to users\n\nWe relaunched smaller\n\n" +
		"\n\n• • •\n\n\n\n" +
		"The lesson: ship less, listen more\n\n" +
		"Have you experienced something similar?"
	if got != want {
		t.Fatalf("expected %q, got %q", want, got)
	}
}

func TestListiclePost(t *testing.T) {
	p := ListiclePost(
		"5 habits of calm engineers",
		[]string{"Write it down", "Ship small"},
		"Pick one this week",
		nil,
	)
	got, err := p.Compose()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := "5 habits of calm engineers\n\n" +
		"→ Write it down\n→ Ship small\n\n" +
		"\n\n~\n\n\n\n" +
		"Pick one this week\n\n" +
		"Save this for later"
	if got != want {
		t.Fatalf("expected %q, got %q", want, got)
	}
}

func TestComparisonPost(t *testing.T) {
	p := ComparisonPost("Buy or build?", "Buy", "Build", "buy below 10k users", nil)
	got, err := p.Compose()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := "Buy or build?\n\n" +
		"❌ Buy\n\n✅ Build\n\n" +
		"\n\n---\n\n\n\n" +
		"My take: buy below 10k users\n\n" +
		"Which would you choose?"
	if got != want {
		t.Fatalf("expected %q, got %q", want, got)
	}
}

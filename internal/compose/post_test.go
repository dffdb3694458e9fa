package compose

import (
	"errors"
	"strings"
	"testing"

	"github.com/louisbranch/postforge/internal/tokens"
)

func TestComposeJoinsComponentsInOrder(t *testing.T) {
	p := NewPost("text", nil, nil).
		AddHook("stat", "95% of buyers…").
		AddBody("A||B", "comparison").
		AddCTA("direct", "Comment now").
		AddHashtags([]string{"ai", "b2b"}, "")
	got, err := p.Compose()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := "95% of buyers…\n\n❌ A\n\n✅ B\n\nComment now\n\n#ai #b2b"
	if got != want {
		t.Fatalf("expected %q, got %q", want, got)
	}
}

func TestComposeSkipsInvalidComponents(t *testing.T) {
	p := NewPost("text", nil, nil).
		AddHook("stat", "Numbers beat opinions").
		AddQuote(strings.Repeat("a", 501), "Ada", "").
		AddBody("Ship weekly", "linear").
		AddHook("question", "")
	res, err := p.ComposeResult()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := "Numbers beat opinions\n\nShip weekly"
	if res.Text != want {
		t.Fatalf("expected %q, got %q", want, res.Text)
	}
	if len(res.Skipped) != 2 || res.Skipped[0] != KindQuote || res.Skipped[1] != KindHook {
		t.Fatalf("expected skipped [quote hook], got %v", res.Skipped)
	}
}

func TestComposeEmptyPost(t *testing.T) {
	got, err := NewPost("text", nil, nil).Compose()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != "" {
		t.Fatalf("expected empty text, got %q", got)
	}
}

func TestComposeLengthLimit(t *testing.T) {
	at := NewPost("text", nil, nil).
		AddBody(strings.Repeat("a", 1499), "linear").
		AddBody(strings.Repeat("b", 1499), "linear")
	text, err := at.Compose()
	if err != nil {
		t.Fatalf("unexpected error at limit: %v", err)
	}
	if n := runeLen(text); n != tokens.MaxPostLength {
		t.Fatalf("expected %d chars, got %d", tokens.MaxPostLength, n)
	}

	over := NewPost("text", nil, nil).
		AddBody(strings.Repeat("a", 1499), "linear").
		AddBody(strings.Repeat("b", 1500), "linear")
	_, err = over.Compose()
	var lengthErr *LengthExceededError
	if !errors.As(err, &lengthErr) {
		t.Fatalf("expected LengthExceededError, got %v", err)
	}
	if lengthErr.Length != 3001 || lengthErr.Limit != tokens.MaxPostLength {
		t.Fatalf("expected 3001 over %d, got %d over %d", tokens.MaxPostLength, lengthErr.Length, lengthErr.Limit)
	}
}

func TestPreviewTruncates(t *testing.T) {
	p := NewPost("text", nil, nil).AddBody(strings.Repeat("a", 300), "linear")
	got, err := p.Preview(tokens.TruncationPoint)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if n := runeLen(got); n != tokens.TruncationPoint+3 {
		t.Fatalf("expected %d chars, got %d", tokens.TruncationPoint+3, n)
	}
	if !strings.HasSuffix(got, "...") {
		t.Fatalf("expected ellipsis suffix, got %q", got)
	}
	if got[:tokens.TruncationPoint] != strings.Repeat("a", tokens.TruncationPoint) {
		t.Fatal("expected preview to keep the leading text")
	}
}

func TestPreviewKeepsShortText(t *testing.T) {
	p := NewPost("text", nil, nil).AddBody(strings.Repeat("a", 100), "linear")
	got, err := p.Preview(tokens.TruncationPoint)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != strings.Repeat("a", 100) {
		t.Fatalf("expected text unchanged, got %q", got)
	}
}

func TestTruncateMultibyte(t *testing.T) {
	text := strings.Repeat("🚀", 5)
	if got := Truncate(text, 3); got != "🚀🚀🚀..." {
		t.Fatalf("expected three emoji plus ellipsis, got %q", got)
	}
	if got := Truncate(text, 5); got != text {
		t.Fatalf("expected text unchanged, got %q", got)
	}
}

func TestAddBodyStructureFromConfig(t *testing.T) {
	p := NewPost("text", nil, map[string]any{"structure": "comparison"}).AddBody("A||B", "")
	got, err := p.Compose()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != "❌ A\n\n✅ B" {
		t.Fatalf("expected comparison structure from config, got %q", got)
	}
}

func TestOptimizeForEngagement(t *testing.T) {
	th := newTheme(t, nil)
	p := NewPost("text", th, nil).AddBody("Ship weekly", "linear")
	p.OptimizeForEngagement()
	if len(p.Components) != 3 {
		t.Fatalf("expected 3 components, got %d", len(p.Components))
	}
	if p.Components[0].Kind() != KindHook {
		t.Fatalf("expected leading hook, got %s", p.Components[0].Kind())
	}
	if p.Components[2].Kind() != KindCallToAction {
		t.Fatalf("expected trailing call to action, got %s", p.Components[2].Kind())
	}
	res, err := p.ComposeResult()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := "Ship weekly\n\n👇 What's your take?"
	if res.Text != want {
		t.Fatalf("expected %q, got %q", want, res.Text)
	}
	if len(res.Skipped) != 1 || res.Skipped[0] != KindHook {
		t.Fatalf("expected the empty hook skipped, got %v", res.Skipped)
	}
}

func TestOptimizeForEngagementWithoutTheme(t *testing.T) {
	p := NewPost("text", nil, nil).AddBody("Ship weekly", "linear")
	p.OptimizeForEngagement()
	if len(p.Components) != 1 {
		t.Fatalf("expected components unchanged, got %d", len(p.Components))
	}
}

func TestOptimizeForEngagementKeepsExisting(t *testing.T) {
	th := newTheme(t, nil)
	p := NewPost("text", th, nil).
		AddHook("stat", "90% ship late").
		AddCTA("direct", "Comment now")
	p.OptimizeForEngagement()
	if len(p.Components) != 2 {
		t.Fatalf("expected components unchanged, got %d", len(p.Components))
	}
}

func TestExport(t *testing.T) {
	th := newTheme(t, nil)
	p := NewPost("text", th, nil).
		AddBody("Ship weekly", "linear").
		AddHook("question", "")
	export, err := p.Export()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if export.PostType != "text" {
		t.Fatalf("expected post type text, got %q", export.PostType)
	}
	if export.Theme != "Test Theme" {
		t.Fatalf("expected theme name, got %q", export.Theme)
	}
	if len(export.Components) != 2 {
		t.Fatalf("expected every component exported, got %d", len(export.Components))
	}
	if export.Components[1].Type != KindHook || export.Components[1].Content != "" {
		t.Fatalf("expected invalid hook exported as rendered, got %+v", export.Components[1])
	}
	if export.FinalText != "Ship weekly" {
		t.Fatalf("expected final text to drop the invalid hook, got %q", export.FinalText)
	}
	if export.CharacterCount != 11 {
		t.Fatalf("expected character count 11, got %d", export.CharacterCount)
	}
	if export.Preview != "Ship weekly" {
		t.Fatalf("expected short preview unchanged, got %q", export.Preview)
	}
}

package draft

import (
	"strings"
	"testing"

	"github.com/louisbranch/postforge/internal/compose"
	"github.com/louisbranch/postforge/internal/draft/storage"
)

func TestComputeStats(t *testing.T) {
	t.Parallel()

	d := storage.Draft{
		Components: []storage.Component{
			mustComponent(t, compose.KindHook, HookParams{Type: "stat", Content: "x"}),
			mustComponent(t, compose.KindBody, BodyParams{Content: "x"}),
			mustComponent(t, compose.KindCallToAction, CTAParams{Type: "direct", Text: "x"}),
			mustComponent(t, compose.KindHashtags, HashtagsParams{Tags: []string{"go", "dev", "tools"}}),
		},
	}
	stats := ComputeStats(d, "one two three")

	if stats.CharacterCount != 13 {
		t.Fatalf("CharacterCount = %d, want 13", stats.CharacterCount)
	}
	if stats.WordCount != 3 {
		t.Fatalf("WordCount = %d, want 3", stats.WordCount)
	}
	if stats.CharsRemaining != 2987 {
		t.Fatalf("CharsRemaining = %d, want 2987", stats.CharsRemaining)
	}
	if stats.PreviewVisible != 13 {
		t.Fatalf("PreviewVisible = %d, want 13", stats.PreviewVisible)
	}
	if !stats.HasHook {
		t.Fatal("expected HasHook")
	}
	if !stats.HasCTA {
		t.Fatal("expected HasCTA")
	}
	if stats.HashtagCount != 3 {
		t.Fatalf("HashtagCount = %d, want 3", stats.HashtagCount)
	}
}

func TestComputeStatsPreviewFold(t *testing.T) {
	t.Parallel()

	stats := ComputeStats(storage.Draft{}, strings.Repeat("a", 300))
	if stats.PreviewVisible != 210 {
		t.Fatalf("PreviewVisible = %d, want 210", stats.PreviewVisible)
	}
	if stats.CharacterCount != 300 {
		t.Fatalf("CharacterCount = %d, want 300", stats.CharacterCount)
	}
}

func TestComputeStatsEmptyText(t *testing.T) {
	t.Parallel()

	stats := ComputeStats(storage.Draft{}, "")
	if stats.CharacterCount != 0 || stats.WordCount != 0 {
		t.Fatalf("counts = %d chars %d words, want zeros", stats.CharacterCount, stats.WordCount)
	}
	if stats.CharsRemaining != 3000 {
		t.Fatalf("CharsRemaining = %d, want 3000", stats.CharsRemaining)
	}
	if stats.HasHook || stats.HasCTA || stats.HashtagCount != 0 {
		t.Fatalf("stats = %+v, want no components detected", stats)
	}
}

func TestComputeStatsCountsRunes(t *testing.T) {
	t.Parallel()

	stats := ComputeStats(storage.Draft{}, "🚀🚀🚀 🚀")
	if stats.CharacterCount != 5 {
		t.Fatalf("CharacterCount = %d, want 5", stats.CharacterCount)
	}
	if stats.WordCount != 2 {
		t.Fatalf("WordCount = %d, want 2", stats.WordCount)
	}
}

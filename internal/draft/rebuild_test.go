package draft

import (
	"encoding/json"
	"testing"

	"github.com/louisbranch/postforge/internal/compose"
	"github.com/louisbranch/postforge/internal/draft/storage"
	apperrors "github.com/louisbranch/postforge/internal/platform/errors"
)

func TestRebuildComposesStoredComponents(t *testing.T) {
	t.Parallel()

	d := storage.Draft{
		PostType: "text",
		Components: []storage.Component{
			mustComponent(t, compose.KindHook, HookParams{Type: "stat", Content: "3 lessons from launch week"}),
			mustComponent(t, compose.KindBody, BodyParams{Content: "We shipped late"}),
			mustComponent(t, compose.KindNumberedList, NumberedListParams{Items: []string{"Cut scope", "Talk to users"}, Style: "numbers", Start: 1}),
			mustComponent(t, compose.KindHashtags, HashtagsParams{Tags: []string{"startups"}}),
		},
	}

	post, err := Rebuild(d, nil)
	if err != nil {
		t.Fatalf("rebuild: %v", err)
	}
	text, err := post.Compose()
	if err != nil {
		t.Fatalf("compose: %v", err)
	}
	want := "3 lessons from launch week\n\nWe shipped late\n\n1. Cut scope\n2. Talk to users\n\n#startups"
	if text != want {
		t.Fatalf("text = %q, want %q", text, want)
	}
}

func TestRebuildAppliesVariantSelections(t *testing.T) {
	t.Parallel()

	body := mustComponent(t, compose.KindBody, BodyParams{Content: "Goal||Reality"})

	// The insight style resolves to a framework structure, which splits the
	// body on the part separator.
	styled := storage.Draft{
		PostType:   "text",
		Selections: map[string]string{"style": "insight"},
		Components: []storage.Component{body},
	}
	post, err := Rebuild(styled, nil)
	if err != nil {
		t.Fatalf("rebuild: %v", err)
	}
	text, err := post.Compose()
	if err != nil {
		t.Fatalf("compose: %v", err)
	}
	if want := "📌 Goal\n\n📌 Reality"; text != want {
		t.Fatalf("text = %q, want %q", text, want)
	}

	// Without a selection the body falls back to linear rendering.
	plain := storage.Draft{
		PostType:   "text",
		Components: []storage.Component{body},
	}
	post, err = Rebuild(plain, nil)
	if err != nil {
		t.Fatalf("rebuild: %v", err)
	}
	text, err = post.Compose()
	if err != nil {
		t.Fatalf("compose: %v", err)
	}
	if want := "Goal||Reality"; text != want {
		t.Fatalf("text = %q, want %q", text, want)
	}
}

func TestRebuildEmptyParamsUseDefaults(t *testing.T) {
	t.Parallel()

	d := storage.Draft{
		PostType: "text",
		Components: []storage.Component{
			mustComponent(t, compose.KindBody, BodyParams{Content: "A"}),
			{Kind: compose.KindSeparator},
			mustComponent(t, compose.KindBody, BodyParams{Content: "B"}),
		},
	}
	post, err := Rebuild(d, nil)
	if err != nil {
		t.Fatalf("rebuild: %v", err)
	}
	text, err := post.Compose()
	if err != nil {
		t.Fatalf("compose: %v", err)
	}
	if want := "A\n\n\n\n---\n\n\n\nB"; text != want {
		t.Fatalf("text = %q, want %q", text, want)
	}
}

func TestRebuildUnknownKind(t *testing.T) {
	t.Parallel()

	d := storage.Draft{
		PostType:   "text",
		Components: []storage.Component{{Kind: "banner"}},
	}
	_, err := Rebuild(d, nil)
	if apperrors.CodeOf(err) != apperrors.CodeDraftComponentUnknown {
		t.Fatalf("code = %v, want %v", apperrors.CodeOf(err), apperrors.CodeDraftComponentUnknown)
	}
}

func TestRebuildMalformedParams(t *testing.T) {
	t.Parallel()

	d := storage.Draft{
		PostType: "text",
		Components: []storage.Component{
			{Kind: compose.KindBody, Params: json.RawMessage(`{"content":`)},
		},
	}
	_, err := Rebuild(d, nil)
	if apperrors.CodeOf(err) != apperrors.CodeDraftComponentInvalid {
		t.Fatalf("code = %v, want %v", apperrors.CodeOf(err), apperrors.CodeDraftComponentInvalid)
	}
}

func TestNewComponent(t *testing.T) {
	t.Parallel()

	c, err := NewComponent(compose.KindQuote, QuoteParams{Text: "Ship it", Author: "Ada"})
	if err != nil {
		t.Fatalf("new component: %v", err)
	}
	var decoded QuoteParams
	if err := json.Unmarshal(c.Params, &decoded); err != nil {
		t.Fatalf("decode params: %v", err)
	}
	if decoded.Text != "Ship it" || decoded.Author != "Ada" {
		t.Fatalf("decoded = %+v, want text and author round-tripped", decoded)
	}

	bare, err := NewComponent(compose.KindSeparator, nil)
	if err != nil {
		t.Fatalf("new component: %v", err)
	}
	if bare.Params != nil {
		t.Fatalf("params = %s, want nil", bare.Params)
	}
}

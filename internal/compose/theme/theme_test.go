package theme

import (
	"errors"
	"strings"
	"testing"
)

func validInput() Input {
	return Input{
		Name:                "Weekend Builder",
		Description:         "Ship and tell",
		Tone:                "casual",
		Formality:           "friendly",
		Emotion:             "warm",
		PrimaryGoal:         "community",
		ContentMix:          ContentMix{Educational: 0.5, Personal: 0.3, Promotional: 0.2},
		EmojiLevel:          "moderate",
		LineBreakStyle:      "scannable",
		ParagraphLength:     "tight",
		PreferredStructures: []string{"listicle"},
		HookStyle:           "question",
		CTAStyle:            "curiosity",
		HashtagStrategy:     "minimal",
		HashtagPlacement:    "end",
		CommentStyle:        "conversational",
		ControversyLevel:    "safe",
		VulnerabilityLevel:  "open",
		HumorLevel:          "moderate",
		PreferredFormats:    []string{"text"},
		MediaFrequency:      0.4,
		PostFrequency:       2,
		BestPostingTimes:    []string{"morning"},
	}
}

func TestNewValidatesContentMix(t *testing.T) {
	tests := []struct {
		name    string
		mix     ContentMix
		wantErr error
	}{
		{"balanced", ContentMix{Educational: 0.5, Personal: 0.3, Promotional: 0.2}, nil},
		{"high within tolerance", ContentMix{Educational: 0.5, Personal: 0.3, Promotional: 0.24}, nil},
		{"low within tolerance", ContentMix{Educational: 0.5, Personal: 0.3, Promotional: 0.16}, nil},
		{"sum too low", ContentMix{Educational: 0.5, Personal: 0.3, Promotional: 0.1}, ErrContentMixInvalid},
		{"sum too high", ContentMix{Educational: 0.6, Personal: 0.4, Promotional: 0.2}, ErrContentMixInvalid},
		{"negative weight", ContentMix{Educational: 1.2, Personal: -0.2}, ErrContentMixInvalid},
		{"weight above one", ContentMix{Educational: 1.1, Personal: -0.05, Promotional: -0.05}, ErrContentMixInvalid},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			input := validInput()
			input.ContentMix = tt.mix
			_, err := New(input)
			if tt.wantErr == nil {
				if err != nil {
					t.Fatalf("expected no error, got %v", err)
				}
				return
			}
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("expected %v, got %v", tt.wantErr, err)
			}
		})
	}
}

func TestNewRejectsEmptyName(t *testing.T) {
	input := validInput()
	input.Name = "   "
	if _, err := New(input); !errors.Is(err, ErrNameEmpty) {
		t.Fatalf("expected %v, got %v", ErrNameEmpty, err)
	}
}

func TestNewTrimsName(t *testing.T) {
	input := validInput()
	input.Name = "  Weekend Builder  "
	th, err := New(input)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if th.Name != "Weekend Builder" {
		t.Fatalf("expected trimmed name, got %q", th.Name)
	}
}

func TestNewCopiesSlices(t *testing.T) {
	input := validInput()
	th, err := New(input)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	input.PreferredStructures[0] = "mutated"
	if th.PreferredStructures[0] != "listicle" {
		t.Fatalf("expected theme to own its slices, got %q", th.PreferredStructures[0])
	}
}

func TestKey(t *testing.T) {
	tests := []struct {
		name string
		want string
	}{
		{"Thought Leader", "thought_leader"},
		{"The Entertainer", "the_entertainer"},
		{"already_keyed", "already_keyed"},
		{"Mixed CASE Words", "mixed_case_words"},
	}
	for _, tt := range tests {
		if got := Key(tt.name); got != tt.want {
			t.Fatalf("Key(%q): expected %q, got %q", tt.name, tt.want, got)
		}
	}
}

func TestSummarizeFormatsFrequency(t *testing.T) {
	input := validInput()
	input.PostFrequency = 4
	th, err := New(input)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	s := th.Summarize()
	if s.PostFrequency != "4x per week" {
		t.Fatalf("expected frequency label, got %q", s.PostFrequency)
	}
	if s.Name != "Weekend Builder" || s.Goal != "community" {
		t.Fatalf("unexpected summary: %+v", s)
	}
}

func TestContentMixSum(t *testing.T) {
	mix := ContentMix{Educational: 0.6, Personal: 0.2, Promotional: 0.2}
	if got := mix.Sum(); got < 0.999 || got > 1.001 {
		t.Fatalf("expected sum 1.0, got %v", got)
	}
}

func TestYAMLRoundTrip(t *testing.T) {
	th, err := New(validInput())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	data, err := EncodeYAML(th)
	if err != nil {
		t.Fatalf("encode: %v", err)
	}
	if !strings.Contains(string(data), "name: Weekend Builder") {
		t.Fatalf("expected snake_case yaml fields, got:\n%s", data)
	}
	decoded, err := DecodeYAML(data)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	back, err := New(decoded)
	if err != nil {
		t.Fatalf("revalidate: %v", err)
	}
	if back.Name != th.Name || back.EmojiLevel != th.EmojiLevel {
		t.Fatalf("round trip mismatch: %+v", back)
	}
	if back.ContentMix != th.ContentMix {
		t.Fatalf("expected content mix %+v, got %+v", th.ContentMix, back.ContentMix)
	}
}

func TestDecodeYAMLInvalid(t *testing.T) {
	if _, err := DecodeYAML([]byte(":\n\t- broken")); err == nil {
		t.Fatal("expected error for malformed yaml")
	}
}

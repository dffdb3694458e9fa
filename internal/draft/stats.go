package draft

import (
	"encoding/json"
	"strings"
	"unicode/utf8"

	"github.com/louisbranch/postforge/internal/compose"
	"github.com/louisbranch/postforge/internal/draft/storage"
	"github.com/louisbranch/postforge/internal/tokens"
)

// Stats summarizes a composed draft for the author: size against the
// platform limit, how much shows above the feed fold, and which engagement
// components are present.
type Stats struct {
	CharacterCount int  `json:"character_count"`
	WordCount      int  `json:"word_count"`
	CharsRemaining int  `json:"chars_remaining"`
	PreviewVisible int  `json:"preview_visible"`
	HasHook        bool `json:"has_hook"`
	HasCTA         bool `json:"has_cta"`
	HashtagCount   int  `json:"hashtag_count"`
}

// ComputeStats reports stats for a draft whose composed text is text.
// Counts are in runes. PreviewVisible is how many characters show above
// the fold; CharsRemaining goes negative past the limit.
func ComputeStats(d storage.Draft, text string) Stats {
	chars := utf8.RuneCountInString(text)
	stats := Stats{
		CharacterCount: chars,
		WordCount:      len(strings.Fields(text)),
		CharsRemaining: tokens.MaxPostLength - chars,
		PreviewVisible: chars,
	}
	if stats.PreviewVisible > tokens.TruncationPoint {
		stats.PreviewVisible = tokens.TruncationPoint
	}
	for _, c := range d.Components {
		switch c.Kind {
		case compose.KindHook:
			stats.HasHook = true
		case compose.KindCallToAction:
			stats.HasCTA = true
		case compose.KindHashtags:
			var p HashtagsParams
			if len(c.Params) > 0 && json.Unmarshal(c.Params, &p) == nil {
				stats.HashtagCount += len(p.Tags)
			}
		}
	}
	return stats
}

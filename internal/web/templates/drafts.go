package templates

import (
	"context"
	"html"
	"io"
	"strings"

	"github.com/a-h/templ"
)

// DraftRow holds formatted draft data for the list page.
type DraftRow struct {
	// ID is the draft identifier used to build the detail link.
	ID string
	// Name is the draft's display name.
	Name string
	// PostType is the post type label.
	PostType string
	// Theme is the applied theme key, empty when unset.
	Theme string
	// Components is the formatted component count.
	Components string
	// UpdatedDate is the formatted last-update date.
	UpdatedDate string
}

// StatChip is one labeled value in the preview stats row.
type StatChip struct {
	Label string
	Value string
}

// DraftPreview holds formatted draft data for the preview page.
type DraftPreview struct {
	// Name is the draft's display name.
	Name string
	// PostType is the post type label.
	PostType string
	// ThemeName is the display name of the applied theme, empty when unset.
	ThemeName string
	// ThemeDescription summarizes the applied theme's voice.
	ThemeDescription string
	// VisibleText is the composed text that shows above the feed fold.
	VisibleText string
	// HiddenText is the composed text behind the see-more fold.
	HiddenText string
	// Chips are the engagement stats rendered as chips.
	Chips []StatChip
	// ShareURL is the shareable preview address, empty on the shared page.
	ShareURL string
}

// DraftListPage renders the draft index.
func DraftListPage(page PageContext, rows []DraftRow) templ.Component {
	body := templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		var b strings.Builder
		b.WriteString("<h1>")
		b.WriteString(html.EscapeString(T(page.Loc, "drafts.heading")))
		b.WriteString("</h1>")
		if len(rows) == 0 {
			b.WriteString("<p class=\"muted\">")
			b.WriteString(html.EscapeString(T(page.Loc, "drafts.empty")))
			b.WriteString("</p>")
			_, err := io.WriteString(w, b.String())
			return err
		}

		b.WriteString("<table><thead><tr>")
		for _, key := range []string{"drafts.col_name", "drafts.col_type", "drafts.col_theme", "drafts.col_components", "drafts.col_updated"} {
			b.WriteString("<th>")
			b.WriteString(html.EscapeString(T(page.Loc, key)))
			b.WriteString("</th>")
		}
		b.WriteString("</tr></thead><tbody>")
		for _, row := range rows {
			b.WriteString("<tr><td><a href=\"/drafts/")
			b.WriteString(html.EscapeString(row.ID))
			b.WriteString("\">")
			b.WriteString(html.EscapeString(row.Name))
			b.WriteString("</a></td><td>")
			b.WriteString(html.EscapeString(row.PostType))
			b.WriteString("</td><td>")
			b.WriteString(html.EscapeString(row.Theme))
			b.WriteString("</td><td>")
			b.WriteString(html.EscapeString(row.Components))
			b.WriteString("</td><td>")
			b.WriteString(html.EscapeString(row.UpdatedDate))
			b.WriteString("</td></tr>")
		}
		b.WriteString("</tbody></table>")
		_, err := io.WriteString(w, b.String())
		return err
	})
	return pageLayout(page, T(page.Loc, "title.drafts", page.AppName), body)
}

// DraftPreviewPage renders one draft's composed text, fold split, stats
// chips, and theme summary.
func DraftPreviewPage(page PageContext, preview DraftPreview) templ.Component {
	body := templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		var b strings.Builder
		b.WriteString("<h1>")
		b.WriteString(html.EscapeString(preview.Name))
		b.WriteString("</h1><p class=\"muted\">")
		b.WriteString(html.EscapeString(preview.PostType))
		b.WriteString("</p>")

		if len(preview.Chips) > 0 {
			b.WriteString("<ul class=\"chips\">")
			for _, chip := range preview.Chips {
				b.WriteString("<li><span class=\"label\">")
				b.WriteString(html.EscapeString(chip.Label))
				b.WriteString("</span>")
				b.WriteString(html.EscapeString(chip.Value))
				b.WriteString("</li>")
			}
			b.WriteString("</ul>")
		}

		b.WriteString("<h2>")
		b.WriteString(html.EscapeString(T(page.Loc, "draft.composed")))
		b.WriteString("</h2>")
		if preview.VisibleText == "" && preview.HiddenText == "" {
			b.WriteString("<p class=\"muted\">")
			b.WriteString(html.EscapeString(T(page.Loc, "draft.empty_text")))
			b.WriteString("</p>")
		} else {
			b.WriteString("<div class=\"post\">")
			b.WriteString(html.EscapeString(preview.VisibleText))
			if preview.HiddenText != "" {
				b.WriteString("<hr class=\"fold\" title=\"")
				b.WriteString(html.EscapeString(T(page.Loc, "draft.fold")))
				b.WriteString("\">")
				b.WriteString(html.EscapeString(preview.HiddenText))
			}
			b.WriteString("</div>")
		}

		if preview.ThemeName != "" {
			b.WriteString("<div class=\"theme-card\"><strong>")
			b.WriteString(html.EscapeString(T(page.Loc, "draft.theme")))
			b.WriteString(":</strong> ")
			b.WriteString(html.EscapeString(preview.ThemeName))
			if preview.ThemeDescription != "" {
				b.WriteString("<p class=\"muted\">")
				b.WriteString(html.EscapeString(preview.ThemeDescription))
				b.WriteString("</p>")
			}
			b.WriteString("</div>")
		}

		if preview.ShareURL != "" {
			b.WriteString("<p><a href=\"")
			b.WriteString(html.EscapeString(preview.ShareURL))
			b.WriteString("\">")
			b.WriteString(html.EscapeString(T(page.Loc, "draft.share")))
			b.WriteString("</a></p>")
		}

		b.WriteString("<p><a href=\"/\">")
		b.WriteString(html.EscapeString(T(page.Loc, "draft.back")))
		b.WriteString("</a></p>")
		_, err := io.WriteString(w, b.String())
		return err
	})
	return pageLayout(page, T(page.Loc, "title.draft", page.AppName, preview.Name), body)
}

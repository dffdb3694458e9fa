package web

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/a-h/templ"
	"github.com/louisbranch/postforge/internal/compose/theme"
	"github.com/louisbranch/postforge/internal/draft"
	"github.com/louisbranch/postforge/internal/draft/storage"
	"github.com/louisbranch/postforge/internal/platform/branding"
	apperrors "github.com/louisbranch/postforge/internal/platform/errors"
	webi18n "github.com/louisbranch/postforge/internal/web/i18n"
	webtemplates "github.com/louisbranch/postforge/internal/web/templates"
	"golang.org/x/text/message"
)

// draftListLimit caps how many drafts the index page shows.
const draftListLimit = 50

type handler struct {
	drafts *draft.Service
	themes *theme.Manager
}

// localizer resolves the request locale, optionally persists a cookie,
// and returns a message printer with the resolved language tag string.
func localizer(w http.ResponseWriter, r *http.Request) (*message.Printer, string) {
	tag, setCookie := webi18n.ResolveTag(r)
	if setCookie {
		webi18n.SetLanguageCookie(w, tag)
	}
	return webi18n.Printer(tag), tag.String()
}

// NewHandler builds the HTTP handler for the web preview server. All
// routes are read-only: the server renders stored drafts and never
// mutates them.
func NewHandler(drafts *draft.Service, themes *theme.Manager) http.Handler {
	h := &handler{drafts: drafts, themes: themes}

	mux := http.NewServeMux()
	mux.HandleFunc("/drafts/", h.handleDraftDetail)
	mux.HandleFunc("/p/", h.handleSharedPreview)
	mux.HandleFunc("/up", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("OK"))
	})
	mux.HandleFunc("/", h.handleHome)
	return mux
}

// pageContext resolves the locale and assembles the shared layout context.
func (h *handler) pageContext(w http.ResponseWriter, r *http.Request) webtemplates.PageContext {
	printer, lang := localizer(w, r)
	return webtemplates.PageContext{
		Lang:         lang,
		Loc:          printer,
		AppName:      branding.AppName,
		CurrentPath:  r.URL.Path,
		CurrentQuery: r.URL.RawQuery,
	}
}

func (h *handler) handleHome(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		http.NotFound(w, r)
		return
	}
	if r.Method != http.MethodGet {
		w.Header().Set("Allow", http.MethodGet)
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	records, err := h.drafts.ListDrafts(r.Context(), "", draftListLimit)
	if err != nil {
		h.renderDraftError(w, r, err)
		return
	}

	page := h.pageContext(w, r)
	rows := make([]webtemplates.DraftRow, 0, len(records))
	for _, d := range records {
		rows = append(rows, draftRow(d))
	}
	templ.Handler(webtemplates.DraftListPage(page, rows)).ServeHTTP(w, r)
}

func (h *handler) handleDraftDetail(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.Header().Set("Allow", http.MethodGet)
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	draftID := strings.TrimSpace(strings.TrimPrefix(r.URL.Path, "/drafts/"))
	if draftID == "" || strings.Contains(draftID, "/") {
		page := h.pageContext(w, r)
		h.renderErrorPage(w, r, page, http.StatusNotFound,
			webtemplates.T(page.Loc, "error.draft_not_found.title"),
			webtemplates.T(page.Loc, "error.draft_id_required.message"))
		return
	}

	d, err := h.drafts.GetDraft(r.Context(), draftID)
	if err != nil {
		h.renderDraftError(w, r, err)
		return
	}

	page := h.pageContext(w, r)
	preview, err := h.buildPreview(page, d)
	if err != nil {
		h.renderDraftError(w, r, err)
		return
	}
	if d.PreviewToken != "" {
		preview.ShareURL = "/p/" + d.PreviewToken
	}
	templ.Handler(webtemplates.DraftPreviewPage(page, preview)).ServeHTTP(w, r)
}

func (h *handler) handleSharedPreview(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.Header().Set("Allow", http.MethodGet)
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	token := strings.TrimSpace(strings.TrimPrefix(r.URL.Path, "/p/"))
	if token == "" || strings.Contains(token, "/") {
		page := h.pageContext(w, r)
		h.renderErrorPage(w, r, page, http.StatusNotFound,
			webtemplates.T(page.Loc, "error.draft_not_found.title"),
			webtemplates.T(page.Loc, "error.preview_token_required.message"))
		return
	}

	d, err := h.drafts.GetDraftByPreviewToken(r.Context(), token)
	if err != nil {
		h.renderDraftError(w, r, err)
		return
	}

	page := h.pageContext(w, r)
	preview, err := h.buildPreview(page, d)
	if err != nil {
		h.renderDraftError(w, r, err)
		return
	}
	templ.Handler(webtemplates.DraftPreviewPage(page, preview)).ServeHTTP(w, r)
}

// buildPreview composes the draft without persisting and formats it for
// the preview page.
func (h *handler) buildPreview(page webtemplates.PageContext, d storage.Draft) (webtemplates.DraftPreview, error) {
	text, err := h.drafts.RenderText(d)
	if err != nil {
		return webtemplates.DraftPreview{}, err
	}
	stats := draft.ComputeStats(d, text)
	visible, hidden := splitAtFold(text, stats.PreviewVisible)

	preview := webtemplates.DraftPreview{
		Name:        d.Name,
		PostType:    d.PostType,
		VisibleText: visible,
		HiddenText:  hidden,
		Chips:       statChips(page.Loc, stats),
	}
	if d.Theme != "" {
		if summary, err := h.themes.Summary(d.Theme); err == nil {
			preview.ThemeName = summary.Name
			preview.ThemeDescription = summary.Description
		} else {
			preview.ThemeName = d.Theme
		}
	}
	return preview, nil
}

// draftRow formats one stored draft for the index table.
func draftRow(d storage.Draft) webtemplates.DraftRow {
	row := webtemplates.DraftRow{
		ID:         d.ID,
		Name:       d.Name,
		PostType:   d.PostType,
		Theme:      d.Theme,
		Components: strconv.Itoa(len(d.Components)),
	}
	if !d.UpdatedAt.IsZero() {
		row.UpdatedDate = d.UpdatedAt.Format("2006-01-02")
	}
	return row
}

// splitAtFold cuts text at the fold position in runes. Text at or under
// the fold stays whole.
func splitAtFold(text string, visible int) (string, string) {
	runes := []rune(text)
	if visible <= 0 || visible >= len(runes) {
		return text, ""
	}
	return string(runes[:visible]), string(runes[visible:])
}

// statChips formats engagement stats as labeled chips.
func statChips(loc webtemplates.Localizer, stats draft.Stats) []webtemplates.StatChip {
	boolLabel := func(v bool) string {
		if v {
			return webtemplates.T(loc, "label.yes")
		}
		return webtemplates.T(loc, "label.no")
	}
	return []webtemplates.StatChip{
		{Label: webtemplates.T(loc, "stats.characters"), Value: strconv.Itoa(stats.CharacterCount)},
		{Label: webtemplates.T(loc, "stats.words"), Value: strconv.Itoa(stats.WordCount)},
		{Label: webtemplates.T(loc, "stats.remaining"), Value: strconv.Itoa(stats.CharsRemaining)},
		{Label: webtemplates.T(loc, "stats.preview"), Value: strconv.Itoa(stats.PreviewVisible)},
		{Label: webtemplates.T(loc, "stats.hashtags"), Value: strconv.Itoa(stats.HashtagCount)},
		{Label: webtemplates.T(loc, "stats.hook"), Value: boolLabel(stats.HasHook)},
		{Label: webtemplates.T(loc, "stats.cta"), Value: boolLabel(stats.HasCTA)},
	}
}

// renderErrorPage writes the shared error page with the given status.
func (h *handler) renderErrorPage(w http.ResponseWriter, r *http.Request, page webtemplates.PageContext, status int, title, message string) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	if err := webtemplates.ErrorPage(page, title, message).Render(r.Context(), w); err != nil {
		http.Error(w, message, status)
	}
}

// renderDraftError maps service errors to an error page with the right
// HTTP status.
func (h *handler) renderDraftError(w http.ResponseWriter, r *http.Request, err error) {
	page := h.pageContext(w, r)
	switch apperrors.CodeOf(err) {
	case apperrors.CodeDraftNotFound, apperrors.CodeDraftNoActiveDraft:
		h.renderErrorPage(w, r, page, http.StatusNotFound,
			webtemplates.T(page.Loc, "error.draft_not_found.title"),
			webtemplates.T(page.Loc, "error.draft_not_found.message"))
	default:
		h.renderErrorPage(w, r, page, http.StatusInternalServerError,
			webtemplates.T(page.Loc, "error.draft_unavailable.title"),
			webtemplates.T(page.Loc, "error.draft_unavailable.message"))
	}
}

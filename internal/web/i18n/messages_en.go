package i18n

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

func init() {
	lang := language.English

	// Draft list page
	message.SetString(lang, "title.drafts", "%s | Drafts")
	message.SetString(lang, "drafts.heading", "Drafts")
	message.SetString(lang, "drafts.empty", "No drafts yet. Create one from the composition tools.")
	message.SetString(lang, "drafts.col_name", "Name")
	message.SetString(lang, "drafts.col_type", "Type")
	message.SetString(lang, "drafts.col_theme", "Theme")
	message.SetString(lang, "drafts.col_components", "Components")
	message.SetString(lang, "drafts.col_updated", "Updated")

	// Draft preview page
	message.SetString(lang, "title.draft", "%s | %s")
	message.SetString(lang, "draft.back", "Back to drafts")
	message.SetString(lang, "draft.share", "Shareable link")
	message.SetString(lang, "draft.theme", "Theme")
	message.SetString(lang, "draft.composed", "Composed text")
	message.SetString(lang, "draft.empty_text", "Nothing composed yet.")
	message.SetString(lang, "draft.fold", "see-more fold")

	// Stats chips
	message.SetString(lang, "stats.characters", "Characters")
	message.SetString(lang, "stats.words", "Words")
	message.SetString(lang, "stats.remaining", "Remaining")
	message.SetString(lang, "stats.preview", "Above the fold")
	message.SetString(lang, "stats.hashtags", "Hashtags")
	message.SetString(lang, "stats.hook", "Hook")
	message.SetString(lang, "stats.cta", "CTA")
	message.SetString(lang, "label.yes", "Yes")
	message.SetString(lang, "label.no", "No")

	// Error pages
	message.SetString(lang, "error.draft_not_found.title", "Draft not found")
	message.SetString(lang, "error.draft_not_found.message", "No draft matches this address.")
	message.SetString(lang, "error.draft_unavailable.title", "Draft unavailable")
	message.SetString(lang, "error.draft_unavailable.message", "The draft could not be loaded.")
	message.SetString(lang, "error.draft_id_required.message", "A draft identifier is required.")
	message.SetString(lang, "error.preview_token_required.message", "A preview token is required.")

	// Language nav
	message.SetString(lang, "nav.lang_en", "EN")
	message.SetString(lang, "nav.lang_pt_br", "PT-BR")
}

package i18n

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

func init() {
	lang := language.BrazilianPortuguese

	// Draft list page
	message.SetString(lang, "title.drafts", "%s | Rascunhos")
	message.SetString(lang, "drafts.heading", "Rascunhos")
	message.SetString(lang, "drafts.empty", "Nenhum rascunho ainda. Crie um pelas ferramentas de composição.")
	message.SetString(lang, "drafts.col_name", "Nome")
	message.SetString(lang, "drafts.col_type", "Tipo")
	message.SetString(lang, "drafts.col_theme", "Tema")
	message.SetString(lang, "drafts.col_components", "Componentes")
	message.SetString(lang, "drafts.col_updated", "Atualizado")

	// Draft preview page
	message.SetString(lang, "title.draft", "%s | %s")
	message.SetString(lang, "draft.back", "Voltar aos rascunhos")
	message.SetString(lang, "draft.share", "Link compartilhável")
	message.SetString(lang, "draft.theme", "Tema")
	message.SetString(lang, "draft.composed", "Texto composto")
	message.SetString(lang, "draft.empty_text", "Nada composto ainda.")
	message.SetString(lang, "draft.fold", "dobra do ver mais")

	// Stats chips
	message.SetString(lang, "stats.characters", "Caracteres")
	message.SetString(lang, "stats.words", "Palavras")
	message.SetString(lang, "stats.remaining", "Restantes")
	message.SetString(lang, "stats.preview", "Acima da dobra")
	message.SetString(lang, "stats.hashtags", "Hashtags")
	message.SetString(lang, "stats.hook", "Gancho")
	message.SetString(lang, "stats.cta", "CTA")
	message.SetString(lang, "label.yes", "Sim")
	message.SetString(lang, "label.no", "Não")

	// Error pages
	message.SetString(lang, "error.draft_not_found.title", "Rascunho não encontrado")
	message.SetString(lang, "error.draft_not_found.message", "Nenhum rascunho corresponde a este endereço.")
	message.SetString(lang, "error.draft_unavailable.title", "Rascunho indisponível")
	message.SetString(lang, "error.draft_unavailable.message", "Não foi possível carregar o rascunho.")
	message.SetString(lang, "error.draft_id_required.message", "Um identificador de rascunho é obrigatório.")
	message.SetString(lang, "error.preview_token_required.message", "Um token de visualização é obrigatório.")

	// Language nav
	message.SetString(lang, "nav.lang_en", "EN")
	message.SetString(lang, "nav.lang_pt_br", "PT-BR")
}

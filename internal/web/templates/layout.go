// Package templates renders the web preview pages as templ components.
package templates

import (
	"context"
	"html"
	"io"
	"net/url"
	"strings"

	"github.com/a-h/templ"
)

// PageContext provides shared layout context for pages.
type PageContext struct {
	Lang         string
	Loc          Localizer
	AppName      string
	CurrentPath  string
	CurrentQuery string
}

// pageStyle is the inline stylesheet for the preview chrome.
const pageStyle = `body{margin:0;font-family:system-ui,sans-serif;color:#1a1a2e;background:#f7f7fb}` +
	`header{display:flex;justify-content:space-between;align-items:center;padding:.75rem 1.25rem;background:#fff;border-bottom:1px solid #e2e2ea}` +
	`header .brand{font-weight:700;text-decoration:none;color:inherit}` +
	`header nav a{color:#6b6b80;text-decoration:none;margin-left:.5rem;font-size:.85rem}` +
	`main{max-width:44rem;margin:0 auto;padding:1.25rem}` +
	`table{width:100%;border-collapse:collapse}` +
	`th,td{text-align:left;padding:.4rem .6rem;border-bottom:1px solid #e2e2ea}` +
	`.chips{list-style:none;display:flex;flex-wrap:wrap;gap:.4rem;padding:0;margin:1rem 0}` +
	`.chips li{background:#fff;border:1px solid #e2e2ea;border-radius:999px;padding:.2rem .7rem;font-size:.85rem}` +
	`.chips .label{color:#6b6b80;margin-right:.3rem}` +
	`.post{background:#fff;border:1px solid #e2e2ea;border-radius:.5rem;padding:1rem;white-space:pre-wrap;overflow-wrap:anywhere}` +
	`.fold{border:0;border-top:1px dashed #c0392b;margin:.75rem 0}` +
	`.theme-card{background:#fff;border:1px solid #e2e2ea;border-radius:.5rem;padding:.75rem 1rem;margin:1rem 0}` +
	`.muted{color:#6b6b80}`

// pageLayout wraps body in the shared HTML chrome: head, brand header,
// language switcher, and a main column.
func pageLayout(page PageContext, title string, body templ.Component) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		var b strings.Builder
		b.WriteString("<!doctype html><html lang=\"")
		b.WriteString(html.EscapeString(page.Lang))
		b.WriteString("\"><head><meta charset=\"utf-8\"><meta name=\"viewport\" content=\"width=device-width, initial-scale=1\"><title>")
		b.WriteString(html.EscapeString(title))
		b.WriteString("</title><style>")
		b.WriteString(pageStyle)
		b.WriteString("</style></head><body><header><a class=\"brand\" href=\"/\">")
		b.WriteString(html.EscapeString(page.AppName))
		b.WriteString("</a><nav>")
		b.WriteString(langNav(page))
		b.WriteString("</nav></header><main>")
		if _, err := io.WriteString(w, b.String()); err != nil {
			return err
		}
		if body != nil {
			if err := body.Render(ctx, w); err != nil {
				return err
			}
		}
		_, err := io.WriteString(w, "</main></body></html>")
		return err
	})
}

// languageURL returns the current URL with the language param updated.
func languageURL(path string, rawQuery string, tag string) string {
	path = strings.TrimSpace(path)
	if path == "" {
		path = "/"
	}
	query, err := url.ParseQuery(rawQuery)
	if err != nil {
		query = url.Values{}
	}
	query.Set("lang", tag)
	return (&url.URL{Path: path, RawQuery: query.Encode()}).String()
}

// langNav renders the language switcher links.
func langNav(page PageContext) string {
	options := []struct {
		tag string
		key string
	}{
		{"en", "nav.lang_en"},
		{"pt-BR", "nav.lang_pt_br"},
	}

	var b strings.Builder
	for i, option := range options {
		if i > 0 {
			b.WriteString(" ")
		}
		href := languageURL(page.CurrentPath, page.CurrentQuery, option.tag)
		b.WriteString("<a href=\"")
		b.WriteString(html.EscapeString(href))
		b.WriteString("\">")
		b.WriteString(html.EscapeString(T(page.Loc, option.key)))
		b.WriteString("</a>")
	}
	return b.String()
}

package templates

import (
	"context"
	"html"
	"io"

	"github.com/a-h/templ"
)

// ErrorPage renders a titled error message in the shared chrome.
func ErrorPage(page PageContext, title string, message string) templ.Component {
	body := templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		var out string
		out = "<h1>" + html.EscapeString(title) + "</h1>"
		if message != "" {
			out += "<p class=\"muted\">" + html.EscapeString(message) + "</p>"
		}
		out += "<p><a href=\"/\">" + html.EscapeString(T(page.Loc, "draft.back")) + "</a></p>"
		_, err := io.WriteString(w, out)
		return err
	})
	return pageLayout(page, title, body)
}

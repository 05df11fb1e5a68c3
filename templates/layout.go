// Package templates renders the HTML pages of the application as
// templ components consumed by the handlers.
package templates

import (
	"context"
	"fmt"
	"io"

	"github.com/a-h/templ"
)

// page wraps a body component in the shared document shell.
func page(title string, body templ.Component) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		_, err := fmt.Fprintf(w, `<!DOCTYPE html>
<html lang="fr">
<head>
<meta charset="utf-8">
<meta name="viewport" content="width=device-width, initial-scale=1">
<title>%s — Renodesk</title>
<link rel="stylesheet" href="/static/app.css">
</head>
<body>
<header class="topbar"><a href="/projects" class="brand">Renodesk</a></header>
<main class="content">
`, templ.EscapeString(title))
		if err != nil {
			return err
		}
		if err := body.Render(ctx, w); err != nil {
			return err
		}
		_, err = io.WriteString(w, "\n</main>\n</body>\n</html>\n")
		return err
	})
}

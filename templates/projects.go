package templates

import (
	"context"
	"fmt"
	"io"

	"github.com/a-h/templ"
)

// ProjectListItem is one row of the project index.
type ProjectListItem struct {
	ID           string
	Name         string
	ClientName   string
	BuildingType string
	CreatedDate  string
}

// ProjectListData feeds the project index page.
type ProjectListData struct {
	Projects []ProjectListItem
}

// ProjectListPage renders the project index.
func ProjectListPage(data ProjectListData) templ.Component {
	return page("Projets", projectListContent(data))
}

func projectListContent(data ProjectListData) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if _, err := io.WriteString(w, `<h1>Projets</h1>`); err != nil {
			return err
		}
		if len(data.Projects) == 0 {
			_, err := io.WriteString(w, `<p class="empty">Aucun projet pour le moment.</p>`)
			return err
		}

		if _, err := io.WriteString(w, `<table class="list">
<thead><tr><th>Projet</th><th>Client</th><th>Type de bâtiment</th><th>Créé le</th><th></th></tr></thead>
<tbody>`); err != nil {
			return err
		}
		for _, p := range data.Projects {
			_, err := fmt.Fprintf(w, `<tr><td>%s</td><td>%s</td><td>%s</td><td>%s</td><td><a href="/projects/%s/prime">Valorisation CEE</a></td></tr>`,
				templ.EscapeString(p.Name),
				templ.EscapeString(p.ClientName),
				templ.EscapeString(p.BuildingType),
				templ.EscapeString(p.CreatedDate),
				templ.EscapeString(p.ID),
			)
			if err != nil {
				return err
			}
		}
		_, err := io.WriteString(w, `</tbody></table>`)
		return err
	})
}

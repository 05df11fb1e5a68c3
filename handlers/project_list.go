package handlers

import (
	"log"
	"net/http"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"

	"renodesk/templates"
)

// HandleProjectList returns a handler that renders the project index.
func HandleProjectList(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		projectsCol, err := app.FindCollectionByNameOrId("projects")
		if err != nil {
			log.Printf("project_list: could not find projects collection: %v", err)
			return e.String(http.StatusInternalServerError, "Internal error")
		}

		records, err := app.FindRecordsByFilter(projectsCol, "", "-created", 0, 0, nil)
		if err != nil {
			log.Printf("project_list: could not query projects: %v", err)
			records = nil
		}

		data := templates.ProjectListData{}
		for _, r := range records {
			createdDate := "—"
			if dt := r.GetDateTime("created"); !dt.IsZero() {
				createdDate = dt.Time().Format("02/01/2006")
			}
			data.Projects = append(data.Projects, templates.ProjectListItem{
				ID:           r.Id,
				Name:         r.GetString("name"),
				ClientName:   r.GetString("client_name"),
				BuildingType: r.GetString("building_type"),
				CreatedDate:  createdDate,
			})
		}

		component := templates.ProjectListPage(data)
		e.Response.Header().Set("Content-Type", "text/html; charset=utf-8")
		return component.Render(e.Request.Context(), e.Response)
	}
}

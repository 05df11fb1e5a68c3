package main

import (
	"fmt"
	"log"
	"net/http"
	"os"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/apis"
	"github.com/pocketbase/pocketbase/core"
	"github.com/spf13/cobra"

	"renodesk/collections"
	"renodesk/config"
	"renodesk/handlers"
	"renodesk/services"
)

func main() {
	app := pocketbase.New()
	cfg := config.Load()

	// Create collections and seed data on startup
	app.OnServe().BindFunc(func(se *core.ServeEvent) error {
		collections.Setup(app)
		if err := collections.Seed(app, cfg.DefaultBonification); err != nil {
			log.Printf("Warning: seed data failed: %v", err)
		}
		return se.Next()
	})

	// Serve static files from ./static and register the app routes
	app.OnServe().BindFunc(func(se *core.ServeEvent) error {
		se.Router.GET("/static/{path...}", apis.Static(os.DirFS("./static"), false))

		// ── Projects ─────────────────────────────────────────────
		se.Router.GET("/projects", handlers.HandleProjectList(app))

		// ── CEE valorisation ─────────────────────────────────────
		se.Router.GET("/projects/{id}/prime", handlers.HandleProjectPrime(app, cfg))
		se.Router.GET("/projects/{id}/prime/export/excel", handlers.HandlePrimeExportExcel(app, cfg))
		se.Router.GET("/projects/{id}/prime/export/pdf", handlers.HandlePrimeExportPDF(app, cfg))

		// Redirect home to projects list
		se.Router.GET("/", func(e *core.RequestEvent) error {
			return e.Redirect(http.StatusFound, "/projects")
		})

		return se.Next()
	})

	app.RootCmd.AddCommand(newPrimeRecalcCommand(app, cfg))

	if err := app.Start(); err != nil {
		log.Fatal(err)
	}
}

// newPrimeRecalcCommand builds the `prime-recalc` subcommand: it recomputes
// the CEE valorisation for every project and prints the totals. Useful after
// a catalog or kwh-cumac update to check the new figures without opening
// the UI.
func newPrimeRecalcCommand(app *pocketbase.PocketBase, cfg config.Config) *cobra.Command {
	return &cobra.Command{
		Use:   "prime-recalc",
		Short: "Recompute the CEE valorisation totals of every project",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := app.Bootstrap(); err != nil {
				return fmt.Errorf("bootstrap: %w", err)
			}
			collections.Setup(app)

			projectsCol, err := app.FindCollectionByNameOrId("projects")
			if err != nil {
				return fmt.Errorf("projects collection: %w", err)
			}
			records, err := app.FindRecordsByFilter(projectsCol, "", "-created", 0, 0, nil)
			if err != nil {
				return fmt.Errorf("query projects: %w", err)
			}

			for _, r := range records {
				loaded, err := handlers.BuildPrimeInput(app, cfg, r.Id)
				if err != nil {
					log.Printf("prime-recalc: skipping project %s: %v", r.Id, err)
					continue
				}
				computation := services.ComputeProjectPrime(loaded.Input)

				warnings := 0
				for _, lr := range computation.Lines {
					if lr.WarningReason() != "" {
						warnings++
					}
				}

				fmt.Fprintf(cmd.OutOrStdout(), "%s  %s  %s  prime %s",
					r.Id,
					r.GetString("name"),
					services.FormatMWh(computation.Totals.TotalValorisationMwh),
					services.FormatEUR(computation.Totals.TotalPrime),
				)
				if warnings > 0 {
					fmt.Fprintf(cmd.OutOrStdout(), "  (%d ligne(s) en avertissement)", warnings)
				}
				fmt.Fprintln(cmd.OutOrStdout())
			}

			return nil
		},
	}
}

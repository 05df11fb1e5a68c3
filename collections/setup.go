package collections

import (
	"fmt"
	"log"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"
)

// Setup programmatically creates/ensures the catalog and project collections:
// products, kwh_cumac, delegates, prime_settings, projects and
// project_products.
func Setup(app *pocketbase.PocketBase) {
	products := ensureCollection(app, "products", func(c *core.Collection) {
		c.Fields.Add(&core.TextField{Name: "code", Required: true})
		c.Fields.Add(&core.TextField{Name: "name", Required: true})
		c.Fields.Add(&core.TextField{Name: "category", Required: false})
		c.Fields.Add(&core.JSONField{Name: "params_schema"})
		c.Fields.Add(&core.JSONField{Name: "default_params"})
		c.Fields.Add(&core.JSONField{Name: "cee_config"})
		c.Fields.Add(&core.JSONField{Name: "formula_config"})
		c.Fields.Add(&core.AutodateField{Name: "created", OnCreate: true})
		c.Fields.Add(&core.AutodateField{Name: "updated", OnCreate: true, OnUpdate: true})
	})

	ensureCollection(app, "kwh_cumac", func(c *core.Collection) {
		c.Fields.Add(&core.RelationField{
			Name:          "product",
			Required:      true,
			CollectionId:  products.Id,
			CascadeDelete: true,
			MaxSelect:     1,
		})
		c.Fields.Add(&core.TextField{Name: "building_type", Required: true})
		c.Fields.Add(&core.NumberField{Name: "kwh_cumac", Required: true})
	})

	delegates := ensureCollection(app, "delegates", func(c *core.Collection) {
		c.Fields.Add(&core.TextField{Name: "name", Required: true})
		c.Fields.Add(&core.NumberField{Name: "price_eur_per_mwh", Required: false})
	})

	ensureCollection(app, "prime_settings", func(c *core.Collection) {
		c.Fields.Add(&core.NumberField{Name: "bonification", Required: false})
	})

	projects := ensureCollection(app, "projects", func(c *core.Collection) {
		c.Fields.Add(&core.TextField{Name: "name", Required: true})
		c.Fields.Add(&core.TextField{Name: "client_name", Required: false})
		c.Fields.Add(&core.TextField{Name: "building_type", Required: false})
		c.Fields.Add(&core.RelationField{
			Name:         "delegate",
			Required:     false,
			CollectionId: delegates.Id,
			MaxSelect:    1,
		})
		c.Fields.Add(&core.AutodateField{Name: "created", OnCreate: true})
		c.Fields.Add(&core.AutodateField{Name: "updated", OnCreate: true, OnUpdate: true})
	})

	ensureCollection(app, "project_products", func(c *core.Collection) {
		c.Fields.Add(&core.RelationField{
			Name:          "project",
			Required:      true,
			CollectionId:  projects.Id,
			CascadeDelete: true,
			MaxSelect:     1,
		})
		c.Fields.Add(&core.RelationField{
			Name:          "product",
			Required:      true,
			CollectionId:  products.Id,
			CascadeDelete: true,
			MaxSelect:     1,
		})
		c.Fields.Add(&core.NumberField{Name: "quantity", Required: false})
		c.Fields.Add(&core.JSONField{Name: "dynamic_params"})
		c.Fields.Add(&core.NumberField{Name: "sort_order", Required: false})
	})
}

// ensureCollection checks if a collection already exists by name. If it does,
// the existing collection is returned. Otherwise a new base collection is
// created, the addFields callback is invoked to populate its fields, and the
// collection is saved.
func ensureCollection(app *pocketbase.PocketBase, name string, addFields func(*core.Collection)) *core.Collection {
	existing, err := app.FindCollectionByNameOrId(name)
	if err == nil && existing != nil {
		log.Printf("Collection %q already exists, skipping creation.\n", name)
		return existing
	}

	collection := core.NewBaseCollection(name)
	addFields(collection)

	if err := app.Save(collection); err != nil {
		log.Fatalf("Failed to create collection %q: %v", name, err)
	}

	fmt.Printf("Created collection %q (id=%s)\n", name, collection.Id)
	return collection
}

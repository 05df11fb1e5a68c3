package services

// BuildingTypeOptions lists the building typologies kWh-cumac references are
// keyed on. Matching elsewhere is normalized, so display casing is free.
var BuildingTypeOptions = []string{
	"Maison individuelle",
	"Appartement",
	"Immeuble collectif",
	"Bâtiment tertiaire",
}

// CategoryOptions lists the catalog product categories.
var CategoryOptions = []string{
	"insulation",
	"heating",
	"lighting",
}

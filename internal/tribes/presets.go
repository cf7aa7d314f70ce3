package tribes

import (
	"github.com/xtding233/cardforge/internal/catalog"
	"github.com/xtding233/cardforge/internal/i18n"
)

// Preset names a starting tribe table.
type Preset string

const (
	Midgard  Preset = "midgard"
	Generic  Preset = "generic"
	Tabletop Preset = "tabletop"
)

// Presets lists the known presets in menu order.
func Presets() []Preset { return []Preset{Midgard, Generic, Tabletop} }

func neutral() catalog.Tribe {
	return catalog.Tribe{
		ID:          catalog.TribeNeutral,
		Name:        i18n.Text{i18n.EN: "Neutral", i18n.ES: "Neutral"},
		Color:       "#757575",
		Description: i18n.Text{i18n.EN: "Usable by anyone.", i18n.ES: "Utilizable por todos."},
	}
}

// presetTribes returns a fresh copy of the preset's table, or false.
func presetTribes(p Preset) ([]catalog.Tribe, bool) {
	switch p {
	case Midgard:
		// six placeholder factions, meant to be renamed
		return []catalog.Tribe{
			{ID: "tribe_1", Name: i18n.Plain("Aesir"), Color: "#d32f2f"},
			{ID: "tribe_2", Name: i18n.Plain("Vanir"), Color: "#388e3c"},
			{ID: "tribe_3", Name: i18n.Plain("Jotunn"), Color: "#1976d2"},
			{ID: "tribe_4", Name: i18n.Plain("Dwarves"), Color: "#fbc02d"},
			{ID: "tribe_5", Name: i18n.Plain("Elves"), Color: "#7b1fa2"},
			{ID: "tribe_6", Name: i18n.Plain("Monsters"), Color: "#455a64"},
			neutral(),
		}, true
	case Generic:
		return []catalog.Tribe{
			{ID: "general", Name: i18n.Text{i18n.EN: "General", i18n.ES: "General"}, Color: "#888888"},
			neutral(),
		}, true
	case Tabletop:
		n := neutral()
		n.Color = "#7a7a7a"
		return []catalog.Tribe{
			n,
			{ID: "dungeon_master", Color: "#6a0dad",
				Name:        i18n.Text{i18n.EN: "Dungeon Master", i18n.ES: "Dungeon Master"},
				Description: i18n.Text{i18n.EN: "Controllers of the game.", i18n.ES: "Controladores del juego."}},
			{ID: "min_maxer", Color: "#b71c1c",
				Name:        i18n.Text{i18n.EN: "Min-Maxer", i18n.ES: "Min-Maxer"},
				Description: i18n.Text{i18n.EN: "Optimized for combat.", i18n.ES: "Optimizado para combate."}},
			{ID: "roleplayer", Color: "#1a237e",
				Name:        i18n.Text{i18n.EN: "Roleplayer", i18n.ES: "Rolero"},
				Description: i18n.Text{i18n.EN: "Focused on story and utility.", i18n.ES: "Enfocado en historia y utilidad."}},
			{ID: "rules_lawyer", Color: "#f57f17",
				Name:        i18n.Text{i18n.EN: "Rules Lawyer", i18n.ES: "Abogado de Reglas"},
				Description: i18n.Text{i18n.EN: "Exploits mechanics.", i18n.ES: "Explota las mecánicas."}},
			{ID: "casual", Color: "#2e7d32",
				Name:        i18n.Text{i18n.EN: "Casual", i18n.ES: "Casual"},
				Description: i18n.Text{i18n.EN: "Here for the snacks.", i18n.ES: "Aquí por la comida."}},
		}, true
	}
	return nil, false
}

package content

import "github.com/mythosquest/scenario-engine/pkg/scenario"

// Locations lists the start locations per map category. The map generator
// (out of scope here) uses the scenario's tile set to pick matching tiles.
var Locations = map[scenario.MapCategory][]string{
	scenario.MapIndoor: {
		"the Blackwood Asylum",
		"the Harrow House",
		"the Grand Hotel Excelsior",
		"the Miskatonic Archives",
		"the Undercroft of Saint Jude",
	},
	scenario.MapOutdoor: {
		"the Innsmouth Docks",
		"the Dunwich Moors",
		"Gallows Hill Cemetery",
		"the Blasted Heath",
		"the Old Quarry Road",
	},
	scenario.MapMixed: {
		"the Port of Kingsport",
		"the Witch Quarter",
		"the Abbey of Saint Ambrose",
		"the Marsh Refinery",
		"Arkham Station",
	},
}

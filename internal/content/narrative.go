package content

// Item maps a target id to its display forms. The singular fills the {item}
// placeholder, the plural fills {items}.
type Item struct {
	Singular string
	Plural   string
}

// Items is the display-name table for every item id used by objective
// templates. An id missing here would surface as a raw id in mission text,
// which content review catches.
var Items = map[string]Item{
	"obsidian_idol":       {"the Obsidian Idol", "Obsidian Idols"},
	"sealed_urn":          {"the Sealed Urn", "Sealed Urns"},
	"graven_tablet":       {"the Graven Tablet", "Graven Tablets"},
	"brass_key":           {"the brass key", "brass keys"},
	"iron_crowbar":        {"the iron crowbar", "iron crowbars"},
	"signal_lantern":      {"the signal lantern", "signal lanterns"},
	"ritual_dagger":       {"the ritual dagger", "ritual daggers"},
	"bloodstained_letter": {"the bloodstained letter", "bloodstained letters"},
	"cipher_page":         {"the cipher page", "cipher pages"},
	"rite_component":      {"a component of the rite", "components of the rite"},
	"old_journal":         {"the old journal", "journal pages"},
	"warding_charm":       {"the warding charm", "warding charms"},
}

// ItemName resolves an item id to its singular display name, falling back to
// the raw id.
func ItemName(id string) string {
	if it, ok := Items[id]; ok {
		return it.Singular
	}
	return id
}

// ItemPlural resolves an item id to its plural display name.
func ItemPlural(id string) string {
	if it, ok := Items[id]; ok {
		return it.Plural
	}
	return id
}

// TitleTemplates produce scenario titles. Interpolated then title-cased.
var TitleTemplates = []string{
	"the {mystery} of {location}",
	"shadows over {location}",
	"the {mystery}",
	"what waits in {location}",
	"the night of the {mystery}",
}

// BriefingTemplates open the mission. One is drawn per scenario.
var BriefingTemplates = []string{
	"Word reached the Society three nights ago: {victim} has not been seen since the lights failed at {location}. The locals speak of the {mystery} only in whispers, and of the {enemies} not at all.",
	"The letters from {location} stopped mid-sentence. The last legible line names {victim}, and beneath it, pressed so hard the pen tore the paper: the {mystery} is awake.",
	"You arrive at {location} under a bruised sky. Whatever drove the {enemies} out of the deep places has already begun its work, and {victim} may be all that stands between the town and the {mystery}.",
	"The Society's file on {location} was sealed forty years ago. Tonight it lies open on your table, next to a telegram from {victim}: come at once, the {mystery} has returned.",
}

// Victims are the people a mission revolves around.
var Victims = []string{
	"Professor Armitage",
	"Doctor Halsey",
	"Sister Agnes",
	"Mayor Crane",
	"the Whateley boy",
	"Constable Brody",
}

// Mysteries name the central horror of a scenario.
var Mysteries = []string{
	"Whispering Dark",
	"Crawling Chaos",
	"Hollow Moon",
	"Drowned Choir",
	"Red Sign",
	"Pale Procession",
}

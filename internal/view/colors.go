package view

// PartyColors maps full party names to their customary hex colors.
var PartyColors = map[string]string{
	"Christlich Demokratische Union Deutschlands":     "#000000",
	"Christlich-Soziale Union in Bayern e.V.":         "#008AC5",
	"Sozialdemokratische Partei Deutschlands":         "#E3000F",
	"BÜNDNIS 90/DIE GRÜNEN":                           "#1AA037",
	"Freie Demokratische Partei":                      "#FFED00",
	"Alternative für Deutschland":                     "#009EE0",
	"Die Linke":                                       "#BE3075",
	"Bündnis Sahra Wagenknecht":                       "#00B5AD",
	"Brandenb. Verein. Bürgerbewegungen/Freie Wähler": "#FF7F00",
	"Volt Deutschland":                                "#612095",
	"Die Partei":                                      "#E20613",
	"Südschleswigscher Wählerverband":                 "#00A1DE",
}

// DefaultPartyColor is the neutral gray used for unmapped parties and
// the synthetic Others category.
const DefaultPartyColor = "#CCCCCC"

// PartyColor resolves a party name to its chart color.
func PartyColor(name string) string {
	if c, ok := PartyColors[name]; ok {
		return c
	}
	return DefaultPartyColor
}

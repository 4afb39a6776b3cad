// Package teams canonicalizes free-text team names into the stable slug
// identifiers the lineups API uses.
package teams

import "strings"

// Display-name overrides → canonical slug. The listing site renders some
// names with accents or with an x2 suffix when two sides meet a second
// time in the season; these entries collapse the known variants onto the
// id the statistics source reports.
var nameOverrides = map[string]string{
	"Barcelona":         "barcelona",
	"Real Madrid":       "real-madrid",
	"Atlético Madrid":   "atl.-madrid",
	"Athletic Club":     "athletic-club",
	"Valencia":          "valencia",
	"Getafe":            "getafe",
	"Villarreal":        "villarreal",
	"Real Sociedad":     "real-sociedad",
	"Betis":             "real-betis",
	"Celta Vigo":        "celta",
	"Granada":           "granada",
	"Osasuna":           "osasuna",
	"Mallorca":          "mallorca",
	"Rayo Vallecano":    "rayo-vallecano",
	"Alavés":            "alaves",
	"Girona":            "girona",
	"Valladolid":        "real-valladolid",
	"Leganés":           "leganes",
	"celtax2":           "celta",
	"Las Palmas":        "las-palmas",
	"real-sociedadx2":   "real-sociedad",
	"leganésx2":         "leganes",
	"Espanyol":          "espanyol",
	"alavésx2":          "alaves",
}

// lookup table with pre-lowercased keys, built once at init
var overrides = func() map[string]string {
	m := make(map[string]string, len(nameOverrides))
	for k, v := range nameOverrides {
		m[strings.ToLower(k)] = v
	}
	return m
}()

// Normalize maps a raw display name to its canonical team id. Names in
// the override table resolve to their mapped slug; anything else falls
// back to the lowercased text with internal whitespace hyphenated, so
// every input produces a defined id.
func Normalize(raw string) string {
	name := strings.ToLower(strings.TrimSpace(raw))
	if slug, ok := overrides[name]; ok {
		return slug
	}
	return strings.ReplaceAll(name, " ", "-")
}

package lineups

import (
	"strings"

	"github.com/jdray/lineup-stats/internal/fixtures"
)

// Record is one player's participation in one match, flattened to
// field name → value. Beyond the identity fields the shape is open:
// whatever statistics the source reported for that player.
type Record map[string]any

// Fields that describe who the record is about rather than measure
// anything. They are exempt from zero-defaulting at flatten time and may
// legitimately stay nil (a player with no recorded country, say).
var identityFields = map[string]struct{}{
	"matchId":              {},
	"round":                {},
	"side":                 {},
	"teamId":               {},
	"playerId":             {},
	"playerName":           {},
	"playerSlug":           {},
	"position":             {},
	"jerseyNumber":         {},
	"height":               {},
	"countryName":          {},
	"dateOfBirthTimestamp": {},
	"shirtNumber":          {},
	"substitute":           {},
}

// IsIdentityField reports whether name belongs to the record identity.
func IsIdentityField(name string) bool {
	_, ok := identityFields[name]
	return ok
}

// IsMissing reports whether v counts as absent under the defaulting
// policy: nil, or a blank/whitespace-only string.
func IsMissing(v any) bool {
	if v == nil {
		return true
	}
	if s, ok := v.(string); ok {
		return strings.TrimSpace(s) == ""
	}
	return false
}

// Flatten converts one match document into per-player records, home side
// before away, source order within each side. A side absent from the
// document contributes nothing. fx supplies the round context; nil means
// the fixture listing never covered this match.
func Flatten(doc *Document, matchID string, fx *fixtures.Entry) []Record {
	var out []Record
	for _, side := range []struct {
		name  string
		sheet *TeamSheet
	}{
		{"home", doc.Home},
		{"away", doc.Away},
	} {
		if side.sheet == nil {
			continue
		}
		for _, entry := range side.sheet.Players {
			out = append(out, flattenPlayer(entry, matchID, side.name, fx))
		}
	}
	return out
}

func flattenPlayer(entry PlayerEntry, matchID, side string, fx *fixtures.Entry) Record {
	rec := Record{
		"matchId": matchID,
		"side":    side,
		"teamId":  opt(entry.TeamID),
	}
	if fx != nil {
		rec["round"] = fx.Round
	} else {
		rec["round"] = "unknown"
	}

	p := entry.Player
	rec["playerId"] = opt(p.ID)
	rec["playerName"] = opt(p.Name)
	rec["playerSlug"] = opt(p.Slug)
	rec["position"] = opt(p.Position)
	rec["jerseyNumber"] = opt(p.JerseyNumber)
	rec["height"] = opt(p.Height)
	rec["dateOfBirthTimestamp"] = opt(p.DateOfBirthTimestamp)
	if p.Country != nil {
		rec["countryName"] = opt(p.Country.Name)
	} else {
		rec["countryName"] = nil
	}
	if p.ProposedMarketValueRaw != nil {
		rec["marketValue"] = opt(p.ProposedMarketValueRaw.Value)
	} else {
		rec["marketValue"] = nil
	}
	rec["shirtNumber"] = opt(entry.ShirtNumber)
	rec["substitute"] = opt(entry.Substitute)

	for k, v := range entry.Statistics {
		if k == "ratingVersions" {
			if versions, ok := v.(map[string]any); ok {
				rec["rating_original"] = versions["original"]
				rec["rating_alternative"] = versions["alternative"]
				continue
			}
		}
		rec[k] = v
	}

	// zero-default every non-identity field that came back empty
	for k, v := range rec {
		if IsIdentityField(k) {
			continue
		}
		if IsMissing(v) {
			rec[k] = 0
		}
	}
	return rec
}

// opt unwraps an optional decoded value; a nil pointer becomes untyped
// nil so defaulting sees it as absent.
func opt[T any](p *T) any {
	if p == nil {
		return nil
	}
	return *p
}

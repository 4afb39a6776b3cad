package lineups

// Document is the nested per-match lineups payload served by the
// statistics API. A side absent from the payload means no lineup data
// was published for it.
type Document struct {
	Home *TeamSheet `json:"home"`
	Away *TeamSheet `json:"away"`
}

type TeamSheet struct {
	Players []PlayerEntry `json:"players"`
}

// PlayerEntry is one player's participation entry. Statistics is
// open-ended: which keys appear varies per player and per match.
type PlayerEntry struct {
	TeamID      *int64         `json:"teamId"`
	ShirtNumber *int64         `json:"shirtNumber"`
	Substitute  *bool          `json:"substitute"`
	Player      Player         `json:"player"`
	Statistics  map[string]any `json:"statistics"`
}

type Player struct {
	ID                     *int64       `json:"id"`
	Name                   *string      `json:"name"`
	Slug                   *string      `json:"slug"`
	Position               *string      `json:"position"`
	JerseyNumber           *string      `json:"jerseyNumber"`
	Height                 *int64       `json:"height"`
	Country                *Country     `json:"country"`
	DateOfBirthTimestamp   *int64       `json:"dateOfBirthTimestamp"`
	ProposedMarketValueRaw *MarketValue `json:"proposedMarketValueRaw"`
}

type Country struct {
	Name *string `json:"name"`
}

type MarketValue struct {
	Value *int64 `json:"value"`
}

// Package fixtures parses captured fixture-listing documents into a
// registry of scheduled matches keyed by match id.
package fixtures

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"github.com/jdray/lineup-stats/internal/teams"
)

// Entry is one scheduled match as listed for a round.
type Entry struct {
	MatchID string
	Home    string
	Away    string
	Round   int
}

// Index maps match id → the most recently parsed entry for that id.
type Index map[string]Entry

// Document pairs one captured listing with its round number.
type Document struct {
	Round int
	HTML  []byte
}

// LoadRounds reads round{N}.txt listings for rounds first..last from dir.
// A missing or unreadable file aborts the load; partial captures within a
// file are tolerated at parse time instead.
func LoadRounds(dir string, first, last int) ([]Document, error) {
	docs := make([]Document, 0, last-first+1)
	for i := first; i <= last; i++ {
		p := filepath.Join(dir, fmt.Sprintf("round%d.txt", i))
		b, err := os.ReadFile(p)
		if err != nil {
			return nil, fmt.Errorf("read fixture listing: %w", err)
		}
		docs = append(docs, Document{Round: i, HTML: b})
	}
	return docs, nil
}

// ParseRound extracts fixture entries from one listing document. Event
// cells lacking a data-id or either team element are skipped; partial and
// malformed listings are expected.
func ParseRound(html []byte, round int) ([]Entry, error) {
	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(html))
	if err != nil {
		return nil, fmt.Errorf("parse round %d listing: %w", round, err)
	}
	var out []Entry
	doc.Find(`a[data-testid="event_cell"]`).Each(func(_ int, cell *goquery.Selection) {
		id := strings.TrimSpace(cell.AttrOr("data-id", ""))
		if id == "" {
			return
		}
		left := cell.Find(`div[data-testid="left_team"]`).First()
		right := cell.Find(`div[data-testid="right_team"]`).First()
		if left.Length() == 0 || right.Length() == 0 {
			return
		}
		out = append(out, Entry{
			MatchID: id,
			Home:    teams.Normalize(hyphenate(left.Text())),
			Away:    teams.Normalize(hyphenate(right.Text())),
			Round:   round,
		})
	})
	return out, nil
}

// BuildIndex merges round listings into one registry. Documents must
// arrive in increasing round order: a later round's entry for a match id
// replaces the earlier one outright, never field by field.
func BuildIndex(docs []Document) (Index, error) {
	idx := make(Index)
	for _, d := range docs {
		entries, err := ParseRound(d.HTML, d.Round)
		if err != nil {
			return nil, err
		}
		for _, e := range entries {
			idx[e.MatchID] = e
		}
	}
	return idx, nil
}

// MatchIDs lists every event-cell match id across the documents in source
// order, first occurrence kept. This is the enumeration the fetch loop
// drives over.
func MatchIDs(docs []Document) ([]string, error) {
	seen := make(map[string]struct{})
	var ids []string
	for _, d := range docs {
		doc, err := goquery.NewDocumentFromReader(bytes.NewReader(d.HTML))
		if err != nil {
			return nil, fmt.Errorf("parse round %d listing: %w", d.Round, err)
		}
		doc.Find(`a[data-testid="event_cell"]`).Each(func(_ int, cell *goquery.Selection) {
			id := strings.TrimSpace(cell.AttrOr("data-id", ""))
			if id == "" {
				return
			}
			if _, ok := seen[id]; ok {
				return
			}
			seen[id] = struct{}{}
			ids = append(ids, id)
		})
	}
	return ids, nil
}

// Listing text is lowercased and hyphenated before normalization so the
// lookup sees the same shape the fallback derivation produces.
func hyphenate(s string) string {
	return strings.ReplaceAll(strings.ToLower(strings.TrimSpace(s)), " ", "-")
}

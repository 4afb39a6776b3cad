package fixtures

import (
	"fmt"
	"os"
	"path/filepath"
	"testing"
)

func cell(id, home, away string) string {
	return `<a data-testid="event_cell" data-id="` + id + `">` +
		`<div data-testid="left_team"><span>` + home + `</span></div>` +
		`<div data-testid="right_team"><span>` + away + `</span></div>` +
		`</a>`
}

func TestParseRound_SkipsMalformedCells(t *testing.T) {
	html := `<html><body>
` + cell("100", "Barcelona", "Valencia") + `
<a data-testid="event_cell"><div data-testid="left_team">No Id</div><div data-testid="right_team">Either</div></a>
<a data-testid="event_cell" data-id="101"><div data-testid="left_team">Lonely Side</div></a>
` + cell("102", "Betis", "Getafe") + `
</body></html>`

	entries, err := ParseRound([]byte(html), 3)
	if err != nil {
		t.Fatalf("ParseRound error: %v", err)
	}
	if len(entries) != 2 {
		t.Fatalf("expected 2 entries, got %d: %+v", len(entries), entries)
	}
	got := entries[0]
	if got.MatchID != "100" || got.Home != "barcelona" || got.Away != "valencia" || got.Round != 3 {
		t.Errorf("unexpected entry: %+v", got)
	}
	if entries[1].Home != "real-betis" {
		t.Errorf("Home = %q, want real-betis (override applied)", entries[1].Home)
	}
}

func TestBuildIndex_LaterRoundOverwrites(t *testing.T) {
	d1 := Document{Round: 1, HTML: []byte(cell("100", "Barcelona", "Valencia") + cell("200", "Girona", "Osasuna"))}
	d2 := Document{Round: 2, HTML: []byte(cell("100", "Valencia", "Barcelona"))}

	idx, err := BuildIndex([]Document{d1, d2})
	if err != nil {
		t.Fatalf("BuildIndex error: %v", err)
	}
	if len(idx) != 2 {
		t.Fatalf("expected 2 index entries, got %d", len(idx))
	}
	e := idx["100"]
	if e.Home != "valencia" || e.Away != "barcelona" || e.Round != 2 {
		t.Errorf("entry for 100 = %+v, want the round 2 assignment", e)
	}
	if idx["200"].Round != 1 {
		t.Errorf("entry for 200 = %+v, want round 1", idx["200"])
	}
}

func TestMatchIDs_SourceOrderDeduplicated(t *testing.T) {
	d1 := Document{Round: 1, HTML: []byte(cell("300", "A B", "C D") + cell("100", "E", "F"))}
	d2 := Document{Round: 2, HTML: []byte(cell("100", "E", "F") + cell("400", "G", "H"))}

	ids, err := MatchIDs([]Document{d1, d2})
	if err != nil {
		t.Fatalf("MatchIDs error: %v", err)
	}
	want := []string{"300", "100", "400"}
	if len(ids) != len(want) {
		t.Fatalf("ids = %v, want %v", ids, want)
	}
	for i := range want {
		if ids[i] != want[i] {
			t.Fatalf("ids = %v, want %v", ids, want)
		}
	}
}

func TestLoadRounds(t *testing.T) {
	dir := t.TempDir()
	for i := 1; i <= 2; i++ {
		p := filepath.Join(dir, fmt.Sprintf("round%d.txt", i))
		if err := os.WriteFile(p, []byte(cell(fmt.Sprintf("10%d", i), "A", "B")), 0o644); err != nil {
			t.Fatal(err)
		}
	}

	docs, err := LoadRounds(dir, 1, 2)
	if err != nil {
		t.Fatalf("LoadRounds error: %v", err)
	}
	if len(docs) != 2 || docs[0].Round != 1 || docs[1].Round != 2 {
		t.Fatalf("unexpected docs: %+v", docs)
	}

	if _, err := LoadRounds(dir, 1, 3); err == nil {
		t.Fatal("expected error for missing round3.txt")
	}
}

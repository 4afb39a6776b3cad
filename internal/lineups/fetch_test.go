package lineups

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func TestFetch_DecodesDocument(t *testing.T) {
	var gotPath string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{
			"home": {"players": [{"teamId": 2817, "shirtNumber": 9, "substitute": false,
				"player": {"id": 5, "name": "X", "slug": "x", "position": "F",
					"country": {"name": "Spain"}},
				"statistics": {"minutesPlayed": 90, "ratingVersions": {"original": 7.2}}}]},
			"away": {"players": []}
		}`))
	}))
	defer srv.Close()

	c := NewClient(srv.URL, 0)
	doc, err := c.Fetch(context.Background(), "12345")
	if err != nil {
		t.Fatalf("Fetch error: %v", err)
	}
	if gotPath != "/event/12345/lineups" {
		t.Errorf("request path = %q, want /event/12345/lineups", gotPath)
	}
	if doc.Home == nil || len(doc.Home.Players) != 1 {
		t.Fatalf("unexpected home sheet: %+v", doc.Home)
	}
	p := doc.Home.Players[0]
	if p.Player.Name == nil || *p.Player.Name != "X" {
		t.Errorf("player name = %v, want X", p.Player.Name)
	}
	if v, ok := p.Statistics["minutesPlayed"].(float64); !ok || v != 90 {
		t.Errorf("minutesPlayed = %v, want 90", p.Statistics["minutesPlayed"])
	}
}

func TestFetch_NonSuccessStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "nope", http.StatusForbidden)
	}))
	defer srv.Close()

	c := NewClient(srv.URL, 0)
	_, err := c.Fetch(context.Background(), "99")
	if err == nil {
		t.Fatal("expected error on 403")
	}
	if !strings.Contains(err.Error(), "99") || !strings.Contains(err.Error(), "403") {
		t.Errorf("error should name the match id and status, got %v", err)
	}
}

func TestFetch_ConnectionFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close() // refuse connections

	c := NewClient(srv.URL, 0)
	if _, err := c.Fetch(context.Background(), "7"); err == nil {
		t.Fatal("expected error on closed server")
	}
}

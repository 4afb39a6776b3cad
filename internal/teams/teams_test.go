package teams

import "testing"

func TestNormalize_OverrideHits(t *testing.T) {
	cases := []struct {
		raw  string
		want string
	}{
		{"Betis", "real-betis"},
		{"betis", "real-betis"},
		{"  BETIS  ", "real-betis"},
		{"Celta Vigo", "celta"},
		{"celtax2", "celta"},
		{"Atlético Madrid", "atl.-madrid"},
		{"alavésx2", "alaves"},
		{"Valladolid", "real-valladolid"},
	}
	for _, c := range cases {
		if got := Normalize(c.raw); got != c.want {
			t.Errorf("Normalize(%q) = %q, want %q", c.raw, got, c.want)
		}
	}
}

func TestNormalize_FallbackHyphenates(t *testing.T) {
	cases := []struct {
		raw  string
		want string
	}{
		{"Manchester United", "manchester-united"},
		{" Brighton and Hove Albion ", "brighton-and-hove-albion"},
		{"Sevilla", "sevilla"},
	}
	for _, c := range cases {
		if got := Normalize(c.raw); got != c.want {
			t.Errorf("Normalize(%q) = %q, want %q", c.raw, got, c.want)
		}
	}
}

// an already-canonical id passes through unchanged
func TestNormalize_Idempotent(t *testing.T) {
	for _, slug := range []string{"real-madrid", "rayo-vallecano", "las-palmas", "sevilla"} {
		if got := Normalize(slug); got != slug {
			t.Errorf("Normalize(%q) = %q, want unchanged", slug, got)
		}
	}
}

package similarity

import (
	"math"
	"testing"
)

func TestLevenshteinDistance(t *testing.T) {
	tests := []struct {
		name string
		a    string
		b    string
		want int
	}{
		{"both empty", "", "", 0},
		{"a empty", "", "prijs", 5},
		{"b empty", "prijs", "", 5},
		{"identical", "openingstijden", "openingstijden", 0},
		{"simple substitution", "kitten", "sitten", 1},
		{"simple insertion", "bier", "biers", 1},
		{"simple deletion", "banana", "banna", 1},
		{"multiple edits", "saturday", "sunday", 3},
		{"unicode chars (same len)", "café", "cafe", 1},
		{"unicode chars (diff len)", "résumé", "resume", 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := LevenshteinDistance(tt.a, tt.b)
			if got != tt.want {
				t.Errorf("LevenshteinDistance(%q, %q) = %d, want %d", tt.a, tt.b, got, tt.want)
			}
		})
	}
}

func TestLevenshteinDistanceSymmetric(t *testing.T) {
	pairs := [][2]string{
		{"wat zijn de openingstijden?", "wanneer zijn jullie open?"},
		{"kinderfeestje", "kinderfeest"},
		{"", "arrangement"},
	}
	for _, p := range pairs {
		if d1, d2 := LevenshteinDistance(p[0], p[1]), LevenshteinDistance(p[1], p[0]); d1 != d2 {
			t.Errorf("distance not symmetric for %q/%q: %d vs %d", p[0], p[1], d1, d2)
		}
	}
}

func TestRatio(t *testing.T) {
	tests := []struct {
		name string
		a    string
		b    string
		want float64
	}{
		{"identical", "hoe laat gaan jullie open", "hoe laat gaan jullie open", 1.0},
		{"both empty", "", "", 1.0},
		{"completely different same length", "abc", "xyz", 0.0},
		{"one empty", "", "bier", 0.0},
		// 20 runes each, two substitutions: exactly at a 0.90 threshold.
		{"threshold boundary", "wat kost het biertje", "wat kost een biertje", 0.90},
		{"single typo", "reserveren", "reserveeren", 1.0 - 1.0/11.0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Ratio(tt.a, tt.b)
			if math.Abs(got-tt.want) > 1e-9 {
				t.Errorf("Ratio(%q, %q) = %f, want %f", tt.a, tt.b, got, tt.want)
			}
		})
	}
}

func TestRatioUsesRuneLength(t *testing.T) {
	// "café" vs "cafe": distance 1 over 4 runes, not over byte length.
	got := Ratio("café", "cafe")
	want := 1.0 - 1.0/4.0
	if math.Abs(got-want) > 1e-9 {
		t.Errorf("Ratio(café, cafe) = %f, want %f", got, want)
	}
}

package match

import (
	"math"
	"testing"
)

func TestLevenshtein(t *testing.T) {
	tests := []struct {
		name string
		a, b string
		want int
	}{
		{name: "both empty", a: "", b: "", want: 0},
		{name: "left empty", a: "", b: "honda", want: 5},
		{name: "right empty", a: "honda", b: "", want: 5},
		{name: "identical", a: "apache", b: "apache", want: 0},
		{name: "single substitution", a: "honda", b: "hondo", want: 1},
		{name: "single insertion", a: "hond", b: "honda", want: 1},
		{name: "single deletion", a: "honda", b: "hnda", want: 1},
		{name: "kitten sitting", a: "kitten", b: "sitting", want: 3},
		{name: "disjoint", a: "abc", b: "xyz", want: 3},
		{name: "transposed chars cost two", a: "vdi", b: "dvi", want: 2},
		// Byte-based on purpose: "š" is two UTF-8 bytes, so it costs one
		// substitution plus one deletion against "s".
		{name: "multibyte rune counts bytes", a: "škoda", b: "skoda", want: 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Levenshtein(tt.a, tt.b); got != tt.want {
				t.Errorf("Levenshtein(%q, %q) = %d, want %d", tt.a, tt.b, got, tt.want)
			}
			// Distance is symmetric.
			if got := Levenshtein(tt.b, tt.a); got != tt.want {
				t.Errorf("Levenshtein(%q, %q) = %d, want %d", tt.b, tt.a, got, tt.want)
			}
		})
	}
}

func TestSimilarity_IdenticalNonEmpty(t *testing.T) {
	for _, s := range []string{"a", "honda", "apache 180", "rtr"} {
		if got := Similarity(s, s); got != 1.0 {
			t.Errorf("Similarity(%q, %q) = %v, want 1.0", s, s, got)
		}
	}
}

func TestSimilarity_DisjointEqualLength(t *testing.T) {
	// No characters in common, equal length: distance == length, so 0.
	pairs := [][2]string{{"abc", "xyz"}, {"honda", "quirk"}, {"ab", "cd"}}
	for _, p := range pairs {
		if got := Similarity(p[0], p[1]); got != 0.0 {
			t.Errorf("Similarity(%q, %q) = %v, want 0.0", p[0], p[1], got)
		}
	}
}

func TestSimilarity_BothEmptyIsZero(t *testing.T) {
	// Inherited scorer quirk: two empty strings score 0, not 1.
	if got := Similarity("", ""); got != 0 {
		t.Errorf("Similarity(\"\", \"\") = %v, want 0", got)
	}
}

func TestSimilarity_Bounds(t *testing.T) {
	pairs := [][2]string{
		{"", "honda"}, {"h", "honda"}, {"hondas", "honda"},
		{"splndor", "splendor"}, {"rtr", "rtr 160"},
	}
	for _, p := range pairs {
		got := Similarity(p[0], p[1])
		if got < 0 || got > 1 {
			t.Errorf("Similarity(%q, %q) = %v, out of [0,1]", p[0], p[1], got)
		}
	}
}

func TestSimilarity_Values(t *testing.T) {
	tests := []struct {
		a, b string
		want float64
	}{
		{"honda", "hondo", 0.8},   // 1 - 1/5
		{"splendor", "splendr", 1 - 1.0/8},
		{"city", "citi", 0.75}, // 1 - 1/4
	}
	for _, tt := range tests {
		if got := Similarity(tt.a, tt.b); math.Abs(got-tt.want) > 1e-9 {
			t.Errorf("Similarity(%q, %q) = %v, want %v", tt.a, tt.b, got, tt.want)
		}
	}
}

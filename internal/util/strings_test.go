package util

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestJoinOrNone(t *testing.T) {
	assert.Equal(t, "(none)", JoinOrNone(nil))
	assert.Equal(t, "(none)", JoinOrNone([]string{}))
	assert.Equal(t, "cheese", JoinOrNone([]string{"cheese"}))
	assert.Equal(t, "cheese, basil, olives", JoinOrNone([]string{"cheese", "basil", "olives"}))
}

func TestJoinOrDefault(t *testing.T) {
	tests := []struct {
		name  string
		items []string
		def   string
		want  string
	}{
		{"empty uses default", nil, "no presets", "no presets"},
		{"empty default", []string{}, "", ""},
		{"items ignore default", []string{"phone", "zip"}, "no presets", "phone, zip"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, JoinOrDefault(tt.items, tt.def))
		})
	}
}

func TestPluralize(t *testing.T) {
	for count, want := range map[int]string{-1: "digits", 0: "digits", 1: "digit", 10: "digits"} {
		assert.Equal(t, want, Pluralize(count, "digit", "digits"), "count %d", count)
	}
}

func TestLevenshteinDistance(t *testing.T) {
	tests := []struct {
		a, b string
		want int
	}{
		{"", "", 0},
		{"", "zip", 3},
		{"date", "", 4},
		{"phone", "phone", 0},
		{"phone", "phnoe", 2},
		{"date", "dates", 1},
		{"card", "car", 1},
		{"zip", "Zip", 1},
		{"us-phone", "phone", 3},
		{"→→", "→", 1},
	}

	for _, tt := range tests {
		t.Run(tt.a+"->"+tt.b, func(t *testing.T) {
			assert.Equal(t, tt.want, LevenshteinDistance(tt.a, tt.b))
			assert.Equal(t, tt.want, LevenshteinDistance(tt.b, tt.a))
		})
	}
}

func TestSuggestSimilar(t *testing.T) {
	presets := []string{"card", "date", "phone", "ssn", "time", "us-phone", "zip"}

	tests := []struct {
		input string
		want  []string
	}{
		{"phnoe", []string{"phone"}},
		{"dat", []string{"date"}},
		{"phones", []string{"phone"}},
		{"tate", []string{"date", "time"}},
		{"PHONE", []string{"phone"}},
		{"ssn", []string{"ssn"}},
		{"xyz", nil},
		{"", nil},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.want, SuggestSimilar(tt.input, presets, 3))
		})
	}
}

func TestSuggestSimilar_NoCandidates(t *testing.T) {
	assert.Nil(t, SuggestSimilar("phone", nil, 3))
	assert.Nil(t, SuggestSimilar("phone", []string{}, 3))
}

package tui

import (
	"testing"

	"ludex/internal/domain"
	"ludex/internal/tui/styles"
)

func TestHighlightMatches(t *testing.T) {
	st := styles.New(domain.ThemeLight)
	hl := func(s string) string { return st.MatchedChar.Render(s) }

	tests := []struct {
		name    string
		title   string
		indexes []int
		want    string
	}{
		{
			name:    "ascii title",
			title:   "Hades",
			indexes: []int{0, 1},
			want:    hl("H") + hl("a") + "des",
		},
		{
			name:    "multibyte rune before match",
			title:   "Ōkami", // Ō is two bytes, so 'k' sits at byte offset 2
			indexes: []int{2},
			want:    "Ō" + hl("k") + "ami",
		},
		{
			name:    "multibyte rune matched",
			title:   "Pokémon",
			indexes: []int{3},
			want:    "Pok" + hl("é") + "mon",
		},
		{
			name:    "no indexes",
			title:   "Celeste",
			indexes: nil,
			want:    "Celeste",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := highlightMatches(tt.title, tt.indexes, st)
			if got != tt.want {
				t.Errorf("highlightMatches(%q, %v) = %q, want %q", tt.title, tt.indexes, got, tt.want)
			}
		})
	}
}

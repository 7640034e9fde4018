package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSlugify(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"lowercases", "Camiseta", "camiseta"},
		{"strips accents", "São Paulo", "sao-paulo"},
		{"collapses separators", "Calça  Cargo -- Bege", "calca-cargo-bege"},
		{"trims edge hyphens", "  Moletom Canguru!  ", "moletom-canguru"},
		{"keeps digits", "Verão 2026", "verao-2026"},
		{"symbols only", "!!! ???", ""},
		{"empty", "", ""},
		{"mixed punctuation", "Tênis (Edição Limitada) #3", "tenis-edicao-limitada-3"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Slugify(tt.input))
		})
	}
}

func TestSlugifyIdempotent(t *testing.T) {
	// Feeding a slug back through must not change it
	slug := Slugify("Camiseta Oversized Preta")
	assert.Equal(t, slug, Slugify(slug))
}

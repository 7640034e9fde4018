package utils

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseBRL(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"plain", "R$ 99,90", "99.9"},
		{"thousands separator", "R$ 1.234,56", "1234.56"},
		{"no symbol", "59,90", "59.9"},
		{"no decimals", "R$ 200", "200"},
		{"whitespace", "  R$ 10,00 ", "10"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseBRL(tt.input)
			require.NoError(t, err)
			assert.True(t, got.Equal(decimal.RequireFromString(tt.want)),
				"got %s, want %s", got, tt.want)
		})
	}
}

func TestParseBRLInvalid(t *testing.T) {
	for _, input := range []string{"", "abc", "R$ "} {
		_, err := ParseBRL(input)
		assert.Error(t, err, "input %q", input)
	}
}

func TestFormatBRL(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"99.9", "R$ 99,90"},
		{"1234.56", "R$ 1.234,56"},
		{"1234567.8", "R$ 1.234.567,80"},
		{"0", "R$ 0,00"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, FormatBRL(decimal.RequireFromString(tt.input)))
	}
}

func TestBRLRoundTrip(t *testing.T) {
	// Display string → decimal → display string must be stable
	for _, display := range []string{"R$ 99,90", "R$ 1.234,56", "R$ 0,00"} {
		parsed, err := ParseBRL(display)
		require.NoError(t, err)
		assert.Equal(t, display, FormatBRL(parsed))
	}
}

package screening

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"lowercases", "Mohammad Al Hamed", "mohammad al hamed"},
		{"hyphen becomes word boundary", "Mohammed Al-Hameed", "mohammed al hameed"},
		{"strips punctuation runs", "Global Trade, L.L.C.!!", "global trade l l c"},
		{"collapses whitespace", "  12   King    Faisal  Road ", "12 king faisal road"},
		{"expands street abbreviation", "12 Main St", "12 main street"},
		{"expands str abbreviation", "12 Main Str", "12 main street"},
		{"expands road abbreviation", "King Faisal Rd", "king faisal road"},
		{"expands avenue abbreviations", "5th Ave and 6th Av", "5th avenue and 6th avenue"},
		{"expands boulevard abbreviation", "Sunset Blvd", "sunset boulevard"},
		{"expands lane abbreviation", "Mill Ln", "mill lane"},
		{"po box with dots", "P.O. Box 12345", "po box 12345"},
		{"po box without dots", "PO Box 12345", "po box 12345"},
		{"po box compact", "p.o.box 12345", "po box 12345"},
		{"abbreviation only as whole token", "Strand", "strand"},
		{"empty input", "", ""},
		{"punctuation only", "-.,;", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Normalize(tt.input))
		})
	}
}

func TestNormalizeDeterministic(t *testing.T) {
	input := "P.O. Box 99, Al-Hamed Str., Dubai"
	first := Normalize(input)
	for i := 0; i < 10; i++ {
		assert.Equal(t, first, Normalize(input))
	}
	// Normalization is a fixed point: re-normalizing changes nothing.
	assert.Equal(t, first, Normalize(first))
}

func TestTokens(t *testing.T) {
	assert.Equal(t, []string{"mohammad", "al", "hamed"}, Tokens("Mohammad Al-Hamed"))
	assert.Nil(t, Tokens(""))
	assert.Nil(t, Tokens(" ,.- "))
}

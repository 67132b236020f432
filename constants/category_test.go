package constants

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCanonicalize(t *testing.T) {
	tests := []struct {
		input   string
		want    Category
		matched bool
	}{
		{"Parts", Parts, true},
		{"parts", Parts, true},
		{"  labour  ", Labor, true},
		{"shop labor", Labor, true},
		{"sales tax", Tax, true},
		{"freight", Shipping, true},
		{"diagnostic", Diagnostics, true},
		{"misc", Other, true},
		{"carburetor polish", Other, false},
		{"", Other, false},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, matched := Canonicalize(tt.input)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.matched, matched)
		})
	}
}

func TestAsStringSlice(t *testing.T) {
	cats := AsStringSlice()
	assert.Contains(t, cats, "Parts")
	assert.Contains(t, cats, "Labor")
	assert.Contains(t, cats, "Other")
	assert.Len(t, cats, len(allCategories))
}

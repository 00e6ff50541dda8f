package domain

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNormalizeFlavorNames(t *testing.T) {
	tests := []struct {
		name   string
		input  []string
		expect []string
	}{
		{"trims whitespace", []string{" Citrus ", "Berry"}, []string{"Citrus", "Berry"}},
		{"drops empties", []string{"", "  ", "Floral"}, []string{"Floral"}},
		{"dedupes keeping first occurrence", []string{"Nutty", "Caramel", "Nutty"}, []string{"Nutty", "Caramel"}},
		{"all empty", []string{"", " "}, []string{}},
		{"nil input", nil, []string{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.expect, NormalizeFlavorNames(tt.input))
		})
	}
}

func TestSplitFlavorList(t *testing.T) {
	require.Equal(t, []string{"Chocolate", "Berry"}, SplitFlavorList("Chocolate, Berry"))
	require.Equal(t, []string{"Citrus"}, SplitFlavorList(" Citrus ,, "))
	require.Empty(t, SplitFlavorList(""))
}

func TestValidRating(t *testing.T) {
	require.False(t, ValidRating(0))
	require.True(t, ValidRating(1))
	require.True(t, ValidRating(5))
	require.False(t, ValidRating(6))
	require.False(t, ValidRating(-1))
}

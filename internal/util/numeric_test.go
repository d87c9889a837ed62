package util

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseNumeric(t *testing.T) {
	tests := []struct {
		input    string
		expected Number
		valid    bool
	}{
		{"123", Number{Int: 123, Uint: 123, Float: 123, IsInt: true, IsUint: true, IsFloat: true}, true},
		{"-456", Number{Int: -456, Float: -456, IsInt: true, IsFloat: true}, true},
		{"18446744073709551615", Number{Uint: math.MaxUint64, Float: 18446744073709551615, IsUint: true, IsFloat: true}, true},
		{"-9223372036854775808", Number{Int: math.MinInt64, Float: -9223372036854775808, IsInt: true, IsFloat: true}, true},
		{"1.5", Number{Float: 1.5, IsFloat: true}, true},
		{"-2.5e-3", Number{Float: -0.0025, IsFloat: true}, true},
		{"1e6", Number{Float: 1e6, IsFloat: true}, true},
		{"+5", Number{Int: 5, Uint: 5, Float: 5, IsInt: true, IsUint: true, IsFloat: true}, true},
		{"++5", Number{}, false},
		{"+-5", Number{}, false},
		{"0x1a", Number{}, false},
		{"0755", Number{Int: 755, Uint: 755, Float: 755, IsInt: true, IsUint: true, IsFloat: true}, true},
		{"", Number{}, false},
		{"abc", Number{}, false},
		{"12.3.4", Number{}, false},
		{"--123", Number{}, false},
		{"漢字", Number{}, false},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			actual, ok := ParseNumeric(tt.input)

			assert.Equal(t, tt.valid, ok, "Validity mismatch")
			if !tt.valid {
				return
			}
			assert.Equal(t, tt.expected, actual)
		})
	}
}

func TestParseNumericSpecialFloats(t *testing.T) {
	n, ok := ParseNumeric("NaN")
	assert.True(t, ok)
	assert.True(t, n.IsFloat)
	assert.False(t, n.IsInt)
	assert.True(t, math.IsNaN(n.Float))

	n, ok = ParseNumeric("-Inf")
	assert.True(t, ok)
	assert.True(t, math.IsInf(n.Float, -1))
}

package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRoundWithTwoDecimalPlace(t *testing.T) {
	tests := []struct {
		input    float64
		expected float64
	}{
		{0, 0},
		// 7.005 se almacena apenas por encima de 7.005, así que el medio
		// centavo sube
		{7.005, 7.01},
		{0.0245, 0.02},
		{6.999, 7.0},
		{-3.456, -3.46},
		{100.0, 100.0},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, RoundWithTwoDecimalPlace(tt.input))
	}
}

package money

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRound2(t *testing.T) {
	tests := []struct {
		in   float64
		want float64
	}{
		{150, 150},
		{11.5, 11.5},
		{100 * 1.5, 150},
		{0.125, 0.13},
		{-0.125, -0.13},
		{2.675, 2.68},
		{1000.004, 1000},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, Round2(tt.in), "Round2(%v)", tt.in)
	}
}

func TestPercent(t *testing.T) {
	assert.Equal(t, 12.5, Percent(1250, 1))
	assert.Equal(t, 0.0, Percent(0, 5))
	assert.Equal(t, 1.23, Percent(123, 1))
}

package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRoundAmount_HalfAwayFromZero(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"156.725", "156.73"},
		{"156.724", "156.72"},
		{"-156.725", "-156.73"},
		{"0.005", "0.01"},
		{"100000", "100000"},
	}
	for _, tt := range tests {
		got := RoundAmount(MustMoney(tt.in))
		assert.True(t, got.Equal(MustMoney(tt.want)), "RoundAmount(%s) = %s, want %s", tt.in, got, tt.want)
	}
}

func TestRoundCost(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"66666.66666", "66666.6667"},
		{"66666.66664", "66666.6666"},
		{"0.00005", "0.0001"},
	}
	for _, tt := range tests {
		got := RoundCost(MustMoney(tt.in))
		assert.True(t, got.Equal(MustMoney(tt.want)), "RoundCost(%s) = %s, want %s", tt.in, got, tt.want)
	}
}

func TestToBaht(t *testing.T) {
	rate := MustMoney("0.0015673")

	got := ToBaht(MustMoney("100000"), rate)
	assert.True(t, got.Equal(MustMoney("156.73")), "got %s", got)

	// 50000 * 0.0015673 = 78.365 rounds up
	got = ToBaht(MustMoney("50000"), rate)
	assert.True(t, got.Equal(MustMoney("78.37")), "got %s", got)
}

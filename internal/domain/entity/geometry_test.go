package entity

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestJSNumber(t *testing.T) {
	tests := []struct {
		in   float64
		want string
	}{
		{0, "0"},
		{math.Copysign(0, -1), "0"},
		{50, "50"},
		{-20, "-20"},
		{12.5, "12.5"},
		{100.0 / 3, "33.333333333333336"},
		{0.1 + 0.2, "0.30000000000000004"},
		{1e-7, "1e-7"},
		{1.5e-9, "1.5e-9"},
		{0.000001, "0.000001"},
		{1e21, "1e+21"},
		{123456789012345680000, "123456789012345680000"},
		{math.NaN(), "NaN"},
		{math.Inf(1), "Infinity"},
		{math.Inf(-1), "-Infinity"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, jsNumber(tt.in), "input %v", tt.in)
	}
}

func TestNewPosStyle_NoPadding(t *testing.T) {
	style := newPosStyle(SizeInfo{}, PosInfo{X: 50, Y: 0, Width: 50, Height: 100}, 10, -200)

	assert.Equal(t, PosStyle{
		Width:    "calc((100% - 0px) * 50 / 100)",
		Height:   "calc((100% - 0px) * 100 / 100)",
		Left:     "calc(0px + (100% - 0px) * 40 / 100)",
		Top:      "calc(0px + (100% - 0px) * 0 / 100 + -200%)",
		Position: "absolute",
	}, style)
}

func TestResolveFrame(t *testing.T) {
	si := SizeInfo{PaddingLeft: 10, PaddingRight: 10, PaddingTop: 5, PaddingBottom: 5}
	r := resolveFrame(si, PosInfo{X: 50, Y: 50, Width: 50, Height: 50}, 0, 0, 220, 110)

	assert.Equal(t, Rect{X: 110, Y: 55, W: 100, H: 50}, r)
}

package view

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClampImageIndex(t *testing.T) {
	tests := []struct {
		name     string
		i, count int
		want     int
	}{
		{"no images", 3, 0, 0},
		{"negative count", 1, -2, 0},
		{"negative index", -1, 4, 0},
		{"in range", 2, 4, 2},
		{"past end", 9, 4, 3},
		{"max int", math.MaxInt, 2, 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ClampImageIndex(tt.i, tt.count))
		})
	}
}

func TestClampQuantity(t *testing.T) {
	tests := []struct {
		name     string
		q, stock int
		want     int
	}{
		{"zero quantity", 0, 5, 1},
		{"negative quantity", -3, 5, 1},
		{"within stock", 3, 5, 3},
		{"above stock", 8, 5, 5},
		{"out of stock", 4, 0, 1},
		{"negative stock", 4, -1, 1},
		{"min int", math.MinInt, 10, 1},
		{"max int", math.MaxInt, 10, 10},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ClampQuantity(tt.q, tt.stock)
			assert.Equal(t, tt.want, got)
			assert.GreaterOrEqual(t, got, 1)
		})
	}
}

func TestTestimonialCycle(t *testing.T) {
	assert.Equal(t, 1, NextTestimonial(0, 3))
	assert.Equal(t, 0, NextTestimonial(2, 3))
	assert.Equal(t, 2, PrevTestimonial(0, 3))
	assert.Equal(t, 1, PrevTestimonial(2, 3))
	assert.Equal(t, 0, NextTestimonial(5, 0))
	assert.Equal(t, 0, PrevTestimonial(5, 0))

	// Stepping forward n times returns to the start.
	i := 1
	for range 4 {
		i = NextTestimonial(i, 4)
	}
	assert.Equal(t, 1, i)

	for _, start := range []int{-7, 0, 3, 11} {
		assert.Less(t, NextTestimonial(start, 4), 4)
		assert.GreaterOrEqual(t, PrevTestimonial(start, 4), 0)
	}
}

package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRefillItemLowStock(t *testing.T) {
	cases := []struct {
		name      string
		total     float64
		remaining float64
		want      bool
	}{
		{"plenty", 30, 20, false},
		{"exactly at threshold", 10, 2, true},
		{"just above threshold", 10, 2.5, false},
		{"empty", 10, 0, true},
		{"zero total", 0, 5, true},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			item := &RefillItem{TotalQuantity: tc.total, RemainingQuantity: tc.remaining}
			assert.Equal(t, tc.want, item.LowStock())
		})
	}
}

func TestRefillItemCanDecrement(t *testing.T) {
	item := &RefillItem{TotalQuantity: 10, RemainingQuantity: 1}
	assert.True(t, item.CanDecrement(1))
	assert.True(t, item.CanDecrement(0.5))
	assert.False(t, item.CanDecrement(1.5))
	assert.False(t, item.CanDecrement(0))
	assert.False(t, item.CanDecrement(-1))
}

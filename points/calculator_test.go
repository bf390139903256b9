package points

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCap(t *testing.T) {
	tests := []struct {
		name          string
		balance       int
		subtotalCents int64
		want          int
	}{
		{"balance limits", 100, 5000, 100},
		{"subtotal limits", 2000, 5000, 1000},
		{"equal bounds", 1000, 5000, 1000},
		{"zero balance", 0, 5000, 0},
		{"zero subtotal", 500, 0, 0},
		{"negative balance treated as zero", -10, 5000, 0},
		{"subtotal not divisible by rate", 2000, 4999, 999},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Cap(tt.balance, tt.subtotalCents))
		})
	}
}

func TestClamp(t *testing.T) {
	// Balance 2000 points against a $50.00 subtotal caps at 1000 points.
	assert.Equal(t, 1000, Clamp(5000, 2000, 5000))
	assert.Equal(t, 250, Clamp(250, 2000, 5000))
	assert.Equal(t, 0, Clamp(-5, 2000, 5000))
	assert.Equal(t, 1000, Clamp(1000, 2000, 5000))
}

func TestDiscountCents(t *testing.T) {
	assert.Equal(t, int64(500), DiscountCents(100))
	assert.Equal(t, int64(5), DiscountCents(1))
	assert.Equal(t, int64(0), DiscountCents(0))
	assert.Equal(t, int64(0), DiscountCents(-20))
}

func TestRedemptionCanZeroButNeverExceedSubtotal(t *testing.T) {
	// $50.00 subtotal, 2000 point balance: the full cap redeems exactly
	// the subtotal, landing the total on zero, which is allowed.
	subtotal := int64(5000)
	redeemed := Clamp(2000, 2000, subtotal)
	assert.Equal(t, 1000, redeemed)

	discount := DiscountCents(redeemed)
	assert.Equal(t, subtotal, discount)
	assert.GreaterOrEqual(t, subtotal-discount, int64(0))
}

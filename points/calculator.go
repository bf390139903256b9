// Package points converts loyalty points into a capped checkout discount.
// The conversion is fixed: 100 points = $5.00, so one point is worth five
// cents. Everything here is pure arithmetic over already-known values; the
// account service owns the balance and checkout owns the actual debit.
package points

import "context"

// CentsPerPoint is the fixed redemption rate.
const CentsPerPoint = 5

// Cap returns the maximum number of points redeemable against a subtotal:
// min(balance, floor(subtotal/5)). Redemption can zero an order but never
// push it negative.
func Cap(balance int, subtotalCents int64) int {
	if balance < 0 {
		balance = 0
	}
	bySubtotal := subtotalCents / CentsPerPoint
	if bySubtotal < 0 {
		bySubtotal = 0
	}
	if int64(balance) < bySubtotal {
		return balance
	}
	return int(bySubtotal)
}

// Clamp forces a requested redemption into [0, Cap]. Out-of-range requests
// are caller input mistakes, so they are clamped silently rather than
// surfaced as errors.
func Clamp(requested, balance int, subtotalCents int64) int {
	if requested < 0 {
		return 0
	}
	if cap := Cap(balance, subtotalCents); requested > cap {
		return cap
	}
	return requested
}

// DiscountCents is the monetary value of a redemption.
func DiscountCents(points int) int64 {
	if points < 0 {
		return 0
	}
	return int64(points) * CentsPerPoint
}

// BalanceProvider is the account-service boundary. This engine only reads
// the balance; the requested redemption is passed through to checkout and
// debited remotely.
type BalanceProvider interface {
	Balance(ctx context.Context, shopperKey string) (int, error)
}

// StaticBalance returns the same balance for every shopper. Used in tests
// and in development mode where no account service is configured.
type StaticBalance int

func (b StaticBalance) Balance(context.Context, string) (int, error) {
	return int(b), nil
}

// Package checkout turns the cart, the active promotion, the requested
// points and a shipping destination into one request against the remote
// checkout authority. The assembler never commits a charge; it only opens
// a session and hands back the redirect URL.
package checkout

import (
	"context"
	"errors"
	"strings"
	"sync/atomic"

	"github.com/emberhollow/storefront/models"
	"github.com/emberhollow/storefront/points"
	"github.com/emberhollow/storefront/utils"
	"github.com/google/uuid"
)

var (
	// ErrEmptyCart blocks submission before any network call.
	ErrEmptyCart = errors.New("cart is empty")
	// ErrSubmissionInFlight rejects a duplicate submit while one is running.
	ErrSubmissionInFlight = errors.New("a checkout submission is already in progress")
)

// AddressError reports the address fields missing from a submission.
type AddressError struct {
	Missing []string
}

func (e *AddressError) Error() string {
	return "shipping address is incomplete: missing " + strings.Join(e.Missing, ", ")
}

// ValidateAddress checks the required shipping fields: name, line 1, city,
// state and postal code.
func ValidateAddress(addr models.ShippingAddress) error {
	var missing []string
	check := func(field, value string) {
		if strings.TrimSpace(value) == "" {
			missing = append(missing, field)
		}
	}
	check("name", addr.Name)
	check("line1", addr.Line1)
	check("city", addr.City)
	check("state", addr.State)
	check("postal_code", addr.PostalCode)

	if len(missing) > 0 {
		return &AddressError{Missing: missing}
	}
	return nil
}

// Input is everything a submission needs, captured as plain values so a
// failed attempt leaves cart, promotion and points state untouched and
// retryable.
type Input struct {
	Items          []models.CartItem
	Promotion      *models.Promotion
	PointsToRedeem int
	Address        models.ShippingAddress
}

// Assembler owns the busy flag that serializes submissions per shopper.
type Assembler struct {
	client SessionClient
	busy   atomic.Bool
}

// NewAssembler builds an assembler over the session boundary.
func NewAssembler(client SessionClient) *Assembler {
	return &Assembler{client: client}
}

// Busy reports whether a submission is currently in flight.
func (a *Assembler) Busy() bool {
	return a.busy.Load()
}

// Submit enforces the local preconditions, opens a session, and returns
// the redirect URL. Precondition failures never reach the network and
// never set the busy flag. Remote failures clear the busy flag and leave
// everything retryable.
func (a *Assembler) Submit(ctx context.Context, in Input) (string, error) {
	if len(in.Items) == 0 {
		return "", ErrEmptyCart
	}
	if err := ValidateAddress(in.Address); err != nil {
		return "", err
	}

	if !a.busy.CompareAndSwap(false, true) {
		return "", ErrSubmissionInFlight
	}
	defer a.busy.Store(false)

	req := a.buildRequest(in)
	utils.LogInfo("Submitting checkout session %s: %d lines, advisory total %d cents", req.IdempotencyKey, len(req.Lines), req.AdvisoryTotalCents)

	url, err := a.client.CreateSession(ctx, req)
	if err != nil {
		utils.LogError("Checkout session %s failed: %v", req.IdempotencyKey, err)
		return "", err
	}
	return url, nil
}

func (a *Assembler) buildRequest(in Input) models.CheckoutRequest {
	req := models.CheckoutRequest{
		IdempotencyKey:  uuid.New().String(),
		PointsToRedeem:  in.PointsToRedeem,
		ShippingAddress: in.Address,
	}

	var subtotal int64
	for _, item := range in.Items {
		subtotal += item.LineTotalCents()
		req.Lines = append(req.Lines, models.CheckoutLine{
			PaymentRef:     item.PaymentRef,
			Quantity:       item.Quantity,
			Name:           item.Name,
			ImageURL:       item.ImageURL,
			UnitPriceCents: item.UnitPriceCents,
			VariantLabels:  item.VariantLabels,
		})
	}

	total := subtotal
	if in.Promotion != nil {
		req.PromotionID = in.Promotion.ID
		total -= in.Promotion.DiscountCents
	}
	total -= points.DiscountCents(in.PointsToRedeem)
	if total < 0 {
		total = 0
	}
	req.AdvisoryTotalCents = total
	return req
}

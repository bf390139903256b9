package checkout

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/emberhollow/storefront/models"
)

type stubSession struct {
	mu      sync.Mutex
	calls   int
	lastReq models.CheckoutRequest
	url     string
	err     error
	entered chan struct{}
	release chan struct{}
}

func (s *stubSession) CreateSession(_ context.Context, req models.CheckoutRequest) (string, error) {
	s.mu.Lock()
	s.calls++
	s.lastReq = req
	entered, release := s.entered, s.release
	url, err := s.url, s.err
	s.mu.Unlock()

	if entered != nil {
		close(entered)
		<-release
	}
	return url, err
}

func (s *stubSession) callCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.calls
}

func validAddress() models.ShippingAddress {
	return models.ShippingAddress{
		Name:       "Jordan Weaver",
		Line1:      "14 Tallow Ln",
		City:       "Asheville",
		State:      "NC",
		PostalCode: "28801",
	}
}

func cartItems() []models.CartItem {
	return []models.CartItem{
		{
			ProductSlug:    "amber-jar",
			VariantID:      "wood_30mm-8oz-lavender",
			Name:           "Amber Jar Candle",
			UnitPriceCents: 2000,
			Quantity:       2,
			MaxStock:       5,
			PaymentRef:     "price_amber_jar:wood_30mm-8oz-lavender",
			VariantLabels:  []string{"wood_30mm", "8oz", "Lavender"},
		},
		{
			ProductSlug:    "travel-tin",
			VariantID:      "cdn16-lavender",
			Name:           "Travel Tin Candle",
			UnitPriceCents: 1200,
			Quantity:       1,
			MaxStock:       20,
			PaymentRef:     "price_travel_tin:cdn16-lavender",
		},
	}
}

func TestSubmitBuildsSessionRequest(t *testing.T) {
	session := &stubSession{url: "https://pay.example.com/cs_123"}
	a := NewAssembler(session)

	promo := models.Promotion{ID: "promo_vip20", Code: "VIP20", DiscountCents: 800}
	url, err := a.Submit(context.Background(), Input{
		Items:          cartItems(),
		Promotion:      &promo,
		PointsToRedeem: 100,
		Address:        validAddress(),
	})
	require.NoError(t, err)
	assert.Equal(t, "https://pay.example.com/cs_123", url)

	req := session.lastReq
	require.Len(t, req.Lines, 2)
	assert.Equal(t, "price_amber_jar:wood_30mm-8oz-lavender", req.Lines[0].PaymentRef)
	assert.Equal(t, 2, req.Lines[0].Quantity)
	assert.Equal(t, []string{"wood_30mm", "8oz", "Lavender"}, req.Lines[0].VariantLabels)
	assert.Equal(t, "promo_vip20", req.PromotionID)
	assert.Equal(t, 100, req.PointsToRedeem)
	assert.NotEmpty(t, req.IdempotencyKey)

	// subtotal 5200 - promo 800 - points 500
	assert.Equal(t, int64(3900), req.AdvisoryTotalCents)
}

func TestSubmitAdvisoryTotalNeverNegative(t *testing.T) {
	session := &stubSession{url: "https://pay.example.com/cs_1"}
	a := NewAssembler(session)

	promo := models.Promotion{ID: "promo_big", DiscountCents: 100000}
	_, err := a.Submit(context.Background(), Input{
		Items:     cartItems(),
		Promotion: &promo,
		Address:   validAddress(),
	})
	require.NoError(t, err)
	assert.Equal(t, int64(0), session.lastReq.AdvisoryTotalCents)
}

func TestSubmitRejectsEmptyCartLocally(t *testing.T) {
	session := &stubSession{url: "https://pay.example.com/cs_1"}
	a := NewAssembler(session)

	_, err := a.Submit(context.Background(), Input{Address: validAddress()})
	assert.ErrorIs(t, err, ErrEmptyCart)
	assert.Zero(t, session.callCount())
	assert.False(t, a.Busy())
}

func TestSubmitRejectsIncompleteAddressLocally(t *testing.T) {
	session := &stubSession{url: "https://pay.example.com/cs_1"}
	a := NewAssembler(session)

	addr := validAddress()
	addr.PostalCode = " "
	_, err := a.Submit(context.Background(), Input{Items: cartItems(), Address: addr})

	var addrErr *AddressError
	require.ErrorAs(t, err, &addrErr)
	assert.Equal(t, []string{"postal_code"}, addrErr.Missing)

	// Precondition failures never reach the network or set the busy flag.
	assert.Zero(t, session.callCount())
	assert.False(t, a.Busy())
}

func TestValidateAddressReportsAllMissingFields(t *testing.T) {
	err := ValidateAddress(models.ShippingAddress{Line2: "Apt 4"})
	var addrErr *AddressError
	require.ErrorAs(t, err, &addrErr)
	assert.Equal(t, []string{"name", "line1", "city", "state", "postal_code"}, addrErr.Missing)

	assert.NoError(t, ValidateAddress(validAddress()))
}

func TestSubmitRemoteFailureIsRetryable(t *testing.T) {
	session := &stubSession{err: errors.New("upstream unavailable")}
	a := NewAssembler(session)

	in := Input{Items: cartItems(), Address: validAddress()}
	_, err := a.Submit(context.Background(), in)
	require.Error(t, err)
	assert.False(t, a.Busy())

	// The same submission succeeds once the remote recovers.
	session.mu.Lock()
	session.err = nil
	session.url = "https://pay.example.com/cs_retry"
	session.mu.Unlock()

	url, err := a.Submit(context.Background(), in)
	require.NoError(t, err)
	assert.Equal(t, "https://pay.example.com/cs_retry", url)
	assert.Equal(t, 2, session.callCount())
}

func TestSubmitBlocksDuplicateWhileInFlight(t *testing.T) {
	session := &stubSession{
		url:     "https://pay.example.com/cs_1",
		entered: make(chan struct{}),
		release: make(chan struct{}),
	}
	a := NewAssembler(session)

	in := Input{Items: cartItems(), Address: validAddress()}

	done := make(chan error, 1)
	go func() {
		_, err := a.Submit(context.Background(), in)
		done <- err
	}()

	<-session.entered
	assert.True(t, a.Busy())

	_, err := a.Submit(context.Background(), in)
	assert.ErrorIs(t, err, ErrSubmissionInFlight)

	close(session.release)
	require.NoError(t, <-done)
	assert.False(t, a.Busy())
	assert.Equal(t, 1, session.callCount())
}

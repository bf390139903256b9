package promotion

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/emberhollow/storefront/models"
)

var (
	spring10 = models.Promotion{ID: "promo_spring10", Name: "Spring Special", Type: "flat", DiscountCents: 500}
	vip20    = models.Promotion{ID: "promo_vip20", Code: "VIP20", Name: "VIP Discount", Type: "flat", DiscountCents: 800}
)

// stubValidator dispatches on the submitted code and records every call.
type stubValidator struct {
	mu      sync.Mutex
	handler func(code string, lines []models.PromoLine) (Verdict, error)
	codes   []string
}

func (s *stubValidator) Validate(_ context.Context, code string, lines []models.PromoLine) (Verdict, error) {
	s.mu.Lock()
	s.codes = append(s.codes, code)
	handler := s.handler
	s.mu.Unlock()
	return handler(code, lines)
}

func (s *stubValidator) callCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.codes)
}

func defaultHandler(code string, _ []models.PromoLine) (Verdict, error) {
	switch code {
	case "":
		promo := spring10
		return Verdict{Valid: true, Promotion: &promo}, nil
	case "VIP20":
		promo := vip20
		return Verdict{Valid: true, Promotion: &promo}, nil
	default:
		return Verdict{Valid: false, Error: "invalid or expired code"}, nil
	}
}

func cartLines() []models.PromoLine {
	return []models.PromoLine{{Slug: "amber-jar", Quantity: 2, UnitPriceCents: 2000}}
}

func TestDiscoverAutoAdoptsQualifyingPromotion(t *testing.T) {
	validator := &stubValidator{handler: defaultHandler}
	r := NewResolver(validator)

	r.DiscoverAuto(context.Background(), cartLines())

	promo, source, active := r.Active()
	require.True(t, active)
	assert.Equal(t, spring10.ID, promo.ID)
	assert.Equal(t, models.SourceAutomatic, source)
	assert.Equal(t, int64(500), r.DiscountCents())
}

func TestManualApplicationSupersedesAutomatic(t *testing.T) {
	validator := &stubValidator{handler: defaultHandler}
	r := NewResolver(validator)

	r.DiscoverAuto(context.Background(), cartLines())

	// Lowercase, padded input is normalized before validation.
	promo, err := r.Apply(context.Background(), "  vip20 ", cartLines())
	require.NoError(t, err)
	assert.Equal(t, vip20.ID, promo.ID)

	active, source, ok := r.Active()
	require.True(t, ok)
	assert.Equal(t, vip20.ID, active.ID)
	assert.Equal(t, models.SourceManual, source)
	assert.Equal(t, int64(800), r.DiscountCents())
}

func TestDiscoverAutoSkippedWhileManualActive(t *testing.T) {
	validator := &stubValidator{handler: defaultHandler}
	r := NewResolver(validator)

	_, err := r.Apply(context.Background(), "VIP20", cartLines())
	require.NoError(t, err)
	calls := validator.callCount()

	r.DiscoverAuto(context.Background(), cartLines())

	// No remote call was made and the manual selection survived.
	assert.Equal(t, calls, validator.callCount())
	active, source, ok := r.Active()
	require.True(t, ok)
	assert.Equal(t, vip20.ID, active.ID)
	assert.Equal(t, models.SourceManual, source)
}

func TestRemoveDoesNotResurrectAutomaticPromotion(t *testing.T) {
	validator := &stubValidator{handler: defaultHandler}
	r := NewResolver(validator)

	_, err := r.Apply(context.Background(), "VIP20", cartLines())
	require.NoError(t, err)

	r.Remove()
	_, _, active := r.Active()
	assert.False(t, active)

	// Discovery is event-driven: nothing reappears until the next cart
	// change fires it again.
	assert.Equal(t, int64(0), r.DiscountCents())

	r.DiscoverAuto(context.Background(), cartLines())
	promo, source, ok := r.Active()
	require.True(t, ok)
	assert.Equal(t, spring10.ID, promo.ID)
	assert.Equal(t, models.SourceAutomatic, source)
}

func TestApplyInvalidCodeKeepsPreviousState(t *testing.T) {
	validator := &stubValidator{handler: defaultHandler}
	r := NewResolver(validator)

	r.DiscoverAuto(context.Background(), cartLines())

	_, err := r.Apply(context.Background(), "EXPIRED99", cartLines())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid or expired")

	promo, source, active := r.Active()
	require.True(t, active)
	assert.Equal(t, spring10.ID, promo.ID)
	assert.Equal(t, models.SourceAutomatic, source)
}

func TestApplyBlankCodeRejectedLocally(t *testing.T) {
	validator := &stubValidator{handler: defaultHandler}
	r := NewResolver(validator)

	_, err := r.Apply(context.Background(), "   ", cartLines())
	assert.ErrorIs(t, err, ErrInvalidCode)
	assert.Zero(t, validator.callCount())
}

func TestDiscoverAutoValidationFailureKeepsState(t *testing.T) {
	validator := &stubValidator{handler: defaultHandler}
	r := NewResolver(validator)
	r.DiscoverAuto(context.Background(), cartLines())

	validator.mu.Lock()
	validator.handler = func(string, []models.PromoLine) (Verdict, error) {
		return Verdict{}, errors.New("network down")
	}
	validator.mu.Unlock()

	r.DiscoverAuto(context.Background(), cartLines())

	promo, _, active := r.Active()
	require.True(t, active)
	assert.Equal(t, spring10.ID, promo.ID)
}

func TestDiscoverAutoEmptyCartClearsWithoutRemoteCall(t *testing.T) {
	validator := &stubValidator{handler: defaultHandler}
	r := NewResolver(validator)
	r.DiscoverAuto(context.Background(), cartLines())

	calls := validator.callCount()
	r.DiscoverAuto(context.Background(), nil)

	assert.Equal(t, calls, validator.callCount())
	_, _, active := r.Active()
	assert.False(t, active)
}

func TestStaleAutomaticResponseDropped(t *testing.T) {
	// An automatic discovery that is still in flight when the shopper
	// applies a code must not overwrite the manual selection when it
	// finally resolves: last write wins by generation.
	entered := make(chan struct{})
	release := make(chan struct{})

	validator := &stubValidator{}
	validator.handler = func(code string, lines []models.PromoLine) (Verdict, error) {
		if code == "" {
			close(entered)
			<-release
		}
		return defaultHandler(code, lines)
	}
	r := NewResolver(validator)

	done := make(chan struct{})
	go func() {
		defer close(done)
		r.DiscoverAuto(context.Background(), cartLines())
	}()

	<-entered
	_, err := r.Apply(context.Background(), "VIP20", cartLines())
	require.NoError(t, err)

	close(release)
	<-done

	promo, source, active := r.Active()
	require.True(t, active)
	assert.Equal(t, vip20.ID, promo.ID)
	assert.Equal(t, models.SourceManual, source)
}

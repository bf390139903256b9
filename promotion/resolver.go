// Package promotion keeps the single active discount for a shopper's cart.
// Two paths feed one slot: automatic discovery fired by cart-change events,
// and manual application of a shopper-entered code. A manual selection
// always supersedes an automatic one, and removing a selection does not
// re-run discovery until the next qualifying cart change.
package promotion

import (
	"context"
	"errors"
	"strings"
	"sync"

	"github.com/emberhollow/storefront/models"
	"github.com/emberhollow/storefront/utils"
)

// ErrInvalidCode is returned when the remote endpoint rejects a code.
var ErrInvalidCode = errors.New("invalid or expired promotion code")

// Resolver holds at most one active promotion per shopper. Remote calls
// run outside the lock and are tagged with a generation counter so a stale
// response can never overwrite a newer selection: last write wins, made
// explicit.
type Resolver struct {
	validator Validator

	mu     sync.Mutex
	active *models.Promotion
	source models.PromotionSource
	gen    uint64
}

// NewResolver builds a resolver over the given validation boundary.
func NewResolver(validator Validator) *Resolver {
	return &Resolver{validator: validator}
}

// Active returns the current promotion and its source, if any.
func (r *Resolver) Active() (models.Promotion, models.PromotionSource, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.active == nil {
		return models.Promotion{}, 0, false
	}
	return *r.active, r.source, true
}

// DiscountCents is the active discount, zero when no promotion applies.
func (r *Resolver) DiscountCents() int64 {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.active == nil {
		return 0
	}
	return r.active.DiscountCents
}

// DiscoverAuto asks the validation endpoint whether the cart qualifies for
// a promotion without a code. Called from the cart-change hook; skipped
// entirely while a manual promotion is active. A validation failure keeps
// the previous state.
func (r *Resolver) DiscoverAuto(ctx context.Context, lines []models.PromoLine) {
	r.mu.Lock()
	if r.active != nil && r.source == models.SourceManual {
		r.mu.Unlock()
		return
	}
	r.gen++
	gen := r.gen
	r.mu.Unlock()

	if len(lines) == 0 {
		r.commit(gen, nil, models.SourceAutomatic)
		return
	}

	verdict, err := r.validator.Validate(ctx, "", lines)
	if err != nil {
		utils.LogError("Automatic promotion discovery failed: %v", err)
		return
	}
	if !verdict.Valid || verdict.Promotion == nil {
		r.commit(gen, nil, models.SourceAutomatic)
		return
	}
	utils.LogInfo("Automatic promotion %s qualified, discount %d cents", verdict.Promotion.ID, verdict.Promotion.DiscountCents)
	r.commit(gen, verdict.Promotion, models.SourceAutomatic)
}

// Apply validates a shopper-entered code against the cart and, on success,
// makes it the active promotion, superseding any automatic one. On failure
// the previous state is untouched. The code is uppercased and trimmed
// before it is sent.
func (r *Resolver) Apply(ctx context.Context, code string, lines []models.PromoLine) (models.Promotion, error) {
	code = strings.ToUpper(strings.TrimSpace(code))
	if code == "" {
		return models.Promotion{}, ErrInvalidCode
	}

	r.mu.Lock()
	r.gen++
	gen := r.gen
	r.mu.Unlock()

	verdict, err := r.validator.Validate(ctx, code, lines)
	if err != nil {
		return models.Promotion{}, err
	}
	if !verdict.Valid || verdict.Promotion == nil {
		if verdict.Error != "" {
			return models.Promotion{}, errors.New(verdict.Error)
		}
		return models.Promotion{}, ErrInvalidCode
	}

	if !r.commit(gen, verdict.Promotion, models.SourceManual) {
		// A newer action resolved while this call was in flight.
		return models.Promotion{}, errors.New("promotion application superseded by a newer action")
	}
	utils.LogInfo("Applied promotion code %s, discount %d cents", code, verdict.Promotion.DiscountCents)
	return *verdict.Promotion, nil
}

// Remove clears whichever promotion is active, manual or automatic. It
// deliberately does not re-run automatic discovery; the next qualifying
// cart-change event does.
func (r *Resolver) Remove() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.gen++
	r.active = nil
}

// commit installs a resolution if no newer action has happened since the
// call left for the network. Returns false for stale responses.
func (r *Resolver) commit(gen uint64, promo *models.Promotion, source models.PromotionSource) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	if gen != r.gen {
		return false
	}
	// An automatic result never displaces a manual selection, even when
	// the generations line up.
	if source == models.SourceAutomatic && r.active != nil && r.source == models.SourceManual {
		return false
	}
	r.active = promo
	r.source = source
	return true
}

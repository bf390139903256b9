package controllers

import (
	"context"
	"sync"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/emberhollow/storefront/cart"
	"github.com/emberhollow/storefront/catalog"
	"github.com/emberhollow/storefront/checkout"
	"github.com/emberhollow/storefront/middleware"
	"github.com/emberhollow/storefront/points"
	"github.com/emberhollow/storefront/promotion"
	"github.com/emberhollow/storefront/utils"
)

// Deps are the engine collaborators the controllers run against, injected
// once at startup so tests can substitute in-memory fakes.
type Deps struct {
	Catalog  catalog.Provider
	Storage  cart.Storage
	Promos   promotion.Validator
	Sessions checkout.SessionClient
	Balances points.BalanceProvider
}

var deps Deps

// shopperEngine bundles the per-shopper engine state: one cart store, one
// promotion slot and one checkout busy flag.
type shopperEngine struct {
	Cart     *cart.Store
	Promo    *promotion.Resolver
	Checkout *checkout.Assembler
}

var (
	enginesMu sync.Mutex
	engines   = make(map[string]*shopperEngine)
)

// Setup wires the controllers to their collaborators.
func Setup(d Deps) {
	deps = d
	enginesMu.Lock()
	engines = make(map[string]*shopperEngine)
	enginesMu.Unlock()
}

// engineFor returns (creating on first use) the engine for the request's
// cart key. The cart store hydrates from the storage adapter, and its
// change hook feeds automatic promotion discovery.
func engineFor(c *gin.Context) (*shopperEngine, bool) {
	key := c.GetString(middleware.CartKeyContextKey)
	if key == "" {
		utils.LogError("Cart key missing from request context")
		utils.BadRequest(c, "Cart session missing", nil)
		return nil, false
	}

	enginesMu.Lock()
	defer enginesMu.Unlock()

	if eng, ok := engines[key]; ok {
		return eng, true
	}

	eng := &shopperEngine{
		Cart:     cart.NewStore(key, deps.Storage),
		Promo:    promotion.NewResolver(deps.Promos),
		Checkout: checkout.NewAssembler(deps.Sessions),
	}
	// Cart-change events drive automatic discovery; the resolver itself
	// skips the call while a manual promotion is active.
	eng.Cart.Subscribe(func() {
		ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
		defer cancel()
		eng.Promo.DiscoverAuto(ctx, eng.Cart.PromoLines())
	})
	engines[key] = eng
	return eng, true
}

// pointsBalance reads the shopper's loyalty balance, treating a failure as
// zero so pricing previews degrade instead of erroring.
func pointsBalance(c *gin.Context, key string) int {
	if deps.Balances == nil {
		return 0
	}
	balance, err := deps.Balances.Balance(c.Request.Context(), key)
	if err != nil {
		utils.LogError("Failed to fetch points balance for %s: %v", key, err)
		return 0
	}
	return balance
}

package catalog

import (
	"context"
	"errors"

	"github.com/emberhollow/storefront/models"
)

// ErrProductNotFound is returned by providers for unknown slugs.
var ErrProductNotFound = errors.New("product not found")

// Provider is the catalog collaborator boundary. The engine treats
// whatever stock a provider reports as a snapshot, not a live lock.
// Catalog writes happen elsewhere; this interface is read-only.
type Provider interface {
	ProductBySlug(ctx context.Context, slug string) (models.Product, error)
	// ScentsForProduct returns the scents eligible for the product,
	// already filtered per EligibleScents.
	ScentsForProduct(ctx context.Context, product models.Product) ([]models.Scent, error)
}

// StaticProvider serves a fixed in-memory catalog. Used in tests and as
// the seed catalog in development mode.
type StaticProvider struct {
	Products []models.Product
	Scents   []models.Scent
}

func (p *StaticProvider) ProductBySlug(_ context.Context, slug string) (models.Product, error) {
	for _, prod := range p.Products {
		if prod.Slug == slug {
			return prod, nil
		}
	}
	return models.Product{}, ErrProductNotFound
}

func (p *StaticProvider) ScentsForProduct(_ context.Context, product models.Product) ([]models.Scent, error) {
	return EligibleScents(p.Scents, product), nil
}

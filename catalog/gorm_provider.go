package catalog

import (
	"context"
	"errors"
	"fmt"

	"github.com/emberhollow/storefront/models"
	"gorm.io/gorm"
)

// GORMProvider reads the catalog from Postgres. It only ever reads;
// product and scent administration is a separate system.
type GORMProvider struct {
	db *gorm.DB
}

// NewGORMProvider wraps an open gorm connection as a catalog provider.
func NewGORMProvider(db *gorm.DB) *GORMProvider {
	return &GORMProvider{db: db}
}

func (p *GORMProvider) ProductBySlug(ctx context.Context, slug string) (models.Product, error) {
	var product models.Product
	err := p.db.WithContext(ctx).Where("slug = ?", slug).First(&product).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.Product{}, ErrProductNotFound
		}
		return models.Product{}, fmt.Errorf("failed to fetch product %s: %w", slug, err)
	}
	return product, nil
}

func (p *GORMProvider) ScentsForProduct(ctx context.Context, product models.Product) ([]models.Scent, error) {
	var scents []models.Scent
	if err := p.db.WithContext(ctx).Find(&scents).Error; err != nil {
		return nil, fmt.Errorf("failed to fetch scents: %w", err)
	}
	return EligibleScents(scents, product), nil
}

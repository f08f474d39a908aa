package repositories

import (
	"context"
	"errors"

	"inventory/internal/models"
)

// ErrProductNotFound is returned when no product has the requested ID.
var ErrProductNotFound = errors.New("product not found")

// ProductRepository defines the interface for product data access.
type ProductRepository interface {
	// List returns up to limit products ordered by ID, skipping the first skip.
	List(ctx context.Context, skip, limit int) ([]models.Product, error)
	GetByID(ctx context.Context, id uint) (*models.Product, error)
	// Create stores a new product and sets its generated ID.
	Create(ctx context.Context, product *models.Product) error
	// Update overwrites every mutable field of the product identified by product.ID.
	Update(ctx context.Context, product *models.Product) error
	// Delete removes a product and returns the row as it was before removal.
	Delete(ctx context.Context, id uint) (*models.Product, error)
}

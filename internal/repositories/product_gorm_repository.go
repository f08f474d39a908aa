package repositories

import (
	"context"
	"errors"
	"fmt"

	"inventory/internal/models"

	"gorm.io/gorm"
)

// GORMProductRepository is a GORM implementation of ProductRepository.
type GORMProductRepository struct {
	db *gorm.DB
}

// NewGORMProductRepository creates a new instance of GORMProductRepository.
func NewGORMProductRepository(db *gorm.DB) *GORMProductRepository {
	return &GORMProductRepository{
		db: db,
	}
}

// session runs fn against a handle scoped to one unit of work. The handle is a
// transaction bound to ctx: it is committed when fn returns nil and rolled back
// on any error or panic, so its connection always goes back to the pool.
func (r *GORMProductRepository) session(ctx context.Context, fn func(tx *gorm.DB) error) error {
	return r.db.WithContext(ctx).Transaction(fn)
}

// List retrieves a page of products from the database.
func (r *GORMProductRepository) List(ctx context.Context, skip, limit int) ([]models.Product, error) {
	products := []models.Product{}
	err := r.session(ctx, func(tx *gorm.DB) error {
		return tx.Order("id").Offset(skip).Limit(limit).Find(&products).Error
	})
	if err != nil {
		return nil, fmt.Errorf("failed to list products: %w", err)
	}
	return products, nil
}

// GetByID retrieves a single product by its ID from the database.
func (r *GORMProductRepository) GetByID(ctx context.Context, id uint) (*models.Product, error) {
	var product models.Product
	err := r.session(ctx, func(tx *gorm.DB) error {
		return findProduct(tx, id, &product)
	})
	if err != nil {
		return nil, err
	}
	return &product, nil
}

// Create creates a new product in the database.
func (r *GORMProductRepository) Create(ctx context.Context, product *models.Product) error {
	product.ID = 0
	err := r.session(ctx, func(tx *gorm.DB) error {
		return tx.Create(product).Error
	})
	if err != nil {
		return fmt.Errorf("failed to create product: %w", err)
	}
	return nil
}

// Update replaces an existing product in the database.
func (r *GORMProductRepository) Update(ctx context.Context, product *models.Product) error {
	return r.session(ctx, func(tx *gorm.DB) error {
		var existing models.Product
		if err := findProduct(tx, product.ID, &existing); err != nil {
			return err
		}
		product.CreatedAt = existing.CreatedAt
		// Save writes every column, zero values included.
		if err := tx.Save(product).Error; err != nil {
			return fmt.Errorf("failed to update product %d: %w", product.ID, err)
		}
		return nil
	})
}

// Delete deletes a product by its ID from the database.
func (r *GORMProductRepository) Delete(ctx context.Context, id uint) (*models.Product, error) {
	var product models.Product
	err := r.session(ctx, func(tx *gorm.DB) error {
		if err := findProduct(tx, id, &product); err != nil {
			return err
		}
		res := tx.Delete(&models.Product{}, id)
		if res.Error != nil {
			return fmt.Errorf("failed to delete product %d: %w", id, res.Error)
		}
		if res.RowsAffected == 0 {
			return ErrProductNotFound
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &product, nil
}

func findProduct(tx *gorm.DB, id uint, dst *models.Product) error {
	if err := tx.First(dst, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrProductNotFound
		}
		return fmt.Errorf("failed to get product by ID %d: %w", id, err)
	}
	return nil
}

package services

import (
	"context"
	"fmt"

	"inventory/internal/models"
	"inventory/internal/repositories"

	"github.com/rs/zerolog"
)

// DefaultLimit is the page size used when a caller does not ask for one.
const DefaultLimit = 100

// EventPublisher delivers product lifecycle events to interested consumers.
type EventPublisher interface {
	PublishProductEvent(ctx context.Context, event models.ProductEvent) error
}

// ProductService handles business logic related to products.
type ProductService struct {
	repo      repositories.ProductRepository
	publisher EventPublisher
	log       zerolog.Logger
}

// NewProductService creates a new ProductService. publisher may be nil, in
// which case no events are emitted.
func NewProductService(repo repositories.ProductRepository, publisher EventPublisher, log zerolog.Logger) *ProductService {
	return &ProductService{
		repo:      repo,
		publisher: publisher,
		log:       log,
	}
}

// ListProducts retrieves up to limit products after skipping the first skip.
func (s *ProductService) ListProducts(ctx context.Context, skip, limit int) ([]models.Product, error) {
	if skip < 0 {
		skip = 0
	}
	if limit <= 0 {
		limit = DefaultLimit
	}
	return s.repo.List(ctx, skip, limit)
}

// GetProduct retrieves a single product by its ID.
func (s *ProductService) GetProduct(ctx context.Context, id uint) (*models.Product, error) {
	return s.repo.GetByID(ctx, id)
}

// CreateProduct stores a new product built from a validated input.
func (s *ProductService) CreateProduct(ctx context.Context, input models.ProductInput) (*models.Product, error) {
	product := input.ToModel()
	if err := s.repo.Create(ctx, &product); err != nil {
		return nil, err
	}
	s.publish(ctx, models.EventProductCreated, product)
	return &product, nil
}

// UpdateProduct replaces every mutable field of an existing product.
func (s *ProductService) UpdateProduct(ctx context.Context, id uint, input models.ProductInput) (*models.Product, error) {
	product := input.ToModel()
	product.ID = id
	if err := s.repo.Update(ctx, &product); err != nil {
		return nil, err
	}
	s.publish(ctx, models.EventProductUpdated, product)
	return &product, nil
}

// DeleteProduct removes a product and returns what was removed.
func (s *ProductService) DeleteProduct(ctx context.Context, id uint) (*models.Product, error) {
	product, err := s.repo.Delete(ctx, id)
	if err != nil {
		return nil, err
	}
	s.publish(ctx, models.EventProductDeleted, *product)
	return product, nil
}

// publish is best effort: the mutation is already committed, so a failed
// delivery is logged and never reported to the caller.
func (s *ProductService) publish(ctx context.Context, eventType string, product models.Product) {
	if s.publisher == nil {
		return
	}
	event := models.NewProductEvent(eventType, product)
	if err := s.publisher.PublishProductEvent(ctx, event); err != nil {
		s.log.Warn().
			Err(fmt.Errorf("publish %s: %w", eventType, err)).
			Uint("product_id", product.ID).
			Msg("failed to publish product event")
		return
	}
	s.log.Debug().Str("event_id", event.ID).Str("type", eventType).Uint("product_id", product.ID).Msg("published product event")
}

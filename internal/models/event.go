package models

import (
	"time"

	"github.com/google/uuid"
)

// Product lifecycle event types.
const (
	EventProductCreated = "product.created"
	EventProductUpdated = "product.updated"
	EventProductDeleted = "product.deleted"
)

// ProductEvent is published after a product mutation has been committed.
type ProductEvent struct {
	ID         string          `json:"id"`
	Type       string          `json:"type"`
	Product    ProductResponse `json:"product"`
	OccurredAt time.Time       `json:"occurred_at"`
}

// NewProductEvent stamps a new event for p.
func NewProductEvent(eventType string, p Product) ProductEvent {
	return ProductEvent{
		ID:         uuid.NewString(),
		Type:       eventType,
		Product:    NewProductResponse(p),
		OccurredAt: time.Now().UTC(),
	}
}

package models

import (
	"fmt"
	"time"
)

// DefaultDescription is stored when a product is written without a description.
const DefaultDescription = "Sin descripción"

// Product represents a row of the products table.
type Product struct {
	ID          uint    `gorm:"primaryKey;autoIncrement"`
	Name        string  `gorm:"index;not null"`
	Description string  `gorm:"not null"`
	Price       float64 `gorm:"not null"`
	Quantity    int     `gorm:"not null"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// TableName pins the table name regardless of the naming strategy.
func (Product) TableName() string {
	return "products"
}

// ProductInput is the accepted body of create and update requests.
// Price and Quantity are pointers so that a missing field is told apart from a zero value.
type ProductInput struct {
	Name        string   `json:"name" validate:"required,min=3,max=100"`
	Description *string  `json:"description" validate:"omitempty,max=500"`
	Price       *float64 `json:"price" validate:"required,gt=0"`
	Quantity    *int     `json:"quantity" validate:"required,gte=0"`
}

// ToModel builds a new, not yet persisted, Product from the input.
func (in ProductInput) ToModel() Product {
	var p Product
	in.ApplyTo(&p)
	return p
}

// ApplyTo overwrites every mutable field of p with the input. The identifier is left alone.
func (in ProductInput) ApplyTo(p *Product) {
	p.Name = in.Name
	p.Description = DefaultDescription
	if in.Description != nil {
		p.Description = *in.Description
	}
	if in.Price != nil {
		p.Price = *in.Price
	}
	if in.Quantity != nil {
		p.Quantity = *in.Quantity
	}
}

// ProductResponse is the serialized shape of a product.
type ProductResponse struct {
	ID          uint    `json:"id"`
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Price       float64 `json:"price"`
	Quantity    int     `json:"quantity"`
}

// NewProductResponse maps a stored row to its API payload.
func NewProductResponse(p Product) ProductResponse {
	return ProductResponse{
		ID:          p.ID,
		Name:        p.Name,
		Description: p.Description,
		Price:       p.Price,
		Quantity:    p.Quantity,
	}
}

// NewProductResponses maps a slice of rows, never returning nil so that empty lists encode as [].
func NewProductResponses(products []Product) []ProductResponse {
	out := make([]ProductResponse, 0, len(products))
	for _, p := range products {
		out = append(out, NewProductResponse(p))
	}
	return out
}

// DeleteResponse confirms the removal of a product.
type DeleteResponse struct {
	Message string `json:"mensaje"`
}

// NewDeleteResponse builds the confirmation for the removed product.
func NewDeleteResponse(p Product) DeleteResponse {
	return DeleteResponse{Message: fmt.Sprintf("Producto %s eliminado correctamente", p.Name)}
}

package models

import (
	"time"
)

// Product is a catalog entry. Prices are integer minor-currency units.
type Product struct {
	ID                 string    `json:"id" bson:"_id"`
	Name               string    `json:"name" bson:"name" validate:"required,min=2,max=200"`
	Category           string    `json:"category" bson:"category" validate:"required"`
	PriceMinor         int64     `json:"price_minor" bson:"price_minor" validate:"required,gt=0"`
	OriginalPriceMinor int64     `json:"original_price_minor,omitempty" bson:"original_price_minor,omitempty"`
	Discount           string    `json:"discount,omitempty" bson:"discount,omitempty"`
	Sizes              []string  `json:"sizes" bson:"sizes"`
	Colors             []string  `json:"colors" bson:"colors"`
	Badge              string    `json:"badge,omitempty" bson:"badge,omitempty"`
	ImageRef           string    `json:"image_ref,omitempty" bson:"image_ref,omitempty"`
	InStock            bool      `json:"in_stock" bson:"in_stock"`
	Status             string    `json:"status" bson:"status" validate:"required,oneof=active inactive deleted"`
	CreatedAt          time.Time `json:"created_at" bson:"created_at"`
	UpdatedAt          time.Time `json:"updated_at" bson:"updated_at"`
}

// ToLineItem builds a cart line for this product with the chosen variant.
func (p *Product) ToLineItem(size, color string, quantity int) LineItem {
	if quantity < 1 {
		quantity = 1
	}
	return LineItem{
		ID:                 p.ID,
		Name:               p.Name,
		PriceMinor:         p.PriceMinor,
		OriginalPriceMinor: p.OriginalPriceMinor,
		Discount:           p.Discount,
		Size:               size,
		Color:              color,
		Quantity:           quantity,
		InStock:            p.InStock,
		ImageRef:           p.ImageRef,
	}
}

func (p *Product) SetTimestamps() {
	now := time.Now()
	if p.CreatedAt.IsZero() {
		p.CreatedAt = now
	}
	p.UpdatedAt = now
}

type CreateProductRequest struct {
	ID                 string   `json:"id" binding:"required"`
	Name               string   `json:"name" binding:"required,min=2,max=200"`
	Category           string   `json:"category" binding:"required"`
	PriceMinor         int64    `json:"price_minor" binding:"required,gt=0"`
	OriginalPriceMinor int64    `json:"original_price_minor"`
	Discount           string   `json:"discount"`
	Sizes              []string `json:"sizes"`
	Colors             []string `json:"colors"`
	Badge              string   `json:"badge"`
	ImageRef           string   `json:"image_ref"`
	InStock            bool     `json:"in_stock"`
}

func (req *CreateProductRequest) ToProduct() *Product {
	product := &Product{
		ID:                 req.ID,
		Name:               req.Name,
		Category:           req.Category,
		PriceMinor:         req.PriceMinor,
		OriginalPriceMinor: req.OriginalPriceMinor,
		Discount:           req.Discount,
		Sizes:              req.Sizes,
		Colors:             req.Colors,
		Badge:              req.Badge,
		ImageRef:           req.ImageRef,
		InStock:            req.InStock,
		Status:             "active",
	}
	product.SetTimestamps()
	return product
}

package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Product is a root catalog entry. The variants and emiPlans arrays hold
// back-references to the child collections and are maintained on child
// create/delete, never derived on read.
type Product struct {
	ID             primitive.ObjectID   `json:"id" bson:"_id,omitempty"`
	Name           string               `json:"name" bson:"name"`
	Brand          string               `json:"brand" bson:"brand"`
	Category       string               `json:"category" bson:"category"`
	Description    string               `json:"description" bson:"description"`
	BasePrice      float64              `json:"basePrice" bson:"basePrice"`
	MRP            float64              `json:"mrp" bson:"mrp"`
	Images         []string             `json:"images" bson:"images"`
	Variants       []primitive.ObjectID `json:"variants" bson:"variants"`
	EmiPlans       []primitive.ObjectID `json:"emiPlans" bson:"emiPlans"`
	InStock        bool                 `json:"inStock" bson:"inStock"`
	Specifications map[string]any       `json:"specifications" bson:"specifications"`
	Slug           string               `json:"slug" bson:"slug"`
	CreatedAt      time.Time            `json:"createdAt" bson:"createdAt"`
	UpdatedAt      time.Time            `json:"updatedAt" bson:"updatedAt"`
}

// ProductDetail is a Product with its reference lists resolved into full
// child records. Response-only, never stored.
type ProductDetail struct {
	Product
	Variants []Variant `json:"variants"`
	EmiPlans []EmiPlan `json:"emiPlans"`
}

type CreateProductRequest struct {
	Name           string         `json:"name" binding:"required"`
	Brand          string         `json:"brand" binding:"required"`
	Category       string         `json:"category" binding:"required"`
	Description    string         `json:"description" binding:"required"`
	BasePrice      *float64       `json:"basePrice" binding:"required,gte=0"`
	MRP            *float64       `json:"mrp" binding:"required,gte=0"`
	Images         []string       `json:"images" binding:"required,min=1,dive,url"`
	InStock        *bool          `json:"inStock"`
	Specifications map[string]any `json:"specifications"`
	Slug           string         `json:"slug" binding:"required"`
}

// UpdateProductRequest carries the updatable fields of a product. Nil means
// "leave unchanged".
type UpdateProductRequest struct {
	Name           *string        `json:"name,omitempty" binding:"omitempty,min=1"`
	Brand          *string        `json:"brand,omitempty" binding:"omitempty,min=1"`
	Category       *string        `json:"category,omitempty" binding:"omitempty,min=1"`
	Description    *string        `json:"description,omitempty"`
	BasePrice      *float64       `json:"basePrice,omitempty" binding:"omitempty,gte=0"`
	MRP            *float64       `json:"mrp,omitempty" binding:"omitempty,gte=0"`
	Images         []string       `json:"images,omitempty" binding:"omitempty,min=1,dive,url"`
	InStock        *bool          `json:"inStock,omitempty"`
	Specifications map[string]any `json:"specifications,omitempty"`
	Slug           *string        `json:"slug,omitempty" binding:"omitempty,min=1"`
}

package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Variant is a purchasable storage/color configuration of a product.
type Variant struct {
	ID            primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	ProductID     primitive.ObjectID `json:"productId" bson:"productId"`
	Storage       string             `json:"storage" bson:"storage"`
	Color         string             `json:"color" bson:"color"`
	Price         float64            `json:"price" bson:"price"`
	MRP           float64            `json:"mrp" bson:"mrp"`
	InStock       bool               `json:"inStock" bson:"inStock"`
	StockQuantity int                `json:"stockQuantity" bson:"stockQuantity"`
	SKU           string             `json:"sku,omitempty" bson:"sku,omitempty"`
	CreatedAt     time.Time          `json:"createdAt" bson:"createdAt"`
	UpdatedAt     time.Time          `json:"updatedAt" bson:"updatedAt"`
}

type CreateVariantRequest struct {
	ProductID     string   `json:"productId" binding:"required,mongodb"`
	Storage       string   `json:"storage" binding:"required"`
	Color         string   `json:"color" binding:"required"`
	Price         *float64 `json:"price" binding:"required,gte=0"`
	MRP           *float64 `json:"mrp" binding:"required,gte=0"`
	InStock       *bool    `json:"inStock"`
	StockQuantity *int     `json:"stockQuantity" binding:"omitempty,gte=0"`
	SKU           string   `json:"sku"`
}

type UpdateVariantRequest struct {
	Storage       *string  `json:"storage,omitempty" binding:"omitempty,min=1"`
	Color         *string  `json:"color,omitempty" binding:"omitempty,min=1"`
	Price         *float64 `json:"price,omitempty" binding:"omitempty,gte=0"`
	MRP           *float64 `json:"mrp,omitempty" binding:"omitempty,gte=0"`
	InStock       *bool    `json:"inStock,omitempty"`
	StockQuantity *int     `json:"stockQuantity,omitempty" binding:"omitempty,gte=0"`
	SKU           *string  `json:"sku,omitempty" binding:"omitempty,min=1"`
}

// StockStatus is the response body of the variant stock check.
type StockStatus struct {
	InStock bool `json:"inStock"`
}

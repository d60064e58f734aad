package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// EmiPlan is an installment schedule attached to a product. Tenure is in
// months; interestRate is a percentage, 0 meaning a no-cost plan. Inactive
// plans stay stored but are hidden from every listing.
type EmiPlan struct {
	ID             primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	ProductID      primitive.ObjectID `json:"productId" bson:"productId"`
	Tenure         int                `json:"tenure" bson:"tenure"`
	MonthlyPayment float64            `json:"monthlyPayment" bson:"monthlyPayment"`
	InterestRate   float64            `json:"interestRate" bson:"interestRate"`
	ProcessingFee  float64            `json:"processingFee" bson:"processingFee"`
	DownPayment    float64            `json:"downPayment" bson:"downPayment"`
	Cashback       float64            `json:"cashback" bson:"cashback"`
	Description    string             `json:"description,omitempty" bson:"description,omitempty"`
	IsActive       bool               `json:"isActive" bson:"isActive"`
	IsRecommended  bool               `json:"isRecommended" bson:"isRecommended"`
	CreatedAt      time.Time          `json:"createdAt" bson:"createdAt"`
	UpdatedAt      time.Time          `json:"updatedAt" bson:"updatedAt"`
}

type CreateEmiPlanRequest struct {
	ProductID      string   `json:"productId" binding:"required,mongodb"`
	Tenure         *int     `json:"tenure" binding:"required,min=1"`
	MonthlyPayment *float64 `json:"monthlyPayment" binding:"required,gte=0"`
	InterestRate   *float64 `json:"interestRate" binding:"required,gte=0,lte=100"`
	ProcessingFee  *float64 `json:"processingFee" binding:"omitempty,gte=0"`
	DownPayment    *float64 `json:"downPayment" binding:"omitempty,gte=0"`
	Cashback       *float64 `json:"cashback" binding:"omitempty,gte=0"`
	Description    string   `json:"description"`
	IsActive       *bool    `json:"isActive"`
	IsRecommended  *bool    `json:"isRecommended"`
}

type UpdateEmiPlanRequest struct {
	Tenure         *int     `json:"tenure,omitempty" binding:"omitempty,min=1"`
	MonthlyPayment *float64 `json:"monthlyPayment,omitempty" binding:"omitempty,gte=0"`
	InterestRate   *float64 `json:"interestRate,omitempty" binding:"omitempty,gte=0,lte=100"`
	ProcessingFee  *float64 `json:"processingFee,omitempty" binding:"omitempty,gte=0"`
	DownPayment    *float64 `json:"downPayment,omitempty" binding:"omitempty,gte=0"`
	Cashback       *float64 `json:"cashback,omitempty" binding:"omitempty,gte=0"`
	Description    *string  `json:"description,omitempty"`
	IsActive       *bool    `json:"isActive,omitempty"`
	IsRecommended  *bool    `json:"isRecommended,omitempty"`
}

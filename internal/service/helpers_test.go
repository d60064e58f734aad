package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/AkshatJain481/1fn-backend/internal/models"
	"github.com/AkshatJain481/1fn-backend/internal/repository/memory"
)

type catalog struct {
	products *memory.ProductStore
	variants *memory.VariantStore
	plans    *memory.EmiPlanStore

	productSvc *ProductService
	variantSvc *VariantService
	planSvc    *EmiPlanService
}

func newCatalog() *catalog {
	products := memory.NewProductStore()
	variants := memory.NewVariantStore()
	plans := memory.NewEmiPlanStore()
	return &catalog{
		products:   products,
		variants:   variants,
		plans:      plans,
		productSvc: NewProductService(products, variants, plans),
		variantSvc: NewVariantService(variants, products),
		planSvc:    NewEmiPlanService(plans, products),
	}
}

func ptr[T any](v T) *T { return &v }

func (c *catalog) mustCreateProduct(t *testing.T, slug string) *models.Product {
	t.Helper()
	product, err := c.productSvc.Create(context.Background(), &models.CreateProductRequest{
		Name:        "iPhone 17 Pro",
		Brand:       "Apple",
		Category:    "Smartphones",
		Description: "Flagship with A19 Pro chip",
		BasePrice:   ptr(119999.0),
		MRP:         ptr(129999.0),
		Images:      []string{"https://cdn.example.com/iphone-17-pro.jpg"},
		Slug:        slug,
	})
	require.NoError(t, err)
	return product
}

func (c *catalog) mustCreateVariant(t *testing.T, productID string) *models.Variant {
	t.Helper()
	variant, err := c.variantSvc.Create(context.Background(), &models.CreateVariantRequest{
		ProductID: productID,
		Storage:   "256GB",
		Color:     "Silver",
		Price:     ptr(119999.0),
		MRP:       ptr(129999.0),
	})
	require.NoError(t, err)
	return variant
}

func (c *catalog) mustCreatePlan(t *testing.T, productID string, tenure int, monthly float64) *models.EmiPlan {
	t.Helper()
	plan, err := c.planSvc.Create(context.Background(), &models.CreateEmiPlanRequest{
		ProductID:      productID,
		Tenure:         ptr(tenure),
		MonthlyPayment: ptr(monthly),
		InterestRate:   ptr(0.0),
	})
	require.NoError(t, err)
	return plan
}

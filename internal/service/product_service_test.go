package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/AkshatJain481/1fn-backend/internal/apperrors"
	"github.com/AkshatJain481/1fn-backend/internal/models"
)

func TestProductCreate(t *testing.T) {
	ctx := context.Background()

	t.Run("normalizes slug and category", func(t *testing.T) {
		c := newCatalog()
		product, err := c.productSvc.Create(ctx, &models.CreateProductRequest{
			Name:        "Galaxy S26 Ultra",
			Brand:       "Samsung",
			Category:    "  Smartphones ",
			Description: "Flagship with 200MP camera",
			BasePrice:   ptr(109999.0),
			MRP:         ptr(119999.0),
			Images:      []string{"https://cdn.example.com/s26-ultra.jpg"},
			Slug:        " Galaxy-S26-Ultra ",
		})
		require.NoError(t, err)
		require.Equal(t, "galaxy-s26-ultra", product.Slug)
		require.Equal(t, "smartphones", product.Category)
	})

	t.Run("applies defaults", func(t *testing.T) {
		c := newCatalog()
		product := c.mustCreateProduct(t, "iphone-17-pro")
		require.True(t, product.InStock)
		require.NotNil(t, product.Specifications)
		require.Empty(t, product.Variants)
		require.Empty(t, product.EmiPlans)
		require.False(t, product.CreatedAt.IsZero())
	})

	t.Run("duplicate slug conflicts", func(t *testing.T) {
		c := newCatalog()
		c.mustCreateProduct(t, "iphone-17-pro")
		_, err := c.productSvc.Create(ctx, &models.CreateProductRequest{
			Name:        "iPhone 17 Pro (again)",
			Brand:       "Apple",
			Category:    "smartphones",
			Description: "Same slug",
			BasePrice:   ptr(119999.0),
			MRP:         ptr(129999.0),
			Images:      []string{"https://cdn.example.com/dup.jpg"},
			Slug:        "IPHONE-17-PRO",
		})
		require.True(t, apperrors.IsConflict(err))
	})
}

func TestProductReads(t *testing.T) {
	ctx := context.Background()

	t.Run("get populates children", func(t *testing.T) {
		c := newCatalog()
		product := c.mustCreateProduct(t, "iphone-17-pro")
		variant := c.mustCreateVariant(t, product.ID.Hex())
		plan := c.mustCreatePlan(t, product.ID.Hex(), 12, 10000)

		detail, err := c.productSvc.Get(ctx, product.ID)
		require.NoError(t, err)
		require.Len(t, detail.Variants, 1)
		require.Equal(t, variant.ID, detail.Variants[0].ID)
		require.Len(t, detail.EmiPlans, 1)
		require.Equal(t, plan.ID, detail.EmiPlans[0].ID)
	})

	t.Run("get by slug", func(t *testing.T) {
		c := newCatalog()
		product := c.mustCreateProduct(t, "iphone-17-pro")
		detail, err := c.productSvc.GetBySlug(ctx, "iphone-17-pro")
		require.NoError(t, err)
		require.Equal(t, product.ID, detail.ID)
	})

	t.Run("list by category is case insensitive", func(t *testing.T) {
		c := newCatalog()
		c.mustCreateProduct(t, "iphone-17-pro")
		details, err := c.productSvc.ListByCategory(ctx, "Smartphones")
		require.NoError(t, err)
		require.Len(t, details, 1)
	})

	t.Run("search matches name and description", func(t *testing.T) {
		c := newCatalog()
		c.mustCreateProduct(t, "iphone-17-pro")
		details, err := c.productSvc.Search(ctx, "iphone")
		require.NoError(t, err)
		require.Len(t, details, 1)

		details, err = c.productSvc.Search(ctx, "A19 Pro")
		require.NoError(t, err)
		require.Len(t, details, 1)

		details, err = c.productSvc.Search(ctx, "pixel")
		require.NoError(t, err)
		require.Empty(t, details)
	})

	t.Run("unknown id is not found", func(t *testing.T) {
		c := newCatalog()
		_, err := c.productSvc.Get(ctx, primitive.NewObjectID())
		require.True(t, apperrors.IsNotFound(err))
	})
}

func TestProductUpdate(t *testing.T) {
	ctx := context.Background()

	t.Run("partial update keeps other fields", func(t *testing.T) {
		c := newCatalog()
		product := c.mustCreateProduct(t, "iphone-17-pro")

		detail, err := c.productSvc.Update(ctx, product.ID, &models.UpdateProductRequest{
			BasePrice: ptr(99999.0),
		})
		require.NoError(t, err)
		require.Equal(t, 99999.0, detail.BasePrice)
		require.Equal(t, product.Name, detail.Name)
		require.Equal(t, product.Slug, detail.Slug)
	})

	t.Run("normalizes slug and category", func(t *testing.T) {
		c := newCatalog()
		product := c.mustCreateProduct(t, "iphone-17-pro")

		detail, err := c.productSvc.Update(ctx, product.ID, &models.UpdateProductRequest{
			Slug:     ptr(" iPhone-17-Pro-Max "),
			Category: ptr("Tablets"),
		})
		require.NoError(t, err)
		require.Equal(t, "iphone-17-pro-max", detail.Slug)
		require.Equal(t, "tablets", detail.Category)
	})

	t.Run("slug collision conflicts", func(t *testing.T) {
		c := newCatalog()
		c.mustCreateProduct(t, "iphone-17-pro")
		other := c.mustCreateProduct(t, "iphone-17")

		_, err := c.productSvc.Update(ctx, other.ID, &models.UpdateProductRequest{
			Slug: ptr("iphone-17-pro"),
		})
		require.True(t, apperrors.IsConflict(err))
	})

	t.Run("unknown id is not found", func(t *testing.T) {
		c := newCatalog()
		_, err := c.productSvc.Update(ctx, primitive.NewObjectID(), &models.UpdateProductRequest{
			Name: ptr("renamed"),
		})
		require.True(t, apperrors.IsNotFound(err))
	})
}

func TestProductDeleteCascades(t *testing.T) {
	ctx := context.Background()
	c := newCatalog()

	product := c.mustCreateProduct(t, "iphone-17-pro")
	keep := c.mustCreateProduct(t, "iphone-17")

	c.mustCreateVariant(t, product.ID.Hex())
	c.mustCreateVariant(t, product.ID.Hex())
	c.mustCreatePlan(t, product.ID.Hex(), 12, 10000)
	keptVariant := c.mustCreateVariant(t, keep.ID.Hex())
	keptPlan := c.mustCreatePlan(t, keep.ID.Hex(), 6, 20000)

	require.NoError(t, c.productSvc.Delete(ctx, product.ID))

	_, err := c.productSvc.Get(ctx, product.ID)
	require.True(t, apperrors.IsNotFound(err))

	variants, err := c.variantSvc.ListByProduct(ctx, product.ID)
	require.NoError(t, err)
	require.Empty(t, variants)

	plans, err := c.planSvc.ListByProduct(ctx, product.ID)
	require.NoError(t, err)
	require.Empty(t, plans)

	// The sibling product's children survive the cascade.
	variants, err = c.variantSvc.ListByProduct(ctx, keep.ID)
	require.NoError(t, err)
	require.Len(t, variants, 1)
	require.Equal(t, keptVariant.ID, variants[0].ID)

	plans, err = c.planSvc.ListByProduct(ctx, keep.ID)
	require.NoError(t, err)
	require.Len(t, plans, 1)
	require.Equal(t, keptPlan.ID, plans[0].ID)
}

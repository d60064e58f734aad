package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/AkshatJain481/1fn-backend/internal/apperrors"
	"github.com/AkshatJain481/1fn-backend/internal/models"
)

func TestVariantCreate(t *testing.T) {
	ctx := context.Background()

	t.Run("appends id to owning product exactly once", func(t *testing.T) {
		c := newCatalog()
		product := c.mustCreateProduct(t, "iphone-17-pro")
		variant := c.mustCreateVariant(t, product.ID.Hex())

		stored, err := c.products.FindByID(ctx, product.ID)
		require.NoError(t, err)
		require.Equal(t, []primitive.ObjectID{variant.ID}, stored.Variants)
		require.Empty(t, stored.EmiPlans)
	})

	t.Run("uppercases sku and applies defaults", func(t *testing.T) {
		c := newCatalog()
		product := c.mustCreateProduct(t, "iphone-17-pro")
		variant, err := c.variantSvc.Create(ctx, &models.CreateVariantRequest{
			ProductID: product.ID.Hex(),
			Storage:   " 512GB ",
			Color:     "Desert Titanium",
			Price:     ptr(139999.0),
			MRP:       ptr(149999.0),
			SKU:       " ip17p-512-dt ",
		})
		require.NoError(t, err)
		require.Equal(t, "IP17P-512-DT", variant.SKU)
		require.Equal(t, "512GB", variant.Storage)
		require.True(t, variant.InStock)
		require.Zero(t, variant.StockQuantity)
	})

	t.Run("duplicate sku conflicts", func(t *testing.T) {
		c := newCatalog()
		product := c.mustCreateProduct(t, "iphone-17-pro")
		req := &models.CreateVariantRequest{
			ProductID: product.ID.Hex(),
			Storage:   "256GB",
			Color:     "Silver",
			Price:     ptr(119999.0),
			MRP:       ptr(129999.0),
			SKU:       "IP17P-256-SL",
		}
		_, err := c.variantSvc.Create(ctx, req)
		require.NoError(t, err)
		_, err = c.variantSvc.Create(ctx, req)
		require.True(t, apperrors.IsConflict(err))
	})

	t.Run("missing owning product still creates", func(t *testing.T) {
		c := newCatalog()
		variant := c.mustCreateVariant(t, primitive.NewObjectID().Hex())
		stored, err := c.variants.FindByID(ctx, variant.ID)
		require.NoError(t, err)
		require.Equal(t, variant.ID, stored.ID)
	})
}

func TestVariantDelete(t *testing.T) {
	ctx := context.Background()

	t.Run("pulls id from owning product", func(t *testing.T) {
		c := newCatalog()
		product := c.mustCreateProduct(t, "iphone-17-pro")
		doomed := c.mustCreateVariant(t, product.ID.Hex())
		kept := c.mustCreateVariant(t, product.ID.Hex())

		require.NoError(t, c.variantSvc.Delete(ctx, doomed.ID))

		_, err := c.variantSvc.Get(ctx, doomed.ID)
		require.True(t, apperrors.IsNotFound(err))

		stored, err := c.products.FindByID(ctx, product.ID)
		require.NoError(t, err)
		require.Equal(t, []primitive.ObjectID{kept.ID}, stored.Variants)
	})

	t.Run("unknown id is not found", func(t *testing.T) {
		c := newCatalog()
		err := c.variantSvc.Delete(ctx, primitive.NewObjectID())
		require.True(t, apperrors.IsNotFound(err))
	})
}

func TestVariantUpdate(t *testing.T) {
	ctx := context.Background()
	c := newCatalog()
	product := c.mustCreateProduct(t, "iphone-17-pro")
	variant := c.mustCreateVariant(t, product.ID.Hex())

	updated, err := c.variantSvc.Update(ctx, variant.ID, &models.UpdateVariantRequest{
		Price: ptr(99999.0),
		SKU:   ptr(" ip17p-256-sl "),
	})
	require.NoError(t, err)
	require.Equal(t, 99999.0, updated.Price)
	require.Equal(t, "IP17P-256-SL", updated.SKU)
	require.Equal(t, variant.Storage, updated.Storage)
}

func TestVariantCheckStock(t *testing.T) {
	ctx := context.Background()
	c := newCatalog()
	product := c.mustCreateProduct(t, "iphone-17-pro")
	variant := c.mustCreateVariant(t, product.ID.Hex())

	t.Run("in stock flag with zero quantity is out of stock", func(t *testing.T) {
		inStock, err := c.variantSvc.CheckStock(ctx, variant.ID)
		require.NoError(t, err)
		require.False(t, inStock)
	})

	t.Run("quantity available is in stock", func(t *testing.T) {
		_, err := c.variantSvc.Update(ctx, variant.ID, &models.UpdateVariantRequest{StockQuantity: ptr(5)})
		require.NoError(t, err)

		inStock, err := c.variantSvc.CheckStock(ctx, variant.ID)
		require.NoError(t, err)
		require.True(t, inStock)
	})

	t.Run("flag off overrides quantity", func(t *testing.T) {
		_, err := c.variantSvc.Update(ctx, variant.ID, &models.UpdateVariantRequest{InStock: ptr(false)})
		require.NoError(t, err)

		inStock, err := c.variantSvc.CheckStock(ctx, variant.ID)
		require.NoError(t, err)
		require.False(t, inStock)
	})
}

func TestVariantFilters(t *testing.T) {
	ctx := context.Background()
	c := newCatalog()
	product := c.mustCreateProduct(t, "iphone-17-pro")

	silver, err := c.variantSvc.Create(ctx, &models.CreateVariantRequest{
		ProductID: product.ID.Hex(),
		Storage:   "256GB",
		Color:     "Silver",
		Price:     ptr(119999.0),
		MRP:       ptr(129999.0),
	})
	require.NoError(t, err)

	black, err := c.variantSvc.Create(ctx, &models.CreateVariantRequest{
		ProductID: product.ID.Hex(),
		Storage:   "512GB",
		Color:     "Black",
		Price:     ptr(139999.0),
		MRP:       ptr(149999.0),
	})
	require.NoError(t, err)

	byColor, err := c.variantSvc.ListByColor(ctx, "Silver")
	require.NoError(t, err)
	require.Len(t, byColor, 1)
	require.Equal(t, silver.ID, byColor[0].ID)

	byStorage, err := c.variantSvc.ListByStorage(ctx, "512GB")
	require.NoError(t, err)
	require.Len(t, byStorage, 1)
	require.Equal(t, black.ID, byStorage[0].ID)
}

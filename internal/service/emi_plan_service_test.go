package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/AkshatJain481/1fn-backend/internal/apperrors"
	"github.com/AkshatJain481/1fn-backend/internal/models"
)

func TestEmiPlanCreate(t *testing.T) {
	ctx := context.Background()

	t.Run("appends id to owning product", func(t *testing.T) {
		c := newCatalog()
		product := c.mustCreateProduct(t, "iphone-17-pro")
		plan := c.mustCreatePlan(t, product.ID.Hex(), 12, 10000)

		stored, err := c.products.FindByID(ctx, product.ID)
		require.NoError(t, err)
		require.Equal(t, []primitive.ObjectID{plan.ID}, stored.EmiPlans)
		require.Empty(t, stored.Variants)
	})

	t.Run("defaults to active and not recommended", func(t *testing.T) {
		c := newCatalog()
		product := c.mustCreateProduct(t, "iphone-17-pro")
		plan := c.mustCreatePlan(t, product.ID.Hex(), 12, 10000)
		require.True(t, plan.IsActive)
		require.False(t, plan.IsRecommended)
		require.Zero(t, plan.ProcessingFee)
		require.Zero(t, plan.DownPayment)
	})

	t.Run("zero interest rate is accepted", func(t *testing.T) {
		c := newCatalog()
		product := c.mustCreateProduct(t, "iphone-17-pro")
		plan, err := c.planSvc.Create(ctx, &models.CreateEmiPlanRequest{
			ProductID:      product.ID.Hex(),
			Tenure:         ptr(6),
			MonthlyPayment: ptr(20000.0),
			InterestRate:   ptr(0.0),
		})
		require.NoError(t, err)
		require.Zero(t, plan.InterestRate)
	})
}

func TestEmiPlanCheapest(t *testing.T) {
	ctx := context.Background()

	t.Run("picks the lowest monthly payment", func(t *testing.T) {
		c := newCatalog()
		product := c.mustCreateProduct(t, "iphone-17-pro")
		c.mustCreatePlan(t, product.ID.Hex(), 12, 5000)
		want := c.mustCreatePlan(t, product.ID.Hex(), 24, 3000)
		c.mustCreatePlan(t, product.ID.Hex(), 18, 4000)

		cheapest, err := c.planSvc.Cheapest(ctx, product.ID)
		require.NoError(t, err)
		require.Equal(t, want.ID, cheapest.ID)
		require.Equal(t, 3000.0, cheapest.MonthlyPayment)
	})

	t.Run("ignores inactive plans", func(t *testing.T) {
		c := newCatalog()
		product := c.mustCreateProduct(t, "iphone-17-pro")
		inactive := c.mustCreatePlan(t, product.ID.Hex(), 36, 1000)
		_, err := c.planSvc.Update(ctx, inactive.ID, &models.UpdateEmiPlanRequest{IsActive: ptr(false)})
		require.NoError(t, err)
		want := c.mustCreatePlan(t, product.ID.Hex(), 12, 5000)

		cheapest, err := c.planSvc.Cheapest(ctx, product.ID)
		require.NoError(t, err)
		require.Equal(t, want.ID, cheapest.ID)
	})

	t.Run("no active plans is not found", func(t *testing.T) {
		c := newCatalog()
		product := c.mustCreateProduct(t, "iphone-17-pro")
		_, err := c.planSvc.Cheapest(ctx, product.ID)
		require.True(t, apperrors.IsNotFound(err))
	})
}

func TestEmiPlanSortedByPayment(t *testing.T) {
	ctx := context.Background()
	c := newCatalog()
	product := c.mustCreateProduct(t, "iphone-17-pro")
	c.mustCreatePlan(t, product.ID.Hex(), 12, 5000)
	c.mustCreatePlan(t, product.ID.Hex(), 24, 3000)
	c.mustCreatePlan(t, product.ID.Hex(), 18, 4000)

	t.Run("ascending", func(t *testing.T) {
		plans, err := c.planSvc.SortedByPayment(ctx, product.ID, true)
		require.NoError(t, err)
		require.Len(t, plans, 3)
		require.Equal(t, []float64{3000, 4000, 5000}, payments(plans))
	})

	t.Run("descending", func(t *testing.T) {
		plans, err := c.planSvc.SortedByPayment(ctx, product.ID, false)
		require.NoError(t, err)
		require.Equal(t, []float64{5000, 4000, 3000}, payments(plans))
	})
}

func TestEmiPlanListings(t *testing.T) {
	ctx := context.Background()
	c := newCatalog()
	product := c.mustCreateProduct(t, "iphone-17-pro")
	other := c.mustCreateProduct(t, "iphone-17")

	twelve := c.mustCreatePlan(t, product.ID.Hex(), 12, 10000)
	six := c.mustCreatePlan(t, product.ID.Hex(), 6, 20000)
	c.mustCreatePlan(t, other.ID.Hex(), 12, 9000)

	_, err := c.planSvc.Update(ctx, twelve.ID, &models.UpdateEmiPlanRequest{IsRecommended: ptr(true)})
	require.NoError(t, err)

	t.Run("by product sorted by tenure", func(t *testing.T) {
		plans, err := c.planSvc.ListByProduct(ctx, product.ID)
		require.NoError(t, err)
		require.Len(t, plans, 2)
		require.Equal(t, six.ID, plans[0].ID)
		require.Equal(t, twelve.ID, plans[1].ID)
	})

	t.Run("recommended", func(t *testing.T) {
		plans, err := c.planSvc.ListRecommended(ctx, product.ID)
		require.NoError(t, err)
		require.Len(t, plans, 1)
		require.Equal(t, twelve.ID, plans[0].ID)
	})

	t.Run("by tenure spans products", func(t *testing.T) {
		plans, err := c.planSvc.ListByTenure(ctx, 12)
		require.NoError(t, err)
		require.Len(t, plans, 2)
	})

	t.Run("zero interest", func(t *testing.T) {
		plans, err := c.planSvc.ListZeroInterest(ctx)
		require.NoError(t, err)
		require.Len(t, plans, 3)
	})

	t.Run("inactive plans are hidden", func(t *testing.T) {
		_, err := c.planSvc.Update(ctx, six.ID, &models.UpdateEmiPlanRequest{IsActive: ptr(false)})
		require.NoError(t, err)

		plans, err := c.planSvc.ListByProduct(ctx, product.ID)
		require.NoError(t, err)
		require.Len(t, plans, 1)
		require.Equal(t, twelve.ID, plans[0].ID)
	})
}

func TestEmiPlanDelete(t *testing.T) {
	ctx := context.Background()

	t.Run("pulls id from owning product", func(t *testing.T) {
		c := newCatalog()
		product := c.mustCreateProduct(t, "iphone-17-pro")
		doomed := c.mustCreatePlan(t, product.ID.Hex(), 12, 10000)
		kept := c.mustCreatePlan(t, product.ID.Hex(), 6, 20000)

		require.NoError(t, c.planSvc.Delete(ctx, doomed.ID))

		_, err := c.planSvc.Get(ctx, doomed.ID)
		require.True(t, apperrors.IsNotFound(err))

		stored, err := c.products.FindByID(ctx, product.ID)
		require.NoError(t, err)
		require.Equal(t, []primitive.ObjectID{kept.ID}, stored.EmiPlans)
	})

	t.Run("unknown id is not found", func(t *testing.T) {
		c := newCatalog()
		err := c.planSvc.Delete(ctx, primitive.NewObjectID())
		require.True(t, apperrors.IsNotFound(err))
	})
}

func payments(plans []models.EmiPlan) []float64 {
	out := make([]float64, 0, len(plans))
	for _, p := range plans {
		out = append(out, p.MonthlyPayment)
	}
	return out
}

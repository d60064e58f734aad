package service

import (
	"context"
	"sort"
	"strings"
	"time"

	"github.com/rs/zerolog/log"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/AkshatJain481/1fn-backend/internal/apperrors"
	"github.com/AkshatJain481/1fn-backend/internal/models"
)

// EmiPlanService is the catalog access layer for EMI plans. Create and
// delete maintain the owning product's emiPlans reference list; the derived
// queries (cheapest, sorted by payment) work over the product's active plans.
type EmiPlanService struct {
	plans    EmiPlanStore
	products ProductStore
}

func NewEmiPlanService(plans EmiPlanStore, products ProductStore) *EmiPlanService {
	return &EmiPlanService{plans: plans, products: products}
}

func (s *EmiPlanService) ListActive(ctx context.Context) ([]models.EmiPlan, error) {
	return s.plans.FindActive(ctx)
}

func (s *EmiPlanService) Get(ctx context.Context, id primitive.ObjectID) (*models.EmiPlan, error) {
	return s.plans.FindByID(ctx, id)
}

func (s *EmiPlanService) ListByProduct(ctx context.Context, productID primitive.ObjectID) ([]models.EmiPlan, error) {
	return s.plans.FindByProduct(ctx, productID)
}

func (s *EmiPlanService) ListRecommended(ctx context.Context, productID primitive.ObjectID) ([]models.EmiPlan, error) {
	return s.plans.FindRecommended(ctx, productID)
}

func (s *EmiPlanService) ListByTenure(ctx context.Context, tenure int) ([]models.EmiPlan, error) {
	return s.plans.FindByTenure(ctx, tenure)
}

func (s *EmiPlanService) ListZeroInterest(ctx context.Context) ([]models.EmiPlan, error) {
	return s.plans.FindZeroInterest(ctx)
}

// Cheapest returns the product's active plan with the lowest monthly
// payment. Ties keep the store's returned order (only a strictly smaller
// payment replaces the current pick). Not-found when the product has no
// active plans.
func (s *EmiPlanService) Cheapest(ctx context.Context, productID primitive.ObjectID) (*models.EmiPlan, error) {
	plans, err := s.plans.FindByProduct(ctx, productID)
	if err != nil {
		return nil, err
	}
	if len(plans) == 0 {
		return nil, apperrors.NotFound("EMI plan for product", productID.Hex())
	}

	cheapest := plans[0]
	for _, plan := range plans[1:] {
		if plan.MonthlyPayment < cheapest.MonthlyPayment {
			cheapest = plan
		}
	}
	return &cheapest, nil
}

// SortedByPayment returns the product's active plans ordered by monthly
// payment. The sort is stable, so equal payments keep the store's order.
func (s *EmiPlanService) SortedByPayment(ctx context.Context, productID primitive.ObjectID, ascending bool) ([]models.EmiPlan, error) {
	plans, err := s.plans.FindByProduct(ctx, productID)
	if err != nil {
		return nil, err
	}

	sort.SliceStable(plans, func(i, j int) bool {
		if ascending {
			return plans[i].MonthlyPayment < plans[j].MonthlyPayment
		}
		return plans[i].MonthlyPayment > plans[j].MonthlyPayment
	})
	return plans, nil
}

// Create persists the plan, then appends its id to the owning product's list
// with an atomic append. Same failure window as variant creation.
func (s *EmiPlanService) Create(ctx context.Context, req *models.CreateEmiPlanRequest) (*models.EmiPlan, error) {
	productID, err := primitive.ObjectIDFromHex(req.ProductID)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	plan := &models.EmiPlan{
		ID:             primitive.NewObjectID(),
		ProductID:      productID,
		Tenure:         *req.Tenure,
		MonthlyPayment: *req.MonthlyPayment,
		InterestRate:   *req.InterestRate,
		Description:    strings.TrimSpace(req.Description),
		IsActive:       true,
		IsRecommended:  false,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
	if req.ProcessingFee != nil {
		plan.ProcessingFee = *req.ProcessingFee
	}
	if req.DownPayment != nil {
		plan.DownPayment = *req.DownPayment
	}
	if req.Cashback != nil {
		plan.Cashback = *req.Cashback
	}
	if req.IsActive != nil {
		plan.IsActive = *req.IsActive
	}
	if req.IsRecommended != nil {
		plan.IsRecommended = *req.IsRecommended
	}

	if err := s.plans.Insert(ctx, plan); err != nil {
		return nil, err
	}

	matched, err := s.products.AppendEmiPlan(ctx, productID, plan.ID)
	if err != nil {
		reportGap("emi_plan", "create_append", productID, plan.ID, err)
		return nil, err
	}
	if !matched {
		log.Warn().
			Str("productId", productID.Hex()).
			Str("planId", plan.ID.Hex()).
			Msg("EMI plan created for a product that was not found")
	}
	return plan, nil
}

func (s *EmiPlanService) Update(ctx context.Context, id primitive.ObjectID, req *models.UpdateEmiPlanRequest) (*models.EmiPlan, error) {
	if req.Description != nil {
		trimmed := strings.TrimSpace(*req.Description)
		req.Description = &trimmed
	}
	return s.plans.Update(ctx, id, req)
}

// Delete pulls the plan's id from the owning product first, then removes the
// record; a failed removal after the pull is reported as a consistency gap.
func (s *EmiPlanService) Delete(ctx context.Context, id primitive.ObjectID) error {
	plan, err := s.plans.FindByID(ctx, id)
	if err != nil {
		return err
	}

	matched, err := s.products.RemoveEmiPlan(ctx, plan.ProductID, id)
	if err != nil {
		return err
	}
	if !matched {
		log.Warn().
			Str("productId", plan.ProductID.Hex()).
			Str("planId", id.Hex()).
			Msg("owning product not found while deleting EMI plan")
	}

	if err := s.plans.Delete(ctx, id); err != nil {
		reportGap("emi_plan", "delete_after_pull", plan.ProductID, id, err)
		return err
	}
	return nil
}

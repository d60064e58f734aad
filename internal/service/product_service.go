package service

import (
	"context"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/AkshatJain481/1fn-backend/internal/models"
)

// ProductService is the catalog access layer for products. Reads resolve the
// variants/emiPlans reference lists into full records with an explicit batch
// fetch; delete cascades to both child collections.
type ProductService struct {
	products ProductStore
	variants VariantStore
	plans    EmiPlanStore
}

func NewProductService(products ProductStore, variants VariantStore, plans EmiPlanStore) *ProductService {
	return &ProductService{products: products, variants: variants, plans: plans}
}

func (s *ProductService) List(ctx context.Context) ([]models.ProductDetail, error) {
	products, err := s.products.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	return s.populateAll(ctx, products)
}

func (s *ProductService) Get(ctx context.Context, id primitive.ObjectID) (*models.ProductDetail, error) {
	product, err := s.products.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return s.populate(ctx, product)
}

func (s *ProductService) GetBySlug(ctx context.Context, slug string) (*models.ProductDetail, error) {
	product, err := s.products.FindBySlug(ctx, slug)
	if err != nil {
		return nil, err
	}
	return s.populate(ctx, product)
}

func (s *ProductService) ListByCategory(ctx context.Context, category string) ([]models.ProductDetail, error) {
	products, err := s.products.FindByCategory(ctx, strings.ToLower(category))
	if err != nil {
		return nil, err
	}
	return s.populateAll(ctx, products)
}

func (s *ProductService) Search(ctx context.Context, query string) ([]models.ProductDetail, error) {
	products, err := s.products.Search(ctx, query)
	if err != nil {
		return nil, err
	}
	return s.populateAll(ctx, products)
}

func (s *ProductService) Create(ctx context.Context, req *models.CreateProductRequest) (*models.Product, error) {
	now := time.Now()
	product := &models.Product{
		ID:             primitive.NewObjectID(),
		Name:           strings.TrimSpace(req.Name),
		Brand:          strings.TrimSpace(req.Brand),
		Category:       strings.ToLower(strings.TrimSpace(req.Category)),
		Description:    req.Description,
		BasePrice:      *req.BasePrice,
		MRP:            *req.MRP,
		Images:         req.Images,
		Variants:       []primitive.ObjectID{},
		EmiPlans:       []primitive.ObjectID{},
		InStock:        true,
		Specifications: map[string]any{},
		Slug:           strings.ToLower(strings.TrimSpace(req.Slug)),
		CreatedAt:      now,
		UpdatedAt:      now,
	}
	if req.InStock != nil {
		product.InStock = *req.InStock
	}
	if req.Specifications != nil {
		product.Specifications = req.Specifications
	}

	if err := s.products.Insert(ctx, product); err != nil {
		return nil, err
	}
	return product, nil
}

func (s *ProductService) Update(ctx context.Context, id primitive.ObjectID, req *models.UpdateProductRequest) (*models.ProductDetail, error) {
	if req.Category != nil {
		lowered := strings.ToLower(strings.TrimSpace(*req.Category))
		req.Category = &lowered
	}
	if req.Slug != nil {
		lowered := strings.ToLower(strings.TrimSpace(*req.Slug))
		req.Slug = &lowered
	}

	product, err := s.products.Update(ctx, id, req)
	if err != nil {
		return nil, err
	}
	return s.populate(ctx, product)
}

// Delete removes the product first, then bulk-deletes its variants and
// plans. The steps are separate round trips; a failed cascade step leaves
// orphaned children, which is reported as a consistency gap and surfaced.
func (s *ProductService) Delete(ctx context.Context, id primitive.ObjectID) error {
	if err := s.products.Delete(ctx, id); err != nil {
		return err
	}
	if err := s.variants.DeleteByProduct(ctx, id); err != nil {
		reportGap("variant", "cascade_delete", id, primitive.NilObjectID, err)
		return err
	}
	if err := s.plans.DeleteByProduct(ctx, id); err != nil {
		reportGap("emi_plan", "cascade_delete", id, primitive.NilObjectID, err)
		return err
	}
	return nil
}

func (s *ProductService) populate(ctx context.Context, product *models.Product) (*models.ProductDetail, error) {
	details, err := s.populateAll(ctx, []models.Product{*product})
	if err != nil {
		return nil, err
	}
	return &details[0], nil
}

// populateAll resolves the reference lists of every product with one batch
// fetch per child collection, preserving each list's stored order.
func (s *ProductService) populateAll(ctx context.Context, products []models.Product) ([]models.ProductDetail, error) {
	variantIDs := make([]primitive.ObjectID, 0)
	planIDs := make([]primitive.ObjectID, 0)
	for _, p := range products {
		variantIDs = append(variantIDs, p.Variants...)
		planIDs = append(planIDs, p.EmiPlans...)
	}

	variants, err := s.variants.FindByIDs(ctx, variantIDs)
	if err != nil {
		return nil, err
	}
	plans, err := s.plans.FindByIDs(ctx, planIDs)
	if err != nil {
		return nil, err
	}

	variantByID := make(map[primitive.ObjectID]models.Variant, len(variants))
	for _, v := range variants {
		variantByID[v.ID] = v
	}
	planByID := make(map[primitive.ObjectID]models.EmiPlan, len(plans))
	for _, p := range plans {
		planByID[p.ID] = p
	}

	details := make([]models.ProductDetail, 0, len(products))
	for _, p := range products {
		detail := models.ProductDetail{
			Product:  p,
			Variants: make([]models.Variant, 0, len(p.Variants)),
			EmiPlans: make([]models.EmiPlan, 0, len(p.EmiPlans)),
		}
		// A referenced child may be missing if a delete partially completed;
		// the reference is skipped rather than failing the read.
		for _, id := range p.Variants {
			if v, ok := variantByID[id]; ok {
				detail.Variants = append(detail.Variants, v)
			}
		}
		for _, id := range p.EmiPlans {
			if plan, ok := planByID[id]; ok {
				detail.EmiPlans = append(detail.EmiPlans, plan)
			}
		}
		details = append(details, detail)
	}
	return details, nil
}

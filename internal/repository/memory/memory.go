// Package memory holds in-memory implementations of the catalog store
// interfaces. They mirror the Mongo repositories' semantics — insertion
// order, unique slug, unique sparse sku, active-only plan listings — and
// back the service and handler tests without a running database.
package memory

import (
	"context"
	"sort"
	"strings"
	"sync"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/AkshatJain481/1fn-backend/internal/apperrors"
	"github.com/AkshatJain481/1fn-backend/internal/models"
)

type ProductStore struct {
	mu       sync.RWMutex
	products []models.Product
}

func NewProductStore() *ProductStore {
	return &ProductStore{products: []models.Product{}}
}

func (s *ProductStore) Insert(_ context.Context, product *models.Product) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, p := range s.products {
		if p.Slug == product.Slug {
			return apperrors.Conflict("product", "slug", product.Slug)
		}
	}
	s.products = append(s.products, *product)
	return nil
}

func (s *ProductStore) FindAll(_ context.Context) ([]models.Product, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]models.Product{}, s.products...), nil
}

func (s *ProductStore) FindByID(_ context.Context, id primitive.ObjectID) (*models.Product, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, p := range s.products {
		if p.ID == id {
			found := p
			return &found, nil
		}
	}
	return nil, apperrors.NotFound("product", id.Hex())
}

func (s *ProductStore) FindBySlug(_ context.Context, slug string) (*models.Product, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, p := range s.products {
		if p.Slug == slug {
			found := p
			return &found, nil
		}
	}
	return nil, apperrors.NotFound("product", slug)
}

func (s *ProductStore) FindByCategory(_ context.Context, category string) ([]models.Product, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	matches := []models.Product{}
	for _, p := range s.products {
		if p.Category == category {
			matches = append(matches, p)
		}
	}
	return matches, nil
}

// Search approximates the full-text index with a substring match on name and
// description.
func (s *ProductStore) Search(_ context.Context, query string) ([]models.Product, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	matches := []models.Product{}
	for _, p := range s.products {
		if containsFold(p.Name, query) || containsFold(p.Description, query) {
			matches = append(matches, p)
		}
	}
	return matches, nil
}

func (s *ProductStore) Update(ctx context.Context, id primitive.ObjectID, upd *models.UpdateProductRequest) (*models.Product, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.products {
		if s.products[i].ID != id {
			continue
		}
		if upd.Slug != nil && *upd.Slug != s.products[i].Slug {
			for _, other := range s.products {
				if other.Slug == *upd.Slug {
					return nil, apperrors.Conflict("product", "slug", *upd.Slug)
				}
			}
			s.products[i].Slug = *upd.Slug
		}
		if upd.Name != nil {
			s.products[i].Name = *upd.Name
		}
		if upd.Brand != nil {
			s.products[i].Brand = *upd.Brand
		}
		if upd.Category != nil {
			s.products[i].Category = *upd.Category
		}
		if upd.Description != nil {
			s.products[i].Description = *upd.Description
		}
		if upd.BasePrice != nil {
			s.products[i].BasePrice = *upd.BasePrice
		}
		if upd.MRP != nil {
			s.products[i].MRP = *upd.MRP
		}
		if upd.Images != nil {
			s.products[i].Images = upd.Images
		}
		if upd.InStock != nil {
			s.products[i].InStock = *upd.InStock
		}
		if upd.Specifications != nil {
			s.products[i].Specifications = upd.Specifications
		}
		s.products[i].UpdatedAt = time.Now()
		updated := s.products[i]
		return &updated, nil
	}
	return nil, apperrors.NotFound("product", id.Hex())
}

func (s *ProductStore) Delete(_ context.Context, id primitive.ObjectID) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.products {
		if s.products[i].ID == id {
			s.products = append(s.products[:i], s.products[i+1:]...)
			return nil
		}
	}
	return apperrors.NotFound("product", id.Hex())
}

func (s *ProductStore) AppendVariant(_ context.Context, productID, variantID primitive.ObjectID) (bool, error) {
	return s.push(productID, variantID, false)
}

func (s *ProductStore) RemoveVariant(_ context.Context, productID, variantID primitive.ObjectID) (bool, error) {
	return s.pull(productID, variantID, false)
}

func (s *ProductStore) AppendEmiPlan(_ context.Context, productID, planID primitive.ObjectID) (bool, error) {
	return s.push(productID, planID, true)
}

func (s *ProductStore) RemoveEmiPlan(_ context.Context, productID, planID primitive.ObjectID) (bool, error) {
	return s.pull(productID, planID, true)
}

func (s *ProductStore) push(productID, childID primitive.ObjectID, plans bool) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.products {
		if s.products[i].ID != productID {
			continue
		}
		if plans {
			s.products[i].EmiPlans = append(s.products[i].EmiPlans, childID)
		} else {
			s.products[i].Variants = append(s.products[i].Variants, childID)
		}
		s.products[i].UpdatedAt = time.Now()
		return true, nil
	}
	return false, nil
}

func (s *ProductStore) pull(productID, childID primitive.ObjectID, plans bool) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.products {
		if s.products[i].ID != productID {
			continue
		}
		target := s.products[i].Variants
		if plans {
			target = s.products[i].EmiPlans
		}
		kept := target[:0]
		for _, id := range target {
			if id != childID {
				kept = append(kept, id)
			}
		}
		if plans {
			s.products[i].EmiPlans = kept
		} else {
			s.products[i].Variants = kept
		}
		s.products[i].UpdatedAt = time.Now()
		return true, nil
	}
	return false, nil
}

type VariantStore struct {
	mu       sync.RWMutex
	variants []models.Variant
}

func NewVariantStore() *VariantStore {
	return &VariantStore{variants: []models.Variant{}}
}

func (s *VariantStore) Insert(_ context.Context, variant *models.Variant) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if variant.SKU != "" {
		for _, v := range s.variants {
			if v.SKU == variant.SKU {
				return apperrors.Conflict("variant", "sku", variant.SKU)
			}
		}
	}
	s.variants = append(s.variants, *variant)
	return nil
}

func (s *VariantStore) FindAll(_ context.Context) ([]models.Variant, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]models.Variant{}, s.variants...), nil
}

func (s *VariantStore) FindByID(_ context.Context, id primitive.ObjectID) (*models.Variant, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, v := range s.variants {
		if v.ID == id {
			found := v
			return &found, nil
		}
	}
	return nil, apperrors.NotFound("variant", id.Hex())
}

func (s *VariantStore) FindByIDs(_ context.Context, ids []primitive.ObjectID) ([]models.Variant, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	wanted := make(map[primitive.ObjectID]bool, len(ids))
	for _, id := range ids {
		wanted[id] = true
	}
	matches := []models.Variant{}
	for _, v := range s.variants {
		if wanted[v.ID] {
			matches = append(matches, v)
		}
	}
	return matches, nil
}

func (s *VariantStore) FindByProduct(_ context.Context, productID primitive.ObjectID) ([]models.Variant, error) {
	return s.filter(func(v models.Variant) bool { return v.ProductID == productID })
}

func (s *VariantStore) FindByColor(_ context.Context, color string) ([]models.Variant, error) {
	return s.filter(func(v models.Variant) bool { return v.Color == color })
}

func (s *VariantStore) FindByStorage(_ context.Context, storage string) ([]models.Variant, error) {
	return s.filter(func(v models.Variant) bool { return v.Storage == storage })
}

func (s *VariantStore) Update(_ context.Context, id primitive.ObjectID, upd *models.UpdateVariantRequest) (*models.Variant, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.variants {
		if s.variants[i].ID != id {
			continue
		}
		if upd.SKU != nil && *upd.SKU != s.variants[i].SKU {
			for _, other := range s.variants {
				if other.SKU == *upd.SKU {
					return nil, apperrors.Conflict("variant", "sku", *upd.SKU)
				}
			}
			s.variants[i].SKU = *upd.SKU
		}
		if upd.Storage != nil {
			s.variants[i].Storage = *upd.Storage
		}
		if upd.Color != nil {
			s.variants[i].Color = *upd.Color
		}
		if upd.Price != nil {
			s.variants[i].Price = *upd.Price
		}
		if upd.MRP != nil {
			s.variants[i].MRP = *upd.MRP
		}
		if upd.InStock != nil {
			s.variants[i].InStock = *upd.InStock
		}
		if upd.StockQuantity != nil {
			s.variants[i].StockQuantity = *upd.StockQuantity
		}
		s.variants[i].UpdatedAt = time.Now()
		updated := s.variants[i]
		return &updated, nil
	}
	return nil, apperrors.NotFound("variant", id.Hex())
}

func (s *VariantStore) Delete(_ context.Context, id primitive.ObjectID) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.variants {
		if s.variants[i].ID == id {
			s.variants = append(s.variants[:i], s.variants[i+1:]...)
			return nil
		}
	}
	return apperrors.NotFound("variant", id.Hex())
}

func (s *VariantStore) DeleteByProduct(_ context.Context, productID primitive.ObjectID) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	kept := s.variants[:0]
	for _, v := range s.variants {
		if v.ProductID != productID {
			kept = append(kept, v)
		}
	}
	s.variants = kept
	return nil
}

func (s *VariantStore) filter(keep func(models.Variant) bool) ([]models.Variant, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	matches := []models.Variant{}
	for _, v := range s.variants {
		if keep(v) {
			matches = append(matches, v)
		}
	}
	return matches, nil
}

type EmiPlanStore struct {
	mu    sync.RWMutex
	plans []models.EmiPlan
}

func NewEmiPlanStore() *EmiPlanStore {
	return &EmiPlanStore{plans: []models.EmiPlan{}}
}

func (s *EmiPlanStore) Insert(_ context.Context, plan *models.EmiPlan) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.plans = append(s.plans, *plan)
	return nil
}

func (s *EmiPlanStore) FindActive(_ context.Context) ([]models.EmiPlan, error) {
	return s.filterSorted(func(p models.EmiPlan) bool { return p.IsActive })
}

func (s *EmiPlanStore) FindByID(_ context.Context, id primitive.ObjectID) (*models.EmiPlan, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, p := range s.plans {
		if p.ID == id {
			found := p
			return &found, nil
		}
	}
	return nil, apperrors.NotFound("EMI plan", id.Hex())
}

func (s *EmiPlanStore) FindByIDs(_ context.Context, ids []primitive.ObjectID) ([]models.EmiPlan, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	wanted := make(map[primitive.ObjectID]bool, len(ids))
	for _, id := range ids {
		wanted[id] = true
	}
	matches := []models.EmiPlan{}
	for _, p := range s.plans {
		if wanted[p.ID] {
			matches = append(matches, p)
		}
	}
	return matches, nil
}

func (s *EmiPlanStore) FindByProduct(_ context.Context, productID primitive.ObjectID) ([]models.EmiPlan, error) {
	return s.filterSorted(func(p models.EmiPlan) bool { return p.IsActive && p.ProductID == productID })
}

func (s *EmiPlanStore) FindRecommended(_ context.Context, productID primitive.ObjectID) ([]models.EmiPlan, error) {
	return s.filterSorted(func(p models.EmiPlan) bool {
		return p.IsActive && p.IsRecommended && p.ProductID == productID
	})
}

func (s *EmiPlanStore) FindByTenure(_ context.Context, tenure int) ([]models.EmiPlan, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	matches := []models.EmiPlan{}
	for _, p := range s.plans {
		if p.IsActive && p.Tenure == tenure {
			matches = append(matches, p)
		}
	}
	return matches, nil
}

func (s *EmiPlanStore) FindZeroInterest(_ context.Context) ([]models.EmiPlan, error) {
	return s.filterSorted(func(p models.EmiPlan) bool { return p.IsActive && p.InterestRate == 0 })
}

func (s *EmiPlanStore) Update(_ context.Context, id primitive.ObjectID, upd *models.UpdateEmiPlanRequest) (*models.EmiPlan, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.plans {
		if s.plans[i].ID != id {
			continue
		}
		if upd.Tenure != nil {
			s.plans[i].Tenure = *upd.Tenure
		}
		if upd.MonthlyPayment != nil {
			s.plans[i].MonthlyPayment = *upd.MonthlyPayment
		}
		if upd.InterestRate != nil {
			s.plans[i].InterestRate = *upd.InterestRate
		}
		if upd.ProcessingFee != nil {
			s.plans[i].ProcessingFee = *upd.ProcessingFee
		}
		if upd.DownPayment != nil {
			s.plans[i].DownPayment = *upd.DownPayment
		}
		if upd.Cashback != nil {
			s.plans[i].Cashback = *upd.Cashback
		}
		if upd.Description != nil {
			s.plans[i].Description = *upd.Description
		}
		if upd.IsActive != nil {
			s.plans[i].IsActive = *upd.IsActive
		}
		if upd.IsRecommended != nil {
			s.plans[i].IsRecommended = *upd.IsRecommended
		}
		s.plans[i].UpdatedAt = time.Now()
		updated := s.plans[i]
		return &updated, nil
	}
	return nil, apperrors.NotFound("EMI plan", id.Hex())
}

func (s *EmiPlanStore) Delete(_ context.Context, id primitive.ObjectID) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.plans {
		if s.plans[i].ID == id {
			s.plans = append(s.plans[:i], s.plans[i+1:]...)
			return nil
		}
	}
	return apperrors.NotFound("EMI plan", id.Hex())
}

func (s *EmiPlanStore) DeleteByProduct(_ context.Context, productID primitive.ObjectID) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	kept := s.plans[:0]
	for _, p := range s.plans {
		if p.ProductID != productID {
			kept = append(kept, p)
		}
	}
	s.plans = kept
	return nil
}

// filterSorted returns matching plans ordered by tenure ascending, the same
// order the Mongo repository's listings use. The sort is stable so ties keep
// insertion order.
func (s *EmiPlanStore) filterSorted(keep func(models.EmiPlan) bool) ([]models.EmiPlan, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	matches := []models.EmiPlan{}
	for _, p := range s.plans {
		if keep(p) {
			matches = append(matches, p)
		}
	}
	sort.SliceStable(matches, func(i, j int) bool { return matches[i].Tenure < matches[j].Tenure })
	return matches, nil
}

func containsFold(haystack, needle string) bool {
	return strings.Contains(strings.ToLower(haystack), strings.ToLower(needle))
}

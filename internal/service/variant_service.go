package service

import (
	"context"
	"strings"
	"time"

	"github.com/rs/zerolog/log"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/AkshatJain481/1fn-backend/internal/models"
)

// VariantService is the catalog access layer for variants. Create and delete
// also maintain the owning product's variants reference list.
type VariantService struct {
	variants VariantStore
	products ProductStore
}

func NewVariantService(variants VariantStore, products ProductStore) *VariantService {
	return &VariantService{variants: variants, products: products}
}

func (s *VariantService) List(ctx context.Context) ([]models.Variant, error) {
	return s.variants.FindAll(ctx)
}

func (s *VariantService) Get(ctx context.Context, id primitive.ObjectID) (*models.Variant, error) {
	return s.variants.FindByID(ctx, id)
}

func (s *VariantService) ListByProduct(ctx context.Context, productID primitive.ObjectID) ([]models.Variant, error) {
	return s.variants.FindByProduct(ctx, productID)
}

func (s *VariantService) ListByColor(ctx context.Context, color string) ([]models.Variant, error) {
	return s.variants.FindByColor(ctx, color)
}

func (s *VariantService) ListByStorage(ctx context.Context, storage string) ([]models.Variant, error) {
	return s.variants.FindByStorage(ctx, storage)
}

// CheckStock reports whether the variant can actually be bought: flagged in
// stock and holding at least one unit.
func (s *VariantService) CheckStock(ctx context.Context, id primitive.ObjectID) (bool, error) {
	variant, err := s.variants.FindByID(ctx, id)
	if err != nil {
		return false, err
	}
	return variant.InStock && variant.StockQuantity > 0, nil
}

// Create persists the variant, then appends its id to the owning product's
// list with an atomic append. The two steps are separate round trips: if the
// append fails the variant stays stored but unreferenced, which is reported
// as a consistency gap and the error surfaced.
func (s *VariantService) Create(ctx context.Context, req *models.CreateVariantRequest) (*models.Variant, error) {
	productID, err := primitive.ObjectIDFromHex(req.ProductID)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	variant := &models.Variant{
		ID:            primitive.NewObjectID(),
		ProductID:     productID,
		Storage:       strings.TrimSpace(req.Storage),
		Color:         strings.TrimSpace(req.Color),
		Price:         *req.Price,
		MRP:           *req.MRP,
		InStock:       true,
		StockQuantity: 0,
		SKU:           strings.ToUpper(strings.TrimSpace(req.SKU)),
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	if req.InStock != nil {
		variant.InStock = *req.InStock
	}
	if req.StockQuantity != nil {
		variant.StockQuantity = *req.StockQuantity
	}

	if err := s.variants.Insert(ctx, variant); err != nil {
		return nil, err
	}

	matched, err := s.products.AppendVariant(ctx, productID, variant.ID)
	if err != nil {
		reportGap("variant", "create_append", productID, variant.ID, err)
		return nil, err
	}
	if !matched {
		// The store performed no referential check, so a variant can point at
		// a product that does not exist. The create still succeeds.
		log.Warn().
			Str("productId", productID.Hex()).
			Str("variantId", variant.ID.Hex()).
			Msg("variant created for a product that was not found")
	}
	return variant, nil
}

func (s *VariantService) Update(ctx context.Context, id primitive.ObjectID, req *models.UpdateVariantRequest) (*models.Variant, error) {
	if req.Storage != nil {
		trimmed := strings.TrimSpace(*req.Storage)
		req.Storage = &trimmed
	}
	if req.Color != nil {
		trimmed := strings.TrimSpace(*req.Color)
		req.Color = &trimmed
	}
	if req.SKU != nil {
		upper := strings.ToUpper(strings.TrimSpace(*req.SKU))
		req.SKU = &upper
	}
	return s.variants.Update(ctx, id, req)
}

// Delete pulls the variant's id from the owning product first, then removes
// the record. If the removal fails after the pull, the product no longer
// references a variant that still exists; reported as a consistency gap.
func (s *VariantService) Delete(ctx context.Context, id primitive.ObjectID) error {
	variant, err := s.variants.FindByID(ctx, id)
	if err != nil {
		return err
	}

	matched, err := s.products.RemoveVariant(ctx, variant.ProductID, id)
	if err != nil {
		return err
	}
	if !matched {
		log.Warn().
			Str("productId", variant.ProductID.Hex()).
			Str("variantId", id.Hex()).
			Msg("owning product not found while deleting variant")
	}

	if err := s.variants.Delete(ctx, id); err != nil {
		reportGap("variant", "delete_after_pull", variant.ProductID, id, err)
		return err
	}
	return nil
}

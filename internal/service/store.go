package service

import (
	"context"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/AkshatJain481/1fn-backend/internal/models"
)

// ProductStore is the persistence adapter for the products collection.
// Append/Remove mutate the back-reference arrays with the store's atomic
// array primitives; the boolean result reports whether the owning product
// was matched at all.
type ProductStore interface {
	Insert(ctx context.Context, product *models.Product) error
	FindAll(ctx context.Context) ([]models.Product, error)
	FindByID(ctx context.Context, id primitive.ObjectID) (*models.Product, error)
	FindBySlug(ctx context.Context, slug string) (*models.Product, error)
	FindByCategory(ctx context.Context, category string) ([]models.Product, error)
	Search(ctx context.Context, query string) ([]models.Product, error)
	Update(ctx context.Context, id primitive.ObjectID, upd *models.UpdateProductRequest) (*models.Product, error)
	Delete(ctx context.Context, id primitive.ObjectID) error

	AppendVariant(ctx context.Context, productID, variantID primitive.ObjectID) (bool, error)
	RemoveVariant(ctx context.Context, productID, variantID primitive.ObjectID) (bool, error)
	AppendEmiPlan(ctx context.Context, productID, planID primitive.ObjectID) (bool, error)
	RemoveEmiPlan(ctx context.Context, productID, planID primitive.ObjectID) (bool, error)
}

// VariantStore is the persistence adapter for the variants collection.
type VariantStore interface {
	Insert(ctx context.Context, variant *models.Variant) error
	FindAll(ctx context.Context) ([]models.Variant, error)
	FindByID(ctx context.Context, id primitive.ObjectID) (*models.Variant, error)
	FindByIDs(ctx context.Context, ids []primitive.ObjectID) ([]models.Variant, error)
	FindByProduct(ctx context.Context, productID primitive.ObjectID) ([]models.Variant, error)
	FindByColor(ctx context.Context, color string) ([]models.Variant, error)
	FindByStorage(ctx context.Context, storage string) ([]models.Variant, error)
	Update(ctx context.Context, id primitive.ObjectID, upd *models.UpdateVariantRequest) (*models.Variant, error)
	Delete(ctx context.Context, id primitive.ObjectID) error
	DeleteByProduct(ctx context.Context, productID primitive.ObjectID) error
}

// EmiPlanStore is the persistence adapter for the emiplans collection.
// Listing methods other than FindByID/FindByIDs only return active plans.
type EmiPlanStore interface {
	Insert(ctx context.Context, plan *models.EmiPlan) error
	FindActive(ctx context.Context) ([]models.EmiPlan, error)
	FindByID(ctx context.Context, id primitive.ObjectID) (*models.EmiPlan, error)
	FindByIDs(ctx context.Context, ids []primitive.ObjectID) ([]models.EmiPlan, error)
	FindByProduct(ctx context.Context, productID primitive.ObjectID) ([]models.EmiPlan, error)
	FindRecommended(ctx context.Context, productID primitive.ObjectID) ([]models.EmiPlan, error)
	FindByTenure(ctx context.Context, tenure int) ([]models.EmiPlan, error)
	FindZeroInterest(ctx context.Context) ([]models.EmiPlan, error)
	Update(ctx context.Context, id primitive.ObjectID, upd *models.UpdateEmiPlanRequest) (*models.EmiPlan, error)
	Delete(ctx context.Context, id primitive.ObjectID) error
	DeleteByProduct(ctx context.Context, productID primitive.ObjectID) error
}

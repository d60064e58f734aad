package repository

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/AkshatJain481/1fn-backend/internal/apperrors"
	"github.com/AkshatJain481/1fn-backend/internal/models"
)

// findAfterUpdate makes FindOneAndUpdate return the document as it looks
// after the update was applied.
func findAfterUpdate() *options.FindOneAndUpdateOptions {
	return options.FindOneAndUpdate().SetReturnDocument(options.After)
}

type VariantRepository struct {
	collection *mongo.Collection
}

func NewVariantRepository(collection *mongo.Collection) *VariantRepository {
	return &VariantRepository{collection: collection}
}

// Insert stores a new variant. Duplicate SKUs surface as a conflict; the sku
// index is sparse, so variants without one never collide.
func (r *VariantRepository) Insert(ctx context.Context, variant *models.Variant) error {
	ctx, cancel := context.WithTimeout(ctx, writeTimeout)
	defer cancel()

	if _, err := r.collection.InsertOne(ctx, variant); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return apperrors.Conflict("variant", "sku", variant.SKU)
		}
		return err
	}
	return nil
}

func (r *VariantRepository) FindAll(ctx context.Context) ([]models.Variant, error) {
	return r.findMany(ctx, bson.M{})
}

func (r *VariantRepository) FindByID(ctx context.Context, id primitive.ObjectID) (*models.Variant, error) {
	ctx, cancel := context.WithTimeout(ctx, writeTimeout)
	defer cancel()

	var variant models.Variant
	if err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&variant); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, apperrors.NotFound("variant", id.Hex())
		}
		return nil, err
	}
	return &variant, nil
}

func (r *VariantRepository) FindByIDs(ctx context.Context, ids []primitive.ObjectID) ([]models.Variant, error) {
	if len(ids) == 0 {
		return []models.Variant{}, nil
	}
	return r.findMany(ctx, bson.M{"_id": bson.M{"$in": ids}})
}

func (r *VariantRepository) FindByProduct(ctx context.Context, productID primitive.ObjectID) ([]models.Variant, error) {
	return r.findMany(ctx, bson.M{"productId": productID})
}

func (r *VariantRepository) FindByColor(ctx context.Context, color string) ([]models.Variant, error) {
	return r.findMany(ctx, bson.M{"color": color})
}

func (r *VariantRepository) FindByStorage(ctx context.Context, storage string) ([]models.Variant, error) {
	return r.findMany(ctx, bson.M{"storage": storage})
}

// Update applies the non-nil fields of upd and returns the updated document.
func (r *VariantRepository) Update(ctx context.Context, id primitive.ObjectID, upd *models.UpdateVariantRequest) (*models.Variant, error) {
	ctx, cancel := context.WithTimeout(ctx, writeTimeout)
	defer cancel()

	set := bson.M{"updatedAt": time.Now()}
	if upd.Storage != nil {
		set["storage"] = *upd.Storage
	}
	if upd.Color != nil {
		set["color"] = *upd.Color
	}
	if upd.Price != nil {
		set["price"] = *upd.Price
	}
	if upd.MRP != nil {
		set["mrp"] = *upd.MRP
	}
	if upd.InStock != nil {
		set["inStock"] = *upd.InStock
	}
	if upd.StockQuantity != nil {
		set["stockQuantity"] = *upd.StockQuantity
	}
	if upd.SKU != nil {
		set["sku"] = *upd.SKU
	}

	var variant models.Variant
	err := r.collection.FindOneAndUpdate(
		ctx,
		bson.M{"_id": id},
		bson.M{"$set": set},
		findAfterUpdate(),
	).Decode(&variant)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, apperrors.NotFound("variant", id.Hex())
		}
		if mongo.IsDuplicateKeyError(err) {
			sku := ""
			if upd.SKU != nil {
				sku = *upd.SKU
			}
			return nil, apperrors.Conflict("variant", "sku", sku)
		}
		return nil, err
	}
	return &variant, nil
}

func (r *VariantRepository) Delete(ctx context.Context, id primitive.ObjectID) error {
	ctx, cancel := context.WithTimeout(ctx, writeTimeout)
	defer cancel()

	result, err := r.collection.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return err
	}
	if result.DeletedCount == 0 {
		return apperrors.NotFound("variant", id.Hex())
	}
	return nil
}

// DeleteByProduct removes every variant of a product. Used by the product
// delete cascade; deleting nothing is not an error.
func (r *VariantRepository) DeleteByProduct(ctx context.Context, productID primitive.ObjectID) error {
	ctx, cancel := context.WithTimeout(ctx, writeTimeout)
	defer cancel()

	_, err := r.collection.DeleteMany(ctx, bson.M{"productId": productID})
	return err
}

func (r *VariantRepository) findMany(ctx context.Context, filter bson.M) ([]models.Variant, error) {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	cursor, err := r.collection.Find(ctx, filter)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	variants := make([]models.Variant, 0)
	if err := cursor.All(ctx, &variants); err != nil {
		return nil, err
	}
	return variants, nil
}

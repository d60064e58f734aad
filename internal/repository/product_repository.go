package repository

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/AkshatJain481/1fn-backend/internal/apperrors"
	"github.com/AkshatJain481/1fn-backend/internal/models"
)

const (
	writeTimeout = 5 * time.Second
	queryTimeout = 10 * time.Second
)

type ProductRepository struct {
	collection *mongo.Collection
}

func NewProductRepository(collection *mongo.Collection) *ProductRepository {
	return &ProductRepository{collection: collection}
}

// Insert stores a new product. Duplicate slugs surface as a conflict.
func (r *ProductRepository) Insert(ctx context.Context, product *models.Product) error {
	ctx, cancel := context.WithTimeout(ctx, writeTimeout)
	defer cancel()

	if _, err := r.collection.InsertOne(ctx, product); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return apperrors.Conflict("product", "slug", product.Slug)
		}
		return err
	}
	return nil
}

func (r *ProductRepository) FindAll(ctx context.Context) ([]models.Product, error) {
	return r.findMany(ctx, bson.M{})
}

func (r *ProductRepository) FindByID(ctx context.Context, id primitive.ObjectID) (*models.Product, error) {
	return r.findOne(ctx, bson.M{"_id": id}, id.Hex())
}

func (r *ProductRepository) FindBySlug(ctx context.Context, slug string) (*models.Product, error) {
	return r.findOne(ctx, bson.M{"slug": slug}, slug)
}

func (r *ProductRepository) FindByCategory(ctx context.Context, category string) ([]models.Product, error) {
	return r.findMany(ctx, bson.M{"category": category})
}

// Search runs a full-text query against the name/description text index.
// Tokenization and ranking are whatever MongoDB's $text gives us.
func (r *ProductRepository) Search(ctx context.Context, query string) ([]models.Product, error) {
	return r.findMany(ctx, bson.M{"$text": bson.M{"$search": query}})
}

// Update applies the non-nil fields of upd and returns the updated document.
func (r *ProductRepository) Update(ctx context.Context, id primitive.ObjectID, upd *models.UpdateProductRequest) (*models.Product, error) {
	ctx, cancel := context.WithTimeout(ctx, writeTimeout)
	defer cancel()

	set := bson.M{"updatedAt": time.Now()}
	if upd.Name != nil {
		set["name"] = *upd.Name
	}
	if upd.Brand != nil {
		set["brand"] = *upd.Brand
	}
	if upd.Category != nil {
		set["category"] = *upd.Category
	}
	if upd.Description != nil {
		set["description"] = *upd.Description
	}
	if upd.BasePrice != nil {
		set["basePrice"] = *upd.BasePrice
	}
	if upd.MRP != nil {
		set["mrp"] = *upd.MRP
	}
	if upd.Images != nil {
		set["images"] = upd.Images
	}
	if upd.InStock != nil {
		set["inStock"] = *upd.InStock
	}
	if upd.Specifications != nil {
		set["specifications"] = upd.Specifications
	}
	if upd.Slug != nil {
		set["slug"] = *upd.Slug
	}

	var product models.Product
	err := r.collection.FindOneAndUpdate(
		ctx,
		bson.M{"_id": id},
		bson.M{"$set": set},
		findAfterUpdate(),
	).Decode(&product)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, apperrors.NotFound("product", id.Hex())
		}
		if mongo.IsDuplicateKeyError(err) {
			slug := ""
			if upd.Slug != nil {
				slug = *upd.Slug
			}
			return nil, apperrors.Conflict("product", "slug", slug)
		}
		return nil, err
	}
	return &product, nil
}

func (r *ProductRepository) Delete(ctx context.Context, id primitive.ObjectID) error {
	ctx, cancel := context.WithTimeout(ctx, writeTimeout)
	defer cancel()

	result, err := r.collection.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return err
	}
	if result.DeletedCount == 0 {
		return apperrors.NotFound("product", id.Hex())
	}
	return nil
}

// AppendVariant pushes a variant id onto the product's reference list using
// the store's atomic $push, never read-modify-write.
func (r *ProductRepository) AppendVariant(ctx context.Context, productID, variantID primitive.ObjectID) (bool, error) {
	return r.pushRef(ctx, productID, "variants", variantID)
}

func (r *ProductRepository) RemoveVariant(ctx context.Context, productID, variantID primitive.ObjectID) (bool, error) {
	return r.pullRef(ctx, productID, "variants", variantID)
}

func (r *ProductRepository) AppendEmiPlan(ctx context.Context, productID, planID primitive.ObjectID) (bool, error) {
	return r.pushRef(ctx, productID, "emiPlans", planID)
}

func (r *ProductRepository) RemoveEmiPlan(ctx context.Context, productID, planID primitive.ObjectID) (bool, error) {
	return r.pullRef(ctx, productID, "emiPlans", planID)
}

func (r *ProductRepository) pushRef(ctx context.Context, productID primitive.ObjectID, field string, childID primitive.ObjectID) (bool, error) {
	ctx, cancel := context.WithTimeout(ctx, writeTimeout)
	defer cancel()

	result, err := r.collection.UpdateOne(
		ctx,
		bson.M{"_id": productID},
		bson.M{"$push": bson.M{field: childID}, "$set": bson.M{"updatedAt": time.Now()}},
	)
	if err != nil {
		return false, err
	}
	return result.MatchedCount > 0, nil
}

func (r *ProductRepository) pullRef(ctx context.Context, productID primitive.ObjectID, field string, childID primitive.ObjectID) (bool, error) {
	ctx, cancel := context.WithTimeout(ctx, writeTimeout)
	defer cancel()

	result, err := r.collection.UpdateOne(
		ctx,
		bson.M{"_id": productID},
		bson.M{"$pull": bson.M{field: childID}, "$set": bson.M{"updatedAt": time.Now()}},
	)
	if err != nil {
		return false, err
	}
	return result.MatchedCount > 0, nil
}

func (r *ProductRepository) findOne(ctx context.Context, filter bson.M, ident string) (*models.Product, error) {
	ctx, cancel := context.WithTimeout(ctx, writeTimeout)
	defer cancel()

	var product models.Product
	if err := r.collection.FindOne(ctx, filter).Decode(&product); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, apperrors.NotFound("product", ident)
		}
		return nil, err
	}
	return &product, nil
}

func (r *ProductRepository) findMany(ctx context.Context, filter bson.M) ([]models.Product, error) {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	cursor, err := r.collection.Find(ctx, filter)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	products := make([]models.Product, 0)
	if err := cursor.All(ctx, &products); err != nil {
		return nil, err
	}
	return products, nil
}

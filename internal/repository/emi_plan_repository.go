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

type EmiPlanRepository struct {
	collection *mongo.Collection
}

func NewEmiPlanRepository(collection *mongo.Collection) *EmiPlanRepository {
	return &EmiPlanRepository{collection: collection}
}

func (r *EmiPlanRepository) Insert(ctx context.Context, plan *models.EmiPlan) error {
	ctx, cancel := context.WithTimeout(ctx, writeTimeout)
	defer cancel()

	_, err := r.collection.InsertOne(ctx, plan)
	return err
}

// FindActive lists every active plan, shortest tenure first.
func (r *EmiPlanRepository) FindActive(ctx context.Context) ([]models.EmiPlan, error) {
	return r.findMany(ctx, bson.M{"isActive": true}, sortByTenure())
}

func (r *EmiPlanRepository) FindByID(ctx context.Context, id primitive.ObjectID) (*models.EmiPlan, error) {
	ctx, cancel := context.WithTimeout(ctx, writeTimeout)
	defer cancel()

	var plan models.EmiPlan
	if err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&plan); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, apperrors.NotFound("EMI plan", id.Hex())
		}
		return nil, err
	}
	return &plan, nil
}

func (r *EmiPlanRepository) FindByIDs(ctx context.Context, ids []primitive.ObjectID) ([]models.EmiPlan, error) {
	if len(ids) == 0 {
		return []models.EmiPlan{}, nil
	}
	return r.findMany(ctx, bson.M{"_id": bson.M{"$in": ids}}, nil)
}

func (r *EmiPlanRepository) FindByProduct(ctx context.Context, productID primitive.ObjectID) ([]models.EmiPlan, error) {
	return r.findMany(ctx, bson.M{"productId": productID, "isActive": true}, sortByTenure())
}

func (r *EmiPlanRepository) FindRecommended(ctx context.Context, productID primitive.ObjectID) ([]models.EmiPlan, error) {
	return r.findMany(ctx, bson.M{"productId": productID, "isRecommended": true, "isActive": true}, sortByTenure())
}

func (r *EmiPlanRepository) FindByTenure(ctx context.Context, tenure int) ([]models.EmiPlan, error) {
	return r.findMany(ctx, bson.M{"tenure": tenure, "isActive": true}, nil)
}

func (r *EmiPlanRepository) FindZeroInterest(ctx context.Context) ([]models.EmiPlan, error) {
	return r.findMany(ctx, bson.M{"interestRate": 0, "isActive": true}, sortByTenure())
}

// Update applies the non-nil fields of upd and returns the updated document.
func (r *EmiPlanRepository) Update(ctx context.Context, id primitive.ObjectID, upd *models.UpdateEmiPlanRequest) (*models.EmiPlan, error) {
	ctx, cancel := context.WithTimeout(ctx, writeTimeout)
	defer cancel()

	set := bson.M{"updatedAt": time.Now()}
	if upd.Tenure != nil {
		set["tenure"] = *upd.Tenure
	}
	if upd.MonthlyPayment != nil {
		set["monthlyPayment"] = *upd.MonthlyPayment
	}
	if upd.InterestRate != nil {
		set["interestRate"] = *upd.InterestRate
	}
	if upd.ProcessingFee != nil {
		set["processingFee"] = *upd.ProcessingFee
	}
	if upd.DownPayment != nil {
		set["downPayment"] = *upd.DownPayment
	}
	if upd.Cashback != nil {
		set["cashback"] = *upd.Cashback
	}
	if upd.Description != nil {
		set["description"] = *upd.Description
	}
	if upd.IsActive != nil {
		set["isActive"] = *upd.IsActive
	}
	if upd.IsRecommended != nil {
		set["isRecommended"] = *upd.IsRecommended
	}

	var plan models.EmiPlan
	err := r.collection.FindOneAndUpdate(
		ctx,
		bson.M{"_id": id},
		bson.M{"$set": set},
		findAfterUpdate(),
	).Decode(&plan)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, apperrors.NotFound("EMI plan", id.Hex())
		}
		return nil, err
	}
	return &plan, nil
}

func (r *EmiPlanRepository) Delete(ctx context.Context, id primitive.ObjectID) error {
	ctx, cancel := context.WithTimeout(ctx, writeTimeout)
	defer cancel()

	result, err := r.collection.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return err
	}
	if result.DeletedCount == 0 {
		return apperrors.NotFound("EMI plan", id.Hex())
	}
	return nil
}

// DeleteByProduct removes every plan of a product. Used by the product
// delete cascade; deleting nothing is not an error.
func (r *EmiPlanRepository) DeleteByProduct(ctx context.Context, productID primitive.ObjectID) error {
	ctx, cancel := context.WithTimeout(ctx, writeTimeout)
	defer cancel()

	_, err := r.collection.DeleteMany(ctx, bson.M{"productId": productID})
	return err
}

func sortByTenure() *options.FindOptions {
	return options.Find().SetSort(bson.D{{Key: "tenure", Value: 1}})
}

func (r *EmiPlanRepository) findMany(ctx context.Context, filter bson.M, opts *options.FindOptions) ([]models.EmiPlan, error) {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	var cursor *mongo.Cursor
	var err error
	if opts != nil {
		cursor, err = r.collection.Find(ctx, filter, opts)
	} else {
		cursor, err = r.collection.Find(ctx, filter)
	}
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	plans := make([]models.EmiPlan, 0)
	if err := cursor.All(ctx, &plans); err != nil {
		return nil, err
	}
	return plans, nil
}

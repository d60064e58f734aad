package database

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

const connectTimeout = 10 * time.Second

// Connect opens the process-wide Mongo client and verifies the connection
// with a ping.
func Connect(uri string) (*mongo.Client, error) {
	ctx, cancel := context.WithTimeout(context.Background(), connectTimeout)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, err
	}

	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		return nil, err
	}

	return client, nil
}

// EnsureIndexes creates the secondary indexes the catalog queries rely on:
// the unique slug and the full-text index on products, the unique sparse sku
// plus lookup indexes on variants, and the filter/sort indexes on emiplans.
func EnsureIndexes(ctx context.Context, db *mongo.Database) error {
	ctx, cancel := context.WithTimeout(ctx, connectTimeout)
	defer cancel()

	products := []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "slug", Value: 1}},
			Options: options.Index().SetUnique(true),
		},
		{
			Keys: bson.D{{Key: "category", Value: 1}},
		},
		{
			Keys: bson.D{{Key: "name", Value: "text"}, {Key: "description", Value: "text"}},
		},
	}
	if _, err := db.Collection("products").Indexes().CreateMany(ctx, products); err != nil {
		return err
	}

	variants := []mongo.IndexModel{
		{
			Keys: bson.D{{Key: "productId", Value: 1}},
		},
		{
			Keys:    bson.D{{Key: "sku", Value: 1}},
			Options: options.Index().SetUnique(true).SetSparse(true),
		},
		{
			Keys: bson.D{{Key: "storage", Value: 1}, {Key: "color", Value: 1}},
		},
	}
	if _, err := db.Collection("variants").Indexes().CreateMany(ctx, variants); err != nil {
		return err
	}

	emiPlans := []mongo.IndexModel{
		{
			Keys: bson.D{{Key: "productId", Value: 1}},
		},
		{
			Keys: bson.D{{Key: "tenure", Value: 1}},
		},
		{
			Keys: bson.D{{Key: "isActive", Value: 1}},
		},
		{
			Keys: bson.D{{Key: "productId", Value: 1}, {Key: "tenure", Value: 1}},
		},
	}
	if _, err := db.Collection("emiplans").Indexes().CreateMany(ctx, emiPlans); err != nil {
		return err
	}

	return nil
}

package repository

import (
	"context"

	"seafood-exporter-api/internal/model"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

type productMongoRepo struct {
	coll *mongo.Collection
}

func categoryFilter(category string) bson.M {
	if category == "" {
		return bson.M{}
	}
	return bson.M{"category": category}
}

// FindByCategory decodes straight into model.Product, which has no _id
// field, so the storage key is dropped by the decoder.
func (r *productMongoRepo) FindByCategory(ctx context.Context, category string) ([]model.Product, error) {
	cursor, err := r.coll.Find(ctx, categoryFilter(category))
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	products := []model.Product{}
	if err := cursor.All(ctx, &products); err != nil {
		return nil, err
	}
	return products, nil
}

func (r *productMongoRepo) Create(ctx context.Context, product *model.Product) error {
	_, err := r.coll.InsertOne(ctx, product)
	return err
}

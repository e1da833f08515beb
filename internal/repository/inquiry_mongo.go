package repository

import (
	"context"
	"fmt"
	"time"

	"seafood-exporter-api/internal/model"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type inquiryDocument struct {
	ID              primitive.ObjectID `bson:"_id,omitempty"`
	Name            string             `bson:"name"`
	Company         *string            `bson:"company,omitempty"`
	Email           string             `bson:"email"`
	Phone           *string            `bson:"phone,omitempty"`
	Country         *string            `bson:"country,omitempty"`
	ProductInterest *string            `bson:"product_interest,omitempty"`
	Message         string             `bson:"message"`
	QuantityMT      *float64           `bson:"quantity_mt,omitempty"`
	Incoterm        *string            `bson:"incoterm,omitempty"`
	CreatedAt       time.Time          `bson:"created_at"`
	UpdatedAt       time.Time          `bson:"updated_at"`
}

func newInquiryDocument(in *model.Inquiry) inquiryDocument {
	return inquiryDocument{
		Name:            in.Name,
		Company:         in.Company,
		Email:           in.Email,
		Phone:           in.Phone,
		Country:         in.Country,
		ProductInterest: in.ProductInterest,
		Message:         in.Message,
		QuantityMT:      in.QuantityMT,
		Incoterm:        in.Incoterm,
		CreatedAt:       in.CreatedAt,
		UpdatedAt:       in.CreatedAt,
	}
}

func (d inquiryDocument) toModel() model.Inquiry {
	return model.Inquiry{
		ID:              d.ID.Hex(),
		Name:            d.Name,
		Company:         d.Company,
		Email:           d.Email,
		Phone:           d.Phone,
		Country:         d.Country,
		ProductInterest: d.ProductInterest,
		Message:         d.Message,
		QuantityMT:      d.QuantityMT,
		Incoterm:        d.Incoterm,
		CreatedAt:       d.CreatedAt,
	}
}

type inquiryMongoRepo struct {
	coll *mongo.Collection
}

func (r *inquiryMongoRepo) CreateInquiry(ctx context.Context, inquiry *model.Inquiry) (string, error) {
	res, err := r.coll.InsertOne(ctx, newInquiryDocument(inquiry))
	if err != nil {
		return "", err
	}

	oid, ok := res.InsertedID.(primitive.ObjectID)
	if !ok {
		return fmt.Sprint(res.InsertedID), nil
	}
	return oid.Hex(), nil
}

func (r *inquiryMongoRepo) FindAllInquiries(ctx context.Context) ([]model.Inquiry, error) {
	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	cursor, err := r.coll.Find(ctx, bson.D{}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var docs []inquiryDocument
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, err
	}

	inquiries := make([]model.Inquiry, 0, len(docs))
	for _, d := range docs {
		inquiries = append(inquiries, d.toModel())
	}
	return inquiries, nil
}

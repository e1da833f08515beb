package repository

import (
	"context"

	"seafood-exporter-api/internal/model"
	"seafood-exporter-api/pkg/database"
)

type InquiryRepository interface {
	// CreateInquiry stores the inquiry and returns the store-generated id.
	CreateInquiry(ctx context.Context, inquiry *model.Inquiry) (string, error)
	// FindAllInquiries returns every stored inquiry, newest first.
	FindAllInquiries(ctx context.Context) ([]model.Inquiry, error)
}

func NewInquiryRepo(store *database.Store) InquiryRepository {
	switch {
	case store == nil:
		return unavailableRepo{}
	case store.Mongo != nil:
		return &inquiryMongoRepo{coll: store.Mongo.Collection(model.InquiryCollection)}
	case store.SQL != nil:
		return &inquiryGormRepo{db: store.SQL}
	default:
		return unavailableRepo{}
	}
}

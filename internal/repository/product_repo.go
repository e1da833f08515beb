package repository

import (
	"context"
	"errors"

	"seafood-exporter-api/internal/model"
	"seafood-exporter-api/pkg/database"
)

// ErrStoreUnavailable is returned by every repository when no database is
// configured or the connection could not be established.
var ErrStoreUnavailable = errors.New("store unavailable")

type ProductRepository interface {
	// FindByCategory returns all products, or only those whose category
	// equals category exactly when it is non-empty.
	FindByCategory(ctx context.Context, category string) ([]model.Product, error)
	Create(ctx context.Context, product *model.Product) error
}

// NewProductRepo picks the implementation matching the store backend.
func NewProductRepo(store *database.Store) ProductRepository {
	switch {
	case store == nil:
		return unavailableRepo{}
	case store.Mongo != nil:
		return &productMongoRepo{coll: store.Mongo.Collection(model.ProductCollection)}
	case store.SQL != nil:
		return &productGormRepo{db: store.SQL}
	default:
		return unavailableRepo{}
	}
}

// unavailableRepo backs both repository interfaces in fallback mode.
type unavailableRepo struct{}

func (unavailableRepo) FindByCategory(context.Context, string) ([]model.Product, error) {
	return nil, ErrStoreUnavailable
}

func (unavailableRepo) Create(context.Context, *model.Product) error {
	return ErrStoreUnavailable
}

func (unavailableRepo) CreateInquiry(context.Context, *model.Inquiry) (string, error) {
	return "", ErrStoreUnavailable
}

func (unavailableRepo) FindAllInquiries(context.Context) ([]model.Inquiry, error) {
	return nil, ErrStoreUnavailable
}

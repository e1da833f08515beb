package service

import (
	"context"
	"errors"

	"seafood-exporter-api/internal/model"
	"seafood-exporter-api/internal/repository"
	"seafood-exporter-api/pkg/logger"
)

// CatalogResult tells the caller where the products came from. Err is set
// only when FromStore is false and the store was configured but failed.
type CatalogResult struct {
	Products  []model.Product
	FromStore bool
	Err       error
}

type CatalogService interface {
	ListProducts(ctx context.Context, category string) CatalogResult
}

type catalogService struct {
	productRepo repository.ProductRepository
}

func NewCatalogService(pRepo repository.ProductRepository) CatalogService {
	return &catalogService{productRepo: pRepo}
}

// ListProducts never fails: any store error yields the fallback catalog,
// regardless of the requested category.
func (s *catalogService) ListProducts(ctx context.Context, category string) CatalogResult {
	products, err := s.productRepo.FindByCategory(ctx, category)
	if err != nil {
		if !errors.Is(err, repository.ErrStoreUnavailable) {
			logx.Warn().Err(err).Str("category", category).Msg("product query failed, serving fallback catalog")
		} else {
			err = nil
		}
		return CatalogResult{Products: FallbackProducts(), Err: err}
	}

	if products == nil {
		products = []model.Product{}
	}
	return CatalogResult{Products: products, FromStore: true}
}

// FallbackProducts returns a fresh copy of the sample catalog served when
// the store cannot answer.
func FallbackProducts() []model.Product {
	return []model.Product{
		{
			Name:         "Pacific White Shrimp",
			Category:     "Shrimp",
			Origin:       model.Str("Ecuador"),
			Grade:        model.Str("A"),
			Processing:   model.Str("HOSO"),
			Sizes:        []string{"16/20", "21/25"},
			Packaging:    model.Str("10x1kg"),
			Availability: model.Str("Year-round"),
		},
		{
			Name:         "Yellowfin Tuna",
			Category:     "Fish",
			Origin:       model.Str("Sri Lanka"),
			Grade:        model.Str("Sashimi"),
			Processing:   model.Str("Loins"),
			Sizes:        []string{"2-5kg", "5-8kg"},
			Packaging:    model.Str("Vacuum packed"),
			Availability: model.Str("Seasonal"),
		},
	}
}

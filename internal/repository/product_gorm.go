package repository

import (
	"context"

	"seafood-exporter-api/internal/model"

	"gorm.io/gorm"
)

type productRecord struct {
	ID           uint     `gorm:"primaryKey"`
	Name         string   `gorm:"type:varchar(255);not null"`
	Category     string   `gorm:"type:varchar(100);not null;index"`
	Origin       *string  `gorm:"type:varchar(255)"`
	Grade        *string  `gorm:"type:varchar(100)"`
	Processing   *string  `gorm:"type:varchar(100)"`
	Sizes        []string `gorm:"type:text;serializer:json"`
	Packaging    *string  `gorm:"type:varchar(255)"`
	Availability *string  `gorm:"type:varchar(255)"`
}

func (productRecord) TableName() string {
	return model.ProductCollection
}

func (r productRecord) toModel() model.Product {
	return model.Product{
		Name:         r.Name,
		Category:     r.Category,
		Origin:       r.Origin,
		Grade:        r.Grade,
		Processing:   r.Processing,
		Sizes:        r.Sizes,
		Packaging:    r.Packaging,
		Availability: r.Availability,
	}
}

type productGormRepo struct {
	db *gorm.DB
}

func (r *productGormRepo) FindByCategory(ctx context.Context, category string) ([]model.Product, error) {
	var records []productRecord
	q := r.db.WithContext(ctx).Order("id")
	if category != "" {
		q = q.Where("category = ?", category)
	}
	if err := q.Find(&records).Error; err != nil {
		return nil, err
	}

	products := make([]model.Product, 0, len(records))
	for _, rec := range records {
		products = append(products, rec.toModel())
	}
	return products, nil
}

func (r *productGormRepo) Create(ctx context.Context, product *model.Product) error {
	rec := productRecord{
		Name:         product.Name,
		Category:     product.Category,
		Origin:       product.Origin,
		Grade:        product.Grade,
		Processing:   product.Processing,
		Sizes:        product.Sizes,
		Packaging:    product.Packaging,
		Availability: product.Availability,
	}
	return r.db.WithContext(ctx).Create(&rec).Error
}

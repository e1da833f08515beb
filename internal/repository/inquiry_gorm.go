package repository

import (
	"context"

	"seafood-exporter-api/internal/model"

	"gorm.io/gorm"
)

type inquiryRecord struct {
	model.BaseModel
	Name            string   `gorm:"type:varchar(255);not null"`
	Company         *string  `gorm:"type:varchar(255)"`
	Email           string   `gorm:"type:varchar(255);not null;index"`
	Phone           *string  `gorm:"type:varchar(50)"`
	Country         *string  `gorm:"type:varchar(100)"`
	ProductInterest *string  `gorm:"type:varchar(255)"`
	Message         string   `gorm:"type:text;not null"`
	QuantityMT      *float64 `gorm:"column:quantity_mt"`
	Incoterm        *string  `gorm:"type:varchar(20)"`
}

func (inquiryRecord) TableName() string {
	return model.InquiryCollection
}

func (r inquiryRecord) toModel() model.Inquiry {
	return model.Inquiry{
		ID:              r.ID.String(),
		Name:            r.Name,
		Company:         r.Company,
		Email:           r.Email,
		Phone:           r.Phone,
		Country:         r.Country,
		ProductInterest: r.ProductInterest,
		Message:         r.Message,
		QuantityMT:      r.QuantityMT,
		Incoterm:        r.Incoterm,
		CreatedAt:       r.CreatedAt,
	}
}

type inquiryGormRepo struct {
	db *gorm.DB
}

func (r *inquiryGormRepo) CreateInquiry(ctx context.Context, inquiry *model.Inquiry) (string, error) {
	rec := inquiryRecord{
		Name:            inquiry.Name,
		Company:         inquiry.Company,
		Email:           inquiry.Email,
		Phone:           inquiry.Phone,
		Country:         inquiry.Country,
		ProductInterest: inquiry.ProductInterest,
		Message:         inquiry.Message,
		QuantityMT:      inquiry.QuantityMT,
		Incoterm:        inquiry.Incoterm,
	}
	rec.CreatedAt = inquiry.CreatedAt

	if err := r.db.WithContext(ctx).Create(&rec).Error; err != nil {
		return "", err
	}
	return rec.ID.String(), nil
}

func (r *inquiryGormRepo) FindAllInquiries(ctx context.Context) ([]model.Inquiry, error) {
	var records []inquiryRecord
	if err := r.db.WithContext(ctx).Order("created_at desc").Find(&records).Error; err != nil {
		return nil, err
	}

	inquiries := make([]model.Inquiry, 0, len(records))
	for _, rec := range records {
		inquiries = append(inquiries, rec.toModel())
	}
	return inquiries, nil
}

// Migrate creates the SQL tables. MongoDB needs no migration.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(&productRecord{}, &inquiryRecord{})
}

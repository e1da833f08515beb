package model

import "time"

// InquiryStatusReceived is the only status an accepted inquiry ever gets.
const InquiryStatusReceived = "received"

// TempInquiryID is returned when an inquiry was acknowledged but not stored.
const TempInquiryID = "temp"

// Inquiry is a buyer request for quotation (RFQ).
type Inquiry struct {
	ID              string    `json:"id,omitempty" validate:"-"`
	Name            string    `json:"name" validate:"required"`
	Company         *string   `json:"company"`
	Email           string    `json:"email" validate:"required,email"`
	Phone           *string   `json:"phone"`
	Country         *string   `json:"country"`
	ProductInterest *string   `json:"product_interest"`
	Message         string    `json:"message" validate:"required"`
	QuantityMT      *float64  `json:"quantity_mt" validate:"omitempty,gte=0"`
	Incoterm        *string   `json:"incoterm"`
	CreatedAt       time.Time `json:"created_at,omitempty"`
}

// InquiryReceipt is the acknowledgement sent back for a submission.
// Persisted is internal and never serialized.
type InquiryReceipt struct {
	ID        string `json:"id"`
	Status    string `json:"status"`
	Persisted bool   `json:"-"`
}

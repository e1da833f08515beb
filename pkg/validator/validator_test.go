package validator

import (
	"testing"

	"seafood-exporter-api/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validInquiry() *model.Inquiry {
	return &model.Inquiry{
		Name:    "Jane Buyer",
		Email:   "jane@buyer.com",
		Message: "Need 5 MT shrimp",
	}
}

func TestValidateStruct_ValidInquiry(t *testing.T) {
	assert.Empty(t, ValidateStruct(validInquiry()))
}

func TestValidateStruct_InquiryRules(t *testing.T) {
	negative := -1.5
	zero := 0.0

	tests := []struct {
		name      string
		mutate    func(*model.Inquiry)
		wantField string
		wantTag   string
	}{
		{"malformed email", func(i *model.Inquiry) { i.Email = "not-an-email" }, "email", "email"},
		{"missing email", func(i *model.Inquiry) { i.Email = "" }, "email", "required"},
		{"missing name", func(i *model.Inquiry) { i.Name = "" }, "name", "required"},
		{"missing message", func(i *model.Inquiry) { i.Message = "" }, "message", "required"},
		{"negative quantity", func(i *model.Inquiry) { i.QuantityMT = &negative }, "quantity_mt", "gte"},
		{"zero quantity ok", func(i *model.Inquiry) { i.QuantityMT = &zero }, "", ""},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			inq := validInquiry()
			tc.mutate(inq)

			errs := ValidateStruct(inq)
			if tc.wantField == "" {
				assert.Empty(t, errs)
				return
			}
			require.Len(t, errs, 1)
			assert.Equal(t, tc.wantField, errs[0].Field)
			assert.Equal(t, tc.wantTag, errs[0].Tag)
		})
	}
}

func TestValidateStruct_ProductRequiresNameAndCategory(t *testing.T) {
	errs := ValidateStruct(&model.Product{})

	require.Len(t, errs, 2)
	assert.Equal(t, "name", errs[0].Field)
	assert.Equal(t, "category", errs[1].Field)
}

func TestValidateStruct_NonStruct(t *testing.T) {
	errs := ValidateStruct("nope")

	require.Len(t, errs, 1)
	assert.Equal(t, "invalid", errs[0].Tag)
}

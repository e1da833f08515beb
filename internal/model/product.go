package model

// Product is a catalog entry as served to clients. It deliberately has no
// identifier field; store keys never leave the repository layer.
type Product struct {
	Name         string   `json:"name" bson:"name" validate:"required"`
	Category     string   `json:"category" bson:"category" validate:"required"`
	Origin       *string  `json:"origin" bson:"origin,omitempty"`
	Grade        *string  `json:"grade" bson:"grade,omitempty"`
	Processing   *string  `json:"processing" bson:"processing,omitempty"`
	Sizes        []string `json:"sizes" bson:"sizes,omitempty"`
	Packaging    *string  `json:"packaging" bson:"packaging,omitempty"`
	Availability *string  `json:"availability" bson:"availability,omitempty"`
}

// Collection / table names.
const (
	ProductCollection = "product"
	InquiryCollection = "inquiry"
)

// Str returns a pointer to s, for filling optional fields.
func Str(s string) *string {
	return &s
}

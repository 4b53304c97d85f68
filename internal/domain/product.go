package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

func init() {
	// Prices are serialized as plain JSON numbers (e.g. 12.34), not strings.
	decimal.MarshalJSONWithoutQuotes = true
}

type Product struct {
	ID              int64           `json:"id"`
	Name            string          `json:"name"`
	Description     *string         `json:"description"`
	Price           decimal.Decimal `json:"price"`
	ImageURL        *string         `json:"image_url"`
	PreparationTime int             `json:"preparation_time"`
	CategoryID      int64           `json:"category_id"`
	CreatedAt       time.Time       `json:"created_at"`
	UpdatedAt       time.Time       `json:"updated_at"`
}

// ProductInput is the payload accepted on create and update. PreparationTime
// and Price are pointers so an absent field is distinguishable from zero.
type ProductInput struct {
	Name            string           `json:"name" validate:"required,min=1,max=150"`
	Description     *string          `json:"description"`
	Price           *decimal.Decimal `json:"price"`
	ImageURL        *string          `json:"image_url" validate:"omitempty,max=500"`
	PreparationTime *int             `json:"preparation_time" validate:"required,gte=0"`
	CategoryID      int64            `json:"category_id" validate:"gt=0"`
}

type ProductRepository interface {
	CreateProduct(input *ProductInput) (*Product, error)
	GetProductByID(id int64) (*Product, error)
	UpdateProduct(id int64, input *ProductInput) (*Product, error)
	DeleteProduct(id int64) error
	// ListProducts returns all products, or only those in the given category
	// when categoryID is positive.
	ListProducts(categoryID int64) ([]Product, error)
}

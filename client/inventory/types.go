package inventory

import "time"

// Collection names as the API routes them.
const (
	ProductResource  = "product"
	SaleResource     = "sale"
	CategoryResource = "category"
	BrandResource    = "brand"
	SellerResource   = "seller"
)

// Product sizes.
const (
	SizeSmall  = "SMALL"
	SizeMedium = "MEDIUM"
	SizeLarge  = "LARGE"
)

type Product struct {
	ID          string    `json:"_id"`
	Name        string    `json:"name"`
	Price       float64   `json:"price"`
	Stock       int       `json:"stock"`
	Seller      string    `json:"seller"`
	Category    string    `json:"category"`
	Brand       string    `json:"brand,omitempty"`
	Size        string    `json:"size,omitempty"`
	Description string    `json:"description,omitempty"`
	ImageURL    string    `json:"imageUrl,omitempty"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

type Sale struct {
	ID           string    `json:"_id"`
	Product      string    `json:"product"`
	ProductName  string    `json:"productName"`
	ProductPrice float64   `json:"productPrice"`
	BuyerName    string    `json:"buyerName"`
	Quantity     int       `json:"quantity"`
	TotalPrice   float64   `json:"totalPrice"`
	Date         time.Time `json:"date"`
}

// Lookup is a category, brand or seller.
type Lookup struct {
	ID   string `json:"_id"`
	Name string `json:"name"`
}

// NewProduct is the create payload. Size is dropped when empty.
type NewProduct struct {
	Name        string  `json:"name" validate:"required,max=120"`
	Price       float64 `json:"price" validate:"gt=0"`
	Stock       int     `json:"stock" validate:"gte=0"`
	Seller      string  `json:"seller" validate:"required"`
	Category    string  `json:"category" validate:"required"`
	Brand       string  `json:"brand,omitempty"`
	Size        string  `json:"size,omitempty" validate:"omitempty,oneof=SMALL MEDIUM LARGE"`
	Description string  `json:"description,omitempty" validate:"max=1000"`
	ImageURL    string  `json:"imageUrl" validate:"required,url"`
}

// ProductPatch updates selected product fields; nil fields are left alone.
type ProductPatch struct {
	Name        *string  `json:"name,omitempty" validate:"omitempty,min=1,max=120"`
	Price       *float64 `json:"price,omitempty" validate:"omitempty,gt=0"`
	Stock       *int     `json:"stock,omitempty" validate:"omitempty,gte=0"`
	Brand       *string  `json:"brand,omitempty"`
	Size        *string  `json:"size,omitempty" validate:"omitempty,oneof=SMALL MEDIUM LARGE"`
	Description *string  `json:"description,omitempty" validate:"omitempty,max=1000"`
	ImageURL    *string  `json:"imageUrl,omitempty" validate:"omitempty,url"`
}

type NewSale struct {
	Product   string    `json:"product" validate:"required"`
	BuyerName string    `json:"buyerName" validate:"required,max=120"`
	Quantity  int       `json:"quantity" validate:"min=1"`
	Date      time.Time `json:"date"`
}

// SalePatch updates the buyer or date of a sale.
type SalePatch struct {
	BuyerName *string    `json:"buyerName,omitempty" validate:"omitempty,min=1,max=120"`
	Date      *time.Time `json:"date,omitempty"`
}

type NewLookup struct {
	Name string `json:"name" validate:"required,max=80"`
}

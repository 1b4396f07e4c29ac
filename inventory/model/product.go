package model

import (
	"time"
)

type Product struct {
	ID          string      `json:"_id"`
	Name        string      `json:"name"`
	Price       float64     `json:"price"`
	Stock       int32       `json:"stock"`
	Seller      string      `json:"seller"`
	Category    string      `json:"category"`
	Brand       *string     `json:"brand,omitempty"`
	Size        ProductSize `json:"size,omitempty"`
	Description *string     `json:"description,omitempty"`
	ImageURL    *string     `json:"imageUrl,omitempty"`
	CreatedAt   time.Time   `json:"createdAt"`
	UpdatedAt   time.Time   `json:"updatedAt"`
}

type ProductSize string

const (
	SizeSmall  ProductSize = "SMALL"
	SizeMedium ProductSize = "MEDIUM"
	SizeLarge  ProductSize = "LARGE"
)

// ProductPatch carries the fields of a partial product update. Nil fields
// keep their stored value.
type ProductPatch struct {
	Name        *string
	Price       *float64
	Stock       *int32
	Brand       *string
	Size        *ProductSize
	Description *string
	ImageURL    *string
}

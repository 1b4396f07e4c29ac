package model

import (
	"time"
)

// Sale snapshots the product name and price at the time of sale, so later
// product edits do not rewrite history.
type Sale struct {
	ID             string    `json:"_id"`
	Product        string    `json:"product"`
	ProductName    string    `json:"productName"`
	ProductPrice   float64   `json:"productPrice"`
	BuyerName      string    `json:"buyerName"`
	Quantity       int32     `json:"quantity"`
	TotalPrice     float64   `json:"totalPrice"`
	Date           time.Time `json:"date"`
	IdempotencyKey string    `json:"-"`
	CreatedAt      time.Time `json:"createdAt"`
	UpdatedAt      time.Time `json:"updatedAt"`
}

type SalePatch struct {
	BuyerName *string
	Date      *time.Time
}

package model

import "time"

// LookupKind names the small reference collections products point at.
type LookupKind string

const (
	KindCategory LookupKind = "category"
	KindBrand    LookupKind = "brand"
	KindSeller   LookupKind = "seller"
)

type Lookup struct {
	ID        string     `json:"_id"`
	Kind      LookupKind `json:"-"`
	Name      string     `json:"name"`
	CreatedAt time.Time  `json:"createdAt"`
}

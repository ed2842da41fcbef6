package model

import "github.com/shopspring/decimal"

// ProductEntity is the read-only view of the product table used for nesting.
type ProductEntity struct {
	ID          uint64          `db:"id" json:"id"`
	Name        string          `db:"name" json:"name"`
	Description string          `db:"description" json:"description"`
	Price       decimal.Decimal `db:"price" json:"price"`
}

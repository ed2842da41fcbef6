package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// OrderDetailEntity represents the order_detail table entity
type OrderDetailEntity struct {
	ID        uint64          `db:"id"`
	OrderID   uint64          `db:"order_id"`
	ProductID uint64          `db:"product_id"`
	Amount    int64           `db:"amount"`
	Price     decimal.Decimal `db:"price"`
	Discount  decimal.Decimal `db:"discount"`
}

// OrderDetailRow is a single row of order_detail joined with its order and product.
type OrderDetailRow struct {
	OrderDetailEntity

	ReceiverName    string     `db:"o_receiver_name"`
	ReceiverPhone   string     `db:"o_receiver_phone"`
	ReceiverAddress string     `db:"o_receiver_address"`
	Description     string     `db:"o_description"`
	UserID          uint64     `db:"o_user_id"`
	CreatedAt       time.Time  `db:"o_created_at"`
	UpdatedAt       *time.Time `db:"o_updated_at"`

	ProductName        string          `db:"p_name"`
	ProductDescription string          `db:"p_description"`
	ProductPrice       decimal.Decimal `db:"p_price"`
}

// ToResponse expands the joined row one level: order and product are embedded objects.
func (r *OrderDetailRow) ToResponse() OrderDetailResponse {
	return OrderDetailResponse{
		ID:       r.ID,
		Amount:   r.Amount,
		Price:    r.Price,
		Discount: r.Discount,
		Order: OrderEntity{
			ID:              r.OrderID,
			ReceiverName:    r.ReceiverName,
			ReceiverPhone:   r.ReceiverPhone,
			ReceiverAddress: r.ReceiverAddress,
			Description:     r.Description,
			UserID:          r.UserID,
			CreatedAt:       r.CreatedAt,
			UpdatedAt:       r.UpdatedAt,
		},
		Product: ProductEntity{
			ID:          r.ProductID,
			Name:        r.ProductName,
			Description: r.ProductDescription,
			Price:       r.ProductPrice,
		},
	}
}

type OrderDetailResponse struct {
	ID       uint64          `json:"id"`
	Amount   int64           `json:"amount"`
	Price    decimal.Decimal `json:"price"`
	Discount decimal.Decimal `json:"discount"`
	Order    OrderEntity     `json:"order"`
	Product  ProductEntity   `json:"product"`
}

// CreateOrderDetailRequest is the create payload. OrderID is optional; the
// owning order comes from the path and a differing body value is rejected.
type CreateOrderDetailRequest struct {
	OrderID   *uint64          `json:"order_id,omitempty"`
	ProductID uint64           `json:"product_id" validate:"required"`
	Amount    *int64           `json:"amount" validate:"required,gte=1"`
	Price     *decimal.Decimal `json:"price" validate:"required,gte=0"`
	Discount  *decimal.Decimal `json:"discount" validate:"required,gte=0"`
}

// UpdateOrderDetailRequest replaces the writable fields of a detail. The
// order and product links are fixed at creation.
type UpdateOrderDetailRequest struct {
	Amount   *int64           `json:"amount" validate:"required,gte=1"`
	Price    *decimal.Decimal `json:"price" validate:"required,gte=0"`
	Discount *decimal.Decimal `json:"discount" validate:"required,gte=0"`
}

type DeleteOrderDetailResponse struct {
	OrderDetailID uint64 `json:"order_detail_id"`
}

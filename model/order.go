package model

import "time"

// OrderEntity represents the order table entity
type OrderEntity struct {
	ID              uint64     `db:"id" json:"id"`
	ReceiverName    string     `db:"receiver_name" json:"receiver_name"`
	ReceiverPhone   string     `db:"receiver_phone" json:"receiver_phone"`
	ReceiverAddress string     `db:"receiver_address" json:"receiver_address"`
	Description     string     `db:"description" json:"description"`
	UserID          uint64     `db:"user_id" json:"user_id"`
	CreatedAt       time.Time  `db:"created_at" json:"created_at"`
	UpdatedAt       *time.Time `db:"updated_at" json:"updated_at,omitempty"`
}

// OrderRequest is the payload of create and of full-record update
type OrderRequest struct {
	UserID          uint64 `json:"user_id" validate:"required"`
	ReceiverName    string `json:"receiver_name" validate:"required,max=255"`
	ReceiverPhone   string `json:"receiver_phone" validate:"required,max=32"`
	ReceiverAddress string `json:"receiver_address" validate:"required,max=512"`
	Description     string `json:"description" validate:"required"`
}

type DeleteOrderResponse struct {
	OrderID uint64 `json:"order_id"`
}

package orderdetail

import (
	"context"
	"database/sql"
	"errors"

	"github.com/jmoiron/sqlx"
	"github.com/muhammadheryan/e-commerce-orders/model"
)

type SQL struct {
	conn *sqlx.DB
}

type OrderDetailRepository interface {
	ListByOrder(ctx context.Context, orderID uint64) ([]model.OrderDetailRow, error)
	Get(ctx context.Context, orderID, id uint64) (*model.OrderDetailRow, error)
	GetTx(ctx context.Context, tx *sqlx.Tx, orderID, id uint64) (*model.OrderDetailRow, error)
	CreateTx(ctx context.Context, tx *sqlx.Tx, data *model.OrderDetailEntity) (uint64, error)
	Update(ctx context.Context, data *model.OrderDetailEntity) error
	Delete(ctx context.Context, orderID, id uint64) error
}

func NewOrderDetailRepository(conn *sqlx.DB) OrderDetailRepository {
	return &SQL{conn: conn}
}

const (
	selectOrderDetailBase = "SELECT d.id, d.order_id, d.product_id, d.amount, d.price, d.discount, " +
		"o.receiver_name AS o_receiver_name, o.receiver_phone AS o_receiver_phone, o.receiver_address AS o_receiver_address, " +
		"o.description AS o_description, o.user_id AS o_user_id, o.created_at AS o_created_at, o.updated_at AS o_updated_at, " +
		"p.name AS p_name, p.description AS p_description, p.price AS p_price " +
		"FROM order_detail d " +
		"JOIN `order` o ON o.id = d.order_id " +
		"JOIN product p ON p.id = d.product_id"

	listOrderDetailsQuery  = selectOrderDetailBase + " WHERE d.order_id = ? ORDER BY d.id"
	getOrderDetailQuery    = selectOrderDetailBase + " WHERE d.order_id = ? AND d.id = ?"
	insertOrderDetailQuery = "INSERT INTO order_detail (order_id, product_id, amount, price, discount) VALUES (?, ?, ?, ?, ?)"
	updateOrderDetailQuery = "UPDATE order_detail SET amount = ?, price = ?, discount = ? WHERE order_id = ? AND id = ?"
	deleteOrderDetailQuery = "DELETE FROM order_detail WHERE order_id = ? AND id = ?"
)

// ListByOrder returns an empty slice, not an error, for an order without details
func (s *SQL) ListByOrder(ctx context.Context, orderID uint64) ([]model.OrderDetailRow, error) {
	rows, err := s.conn.QueryxContext(ctx, listOrderDetailsQuery, orderID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := make([]model.OrderDetailRow, 0)
	for rows.Next() {
		var it model.OrderDetailRow
		if err := rows.StructScan(&it); err != nil {
			return nil, err
		}
		items = append(items, it)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}

// Get looks a detail up by the composite (order_id, id) filter. Returns nil, nil when absent.
func (s *SQL) Get(ctx context.Context, orderID, id uint64) (*model.OrderDetailRow, error) {
	return getOrderDetail(ctx, s.conn, orderID, id)
}

func (s *SQL) GetTx(ctx context.Context, tx *sqlx.Tx, orderID, id uint64) (*model.OrderDetailRow, error) {
	return getOrderDetail(ctx, tx, orderID, id)
}

func getOrderDetail(ctx context.Context, q sqlx.QueryerContext, orderID, id uint64) (*model.OrderDetailRow, error) {
	var row model.OrderDetailRow
	if err := q.QueryRowxContext(ctx, getOrderDetailQuery, orderID, id).StructScan(&row); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &row, nil
}

func (s *SQL) CreateTx(ctx context.Context, tx *sqlx.Tx, data *model.OrderDetailEntity) (uint64, error) {
	res, err := tx.ExecContext(ctx, insertOrderDetailQuery, data.OrderID, data.ProductID, data.Amount, data.Price, data.Discount)
	if err != nil {
		return 0, err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, err
	}
	return uint64(id), nil
}

// Update replaces amount, price and discount of the (order_id, id) row.
// Returns sql.ErrNoRows when no such row exists.
func (s *SQL) Update(ctx context.Context, data *model.OrderDetailEntity) error {
	result, err := s.conn.ExecContext(ctx, updateOrderDetailQuery, data.Amount, data.Price, data.Discount, data.OrderID, data.ID)
	if err != nil {
		return err
	}
	return requireAffected(result)
}

func (s *SQL) Delete(ctx context.Context, orderID, id uint64) error {
	result, err := s.conn.ExecContext(ctx, deleteOrderDetailQuery, orderID, id)
	if err != nil {
		return err
	}
	return requireAffected(result)
}

func requireAffected(result sql.Result) error {
	n, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return sql.ErrNoRows
	}
	return nil
}

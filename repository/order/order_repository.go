package order

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/muhammadheryan/e-commerce-orders/model"
)

type SQL struct {
	conn *sqlx.DB
}

type OrderRepository interface {
	List(ctx context.Context) ([]model.OrderEntity, error)
	GetByID(ctx context.Context, id uint64) (*model.OrderEntity, error)
	GetByIDTx(ctx context.Context, tx *sqlx.Tx, id uint64) (*model.OrderEntity, error)
	Create(ctx context.Context, data *model.OrderEntity) (*model.OrderEntity, error)
	Update(ctx context.Context, data *model.OrderEntity) (*model.OrderEntity, error)
	Delete(ctx context.Context, id uint64) error
}

func NewOrderRepository(conn *sqlx.DB) OrderRepository {
	return &SQL{conn: conn}
}

const (
	orderColumns = "id, receiver_name, receiver_phone, receiver_address, description, user_id, created_at, updated_at"

	listOrdersQuery   = "SELECT " + orderColumns + " FROM `order` ORDER BY id"
	getOrderByIDQuery = "SELECT " + orderColumns + " FROM `order` WHERE id = ?"
	insertOrderQuery  = "INSERT INTO `order` (receiver_name, receiver_phone, receiver_address, description, user_id, created_at) VALUES (?, ?, ?, ?, ?, ?)"
	updateOrderQuery  = "UPDATE `order` SET receiver_name = ?, receiver_phone = ?, receiver_address = ?, description = ?, user_id = ?, updated_at = ? WHERE id = ?"
	deleteOrderQuery  = "DELETE FROM `order` WHERE id = ?"
)

func (s *SQL) List(ctx context.Context) ([]model.OrderEntity, error) {
	orders := make([]model.OrderEntity, 0)
	if err := s.conn.SelectContext(ctx, &orders, listOrdersQuery); err != nil {
		return nil, err
	}
	return orders, nil
}

// GetByID returns nil, nil when the order does not exist
func (s *SQL) GetByID(ctx context.Context, id uint64) (*model.OrderEntity, error) {
	return getOrder(ctx, s.conn, id)
}

func (s *SQL) GetByIDTx(ctx context.Context, tx *sqlx.Tx, id uint64) (*model.OrderEntity, error) {
	return getOrder(ctx, tx, id)
}

func getOrder(ctx context.Context, q sqlx.QueryerContext, id uint64) (*model.OrderEntity, error) {
	var entity model.OrderEntity
	if err := sqlx.GetContext(ctx, q, &entity, getOrderByIDQuery, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &entity, nil
}

func (s *SQL) Create(ctx context.Context, data *model.OrderEntity) (*model.OrderEntity, error) {
	createdAt := time.Now().UTC().Truncate(time.Second)
	result, err := s.conn.ExecContext(ctx, insertOrderQuery, data.ReceiverName, data.ReceiverPhone, data.ReceiverAddress, data.Description, data.UserID, createdAt)
	if err != nil {
		return nil, err
	}

	lastID, err := result.LastInsertId()
	if err != nil {
		return nil, err
	}

	data.ID = uint64(lastID)
	data.CreatedAt = createdAt
	data.UpdatedAt = nil
	return data, nil
}

// Update replaces every writable column. Returns sql.ErrNoRows when no row has data.ID.
func (s *SQL) Update(ctx context.Context, data *model.OrderEntity) (*model.OrderEntity, error) {
	updatedAt := time.Now().UTC().Truncate(time.Second)
	result, err := s.conn.ExecContext(ctx, updateOrderQuery, data.ReceiverName, data.ReceiverPhone, data.ReceiverAddress, data.Description, data.UserID, updatedAt, data.ID)
	if err != nil {
		return nil, err
	}
	if err := requireAffected(result); err != nil {
		return nil, err
	}

	data.UpdatedAt = &updatedAt
	return data, nil
}

// Delete returns sql.ErrNoRows when nothing was deleted
func (s *SQL) Delete(ctx context.Context, id uint64) error {
	result, err := s.conn.ExecContext(ctx, deleteOrderQuery, id)
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

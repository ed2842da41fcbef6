package product

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

// ProductRepository is a read-only view over the product table, which is
// owned by the catalog service.
type ProductRepository interface {
	GetByID(ctx context.Context, id uint64) (*model.ProductEntity, error)
	GetByIDTx(ctx context.Context, tx *sqlx.Tx, id uint64) (*model.ProductEntity, error)
}

func NewProductRepository(conn *sqlx.DB) ProductRepository {
	return &SQL{conn: conn}
}

const getProductQuery = `SELECT id, name, description, price FROM product WHERE id = ?`

// GetByID returns nil, nil when the product does not exist
func (s *SQL) GetByID(ctx context.Context, id uint64) (*model.ProductEntity, error) {
	return getProduct(ctx, s.conn, id)
}

func (s *SQL) GetByIDTx(ctx context.Context, tx *sqlx.Tx, id uint64) (*model.ProductEntity, error) {
	return getProduct(ctx, tx, id)
}

func getProduct(ctx context.Context, q sqlx.QueryerContext, id uint64) (*model.ProductEntity, error) {
	var detail model.ProductEntity
	if err := q.QueryRowxContext(ctx, getProductQuery, id).StructScan(&detail); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &detail, nil
}

package user

import (
	"context"

	"github.com/jmoiron/sqlx"
)

type SQL struct {
	conn *sqlx.DB
}

// UserRepository answers questions about the user table, which belongs to
// the account service. Orders only hold a reference to a user id.
type UserRepository interface {
	Exists(ctx context.Context, id uint64) (bool, error)
}

func NewUserRepository(conn *sqlx.DB) UserRepository {
	return &SQL{conn: conn}
}

const userExistsQuery = `SELECT EXISTS(SELECT 1 FROM user WHERE id = ?)`

func (s *SQL) Exists(ctx context.Context, id uint64) (bool, error) {
	var exists bool
	if err := s.conn.GetContext(ctx, &exists, userExistsQuery, id); err != nil {
		return false, err
	}
	return exists, nil
}

package tx_test

import (
	"context"
	"testing"

	"github.com/muhammadheryan/e-commerce-orders/repository/testdb"
	txrepo "github.com/muhammadheryan/e-commerce-orders/repository/tx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTxRepository_CommitAndRollback(t *testing.T) {
	db := testdb.New(t)
	repo := txrepo.NewTxRepository(db)
	ctx := context.Background()

	tx, err := repo.BeginTx(ctx)
	require.NoError(t, err)
	_, err = tx.ExecContext(ctx, "INSERT INTO user (name, email, phone) VALUES ('a', 'a@x', '1')")
	require.NoError(t, err)
	require.NoError(t, repo.CommitTx(tx))
	// rolling back a finished transaction is a no-op
	assert.NoError(t, repo.RollbackTx(tx))

	tx, err = repo.BeginTx(ctx)
	require.NoError(t, err)
	_, err = tx.ExecContext(ctx, "INSERT INTO user (name, email, phone) VALUES ('b', 'b@x', '2')")
	require.NoError(t, err)
	require.NoError(t, repo.RollbackTx(tx))

	var count int
	require.NoError(t, db.GetContext(ctx, &count, "SELECT COUNT(*) FROM user"))
	assert.Equal(t, 1, count)
}

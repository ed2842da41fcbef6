// Package testdb opens an in-memory SQLite database carrying the same tables
// as migrations/, for repository tests. SQLite accepts the MySQL-style
// backtick quoting and ? placeholders used by the repositories.
package testdb

import (
	"testing"

	"github.com/jmoiron/sqlx"
	_ "github.com/mattn/go-sqlite3"
	"github.com/shopspring/decimal"
)

const schema = `
CREATE TABLE user (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	name TEXT NOT NULL,
	email TEXT NOT NULL,
	phone TEXT NOT NULL
);

CREATE TABLE product (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	name TEXT NOT NULL,
	description TEXT NOT NULL DEFAULT '',
	price DECIMAL(12,2) NOT NULL
);

CREATE TABLE ` + "`order`" + ` (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	receiver_name TEXT NOT NULL,
	receiver_phone TEXT NOT NULL,
	receiver_address TEXT NOT NULL,
	description TEXT NOT NULL,
	user_id INTEGER NOT NULL REFERENCES user(id),
	created_at DATETIME NOT NULL,
	updated_at DATETIME NULL
);

CREATE TABLE order_detail (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	order_id INTEGER NOT NULL REFERENCES ` + "`order`" + `(id) ON DELETE CASCADE,
	product_id INTEGER NOT NULL REFERENCES product(id),
	amount INTEGER NOT NULL,
	price DECIMAL(12,2) NOT NULL,
	discount DECIMAL(12,2) NOT NULL DEFAULT 0
);
`

// New returns a fresh database closed at the end of the test. The pool is
// pinned to one connection because every connection to :memory: is a
// separate database.
func New(t *testing.T) *sqlx.DB {
	t.Helper()

	db, err := sqlx.Open("sqlite3", "file::memory:?_foreign_keys=on")
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	db.SetMaxOpenConns(1)

	if _, err := db.Exec(schema); err != nil {
		t.Fatalf("create schema: %v", err)
	}

	t.Cleanup(func() { _ = db.Close() })
	return db
}

func SeedUser(t *testing.T, db *sqlx.DB, name string) uint64 {
	t.Helper()
	res, err := db.Exec("INSERT INTO user (name, email, phone) VALUES (?, ?, ?)", name, name+"@example.com", "0812")
	if err != nil {
		t.Fatalf("seed user: %v", err)
	}
	id, _ := res.LastInsertId()
	return uint64(id)
}

func SeedProduct(t *testing.T, db *sqlx.DB, name string, price decimal.Decimal) uint64 {
	t.Helper()
	res, err := db.Exec("INSERT INTO product (name, description, price) VALUES (?, ?, ?)", name, name+" description", price)
	if err != nil {
		t.Fatalf("seed product: %v", err)
	}
	id, _ := res.LastInsertId()
	return uint64(id)
}

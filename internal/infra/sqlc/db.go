// Package sqlc holds the SQL statements and row types used by repositories and read stores.
// The statements are maintained by hand against migrations/, in the shape sqlc's
// emit_methods_with_db_argument output takes: every method receives the DBTX to run on,
// so one Queries value serves both the pool and open transactions. There is no sqlc.yaml;
// edit these files directly and cover new statements in tests/e2e.
package sqlc

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

type DBTX interface {
	Exec(context.Context, string, ...interface{}) (pgconn.CommandTag, error)
	Query(context.Context, string, ...interface{}) (pgx.Rows, error)
	QueryRow(context.Context, string, ...interface{}) pgx.Row
}

type Queries struct{}

func New() *Queries {
	return &Queries{}
}

// collect drains rows with scan, closing them in every case.
func collect[T any](rows pgx.Rows, scan func(pgx.Row) (T, error)) ([]T, error) {
	defer rows.Close()
	var items []T
	for rows.Next() {
		item, err := scan(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}

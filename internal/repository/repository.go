// Package repository holds the SQL and Redis access code.
//
// Postgres repositories run on the transaction carried by the context when
// there is one (see database.Transactor) and on the pool otherwise. Missing
// rows are reported as pgx.ErrNoRows wrapped with a "table:<name>:" prefix,
// which sqlerr.HandleError turns into a named 404.
package repository

import (
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
)

func notFound(table string, err error) error {
	return fmt.Errorf("table:%s: %w", table, err)
}

func wrapRow(table string, err error) error {
	if errors.Is(err, pgx.ErrNoRows) {
		return notFound(table, err)
	}
	return err
}

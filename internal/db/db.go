// Package db stores race results in sqlite and exposes the GROUP BY
// aggregations the stats pipeline is built on.
package db

import (
	"database/sql"

	_ "modernc.org/sqlite"
)

// InMemory is the sqlite DSN for a throwaway database. The default run
// imports the CSV here and discards everything on exit.
const InMemory = ":memory:"

type DB struct {
	*sql.DB
}

// NewDB opens (or creates) the sqlite database at path and migrates the
// schema to the latest version.
func NewDB(path string) (*DB, error) {
	sqldb, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, err
	}

	db := &DB{sqldb}
	if err := db.MigrateUp(); err != nil {
		sqldb.Close()
		return nil, err
	}

	return db, nil
}

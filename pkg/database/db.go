package database

import (
	"database/sql"

	_ "github.com/mattn/go-sqlite3"
)

func Open(dbPath string) (*sql.DB, error) {
	db, err := sql.Open("sqlite3", dbPath+"?_foreign_keys=on")
	if err != nil {
		return nil, err
	}
	// single connection keeps SQLite happy and makes :memory: usable in tests
	db.SetMaxOpenConns(1)
	return db, nil
}

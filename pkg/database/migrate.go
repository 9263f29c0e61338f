package database

import (
	"database/sql"
	"fmt"
)

func Migrate(db *sql.DB) error {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS userinfo (
			user_id INTEGER PRIMARY KEY AUTOINCREMENT,
			user_name TEXT NOT NULL UNIQUE,
			user_pass TEXT NOT NULL,
			user_email TEXT NOT NULL UNIQUE,
			created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
		);`,
		`CREATE TABLE IF NOT EXISTS noveltype (
			novel_type_id INTEGER PRIMARY KEY AUTOINCREMENT,
			novel_type_name TEXT NOT NULL UNIQUE
		);`,
		`CREATE TABLE IF NOT EXISTS novel (
			novel_id INTEGER PRIMARY KEY AUTOINCREMENT,
			novel_name TEXT NOT NULL,
			novel_type_id INTEGER NOT NULL REFERENCES noveltype(novel_type_id),
			novel_img TEXT NOT NULL,
			novel_penname TEXT NOT NULL,
			user_id INTEGER NOT NULL REFERENCES userinfo(user_id)
		);`,
		`CREATE TABLE IF NOT EXISTS chapter (
			chapter_id INTEGER PRIMARY KEY AUTOINCREMENT,
			novel_id INTEGER NOT NULL REFERENCES novel(novel_id),
			chap_num INTEGER NOT NULL,
			chap_write TEXT NOT NULL
		);`,
		`CREATE TABLE IF NOT EXISTS lastet_novel (
			user_id INTEGER NOT NULL REFERENCES userinfo(user_id),
			novel_id INTEGER NOT NULL REFERENCES novel(novel_id),
			PRIMARY KEY (user_id, novel_id)
		);`,
		`CREATE TABLE IF NOT EXISTS comment (
			comment_id INTEGER PRIMARY KEY AUTOINCREMENT,
			novel_id INTEGER NOT NULL REFERENCES novel(novel_id),
			user_id INTEGER NOT NULL REFERENCES userinfo(user_id),
			com_text TEXT NOT NULL
		);`,
	}

	for i, s := range stmts {
		if _, err := db.Exec(s); err != nil {
			return fmt.Errorf("migrate stmt %d: %w", i, err)
		}
	}
	return nil
}

package database

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"os"
)

// DefaultNovelTypes is the built-in genre list used when no seed file is
// supplied. noveltype is read-only reference data; every novel row points
// at one of these.
var DefaultNovelTypes = []string{
	"Fantasy",
	"Romance",
	"Action",
	"Mystery",
	"Sci-Fi",
	"Horror",
	"Slice of Life",
	"Drama",
}

func LoadNovelTypesFromJSON(jsonPath string) ([]string, error) {
	b, err := os.ReadFile(jsonPath)
	if err != nil {
		return nil, fmt.Errorf("read noveltype json: %w", err)
	}

	var names []string
	if err := json.Unmarshal(b, &names); err != nil {
		return nil, fmt.Errorf("unmarshal noveltype json: %w", err)
	}
	return names, nil
}

func SeedNovelTypes(db *sql.DB, names []string) (int, error) {
	tx, err := db.Begin()
	if err != nil {
		return 0, fmt.Errorf("begin tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	stmt, err := tx.Prepare(`INSERT OR IGNORE INTO noveltype (novel_type_name) VALUES (?);`)
	if err != nil {
		return 0, fmt.Errorf("prepare insert noveltype: %w", err)
	}
	defer stmt.Close()

	inserted := 0
	for _, name := range names {
		res, err := stmt.Exec(name)
		if err != nil {
			return 0, fmt.Errorf("insert noveltype %q: %w", name, err)
		}
		aff, _ := res.RowsAffected()
		if aff > 0 {
			inserted++
		}
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("commit tx: %w", err)
	}
	return inserted, nil
}

package novel

import (
	"database/sql"
	"errors"
)

var ErrNotFound = errors.New("novel not found")

type Novel struct {
	ID       int64  `json:"novel_id"`
	Name     string `json:"novel_name"`
	TypeID   int64  `json:"novel_type_id"`
	TypeName string `json:"novel_type_name"`
	Image    string `json:"novel_img"`
	Penname  string `json:"novel_penname"`
	OwnerID  int64  `json:"user_id"`
}

type Type struct {
	ID   int64  `json:"novel_type_id"`
	Name string `json:"novel_type_name"`
}

const novelCols = `n.novel_id, n.novel_name, n.novel_type_id, t.novel_type_name, n.novel_img, n.novel_penname, n.user_id`

func scanNovels(rows *sql.Rows) ([]Novel, error) {
	defer rows.Close()
	res := []Novel{}
	for rows.Next() {
		var n Novel
		if err := rows.Scan(&n.ID, &n.Name, &n.TypeID, &n.TypeName, &n.Image, &n.Penname, &n.OwnerID); err != nil {
			return nil, err
		}
		res = append(res, n)
	}
	return res, rows.Err()
}

func ListAll(db *sql.DB) ([]Novel, error) {
	rows, err := db.Query(`SELECT ` + novelCols + `
		FROM novel n JOIN noveltype t ON t.novel_type_id = n.novel_type_id
		ORDER BY n.novel_id ASC`)
	if err != nil {
		return nil, err
	}
	return scanNovels(rows)
}

func ListByOwner(db *sql.DB, ownerID int64) ([]Novel, error) {
	rows, err := db.Query(`SELECT `+novelCols+`
		FROM novel n JOIN noveltype t ON t.novel_type_id = n.novel_type_id
		WHERE n.user_id = ?
		ORDER BY n.novel_id ASC`, ownerID)
	if err != nil {
		return nil, err
	}
	return scanNovels(rows)
}

func GetByID(db *sql.DB, id int64) (Novel, error) {
	var n Novel
	err := db.QueryRow(`SELECT `+novelCols+`
		FROM novel n JOIN noveltype t ON t.novel_type_id = n.novel_type_id
		WHERE n.novel_id = ?`, id).
		Scan(&n.ID, &n.Name, &n.TypeID, &n.TypeName, &n.Image, &n.Penname, &n.OwnerID)
	if errors.Is(err, sql.ErrNoRows) {
		return Novel{}, ErrNotFound
	}
	return n, err
}

// Create inserts a novel row. image is the stored cover filename, not the
// original upload name.
func Create(db *sql.DB, name string, typeID int64, image, penname string, ownerID int64) (Novel, error) {
	res, err := db.Exec(`INSERT INTO novel(novel_name, novel_type_id, novel_img, novel_penname, user_id) VALUES(?,?,?,?,?)`,
		name, typeID, image, penname, ownerID)
	if err != nil {
		return Novel{}, err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return Novel{}, err
	}
	return Novel{ID: id, Name: name, TypeID: typeID, Image: image, Penname: penname, OwnerID: ownerID}, nil
}

func ListTypes(db *sql.DB) ([]Type, error) {
	rows, err := db.Query(`SELECT novel_type_id, novel_type_name FROM noveltype ORDER BY novel_type_id ASC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	res := []Type{}
	for rows.Next() {
		var t Type
		if err := rows.Scan(&t.ID, &t.Name); err != nil {
			return nil, err
		}
		res = append(res, t)
	}
	return res, rows.Err()
}

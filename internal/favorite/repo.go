package favorite

import (
	"database/sql"
	"errors"

	"novelhub/internal/novel"
)

var ErrNotFound = errors.New("favorite not found")

func Exists(db *sql.DB, userID, novelID int64) (bool, error) {
	var one int
	err := db.QueryRow(`SELECT 1 FROM lastet_novel WHERE user_id = ? AND novel_id = ?`, userID, novelID).Scan(&one)
	if errors.Is(err, sql.ErrNoRows) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

// Add is idempotent: adding a pair that already exists is a no-op.
func Add(db *sql.DB, userID, novelID int64) error {
	_, err := db.Exec(`INSERT OR IGNORE INTO lastet_novel(user_id, novel_id) VALUES(?,?)`, userID, novelID)
	return err
}

func Remove(db *sql.DB, userID, novelID int64) error {
	res, err := db.Exec(`DELETE FROM lastet_novel WHERE user_id = ? AND novel_id = ?`, userID, novelID)
	if err != nil {
		return err
	}
	aff, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if aff == 0 {
		return ErrNotFound
	}
	return nil
}

func ListByUser(db *sql.DB, userID int64) ([]novel.Novel, error) {
	rows, err := db.Query(`SELECT n.novel_id, n.novel_name, n.novel_type_id, t.novel_type_name, n.novel_img, n.novel_penname, n.user_id
		FROM lastet_novel f
		JOIN novel n ON n.novel_id = f.novel_id
		JOIN noveltype t ON t.novel_type_id = n.novel_type_id
		WHERE f.user_id = ?
		ORDER BY n.novel_id ASC`, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	res := []novel.Novel{}
	for rows.Next() {
		var n novel.Novel
		if err := rows.Scan(&n.ID, &n.Name, &n.TypeID, &n.TypeName, &n.Image, &n.Penname, &n.OwnerID); err != nil {
			return nil, err
		}
		res = append(res, n)
	}
	return res, rows.Err()
}

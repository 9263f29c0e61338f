package novel

import "database/sql"

type Chapter struct {
	ID      int64  `json:"chapter_id"`
	NovelID int64  `json:"novel_id"`
	Num     int    `json:"chap_num"`
	Body    string `json:"chap_write"`
}

// CreateChapter inserts a chapter. Duplicate (novel, chap_num) pairs are
// accepted; readers see them in number order regardless.
func CreateChapter(db *sql.DB, novelID int64, num int, body string) (Chapter, error) {
	res, err := db.Exec(`INSERT INTO chapter(novel_id, chap_num, chap_write) VALUES(?,?,?)`,
		novelID, num, body)
	if err != nil {
		return Chapter{}, err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return Chapter{}, err
	}
	return Chapter{ID: id, NovelID: novelID, Num: num, Body: body}, nil
}

func ListChapters(db *sql.DB, novelID int64) ([]Chapter, error) {
	rows, err := db.Query(`SELECT chapter_id, novel_id, chap_num, chap_write FROM chapter WHERE novel_id = ? ORDER BY chap_num ASC`, novelID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	res := []Chapter{}
	for rows.Next() {
		var ch Chapter
		if err := rows.Scan(&ch.ID, &ch.NovelID, &ch.Num, &ch.Body); err != nil {
			return nil, err
		}
		res = append(res, ch)
	}
	return res, rows.Err()
}

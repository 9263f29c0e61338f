package comment

import "database/sql"

type Comment struct {
	ID      int64  `json:"comment_id"`
	NovelID int64  `json:"novel_id"`
	UserID  int64  `json:"user_id"`
	Author  string `json:"user_name"`
	Text    string `json:"com_text"`
}

func Create(db *sql.DB, novelID, userID int64, text string) (Comment, error) {
	res, err := db.Exec(`INSERT INTO comment(novel_id, user_id, com_text) VALUES(?,?,?)`,
		novelID, userID, text)
	if err != nil {
		return Comment{}, err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return Comment{}, err
	}
	return Comment{ID: id, NovelID: novelID, UserID: userID, Text: text}, nil
}

// ListByNovel returns comments with the author's public name joined in.
func ListByNovel(db *sql.DB, novelID int64) ([]Comment, error) {
	rows, err := db.Query(`SELECT c.comment_id, c.novel_id, c.user_id, u.user_name, c.com_text
		FROM comment c JOIN userinfo u ON u.user_id = c.user_id
		WHERE c.novel_id = ?`, novelID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	res := []Comment{}
	for rows.Next() {
		var cm Comment
		if err := rows.Scan(&cm.ID, &cm.NovelID, &cm.UserID, &cm.Author, &cm.Text); err != nil {
			return nil, err
		}
		res = append(res, cm)
	}
	return res, rows.Err()
}

package user

import (
	"database/sql"
	"errors"

	"github.com/mattn/go-sqlite3"
	"golang.org/x/crypto/bcrypt"
)

var (
	ErrDuplicate   = errors.New("user name or email already taken")
	ErrNotFound    = errors.New("user not found")
	ErrBadPassword = errors.New("wrong password")
)

type User struct {
	ID           int64  `json:"user_id"`
	Name         string `json:"user_name"`
	PasswordHash string `json:"-"`
	Email        string `json:"user_email"`
}

// Create registers a new user. Duplicate detection is a single atomic
// insert: the UNIQUE constraints on user_name and user_email decide, so
// there is no check-then-insert race.
func Create(db *sql.DB, name, password, email string) (User, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return User{}, err
	}
	res, err := db.Exec(`INSERT INTO userinfo(user_name, user_pass, user_email) VALUES(?,?,?)`,
		name, string(hash), email)
	if err != nil {
		var se sqlite3.Error
		if errors.As(err, &se) && se.ExtendedCode == sqlite3.ErrConstraintUnique {
			return User{}, ErrDuplicate
		}
		return User{}, err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return User{}, err
	}
	return User{ID: id, Name: name, PasswordHash: string(hash), Email: email}, nil
}

func VerifyLogin(db *sql.DB, name, password string) (User, error) {
	var u User
	err := db.QueryRow(`SELECT user_id, user_name, user_pass, user_email FROM userinfo WHERE user_name = ?`, name).
		Scan(&u.ID, &u.Name, &u.PasswordHash, &u.Email)
	if errors.Is(err, sql.ErrNoRows) {
		return User{}, ErrNotFound
	}
	if err != nil {
		return User{}, err
	}
	if bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password)) != nil {
		return User{}, ErrBadPassword
	}
	return u, nil
}

func GetByID(db *sql.DB, id int64) (User, error) {
	var u User
	err := db.QueryRow(`SELECT user_id, user_name, user_pass, user_email FROM userinfo WHERE user_id = ?`, id).
		Scan(&u.ID, &u.Name, &u.PasswordHash, &u.Email)
	if errors.Is(err, sql.ErrNoRows) {
		return User{}, ErrNotFound
	}
	return u, err
}

func UpdatePassword(db *sql.DB, id int64, password string) error {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	res, err := db.Exec(`UPDATE userinfo SET user_pass = ? WHERE user_id = ?`, string(hash), id)
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

// Delete removes the user and everything hanging off them in one
// transaction: favorites, comments, owned novels and those novels'
// chapters, comments and favorite rows. Invariant: no row ever references
// a missing user or novel.
func Delete(db *sql.DB, id int64) error {
	tx, err := db.Begin()
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback() }()

	stmts := []string{
		`DELETE FROM lastet_novel WHERE user_id = ?1 OR novel_id IN (SELECT novel_id FROM novel WHERE user_id = ?1)`,
		`DELETE FROM comment WHERE user_id = ?1 OR novel_id IN (SELECT novel_id FROM novel WHERE user_id = ?1)`,
		`DELETE FROM chapter WHERE novel_id IN (SELECT novel_id FROM novel WHERE user_id = ?1)`,
		`DELETE FROM novel WHERE user_id = ?1`,
	}
	for _, s := range stmts {
		if _, err := tx.Exec(s, id); err != nil {
			return err
		}
	}

	res, err := tx.Exec(`DELETE FROM userinfo WHERE user_id = ?1`, id)
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
	return tx.Commit()
}

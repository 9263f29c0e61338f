package favorite

import (
	"database/sql"
	"testing"

	"github.com/stretchr/testify/require"

	"novelhub/internal/novel"
	"novelhub/pkg/database"
)

func openTestDB(t *testing.T) (*sql.DB, int64, int64) {
	t.Helper()
	db, err := database.Open(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	require.NoError(t, database.Migrate(db))
	_, err = database.SeedNovelTypes(db, database.DefaultNovelTypes)
	require.NoError(t, err)

	res, err := db.Exec(`INSERT INTO userinfo(user_name, user_pass, user_email) VALUES('alice', 'x', 'a@x.com')`)
	require.NoError(t, err)
	userID, err := res.LastInsertId()
	require.NoError(t, err)

	n, err := novel.Create(db, "Novel", 1, "a.jpg", "pen", userID)
	require.NoError(t, err)

	return db, userID, n.ID
}

func favoriteCount(t *testing.T, db *sql.DB) int {
	t.Helper()
	var count int
	require.NoError(t, db.QueryRow(`SELECT COUNT(*) FROM lastet_novel`).Scan(&count))
	return count
}

func TestAddIsIdempotent(t *testing.T) {
	db, userID, novelID := openTestDB(t)

	require.NoError(t, Add(db, userID, novelID))
	require.NoError(t, Add(db, userID, novelID))
	require.Equal(t, 1, favoriteCount(t, db))

	found, err := Exists(db, userID, novelID)
	require.NoError(t, err)
	require.True(t, found)
}

func TestRemoveMissing(t *testing.T) {
	db, userID, novelID := openTestDB(t)

	require.ErrorIs(t, Remove(db, userID, novelID), ErrNotFound)
	require.Equal(t, 0, favoriteCount(t, db))

	require.NoError(t, Add(db, userID, novelID))
	require.NoError(t, Remove(db, userID, novelID))
	require.ErrorIs(t, Remove(db, userID, novelID), ErrNotFound)
}

func TestExistsMissing(t *testing.T) {
	db, userID, novelID := openTestDB(t)

	found, err := Exists(db, userID, novelID)
	require.NoError(t, err)
	require.False(t, found)
}

func TestListByUser(t *testing.T) {
	db, userID, novelID := openTestDB(t)

	novels, err := ListByUser(db, userID)
	require.NoError(t, err)
	require.Empty(t, novels)

	require.NoError(t, Add(db, userID, novelID))

	novels, err = ListByUser(db, userID)
	require.NoError(t, err)
	require.Len(t, novels, 1)
	require.Equal(t, novelID, novels[0].ID)
	require.Equal(t, "Fantasy", novels[0].TypeName)
}

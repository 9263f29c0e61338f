package main

import (
	"bytes"
	"database/sql"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"

	"novelhub/internal/config"
	"novelhub/internal/storage"
	"novelhub/pkg/database"
)

func newTestServer(t *testing.T) (*gin.Engine, *sql.DB, *storage.ImageStore) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db, err := database.Open(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	require.NoError(t, database.Migrate(db))
	_, err = database.SeedNovelTypes(db, database.DefaultNovelTypes)
	require.NoError(t, err)

	images, err := storage.NewImageStore(t.TempDir())
	require.NoError(t, err)

	cfg := &config.Config{
		JWT: config.JWTConfig{Secret: "test-secret", Expire: time.Hour},
	}
	return newRouter(cfg, db, images), db, images
}

func doJSON(t *testing.T, r *gin.Engine, method, path string, body any, token string) *httptest.ResponseRecorder {
	t.Helper()
	var reader io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(b)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func registerAndLogin(t *testing.T, r *gin.Engine, name, pass, email string) string {
	t.Helper()
	w := doJSON(t, r, http.MethodPost, "/register", gin.H{
		"user_name": name, "user_pass": pass, "user_email": email,
	}, "")
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	w = doJSON(t, r, http.MethodPost, "/login", gin.H{
		"user_name": name, "user_pass": pass,
	}, "")
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var resp struct {
		Token string `json:"token"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.NotEmpty(t, resp.Token)
	return resp.Token
}

func doMultipartNovel(t *testing.T, r *gin.Engine, token, name, typeID, penname string, withFile bool) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	require.NoError(t, mw.WriteField("novel_name", name))
	require.NoError(t, mw.WriteField("novel_type_id", typeID))
	require.NoError(t, mw.WriteField("novel_penname", penname))
	if withFile {
		fw, err := mw.CreateFormFile("novel_img", "cover.jpg")
		require.NoError(t, err)
		_, err = fw.Write([]byte("fake jpeg bytes"))
		require.NoError(t, err)
	}
	require.NoError(t, mw.Close())

	req := httptest.NewRequest(http.MethodPost, "/novel", &buf)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func countRows(t *testing.T, db *sql.DB, table string) int {
	t.Helper()
	var count int
	require.NoError(t, db.QueryRow(fmt.Sprintf(`SELECT COUNT(*) FROM %s`, table)).Scan(&count))
	return count
}

package auth

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
)

var testSecret = []byte("test-secret")

func TestSignAndParse(t *testing.T) {
	token, err := SignToken(testSecret, 7, "alice", time.Hour)
	require.NoError(t, err)

	claims, err := ParseToken(testSecret, token)
	require.NoError(t, err)
	require.Equal(t, int64(7), claims.UserID)
	require.Equal(t, "alice", claims.Username)
}

func TestParseWrongSecret(t *testing.T) {
	token, err := SignToken(testSecret, 7, "alice", time.Hour)
	require.NoError(t, err)

	_, err = ParseToken([]byte("other-secret"), token)
	require.Error(t, err)
}

func TestParseExpired(t *testing.T) {
	token, err := SignToken(testSecret, 7, "alice", -time.Minute)
	require.NoError(t, err)

	_, err = ParseToken(testSecret, token)
	require.Error(t, err)
}

func newMiddlewareRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/whoami", RequireToken(testSecret), func(c *gin.Context) {
		c.JSON(200, gin.H{"user_id": c.GetInt64(CtxUserIDKey), "user_name": c.GetString(CtxUsernameKey)})
	})
	return r
}

func TestRequireTokenRejectsAnonymous(t *testing.T) {
	r := newMiddlewareRouter()

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/whoami", nil))
	require.Equal(t, http.StatusUnauthorized, w.Code)

	w = httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/whoami", nil)
	req.Header.Set("Authorization", "Bearer not-a-token")
	r.ServeHTTP(w, req)
	require.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestRequireTokenBindsIdentity(t *testing.T) {
	r := newMiddlewareRouter()

	token, err := SignToken(testSecret, 7, "alice", time.Hour)
	require.NoError(t, err)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/whoami", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	require.JSONEq(t, `{"user_id": 7, "user_name": "alice"}`, w.Body.String())
}

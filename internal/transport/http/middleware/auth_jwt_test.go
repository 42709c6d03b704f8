package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/R15hav/blog/internal/core/auth"
)

func authEngine(j *auth.JWTer, requireRole string) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/whoami", AuthJWT(j, requireRole), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"userId": c.GetString("userId"),
			"role":   c.GetString("role"),
		})
	})
	return r
}

func TestAuthJWT_MissingToken(t *testing.T) {
	j := &auth.JWTer{Secret: []byte("s"), Issuer: "blog-api", TTL: time.Minute}
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/whoami", nil)
	authEngine(j, "").ServeHTTP(w, req)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAuthJWT_InvalidToken(t *testing.T) {
	j := &auth.JWTer{Secret: []byte("s"), Issuer: "blog-api", TTL: time.Minute}
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/whoami", nil)
	req.Header.Set("Authorization", "Bearer garbage")
	authEngine(j, "").ServeHTTP(w, req)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAuthJWT_SetsIdentity(t *testing.T) {
	j := &auth.JWTer{Secret: []byte("s"), Issuer: "blog-api", TTL: time.Minute}
	tok, err := j.Issue("user-7", "user")
	require.NoError(t, err)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/whoami", nil)
	req.Header.Set("Authorization", "Bearer "+tok)
	authEngine(j, "").ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "user-7")
}

func TestAuthJWT_RoleGate(t *testing.T) {
	j := &auth.JWTer{Secret: []byte("s"), Issuer: "blog-api", TTL: time.Minute}
	tok, err := j.Issue("user-7", "user")
	require.NoError(t, err)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/whoami", nil)
	req.Header.Set("Authorization", "Bearer "+tok)
	authEngine(j, "admin").ServeHTTP(w, req)

	assert.Equal(t, http.StatusForbidden, w.Code)
}

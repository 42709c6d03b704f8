package auth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIssueAndParse(t *testing.T) {
	j := &JWTer{Secret: []byte("test-secret"), Issuer: "blog-api", TTL: time.Minute}

	tok, err := j.Issue("user-1", "user")
	require.NoError(t, err)
	require.NotEmpty(t, tok)

	claims, err := j.Parse(tok)
	require.NoError(t, err)
	assert.Equal(t, "user-1", claims.UID)
	assert.Equal(t, "user", claims.Role)
	assert.Equal(t, "blog-api", claims.Issuer)
}

func TestParse_WrongSecret(t *testing.T) {
	j := &JWTer{Secret: []byte("secret-a"), Issuer: "blog-api", TTL: time.Minute}
	other := &JWTer{Secret: []byte("secret-b"), Issuer: "blog-api", TTL: time.Minute}

	tok, err := j.Issue("user-1", "user")
	require.NoError(t, err)

	_, err = other.Parse(tok)
	assert.Error(t, err)
}

func TestParse_WrongIssuer(t *testing.T) {
	j := &JWTer{Secret: []byte("s"), Issuer: "someone-else", TTL: time.Minute}
	v := &JWTer{Secret: []byte("s"), Issuer: "blog-api", TTL: time.Minute}

	tok, err := j.Issue("user-1", "user")
	require.NoError(t, err)

	_, err = v.Parse(tok)
	assert.Error(t, err)
}

func TestParse_Expired(t *testing.T) {
	// 过期超出 60s leeway
	j := &JWTer{Secret: []byte("s"), Issuer: "blog-api", TTL: -2 * time.Minute}

	tok, err := j.Issue("user-1", "user")
	require.NoError(t, err)

	_, err = j.Parse(tok)
	assert.Error(t, err)
}

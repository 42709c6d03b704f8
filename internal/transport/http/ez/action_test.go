package ez

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/R15hav/blog/internal/domain"
	resp "github.com/R15hav/blog/internal/transport/http/response"
)

func TestStatusOf(t *testing.T) {
	assert.Equal(t, http.StatusBadRequest, StatusOf(domain.Invalid("x", nil)))
	assert.Equal(t, http.StatusUnauthorized, StatusOf(domain.Unauthorized("x")))
	assert.Equal(t, http.StatusForbidden, StatusOf(domain.Forbidden("x")))
	assert.Equal(t, http.StatusNotFound, StatusOf(domain.NotFound("x")))
	assert.Equal(t, http.StatusInternalServerError, StatusOf(domain.Internal("x", nil)))
	assert.Equal(t, http.StatusInternalServerError, StatusOf(errors.New("plain")))
}

func renderTo(t *testing.T, err error) (int, resp.Resp) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/", nil)

	Render(c, err)

	var body resp.Resp
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	return w.Code, body
}

func TestRender_ClientErrorKeepsMessage(t *testing.T) {
	code, body := renderTo(t, domain.Invalid("invalid created_date", errors.New("cannot parse")))
	assert.Equal(t, http.StatusBadRequest, code)
	assert.Equal(t, resp.CodeBadRequest, body.Code)
	assert.Equal(t, "invalid created_date: cannot parse", body.Msg)
}

func TestRender_InternalHidesCause(t *testing.T) {
	code, body := renderTo(t, domain.Internal("create article failed", errors.New("pq: connection refused")))
	assert.Equal(t, http.StatusInternalServerError, code)
	assert.Equal(t, resp.CodeServerError, body.Code)
	assert.Equal(t, "create article failed", body.Msg)
	assert.NotContains(t, body.Msg, "connection refused")
}

func TestRender_NotFoundAndForbidden(t *testing.T) {
	code, body := renderTo(t, domain.NotFound("article not found"))
	assert.Equal(t, http.StatusNotFound, code)
	assert.Equal(t, "article not found", body.Msg)

	code, body = renderTo(t, domain.Forbidden("not authorized to delete this article"))
	assert.Equal(t, http.StatusForbidden, code)
	assert.Equal(t, "not authorized to delete this article", body.Msg)
}

package search

import (
	"net/http"

	"github.com/gin-gonic/gin"

	resp "github.com/R15hav/blog/internal/transport/http/response"
)

// Module 目前只是回显占位，真正的检索还没做
type Module struct{}

func (Module) Priority() int { return 10 }

func (Module) MountAPI(g *gin.RouterGroup) {
	g.GET("/search", func(c *gin.Context) {
		q := c.Query("q")
		if q == "" {
			c.JSON(http.StatusBadRequest, resp.Error(resp.CodeBadRequest, "Query parameter 'q' is required"))
			return
		}
		c.JSON(http.StatusOK, resp.OK(gin.H{"message": "Search results for query: " + q}))
	})
}

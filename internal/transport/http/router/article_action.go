package router

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/R15hav/blog/internal/feature/article"
	"github.com/R15hav/blog/internal/repo"
	httpez "github.com/R15hav/blog/internal/transport/http/ez"
)

// caller 把 JWT 中间件放进上下文的 userId 包成最小身份
type caller struct{ id string }

func (c caller) UserID() string { return c.id }

func callerOf(c *gin.Context) caller { return caller{id: c.GetString("userId")} }

// mountArticleActions 文章读写全部走 service 层；写操作一次一个事务
func mountArticleActions(api, authed *gin.RouterGroup, db *gorm.DB) {
	ezPublic := httpez.New(api)
	ezAuth := httpez.New(authed)

	// POST /articles
	httpez.RegisterAction[article.Input, *article.View](ezAuth, db, httpez.Action[article.Input, *article.View]{
		Method: http.MethodPost,
		Path:   "/articles",
		Binder: httpez.BindJSON,
		Auth:   true,
		UseTx:  true,
		Handler: func(c *gin.Context, tx *gorm.DB, in *article.Input) (*article.View, error) {
			return article.Create(repo.NewArticleRepo(tx), callerOf(c), in)
		},
	})

	// GET /articles（公开，无分页）
	httpez.RegisterAction[struct{}, []article.View](ezPublic, db, httpez.Action[struct{}, []article.View]{
		Method: http.MethodGet,
		Path:   "/articles",
		Binder: httpez.BindNone,
		Handler: func(c *gin.Context, tx *gorm.DB, _ *struct{}) ([]article.View, error) {
			return article.List(repo.NewArticleRepo(tx))
		},
	})

	// GET /articles/:id（公开）
	httpez.RegisterAction[struct{}, *article.View](ezPublic, db, httpez.Action[struct{}, *article.View]{
		Method: http.MethodGet,
		Path:   "/articles/:id",
		Binder: httpez.BindNone,
		Handler: func(c *gin.Context, tx *gorm.DB, _ *struct{}) (*article.View, error) {
			return article.GetByID(repo.NewArticleRepo(tx), c.Param("id"))
		},
	})

	// PUT /articles/:id
	httpez.RegisterAction[article.Input, *article.View](ezAuth, db, httpez.Action[article.Input, *article.View]{
		Method: http.MethodPut,
		Path:   "/articles/:id",
		Binder: httpez.BindJSON,
		Auth:   true,
		UseTx:  true,
		Handler: func(c *gin.Context, tx *gorm.DB, in *article.Input) (*article.View, error) {
			return article.Update(repo.NewArticleRepo(tx), callerOf(c), c.Param("id"), in)
		},
	})

	// DELETE /articles/:id
	httpez.RegisterAction[struct{}, *article.Ack](ezAuth, db, httpez.Action[struct{}, *article.Ack]{
		Method: http.MethodDelete,
		Path:   "/articles/:id",
		Binder: httpez.BindNone,
		Auth:   true,
		UseTx:  true,
		Handler: func(c *gin.Context, tx *gorm.DB, _ *struct{}) (*article.Ack, error) {
			return article.Delete(repo.NewArticleRepo(tx), callerOf(c), c.Param("id"))
		},
	})
}

package router

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/R15hav/blog/internal/domain"
	"github.com/R15hav/blog/internal/feature/article"
	"github.com/R15hav/blog/internal/repo"
	httpez "github.com/R15hav/blog/internal/transport/http/ez"
)

// mountAdminActions 管理端接口。注意：这里没有文章写接口，
// 文章的增删改只走拥有者校验的 service 路径。
func mountAdminActions(admin *gin.RouterGroup, db *gorm.DB) {
	ez := httpez.New(admin)

	// --- GET /admin/v1/users 用户列表 ---
	type listQ struct {
		Offset      int    `form:"offset,default=0"`
		Limit       int    `form:"limit,default=20"`
		Q           string `form:"q"`            // 按 email/name 模糊搜
		WithDeleted bool   `form:"with_deleted"` // 是否包含软删
	}
	type listOut struct {
		Total int64     `json:"total"`
		Items []userOut `json:"items"`
	}
	httpez.RegisterAction[listQ, listOut](ez, db, httpez.Action[listQ, listOut]{
		Method: http.MethodGet,
		Path:   "/users",
		Binder: httpez.BindQuery,
		Handler: func(c *gin.Context, tx *gorm.DB, in *listQ) (listOut, error) {
			if in.Limit <= 0 || in.Limit > 100 {
				in.Limit = 20
			}
			users, total, err := repo.NewUserRepo(tx).List(domain.UserQuery{
				Offset:      in.Offset,
				Limit:       in.Limit,
				Keyword:     in.Q,
				WithDeleted: in.WithDeleted,
			})
			if err != nil {
				return listOut{}, domain.Internal("list users failed", err)
			}
			out := listOut{Total: total, Items: make([]userOut, 0, len(users))}
			for _, u := range users {
				out.Items = append(out.Items, userOut{ID: u.ID, Email: u.Email, Name: u.Name, Role: u.Role})
			}
			return out, nil
		},
	})

	// --- POST /admin/v1/users/:id/ban 封禁（软删） ---
	httpez.RegisterAction[struct{}, gin.H](ez, db, httpez.Action[struct{}, gin.H]{
		Method: http.MethodPost,
		Path:   "/users/:id/ban",
		Binder: httpez.BindNone,
		UseTx:  true,
		Handler: func(c *gin.Context, tx *gorm.DB, _ *struct{}) (gin.H, error) {
			id := c.Param("id")
			if id == "" {
				return nil, domain.Invalid("missing id", nil)
			}
			if err := repo.NewUserRepo(tx).SoftDelete(id); err != nil {
				if errors.Is(err, gorm.ErrRecordNotFound) {
					return nil, domain.NotFound("user not found")
				}
				return nil, domain.Internal("ban user failed", err)
			}
			return gin.H{"id": id}, nil
		},
	})

	// --- GET /admin/v1/articles 全量文章（只读） ---
	httpez.RegisterAction[struct{}, []article.View](ez, db, httpez.Action[struct{}, []article.View]{
		Method: http.MethodGet,
		Path:   "/articles",
		Binder: httpez.BindNone,
		Handler: func(c *gin.Context, tx *gorm.DB, _ *struct{}) ([]article.View, error) {
			return article.List(repo.NewArticleRepo(tx))
		},
	})
}

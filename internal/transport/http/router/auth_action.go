package router

import (
	"context"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/R15hav/blog/internal/core/auth"
	"github.com/R15hav/blog/internal/core/cache"
	"github.com/R15hav/blog/internal/domain"
	"github.com/R15hav/blog/internal/repo"
	httpez "github.com/R15hav/blog/internal/transport/http/ez"
	"github.com/R15hav/blog/pkg/utils"
)

type userOut struct {
	ID    string `json:"id"`
	Email string `json:"email"`
	Name  string `json:"name"`
	Role  string `json:"role"`
}

// mountAuthActions 挂载 /auth/login（公共）和 /me（鉴权）
func mountAuthActions(api, authed *gin.RouterGroup, db *gorm.DB, jwter *auth.JWTer, rdb *cache.Cache) {
	ezPublic := httpez.New(api)

	// /auth/login：查不到就自动注册 + 发 JWT
	type loginIn struct {
		Email    string `json:"email"    binding:"required,email"`
		Password string `json:"password" binding:"required"`
		Name     string `json:"name"     binding:"omitempty,max=64"` // 首次注册可用
	}
	type loginOut struct {
		Token string  `json:"token"`
		IsNew bool    `json:"isNew"`
		User  userOut `json:"user"`
	}
	httpez.RegisterAction[loginIn, loginOut](ezPublic, db, httpez.Action[loginIn, loginOut]{
		Method: http.MethodPost,
		Path:   "/auth/login",
		Binder: httpez.BindJSON,
		UseTx:  true,
		Handler: func(c *gin.Context, tx *gorm.DB, in *loginIn) (loginOut, error) {
			users := repo.NewUserRepo(tx)
			email := strings.TrimSpace(in.Email)
			name := strings.TrimSpace(in.Name)

			u, err := users.FindByEmail(email)
			if err != nil {
				return loginOut{}, domain.Internal("login failed", err)
			}

			isNew := false
			if u == nil {
				// 自动注册
				if name == "" {
					if at := strings.IndexByte(email, '@'); at > 0 {
						name = email[:at]
					} else {
						name = "user"
					}
				}
				u = &domain.User{
					ID:           utils.NewID(),
					Email:        email,
					Name:         name,
					PasswordHash: utils.HashPassword(in.Password),
					Role:         "user",
				}
				if e := users.Create(u); e != nil {
					// 并发兜底：唯一冲突 → 再查一次
					if !isDupKey(e) {
						return loginOut{}, domain.Internal("register failed", e)
					}
					if u, e = users.FindByEmail(email); e != nil || u == nil {
						return loginOut{}, domain.Internal("login failed", e)
					}
				} else {
					isNew = true
				}
			}
			if !isNew && !utils.CheckPassword(in.Password, u.PasswordHash) {
				return loginOut{}, domain.Unauthorized("invalid credentials")
			}

			tok, e := jwter.Issue(u.ID, u.Role)
			if e != nil || tok == "" {
				return loginOut{}, domain.Internal("issue token failed", e)
			}
			return loginOut{
				Token: tok, IsNew: isNew,
				User: userOut{ID: u.ID, Email: u.Email, Name: u.Name, Role: u.Role},
			}, nil
		},
	})

	// /me：经 redis 读穿缓存取个人档案（文章读写不走缓存）
	ezAuth := httpez.New(authed)
	httpez.RegisterAction[struct{}, *userOut](ezAuth, db, httpez.Action[struct{}, *userOut]{
		Method: http.MethodGet,
		Path:   "/me",
		Binder: httpez.BindNone,
		Auth:   true,
		Handler: func(c *gin.Context, tx *gorm.DB, _ *struct{}) (*userOut, error) {
			uid := c.GetString("userId")
			load := func(context.Context) (*userOut, error) {
				u, err := repo.NewUserRepo(tx).FindByID(uid)
				if err != nil {
					return nil, domain.Internal("load user failed", err)
				}
				if u == nil {
					return nil, domain.NotFound("user not found")
				}
				return &userOut{ID: u.ID, Email: u.Email, Name: u.Name, Role: u.Role}, nil
			}
			if rdb == nil {
				return load(c)
			}
			out, err := cache.GetOrLoadJSON[userOut](rdb, c, "user:"+uid, 5*time.Minute, load)
			if err != nil {
				return nil, err
			}
			if out == nil {
				return nil, domain.NotFound("user not found")
			}
			return out, nil
		},
	})
}

func isDupKey(err error) bool {
	// 不依赖 gorm.ErrDuplicatedKey，避免驱动差异
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "duplicate") ||
		strings.Contains(msg, "unique constraint") ||
		strings.Contains(msg, "unique violation") ||
		strings.Contains(msg, "duplicate key")
}

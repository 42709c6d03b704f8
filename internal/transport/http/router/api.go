package router

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/R15hav/blog/internal/core/auth"
	"github.com/R15hav/blog/internal/core/cache"
	mdw "github.com/R15hav/blog/internal/transport/http/middleware"
)

// NewAPIEngine 用户端引擎：公共读 + 鉴权写
func NewAPIEngine(l *zap.Logger, db *gorm.DB, jwter *auth.JWTer, rdb *cache.Cache, corsOrigins []string) *gin.Engine {
	r := gin.New()

	// 中间件
	r.Use(
		mdw.RequestID(),
		mdw.ConcurrencyLimit(300),
		mdw.MaxBodyBytes(16<<20),
		mdw.Timeout(10*time.Second),
		mdw.SimpleRecovery(),
		mdw.Metrics(),
		mdw.AccessLog(l),
		corsFor(corsOrigins),
	)

	// 健康检查 + 指标
	r.GET("/health", func(c *gin.Context) { c.JSON(http.StatusOK, gin.H{"ok": 1}) })
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	api := r.Group("/api/v1")

	// 统一注册器挂载的模块（search 等）
	MountAllAPI(api)

	// 鉴权分组（写操作必须挂这里，才能拿到 userId）
	authed := api.Group("")
	authed.Use(mdw.AuthJWT(jwter, ""))

	mountAuthActions(api, authed, db, jwter, rdb)
	mountArticleActions(api, authed, db)

	return r
}

// corsFor 只放行配置里声明的前端来源
func corsFor(origins []string) gin.HandlerFunc {
	if len(origins) == 0 {
		return cors.Default()
	}
	cfg := cors.DefaultConfig()
	cfg.AllowOrigins = origins
	cfg.AllowCredentials = true
	cfg.AllowHeaders = append(cfg.AllowHeaders, "Authorization")
	return cors.New(cfg)
}

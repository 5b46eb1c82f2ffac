// Package router 管理路由配置，将目录服务的处理器绑定到 gin 引擎.
package router

import (
	"github.com/gin-gonic/gin"

	appcache "github.com/chrisgzf/cadet/pkg/cache"
	"github.com/chrisgzf/cadet/pkg/internal/storage"
	"github.com/chrisgzf/cadet/pkg/middleware"
)

// Register 绑定全部业务路由到 /api/v1。
// 读路由套响应缓存（mgr 带 KV 时），写路由直连服务层。
func Register(r *gin.Engine, mgr *storage.Manager) {
	v1 := r.Group("/api/v1")

	var cacheMW gin.HandlerFunc
	if kvc := mgr.GetKVClient(); kvc != nil {
		cacheMW = middleware.CacheMiddleware(middleware.DefaultCacheConfig(appcache.NewCache(kvc)))
	}

	RegisterGroupsRoutes(v1, cacheMW)
	RegisterCategoriesRoutes(v1, cacheMW)
	RegisterMaterialsRoutes(v1)
	RegisterSourcecastsRoutes(v1, cacheMW)
	RegisterHealthCheckRoute(v1)
	RegisterSchedulerRoutes(v1)
}

// withCache 在缓存中间件可用时把它插到 handler 前面.
func withCache(cacheMW gin.HandlerFunc, h gin.HandlerFunc) []gin.HandlerFunc {
	if cacheMW == nil {
		return []gin.HandlerFunc{h}
	}

	return []gin.HandlerFunc{cacheMW, h}
}

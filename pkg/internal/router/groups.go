package router

import (
	"github.com/gin-gonic/gin"

	"github.com/chrisgzf/cadet/pkg/internal/handle"
)

// RegisterGroupsRoutes 注册讨论组相关路由.
func RegisterGroupsRoutes(g *gin.RouterGroup, cacheMW gin.HandlerFunc) {
	groupRoutes := g.Group("/groups")
	{
		// 按名字覆盖属性
		groupRoutes.PUT("", handle.UpsertGroup)
		// 幂等获取或创建
		groupRoutes.POST("", handle.GetOrCreateGroup)
		groupRoutes.GET("", withCache(cacheMW, handle.ListGroups)...)
	}
}

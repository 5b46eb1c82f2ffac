package router

import (
	"github.com/gin-gonic/gin"

	"github.com/chrisgzf/cadet/pkg/internal/handle"
)

// RegisterCategoriesRoutes 注册目录树相关路由.
func RegisterCategoriesRoutes(g *gin.RouterGroup, cacheMW gin.HandlerFunc) {
	categoryRoutes := g.Group("/categories")
	{
		categoryRoutes.POST("", handle.CreateFolder)
		// 根层级内容，必须注册在 /:id 之前
		categoryRoutes.GET("/root", withCache(cacheMW, handle.ListRootFolder)...)
		categoryRoutes.GET("/:id", withCache(cacheMW, handle.ListFolder)...)
		categoryRoutes.GET("/:id/path", withCache(cacheMW, handle.AncestorChain)...)
		categoryRoutes.DELETE("/:id", handle.DeleteFolder)
	}
}

package router

import (
	"github.com/gin-gonic/gin"

	"github.com/chrisgzf/cadet/pkg/internal/handle"
)

// RegisterSourcecastsRoutes 注册录播相关路由.
func RegisterSourcecastsRoutes(g *gin.RouterGroup, cacheMW gin.HandlerFunc) {
	sourcecastRoutes := g.Group("/sourcecasts")
	{
		sourcecastRoutes.POST("", handle.UploadSourcecast)
		sourcecastRoutes.GET("", withCache(cacheMW, handle.ListSourcecasts)...)
		sourcecastRoutes.DELETE("/:id", handle.DeleteSourcecast)
	}
}

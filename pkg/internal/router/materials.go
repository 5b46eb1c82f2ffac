package router

import (
	"github.com/gin-gonic/gin"

	"github.com/chrisgzf/cadet/pkg/internal/handle"
)

// RegisterMaterialsRoutes 注册资料相关路由.
// 资料的读取走目录列表接口，这里只有写路径.
func RegisterMaterialsRoutes(g *gin.RouterGroup) {
	materialRoutes := g.Group("/materials")
	{
		materialRoutes.POST("", handle.UploadMaterial)
		materialRoutes.DELETE("/:id", handle.DeleteMaterial)
	}
}

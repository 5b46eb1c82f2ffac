package middleware

import (
	"github.com/gin-gonic/gin"

	"github.com/chrisgzf/cadet/pkg/context"
	"github.com/chrisgzf/cadet/pkg/internal/storage"
)

// StorageMiddleware 将存储管理器注入到 request.Context，供下游 handler 构建服务.
func StorageMiddleware(manager *storage.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := context.WithStorageManager(c.Request.Context(), manager)
		c.Request = c.Request.WithContext(ctx)
		c.Next()
	}
}

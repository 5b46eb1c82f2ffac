// Package api 汇总对外HTTP接口的注册入口.
package api

import (
	"github.com/gin-gonic/gin"

	"github.com/chrisgzf/cadet/pkg/internal/router"
	"github.com/chrisgzf/cadet/pkg/internal/storage"
)

// RegisterRoutes 注册目录服务的全部路由到传入的 gin 引擎.
func RegisterRoutes(e *gin.Engine, mgr *storage.Manager) *gin.Engine {
	router.Register(e, mgr)
	router.RegisterSwaggerRoute(e)

	return e
}

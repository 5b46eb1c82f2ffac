package router

import (
	"github.com/gin-gonic/gin"

	"github.com/chrisgzf/cadet/pkg/internal/handle"
	"github.com/chrisgzf/cadet/pkg/internal/model"
	"github.com/chrisgzf/cadet/pkg/middleware"
)

// RegisterSchedulerRoutes 注册后台任务相关路由，仅 admin 可见.
func RegisterSchedulerRoutes(g *gin.RouterGroup) {
	schedRoutes := g.Group("/scheduler", middleware.RequireMinRole(model.RoleAdmin))
	{
		schedRoutes.GET("/jobs", handle.SchedulerJobs)
		schedRoutes.GET("/jobs/:name", handle.SchedulerJob)
		schedRoutes.DELETE("/jobs/:name", handle.SchedulerRemoveJob)
	}
}

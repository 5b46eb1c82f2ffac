package middleware

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/chrisgzf/cadet/pkg/configs"
)

// CORSMiddleware CORS中间件.
func CORSMiddleware(cfg configs.ServerConfig) gin.HandlerFunc {
	config := cors.DefaultConfig()
	config.AllowOrigins = []string{"*"}

	config.AllowWebSockets = true
	config.AllowFiles = true
	// 身份与角色头需要放行，否则浏览器预检会拦掉 X-Role
	config.AddAllowHeaders("X-Role", "X-Auth-Request-Email", "X-Forwarded-Email", "X-Cache-Bypass")

	if cfg.Debug {
		config.AllowAllOrigins = true
	}

	return cors.New(config)
}

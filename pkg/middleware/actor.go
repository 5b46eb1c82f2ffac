// Package middleware 提供认证、身份注入与通用 HTTP 中间件。
package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/chrisgzf/cadet/pkg/internal/model"
)

type actorKey struct{}

// requestEmail 从 oauth2-proxy 注入的请求头解析身份邮箱。
func requestEmail(c *gin.Context) string {
	email := strings.TrimSpace(c.GetHeader("X-Auth-Request-Email"))
	if email == "" {
		email = strings.TrimSpace(c.GetHeader("X-Forwarded-Email"))
	}

	return email
}

// ActorMiddleware 解析请求身份（邮箱 + X-Role 角色头）并注入到
// gin.Context 和 request.Context。未携带角色头时降级为 student。
func ActorMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		username := requestEmail(c)
		if username == "" {
			// 开发模式下 AuthMiddleware 可能放行了 ?user= 请求
			username = strings.TrimSpace(c.Query("user"))
		}

		actor := model.Actor{
			Username: username,
			Role:     model.ParseRole(c.GetHeader("X-Role")),
		}

		c.Set("actor", actor)
		ctx := context.WithValue(c.Request.Context(), actorKey{}, actor)
		c.Request = c.Request.WithContext(ctx)
		c.Next()
	}
}

// GetActor 从 gin.Context 获取当前请求的操作者。
func GetActor(c *gin.Context) model.Actor {
	if v, ok := c.Get("actor"); ok {
		if a, ok2 := v.(model.Actor); ok2 {
			return a
		}
	}
	// 回退到 request context
	if v := c.Request.Context().Value(actorKey{}); v != nil {
		if a, ok := v.(model.Actor); ok {
			return a
		}
	}

	return model.Actor{Role: model.RoleStudent}
}

// RequireMinRole 要求最小角色，不满足则返回 403。
// 枚举数值越大权限越高，直接用自然顺序比较。
func RequireMinRole(minRole model.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		if GetActor(c).Role < minRole {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "forbidden: insufficient role"})
			return
		}

		c.Next()
	}
}

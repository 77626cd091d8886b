package middleware

import (
	"strings"

	"editorial/internal/logger"
	"editorial/pkg/auth"
	"editorial/pkg/response"

	"github.com/gin-gonic/gin"
)

// JWTAuth JWT认证中间件，解析访问令牌并把用户身份写入上下文
func JWTAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			response.Unauthorized(c, "请先登录")
			c.Abort()
			return
		}

		parts := strings.SplitN(authHeader, " ", 2)
		if !(len(parts) == 2 && parts[0] == "Bearer") {
			response.Unauthorized(c, "Authorization格式错误")
			c.Abort()
			return
		}

		claims, err := auth.ParseToken(parts[1])
		if err != nil {
			logger.GetSugaredLogger().Warnf("无效的令牌: %v", err)
			response.Unauthorized(c, "无效的令牌")
			c.Abort()
			return
		}
		if claims.Type != auth.AccessToken {
			response.Unauthorized(c, "需要访问令牌")
			c.Abort()
			return
		}

		c.Set("userID", claims.UserID)
		c.Set("userRole", claims.Role)
		c.Next()
	}
}

// AdminAuth 管理员权限中间件，需在JWTAuth之后使用
func AdminAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		if GetUserRole(c) != "admin" {
			response.Forbidden(c, "需要管理员权限")
			c.Abort()
			return
		}
		c.Next()
	}
}

// GetUserID 从上下文取当前用户ID，未登录返回0
func GetUserID(c *gin.Context) uint {
	if v, exists := c.Get("userID"); exists {
		if id, ok := v.(uint); ok {
			return id
		}
	}
	return 0
}

// GetUserRole 从上下文取当前用户角色
func GetUserRole(c *gin.Context) string {
	if v, exists := c.Get("userRole"); exists {
		if role, ok := v.(string); ok {
			return role
		}
	}
	return ""
}

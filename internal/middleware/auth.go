package middleware

import (
	"strings"

	"planner-go/internal/permission"
	"planner-go/internal/utils"

	"github.com/gin-gonic/gin"
)

// 访问Token的Cookie名(Bearer头缺失时回退)
const AccessTokenCookie = "access_token"

// AuthMiddleware JWT认证中间件
func AuthMiddleware(jwtManager *utils.JWTManager) gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString := extractToken(c)
		if tokenString == "" {
			utils.Unauthorized(c, "未认证")
			c.Abort()
			return
		}

		// 验证Token
		claims, err := jwtManager.ValidateToken(tokenString, utils.TokenTypeAccess)
		if err != nil {
			utils.Unauthorized(c, "Token无效或已过期")
			c.Abort()
			return
		}

		// 将用户信息存入上下文
		c.Set("user_id", claims.UserID)
		c.Set("username", claims.Username)
		c.Set("is_admin", claims.IsAdmin)

		c.Next()
	}
}

// extractToken 从Authorization头或Cookie提取Token
func extractToken(c *gin.Context) string {
	authHeader := c.GetHeader("Authorization")
	if authHeader != "" {
		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) == 2 && parts[0] == "Bearer" {
			return parts[1]
		}
		return ""
	}

	// Cookie回退
	cookie, err := c.Cookie(AccessTokenCookie)
	if err != nil {
		return ""
	}
	return cookie
}

// GetUserID 从上下文获取用户ID
func GetUserID(c *gin.Context) (uint, bool) {
	userID, exists := c.Get("user_id")
	if !exists {
		return 0, false
	}
	return userID.(uint), true
}

// GetUsername 从上下文获取用户名
func GetUsername(c *gin.Context) (string, bool) {
	username, exists := c.Get("username")
	if !exists {
		return "", false
	}
	return username.(string), true
}

// IsAdmin 从上下文判断是否为管理员
func IsAdmin(c *gin.Context) bool {
	isAdmin, exists := c.Get("is_admin")
	if !exists {
		return false
	}
	return isAdmin.(bool)
}

// GetCaller 构造权限求值用的调用者身份
func GetCaller(c *gin.Context) permission.Caller {
	userID, ok := GetUserID(c)
	return permission.Caller{
		UserID:        userID,
		IsAdmin:       IsAdmin(c),
		Authenticated: ok,
	}
}

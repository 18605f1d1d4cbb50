package handler

import (
	"errors"
	"net/http"
	"strconv"

	"planner-go/internal/middleware"
	"planner-go/internal/permission"
	"planner-go/internal/service"
	"planner-go/internal/utils"

	"github.com/gin-gonic/gin"
)

// respondError 将服务层错误类别翻译为HTTP响应
// 授权错误不在此处理(见authorize)；未知错误一律500且不暴露内部细节
func respondError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrNotFound):
		utils.NotFound(c, err.Error())
	case errors.Is(err, service.ErrDuplicate), errors.Is(err, service.ErrInvalid):
		utils.BadRequest(c, err.Error())
	case errors.Is(err, service.ErrCredentials):
		utils.Unauthorized(c, err.Error())
	case errors.Is(err, service.ErrUpstream):
		utils.BadGateway(c, err.Error())
	default:
		utils.InternalError(c, "服务器内部错误")
	}
}

// authorize 按策略求值并在失败时写出响应；授权失败信息固定，不透露具体检查
func authorize(c *gin.Context, p permission.Policy, action string, ownerID uint) bool {
	caller := middleware.GetCaller(c)
	if err := permission.Authorize(p, action, caller, ownerID); err != nil {
		if errors.Is(err, permission.ErrUnauthenticated) {
			utils.Unauthorized(c, "未认证")
		} else {
			utils.Forbidden(c, "无权访问")
		}
		c.Abort()
		return false
	}
	return true
}

// parseIDParam 解析路径中的:id参数
func parseIDParam(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		utils.BadRequest(c, "无效的ID")
		return 0, false
	}
	return uint(id), true
}

// updateAction 根据HTTP方法区分整体更新与部分更新动作
func updateAction(c *gin.Context) string {
	if c.Request.Method == http.MethodPut {
		return permission.ActionUpdate
	}
	return permission.ActionPartialUpdate
}

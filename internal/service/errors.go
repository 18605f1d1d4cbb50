package service

import (
	"errors"
	"strings"

	"gorm.io/gorm"
)

// 服务层错误类别，由传输层统一翻译为HTTP状态码
var (
	// ErrNotFound 记录不存在(404)
	ErrNotFound = errors.New("记录不存在")
	// ErrDuplicate 违反唯一约束(400)
	ErrDuplicate = errors.New("记录已存在")
	// ErrInvalid 请求参数无效(400)
	ErrInvalid = errors.New("请求参数无效")
	// ErrCredentials 认证失败(401)
	ErrCredentials = errors.New("用户名或密码错误")
	// ErrUpstream 上游依赖失败(502)
	ErrUpstream = errors.New("上游服务请求失败")
)

// isUniqueViolation 判断是否为唯一约束冲突(SQLite)
func isUniqueViolation(err error) bool {
	return err != nil && strings.Contains(err.Error(), "UNIQUE constraint failed")
}

// translateDBError 将GORM错误翻译为服务层错误类别
func translateDBError(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, gorm.ErrRecordNotFound):
		return ErrNotFound
	case isUniqueViolation(err):
		return ErrDuplicate
	default:
		return err
	}
}

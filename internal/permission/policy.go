package permission

import (
	"errors"
)

// 资源操作动作
const (
	ActionCreate        = "create"
	ActionRetrieve      = "retrieve"
	ActionUpdate        = "update"
	ActionPartialUpdate = "partial_update"
	ActionDestroy       = "destroy"
	ActionList          = "list"
)

// Check 授权检查项
type Check int

const (
	// CheckAuthenticated 调用者必须已登录
	CheckAuthenticated Check = iota
	// CheckAdmin 调用者必须是管理员
	CheckAdmin
	// CheckOwnerOrAdmin 调用者必须是记录归属者或管理员
	CheckOwnerOrAdmin
)

// 授权失败错误
var (
	ErrUnauthenticated = errors.New("未认证")
	ErrForbidden       = errors.New("无权访问")
)

// Caller 请求调用者身份
type Caller struct {
	UserID        uint
	IsAdmin       bool
	Authenticated bool
}

// Policy 权限策略：将动作映射为必须通过的检查集合
// 每次请求重新求值，无状态、无缓存
type Policy interface {
	RequiredChecks(action string) []Check
}

// OwnerOrAdminPolicy 归属者或管理员策略
// 适用于用户及用户归属资源(选择关联、计划活动)
type OwnerOrAdminPolicy struct{}

// RequiredChecks 返回动作所需检查
func (OwnerOrAdminPolicy) RequiredChecks(action string) []Check {
	switch action {
	case ActionCreate, ActionRetrieve, ActionUpdate, ActionPartialUpdate, ActionDestroy:
		return []Check{CheckAuthenticated, CheckOwnerOrAdmin}
	case ActionList:
		// 禁止普通用户枚举全部记录
		return []Check{CheckAuthenticated, CheckAdmin}
	default:
		return nil
	}
}

// CatalogPolicy 目录策略
// 适用于共享参考数据(活动、过敏原)：管理员维护，登录用户可读
type CatalogPolicy struct{}

// RequiredChecks 返回动作所需检查
func (CatalogPolicy) RequiredChecks(action string) []Check {
	switch action {
	case ActionCreate, ActionUpdate, ActionPartialUpdate, ActionDestroy:
		return []Check{CheckAuthenticated, CheckAdmin}
	case ActionList, ActionRetrieve:
		return []Check{CheckAuthenticated}
	default:
		return nil
	}
}

// Evaluate 依次执行检查；ownerID为目标记录的归属用户ID
// (对无目标记录的检查如list传0即可，相关策略不会产生归属检查)
func Evaluate(checks []Check, caller Caller, ownerID uint) error {
	for _, check := range checks {
		switch check {
		case CheckAuthenticated:
			if !caller.Authenticated {
				return ErrUnauthenticated
			}
		case CheckAdmin:
			if !caller.IsAdmin {
				return ErrForbidden
			}
		case CheckOwnerOrAdmin:
			if !caller.IsAdmin && caller.UserID != ownerID {
				return ErrForbidden
			}
		}
	}
	return nil
}

// Authorize 按策略对动作求值
func Authorize(p Policy, action string, caller Caller, ownerID uint) error {
	return Evaluate(p.RequiredChecks(action), caller, ownerID)
}

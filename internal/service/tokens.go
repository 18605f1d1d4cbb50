package service

import "context"

// RefreshTokens 刷新Token白名单
// 生产实现为基于Redis的pkg/tokenstore.TokenStore
type RefreshTokens interface {
	// Save 登记新签发的刷新Token
	Save(ctx context.Context, token string, userID uint) error
	// IsValid 检查刷新Token是否仍在白名单中
	IsValid(ctx context.Context, token string) (bool, error)
	// Revoke 撤销单个刷新Token
	Revoke(ctx context.Context, token string, userID uint) error
	// RevokeAll 撤销用户的全部刷新Token
	RevokeAll(ctx context.Context, userID uint) error
}

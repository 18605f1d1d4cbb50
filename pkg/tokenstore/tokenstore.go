package tokenstore

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"strconv"
	"time"

	"github.com/go-redis/redis/v8"
)

// TokenStore 基于Redis的刷新Token白名单
// 登录/刷新时写入，登出或删除账户时撤销；不在白名单中的刷新Token一律拒绝
type TokenStore struct {
	client    *redis.Client
	keyPrefix string
	ttl       time.Duration
}

// NewTokenStore 创建刷新Token存储
func NewTokenStore(client *redis.Client, keyPrefix string, ttl time.Duration) *TokenStore {
	return &TokenStore{
		client:    client,
		keyPrefix: keyPrefix,
		ttl:       ttl,
	}
}

// hashToken Token仅以摘要形式落库
func hashToken(token string) string {
	sum := sha256.Sum256([]byte(token))
	return hex.EncodeToString(sum[:])
}

func (s *TokenStore) tokenKey(token string) string {
	return s.keyPrefix + "token:" + hashToken(token)
}

func (s *TokenStore) userKey(userID uint) string {
	return s.keyPrefix + "user:" + strconv.FormatUint(uint64(userID), 10)
}

// Save 登记刷新Token
func (s *TokenStore) Save(ctx context.Context, token string, userID uint) error {
	pipe := s.client.TxPipeline()
	pipe.Set(ctx, s.tokenKey(token), strconv.FormatUint(uint64(userID), 10), s.ttl)
	pipe.SAdd(ctx, s.userKey(userID), hashToken(token))
	pipe.Expire(ctx, s.userKey(userID), s.ttl)
	_, err := pipe.Exec(ctx)
	return err
}

// IsValid 检查刷新Token是否仍在白名单中
func (s *TokenStore) IsValid(ctx context.Context, token string) (bool, error) {
	n, err := s.client.Exists(ctx, s.tokenKey(token)).Result()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

// Revoke 撤销单个刷新Token
func (s *TokenStore) Revoke(ctx context.Context, token string, userID uint) error {
	pipe := s.client.TxPipeline()
	pipe.Del(ctx, s.tokenKey(token))
	pipe.SRem(ctx, s.userKey(userID), hashToken(token))
	_, err := pipe.Exec(ctx)
	return err
}

// RevokeAll 撤销用户的全部刷新Token(删除账户时调用)
func (s *TokenStore) RevokeAll(ctx context.Context, userID uint) error {
	hashes, err := s.client.SMembers(ctx, s.userKey(userID)).Result()
	if err != nil {
		return err
	}

	pipe := s.client.TxPipeline()
	for _, h := range hashes {
		pipe.Del(ctx, s.keyPrefix+"token:"+h)
	}
	pipe.Del(ctx, s.userKey(userID))
	_, err = pipe.Exec(ctx)
	return err
}

package utils

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Token类型
const (
	TokenTypeAccess  = "access"
	TokenTypeRefresh = "refresh"
)

// JWTClaims JWT声明
type JWTClaims struct {
	UserID    uint   `json:"user_id"`
	Username  string `json:"username"`
	IsAdmin   bool   `json:"is_admin"`
	TokenType string `json:"token_type"`
	jwt.RegisteredClaims
}

// JWTManager JWT管理器
type JWTManager struct {
	secretKey     []byte
	algorithm     jwt.SigningMethod
	accessExpire  time.Duration
	refreshExpire time.Duration
}

// NewJWTManager 创建JWT管理器
func NewJWTManager(secretKey string, algorithm string, accessExpire, refreshExpire time.Duration) *JWTManager {
	return &JWTManager{
		secretKey:     []byte(secretKey),
		algorithm:     jwt.GetSigningMethod(algorithm),
		accessExpire:  accessExpire,
		refreshExpire: refreshExpire,
	}
}

// GenerateTokenPair 生成访问/刷新Token对
func (j *JWTManager) GenerateTokenPair(userID uint, username string, isAdmin bool) (access string, refresh string, err error) {
	access, err = j.generateToken(userID, username, isAdmin, TokenTypeAccess, j.accessExpire)
	if err != nil {
		return "", "", err
	}
	refresh, err = j.generateToken(userID, username, isAdmin, TokenTypeRefresh, j.refreshExpire)
	if err != nil {
		return "", "", err
	}
	return access, refresh, nil
}

// generateToken 生成Token
func (j *JWTManager) generateToken(userID uint, username string, isAdmin bool, tokenType string, expire time.Duration) (string, error) {
	now := time.Now()
	claims := JWTClaims{
		UserID:    userID,
		Username:  username,
		IsAdmin:   isAdmin,
		TokenType: tokenType,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(expire)),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
		},
	}

	token := jwt.NewWithClaims(j.algorithm, claims)
	return token.SignedString(j.secretKey)
}

// ValidateToken 验证Token并检查类型
func (j *JWTManager) ValidateToken(tokenString string, tokenType string) (*JWTClaims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &JWTClaims{}, func(token *jwt.Token) (interface{}, error) {
		if token.Method != j.algorithm {
			return nil, errors.New("无效的签名算法")
		}
		return j.secretKey, nil
	})

	if err != nil {
		return nil, err
	}

	claims, ok := token.Claims.(*JWTClaims)
	if !ok || !token.Valid {
		return nil, errors.New("无效的Token")
	}

	if claims.TokenType != tokenType {
		return nil, errors.New("Token类型不匹配")
	}

	return claims, nil
}

// RefreshExpire 返回刷新Token有效期
func (j *JWTManager) RefreshExpire() time.Duration {
	return j.refreshExpire
}

package service

import (
	"context"
	"errors"
	"fmt"

	"planner-go/internal/config"
	"planner-go/internal/dto"
	"planner-go/internal/models"
	"planner-go/internal/repository"
	"planner-go/internal/utils"

	"gorm.io/gorm"
)

// AuthService 认证服务
type AuthService struct {
	userRepo   *repository.UserRepository
	jwtManager *utils.JWTManager
	tokens     RefreshTokens
	cfg        *config.Config
}

// NewAuthService 创建认证服务
func NewAuthService(userRepo *repository.UserRepository, jwtManager *utils.JWTManager, tokens RefreshTokens, cfg *config.Config) *AuthService {
	return &AuthService{
		userRepo:   userRepo,
		jwtManager: jwtManager,
		tokens:     tokens,
		cfg:        cfg,
	}
}

// Register 用户注册
func (s *AuthService) Register(req *dto.RegisterRequest) (*models.User, error) {
	// 自定义校验(用户名字符集、密码强度)
	if err := utils.ValidateStruct(req); err != nil {
		return nil, fmt.Errorf("%w: %s", ErrInvalid, err.Error())
	}

	// 验证用户名是否已存在
	exists, err := s.userRepo.ExistsByUsername(req.Username)
	if err != nil {
		return nil, fmt.Errorf("检查用户名失败: %w", err)
	}
	if exists {
		return nil, fmt.Errorf("%w: 用户名已存在", ErrDuplicate)
	}

	// 哈希密码
	hashedPassword, err := utils.HashPassword(req.Password)
	if err != nil {
		return nil, fmt.Errorf("密码哈希失败: %w", err)
	}

	// 创建用户
	user := &models.User{
		Username:     req.Username,
		Email:        req.Email,
		Address:      req.Address,
		PasswordHash: hashedPassword,
		IsAdmin:      false,
	}

	if err := s.userRepo.Create(user); err != nil {
		// 邮箱/地址唯一约束冲突
		if isUniqueViolation(err) {
			return nil, fmt.Errorf("%w: 邮箱或地址已被使用", ErrDuplicate)
		}
		return nil, fmt.Errorf("创建用户失败: %w", err)
	}

	return user, nil
}

// Login 用户登录，签发访问/刷新Token对
func (s *AuthService) Login(ctx context.Context, req *dto.LoginRequest) (*dto.TokenPairResponse, error) {
	user, err := s.userRepo.GetByUsername(req.Username)
	if err != nil {
		return nil, ErrCredentials
	}

	// 验证密码
	if err := utils.CheckPassword(req.Password, user.PasswordHash); err != nil {
		return nil, ErrCredentials
	}

	return s.issueTokenPair(ctx, user)
}

// Refresh 用刷新Token换取新Token对，旧刷新Token作废
func (s *AuthService) Refresh(ctx context.Context, refreshToken string) (*dto.TokenPairResponse, error) {
	claims, err := s.jwtManager.ValidateToken(refreshToken, utils.TokenTypeRefresh)
	if err != nil {
		return nil, ErrCredentials
	}

	ok, err := s.tokens.IsValid(ctx, refreshToken)
	if err != nil {
		return nil, fmt.Errorf("检查刷新Token失败: %w", err)
	}
	if !ok {
		return nil, ErrCredentials
	}

	// 重新读取用户，保证角色信息最新
	user, err := s.userRepo.GetByID(claims.UserID)
	if err != nil {
		return nil, ErrCredentials
	}

	if err := s.tokens.Revoke(ctx, refreshToken, claims.UserID); err != nil {
		return nil, fmt.Errorf("撤销旧Token失败: %w", err)
	}

	return s.issueTokenPair(ctx, user)
}

// Logout 用户登出，撤销刷新Token
func (s *AuthService) Logout(ctx context.Context, refreshToken string) error {
	claims, err := s.jwtManager.ValidateToken(refreshToken, utils.TokenTypeRefresh)
	if err != nil {
		// Token已失效，视为登出成功
		return nil
	}
	return s.tokens.Revoke(ctx, refreshToken, claims.UserID)
}

// RecoverPassword 找回密码：核对用户名+邮箱后覆盖密码哈希
func (s *AuthService) RecoverPassword(req *dto.RecoverPasswordRequest) error {
	if err := utils.ValidateStruct(req); err != nil {
		return fmt.Errorf("%w: %s", ErrInvalid, err.Error())
	}

	user, err := s.userRepo.GetByUsernameAndEmail(req.Username, req.Email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fmt.Errorf("%w: 用户名与邮箱不匹配", ErrNotFound)
		}
		return fmt.Errorf("查询用户失败: %w", err)
	}

	hashedPassword, err := utils.HashPassword(req.NewPassword)
	if err != nil {
		return fmt.Errorf("密码哈希失败: %w", err)
	}

	user.PasswordHash = hashedPassword
	if err := s.userRepo.Update(user); err != nil {
		return fmt.Errorf("更新密码失败: %w", err)
	}

	return nil
}

// InitAdmin 初始化管理员账户
func (s *AuthService) InitAdmin() error {
	// 检查是否已有管理员
	admin, err := s.userRepo.GetAdmin()
	if err == nil && admin != nil {
		return nil // 已存在管理员
	}

	// 配置中的密码允许直接给出bcrypt哈希
	passwordHash := s.cfg.Admin.Password
	if !utils.IsBcryptHash(passwordHash) {
		hashed, err := utils.HashPassword(s.cfg.Admin.Password)
		if err != nil {
			return fmt.Errorf("密码哈希失败: %w", err)
		}
		passwordHash = hashed
	}

	user := &models.User{
		Username:     s.cfg.Admin.Username,
		Email:        s.cfg.Admin.Email,
		Address:      s.cfg.Admin.Address,
		PasswordHash: passwordHash,
		IsAdmin:      true,
	}

	if err := s.userRepo.Create(user); err != nil {
		return fmt.Errorf("创建管理员失败: %w", err)
	}

	return nil
}

// issueTokenPair 签发并登记Token对
func (s *AuthService) issueTokenPair(ctx context.Context, user *models.User) (*dto.TokenPairResponse, error) {
	access, refresh, err := s.jwtManager.GenerateTokenPair(user.ID, user.Username, user.IsAdmin)
	if err != nil {
		return nil, fmt.Errorf("生成Token失败: %w", err)
	}

	if err := s.tokens.Save(ctx, refresh, user.ID); err != nil {
		return nil, fmt.Errorf("登记刷新Token失败: %w", err)
	}

	return &dto.TokenPairResponse{
		AccessToken:  access,
		RefreshToken: refresh,
		TokenType:    "bearer",
		User:         ToUserInfo(user),
	}, nil
}

// ToUserInfo 模型转用户信息DTO
func ToUserInfo(user *models.User) dto.UserInfo {
	return dto.UserInfo{
		ID:       user.ID,
		Username: user.Username,
		Email:    user.Email,
		Address:  user.Address,
		IsAdmin:  user.IsAdmin,
	}
}

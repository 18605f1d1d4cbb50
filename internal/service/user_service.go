package service

import (
	"context"
	"fmt"

	"planner-go/internal/dto"
	"planner-go/internal/models"
	"planner-go/internal/repository"
	"planner-go/internal/utils"
)

// UserService 用户管理服务
type UserService struct {
	userRepo *repository.UserRepository
	tokens   RefreshTokens
}

// NewUserService 创建用户服务
func NewUserService(userRepo *repository.UserRepository, tokens RefreshTokens) *UserService {
	return &UserService{
		userRepo: userRepo,
		tokens:   tokens,
	}
}

// GetUser 获取用户
func (s *UserService) GetUser(id uint) (*models.User, error) {
	user, err := s.userRepo.GetByID(id)
	if err != nil {
		return nil, translateDBError(err)
	}
	return user, nil
}

// ListUsers 获取全部用户
func (s *UserService) ListUsers() ([]dto.UserInfo, error) {
	users, err := s.userRepo.List()
	if err != nil {
		return nil, err
	}

	infos := make([]dto.UserInfo, len(users))
	for i := range users {
		infos[i] = ToUserInfo(&users[i])
	}
	return infos, nil
}

// UpdateUser 部分更新用户；密码字段重新哈希
func (s *UserService) UpdateUser(id uint, req *dto.UpdateUserRequest) (*models.User, error) {
	user, err := s.userRepo.GetByID(id)
	if err != nil {
		return nil, translateDBError(err)
	}

	if req.Username != nil {
		user.Username = *req.Username
	}
	if req.Email != nil {
		user.Email = *req.Email
	}
	if req.Address != nil {
		user.Address = *req.Address
	}
	if req.Password != nil {
		hashed, err := utils.HashPassword(*req.Password)
		if err != nil {
			return nil, fmt.Errorf("密码哈希失败: %w", err)
		}
		user.PasswordHash = hashed
	}

	if err := s.userRepo.Update(user); err != nil {
		if isUniqueViolation(err) {
			return nil, fmt.Errorf("%w: 用户名、邮箱或地址已被使用", ErrDuplicate)
		}
		return nil, fmt.Errorf("更新用户失败: %w", err)
	}

	return user, nil
}

// DeleteUser 删除用户：级联删除归属记录并撤销全部刷新Token
func (s *UserService) DeleteUser(ctx context.Context, id uint) error {
	if _, err := s.userRepo.GetByID(id); err != nil {
		return translateDBError(err)
	}

	if err := s.userRepo.Delete(id); err != nil {
		return fmt.Errorf("删除用户失败: %w", err)
	}

	return s.tokens.RevokeAll(ctx, id)
}

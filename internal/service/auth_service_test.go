package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"planner-go/internal/config"
	"planner-go/internal/dto"
	"planner-go/internal/models"
	"planner-go/internal/repository"
	"planner-go/internal/utils"

	"gorm.io/gorm"
)

// fakeTokenStore 内存版刷新Token白名单
type fakeTokenStore struct {
	tokens map[string]uint
}

func newFakeTokenStore() *fakeTokenStore {
	return &fakeTokenStore{tokens: make(map[string]uint)}
}

func (s *fakeTokenStore) Save(_ context.Context, token string, userID uint) error {
	s.tokens[token] = userID
	return nil
}

func (s *fakeTokenStore) IsValid(_ context.Context, token string) (bool, error) {
	_, ok := s.tokens[token]
	return ok, nil
}

func (s *fakeTokenStore) Revoke(_ context.Context, token string, _ uint) error {
	delete(s.tokens, token)
	return nil
}

func (s *fakeTokenStore) RevokeAll(_ context.Context, userID uint) error {
	for token, id := range s.tokens {
		if id == userID {
			delete(s.tokens, token)
		}
	}
	return nil
}

func newAuthService(db *gorm.DB) (*AuthService, *fakeTokenStore) {
	userRepo := repository.NewUserRepository(db)
	jwtManager := utils.NewJWTManager("test-secret", "HS256", time.Hour, 24*time.Hour)
	cfg := &config.Config{
		Admin: config.AdminConfig{
			Username: "admin",
			Email:    "admin@example.com",
			Address:  "总部",
			Password: "admin12345",
		},
	}
	store := newFakeTokenStore()
	return NewAuthService(userRepo, jwtManager, store, cfg), store
}

func TestRegister(t *testing.T) {
	db := newTestDB(t)
	svc, _ := newAuthService(db)

	user, err := svc.Register(&dto.RegisterRequest{
		Username: "alice",
		Password: "secret123",
		Email:    "alice@example.com",
		Address:  "北京市海淀区",
	})
	if err != nil {
		t.Fatalf("注册失败: %v", err)
	}
	if user.ID == 0 || user.IsAdmin {
		t.Fatalf("注册结果异常: %+v", user)
	}
	if err := utils.CheckPassword("secret123", user.PasswordHash); err != nil {
		t.Fatalf("密码未正确哈希: %v", err)
	}
}

func TestRegisterDuplicateUsername(t *testing.T) {
	db := newTestDB(t)
	svc, _ := newAuthService(db)
	seedUser(t, db, "alice", false)

	_, err := svc.Register(&dto.RegisterRequest{
		Username: "alice",
		Password: "secret123",
		Email:    "other@example.com",
		Address:  "另一个地址",
	})
	if !errors.Is(err, ErrDuplicate) {
		t.Fatalf("重复用户名应返回 ErrDuplicate, got %v", err)
	}

	var count int64
	db.Model(&models.User{}).Where("username = ?", "alice").Count(&count)
	if count != 1 {
		t.Fatalf("不应产生新记录, count=%d", count)
	}
}

func TestRegisterDuplicateEmail(t *testing.T) {
	db := newTestDB(t)
	svc, _ := newAuthService(db)
	seedUser(t, db, "alice", false)

	_, err := svc.Register(&dto.RegisterRequest{
		Username: "bob",
		Password: "secret123",
		Email:    "alice@example.com",
		Address:  "另一个地址",
	})
	if !errors.Is(err, ErrDuplicate) {
		t.Fatalf("重复邮箱应返回 ErrDuplicate, got %v", err)
	}
}

func TestRegisterWeakPassword(t *testing.T) {
	db := newTestDB(t)
	svc, _ := newAuthService(db)

	cases := []string{"short1", "allletters", "12345678"}
	for _, password := range cases {
		_, err := svc.Register(&dto.RegisterRequest{
			Username: "alice",
			Password: password,
			Email:    "alice@example.com",
			Address:  "北京市海淀区",
		})
		if !errors.Is(err, ErrInvalid) {
			t.Fatalf("弱密码%q应返回 ErrInvalid, got %v", password, err)
		}
	}
}

func TestLoginWrongPassword(t *testing.T) {
	db := newTestDB(t)
	svc, _ := newAuthService(db)

	hash, _ := utils.HashPassword("secret123")
	db.Create(&models.User{
		Username: "alice", Email: "alice@example.com",
		Address: "北京", PasswordHash: hash,
	})

	_, err := svc.Login(context.Background(), &dto.LoginRequest{Username: "alice", Password: "wrong9999"})
	if !errors.Is(err, ErrCredentials) {
		t.Fatalf("错误密码应返回 ErrCredentials, got %v", err)
	}

	_, err = svc.Login(context.Background(), &dto.LoginRequest{Username: "nobody", Password: "secret123"})
	if !errors.Is(err, ErrCredentials) {
		t.Fatalf("不存在的用户应返回 ErrCredentials, got %v", err)
	}
}

func TestRecoverPassword(t *testing.T) {
	db := newTestDB(t)
	svc, _ := newAuthService(db)

	hash, _ := utils.HashPassword("oldpass123")
	user := &models.User{
		Username: "alice", Email: "alice@example.com",
		Address: "北京", PasswordHash: hash,
	}
	db.Create(user)

	err := svc.RecoverPassword(&dto.RecoverPasswordRequest{
		Username: "alice", Email: "alice@example.com", NewPassword: "newpass456",
	})
	if err != nil {
		t.Fatalf("找回密码失败: %v", err)
	}

	var updated models.User
	db.First(&updated, user.ID)
	if err := utils.CheckPassword("newpass456", updated.PasswordHash); err != nil {
		t.Fatalf("新密码未生效: %v", err)
	}
}

func TestRecoverPasswordMismatch(t *testing.T) {
	db := newTestDB(t)
	svc, _ := newAuthService(db)

	hash, _ := utils.HashPassword("oldpass123")
	user := &models.User{
		Username: "alice", Email: "alice@example.com",
		Address: "北京", PasswordHash: hash,
	}
	db.Create(user)

	// 用户名存在但邮箱不匹配
	err := svc.RecoverPassword(&dto.RecoverPasswordRequest{
		Username: "alice", Email: "other@example.com", NewPassword: "newpass456",
	})
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("不匹配应返回 ErrNotFound, got %v", err)
	}

	var unchanged models.User
	db.First(&unchanged, user.ID)
	if unchanged.PasswordHash != hash {
		t.Fatal("不匹配时密码哈希不应改变")
	}
}

func TestInitAdmin(t *testing.T) {
	db := newTestDB(t)
	svc, _ := newAuthService(db)

	if err := svc.InitAdmin(); err != nil {
		t.Fatalf("初始化管理员失败: %v", err)
	}

	var admin models.User
	if err := db.Where("is_admin = ?", true).First(&admin).Error; err != nil {
		t.Fatalf("管理员未创建: %v", err)
	}
	if admin.Username != "admin" {
		t.Fatalf("管理员用户名错误: %s", admin.Username)
	}
	if err := utils.CheckPassword("admin12345", admin.PasswordHash); err != nil {
		t.Fatalf("管理员密码未正确哈希: %v", err)
	}

	// 幂等：再次调用不应新增
	if err := svc.InitAdmin(); err != nil {
		t.Fatalf("重复初始化失败: %v", err)
	}
	var count int64
	db.Model(&models.User{}).Where("is_admin = ?", true).Count(&count)
	if count != 1 {
		t.Fatalf("管理员数量应为1, got %d", count)
	}
}

func TestLoginIssuesTokenPair(t *testing.T) {
	db := newTestDB(t)
	svc, store := newAuthService(db)

	hash, _ := utils.HashPassword("secret123")
	user := &models.User{
		Username: "alice", Email: "alice@example.com",
		Address: "北京", PasswordHash: hash,
	}
	db.Create(user)

	resp, err := svc.Login(context.Background(), &dto.LoginRequest{Username: "alice", Password: "secret123"})
	if err != nil {
		t.Fatalf("登录失败: %v", err)
	}
	if resp.TokenType != "bearer" || resp.User.ID != user.ID {
		t.Fatalf("响应内容异常: %+v", resp)
	}

	// 两个Token类型正确
	jwtManager := utils.NewJWTManager("test-secret", "HS256", time.Hour, 24*time.Hour)
	if _, err := jwtManager.ValidateToken(resp.AccessToken, utils.TokenTypeAccess); err != nil {
		t.Fatalf("访问Token无效: %v", err)
	}
	if _, err := jwtManager.ValidateToken(resp.RefreshToken, utils.TokenTypeRefresh); err != nil {
		t.Fatalf("刷新Token无效: %v", err)
	}

	// 刷新Token已登记
	if ok, _ := store.IsValid(context.Background(), resp.RefreshToken); !ok {
		t.Fatal("刷新Token应在白名单中")
	}
}

func TestRefreshRotatesToken(t *testing.T) {
	db := newTestDB(t)
	svc, store := newAuthService(db)
	ctx := context.Background()

	user := seedUser(t, db, "alice", false)

	// 有效期不同保证新旧Token串必然不同
	oldManager := utils.NewJWTManager("test-secret", "HS256", time.Hour, 48*time.Hour)
	_, oldRefresh, err := oldManager.GenerateTokenPair(user.ID, "alice", false)
	if err != nil {
		t.Fatalf("生成Token失败: %v", err)
	}
	store.Save(ctx, oldRefresh, user.ID)

	resp, err := svc.Refresh(ctx, oldRefresh)
	if err != nil {
		t.Fatalf("刷新失败: %v", err)
	}
	if resp.RefreshToken == oldRefresh {
		t.Fatal("应签发新的刷新Token")
	}

	// 旧Token作废，新Token登记
	if ok, _ := store.IsValid(ctx, oldRefresh); ok {
		t.Fatal("旧刷新Token应已撤销")
	}
	if ok, _ := store.IsValid(ctx, resp.RefreshToken); !ok {
		t.Fatal("新刷新Token应在白名单中")
	}

	// 旧Token不能再次兑换
	if _, err := svc.Refresh(ctx, oldRefresh); !errors.Is(err, ErrCredentials) {
		t.Fatalf("已撤销的Token应返回 ErrCredentials, got %v", err)
	}
}

func TestRefreshRejectsUnlistedToken(t *testing.T) {
	db := newTestDB(t)
	svc, _ := newAuthService(db)
	ctx := context.Background()

	user := seedUser(t, db, "alice", false)
	jwtManager := utils.NewJWTManager("test-secret", "HS256", time.Hour, 24*time.Hour)
	access, refresh, err := jwtManager.GenerateTokenPair(user.ID, "alice", false)
	if err != nil {
		t.Fatalf("生成Token失败: %v", err)
	}

	// 签名有效但未登记(已被撤销或从未签发)的刷新Token
	if _, err := svc.Refresh(ctx, refresh); !errors.Is(err, ErrCredentials) {
		t.Fatalf("未登记的Token应返回 ErrCredentials, got %v", err)
	}
	// 访问Token不能兑换新Token对
	if _, err := svc.Refresh(ctx, access); !errors.Is(err, ErrCredentials) {
		t.Fatalf("访问Token应返回 ErrCredentials, got %v", err)
	}
	// 无法解析的Token
	if _, err := svc.Refresh(ctx, "not-a-token"); !errors.Is(err, ErrCredentials) {
		t.Fatalf("无效Token应返回 ErrCredentials, got %v", err)
	}
}

func TestLogoutRevokesToken(t *testing.T) {
	db := newTestDB(t)
	svc, store := newAuthService(db)
	ctx := context.Background()

	user := seedUser(t, db, "alice", false)
	jwtManager := utils.NewJWTManager("test-secret", "HS256", time.Hour, 24*time.Hour)
	_, refresh, err := jwtManager.GenerateTokenPair(user.ID, "alice", false)
	if err != nil {
		t.Fatalf("生成Token失败: %v", err)
	}
	store.Save(ctx, refresh, user.ID)

	if err := svc.Logout(ctx, refresh); err != nil {
		t.Fatalf("登出失败: %v", err)
	}
	if ok, _ := store.IsValid(ctx, refresh); ok {
		t.Fatal("登出后刷新Token应已撤销")
	}

	// 无法解析的Token视为登出成功
	if err := svc.Logout(ctx, "not-a-token"); err != nil {
		t.Fatalf("无效Token登出应成功: %v", err)
	}
}

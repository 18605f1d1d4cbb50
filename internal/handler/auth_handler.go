package handler

import (
	"planner-go/internal/config"
	"planner-go/internal/dto"
	"planner-go/internal/middleware"
	"planner-go/internal/service"
	"planner-go/internal/utils"

	"github.com/gin-gonic/gin"
)

// AuthHandler 认证处理器
type AuthHandler struct {
	authService *service.AuthService
	cfg         *config.Config
}

// NewAuthHandler 创建认证处理器
func NewAuthHandler(authService *service.AuthService, cfg *config.Config) *AuthHandler {
	return &AuthHandler{
		authService: authService,
		cfg:         cfg,
	}
}

// Register 用户注册
// @Summary 用户注册
// @Tags 认证
// @Accept json
// @Produce json
// @Param request body dto.RegisterRequest true "注册信息"
// @Success 201 {object} utils.Response{data=dto.UserInfo}
// @Router /api/register [post]
func (h *AuthHandler) Register(c *gin.Context) {
	var req dto.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(c, err.Error())
		return
	}

	user, err := h.authService.Register(&req)
	if err != nil {
		respondError(c, err)
		return
	}

	utils.CreatedResponse(c, "注册成功", service.ToUserInfo(user))
}

// Login 用户登录
// @Summary 用户登录
// @Tags 认证
// @Accept json
// @Produce json
// @Param request body dto.LoginRequest true "登录信息"
// @Success 200 {object} utils.Response{data=dto.TokenPairResponse}
// @Router /api/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(c, err.Error())
		return
	}

	resp, err := h.authService.Login(c.Request.Context(), &req)
	if err != nil {
		respondError(c, err)
		return
	}

	h.setAccessCookie(c, resp.AccessToken)
	utils.SuccessWithMessage(c, "登录成功", resp)
}

// Refresh 刷新Token对
// @Summary 刷新Token
// @Tags 认证
// @Accept json
// @Produce json
// @Param request body dto.RefreshRequest true "刷新Token"
// @Success 200 {object} utils.Response{data=dto.TokenPairResponse}
// @Router /api/refresh [post]
func (h *AuthHandler) Refresh(c *gin.Context) {
	var req dto.RefreshRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(c, err.Error())
		return
	}

	resp, err := h.authService.Refresh(c.Request.Context(), req.RefreshToken)
	if err != nil {
		respondError(c, err)
		return
	}

	h.setAccessCookie(c, resp.AccessToken)
	utils.SuccessWithMessage(c, "刷新成功", resp)
}

// Logout 用户登出
// @Summary 用户登出
// @Tags 认证
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.LogoutRequest true "刷新Token"
// @Success 200 {object} utils.Response
// @Router /api/logout [post]
func (h *AuthHandler) Logout(c *gin.Context) {
	var req dto.LogoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(c, err.Error())
		return
	}

	if err := h.authService.Logout(c.Request.Context(), req.RefreshToken); err != nil {
		respondError(c, err)
		return
	}

	// 清除Cookie
	c.SetCookie(middleware.AccessTokenCookie, "", -1, "/", h.cfg.Server.CookieDomain, h.cfg.Server.CookieSecure, true)
	utils.SuccessWithMessage(c, "登出成功", nil)
}

// RecoverPassword 找回密码
// @Summary 找回密码
// @Tags 认证
// @Accept json
// @Produce json
// @Param request body dto.RecoverPasswordRequest true "找回密码信息"
// @Success 200 {object} utils.Response
// @Router /api/recover-password [post]
func (h *AuthHandler) RecoverPassword(c *gin.Context) {
	var req dto.RecoverPasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(c, err.Error())
		return
	}

	if err := h.authService.RecoverPassword(&req); err != nil {
		respondError(c, err)
		return
	}

	utils.SuccessWithMessage(c, "密码已重置", nil)
}

// setAccessCookie 将访问Token同时写入Cookie
func (h *AuthHandler) setAccessCookie(c *gin.Context, token string) {
	maxAge := int(h.cfg.JWT.GetAccessExpireDuration().Seconds())
	c.SetCookie(middleware.AccessTokenCookie, token, maxAge, "/", h.cfg.Server.CookieDomain, h.cfg.Server.CookieSecure, true)
}

package controller

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/dashteam/dashteam/internal/api/response"
	"github.com/dashteam/dashteam/internal/service"
	"github.com/gin-gonic/gin"
)

// AuthController 处理用户认证和个人资料
type AuthController struct {
	authService *service.AuthService
}

func NewAuthController(authService *service.AuthService) *AuthController {
	return &AuthController{
		authService: authService,
	}
}

// ==========================================
// DTOs (请求/响应参数定义)
// ==========================================

type RegisterRequest struct {
	Name     string `json:"name" binding:"required,min=2,max=100"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type LoginResponse struct {
	Token  string `json:"token"`
	UserID string `json:"user_id"`
}

type ProfileRequest struct {
	Name     *string `json:"name" binding:"omitempty,min=2"`
	Email    *string `json:"email" binding:"omitempty,email"`
	Password *string `json:"password" binding:"omitempty,min=6"`
}

// ==========================================
// Handlers
// ==========================================

// Register 用户注册
// @Summary 用户注册
// @Tags Auth
// @Router /auth/register [post]
func (ctrl *AuthController) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		slog.Warn("Register params invalid", "err", err)
		response.ValidationError(c, http.StatusBadRequest, "invalid request data", err.Error())
		return
	}

	err := ctrl.authService.Register(c.Request.Context(), req.Name, req.Email, req.Password)
	if err != nil {
		if errors.Is(err, service.ErrDuplicate) {
			response.Error(c, http.StatusConflict, "email already registered")
			return
		}
		slog.Error("Register failed", "email", req.Email, "err", err)
		response.Error(c, http.StatusInternalServerError, "internal error")
		return
	}

	slog.Info("User registered", "email", req.Email)
	response.Created(c, nil)
}

// Login 用户登录
// @Summary 用户登录，颁发 JWT Token
// @Tags Auth
// @Router /auth/login [post]
func (ctrl *AuthController) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ValidationError(c, http.StatusBadRequest, "invalid request data", err.Error())
		return
	}

	token, userID, err := ctrl.authService.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		// 为了防止暴力破解，提示信息模糊化
		slog.Warn("Login failed", "email", req.Email)
		response.Error(c, http.StatusUnauthorized, "invalid credentials")
		return
	}

	slog.Info("User logged in", "userID", userID)
	response.Success(c, LoginResponse{
		Token:  token,
		UserID: userID,
	})
}

// UpdateProfile 更新个人资料，返回体里永远不带密码
// @Summary 更新个人资料
// @Tags Auth
// @Security BearerAuth
// @Router /user/profile [patch]
func (ctrl *AuthController) UpdateProfile(c *gin.Context) {
	var req ProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ValidationError(c, http.StatusUnprocessableEntity, "invalid request data", err.Error())
		return
	}

	user, err := ctrl.authService.UpdateProfile(c.Request.Context(), currentUserID(c), service.ProfileUpdate{
		Name:     req.Name,
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		handleServiceError(c, err)
		return
	}
	response.Success(c, user)
}

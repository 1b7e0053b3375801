package service

import (
	"context"
	"errors"
	"time"

	"github.com/dashteam/dashteam/internal/model"
	"github.com/dashteam/dashteam/internal/repository"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/spf13/viper"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type AuthService struct {
	userRepo repository.UserRepo
}

func NewAuthService(userRepo repository.UserRepo) *AuthService {
	return &AuthService{userRepo: userRepo}
}

// Register 注册逻辑
func (s *AuthService) Register(ctx context.Context, name, email, password string) error {
	// 密码加密
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	// 落库，email 唯一索引兜底防重复
	id, _ := uuid.NewV7()
	user := &model.User{
		ID:       id.String(),
		Name:     name,
		Email:    email,
		Password: string(hash),
	}
	if err := s.userRepo.Create(ctx, user); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return ErrDuplicate
		}
		return err
	}
	return nil
}

// Login 登录逻辑，返回 Token
func (s *AuthService) Login(ctx context.Context, email, password string) (string, string, error) {
	user, err := s.userRepo.GetByEmail(ctx, email)
	if err != nil {
		return "", "", ErrInvalidCredentials // 模糊报错为了安全
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return "", "", ErrInvalidCredentials
	}

	return s.generateToken(user.ID)
}

// ProfileUpdate 个人资料的局部更新参数，nil 表示不动
type ProfileUpdate struct {
	Name     *string
	Email    *string
	Password *string
}

// UpdateProfile 更新资料，改密码时重新加密
func (s *AuthService) UpdateProfile(ctx context.Context, userID string, upd ProfileUpdate) (*model.User, error) {
	fields := map[string]any{}
	if upd.Name != nil && *upd.Name != "" {
		fields["name"] = *upd.Name
	}
	if upd.Email != nil && *upd.Email != "" {
		fields["email"] = *upd.Email
	}
	if upd.Password != nil && *upd.Password != "" {
		hash, err := bcrypt.GenerateFromPassword([]byte(*upd.Password), bcrypt.DefaultCost)
		if err != nil {
			return nil, err
		}
		fields["password"] = string(hash)
	}

	if len(fields) > 0 {
		if err := s.userRepo.Update(ctx, userID, fields); err != nil {
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				return nil, ErrDuplicate
			}
			return nil, err
		}
	}
	return s.userRepo.GetByID(ctx, userID)
}

func (s *AuthService) generateToken(userID string) (string, string, error) {
	secret := viper.GetString("jwt.secret")
	expireHours := viper.GetInt("jwt.expire_hours")

	claims := jwt.MapClaims{
		"user_id": userID,
		"exp":     time.Now().Add(time.Hour * time.Duration(expireHours)).Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	ss, err := token.SignedString([]byte(secret))
	return ss, userID, err
}

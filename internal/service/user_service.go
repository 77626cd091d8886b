package service

import (
	"editorial/internal/apperr"
	"editorial/internal/config"
	"editorial/internal/dto"
	"editorial/internal/logger"
	"editorial/internal/model"
	"editorial/pkg/auth"

	"github.com/mojocn/base64Captcha"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// captchaStore 验证码内存存储
var captchaStore = base64Captcha.DefaultMemStore

// UserService 后台用户管理和登录
type UserService struct {
	db *gorm.DB
}

// NewUserService 创建用户服务
func NewUserService(db *gorm.DB) *UserService {
	return &UserService{db: db}
}

// GenerateCaptcha 生成图片验证码
func (s *UserService) GenerateCaptcha() (*dto.CaptchaResponse, error) {
	cfg := config.GlobalConfig.Captcha
	driver := base64Captcha.NewDriverDigit(cfg.ImgHeight, cfg.ImgWidth, cfg.KeyLong, 0.7, 70)
	captcha := base64Captcha.NewCaptcha(driver, captchaStore)

	id, b64s, _, err := captcha.Generate()
	if err != nil {
		return nil, err
	}
	return &dto.CaptchaResponse{CaptchaID: id, ImageData: b64s}, nil
}

// Login 用户登录，校验验证码和密码后签发令牌对
func (s *UserService) Login(req *dto.LoginRequest) (*dto.LoginResponse, error) {
	if !captchaStore.Verify(req.CaptchaID, req.CaptchaCode, true) {
		return nil, apperr.InvalidArgument(apperr.KindUser, req.Username, "验证码错误或已过期")
	}

	var user model.User
	if err := s.db.Where("username = ?", req.Username).First(&user).Error; err != nil {
		// 不区分用户不存在和密码错误，避免账号探测
		return nil, apperr.InvalidArgument(apperr.KindUser, req.Username, "用户名或密码错误")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)); err != nil {
		return nil, apperr.InvalidArgument(apperr.KindUser, req.Username, "用户名或密码错误")
	}

	pair, err := auth.GenerateTokenPair(user.ID, user.Role)
	if err != nil {
		return nil, err
	}

	logger.GetSugaredLogger().Infof("用户登录成功 user_id=%d username=%s", user.ID, user.Username)
	return &dto.LoginResponse{
		UserID:       user.ID,
		Username:     user.Username,
		Nickname:     user.Nickname,
		Role:         user.Role,
		AccessToken:  pair.AccessToken,
		RefreshToken: pair.RefreshToken,
		ExpiresIn:    pair.ExpiresIn,
	}, nil
}

// RefreshToken 用刷新令牌换取新的令牌对
func (s *UserService) RefreshToken(refreshToken string) (*auth.TokenPair, error) {
	claims, err := auth.ParseToken(refreshToken)
	if err != nil {
		return nil, apperr.InvalidArgument(apperr.KindUser, "", "刷新令牌无效或已过期")
	}
	if claims.Type != auth.RefreshToken {
		return nil, apperr.InvalidArgument(apperr.KindUser, "", "令牌类型错误")
	}

	var user model.User
	if err := s.db.First(&user, claims.UserID).Error; err != nil {
		return nil, apperr.FromStorage(err, apperr.KindUser, "")
	}
	return auth.GenerateTokenPair(user.ID, user.Role)
}

// CreateUser 创建后台用户
func (s *UserService) CreateUser(req *dto.UserCreateRequest) (*model.User, error) {
	var count int64
	if err := s.db.Model(&model.User{}).Where("username = ?", req.Username).Count(&count).Error; err != nil {
		return nil, err
	}
	if count > 0 {
		return nil, apperr.Conflict(apperr.KindUser, req.Username, "用户名已存在")
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	role := req.Role
	if role == "" {
		role = "editor"
	}
	user := &model.User{
		Username: req.Username,
		Password: string(hashed),
		Nickname: req.Nickname,
		Role:     role,
	}
	if err := s.db.Create(user).Error; err != nil {
		return nil, apperr.FromStorage(err, apperr.KindUser, req.Username)
	}
	return user, nil
}

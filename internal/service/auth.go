package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"go.uber.org/zap"

	"nexgenhealth/config"
	"nexgenhealth/internal/domain"
	"nexgenhealth/internal/repository"
	"nexgenhealth/pkg/auth"
)

type tokenClaims struct {
	jwt.RegisteredClaims
	UserID int64           `json:"user_id"`
	Role   domain.UserRole `json:"role"`
}

type AuthServiceImpl struct {
	userRepo      repository.UserRepository
	notifications NotificationService
	jwtConfig     config.JWTConfig
	logger        *zap.Logger
}

func NewAuthService(userRepo repository.UserRepository, notifications NotificationService, jwtConfig config.JWTConfig, logger *zap.Logger) *AuthServiceImpl {
	return &AuthServiceImpl{
		userRepo:      userRepo,
		notifications: notifications,
		jwtConfig:     jwtConfig,
		logger:        logger,
	}
}

func (s *AuthServiceImpl) Register(ctx context.Context, dto domain.RegisterRequest) (int64, error) {
	if existing, err := s.userRepo.GetByEmail(ctx, dto.Email); err == nil && existing != nil {
		return 0, fmt.Errorf("пользователь с таким email: %w", domain.ErrAlreadyExists)
	}
	if existing, err := s.userRepo.GetByUsername(ctx, dto.Username); err == nil && existing != nil {
		return 0, fmt.Errorf("пользователь с таким именем: %w", domain.ErrAlreadyExists)
	}

	hashedPassword, err := auth.HashPassword(dto.Password)
	if err != nil {
		s.logger.Error("ошибка при хешировании пароля", zap.Error(err))
		return 0, errors.New("ошибка при регистрации пользователя")
	}

	user := domain.User{
		Username:     dto.Username,
		Email:        dto.Email,
		PasswordHash: hashedPassword,
		Role:         dto.Role,
		Status:       domain.UserStatusPending,
		FCMToken:     dto.FCMToken,
	}

	userID, err := s.userRepo.Create(ctx, user)
	if err != nil {
		s.logger.Error("ошибка при создании пользователя", zap.Error(err))
		return 0, errors.New("ошибка при регистрации пользователя")
	}

	s.notifications.NotifyAdmins(ctx,
		fmt.Sprintf("A new user has registered with the username %s.", dto.Username),
		domain.NotificationUserRegistered,
	)

	return userID, nil
}

func (s *AuthServiceImpl) Login(ctx context.Context, dto domain.LoginRequest) (*domain.Token, error) {
	user, err := s.userRepo.GetByEmail(ctx, dto.Email)
	if err != nil {
		s.logger.Debug("пользователь не найден", zap.String("email", dto.Email))
		return nil, domain.ErrInvalidCredentials
	}

	ok, err := auth.VerifyPassword(dto.Password, user.PasswordHash)
	if err != nil || !ok {
		return nil, domain.ErrInvalidCredentials
	}

	// Не принятые администратором аккаунты не допускаются к входу.
	if user.Status != domain.UserStatusAccepted {
		return nil, domain.ErrInvalidCredentials
	}

	claims := tokenClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   fmt.Sprintf("%d", user.ID),
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(s.jwtConfig.AccessTokenTTL)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
		UserID: user.ID,
		Role:   user.Role,
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(s.jwtConfig.SigningKey))
	if err != nil {
		s.logger.Error("ошибка подписи токена", zap.Error(err))
		return nil, errors.New("ошибка при аутентификации")
	}

	return &domain.Token{
		AccessToken: signed,
		TokenType:   "bearer",
	}, nil
}

func (s *AuthServiceImpl) ParseToken(ctx context.Context, tokenString string) (int64, domain.UserRole, error) {
	token, err := jwt.ParseWithClaims(tokenString, &tokenClaims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("неожиданный метод подписи: %v", token.Header["alg"])
		}
		return []byte(s.jwtConfig.SigningKey), nil
	})

	if err != nil {
		return 0, "", fmt.Errorf("ошибка парсинга токена: %w", err)
	}

	claims, ok := token.Claims.(*tokenClaims)
	if !ok || !token.Valid {
		return 0, "", errors.New("недействительный токен")
	}

	return claims.UserID, claims.Role, nil
}

func (s *AuthServiceImpl) StatusByEmail(ctx context.Context, email string) (domain.UserStatus, error) {
	user, err := s.userRepo.GetByEmail(ctx, email)
	if err != nil {
		return "", err
	}
	return user.Status, nil
}

package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/akashadhithyan11707-web/collage-chatbot/internal/dto"
	"github.com/akashadhithyan11707-web/collage-chatbot/internal/models"
	"github.com/akashadhithyan11707-web/collage-chatbot/internal/repository"
	"github.com/akashadhithyan11707-web/collage-chatbot/pkg/auth"
	"github.com/akashadhithyan11707-web/collage-chatbot/pkg/validation"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type AuthService struct {
	users      UserStore
	photos     *PhotoStorage
	jwtManager *auth.JWTManager
	validator  *validation.Validator
	logger     *zap.Logger
}

func NewAuthService(users UserStore, photos *PhotoStorage, jwtManager *auth.JWTManager, validator *validation.Validator, logger *zap.Logger) *AuthService {
	return &AuthService{
		users:      users,
		photos:     photos,
		jwtManager: jwtManager,
		validator:  validator,
		logger:     logger,
	}
}

// Register creates a student or teacher account. Only students keep a
// photo; a photo of the wrong type fails the registration.
func (s *AuthService) Register(ctx context.Context, req *dto.RegisterRequest, photo *PhotoUpload) (*dto.AuthResponse, error) {
	req.Role = sanitizeUTF8(req.Role)
	req.EmailPhone = sanitizeUTF8(req.EmailPhone)
	if err := s.validator.Struct(req); err != nil {
		return nil, err
	}

	if existing, _ := s.users.GetByIdentity(ctx, req.EmailPhone); existing != nil {
		return nil, ErrUserExists
	}

	role := models.Role(req.Role)
	var photoPath *string
	if role == models.RoleStudent && photo != nil && photo.Filename != "" {
		path, err := s.photos.Save(photo)
		if err != nil {
			return nil, err
		}
		photoPath = &path
	}

	hashedPassword, err := auth.HashPassword(req.Password)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	user := &models.User{
		ID:         uuid.New(),
		EmailPhone: req.EmailPhone,
		Password:   hashedPassword,
		Role:       role,
		Name:       optional(sanitizeUTF8(req.Name)),
		RollNumber: optional(sanitizeUTF8(req.RollNumber)),
		Department: optional(sanitizeUTF8(req.Department)),
		PhotoPath:  photoPath,
		CreatedAt:  now,
		UpdatedAt:  now,
	}

	if err := s.users.Create(ctx, user); err != nil {
		if photoPath != nil {
			_ = s.photos.Remove(*photoPath)
		}
		if errors.Is(err, repository.ErrDuplicate) {
			return nil, ErrUserExists
		}
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	s.logger.Info("User registered", zap.String("user_id", user.ID.String()), zap.String("role", req.Role))
	return s.issueTokens(user)
}

func (s *AuthService) Login(ctx context.Context, req *dto.LoginRequest) (*dto.AuthResponse, error) {
	req.EmailPhone = sanitizeUTF8(req.EmailPhone)
	if err := s.validator.Struct(req); err != nil {
		return nil, err
	}

	user, err := s.users.GetByIdentity(ctx, req.EmailPhone)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}

	if !auth.CheckPasswordHash(req.Password, user.Password) {
		return nil, ErrInvalidCredentials
	}

	return s.issueTokens(user)
}

// RefreshToken exchanges a refresh token for a new token pair. Access
// tokens are rejected.
func (s *AuthService) RefreshToken(ctx context.Context, refreshToken string) (*dto.AuthResponse, error) {
	claims, err := s.jwtManager.ValidateRefreshToken(refreshToken)
	if err != nil {
		return nil, ErrInvalidCredentials
	}

	userID, err := uuid.Parse(claims.UserID)
	if err != nil {
		return nil, ErrInvalidCredentials
	}

	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}

	return s.issueTokens(user)
}

func (s *AuthService) issueTokens(user *models.User) (*dto.AuthResponse, error) {
	accessToken, err := s.jwtManager.GenerateToken(user.ID.String(), user.EmailPhone, string(user.Role))
	if err != nil {
		return nil, err
	}

	refreshToken, err := s.jwtManager.GenerateRefreshToken(user.ID.String())
	if err != nil {
		return nil, err
	}

	return &dto.AuthResponse{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		TokenType:    "Bearer",
		ExpiresIn:    int64(s.jwtManager.GetTokenDuration().Seconds()),
		Redirect:     redirectFor(user.Role),
		User:         toUserResponse(user),
	}, nil
}

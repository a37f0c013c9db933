package service

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/golang-jwt/jwt/v5"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"github.com/Iotonix/osams/internal/models"
	"github.com/Iotonix/osams/pkg/config"
	appErrors "github.com/Iotonix/osams/pkg/errors"
)

type userRepository interface {
	FindByEmail(ctx context.Context, email string) (*models.User, error)
	FindByID(ctx context.Context, id string) (*models.User, error)
	TouchLastLogin(ctx context.Context, id string) error
}

// AuthService issues and validates access tokens.
type AuthService struct {
	users      userRepository
	secret     []byte
	expiration time.Duration
	issuer     string
	validator  *validator.Validate
	logger     *zap.Logger
	now        func() time.Time
}

// NewAuthService wires authentication.
func NewAuthService(users userRepository, cfg config.JWTConfig, validate *validator.Validate, logger *zap.Logger) *AuthService {
	if validate == nil {
		validate = validator.New()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	expiration := cfg.Expiration
	if expiration <= 0 {
		expiration = 24 * time.Hour
	}
	return &AuthService{
		users:      users,
		secret:     []byte(cfg.Secret),
		expiration: expiration,
		issuer:     cfg.Issuer,
		validator:  validate,
		logger:     logger,
		now:        time.Now,
	}
}

// Login verifies credentials and issues a signed token.
func (s *AuthService) Login(ctx context.Context, req models.LoginRequest) (*models.LoginResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid login payload")
	}

	user, err := s.users.FindByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, appErrors.ErrInvalidCredentials
		}
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "load user")
	}
	if !user.Active {
		return nil, appErrors.ErrInactiveAccount
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		return nil, appErrors.ErrInvalidCredentials
	}

	issuedAt := s.now().UTC()
	expiresAt := issuedAt.Add(s.expiration)
	claims := models.JWTClaims{
		UserID: user.ID,
		Email:  user.Email,
		Role:   user.Role,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    s.issuer,
			Subject:   user.ID,
			IssuedAt:  jwt.NewNumericDate(issuedAt),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
		},
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "sign token")
	}

	if err := s.users.TouchLastLogin(ctx, user.ID); err != nil {
		s.logger.Warn("last login update failed", zap.String("user_id", user.ID), zap.Error(err))
	}
	s.logger.Info("user logged in", zap.String("user_id", user.ID), zap.String("role", string(user.Role)))

	return &models.LoginResponse{
		AccessToken: token,
		ExpiresIn:   int64(s.expiration.Seconds()),
		IssuedAt:    issuedAt,
		User: models.UserInfo{
			ID:       user.ID,
			Email:    user.Email,
			FullName: user.FullName,
			Role:     user.Role,
		},
	}, nil
}

// ValidateToken parses and verifies an access token.
func (s *AuthService) ValidateToken(tokenString string) (*models.JWTClaims, error) {
	claims := &models.JWTClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, appErrors.ErrUnauthorized
		}
		return s.secret, nil
	}, jwt.WithTimeFunc(func() time.Time { return s.now() }))
	if err != nil || !token.Valid {
		return nil, appErrors.ErrUnauthorized
	}
	return claims, nil
}

// Profile loads the identity behind a token's user id.
func (s *AuthService) Profile(ctx context.Context, userID string) (*models.UserInfo, error) {
	user, err := s.users.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, appErrors.ErrUnauthorized
		}
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "load user")
	}
	return &models.UserInfo{
		ID:       user.ID,
		Email:    user.Email,
		FullName: user.FullName,
		Role:     user.Role,
	}, nil
}

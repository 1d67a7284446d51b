package service

import (
	"errors"
	"fmt"
	"regexp"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/m06522052-gif/AqeelApp/internal/config"
	"github.com/m06522052-gif/AqeelApp/internal/entity"
	"github.com/m06522052-gif/AqeelApp/internal/middleware"
	"github.com/m06522052-gif/AqeelApp/internal/repository"
)

// ErrInvalidCredentials covers unknown user, wrong password and disabled
// accounts alike, so login responses do not leak which one it was.
var ErrInvalidCredentials = errors.New("invalid username or password")

var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

type AuthService struct {
	users  *repository.UserRepository
	jwtCfg config.JWTConfig
}

func NewAuthService(users *repository.UserRepository, jwtCfg config.JWTConfig) *AuthService {
	return &AuthService{users: users, jwtCfg: jwtCfg}
}

type LoginRequest struct {
	Login    string `json:"login" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type LoginResult struct {
	Token string       `json:"token"`
	User  *entity.User `json:"user"`
}

func (s *AuthService) Login(req LoginRequest) (*LoginResult, error) {
	user, err := s.users.GetByLogin(req.Login)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, fmt.Errorf("failed to look up user: %w", err)
	}
	if !user.IsActive {
		return nil, ErrInvalidCredentials
	}
	if bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)) != nil {
		return nil, ErrInvalidCredentials
	}

	token, err := s.issueToken(user)
	if err != nil {
		return nil, fmt.Errorf("failed to sign token: %w", err)
	}
	return &LoginResult{Token: token, User: user}, nil
}

func (s *AuthService) issueToken(user *entity.User) (string, error) {
	now := time.Now()
	claims := middleware.JWTClaims{
		UserID:   user.ID,
		Username: user.Username,
		Role:     user.Role,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    s.jwtCfg.Issuer,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.jwtCfg.Expire)),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(s.jwtCfg.Secret))
}

// HashPassword applies bcrypt with the default cost.
func HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

// ValidatePasswordStrength enforces the account password policy:
// at least 8 characters with one lowercase, one uppercase and one digit.
func ValidatePasswordStrength(password string) error {
	if len(password) < 8 {
		return fmt.Errorf("password must be at least 8 characters: %w", ErrValidation)
	}
	var hasLower, hasUpper, hasDigit bool
	for _, r := range password {
		switch {
		case r >= 'a' && r <= 'z':
			hasLower = true
		case r >= 'A' && r <= 'Z':
			hasUpper = true
		case r >= '0' && r <= '9':
			hasDigit = true
		}
	}
	if !hasLower {
		return fmt.Errorf("password must contain a lowercase letter: %w", ErrValidation)
	}
	if !hasUpper {
		return fmt.Errorf("password must contain an uppercase letter: %w", ErrValidation)
	}
	if !hasDigit {
		return fmt.Errorf("password must contain a digit: %w", ErrValidation)
	}
	return nil
}

func validateEmail(email string) error {
	if !emailPattern.MatchString(email) {
		return fmt.Errorf("invalid email address: %w", ErrValidation)
	}
	return nil
}

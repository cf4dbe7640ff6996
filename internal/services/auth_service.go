// internal/services/auth_service.go
package services

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/comparisonmarket/cm-backend/internal/config"
	"github.com/comparisonmarket/cm-backend/internal/models"
	"github.com/comparisonmarket/cm-backend/internal/utils"
)

type AuthService struct {
	db  *gorm.DB
	cfg *config.Config
}

type RegisterRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
	Name     string `json:"name,omitempty"`
}

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// AuthResponse carries the user plus the opaque session token that goes into
// the signed cookie.
type AuthResponse struct {
	User         *models.User
	SessionToken string
	ExpiresAt    time.Time
}

func NewAuthService(db *gorm.DB, cfg *config.Config) *AuthService {
	return &AuthService{
		db:  db,
		cfg: cfg,
	}
}

func (s *AuthService) Register(req *RegisterRequest) (*AuthResponse, error) {
	// Validate request
	if err := utils.ValidateStruct(req); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrValidation, err)
	}

	// Check if user already exists
	var existingUser models.User
	if err := s.db.Where("email = ?", req.Email).First(&existingUser).Error; err == nil {
		return nil, ErrEmailInUse
	}

	// Create new user
	user := &models.User{
		Email: req.Email,
		Name:  req.Name,
	}

	// Set password
	if err := user.SetPassword(req.Password); err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	// Save user
	if err := s.db.Create(user).Error; err != nil {
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	return s.createSession(user)
}

func (s *AuthService) Login(req *LoginRequest) (*AuthResponse, error) {
	// Validate request
	if err := utils.ValidateStruct(req); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrValidation, err)
	}

	// Find user by email
	var user models.User
	if err := s.db.Where("email = ?", req.Email).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, fmt.Errorf("database error: %w", err)
	}

	// Verify password
	if err := user.CheckPassword(req.Password); err != nil {
		return nil, ErrInvalidCredentials
	}

	return s.createSession(&user)
}

// createSession stores a random opaque token with a fixed expiry. No refresh
// or rotation; the expiry set here is final.
func (s *AuthService) createSession(user *models.User) (*AuthResponse, error) {
	session := &models.Session{
		Token:     uuid.NewString(),
		UserID:    user.ID,
		ExpiresAt: time.Now().Add(time.Duration(s.cfg.Session.TTLDays) * 24 * time.Hour),
	}

	if err := s.db.Create(session).Error; err != nil {
		return nil, fmt.Errorf("failed to create session: %w", err)
	}

	return &AuthResponse{
		User:         user,
		SessionToken: session.Token,
		ExpiresAt:    session.ExpiresAt,
	}, nil
}

// GetSession fails closed: any missing, unknown, or expired token yields nil
// with no error. Expired rows are deleted lazily here rather than swept.
func (s *AuthService) GetSession(token string) *models.Session {
	if token == "" {
		return nil
	}

	var session models.Session
	if err := s.db.Preload("User").Where("token = ?", token).First(&session).Error; err != nil {
		return nil
	}

	if session.Expired() {
		s.db.Delete(&session)
		return nil
	}

	return &session
}

// DestroySession removes the session row. Unknown tokens are a no-op.
func (s *AuthService) DestroySession(token string) {
	if token == "" {
		return
	}
	s.db.Where("token = ?", token).Delete(&models.Session{})
}

func (s *AuthService) GetUserByID(userID uuid.UUID) (*models.User, error) {
	var user models.User
	if err := s.db.First(&user, "id = ?", userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("database error: %w", err)
	}
	return &user, nil
}

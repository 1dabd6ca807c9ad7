package services

import (
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"
	"time"

	"github.com/zineb-24/ReportingBackend/internal/models"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

var (
	ErrInvalidCredentials = errors.New("unable to log in with provided credentials")
	ErrAccountDisabled    = errors.New("user account is disabled")
)

type AuthService struct {
	db *gorm.DB
}

func NewAuthService(db *gorm.DB) *AuthService {
	return &AuthService{db: db}
}

// Login verifies credentials and returns the user with their session token.
// The token is persistent: one row per user, reused across logins. Credential
// mismatch is reported before the disabled check, so a wrong password on a
// disabled account does not reveal the account state.
func (s *AuthService) Login(email, password string) (*models.User, *models.AuthToken, error) {
	if email == "" || password == "" {
		return nil, nil, ErrInvalidCredentials
	}

	var user models.User
	if err := s.db.Where("email = ?", email).First(&user).Error; err != nil {
		return nil, nil, ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return nil, nil, ErrInvalidCredentials
	}

	if !user.IsActive {
		return nil, nil, ErrAccountDisabled
	}

	token, err := s.getOrCreateToken(&user)
	if err != nil {
		return nil, nil, err
	}

	now := time.Now()
	if err := s.db.Model(&user).Update("last_login", now).Error; err != nil {
		return nil, nil, fmt.Errorf("failed to update last login: %w", err)
	}
	user.LastLogin = &now

	return &user, token, nil
}

func (s *AuthService) getOrCreateToken(user *models.User) (*models.AuthToken, error) {
	var token models.AuthToken
	err := s.db.Where("user_id = ?", user.ID).First(&token).Error
	if err == nil {
		return &token, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("failed to look up token: %w", err)
	}

	key, err := generateTokenKey()
	if err != nil {
		return nil, err
	}

	token = models.AuthToken{
		Key:    key,
		UserID: user.ID,
	}
	if err := s.db.Create(&token).Error; err != nil {
		// Concurrent first login for the same user: the unique index on
		// user_id wins, reuse the row that got there first.
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			if err := s.db.Where("user_id = ?", user.ID).First(&token).Error; err == nil {
				return &token, nil
			}
		}
		return nil, fmt.Errorf("failed to store token: %w", err)
	}

	return &token, nil
}

// generateTokenKey returns a 40-char hex key from 20 random bytes.
func generateTokenKey() (string, error) {
	raw := make([]byte, 20)
	if _, err := rand.Read(raw); err != nil {
		return "", fmt.Errorf("failed to generate random bytes: %w", err)
	}
	return hex.EncodeToString(raw), nil
}

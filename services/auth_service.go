package services

import (
	"errors"
	"fmt"
	"strings"
	"sync"

	"room-booking-backend/models"
	"room-booking-backend/utils"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// AuthService gates the catalog's admin write path. Tokens are random
// hex held in memory; restarting the process logs everyone out, which
// is acceptable for a single admin surface.
type AuthService struct {
	DB *gorm.DB

	mu       sync.Mutex
	sessions map[string]uint // token -> admin id
}

func NewAuthService(db *gorm.DB) *AuthService {
	return &AuthService{DB: db, sessions: make(map[string]uint)}
}

func (s *AuthService) Login(username, password string) (string, error) {
	username = strings.TrimSpace(username)
	if username == "" || password == "" {
		return "", ErrInvalidCredentials
	}

	var admin models.Admin
	if err := s.DB.Where("username = ?", username).First(&admin).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", ErrInvalidCredentials
		}
		return "", fmt.Errorf("failed to load admin %s: %w", username, err)
	}

	if bcrypt.CompareHashAndPassword([]byte(admin.Password), []byte(password)) != nil {
		return "", ErrInvalidCredentials
	}

	token, err := utils.GenerateSecureToken(32)
	if err != nil {
		return "", fmt.Errorf("failed to generate session token: %w", err)
	}

	s.mu.Lock()
	s.sessions[token] = admin.ID
	s.mu.Unlock()

	return token, nil
}

func (s *AuthService) Verify(token string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, ok := s.sessions[token]
	return ok
}

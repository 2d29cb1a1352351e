// services/auth_service.go
package services

import (
	"errors"
	"fmt"
	"strings"

	"stayfinder-backend/models"
	"stayfinder-backend/utils"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// AuthService handles signup, login and profile lookup. Sessions are JWTs;
// the signed-in identity travels in the token, never in a package global.
type AuthService struct {
	DB *gorm.DB
}

func NewAuthService(db *gorm.DB) *AuthService {
	return &AuthService{DB: db}
}

// SignUp creates a profile and returns it with a fresh session token.
func (s *AuthService) SignUp(email, password, firstName, lastName string) (*models.Profile, string, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" || !strings.Contains(email, "@") {
		return nil, "", fmt.Errorf("validation: a valid email is required")
	}
	if len(password) < 6 {
		return nil, "", fmt.Errorf("validation: password must be at least 6 characters")
	}

	var existing models.Profile
	err := s.DB.Where("email = ?", email).First(&existing).Error
	if err == nil {
		return nil, "", errors.New("email_taken")
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, "", fmt.Errorf("db error checking email: %w", err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, "", fmt.Errorf("failed to hash password: %w", err)
	}

	profile := models.Profile{
		Email:        email,
		PasswordHash: string(hash),
		FirstName:    strings.TrimSpace(firstName),
		LastName:     strings.TrimSpace(lastName),
	}
	if err := s.DB.Create(&profile).Error; err != nil {
		return nil, "", fmt.Errorf("failed to create profile: %w", err)
	}

	token, err := utils.GenerateToken(profile.ID, profile.Email)
	if err != nil {
		return nil, "", fmt.Errorf("failed to issue token: %w", err)
	}
	return &profile, token, nil
}

// Login checks credentials and issues a session token. A wrong password and
// an unknown email produce the same sentinel.
func (s *AuthService) Login(email, password string) (*models.Profile, string, error) {
	email = strings.ToLower(strings.TrimSpace(email))

	var profile models.Profile
	if err := s.DB.Where("email = ?", email).First(&profile).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, "", errors.New("invalid_credentials")
		}
		return nil, "", fmt.Errorf("db error fetching profile: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(profile.PasswordHash), []byte(password)); err != nil {
		return nil, "", errors.New("invalid_credentials")
	}

	token, err := utils.GenerateToken(profile.ID, profile.Email)
	if err != nil {
		return nil, "", fmt.Errorf("failed to issue token: %w", err)
	}
	return &profile, token, nil
}

// GetProfile resolves the current session's profile.
func (s *AuthService) GetProfile(id uint) (*models.Profile, error) {
	var profile models.Profile
	if err := s.DB.First(&profile, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errors.New("profile_not_found")
		}
		return nil, fmt.Errorf("failed to fetch profile: %w", err)
	}
	return &profile, nil
}

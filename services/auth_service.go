package services

import (
	"errors"
	"net/http"

	"github.com/abdulazeespr/HungryGo/models"
	"github.com/abdulazeespr/HungryGo/utils"

	"gorm.io/gorm"
)

type AuthService struct {
	db        *gorm.DB
	jwtSecret string
}

func NewAuthService(db *gorm.DB, jwtSecret string) *AuthService {
	return &AuthService{db: db, jwtSecret: jwtSecret}
}

// Signup registers a new customer account and returns it with a fresh token.
func (s *AuthService) Signup(email, password, name string) (*models.User, string, error) {
	var count int64
	if err := s.db.Model(&models.User{}).Where("email = ?", email).Count(&count).Error; err != nil {
		return nil, "", err
	}
	if count > 0 {
		return nil, "", utils.NewApiError(http.StatusBadRequest, "Email already exists")
	}

	hashed, err := utils.HashPassword(password)
	if err != nil {
		return nil, "", err
	}

	user := models.User{
		Email:    email,
		Password: hashed,
		Name:     name,
		Role:     models.RoleCustomer,
		Status:   models.UserActive,
	}
	if err := s.db.Create(&user).Error; err != nil {
		return nil, "", err
	}

	token, err := utils.GenerateJWT(user.ID, s.jwtSecret)
	if err != nil {
		return nil, "", err
	}

	return &user, token, nil
}

func (s *AuthService) Login(email, password string) (*models.User, string, error) {
	var user models.User
	err := s.db.First(&user, "email = ?", email).Error
	if errors.Is(err, gorm.ErrRecordNotFound) || (err == nil && !utils.CheckPasswordHash(password, user.Password)) {
		return nil, "", utils.NewApiError(http.StatusUnauthorized, "Invalid credentials")
	}
	if err != nil {
		return nil, "", err
	}

	if user.Status != models.UserActive {
		return nil, "", utils.NewApiError(http.StatusUnauthorized, "Account is inactive")
	}

	token, err := utils.GenerateJWT(user.ID, s.jwtSecret)
	if err != nil {
		return nil, "", err
	}

	return &user, token, nil
}

func (s *AuthService) Me(id string) (*models.User, error) {
	var user models.User
	if err := s.db.First(&user, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, utils.NewApiError(http.StatusNotFound, "User not found")
		}
		return nil, err
	}
	return &user, nil
}

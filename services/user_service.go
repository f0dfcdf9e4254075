package services

import (
	"errors"
	"net/http"

	"github.com/abdulazeespr/HungryGo/models"
	"github.com/abdulazeespr/HungryGo/utils"

	"gorm.io/gorm"
)

type UserService struct {
	db *gorm.DB
}

func NewUserService(db *gorm.DB) *UserService {
	return &UserService{db: db}
}

// UserUpdate carries the mutable user fields; empty values are left alone.
type UserUpdate struct {
	Name   string
	Email  string
	Status string
	Role   string
}

func (s *UserService) Get(id string) (*models.User, error) {
	var user models.User
	if err := s.db.First(&user, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, utils.NewApiError(http.StatusNotFound, "User not found")
		}
		return nil, err
	}
	return &user, nil
}

func (s *UserService) Update(actor Actor, id string, in UserUpdate) (*models.User, error) {
	user, err := s.Get(id)
	if err != nil {
		return nil, err
	}

	if !CanAccess(actor, id) {
		return nil, utils.NewApiError(http.StatusForbidden, "Not authorized to update this user")
	}
	if in.Role != "" && actor.Role != models.RoleAdmin {
		return nil, utils.NewApiError(http.StatusForbidden, "Not authorized to change role")
	}

	if in.Name != "" {
		user.Name = in.Name
	}
	if in.Email != "" {
		user.Email = in.Email
	}
	if in.Status != "" {
		user.Status = in.Status
	}
	if in.Role != "" {
		user.Role = in.Role
	}

	if err := s.db.Save(user).Error; err != nil {
		return nil, err
	}
	return user, nil
}

func (s *UserService) List() ([]models.User, error) {
	var users []models.User
	err := s.db.Find(&users).Error
	return users, err
}

func (s *UserService) Delete(id string) error {
	if _, err := s.Get(id); err != nil {
		return err
	}
	return s.db.Delete(&models.User{}, "id = ?", id).Error
}

package services

import (
	"errors"
	"fmt"
	"strings"

	"github.com/Pushkal2407/nutri-llama/models"

	"gorm.io/gorm"
)

// UserFinder is the read-side boundary the webhook and patient views need.
type UserFinder interface {
	GetUserByPhone(phoneNumber string) (*models.User, error)
}

type UserService struct {
	db *gorm.DB
}

func NewUserService(db *gorm.DB) *UserService {
	return &UserService{db: db}
}

// CreateUser registers a phone number and returns the new user id.
func (s *UserService) CreateUser(phoneNumber, name, healthGoal string) (uint, error) {
	user := &models.User{
		PhoneNumber: phoneNumber,
		Name:        name,
		HealthGoal:  healthGoal,
	}
	if err := s.db.Create(user).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) || strings.Contains(err.Error(), "duplicate key") {
			return 0, fmt.Errorf("%w: phone number %s", ErrDuplicateUser, phoneNumber)
		}
		return 0, err
	}
	return user.ID, nil
}

// GetUserByPhone returns nil without error when the number is unregistered.
func (s *UserService) GetUserByPhone(phoneNumber string) (*models.User, error) {
	var user models.User
	err := s.db.Where("phone_number = ?", phoneNumber).First(&user).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (s *UserService) UpdateHealthGoal(userID uint, newGoal string) (bool, error) {
	res := s.db.Model(&models.User{}).
		Where("id = ?", userID).
		Update("health_goal", newGoal)
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}

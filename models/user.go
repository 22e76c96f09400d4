package models

import (
	"gorm.io/gorm"
)

type User struct {
	gorm.Model
	PhoneNumber string `gorm:"type:varchar(15);uniqueIndex;not null"`
	Name        string `gorm:"type:varchar(100);not null"`
	HealthGoal  string `gorm:"type:text"` // free text, e.g. "lose weight", "manage blood sugar"
	Meals       []Meal
}

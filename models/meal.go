package models

import (
	"time"

	"gorm.io/gorm"
)

// One recorded meal. Append-only: rows are never updated or deleted, the
// daily ledger is always recomputed from them.
type Meal struct {
	gorm.Model
	UserID            uint      `gorm:"index;not null"` // FK → users.id
	Timestamp         time.Time // when the meal was eaten (defaults to record time)
	MealName          string    `gorm:"type:varchar(100)"`
	ImageURL          *string   `gorm:"type:varchar(500)"` // mongodb:// reference, nil for described meals
	EstimatedCalories *float64  // nil when the analyzer gave no number
	GlycemicIndex     *float64
	HealthRating      int `gorm:"check:health_rating BETWEEN 0 AND 10"`
}

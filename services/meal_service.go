package services

import (
	"time"

	"github.com/Pushkal2407/nutri-llama/models"

	"gorm.io/gorm"
)

type MealService struct {
	db *gorm.DB
}

func NewMealService(db *gorm.DB) *MealService {
	return &MealService{db: db}
}

// RecordMeal appends one meal row and returns its id. Nil calorie/GI values
// are stored as SQL NULLs; the ledger treats them as zero when summing.
func (s *MealService) RecordMeal(
	userID uint,
	mealName string,
	imageURL *string,
	estimatedCalories *float64,
	glycemicIndex *float64,
	healthRating int,
) (uint, error) {
	meal := &models.Meal{
		UserID:            userID,
		Timestamp:         time.Now(),
		MealName:          mealName,
		ImageURL:          imageURL,
		EstimatedCalories: estimatedCalories,
		GlycemicIndex:     glycemicIndex,
		HealthRating:      healthRating,
	}
	if err := s.db.Create(meal).Error; err != nil {
		return 0, err
	}
	return meal.ID, nil
}

// GetMealsToday builds the daily ledger for the current calendar day. The
// ledger is derived state: recomputed from the meals table on every call,
// never cached.
func (s *MealService) GetMealsToday(userID uint) (*models.DailyLedger, error) {
	return s.GetMealsForDate(userID, time.Now())
}

// GetMealsForDate is GetMealsToday for an arbitrary day.
func (s *MealService) GetMealsForDate(userID uint, day time.Time) (*models.DailyLedger, error) {
	start := time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, day.Location())
	end := start.AddDate(0, 0, 1)

	var meals []models.Meal
	err := s.db.
		Where("user_id = ? AND timestamp >= ? AND timestamp < ?", userID, start, end).
		Order("timestamp ASC").
		Find(&meals).Error
	if err != nil {
		return nil, err
	}

	ledger := &models.DailyLedger{
		Meals: make([]models.MealEntry, 0, len(meals)),
		Summary: models.LedgerSummary{
			TotalMeals: len(meals),
			Date:       day.Format("2006-01-02"),
		},
	}
	for _, m := range meals {
		ledger.Meals = append(ledger.Meals, models.MealEntry{
			MealID:            m.ID,
			Timestamp:         models.MealTime{Time: m.Timestamp},
			MealName:          m.MealName,
			ImageURL:          m.ImageURL,
			EstimatedCalories: m.EstimatedCalories,
			GlycemicIndex:     m.GlycemicIndex,
			HealthRating:      m.HealthRating,
		})
		if m.EstimatedCalories != nil {
			ledger.Summary.TotalCalories += *m.EstimatedCalories
		}
	}
	return ledger, nil
}

// PatientData bundles a user with their ledger for the care-team endpoint.
type PatientData struct {
	User    *models.User        `json:"user"`
	Meals   []models.MealEntry  `json:"meals"`
	Summary models.LedgerSummary `json:"summary"`
}

func (s *MealService) GetPatientData(users UserFinder, phoneNumber string) (*PatientData, error) {
	user, err := users.GetUserByPhone(phoneNumber)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, gorm.ErrRecordNotFound
	}
	ledger, err := s.GetMealsToday(user.ID)
	if err != nil {
		return nil, err
	}
	return &PatientData{User: user, Meals: ledger.Meals, Summary: ledger.Summary}, nil
}

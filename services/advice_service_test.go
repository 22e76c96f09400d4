package services

import (
	"testing"
	"time"

	"github.com/Pushkal2407/nutri-llama/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ledgerWithTotal(total float64) *models.DailyLedger {
	return &models.DailyLedger{
		Summary: models.LedgerSummary{TotalCalories: total},
	}
}

func TestSynthesizeAdviceHighDayHighGIWeightGoal(t *testing.T) {
	// 1800 prior + 300 meal = 2100 > 2000; GI 60 > 55; goal mentions weight.
	analysis := &models.FoodAnalysis{Calories: f64(300), GlycemicIndex: f64(60)}
	now := time.Now()

	advice := SynthesizeAdvice(analysis, ledgerWithTotal(1800), "lose weight", now)

	require.Len(t, advice, 3)
	assert.Contains(t, advice[0], "You've reached 2100 calories")
	assert.Contains(t, advice[1], "high glycemic index (60)")
	assert.Contains(t, advice[1], "Eating with protein or healthy fats")
	assert.Contains(t, advice[1], "Taking a short walk after eating")
	assert.Contains(t, advice[1], "Monitoring blood sugar 2 hours after eating")
	assert.Contains(t, advice[2], "You have -100 calories remaining")
	assert.Contains(t, advice[2], "This meal is 300 calories")
}

func TestSynthesizeAdviceNothingApplies(t *testing.T) {
	analysis := &models.FoodAnalysis{Calories: f64(400), GlycemicIndex: f64(40)}
	advice := SynthesizeAdvice(analysis, &models.DailyLedger{}, "maintain health", time.Now())
	assert.Empty(t, advice)
}

func TestSynthesizeAdviceMealSpacing(t *testing.T) {
	now := time.Date(2024, 11, 3, 13, 0, 0, 0, time.UTC)

	tests := []struct {
		name          string
		lastMeal      models.MealTime
		expectSpacing bool
	}{
		{
			name:          "last meal 30 minutes ago",
			lastMeal:      models.MealTime{Time: now.Add(-30 * time.Minute)},
			expectSpacing: true,
		},
		{
			name:          "last meal 3 hours ago",
			lastMeal:      models.MealTime{Time: now.Add(-3 * time.Hour)},
			expectSpacing: false,
		},
		{
			name:          "string timestamp cannot be compared",
			lastMeal:      models.MealTime{Raw: "12:45 PM"},
			expectSpacing: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ledger := &models.DailyLedger{
				Meals: []models.MealEntry{
					{MealName: "Lunch", Timestamp: tt.lastMeal, EstimatedCalories: f64(500)},
				},
				Summary: models.LedgerSummary{TotalCalories: 500},
			}
			analysis := &models.FoodAnalysis{Calories: f64(200), GlycemicIndex: f64(40)}

			advice := SynthesizeAdvice(analysis, ledger, "maintain health", now)

			if tt.expectSpacing {
				require.Len(t, advice, 1)
				assert.Contains(t, advice[0], "less than 2 hours since your last meal")
			} else {
				assert.Empty(t, advice)
			}
		})
	}
}

func TestSynthesizeAdviceNoSpacingOnEmptyLedger(t *testing.T) {
	analysis := &models.FoodAnalysis{Calories: f64(300), GlycemicIndex: f64(60)}
	advice := SynthesizeAdvice(analysis, &models.DailyLedger{}, "lose weight", time.Now())

	for _, a := range advice {
		assert.NotContains(t, a, "Meal Timing")
	}
}

func TestSynthesizeAdviceNilNumbersCountAsZero(t *testing.T) {
	// A meal the model couldn't quantify triggers no numeric rules.
	analysis := &models.FoodAnalysis{}
	advice := SynthesizeAdvice(analysis, ledgerWithTotal(1999), "maintain health", time.Now())
	assert.Empty(t, advice)
}

func TestSynthesizeAdviceOrderStable(t *testing.T) {
	analysis := &models.FoodAnalysis{Calories: f64(300), GlycemicIndex: f64(60)}
	ledger := ledgerWithTotal(1800)
	now := time.Now()

	first := SynthesizeAdvice(analysis, ledger, "lose weight", now)
	for i := 0; i < 5; i++ {
		assert.Equal(t, first, SynthesizeAdvice(analysis, ledger, "lose weight", now))
	}
}

func TestThresholdConstants(t *testing.T) {
	// Behavioral parity pins: these values are business rules, not tunables.
	assert.Equal(t, 2000.0, DailyCalorieLimit)
	assert.Equal(t, 55.0, HighGIThreshold)
	assert.Equal(t, 2000.0, WeightGoalCalorieTarget)
	assert.Equal(t, 2*time.Hour, MinMealSpacing)
}

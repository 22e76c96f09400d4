package services

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/Pushkal2407/nutri-llama/models"
)

// Fixed business thresholds. The 2000 kcal daily cap and the 2000 kcal
// weight-goal target share a value today; whether that is one target or a
// coincidence is deliberately left open, so they stay separate names.
const (
	DailyCalorieLimit       = 2000.0
	HighGIThreshold         = 55.0
	WeightGoalCalorieTarget = 2000.0
	MinMealSpacing          = 2 * time.Hour
)

// SynthesizeAdvice derives the personalized advisories for one analyzed meal.
// Pure function over its inputs: an ordered checklist where every applicable
// rule fires and none short-circuits the others, so repeated calls give the
// same advice in the same order.
func SynthesizeAdvice(
	analysis *models.FoodAnalysis,
	ledger *models.DailyLedger,
	healthGoal string,
	now time.Time,
) []string {
	var advice []string

	calories := analysis.CaloriesValue()
	gi := analysis.GlycemicIndexValue()

	priorTotal := 0.0
	if ledger != nil {
		priorTotal = ledger.Summary.TotalCalories
	}
	totalCalories := priorTotal + calories

	if totalCalories > DailyCalorieLimit {
		advice = append(advice, fmt.Sprintf(
			"📊 Daily Calories: You've reached %s calories including this meal. "+
				"Consider a lighter option for remaining meals.",
			formatFloat(totalCalories),
		))
	}

	if gi > HighGIThreshold {
		advice = append(advice, fmt.Sprintf(
			"🩺 Blood Sugar Impact: This meal has a high glycemic index (%s). "+
				"Consider:\n"+
				"- Eating with protein or healthy fats\n"+
				"- Taking a short walk after eating\n"+
				"- Monitoring blood sugar 2 hours after eating",
			formatFloat(gi),
		))
	}

	if strings.Contains(strings.ToLower(healthGoal), "weight") {
		remaining := WeightGoalCalorieTarget - totalCalories
		advice = append(advice, fmt.Sprintf(
			"⚖️ Calorie Budget: You have %s calories remaining for the day. "+
				"This meal is %s calories.",
			formatFloat(remaining), formatFloat(calories),
		))
	}

	// Spacing only applies when the last meal carries a structured timestamp;
	// plain-string times can't be compared against now.
	if ledger != nil && len(ledger.Meals) > 0 {
		last := ledger.Meals[len(ledger.Meals)-1].Timestamp
		if last.Structured() && now.Sub(last.Time) < MinMealSpacing {
			advice = append(advice,
				"⏰ Meal Timing: It's been less than 2 hours since your last meal. "+
					"Consider waiting longer between meals for better blood sugar control.")
		}
	}

	return advice
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

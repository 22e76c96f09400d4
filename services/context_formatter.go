package services

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/Pushkal2407/nutri-llama/models"
)

// NoMealsRecorded is the fixed sentence for an empty ledger.
const NoMealsRecorded = "No meals recorded yet today."

// FormatDailyMeals renders a ledger into the compact text block embedded in
// prompts and sent back for summary requests. One line per meal in ledger
// order (ascending timestamp), then a running total.
func FormatDailyMeals(ledger *models.DailyLedger) string {
	if ledger == nil || len(ledger.Meals) == 0 {
		return NoMealsRecorded
	}

	var (
		lines         []string
		totalCalories float64
	)
	for _, meal := range ledger.Meals {
		lines = append(lines, fmt.Sprintf(
			"- %s at %s:\n  Calories: %s, Glycemic Index: %s",
			meal.MealName,
			meal.Timestamp.Display(),
			formatNumber(meal.EstimatedCalories),
			formatNumber(meal.GlycemicIndex),
		))
		if meal.EstimatedCalories != nil {
			totalCalories += *meal.EstimatedCalories
		}
	}

	summary := fmt.Sprintf("\nDaily Totals So Far:\n- Total Calories: %s",
		strconv.FormatFloat(totalCalories, 'f', -1, 64))

	return strings.Join(lines, "\n") + summary
}

func formatNumber(v *float64) string {
	if v == nil {
		return "unknown"
	}
	return strconv.FormatFloat(*v, 'f', -1, 64)
}

package services

import (
	"testing"

	"github.com/Pushkal2407/nutri-llama/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const measuredAnalysisJSON = `{
	"food_items": ["grilled chicken", "rice"],
	"meal_name": "Chicken Rice Bowl",
	"calories": 620,
	"glycemic_index": 58,
	"nutrition": {"carbs": 70, "proteins": 42, "fats": 14, "fiber": 4, "sugar": 3},
	"serving_size": "one large bowl",
	"health_considerations": ["moderate GI", "high protein"],
	"daily_context": {
		"total_calories_with_meal": 9999,
		"total_carbs_with_meal": 120,
		"remaining_calorie_budget": 500,
		"meal_timing_advice": "fine for lunch",
		"nutritional_balance": "protein heavy"
	},
	"goal_alignment": {"score": 7, "reasons": ["good protein"], "suggestions": ["less rice"]},
	"health_rating": 7,
	"meal_timing": {"ideal_time": "12:30 PM", "spacing": "3-4 hours"}
}`

const estimatedAnalysisJSON = `{
	"food_items": ["grilled chicken", "rice"],
	"meal_name": "Chicken Rice Bowl",
	"estimated_calories": 620,
	"estimated_glycemic_index": 58,
	"estimated_nutrition": {"carbs": 70, "proteins": 42, "fats": 14, "fiber": 4, "sugar": 3},
	"assumed_serving_size": "one large bowl",
	"confidence_level": "medium",
	"health_rating": 7
}`

func TestParseAnalysisKeyVariantTransparency(t *testing.T) {
	// The "measured" and "estimated" vocabularies with equal numbers must
	// normalize to identical canonical values.
	measured, err := ParseAnalysis(measuredAnalysisJSON, nil)
	require.NoError(t, err)
	estimated, err := ParseAnalysis(estimatedAnalysisJSON, nil)
	require.NoError(t, err)

	assert.Equal(t, measured.CaloriesValue(), estimated.CaloriesValue())
	assert.Equal(t, measured.GlycemicIndexValue(), estimated.GlycemicIndexValue())
	assert.Equal(t, measured.Nutrition, estimated.Nutrition)
	assert.Equal(t, "one large bowl", measured.ServingSize)
	assert.Equal(t, "one large bowl", estimated.ServingSize)
	assert.Equal(t, measured.HealthRating, estimated.HealthRating)
}

func TestParseAnalysisMeasuredKeyWins(t *testing.T) {
	raw := `{"food_items": ["toast"], "meal_name": "Toast", "calories": 200, "estimated_calories": 999}`
	a, err := ParseAnalysis(raw, nil)
	require.NoError(t, err)
	require.NotNil(t, a.Calories)
	assert.Equal(t, 200.0, *a.Calories)
}

func TestParseAnalysisAbsentNumbersStayNil(t *testing.T) {
	raw := `{"food_items": ["mystery stew"], "meal_name": "Stew"}`
	a, err := ParseAnalysis(raw, nil)
	require.NoError(t, err)

	// nil for display, zero for arithmetic
	assert.Nil(t, a.Calories)
	assert.Nil(t, a.GlycemicIndex)
	assert.Zero(t, a.CaloriesValue())
	assert.Zero(t, a.GlycemicIndexValue())
	assert.Nil(t, a.Nutrition.Carbs)
}

func TestParseAnalysisRecomputesDailyTotal(t *testing.T) {
	// The model's own total_calories_with_meal (9999 above) is informational;
	// the authoritative value is ledger total + this meal.
	ledger := &models.DailyLedger{Summary: models.LedgerSummary{TotalCalories: 1800}}
	a, err := ParseAnalysis(measuredAnalysisJSON, ledger)
	require.NoError(t, err)
	assert.Equal(t, 2420.0, a.DailyContext.TotalCaloriesWithMeal)
}

func TestParseAnalysisMalformed(t *testing.T) {
	tests := []struct {
		name string
		raw  string
	}{
		{"prose around the object", "Sure! Here is the analysis:\n{\"meal_name\": \"Toast\"}"},
		{"plain prose", "I could not identify any food in this image."},
		{"empty string", ""},
		{"array instead of object", `[{"meal_name": "Toast"}]`},
		{"missing meal_name", `{"food_items": ["toast"]}`},
		{"meal_name wrong type", `{"food_items": ["toast"], "meal_name": 42}`},
		{"food_items wrong element type", `{"food_items": [1, 2], "meal_name": "Toast"}`},
		{"calories wrong type", `{"food_items": ["toast"], "meal_name": "Toast", "calories": "lots"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a, err := ParseAnalysis(tt.raw, nil)
			assert.Nil(t, a)
			assert.ErrorIs(t, err, ErrMalformedAnalysis)
		})
	}
}

func TestParseAnalysisNullCaloriesTolerated(t *testing.T) {
	raw := `{"food_items": ["water"], "meal_name": "Water", "calories": null, "glycemic_index": null}`
	a, err := ParseAnalysis(raw, nil)
	require.NoError(t, err)
	assert.Nil(t, a.Calories)
	assert.Zero(t, a.CaloriesValue())
}

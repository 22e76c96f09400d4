package services

import (
	"encoding/json"
	"fmt"

	"github.com/Pushkal2407/nutri-llama/models"

	"github.com/xeipuuv/gojsonschema"
)

// The model is not schema-enforced and may wrap its answer in prose or drift
// between the two prompt vocabularies. Parsing is a strict gate: anything
// that is not a lone JSON object with the expected shape fails with
// ErrMalformedAnalysis and no meal is recorded.

const analysisSchema = `{
    "type": "object",
    "required": ["food_items", "meal_name"],
    "properties": {
        "food_items": {"type": "array", "items": {"type": "string"}},
        "meal_name": {"type": "string"},
        "calories": {"type": ["number", "null"]},
        "estimated_calories": {"type": ["number", "null"]},
        "glycemic_index": {"type": ["number", "null"]},
        "estimated_glycemic_index": {"type": ["number", "null"]},
        "nutrition": {"type": "object"},
        "estimated_nutrition": {"type": "object"},
        "health_considerations": {"type": "array", "items": {"type": "string"}},
        "health_rating": {"type": ["number", "null"]}
    }
}`

var analysisSchemaLoader = gojsonschema.NewStringLoader(analysisSchema)

// rawAnalysis mirrors both prompt vocabularies side by side. Every dual-key
// field is normalized in one place below instead of scattered lookups.
type rawAnalysis struct {
	FoodItems []string `json:"food_items"`
	MealName  string   `json:"meal_name"`

	Calories          *float64 `json:"calories"`
	EstimatedCalories *float64 `json:"estimated_calories"`

	GlycemicIndex          *float64 `json:"glycemic_index"`
	EstimatedGlycemicIndex *float64 `json:"estimated_glycemic_index"`

	Nutrition          *models.Nutrition `json:"nutrition"`
	EstimatedNutrition *models.Nutrition `json:"estimated_nutrition"`

	ServingSize        string `json:"serving_size"`
	AssumedServingSize string `json:"assumed_serving_size"`

	HealthConsiderations []string             `json:"health_considerations"`
	DailyContext         models.DailyContext  `json:"daily_context"`
	ConfidenceLevel      string               `json:"confidence_level"`
	GoalAlignment        models.GoalAlignment `json:"goal_alignment"`
	HealthRating         *float64             `json:"health_rating"`
	MealTiming           models.MealTiming    `json:"meal_timing"`
}

// ParseAnalysis turns the model's raw text into the canonical record.
// The "measured" key wins over the "estimated" one; a numeric absent from
// both stays nil in the record (display) and counts as zero in arithmetic.
// total_calories_with_meal is recomputed from the ledger; the model's own
// arithmetic for that field is informational only.
func ParseAnalysis(raw string, ledger *models.DailyLedger) (*models.FoodAnalysis, error) {
	result, err := gojsonschema.Validate(analysisSchemaLoader, gojsonschema.NewStringLoader(raw))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedAnalysis, err)
	}
	if !result.Valid() {
		return nil, fmt.Errorf("%w: %s", ErrMalformedAnalysis, result.Errors()[0].String())
	}

	var ra rawAnalysis
	if err := json.Unmarshal([]byte(raw), &ra); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedAnalysis, err)
	}

	analysis := &models.FoodAnalysis{
		FoodItems:            ra.FoodItems,
		MealName:             ra.MealName,
		Calories:             pickNumber(ra.Calories, ra.EstimatedCalories),
		GlycemicIndex:        pickNumber(ra.GlycemicIndex, ra.EstimatedGlycemicIndex),
		Nutrition:            pickNutrition(ra.Nutrition, ra.EstimatedNutrition),
		ServingSize:          pickString(ra.ServingSize, ra.AssumedServingSize),
		HealthConsiderations: ra.HealthConsiderations,
		DailyContext:         ra.DailyContext,
		ConfidenceLevel:      ra.ConfidenceLevel,
		GoalAlignment:        ra.GoalAlignment,
		MealTiming:           ra.MealTiming,
	}
	if ra.HealthRating != nil {
		analysis.HealthRating = int(*ra.HealthRating)
	}

	priorTotal := 0.0
	if ledger != nil {
		priorTotal = ledger.Summary.TotalCalories
	}
	analysis.DailyContext.TotalCaloriesWithMeal = priorTotal + analysis.CaloriesValue()

	return analysis, nil
}

func pickNumber(measured, estimated *float64) *float64 {
	if measured != nil {
		return measured
	}
	return estimated
}

func pickString(measured, estimated string) string {
	if measured != "" {
		return measured
	}
	return estimated
}

func pickNutrition(measured, estimated *models.Nutrition) models.Nutrition {
	if measured != nil {
		return *measured
	}
	if estimated != nil {
		return *estimated
	}
	return models.Nutrition{}
}

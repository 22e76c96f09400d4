package models

// Nutrition breakdown per meal. Pointers distinguish "model said 0" from
// "model said nothing": absent values stay nil for display and count as zero
// in arithmetic.
type Nutrition struct {
	Carbs    *float64 `json:"carbs"`
	Proteins *float64 `json:"proteins"`
	Fats     *float64 `json:"fats"`
	Fiber    *float64 `json:"fiber"`
	Sugar    *float64 `json:"sugar"`
}

type DailyContext struct {
	TotalCaloriesWithMeal  float64 `json:"total_calories_with_meal"`
	TotalCarbsWithMeal     float64 `json:"total_carbs_with_meal"`
	RemainingCalorieBudget float64 `json:"remaining_calorie_budget"`
	MealTimingAdvice       string  `json:"meal_timing_advice"`
	NutritionalBalance     string  `json:"nutritional_balance"`
}

type GoalAlignment struct {
	Score       float64  `json:"score"` // 1–10
	Reasons     []string `json:"reasons"`
	Suggestions []string `json:"suggestions"`
}

type MealTiming struct {
	IdealTime string `json:"ideal_time"`
	Spacing   string `json:"spacing"`
}

// FoodAnalysis is the canonical analysis record. The two prompt variants
// ("measured" keys for photos, "estimated_" keys for descriptions) are
// normalized into this one shape by the parser; PersonalizedAdvice is filled
// locally by the advice rules, never by the model.
type FoodAnalysis struct {
	FoodItems            []string      `json:"food_items"`
	MealName             string        `json:"meal_name"`
	Calories             *float64      `json:"calories"`
	GlycemicIndex        *float64      `json:"glycemic_index"`
	Nutrition            Nutrition     `json:"nutrition"`
	ServingSize          string        `json:"serving_size"`
	HealthConsiderations []string      `json:"health_considerations"`
	DailyContext         DailyContext  `json:"daily_context"`
	ConfidenceLevel      string        `json:"confidence_level,omitempty"` // description variant only
	GoalAlignment        GoalAlignment `json:"goal_alignment"`
	HealthRating         int           `json:"health_rating"` // 1–10
	MealTiming           MealTiming    `json:"meal_timing"`
	PersonalizedAdvice   []string      `json:"personalized_advice"`
}

// CaloriesValue returns the calorie count for arithmetic, zero when absent.
func (a *FoodAnalysis) CaloriesValue() float64 {
	if a.Calories == nil {
		return 0
	}
	return *a.Calories
}

// GlycemicIndexValue returns the GI for arithmetic, zero when absent.
func (a *FoodAnalysis) GlycemicIndexValue() float64 {
	if a.GlycemicIndex == nil {
		return 0
	}
	return *a.GlycemicIndex
}

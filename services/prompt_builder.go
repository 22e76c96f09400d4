package services

import "fmt"

// Prompt is one instruction for the reasoning gateway. Image, when set, is
// the base64 photo shipped inline as a data URI.
type Prompt struct {
	Text  string
	Image string
}

// The two food schemas are intentionally distinct: a photo yields "measured"
// framing (calories, glycemic_index), a description yields "estimated"
// framing (estimated_calories, estimated_glycemic_index, confidence_level).
// The parser normalizes both back into one record.

const foodImagePromptTemplate = `Analyze this food image in the context of the user's previous meals today and their health goal.

User's Health Goal: "%s"

Previous Meals Today:
%s

Analyze this new meal and provide information in the following JSON format. Do not say anything else and provide me the
contents of a literal JSON file in this format, remember to store any numeric quantities WITHOUT units, use double quotes everywhere:
{
    "food_items": ["list of identified foods"],
    "meal_name": "name of meal deduced by photo, if not confident then use caption provided by user",
    "calories": numeric_value,
    "glycemic_index": numeric_value,
    "nutrition": {
        "carbs": numeric_value,
        "proteins": numeric_value,
        "fats": numeric_value,
        "fiber": numeric_value,
        "sugar": numeric_value
    },
    "serving_size": "description of portion size",
    "health_considerations": [
        "list of relevant health notes for diabetics",
        "potential blood sugar impacts",
        "timing considerations"
    ],
    "daily_context": {
        "total_calories_with_meal": numeric_value,
        "total_carbs_with_meal": numeric_value,
        "remaining_calorie_budget": numeric_value,
        "meal_timing_advice": "advice considering previous meals",
        "nutritional_balance": "analysis of daily nutritional balance with this meal"
    },
    "goal_alignment": {
        "score": number_between_1_and_10,
        "reasons": [
            "detailed reasons why this meal aligns or doesn't align with the user's goals",
            "consider daily totals and previous meals"
        ],
        "suggestions": [
            "specific suggestions to better align with goals",
            "include portion adjustments or alternative ingredients",
            "suggestions for remaining meals of the day"
        ]
    },
    "health_rating": number_between_1_and_10,
    "meal_timing": {
        "ideal_time": "best time considering previous meals",
        "spacing": "recommended hours before/after other meals"
    }
}`

const foodDescriptionPromptTemplate = `Analyze this food description in the context of the user's previous meals today and their health goal.

User's Health Goal: "%s"

Previous Meals Today:
%s

Based on this food description: "%s"
Provide a detailed analysis in this JSON format. Do not say anything else and provide me the
contents of a literal JSON file in this format, remember to store any numeric quantities WITHOUT units:
{
    "food_items": ["list of identified foods"],
    "meal_name": "name or description of meal provided by user or deduced by photo itself",
    "estimated_calories": numeric_value,
    "estimated_glycemic_index": numeric_value,
    "estimated_nutrition": {
        "carbs": numeric_value,
        "proteins": numeric_value,
        "fats": numeric_value,
        "fiber": numeric_value,
        "sugar": numeric_value
    },
    "assumed_serving_size": "description of portion size",
    "health_considerations": [
        "list of relevant health notes for diabetics",
        "potential blood sugar impacts",
        "timing considerations"
    ],
    "daily_context": {
        "total_calories_with_meal": numeric_value,
        "total_carbs_with_meal": numeric_value,
        "remaining_calorie_budget": numeric_value,
        "meal_timing_advice": "advice considering previous meals",
        "nutritional_balance": "analysis of daily nutritional balance with this meal"
    },
    "confidence_level": "high/medium/low",
    "goal_alignment": {
        "score": number_between_1_and_10,
        "reasons": ["detailed alignment reasons considering daily context"],
        "suggestions": ["specific improvement suggestions for this meal and remaining meals"]
    },
    "health_rating": number_between_1_and_10,
    "meal_timing": {
        "ideal_time": "best time considering previous meals",
        "spacing": "recommended hours before/after other meals"
    }
}`

const generalQueryPromptTemplate = `Answer this user query about diabetes management or diet: "%s"
    Provide a helpful, concise response focused on diabetes management if relevant.
    Include practical tips and clear explanations. The output should be less than 1500 characters.`

// BuildFoodImagePrompt embeds the health goal and the formatted daily context
// verbatim so the model can reference prior meals, and attaches the photo.
func BuildFoodImagePrompt(imageBase64, healthGoal, mealsContext string) Prompt {
	return Prompt{
		Text:  fmt.Sprintf(foodImagePromptTemplate, healthGoal, mealsContext),
		Image: imageBase64,
	}
}

func BuildFoodDescriptionPrompt(description, healthGoal, mealsContext string) Prompt {
	return Prompt{
		Text: fmt.Sprintf(foodDescriptionPromptTemplate, healthGoal, mealsContext, description),
	}
}

func BuildGeneralQueryPrompt(query string) Prompt {
	return Prompt{Text: fmt.Sprintf(generalQueryPromptTemplate, query)}
}

package utils

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/Pushkal2407/nutri-llama/models"
)

// RenderReply flattens an orchestrator result into the single text block sent
// back over WhatsApp.
func RenderReply(result *models.OrchestratorResult) string {
	switch result.MessageType {
	case "food_analysis":
		return renderFoodAnalysis(result)
	case "summary":
		if s, ok := result.DailySummary.(string); ok {
			return s
		}
		return ""
	default:
		// greeting, help, general_response
		return result.Response
	}
}

func renderFoodAnalysis(result *models.OrchestratorResult) string {
	a := result.Analysis
	if a == nil {
		return result.Response
	}

	var b strings.Builder
	fmt.Fprintf(&b, "🍽️ %s\n", a.MealName)
	if len(a.FoodItems) > 0 {
		fmt.Fprintf(&b, "Identified: %s\n", strings.Join(a.FoodItems, ", "))
	}
	fmt.Fprintf(&b, "Calories: %s | Glycemic Index: %s\n",
		renderNumber(a.Calories), renderNumber(a.GlycemicIndex))
	fmt.Fprintf(&b, "Health Rating: %d/10\n", a.HealthRating)

	if len(a.HealthConsiderations) > 0 {
		b.WriteString("\nHealth notes:\n")
		for _, note := range a.HealthConsiderations {
			fmt.Fprintf(&b, "- %s\n", note)
		}
	}

	for _, advice := range a.PersonalizedAdvice {
		fmt.Fprintf(&b, "\n%s\n", advice)
	}

	if result.Response != "" { // e.g. photo-storage note
		fmt.Fprintf(&b, "\n%s", result.Response)
	}
	return strings.TrimRight(b.String(), "\n")
}

func renderNumber(v *float64) string {
	if v == nil {
		return "unknown"
	}
	return strconv.FormatFloat(*v, 'f', -1, 64)
}

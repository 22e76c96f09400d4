package models

import (
	"encoding/json"
	"time"
)

// InboundMessage is one WhatsApp message as delivered by the webhook layer.
// Immutable once received.
type InboundMessage struct {
	Text      string `json:"text"`
	Image     string `json:"image"` // base64 JPEG, empty when the message carried no photo
	Timestamp string `json:"timestamp"`
	Sender    string `json:"sender"`
}

func (m InboundMessage) HasImage() bool { return m.Image != "" }

// MealTime carries a meal timestamp in either of the two shapes the pipeline
// sees: a structured time read from Postgres, or a plain string that came in
// over the wire. Formatting must tolerate both.
type MealTime struct {
	Time time.Time
	Raw  string // set instead of Time when the upstream value was a plain string
}

func (t MealTime) Structured() bool { return t.Raw == "" && !t.Time.IsZero() }

// Display renders a structured time on a 12-hour clock; plain strings pass
// through unmodified.
func (t MealTime) Display() string {
	if t.Structured() {
		return t.Time.Format("03:04 PM")
	}
	return t.Raw
}

func (t MealTime) MarshalJSON() ([]byte, error) {
	if t.Structured() {
		return json.Marshal(t.Time)
	}
	return json.Marshal(t.Raw)
}

// MealEntry is one row of the daily ledger.
type MealEntry struct {
	MealID            uint     `json:"meal_id"`
	Timestamp         MealTime `json:"timestamp"`
	MealName          string   `json:"meal_name"`
	ImageURL          *string  `json:"image_url"`
	EstimatedCalories *float64 `json:"estimated_calories"`
	GlycemicIndex     *float64 `json:"glycemic_index"`
	HealthRating      int      `json:"health_rating"`
}

type LedgerSummary struct {
	TotalMeals    int     `json:"total_meals"`
	TotalCalories float64 `json:"total_calories"`
	Date          string  `json:"date"`
}

// DailyLedger is the derived view of one user's meals for the current
// calendar day, recomputed from storage on every read and never cached.
// Meals are ordered ascending by timestamp; TotalCalories is the sum of
// non-nil estimated calories.
type DailyLedger struct {
	Meals   []MealEntry   `json:"meals"`
	Summary LedgerSummary `json:"summary"`
}

// OrchestratorResult is the typed response of ProcessMessage. DailySummary is
// either a *DailyLedger (food/greeting branches) or the formatted summary
// string (summary branch); consumers switch on MessageType.
type OrchestratorResult struct {
	MessageType  string        `json:"message_type"`
	Analysis     *FoodAnalysis `json:"analysis,omitempty"`
	MealID       uint          `json:"meal_id,omitempty"`
	DailySummary interface{}   `json:"daily_summary,omitempty"`
	Response     string        `json:"response,omitempty"`
}

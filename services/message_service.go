package services

import (
	"context"
	"encoding/base64"
	"fmt"
	"time"

	"github.com/Pushkal2407/nutri-llama/logger"
	"github.com/Pushkal2407/nutri-llama/models"

	"go.uber.org/zap"
)

const (
	greetingReply = "Hello! How can I help you with your meal tracking today?"

	helpReply = "I can help you track your meals and provide nutritional analysis. " +
		"You can:\n" +
		"1. Send food photos for analysis\n" +
		"2. Describe what you ate\n" +
		"3. Ask for your meal summary\n" +
		"4. Ask questions about diabetes and diet\n" +
		"What would you like to know?"

	photoNotSavedNote = "Note: your photo could not be saved, so this meal was recorded without it."
)

// Fallback rating when the model omitted health_rating (its range is 1–10).
const defaultHealthRating = 5

// MealRepository is the persistence boundary the orchestrator needs.
type MealRepository interface {
	RecordMeal(userID uint, mealName string, imageURL *string,
		estimatedCalories, glycemicIndex *float64, healthRating int) (uint, error)
	GetMealsToday(userID uint) (*models.DailyLedger, error)
}

// MessageService orchestrates one inbound message end to end: classify,
// gather context, prompt the model, parse, advise, persist, reply. Each
// message is handled sequentially; concurrent messages share nothing mutable
// because the ledger is recomputed from storage per request.
type MessageService struct {
	intents *IntentService
	meals   MealRepository
	gateway ReasoningGateway
	images  ImageStore
	now     func() time.Time
}

func NewMessageService(meals MealRepository, gateway ReasoningGateway, images ImageStore) *MessageService {
	return &MessageService{
		intents: NewIntentService(),
		meals:   meals,
		gateway: gateway,
		images:  images,
		now:     time.Now,
	}
}

// ProcessMessage is the single entry point of the pipeline. Failures
// propagate tagged to the caller; nothing here retries.
func (s *MessageService) ProcessMessage(
	ctx context.Context,
	msg models.InboundMessage,
	user models.User,
) (*models.OrchestratorResult, error) {
	intent := s.intents.Classify(msg)
	logger.Info("processing message",
		zap.Uint("userID", user.ID),
		zap.String("intent", string(intent)),
		zap.Bool("hasImage", msg.HasImage()))

	switch intent {
	case IntentFoodImage:
		return s.handleFoodImage(ctx, msg, user)
	case IntentFoodDescription:
		return s.handleFoodDescription(ctx, msg, user)
	case IntentSummaryRequest:
		return s.handleSummaryRequest(user)
	case IntentGreeting:
		return s.handleGreeting(user)
	case IntentHelpRequest:
		return &models.OrchestratorResult{MessageType: "help", Response: helpReply}, nil
	default:
		return s.handleGeneralQuery(ctx, msg)
	}
}

func (s *MessageService) handleFoodImage(
	ctx context.Context,
	msg models.InboundMessage,
	user models.User,
) (*models.OrchestratorResult, error) {
	imageData, err := base64.StdEncoding.DecodeString(msg.Image)
	if err != nil {
		return nil, fmt.Errorf("%w: image payload is not valid base64", ErrMissingField)
	}

	// Store the photo before any model call so it survives analysis
	// failures. Storage failure itself is non-fatal: the meal is recorded
	// without a photo reference and the reply says so.
	var (
		imageURL  *string
		storeNote string
	)
	if ref, err := s.images.Store(ctx, user.PhoneNumber, imageData); err != nil {
		logger.Warn("image storage failed",
			zap.Uint("userID", user.ID), zap.Error(err))
		storeNote = photoNotSavedNote
	} else {
		imageURL = &ref
	}

	result, err := s.analyzeAndRecord(ctx, user, imageURL, func(mealsContext string) Prompt {
		return BuildFoodImagePrompt(msg.Image, user.HealthGoal, mealsContext)
	})
	if err != nil {
		return nil, err
	}
	result.Response = storeNote
	return result, nil
}

func (s *MessageService) handleFoodDescription(
	ctx context.Context,
	msg models.InboundMessage,
	user models.User,
) (*models.OrchestratorResult, error) {
	if msg.Text == "" {
		return nil, fmt.Errorf("%w: message.text", ErrMissingField)
	}
	return s.analyzeAndRecord(ctx, user, nil, func(mealsContext string) Prompt {
		return BuildFoodDescriptionPrompt(msg.Text, user.HealthGoal, mealsContext)
	})
}

// analyzeAndRecord runs the shared tail of both food branches: gather the
// ledger, build the variant prompt with its context, call the model, parse,
// synthesize advice, persist the meal, and fetch a fresh ledger for the
// reply. buildPrompt carries the intent variant and payload; the daily
// context is supplied here because the ledger read belongs to this stage.
func (s *MessageService) analyzeAndRecord(
	ctx context.Context,
	user models.User,
	imageURL *string,
	buildPrompt func(mealsContext string) Prompt,
) (*models.OrchestratorResult, error) {
	ledger, err := s.meals.GetMealsToday(user.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to load daily meals: %w", err)
	}

	raw, err := s.gateway.Complete(ctx, buildPrompt(FormatDailyMeals(ledger)))
	if err != nil {
		return nil, err
	}

	analysis, err := ParseAnalysis(raw, ledger)
	if err != nil {
		logger.Error("analysis parse failed",
			zap.Uint("userID", user.ID),
			zap.String("rawResponse", raw),
			zap.Error(err))
		return nil, err
	}

	analysis.PersonalizedAdvice = SynthesizeAdvice(analysis, ledger, user.HealthGoal, s.now())

	rating := analysis.HealthRating
	if rating == 0 {
		rating = defaultHealthRating
	}

	mealID, err := s.meals.RecordMeal(
		user.ID,
		mealNameOrDefault(analysis.MealName),
		imageURL,
		analysis.Calories,
		analysis.GlycemicIndex,
		rating,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to record meal: %w", err)
	}

	fresh, err := s.meals.GetMealsToday(user.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to load daily summary: %w", err)
	}

	return &models.OrchestratorResult{
		MessageType:  "food_analysis",
		Analysis:     analysis,
		MealID:       mealID,
		DailySummary: fresh,
	}, nil
}

func (s *MessageService) handleSummaryRequest(user models.User) (*models.OrchestratorResult, error) {
	ledger, err := s.meals.GetMealsToday(user.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to load daily meals: %w", err)
	}
	return &models.OrchestratorResult{
		MessageType:  "summary",
		DailySummary: FormatDailyMeals(ledger),
	}, nil
}

func (s *MessageService) handleGreeting(user models.User) (*models.OrchestratorResult, error) {
	ledger, err := s.meals.GetMealsToday(user.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to load daily meals: %w", err)
	}
	return &models.OrchestratorResult{
		MessageType:  "greeting",
		Response:     greetingReply,
		DailySummary: ledger,
	}, nil
}

func (s *MessageService) handleGeneralQuery(
	ctx context.Context,
	msg models.InboundMessage,
) (*models.OrchestratorResult, error) {
	if msg.Text == "" {
		return nil, fmt.Errorf("%w: message.text", ErrMissingField)
	}
	answer, err := s.gateway.Complete(ctx, BuildGeneralQueryPrompt(msg.Text))
	if err != nil {
		return nil, err
	}
	return &models.OrchestratorResult{
		MessageType: "general_response",
		Response:    answer,
	}, nil
}

func mealNameOrDefault(name string) string {
	if name == "" {
		return "Unknown Meal"
	}
	return name
}

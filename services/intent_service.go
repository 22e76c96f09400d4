package services

import (
	"regexp"
	"strings"

	"github.com/Pushkal2407/nutri-llama/models"
)

// Intent is the classified purpose of an inbound message.
type Intent string

const (
	IntentFoodImage       Intent = "food_image"
	IntentFoodDescription Intent = "food_description"
	IntentGeneralQuery    Intent = "general_query"
	IntentGreeting        Intent = "greeting"
	IntentHelpRequest     Intent = "help_request"
	IntentSummaryRequest  Intent = "summary_request"
)

var (
	summaryKeywords = []string{"summary", "today's meals", "what did i eat", "show meals"}

	foodPatterns = []*regexp.Regexp{
		regexp.MustCompile(`i (?:ate|had|consumed)`),
		regexp.MustCompile(`my meal`),
		regexp.MustCompile(`for (?:breakfast|lunch|dinner|snack)`),
		regexp.MustCompile(`eating`),
		regexp.MustCompile(`food`),
		regexp.MustCompile(`calories`),
		regexp.MustCompile(`serving`),
		regexp.MustCompile(`portion`),
	}

	greetings = []string{"hi", "hello", "hey", "good morning", "good afternoon", "good evening"}

	helpPatterns = []*regexp.Regexp{
		regexp.MustCompile(`help`),
		regexp.MustCompile(`how to`),
		regexp.MustCompile(`how do i`),
		regexp.MustCompile(`support`),
	}
)

type IntentService struct{}

func NewIntentService() *IntentService { return &IntentService{} }

// Classify assigns exactly one intent to a message. Pure function, first
// match wins; the check order is load-bearing: an attached image dominates any
// text, and summary keywords are tested before food patterns so "what did i
// eat" never reads as a food description. Empty text is a general query, not
// an error.
func (s *IntentService) Classify(msg models.InboundMessage) Intent {
	if msg.HasImage() {
		return IntentFoodImage
	}

	text := strings.ToLower(msg.Text)

	for _, kw := range summaryKeywords {
		if strings.Contains(text, kw) {
			return IntentSummaryRequest
		}
	}

	for _, p := range foodPatterns {
		if p.MatchString(text) {
			return IntentFoodDescription
		}
	}

	for _, g := range greetings {
		if strings.Contains(text, g) {
			return IntentGreeting
		}
	}

	for _, p := range helpPatterns {
		if p.MatchString(text) {
			return IntentHelpRequest
		}
	}

	return IntentGeneralQuery
}

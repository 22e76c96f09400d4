package controllers

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/Pushkal2407/nutri-llama/models"
	"github.com/Pushkal2407/nutri-llama/services"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type MessageController struct {
	messages *services.MessageService
	meals    *services.MealService
	users    services.UserFinder
}

func NewMessageController(
	messages *services.MessageService,
	meals *services.MealService,
	users services.UserFinder,
) *MessageController {
	return &MessageController{messages: messages, meals: meals, users: users}
}

type processMessageRequest struct {
	Message models.InboundMessage `json:"message"`
	User    struct {
		UserID      uint   `json:"user_id"`
		PhoneNumber string `json:"phone_number"`
		HealthGoal  string `json:"health_goal"`
	} `json:"user"`
}

// ProcessMessage handles POST /process-message, the main pipeline entry.
func (mc *MessageController) ProcessMessage(c *gin.Context) {
	var body processMessageRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if body.User.UserID == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "missing required field: user.user_id"})
		return
	}

	user := models.User{
		PhoneNumber: body.User.PhoneNumber,
		HealthGoal:  body.User.HealthGoal,
	}
	user.ID = body.User.UserID

	result, err := mc.messages.ProcessMessage(c.Request.Context(), body.Message, user)
	if err != nil {
		c.JSON(statusForError(err), gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, result)
}

// GetUserMealsToday handles GET /user-meals/today/:user_id.
func (mc *MessageController) GetUserMealsToday(c *gin.Context) {
	userID, err := strconv.ParseUint(c.Param("user_id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid user id"})
		return
	}
	ledger, err := mc.meals.GetMealsToday(uint(userID))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, ledger)
}

// GetUserMealsByDate handles GET /user-meals/:user_id/:date (date YYYY-MM-DD).
func (mc *MessageController) GetUserMealsByDate(c *gin.Context) {
	userID, err := strconv.ParseUint(c.Param("user_id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid user id"})
		return
	}
	day, err := time.Parse("2006-01-02", c.Param("date"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid date, expected YYYY-MM-DD"})
		return
	}
	ledger, err := mc.meals.GetMealsForDate(uint(userID), day)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, ledger)
}

// GetPatient handles GET /patients/:phone for the care-team view.
func (mc *MessageController) GetPatient(c *gin.Context) {
	data, err := mc.meals.GetPatientData(mc.users, c.Param("phone"))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "user not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, data)
}

// statusForError maps the pipeline taxonomy onto HTTP statuses. Client
// mistakes are 4xx; upstream model trouble surfaces as a gateway problem.
func statusForError(err error) int {
	switch {
	case errors.Is(err, services.ErrMissingField):
		return http.StatusBadRequest
	case errors.Is(err, services.ErrDuplicateUser):
		return http.StatusConflict
	case errors.Is(err, services.ErrGatewayTimeout):
		return http.StatusGatewayTimeout
	case errors.Is(err, services.ErrGatewayError), errors.Is(err, services.ErrMalformedAnalysis):
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}

package controllers

import (
	"net/http"
	"strconv"

	"github.com/Pushkal2407/nutri-llama/services"

	"github.com/gin-gonic/gin"
)

type UserController struct {
	users *services.UserService
}

func NewUserController(users *services.UserService) *UserController {
	return &UserController{users: users}
}

// Register handles POST /users.
func (uc *UserController) Register(c *gin.Context) {
	var body struct {
		PhoneNumber string `json:"phone_number" binding:"required"`
		Name        string `json:"name" binding:"required"`
		HealthGoal  string `json:"health_goal"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	userID, err := uc.users.CreateUser(body.PhoneNumber, body.Name, body.HealthGoal)
	if err != nil {
		c.JSON(statusForError(err), gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"user_id": userID})
}

// UpdateHealthGoal handles PUT /users/:id/goal.
func (uc *UserController) UpdateHealthGoal(c *gin.Context) {
	userID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid user id"})
		return
	}

	var body struct {
		HealthGoal string `json:"health_goal" binding:"required"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	updated, err := uc.users.UpdateHealthGoal(uint(userID), body.HealthGoal)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	if !updated {
		c.JSON(http.StatusNotFound, gin.H{"error": "user not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"updated": true})
}

package routes

import (
	"github.com/Pushkal2407/nutri-llama/controllers"
	"github.com/Pushkal2407/nutri-llama/middlewares"

	"github.com/gin-gonic/gin"
)

func SetupRouter(
	mc *controllers.MessageController,
	uc *controllers.UserController,
	wc *controllers.WebhookController,
) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery(), middlewares.RequestLogger())

	r.POST("/process-message", mc.ProcessMessage)
	r.POST("/webhook", wc.Receive)

	users := r.Group("/users")
	{
		users.POST("", uc.Register)
		users.PUT("/:id/goal", uc.UpdateHealthGoal)
	}

	r.GET("/user-meals/today/:user_id", mc.GetUserMealsToday)
	r.GET("/user-meals/:user_id/:date", mc.GetUserMealsByDate)
	r.GET("/patients/:phone", mc.GetPatient)

	return r
}

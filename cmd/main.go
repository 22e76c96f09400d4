package main

import (
	"context"

	"github.com/Pushkal2407/nutri-llama/config"
	"github.com/Pushkal2407/nutri-llama/controllers"
	"github.com/Pushkal2407/nutri-llama/logger"
	"github.com/Pushkal2407/nutri-llama/routes"
	"github.com/Pushkal2407/nutri-llama/services"

	"go.uber.org/zap"
)

func main() {
	config.LoadEnv()
	logger.Init()
	defer logger.Sync()

	db, err := config.ConnectDB()
	if err != nil {
		logger.L().Fatal("database init failed", zap.Error(err))
	}

	mongoClient, err := config.ConnectMongo(context.Background())
	if err != nil {
		logger.L().Fatal("mongo init failed", zap.Error(err))
	}

	userSvc := services.NewUserService(db)
	mealSvc := services.NewMealService(db)
	imageSvc := services.NewMongoImageService(mongoClient)
	gateway := services.NewGroqService()
	messageSvc := services.NewMessageService(mealSvc, gateway, imageSvc)
	sender := services.NewWhatsAppService()

	mc := controllers.NewMessageController(messageSvc, mealSvc, userSvc)
	uc := controllers.NewUserController(userSvc)
	wc := controllers.NewWebhookController(messageSvc, userSvc, sender)

	r := routes.SetupRouter(mc, uc, wc)
	addr := ":" + config.GetEnv("PORT", "8000")
	logger.Info("starting server", zap.String("addr", addr))
	if err := r.Run(addr); err != nil {
		logger.L().Fatal("server exited", zap.Error(err))
	}
}

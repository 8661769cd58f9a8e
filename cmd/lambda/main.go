package main

import (
	"log"

	"github.com/aws/aws-lambda-go/lambda"
	"github.com/diegoclair/slack-attendance-bot/internal/app"
	"github.com/diegoclair/slack-attendance-bot/internal/config"
	"github.com/diegoclair/slack-attendance-bot/internal/handlers"
	"github.com/joho/godotenv"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: .env file not found")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	a, err := app.New(cfg)
	if err != nil {
		log.Fatalf("Failed to initialize: %v", err)
	}
	defer a.Close()

	lambda.Start(handlers.NewLambdaHandler(a.Services.Report).Handle)
}

// Package main is the entry point for the kisan-service application.
//
// @title           Kisan Service API
// @version         1.0.0
// @description     Farming assistant backend serving cached weather, mandi prices,
// @description     crop tracking, farm finance, soil reports, and an advisory chatbot.
//
// @contact.name   API Support
// @contact.url    https://github.com/kisanmitra/kisan-service
//
// @license.name  MIT
// @license.url   https://opensource.org/licenses/MIT
//
// @host      localhost:9000
// @BasePath  /
//
// @securityDefinitions.apikey  BearerAuth
// @in                          header
// @name                        Authorization
// @description                 JWT access token. Format: "Bearer {token}". Required if authentication is enabled.
//
// @tag.name        Weather
// @tag.description Current weather and forecast lookups
//
// @tag.name        Prices
// @tag.description Mandi market price lookups
//
// @tag.name        Crops
// @tag.description Crop tracking operations
//
// @tag.name        Expenses
// @tag.description Farm income and expense tracking
//
// @tag.name        Soil
// @tag.description Soil health reports
//
// @tag.name        Dashboard
// @tag.description Aggregated farm overview and AI insight
//
// @tag.name        Chatbot
// @tag.description Advisory chatbot
//
// @tag.name        Auth
// @tag.description Authentication endpoints
//
// @tag.name        Health
// @tag.description Health check endpoints
package main

import (
	"context"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/kisanmitra/kisan-service/config"
	_ "github.com/kisanmitra/kisan-service/docs" // swagger docs
	"github.com/kisanmitra/kisan-service/internal/app"
)

func main() {
	cfg := config.Load()

	application, err := app.InitializeApp(cfg)
	if err != nil {
		log.Fatal().Err(err).Msg("Initialization failed")
	}

	server := app.NewServer(application.Router, cfg.Server.Port)
	runErr := server.Run()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := application.Close(ctx); err != nil {
		log.Error().Err(err).Msg("Failed to close resources")
	}

	if runErr != nil {
		log.Fatal().Err(runErr).Msg("Server error")
	}
}

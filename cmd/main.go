// Package main is the entry point for the laundry-service application.
//
// @title           Laundry Service API
// @version         1.0.0
// @description     API for computing minimum-cost laundry quotes.
//
//	The service finds the cheapest combination of discount packs and
//	individually priced pieces that covers an order, including the
//	delivery fee for the customer's location.
//
// @termsOfService  http://swagger.io/terms/
//
// @contact.name   API Support
// @contact.email  support@example.com
// @contact.url    https://github.com/guttosm/laundry-service
//
// @license.name  MIT
// @license.url   https://opensource.org/licenses/MIT
//
// @host      localhost:8080
// @BasePath  /
//
// @securityDefinitions.apikey  BearerAuth
// @in                          header
// @name                        Authorization
// @description                 JWT token issued by /api/auth/login. Required for catalog writes when authentication is enabled.
//
// @tag.name        Quotes
// @tag.description Quote calculation operations
//
// @tag.name        Catalog
// @tag.description Price catalog and delivery fee endpoints
//
// @tag.name        Auth
// @tag.description Authentication endpoints
//
// @tag.name        Health
// @tag.description Health check endpoints
package main

import (
	_ "github.com/guttosm/laundry-service/docs" // swagger docs

	"github.com/guttosm/laundry-service/config"
	"github.com/guttosm/laundry-service/internal/app"
	"github.com/rs/zerolog/log"
)

func main() {
	cfg := config.Load()

	router, err := app.InitializeApp(cfg)
	if err != nil {
		log.Fatal().Err(err).Msg("Initialization error")
	}
	server := app.NewServer(router, cfg.Server.Port)

	if err := server.Run(); err != nil {
		log.Fatal().Err(err).Msg("Server error")
	}
}

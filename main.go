package main

import (
	"LocalizationAPI/config"
	"LocalizationAPI/controllers"
	"LocalizationAPI/middlewares"
	"LocalizationAPI/repositories/impl"
	"LocalizationAPI/routes"
	"LocalizationAPI/services"
	"log"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

func main() {
	// Load environment variables from .env file
	err := godotenv.Load()
	if err != nil {
		log.Println("Error loading .env file, using environment variables")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Failed to load configuration:", err)
	}

	// Initialize database
	config.InitDatabase(cfg)

	// Initialize repositories
	translationKeyRepo := impl.NewTranslationKeyRepository(config.DB)

	// Initialize services
	translationKeyService := services.NewTranslationKeyService(translationKeyRepo)

	// Set services in controllers
	controllers.SetTranslationKeyService(translationKeyService)

	// Initialize Gin router
	r := gin.Default()
	r.Use(middlewares.CORSMiddleware())

	// Register routes
	routes.RegisterRoutes(r)

	// Start the server
	r.Run(":" + cfg.Port)
}

package main

import (
	"log"

	"github.com/joho/godotenv"

	"stitchkart.in/storefront/api/internal/router"
	"stitchkart.in/storefront/api/internal/session"
	"stitchkart.in/storefront/api/pkg/ai"
	"stitchkart.in/storefront/api/pkg/global"
	"stitchkart.in/storefront/api/pkg/mongo"
	"stitchkart.in/storefront/api/pkg/payment"
	"stitchkart.in/storefront/api/pkg/redis"
)

func main() {

	if err := godotenv.Load(); err != nil {
		log.Fatalf("Error loading .env file: %v", err)
	}

	mongo.InitMongoDB()
	mongo.EnsureIndexesOnStartup()

	ctx, cancel := global.GetDefaultTimer()
	if err := mongo.SeedCatalogIfEmpty(ctx); err != nil {
		log.Fatalf("Failed to seed catalog: %v", err)
	}
	cancel()

	ai.InitializeAIService()

	registry := session.NewRegistry(redis.NewBlobStore())
	router.InitState(registry, &payment.Sandbox{})
	router.InitEngine()
	router.InitializeRoutes()

	port := global.GetEnvOrDefault("PORT", "8000")
	log.Printf("Server is running on port %s", port)

	if err := router.Router.Run(":" + port); err != nil {
		log.Fatalf("Failed to run server: %v", err)
	}
}

package main

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/rs/cors"
	"github.com/rs/zerolog/log"

	_ "github.com/AkshatJain481/1fn-backend/docs"
	"github.com/AkshatJain481/1fn-backend/internal/config"
	"github.com/AkshatJain481/1fn-backend/internal/database"
	"github.com/AkshatJain481/1fn-backend/internal/handlers"
	"github.com/AkshatJain481/1fn-backend/internal/logger"
	"github.com/AkshatJain481/1fn-backend/internal/repository"
	"github.com/AkshatJain481/1fn-backend/internal/routes"
	"github.com/AkshatJain481/1fn-backend/internal/service"
	"github.com/AkshatJain481/1fn-backend/internal/validation"
)

func main() {
	cfg := config.LoadConfig()

	isDevelopment := cfg.Environment == "development"
	logger.Init("emi-store-api", isDevelopment)
	logger.SetLevel(cfg.LogLevel)

	if cfg.FrontendURL == "" {
		log.Warn().Msg("FRONTEND_URL is not set; no browser origin will pass CORS")
	}

	client, err := database.Connect(cfg.MongoURI)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to MongoDB")
	}
	defer client.Disconnect(context.Background())

	db := client.Database(cfg.MongoDB)
	if err := database.EnsureIndexes(context.Background(), db); err != nil {
		log.Fatal().Err(err).Msg("failed to create indexes")
	}

	productRepo := repository.NewProductRepository(db.Collection("products"))
	variantRepo := repository.NewVariantRepository(db.Collection("variants"))
	planRepo := repository.NewEmiPlanRepository(db.Collection("emiplans"))

	productService := service.NewProductService(productRepo, variantRepo, planRepo)
	variantService := service.NewVariantService(variantRepo, productRepo)
	planService := service.NewEmiPlanService(planRepo, productRepo)

	// Whitelist policy: payloads carrying fields outside the target schema
	// fail binding instead of being silently dropped.
	binding.EnableDecoderDisallowUnknownFields = true
	validation.UseJSONFieldNames()

	if !isDevelopment {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.New()
	router.Use(gin.Recovery())

	routes.RegisterRoutes(
		router,
		handlers.NewProductHandler(productService),
		handlers.NewVariantHandler(variantService),
		handlers.NewEmiPlanHandler(planService),
	)

	corsOptions := cors.Options{
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"*"},
		AllowCredentials: true,
	}
	if cfg.FrontendURL != "" {
		corsOptions.AllowedOrigins = []string{cfg.FrontendURL}
	}
	handler := cors.New(corsOptions).Handler(router)

	log.Info().
		Str("port", cfg.Port).
		Str("docs", "/api/docs/index.html").
		Msg("server listening")
	if err := http.ListenAndServe(":"+cfg.Port, handler); err != nil {
		log.Fatal().Err(err).Msg("server stopped")
	}
}

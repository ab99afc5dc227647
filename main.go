package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"snapfix/config"
	"snapfix/database"
	providerRepo "snapfix/database/repository/provider"
	"snapfix/handlers"
	"snapfix/middleware"
	"snapfix/routes"
	"snapfix/services/matching"
	"snapfix/services/search"
	"snapfix/services/terms"
	"snapfix/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	database.InitDB()
	utils.InitCache()

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(middleware.RateLimitMiddleware())

	// repositories.
	provRepo := providerRepo.NewMongoProviderRepo()
	if mongoRepo, ok := provRepo.(*providerRepo.MongoProviderRepo); ok {
		if err := mongoRepo.EnsureIndexes(); err != nil {
			logger.Warn("Failed to ensure provider indexes", zap.Error(err))
		}
	}

	// Query term generation: prefer the Gemini path, degrade to the static
	// table when no key is configured.
	var llm terms.Generator
	if gemini, err := terms.NewGeminiGenerator(context.Background(), config.AppConfig.GeminiAPIKey); err != nil {
		logger.Warn("Gemini unavailable, term generation will use the static table", zap.Error(err))
	} else {
		llm = gemini
	}
	termService := terms.NewService(llm, logger)

	// The search client is constructed here and injected; its lifecycle is
	// owned by the entry point, not the matching core.
	searchClient := search.NewValyuClient(
		config.AppConfig.ValyuAPIKey,
		config.AppConfig.ValyuBaseURL,
		config.SearchTimeout(),
		logger,
	)
	vendorSearch := &search.DefaultVendorSearchService{
		Client:           searchClient,
		Terms:            termService,
		FallbackLocality: config.AppConfig.SearchFallbackLocality,
		GeocodeTimeout:   config.GeocodeTimeout(),
		SearchTimeout:    config.SearchTimeout(),
		TermsTimeout:     config.TermsTimeout(),
		MaxResults:       config.AppConfig.SearchMaxResults,
		Logger:           logger,
	}

	matchingService := &matching.DefaultMatchingService{
		ProviderRepo:       provRepo,
		Ranker:             &matching.RankingEngine{ProviderRepo: provRepo},
		VendorSearch:       vendorSearch,
		CacheClient:        utils.GetCacheClient(),
		AlwaysSupplement:   config.AppConfig.MatchAlwaysSupplement,
		DefaultRadiusMiles: config.AppConfig.MatchDefaultRadiusMiles,
		Logger:             logger,
	}

	matchingHandler := handlers.NewMatchingHandler(matchingService)
	providerHandler := handlers.NewProviderHandler(provRepo)

	routes.RegisterRoutes(router, matchingHandler, providerHandler)

	utils.StartHealthMonitor(utils.GetCacheClient(), database.MongoClient)

	srv := &http.Server{
		Addr:    ":" + config.AppConfig.AppPort,
		Handler: router,
	}

	go func() {
		logger.Info("Starting server", zap.String("port", config.AppConfig.AppPort))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Sugar().Fatalf("server error: %v", err)
		}
	}()

	// Graceful shutdown on SIGINT/SIGTERM.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Sugar().Fatalf("forced shutdown: %v", err)
	}
	logger.Info("Server exited")
}

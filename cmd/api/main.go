package main

import (
	"context"
	"net/http"
	"os"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	httpSwagger "github.com/swaggo/http-swagger"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"merchant-dashboard-api/internal/application"
	"merchant-dashboard-api/internal/config"
	"merchant-dashboard-api/internal/infrastructure/api"
	apimiddleware "merchant-dashboard-api/internal/infrastructure/middleware"
	"merchant-dashboard-api/internal/infrastructure/repository"
	"merchant-dashboard-api/internal/infrastructure/shopify"
	"merchant-dashboard-api/internal/metrics"
)

func main() {
	// Initialize logger
	logger := zerolog.New(os.Stdout).With().Timestamp().Logger()
	if err := godotenv.Load(); err != nil {
		logger.Warn().Msg("Warning: .env file not found")
	}

	cfg, err := config.Load()
	if err != nil {
		logger.Fatal().Err(err).Msg("Failed to load configuration")
	}

	// Connect to MongoDB
	client, err := mongo.Connect(context.Background(), options.Client().ApplyURI(cfg.MongoURI))
	if err != nil {
		logger.Fatal().Err(err).Msg("Failed to connect to MongoDB")
	}
	defer client.Disconnect(context.Background())

	db := client.Database(cfg.MongoDatabase)

	// Initialize repositories
	userRepo := repository.NewMongoUserRepository(db, logger)
	onboardingRepo := repository.NewMongoOnboardingRepository(db)
	sessionRepo := repository.NewMongoSessionRepository(db)

	// Initialize the Admin GraphQL client
	adminClient := shopify.NewClient(cfg.APIVersion, logger)

	// Initialize application services
	authService := application.NewAuthService(userRepo, onboardingRepo, logger)
	sessionResolver := application.NewSessionResolver(onboardingRepo, sessionRepo, logger)
	storefrontService := application.NewStorefrontService(
		userRepo,
		onboardingRepo,
		sessionResolver,
		adminClient,
		logger,
	)

	handler := api.NewHandler(authService, storefrontService, logger)

	// Setup router
	r := chi.NewRouter()

	// Middleware
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(apimiddleware.Metrics())
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{cfg.CORSOrigin},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"*"},
		AllowCredentials: true,
	}))

	// Prometheus metrics
	r.Handle("/metrics", metrics.Handler())

	// Swagger documentation
	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL("/swagger/doc.json"),
	))
	r.Get("/swagger/doc.json", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		http.ServeFile(w, r, "./docs/swagger.json")
	})

	// API routes
	r.Mount("/", api.Routes(handler))

	logger.Info().Str("port", cfg.Port).Msg("Starting API server")
	if err := http.ListenAndServe(":"+cfg.Port, r); err != nil {
		logger.Fatal().Err(err).Msg("Failed to start server")
	}
}

// @title         VidyaMitra API
// @version       1.0
// @description   Career guidance backend: resume parsing into a structured candidate profile, domain-switch advisory and quiz generation backed by an LLM.
// @BasePath      /
// @schemes       http
// @host          localhost:8080
package main

import (
	"context"
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
	swagger "github.com/gofiber/swagger"

	_ "github.com/vidyamitra/backend/docs"

	// internal imports
	"github.com/vidyamitra/backend/api/http"
	"github.com/vidyamitra/backend/api/http/handlers"
	"github.com/vidyamitra/backend/pkg/auth"
	"github.com/vidyamitra/backend/pkg/config"
	"github.com/vidyamitra/backend/pkg/domainswitch"
	"github.com/vidyamitra/backend/pkg/health"
	healthpg "github.com/vidyamitra/backend/pkg/health/checkers"
	"github.com/vidyamitra/backend/pkg/llm"
	"github.com/vidyamitra/backend/pkg/llm/gemini"
	"github.com/vidyamitra/backend/pkg/quiz"
	pgrepo "github.com/vidyamitra/backend/pkg/repository/postgres"
	"github.com/vidyamitra/backend/pkg/resume"
	"github.com/vidyamitra/backend/pkg/security/session"
	"github.com/vidyamitra/backend/pkg/storage/postgres"
)

func main() {
	app := fiber.New()

	// Load configuration from env/.env
	cfg := config.Load()
	ctx := context.Background()

	// Connect to PostgreSQL. A missing DSN leaves the store unavailable:
	// the process still serves, store-backed operations fail at call time.
	var userRepo auth.UserRepository
	var profileRepo resume.ProfileStore
	var readiness health.ReadinessUseCase
	if cfg.DatabaseURL == "" {
		log.Print("DATABASE_URL not set: store-backed operations will be unavailable")
		readiness = health.NewService(healthpg.NewPostgresChecker(nil))
	} else {
		pool, err := postgres.Connect(ctx, cfg.DatabaseURL)
		if err != nil {
			log.Fatalf("postgres connect: %v", err)
		}
		defer pool.Close()

		users, err := pgrepo.NewUserRepository(pool)
		if err != nil {
			log.Fatalf("init user repo: %v", err)
		}
		userRepo = users
		profileRepo = pgrepo.NewProfileRepository(pool)
		readiness = health.NewService(healthpg.NewPostgresChecker(pool))
	}

	// Gemini client; without a key the generation-backed routes fail at
	// call time while the rest of the API keeps serving.
	var generator llm.Generator
	if cfg.GeminiAPIKey == "" {
		log.Print("GEMINI_API_KEY not set: generation-backed operations will be unavailable")
	} else {
		client, err := gemini.New(ctx, cfg.GeminiAPIKey, cfg.GeminiModel)
		if err != nil {
			log.Fatalf("gemini client: %v", err)
		}
		defer client.Close()
		generator = client
	}

	// Session cookies double as the auth token generator.
	sessions := session.NewManager(cfg.SessionSecret, cfg.SessionIssuer, time.Duration(cfg.SessionTTLMinutes)*time.Minute)

	authUC := auth.NewAuthService(userRepo, sessions)
	authHandler := handlers.NewAuthHandler(authUC, sessions)

	profileHandler := handlers.NewProfileHandler(profileRepo)

	resumeUC := resume.NewPipeline(profileRepo, generator)
	resumeHandler := handlers.NewResumeHandler(resumeUC)

	switchUC := domainswitch.NewAdvisor(profileRepo, generator)
	switchHandler := handlers.NewDomainSwitchHandler(switchUC)

	quizUC := quiz.NewGenerator(generator)
	quizHandler := handlers.NewQuizHandler(quizUC)

	healthHandler := handlers.NewHealthHandler(readiness)

	// Register routes
	http.Register(app, sessions, authHandler, profileHandler, resumeHandler, switchHandler, quizHandler, healthHandler)

	// Swagger UI
	app.Get("/swagger/*", swagger.HandlerDefault)

	// Start server
	port := cfg.Port
	log.Printf("HTTP server listening on :%s", port)
	if err := app.Listen(":" + port); err != nil {
		log.Fatalf("server stopped: %v", err)
	}
}

package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/vidyamitra/backend/api/http/handlers"
	"github.com/vidyamitra/backend/pkg/security/session"
)

// Register wires all HTTP routes onto given Fiber app. Routes that act on a
// caller's data are gated by the session middleware.
func Register(
	app *fiber.App,
	sessions *session.Manager,
	auth *handlers.AuthHandler,
	profile *handlers.ProfileHandler,
	resume *handlers.ResumeHandler,
	domainSwitch *handlers.DomainSwitchHandler,
	quiz *handlers.QuizHandler,
	health *handlers.HealthHandler,
) {
	// Health and readiness endpoints for probes/monitoring
	app.Get("/health", health.Health)
	app.Get("/ready", health.Ready)

	app.Get("/", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"message": "Welcome to the VidyaMitra API!"})
	})

	app.Post("/register", auth.Register)
	app.Post("/login", auth.Login)
	app.Post("/logout", auth.Logout)

	authed := sessions.Middleware()
	app.Get("/profile", authed, profile.Get)
	app.Post("/resume", authed, resume.Upload)
	app.Post("/domain_switch", authed, domainSwitch.Analyze)
	app.Post("/quiz", authed, quiz.Generate)
}

package router

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"

	"github.com/anhminhnguyen3110/chatbot/internal/api/http/handler"
	"github.com/anhminhnguyen3110/chatbot/internal/api/http/middleware"
	"github.com/anhminhnguyen3110/chatbot/internal/logger"
	"github.com/anhminhnguyen3110/chatbot/internal/service"
)

// Router represents an HTTP router for chatbot backend operations.
// It manages route registration and middleware configuration.
type Router struct {
	authService  *service.Auth
	allowOrigins string
	logger       *logger.Logger
}

// New creates a new Router instance.
//
// Parameters:
//   - authService: The authentication service
//   - allowOrigins: Comma separated list of allowed CORS origins
//   - logger: The logger for request logging
//
// Returns a pointer to the newly created Router instance.
func New(
	authService *service.Auth,
	allowOrigins string,
	logger *logger.Logger,
) *Router {
	return &Router{
		authService:  authService,
		allowOrigins: allowOrigins,
		logger:       logger,
	}
}

// Register registers all routes and middleware.
// It sets up the fiber app with request logging, CORS and authentication.
//
// Returns the configured fiber app instance.
func (r *Router) Register() *fiber.App {
	logging := middleware.NewLogging(r.logger)
	authenticate := middleware.NewAuthenticate(r.authService, r.logger)

	app := fiber.New(fiber.Config{
		ErrorHandler: handler.ErrorHandler,
	})

	app.Use(logging.Handle)
	app.Use(cors.New(cors.Config{
		AllowOrigins:     r.allowOrigins,
		AllowHeaders:     "Origin, Content-Type, Accept, Authorization",
		AllowMethods:     "GET,POST,PUT,DELETE,OPTIONS",
		AllowCredentials: true,
	}))

	app.Get("/health", handler.Health)
	app.Get("/", handler.Root)

	api := app.Group("/api/v1")
	r.registerAuthRoutes(api, authenticate)
	r.registerStubRoutes(api)

	return app
}

func (r *Router) registerAuthRoutes(api fiber.Router, authenticate *middleware.Authenticate) {
	authHandler := handler.NewAuth(r.authService, r.logger)

	auth := api.Group("/auth")
	auth.Post("/register", authHandler.Register)
	auth.Post("/login", authHandler.Login)
	auth.Get("/me", authenticate.Handle, authHandler.Me)
}

func (r *Router) registerStubRoutes(api fiber.Router) {
	api.Get("/chat", handler.ListChats)
	api.Get("/documents", handler.ListDocuments)
	api.Get("/files", handler.ListFiles)
	api.Get("/history", handler.ListHistory)
	api.Get("/suggestions", handler.ListSuggestions)
	api.Get("/votes", handler.ListVotes)
}

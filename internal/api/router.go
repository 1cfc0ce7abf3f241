package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/rs/zerolog"

	"github.com/workboard/workspace/internal/api/handler"
	"github.com/workboard/workspace/internal/core/ports"
	"github.com/workboard/workspace/internal/core/service"
)

// Repositories bundles the persistence ports the router wires into services.
// Either store (jsonfile or sqlite) satisfies all three.
type Repositories struct {
	Auth  ports.AuthRepository
	Tasks ports.TaskRepository
	Notes ports.NoteRepository
}

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(repos Repositories, log zerolog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddleware("workspace"))

	// --- Dependencies ---
	authService := service.NewAuthService(repos.Auth)
	taskService := service.NewTaskService(repos.Tasks, log)
	noteService := service.NewNoteService(repos.Notes, log)

	authHandler := handler.NewAuthHandler(authService)
	taskHandler := handler.NewTaskHandler(taskService)
	noteHandler := handler.NewNoteHandler(noteService)
	healthHandler := handler.NewHealthHandler()

	// --- Routes ---
	api := e.Group("/api")

	api.POST("/auth/login", authHandler.Login)
	api.POST("/auth/register", authHandler.Register)

	api.GET("/tasks", taskHandler.List)
	api.POST("/tasks", taskHandler.Create)
	api.PUT("/tasks/:id", taskHandler.Update)
	api.DELETE("/tasks/:id", taskHandler.Delete)

	api.GET("/notes", noteHandler.List)
	api.POST("/notes", noteHandler.Create)
	api.PUT("/notes/:id", noteHandler.Update)
	api.DELETE("/notes/:id", noteHandler.Delete)

	api.GET("/health", healthHandler.Health)
	api.GET("/test", healthHandler.Test)

	e.GET("/metrics", echoprometheus.NewHandler())

	return e
}

package api

import (
	"net/http"
	"time"

	"github.com/abdulmoeez1225/Todo-Challenge-With-Docker/internal/api/handler"
	"github.com/abdulmoeez1225/Todo-Challenge-With-Docker/internal/api/middleware"
	"github.com/abdulmoeez1225/Todo-Challenge-With-Docker/internal/app/service"
	"github.com/abdulmoeez1225/Todo-Challenge-With-Docker/internal/common"
	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/rs/zerolog"
)

const (
	UserServiceName = "user-service"
	TodoServiceName = "todo-service"
)

// Options carries what both services' routers share.
type Options struct {
	Logger         zerolog.Logger
	AllowedOrigins []string
	DB             handler.Pinger // used by /health; nil skips the ping
}

func newBaseRouter(service string, opts Options) chi.Router {
	r := chi.NewRouter()

	// Base Middlewares
	r.Use(chiMiddleware.RequestID)
	r.Use(chiMiddleware.RealIP)
	r.Use(middleware.RequestLogger(opts.Logger))
	r.Use(chiMiddleware.Recoverer)
	r.Use(chiMiddleware.Timeout(60 * time.Second))
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: opts.AllowedOrigins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions},
		AllowedHeaders: []string{"Accept", "Authorization", "Content-Type"},
		ExposedHeaders: []string{"X-Request-Id"},
		MaxAge:         300,
	}))

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		common.RespondWithError(w, http.StatusNotFound, "Not found")
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		common.RespondWithError(w, http.StatusMethodNotAllowed, "Method not allowed")
	})

	// Public health check
	r.Method(http.MethodGet, "/health", handler.NewHealthHandler(service, opts.DB))

	return r
}

// NewUserRouter serves registration and login.
func NewUserRouter(authService *service.AuthService, opts Options) http.Handler {
	r := newBaseRouter(UserServiceName, opts)

	authHandler := handler.NewAuthHandler(authService)
	r.Route("/api/users", authHandler.RegisterRoutes)

	return r
}

// NewTodoRouter serves the authenticated todo API.
func NewTodoRouter(todoService *service.TodoService, verifier middleware.TokenVerifier, opts Options) http.Handler {
	r := newBaseRouter(TodoServiceName, opts)

	todoHandler := handler.NewTodoHandler(todoService, verifier)
	r.Route("/api/todos", todoHandler.RegisterRoutes)

	return r
}

package routes

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/oseayemenre/alexandria/internal/shared"
)

type Server struct {
	*shared.Server
}

func NewServer(server *shared.Server) *Server {
	return &Server{Server: server}
}

func (s *Server) RegisterRoutes() {
	r := s.Server.Router

	r.Use(s.RequestIdMiddleware)
	r.Use(s.LoggingMiddleware)
	r.Use(middleware.Recoverer)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   s.Server.Config.Origins(),
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"*"},
		AllowCredentials: true,
	}))

	r.NotFound(s.HandleNotFound)
	r.MethodNotAllowed(s.HandleMethodNotAllowed)

	r.Get("/", s.HandleRoot)
	r.Get("/health", s.HandleHealth)
}

// Mount builds a router for the server and registers every route on it.
func Mount(server *shared.Server) http.Handler {
	server.Router = chi.NewRouter()

	NewServer(server).RegisterRoutes()

	return server.Router
}

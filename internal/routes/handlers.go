package routes

import (
	"errors"
	"net/http"

	"github.com/oseayemenre/alexandria/internal/models"
)

var (
	errRouteNotFound    = errors.New("route not found")
	errMethodNotAllowed = errors.New("method not allowed")
)

func (s *Server) HandleRoot(w http.ResponseWriter, r *http.Request) {
	respondWithSuccess(w, http.StatusOK, &models.RootResponse{Message: "API is running"})
}

func (s *Server) HandleHealth(w http.ResponseWriter, r *http.Request) {
	respondWithSuccess(w, http.StatusOK, &models.HealthResponse{Status: "healthy"})
}

func (s *Server) HandleNotFound(w http.ResponseWriter, r *http.Request) {
	s.Server.Logger.Warn(errRouteNotFound.Error(), "path", r.URL.Path)
	respondWithError(w, http.StatusNotFound, errRouteNotFound)
}

func (s *Server) HandleMethodNotAllowed(w http.ResponseWriter, r *http.Request) {
	s.Server.Logger.Warn(errMethodNotAllowed.Error(), "method", r.Method, "path", r.URL.Path)
	respondWithError(w, http.StatusMethodNotAllowed, errMethodNotAllowed)
}

package shared

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
	"github.com/oseayemenre/alexandria/internal/config"
	"github.com/oseayemenre/alexandria/internal/logger"
)

type Server struct {
	Router *chi.Mux
	Logger logger.Logger
	Config *config.Config
}

var Validate = validator.New()

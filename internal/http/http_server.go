package http

// this is entry point of the http request handlers

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"time"

	"github.com/gorilla/mux"

	"gitlab.com/codeval-2025.net/internal/config"
	"gitlab.com/codeval-2025.net/internal/core/ports/primary"
	"gitlab.com/codeval-2025.net/internal/core/ports/secondary"
	"gitlab.com/codeval-2025.net/internal/core/services/evaluate"
	"gitlab.com/codeval-2025.net/internal/handlers"
)

type ServiceProvider struct {
	evalService evaluate.IEvaluationService
	reportStore secondary.ReportStore
	reportCache secondary.ReportCache
}

func NewServiceProvider(
	evalService evaluate.IEvaluationService,
	reportStore secondary.ReportStore,
	reportCache secondary.ReportCache,
) *ServiceProvider {
	return &ServiceProvider{
		evalService: evalService,
		reportStore: reportStore,
		reportCache: reportCache,
	}
}

type Server struct {
	router          *mux.Router
	srv             *http.Server
	ServiceName     string
	ServiceProvider ServiceProvider
	ServerConfig    *config.ServerConfig
	JwtConfig       *config.JwtConfig
	logger          primary.Logger
}

func NewServer(serviceName string, serviceProvider ServiceProvider, serverCfg *config.ServerConfig, jwtCfg *config.JwtConfig, logger primary.Logger) *Server {
	return &Server{
		ServiceName:     serviceName,
		ServiceProvider: serviceProvider,
		ServerConfig:    serverCfg,
		JwtConfig:       jwtCfg,
		logger:          logger,
	}
}

func (s *Server) Init() error {
	r := mux.NewRouter()

	handler := handlers.NewEvaluationHandler(
		s.ServiceProvider.evalService,
		s.ServiceProvider.reportStore,
		s.ServiceProvider.reportCache,
		s.logger,
	)
	handler.RegisterRoutes(r)

	limiter := handlers.NewAdmissionLimiter(s.ServerConfig.MaxConcurrency)
	r.Use(mux.MiddlewareFunc(limiter.Middleware))

	if s.ServerConfig.AuthEnabled {
		middleware := handlers.NewMiddlewareProvider(s.JwtConfig.Secret)
		r.Use(mux.MiddlewareFunc(middleware.JWTMiddleware))
	}

	s.router = r
	return nil
}

func (s *Server) Start(ctx context.Context) {
	s.srv = &http.Server{
		Addr:         fmt.Sprintf(":%d", s.ServerConfig.Port),
		Handler:      s.router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 120 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Start the server in a goroutine
	go func() {
		s.logger.Info("Server listening", "service", s.ServiceName, "addr", s.srv.Addr)
		if err := s.srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			s.logger.Error("Server error", "error", err)
			os.Exit(1)
		}
	}()
}

func (s *Server) Stop(ctx context.Context) {
	s.logger.Info("Shutting down http server...")
	if s.srv == nil {
		return
	}
	if err := s.srv.Shutdown(ctx); err != nil {
		s.logger.Error("Server forced to shutdown", "error", err)
	}
}

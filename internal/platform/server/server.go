package server

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"TxVisualizer/internal/platform/config"
	"TxVisualizer/internal/platform/server/handler/health"
	"TxVisualizer/internal/platform/server/handler/scenario"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"
)

type Server struct {
	httpAddr string
	engine   *chi.Mux
	srv      *http.Server
	logger   *zap.Logger
}

func NewServer(cfg config.Config, scenarioHandler *scenario.ScenarioHandler, logger *zap.Logger) *Server {
	s := &Server{
		engine:   chi.NewRouter(),
		httpAddr: fmt.Sprintf(":%d", cfg.ServerPort),
		logger:   logger,
	}
	s.engine.Use(middleware.RequestID)
	s.engine.Use(middleware.Logger)
	s.engine.Use(middleware.Recoverer)
	s.registerRoutes(scenarioHandler)
	s.srv = &http.Server{Addr: s.httpAddr, Handler: s.engine, ReadHeaderTimeout: 5 * time.Second}
	return s
}

func (s *Server) Handler() http.Handler {
	return s.engine
}

func (s *Server) Run() error {
	s.logger.Info("server running", zap.String("addr", s.httpAddr))
	err := s.srv.ListenAndServe()
	if err == http.ErrServerClosed {
		return nil
	}
	return err
}

func (s *Server) Shutdown(ctx context.Context) error {
	return s.srv.Shutdown(ctx)
}

func (s *Server) registerRoutes(h *scenario.ScenarioHandler) {
	s.engine.Get("/health", health.CheckHandler)
	s.engine.Route("/scenarios", func(r chi.Router) {
		r.Get("/", h.ListScenarios)
		r.Get("/{name}/accounts", h.GetAccounts)
		r.Post("/{name}/runs", h.RunScenario)
	})
}

package rest

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"go.uber.org/zap"
)

type Server struct {
	httpServer      *http.Server
	shutdownTimeout time.Duration
	logger          *zap.SugaredLogger
}

func NewServer(port int, shutdownTimeout time.Duration, router *router, logger *zap.SugaredLogger, eh *EndpointHandler) (*Server, error) {
	if port <= 0 {
		return nil, fmt.Errorf("invalid port %d", port)
	}
	return &Server{
		httpServer: &http.Server{
			Addr:    fmt.Sprintf(":%d", port),
			Handler: router.GetHandler(eh),
		},
		shutdownTimeout: shutdownTimeout,
		logger:          logger,
	}, nil
}

func (s *Server) Run() {
	go func() {
		s.logger.Infof("listening on %s", s.httpServer.Addr)
		if err := s.httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			s.logger.Errorf("failed to serve err: %v", err)
		}
	}()
}

func (s *Server) Stop() error {
	ctx, cancel := context.WithTimeout(context.Background(), s.shutdownTimeout)
	defer cancel()
	if err := s.httpServer.Shutdown(ctx); err != nil {
		return fmt.Errorf("failed to shutdown server err: %w", err)
	}
	return nil
}

// Package httpapi serves the dashboard's REST API.
package httpapi

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
)

type Option func(*Options)

type Options struct {
	port           int
	logger         *zap.Logger
	allowedOrigins []string
	requestTimeout time.Duration
}

func WithPort(port int) Option {
	return func(o *Options) { o.port = port }
}

func WithLogger(logger *zap.Logger) Option {
	return func(o *Options) { o.logger = logger }
}

// WithAllowedOrigins sets the CORS origins. Empty entries are ignored; an
// empty list allows any origin.
func WithAllowedOrigins(origins ...string) Option {
	return func(o *Options) {
		for _, origin := range origins {
			if origin = strings.TrimSpace(origin); origin != "" {
				o.allowedOrigins = append(o.allowedOrigins, origin)
			}
		}
	}
}

func WithRequestTimeout(d time.Duration) Option {
	return func(o *Options) { o.requestTimeout = d }
}

type Server struct {
	httpServer *http.Server
	lis        net.Listener
	logger     *zap.Logger
}

// NewRouter builds the REST routes on top of feedback.
func NewRouter(feedback FeedbackService, opts ...Option) http.Handler {
	if feedback == nil {
		panic("nil FeedbackService provided to NewRouter")
	}
	options := defaultOptions()
	for _, opt := range opts {
		opt(options)
	}
	return newRouter(feedback, options)
}

func defaultOptions() *Options {
	return &Options{
		port:           5000,
		logger:         zap.NewNop(),
		requestTimeout: 15 * time.Second,
	}
}

func newRouter(feedback FeedbackService, o *Options) http.Handler {
	logger := o.logger
	if logger == nil {
		logger = zap.NewNop()
	}
	h := &handlers{feedback: feedback, logger: logger.Named("http-handler")}

	origins := o.allowedOrigins
	if len(origins) == 0 {
		origins = []string{"*"}
	}

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(requestLogger(logger.Named("http")))
	r.Use(middleware.Recoverer)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: origins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowedHeaders: []string{"Accept", "Content-Type", "X-Requested-With"},
		MaxAge:         300,
	}))
	if o.requestTimeout > 0 {
		r.Use(middleware.Timeout(o.requestTimeout))
	}

	r.Route("/api", func(r chi.Router) {
		r.Get("/health", h.health)
		r.Get("/analytics", h.getAnalytics)
		r.Get("/feedback", h.listFeedback)
		r.Post("/feedback", h.createFeedback)
		r.Get("/feedback/{id}", h.getFeedback)
	})
	r.Handle("/metrics", promhttp.Handler())

	return r
}

// New binds the listening socket so startup errors surface before Start.
func New(feedback FeedbackService, opts ...Option) (*Server, error) {
	if feedback == nil {
		return nil, errors.New("nil FeedbackService provided to httpapi.New")
	}
	options := defaultOptions()
	for _, opt := range opts {
		opt(options)
	}
	if options.logger == nil {
		options.logger = zap.NewNop()
	}

	if options.port < 0 || options.port > 65535 {
		return nil, fmt.Errorf("invalid port %d: must be between 0 and 65535", options.port)
	}

	lis, err := net.Listen("tcp", fmt.Sprintf(":%d", options.port))
	if err != nil {
		return nil, fmt.Errorf("failed to listen on port %d: %w", options.port, err)
	}

	return &Server{
		httpServer: &http.Server{
			Handler:           newRouter(feedback, options),
			ReadHeaderTimeout: 10 * time.Second,
		},
		lis:    lis,
		logger: options.logger.Named("http-server"),
	}, nil
}

// Start serves in a goroutine and returns immediately.
func (s *Server) Start() {
	s.logger.Info("HTTP server starting", zap.String("addr", s.lis.Addr().String()))

	go func() {
		if err := s.httpServer.Serve(s.lis); err != nil && !errors.Is(err, http.ErrServerClosed) {
			s.logger.Error("HTTP server failed", zap.Error(err))
		}
	}()
}

// Shutdown drains in-flight requests until ctx expires.
func (s *Server) Shutdown(ctx context.Context) error {
	s.logger.Info("HTTP server shutting down")
	if err := s.httpServer.Shutdown(ctx); err != nil {
		s.logger.Warn("forced shutdown due to timeout", zap.Error(err))
		_ = s.httpServer.Close()
		return err
	}
	s.logger.Info("HTTP server stopped")
	return nil
}

func (s *Server) Addr() net.Addr {
	return s.lis.Addr()
}

package server

import (
	"context"
	"fmt"
	"net"
	"sync"

	"go.uber.org/zap"
	"google.golang.org/grpc"
	health "google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/reflection"
)

const defaultPort = 50051

type Option func(*Options)

type Options struct {
	port              int
	logger            *zap.Logger
	reflection        bool
	enableLogging     bool
	unaryInterceptors []grpc.UnaryServerInterceptor
}

// WithPort sets the TCP port. 0 asks the kernel for a free one.
func WithPort(port int) Option {
	return func(o *Options) { o.port = port }
}

func WithLogger(logger *zap.Logger) Option {
	return func(o *Options) {
		if logger != nil {
			o.logger = logger
		}
	}
}

// WithReflection exposes the registered services through server reflection.
func WithReflection(enabled bool) Option {
	return func(o *Options) { o.reflection = enabled }
}

// WithLogging adds LoggingInterceptor after panic recovery.
func WithLogging(enabled bool) Option {
	return func(o *Options) { o.enableLogging = enabled }
}

// WithUnaryInterceptors appends interceptors that run after recovery and logging.
func WithUnaryInterceptors(interceptors ...grpc.UnaryServerInterceptor) Option {
	return func(o *Options) {
		o.unaryInterceptors = append(o.unaryInterceptors, interceptors...)
	}
}

// Server is a grpc.Server bound to its listener, with the standard health
// service tracking every service registered through it.
type Server struct {
	grpcServer   *grpc.Server
	lis          net.Listener
	logger       *zap.Logger
	healthServer *health.Server

	mu       sync.Mutex
	services []string
}

var _ grpc.ServiceRegistrar = (*Server)(nil)

// New listens on the configured port and builds the server. Nothing is
// served until Start.
func New(opts ...Option) (*Server, error) {
	options := &Options{port: defaultPort, logger: zap.NewNop()}
	for _, opt := range opts {
		opt(options)
	}

	if options.port < 0 || options.port > 65535 {
		return nil, fmt.Errorf("invalid port %d: must be between 0 and 65535", options.port)
	}

	lis, err := net.Listen("tcp", fmt.Sprintf(":%d", options.port))
	if err != nil {
		return nil, fmt.Errorf("failed to listen on port %d: %w", options.port, err)
	}

	grpcServer := grpc.NewServer(grpc.ChainUnaryInterceptor(options.interceptorChain()...))
	if options.reflection {
		reflection.Register(grpcServer)
	}

	healthServer := health.NewServer()
	healthpb.RegisterHealthServer(grpcServer, healthServer)

	return &Server{
		grpcServer:   grpcServer,
		lis:          lis,
		logger:       options.logger.Named("grpc-server"),
		healthServer: healthServer,
	}, nil
}

// interceptorChain puts recovery outermost so a panic in any later
// interceptor is still turned into codes.Internal.
func (o *Options) interceptorChain() []grpc.UnaryServerInterceptor {
	chain := []grpc.UnaryServerInterceptor{RecoveryInterceptor(o.logger)}
	if o.enableLogging {
		chain = append(chain, LoggingInterceptor(o.logger))
	}
	return append(chain, o.unaryInterceptors...)
}

// RegisterService implements grpc.ServiceRegistrar, so generated
// Register*Server functions accept a *Server. The service reports SERVING
// on the health endpoint from then until Shutdown.
func (s *Server) RegisterService(desc *grpc.ServiceDesc, impl any) {
	s.grpcServer.RegisterService(desc, impl)
	s.healthServer.SetServingStatus(desc.ServiceName, healthpb.HealthCheckResponse_SERVING)

	s.mu.Lock()
	s.services = append(s.services, desc.ServiceName)
	s.mu.Unlock()

	s.logger.Info("registered service", zap.String("service", desc.ServiceName))
}

// Services lists the names registered through RegisterService.
func (s *Server) Services() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]string(nil), s.services...)
}

// Start serves in the background and returns immediately.
func (s *Server) Start() {
	s.healthServer.SetServingStatus("", healthpb.HealthCheckResponse_SERVING)
	s.logger.Info("gRPC server listening",
		zap.String("addr", s.lis.Addr().String()),
		zap.Strings("services", s.Services()))

	go func() {
		if err := s.grpcServer.Serve(s.lis); err != nil {
			s.logger.Error("gRPC server failed", zap.Error(err))
		}
	}()
}

// Shutdown marks every service NOT_SERVING, then drains in-flight calls.
// When ctx ends first the remaining connections are closed and ctx.Err()
// is returned.
func (s *Server) Shutdown(ctx context.Context) error {
	s.healthServer.Shutdown()
	s.logger.Info("gRPC server draining", zap.Strings("services", s.Services()))

	done := make(chan struct{})
	go func() {
		s.grpcServer.GracefulStop()
		close(done)
	}()

	select {
	case <-done:
		s.logger.Info("gRPC server stopped")
		return nil
	case <-ctx.Done():
		s.logger.Warn("gRPC drain timed out, closing connections")
		s.grpcServer.Stop()
		return ctx.Err()
	}
}

// Stop closes every connection and the listener without draining.
func (s *Server) Stop() {
	s.healthServer.Shutdown()
	s.grpcServer.Stop()
	_ = s.lis.Close()
}

func (s *Server) Addr() net.Addr {
	return s.lis.Addr()
}

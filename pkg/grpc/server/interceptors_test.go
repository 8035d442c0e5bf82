package server

import (
	"context"
	"testing"
	"time"

	"go.uber.org/zap/zaptest"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/credentials/insecure"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/status"
)

func TestLoggingInterceptor(t *testing.T) {
	logger := zaptest.NewLogger(t)

	interceptor := LoggingInterceptor(logger)

	successHandler := func(ctx context.Context, req any) (any, error) {
		return "success", nil
	}

	errorHandler := func(ctx context.Context, req any) (any, error) {
		return nil, status.Error(codes.InvalidArgument, "test error")
	}

	// Test successful request
	t.Run("successful request", func(t *testing.T) {
		info := &grpc.UnaryServerInfo{
			FullMethod: "/test.Service/TestMethod",
		}

		resp, err := interceptor(context.Background(), "test request", info, successHandler)
		if err != nil {
			t.Errorf("Expected no error, got %v", err)
		}
		if resp != "success" {
			t.Errorf("Expected 'success', got %v", resp)
		}
	})

	// Test error request
	t.Run("error request", func(t *testing.T) {
		info := &grpc.UnaryServerInfo{
			FullMethod: "/test.Service/TestMethod",
		}

		_, err := interceptor(context.Background(), "test request", info, errorHandler)
		if err == nil {
			t.Error("Expected an error, got nil")
		}

		st, ok := status.FromError(err)
		if !ok {
			t.Error("Expected gRPC status error")
		}
		if st.Code() != codes.InvalidArgument {
			t.Errorf("Expected InvalidArgument, got %v", st.Code())
		}
	})
}

func TestRecoveryInterceptor(t *testing.T) {
	interceptor := RecoveryInterceptor(zaptest.NewLogger(t))
	info := &grpc.UnaryServerInfo{FullMethod: "/test.Service/Panics"}

	resp, err := interceptor(context.Background(), "req", info, func(ctx context.Context, req any) (any, error) {
		panic("boom")
	})
	if resp != nil {
		t.Errorf("Expected nil response, got %v", resp)
	}
	if status.Code(err) != codes.Internal {
		t.Errorf("Expected Internal, got %v", status.Code(err))
	}

	resp, err = interceptor(context.Background(), "req", info, func(ctx context.Context, req any) (any, error) {
		return "ok", nil
	})
	if err != nil || resp != "ok" {
		t.Errorf("Expected pass-through, got %v, %v", resp, err)
	}
}

func TestServerBuilderRejectsBadPort(t *testing.T) {
	for _, port := range []int{-1, 70000} {
		if _, err := New(WithPort(port)); err == nil {
			t.Errorf("Expected error for port %d", port)
		}
	}
}

var echoDesc = grpc.ServiceDesc{
	ServiceName: "test.v1.Echo",
	HandlerType: (*any)(nil),
	Methods:     []grpc.MethodDesc{},
	Streams:     []grpc.StreamDesc{},
}

func checkHealth(t *testing.T, srv *Server, service string) healthpb.HealthCheckResponse_ServingStatus {
	t.Helper()
	resp, err := srv.healthServer.Check(context.Background(), &healthpb.HealthCheckRequest{Service: service})
	if err != nil {
		t.Fatalf("health check for %q failed: %v", service, err)
	}
	return resp.Status
}

func TestServerRegisterServiceTracksHealth(t *testing.T) {
	server, err := New(WithPort(0), WithLogger(zaptest.NewLogger(t)), WithLogging(true))
	if err != nil {
		t.Fatalf("Failed to create server: %v", err)
	}

	server.RegisterService(&echoDesc, struct{}{})
	server.Start()

	if got := server.Services(); len(got) != 1 || got[0] != "test.v1.Echo" {
		t.Fatalf("Expected [test.v1.Echo], got %v", got)
	}

	conn, err := grpc.NewClient(server.Addr().String(), grpc.WithTransportCredentials(insecure.NewCredentials()))
	if err != nil {
		t.Fatalf("Failed to dial server: %v", err)
	}
	defer conn.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	healthClient := healthpb.NewHealthClient(conn)
	for _, name := range []string{"", "test.v1.Echo"} {
		resp, err := healthClient.Check(ctx, &healthpb.HealthCheckRequest{Service: name})
		if err != nil {
			t.Fatalf("Health check for %q failed: %v", name, err)
		}
		if resp.Status != healthpb.HealthCheckResponse_SERVING {
			t.Errorf("Expected SERVING for %q, got %v", name, resp.Status)
		}
	}

	if err := server.Shutdown(ctx); err != nil {
		t.Fatalf("Shutdown failed: %v", err)
	}
	if got := checkHealth(t, server, "test.v1.Echo"); got != healthpb.HealthCheckResponse_NOT_SERVING {
		t.Errorf("Expected NOT_SERVING after shutdown, got %v", got)
	}
	if got := checkHealth(t, server, ""); got != healthpb.HealthCheckResponse_NOT_SERVING {
		t.Errorf("Expected overall NOT_SERVING after shutdown, got %v", got)
	}
}

func TestServerStopWithoutStart(t *testing.T) {
	server, err := New(WithPort(0))
	if err != nil {
		t.Fatalf("Failed to create server: %v", err)
	}
	server.RegisterService(&echoDesc, struct{}{})
	server.Stop()

	if got := checkHealth(t, server, "test.v1.Echo"); got != healthpb.HealthCheckResponse_NOT_SERVING {
		t.Errorf("Expected NOT_SERVING after stop, got %v", got)
	}
}

func TestInterceptorChainOrder(t *testing.T) {
	var calls []string
	tag := func(name string) grpc.UnaryServerInterceptor {
		return func(ctx context.Context, req any, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (any, error) {
			calls = append(calls, name)
			return handler(ctx, req)
		}
	}

	o := &Options{logger: zaptest.NewLogger(t), enableLogging: true}
	WithUnaryInterceptors(tag("a"), tag("b"))(o)

	chain := o.interceptorChain()
	if len(chain) != 4 {
		t.Fatalf("Expected recovery, logging and 2 custom interceptors, got %d", len(chain))
	}

	// a panic raised by a custom interceptor is still caught by the first link
	info := &grpc.UnaryServerInfo{FullMethod: "/test.v1.Echo/Ping"}
	panicky := func(ctx context.Context, req any, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (any, error) {
		panic("interceptor bug")
	}
	_, err := chain[0](context.Background(), "req", info, func(ctx context.Context, req any) (any, error) {
		return panicky(ctx, req, info, nil)
	})
	if status.Code(err) != codes.Internal {
		t.Errorf("Expected Internal, got %v", status.Code(err))
	}

	_, err = chain[2](context.Background(), "req", info, func(ctx context.Context, req any) (any, error) {
		return chain[3](ctx, req, info, func(ctx context.Context, req any) (any, error) { return "ok", nil })
	})
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if len(calls) != 2 || calls[0] != "a" || calls[1] != "b" {
		t.Errorf("Expected custom interceptors in order [a b], got %v", calls)
	}
}

package grpc

import (
	"context"
	"errors"
	"fmt"
	"net"

	"go.uber.org/zap"
	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/reflection"
)

// ServiceName is the health-check name reported alongside the overall ("")
// status.
const ServiceName = "tradingapp.v1.TradingApp"

// HealthServer exposes the standard grpc.health.v1 service so orchestrators
// can probe the process without speaking HTTP.
type HealthServer struct {
	srv    *grpc.Server
	health *health.Server
	log    *zap.Logger
}

// NewHealthServer creates a server reporting SERVING for the overall status
// and for ServiceName.
func NewHealthServer(log *zap.Logger) *HealthServer {
	srv := grpc.NewServer()
	hs := health.NewServer()
	healthpb.RegisterHealthServer(srv, hs)
	reflection.Register(srv)

	hs.SetServingStatus("", healthpb.HealthCheckResponse_SERVING)
	hs.SetServingStatus(ServiceName, healthpb.HealthCheckResponse_SERVING)

	return &HealthServer{srv: srv, health: hs, log: log}
}

// Serve accepts connections on lis until Stop is called.
func (s *HealthServer) Serve(lis net.Listener) error {
	s.log.Info("grpc health listening", zap.String("address", lis.Addr().String()))
	if err := s.srv.Serve(lis); err != nil && !errors.Is(err, grpc.ErrServerStopped) {
		return fmt.Errorf("grpc serve: %w", err)
	}
	return nil
}

// ListenAndServe listens on addr and serves until Stop is called.
func (s *HealthServer) ListenAndServe(addr string) error {
	lis, err := net.Listen("tcp", addr)
	if err != nil {
		return fmt.Errorf("grpc listen on %s: %w", addr, err)
	}
	return s.Serve(lis)
}

// MarkNotServing flips every status to NOT_SERVING. Later status updates
// are ignored.
func (s *HealthServer) MarkNotServing() {
	s.health.Shutdown()
}

// Stop drains in-flight RPCs, falling back to a hard stop when ctx ends
// first.
func (s *HealthServer) Stop(ctx context.Context) {
	s.MarkNotServing()

	done := make(chan struct{})
	go func() {
		s.srv.GracefulStop()
		close(done)
	}()

	select {
	case <-done:
	case <-ctx.Done():
		s.log.Warn("grpc graceful stop timed out, forcing")
		s.srv.Stop()
	}
}

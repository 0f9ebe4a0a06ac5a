// Package server wires the roller runtime and gRPC lifecycle.
package server

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net"
	"net/http"

	"github.com/louisbranch/dicegoblin/internal/dice"
	"github.com/louisbranch/dicegoblin/internal/dice/expr"
	"github.com/louisbranch/dicegoblin/internal/platform/telemetry/metrics"
	"github.com/louisbranch/dicegoblin/internal/platform/timeouts"
	rollerservice "github.com/louisbranch/dicegoblin/internal/services/roller/api/grpc/roller"
	"go.opentelemetry.io/contrib/instrumentation/google.golang.org/grpc/otelgrpc"
	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	grpc_health_v1 "google.golang.org/grpc/health/grpc_health_v1"
)

// Options configures a roller server.
type Options struct {
	// Addr is the gRPC listen address.
	Addr string
	// MetricsAddr serves Prometheus metrics when set.
	MetricsAddr string
	// Limits bounds each roll.
	Limits expr.Limits
	// RateLimit is the sustained rolls per second; zero disables limiting.
	RateLimit float64
	// RateBurst is the number of rolls admitted at once.
	RateBurst int
}

// Server hosts the RollService gRPC API and its metrics endpoint.
type Server struct {
	listener        net.Listener
	grpcServer      *grpc.Server
	health          *health.Server
	metricsListener net.Listener
	metricsServer   *http.Server
	recorder        *metrics.Recorder
}

// New creates a configured roller server.
func New(opts Options) (*Server, error) {
	listener, err := net.Listen("tcp", opts.Addr)
	if err != nil {
		return nil, fmt.Errorf("listen on %s: %w", opts.Addr, err)
	}

	recorder := metrics.NewRecorder()
	roller := dice.New(
		dice.WithLimits(opts.Limits),
		dice.WithObserver(recorder),
	)

	grpcServer := grpc.NewServer(
		grpc.StatsHandler(otelgrpc.NewServerHandler()),
		grpc.ChainUnaryInterceptor(
			recorder.UnaryServerInterceptor(),
			rateLimitInterceptor(newLimiter(opts.RateLimit, opts.RateBurst)),
		),
	)
	healthServer := health.NewServer()
	rollerservice.RegisterRollServiceServer(grpcServer, rollerservice.NewService(roller))
	grpc_health_v1.RegisterHealthServer(grpcServer, healthServer)
	healthServer.SetServingStatus("", grpc_health_v1.HealthCheckResponse_SERVING)
	healthServer.SetServingStatus(rollerservice.ServiceName, grpc_health_v1.HealthCheckResponse_SERVING)

	s := &Server{
		listener:   listener,
		grpcServer: grpcServer,
		health:     healthServer,
		recorder:   recorder,
	}

	if opts.MetricsAddr != "" {
		metricsListener, err := net.Listen("tcp", opts.MetricsAddr)
		if err != nil {
			s.Close()
			return nil, fmt.Errorf("listen on %s: %w", opts.MetricsAddr, err)
		}
		mux := http.NewServeMux()
		mux.Handle("/metrics", recorder.Handler())
		s.metricsListener = metricsListener
		s.metricsServer = &http.Server{
			Handler:           mux,
			ReadHeaderTimeout: timeouts.ReadHeader,
		}
	}
	return s, nil
}

// Addr returns the gRPC listener address.
func (s *Server) Addr() string {
	if s == nil || s.listener == nil {
		return ""
	}
	return s.listener.Addr().String()
}

// MetricsAddr returns the metrics listener address, or "" when disabled.
func (s *Server) MetricsAddr() string {
	if s == nil || s.metricsListener == nil {
		return ""
	}
	return s.metricsListener.Addr().String()
}

// Run creates and serves a roller server until context cancellation.
func Run(ctx context.Context, opts Options) error {
	server, err := New(opts)
	if err != nil {
		return err
	}
	return server.Serve(ctx)
}

// Serve starts the gRPC and metrics servers until context cancellation.
func (s *Server) Serve(ctx context.Context) error {
	if s == nil {
		return errors.New("server is nil")
	}
	if ctx == nil {
		ctx = context.Background()
	}
	defer s.Close()

	log.Printf("roller server listening at %v", s.listener.Addr())
	serveErr := make(chan error, 2)
	go func() {
		serveErr <- grpcServeResult(s.grpcServer.Serve(s.listener))
	}()
	if s.metricsServer != nil {
		log.Printf("roller metrics listening at %v", s.metricsListener.Addr())
		go func() {
			if err := s.metricsServer.Serve(s.metricsListener); err != nil && !errors.Is(err, http.ErrServerClosed) {
				serveErr <- fmt.Errorf("serve metrics: %w", err)
			}
		}()
	}

	select {
	case <-ctx.Done():
		s.health.Shutdown()
		s.shutdownMetrics()
		s.grpcServer.GracefulStop()
		return <-serveErr
	case err := <-serveErr:
		return err
	}
}

func (s *Server) shutdownMetrics() {
	if s.metricsServer == nil {
		return
	}
	shutdownCtx, cancel := context.WithTimeout(context.Background(), timeouts.Shutdown)
	defer cancel()
	if err := s.metricsServer.Shutdown(shutdownCtx); err != nil {
		log.Printf("shutdown metrics server: %v", err)
	}
}

func grpcServeResult(err error) error {
	if err == nil || errors.Is(err, grpc.ErrServerStopped) {
		return nil
	}
	return fmt.Errorf("serve gRPC: %w", err)
}

// Close releases roller server resources.
func (s *Server) Close() {
	if s == nil {
		return
	}
	if s.health != nil {
		s.health.Shutdown()
	}
	if s.grpcServer != nil {
		s.grpcServer.Stop()
	}
	if s.listener != nil {
		_ = s.listener.Close()
	}
	if s.metricsServer != nil {
		_ = s.metricsServer.Close()
	} else if s.metricsListener != nil {
		_ = s.metricsListener.Close()
	}
}

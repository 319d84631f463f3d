package app

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"time"

	"github.com/project/libraryapi/config"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/cors"
	"go.opentelemetry.io/contrib/instrumentation/google.golang.org/grpc/otelgrpc"
	"go.uber.org/zap"
	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/reflection"
)

const (
	serviceName         = "library"
	healthCheckInterval = 10 * time.Second
	pingTimeout         = 2 * time.Second
)

func newRestServer(cfg *config.Config, handler http.Handler) *http.Server {
	c := cors.New(cors.Options{
		AllowedOrigins: cfg.HTTP.CORSOrigins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete},
		AllowedHeaders: []string{"*"},
		ExposedHeaders: []string{"Location"},
	})

	return &http.Server{
		Addr:         ":" + cfg.HTTP.Port,
		Handler:      c.Handler(handler),
		ReadTimeout:  cfg.HTTP.ReadTimeoutMS,
		WriteTimeout: cfg.HTTP.WriteTimeoutMS,
	}
}

func newMetricsServer(cfg *config.Config) *http.Server {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())

	return &http.Server{
		Addr:              ":" + cfg.Observability.MetricsPort,
		Handler:           mux,
		ReadHeaderTimeout: cfg.HTTP.ReadTimeoutMS,
	}
}

func serveHTTP(logger *zap.Logger, name string, server *http.Server) error {
	logger.Info("http server listening", zap.String("server", name), zap.String("addr", server.Addr))

	if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("%s server: %w", name, err)
	}
	return nil
}

type pinger interface {
	Ping(ctx context.Context) error
}

type grpcServer struct {
	server *grpc.Server
	health *health.Server
}

func newGrpcServer() *grpcServer {
	s := grpc.NewServer(grpc.StatsHandler(otelgrpc.NewServerHandler()))
	h := health.NewServer()

	healthpb.RegisterHealthServer(s, h)
	reflection.Register(s)
	h.SetServingStatus(serviceName, healthpb.HealthCheckResponse_NOT_SERVING)

	return &grpcServer{server: s, health: h}
}

func (g *grpcServer) serve(logger *zap.Logger, port string) error {
	lis, err := net.Listen("tcp", ":"+port)
	if err != nil {
		return fmt.Errorf("can not open tcp socket: %w", err)
	}

	logger.Info("grpc server listening at port", zap.String("port", port))
	return g.serveListener(lis)
}

func (g *grpcServer) serveListener(lis net.Listener) error {
	if err := g.server.Serve(lis); err != nil && !errors.Is(err, grpc.ErrServerStopped) {
		return fmt.Errorf("grpc server: %w", err)
	}
	return nil
}

// watchDatabase keeps the health status in line with database reachability.
func (g *grpcServer) watchDatabase(ctx context.Context, logger *zap.Logger, db pinger) error {
	ticker := time.NewTicker(healthCheckInterval)
	defer ticker.Stop()

	for {
		g.health.SetServingStatus(serviceName, g.probe(ctx, logger, db))

		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
		}
	}
}

func (g *grpcServer) probe(ctx context.Context, logger *zap.Logger, db pinger) healthpb.HealthCheckResponse_ServingStatus {
	pingCtx, cancel := context.WithTimeout(ctx, pingTimeout)
	defer cancel()

	if err := db.Ping(pingCtx); err != nil {
		if ctx.Err() == nil {
			logger.Warn("database is unreachable", zap.Error(err))
		}
		return healthpb.HealthCheckResponse_NOT_SERVING
	}
	return healthpb.HealthCheckResponse_SERVING
}

// stop drains in-flight RPCs until ctx expires and then closes whatever is
// left, such as open health Watch streams.
func (g *grpcServer) stop(ctx context.Context) {
	g.health.Shutdown()

	done := make(chan struct{})
	go func() {
		g.server.GracefulStop()
		close(done)
	}()

	select {
	case <-done:
	case <-ctx.Done():
		g.server.Stop()
		<-done
	}
}

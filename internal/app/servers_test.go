package app

import (
	"context"
	"errors"
	"net"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/project/libraryapi/config"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
)

type pingerFunc func(ctx context.Context) error

func (f pingerFunc) Ping(ctx context.Context) error { return f(ctx) }

func TestGrpcServer_probe(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		ping error
		want healthpb.HealthCheckResponse_ServingStatus
	}{
		{name: "database reachable", want: healthpb.HealthCheckResponse_SERVING},
		{name: "database down", ping: errors.New("connection refused"), want: healthpb.HealthCheckResponse_NOT_SERVING},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			g := newGrpcServer()
			got := g.probe(context.Background(), zap.NewNop(), pingerFunc(func(context.Context) error { return tt.ping }))
			require.Equal(t, tt.want, got)
		})
	}
}

func TestGrpcServer_watchDatabase(t *testing.T) {
	t.Parallel()

	g := newGrpcServer()
	ctx, cancel := context.WithCancel(context.Background())

	err := g.watchDatabase(ctx, zap.NewNop(), pingerFunc(func(context.Context) error {
		cancel()
		return nil
	}))
	require.NoError(t, err)

	resp, err := g.health.Check(context.Background(), &healthpb.HealthCheckRequest{Service: serviceName})
	require.NoError(t, err)
	require.Equal(t, healthpb.HealthCheckResponse_SERVING, resp.GetStatus())
}

func TestNewRestServer_cors(t *testing.T) {
	t.Parallel()

	cfg := &config.Config{}
	cfg.HTTP.Port = "8080"
	cfg.HTTP.CORSOrigins = []string{"https://library.example"}

	server := newRestServer(cfg, http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))
	require.Equal(t, ":8080", server.Addr)

	tests := []struct {
		origin string
		want   string
	}{
		{origin: "https://library.example", want: "https://library.example"},
		{origin: "https://other.example", want: ""},
	}

	for _, tt := range tests {
		req := httptest.NewRequest(http.MethodGet, "/books", nil)
		req.Header.Set("Origin", tt.origin)
		rec := httptest.NewRecorder()

		server.Handler.ServeHTTP(rec, req)
		require.Equal(t, tt.want, rec.Header().Get("Access-Control-Allow-Origin"))
	}
}

func TestSetupTracing_disabled(t *testing.T) {
	t.Parallel()

	shutdown, err := setupTracing("", zap.NewNop())
	require.NoError(t, err)
	require.NoError(t, shutdown(context.Background()))
}

func TestGrpcServer_stopWithOpenWatchStream(t *testing.T) {
	t.Parallel()

	lis, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)

	g := newGrpcServer()
	served := make(chan error, 1)
	go func() { served <- g.serveListener(lis) }()

	conn, err := grpc.NewClient(lis.Addr().String(), grpc.WithTransportCredentials(insecure.NewCredentials()))
	require.NoError(t, err)
	defer conn.Close()

	streamCtx, cancelStream := context.WithCancel(context.Background())
	defer cancelStream()

	stream, err := healthpb.NewHealthClient(conn).Watch(streamCtx, &healthpb.HealthCheckRequest{Service: serviceName})
	require.NoError(t, err)

	resp, err := stream.Recv()
	require.NoError(t, err)
	require.Equal(t, healthpb.HealthCheckResponse_NOT_SERVING, resp.GetStatus())

	ctx, cancel := context.WithTimeout(context.Background(), 500*time.Millisecond)
	defer cancel()

	stopped := make(chan struct{})
	go func() {
		g.stop(ctx)
		close(stopped)
	}()

	select {
	case <-stopped:
	case <-time.After(5 * time.Second):
		t.Fatal("stop did not return after the shutdown deadline")
	}

	select {
	case err = <-served:
		require.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("grpc server kept serving after stop")
	}
}

func TestGrpcServer_stopIdle(t *testing.T) {
	t.Parallel()

	lis, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)

	g := newGrpcServer()
	served := make(chan error, 1)
	go func() { served <- g.serveListener(lis) }()

	g.stop(context.Background())
	require.NoError(t, <-served)
}

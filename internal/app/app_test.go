package app

import (
	"context"
	"errors"
	"io"
	"net"
	"net/http"
	"strings"
	"testing"
	"time"

	log "github.com/sirupsen/logrus"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"

	healthcheck "github.com/vladislavdragonenkov/orders/internal/health"
	grpcsvc "github.com/vladislavdragonenkov/orders/internal/service/grpc"
	"github.com/vladislavdragonenkov/orders/internal/service/outbox"
	"github.com/vladislavdragonenkov/orders/internal/storage/memory"
	ordersv1 "github.com/vladislavdragonenkov/orders/proto/orders/v1"
)

func testConfig() Config {
	cfg := DefaultConfig()
	cfg.GRPCAddr = "127.0.0.1:0"
	cfg.HTTPAddr = "127.0.0.1:0"
	cfg.MetricsAddr = "127.0.0.1:0"
	cfg.AllowMockProducts = true
	cfg.OutboxPollInterval = 10 * time.Millisecond
	return cfg
}

func TestRun_MemoryGracefulShutdown(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	go func() {
		time.Sleep(150 * time.Millisecond)
		cancel()
	}()

	err := Run(ctx, testConfig())
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
}

func TestRun_InvalidStorageDriver(t *testing.T) {
	cfg := testConfig()
	cfg.StorageDriver = "invalid-driver"

	err := Run(context.Background(), cfg)
	if err == nil || !strings.Contains(err.Error(), "unsupported storage driver") {
		t.Fatalf("expected unsupported storage driver error, got %v", err)
	}
}

func TestMetricsMux_Endpoints(t *testing.T) {
	handler := healthcheck.NewHandler("test")
	handler.RegisterChecker("storage", healthcheck.NewPingChecker("storage", func(context.Context) error { return nil }))

	lis, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		t.Fatalf("listen: %v", err)
	}
	logger := log.WithField("test", "metrics")
	srv := startHTTPServer("metrics", lis, metricsMux(handler), logger)
	defer shutdownHTTP(srv, logger)

	base := "http://" + lis.Addr().String()
	for path, want := range map[string]int{
		"/metrics": http.StatusOK,
		"/healthz": http.StatusOK,
		"/readyz":  http.StatusOK,
		"/livez":   http.StatusOK,
	} {
		resp, err := http.Get(base + path)
		if err != nil {
			t.Fatalf("GET %s: %v", path, err)
		}
		body, _ := io.ReadAll(resp.Body)
		_ = resp.Body.Close()
		if resp.StatusCode != want {
			t.Errorf("GET %s: expected %d, got %d (%s)", path, want, resp.StatusCode, body)
		}
	}
}

func TestShutdownHelpers(t *testing.T) {
	logger := log.WithField("test", "shutdown")

	worker := outbox.NewWorker(memory.NewStore(), outbox.NewLogPublisher(logger), outbox.Config{PollInterval: 5 * time.Millisecond})
	cancel, done := startOutboxWorker(context.Background(), worker)
	shutdownOutboxWorker(cancel, done, logger)
	select {
	case <-done:
	default:
		t.Fatal("outbox worker should be stopped")
	}

	shutdownOutboxWorker(nil, nil, logger)
	shutdownHTTP(nil, logger)
	closeKafkaProducer(nil, logger)
	closeStorage(runtimeDependencies{}, logger)
}

func TestOutboxPublishers_WithoutKafka(t *testing.T) {
	publisher, dlq := outboxPublishers(nil, "orders.order.events", log.WithField("test", "publishers"))
	if _, ok := publisher.(*outbox.LogPublisher); !ok {
		t.Fatalf("expected log publisher, got %T", publisher)
	}
	if dlq != nil {
		t.Fatalf("expected no DLQ without kafka, got %T", dlq)
	}
	if initKafkaProducer(nil, log.WithField("test", "kafka")) != nil {
		t.Fatal("expected nil producer without brokers")
	}
}

func TestNewGRPCServer_RegistersServices(t *testing.T) {
	srv, healthServer := newGRPCServer(grpcsvc.NewOrderService(nil, nil), log.WithField("test", "grpc"))
	defer srv.Stop()

	info := srv.GetServiceInfo()
	for _, name := range []string{
		ordersv1.OrderService_ServiceDesc.ServiceName,
		"grpc.health.v1.Health",
		"grpc.reflection.v1.ServerReflection",
	} {
		if _, ok := info[name]; !ok {
			t.Errorf("service %s is not registered", name)
		}
	}

	resp, err := healthServer.Check(context.Background(), &healthpb.HealthCheckRequest{Service: ordersv1.OrderService_ServiceDesc.ServiceName})
	if err != nil {
		t.Fatalf("health check: %v", err)
	}
	if resp.GetStatus() != healthpb.HealthCheckResponse_SERVING {
		t.Fatalf("expected SERVING, got %s", resp.GetStatus())
	}
}

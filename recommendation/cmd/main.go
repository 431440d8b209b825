package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"math/rand"
	"net"
	nethttp "net/http"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/grpc-ecosystem/go-grpc-middleware/ratelimit"
	"go.opentelemetry.io/contrib/instrumentation/google.golang.org/grpc/otelgrpc"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/propagation"
	"go.uber.org/zap"
	"google.golang.org/grpc"

	"singmeasong/gen"
	"singmeasong/internal/grpcutil"
	"singmeasong/pkg/discovery"
	"singmeasong/pkg/discovery/consul"
	"singmeasong/pkg/discovery/memory"
	"singmeasong/pkg/limiter"
	"singmeasong/pkg/logging"
	"singmeasong/pkg/metrics"
	"singmeasong/pkg/tracing"
	"singmeasong/recommendation/configs"
	"singmeasong/recommendation/internal/controller/recommendation"
	grpchandler "singmeasong/recommendation/internal/handler/grpc"
	httphandler "singmeasong/recommendation/internal/handler/http"
	"singmeasong/recommendation/internal/ingester/kafka"
	memoryrepo "singmeasong/recommendation/internal/repository/memory"
	"singmeasong/recommendation/internal/repository/mysql"
	"singmeasong/recommendation/pkg/model"
)

const serviceName = "recommendation"

func main() {
	configPath := flag.String("config", "defaults.yaml", "path to the service configuration")
	flag.Parse()

	logConfig := zap.NewProductionConfig()
	log, err := logConfig.Build()
	if err != nil {
		panic(err)
	}
	log = log.With(zap.String(logging.FieldService, serviceName))
	defer func() {
		_ = log.Sync()
	}()

	cfg, err := configs.Load(*configPath)
	if err != nil {
		log.Fatal("Failed to load config", zap.String("path", *configPath), zap.Error(err))
	}
	log.Info("Starting the service",
		zap.Int(logging.FieldPort, cfg.API.Port),
		zap.Int("grpc_port", cfg.GRPC.Port),
	)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	if cfg.Jaeger.URL != "" {
		tp, err := tracing.NewJaegerProvider(cfg.Jaeger.URL, serviceName)
		if err != nil {
			log.Fatal("Failed to initialize jaeger provider", zap.Error(err))
		}
		defer func() {
			if err := tp.Shutdown(context.Background()); err != nil {
				log.Warn("Failed to shutdown jaeger provider", zap.Error(err))
			}
		}()
		otel.SetTracerProvider(tp)
		otel.SetTextMapPropagator(propagation.TraceContext{})
	}

	var registry discovery.Registry
	if addr := cfg.ServiceDiscovery.Consul.Address; addr != "" {
		registry, err = consul.NewRegistry(addr, log)
		if err != nil {
			log.Fatal("Failed to create consul registry", zap.Error(err))
		}
	} else {
		registry = memory.NewRegistry(log)
	}
	instanceID := discovery.GenerateInstanceID(serviceName)
	hostPort := net.JoinHostPort(cfg.ServiceDiscovery.Hostname, fmt.Sprint(cfg.GRPC.Port))
	if err := registry.Register(ctx, instanceID, serviceName, hostPort); err != nil {
		log.Fatal("Failed to register service", zap.Error(err))
	}
	go func() {
		for {
			select {
			case <-ctx.Done():
				return
			case <-time.After(1 * time.Second):
				if err := registry.ReportHealthyState(instanceID, serviceName); err != nil {
					log.Warn("Failed to report healthy state", zap.Error(err))
				}
			}
		}
	}()
	defer func() {
		if err := registry.Deregister(context.Background(), instanceID, serviceName); err != nil {
			log.Warn("Failed to deregister service", zap.Error(err))
		}
	}()

	scope, closer := metrics.NewMetricsReporter(log, serviceName, cfg.Prometheus.MetricsPort)
	defer func() {
		if err := closer.Close(); err != nil {
			log.Warn("Failed to close Prometheus reporter scope", zap.Error(err))
		}
	}()

	var ingester voteIngester
	if kc := cfg.MessengerConfig.Kafka; kc.Address != "" {
		k, err := kafka.NewIngester(kc.Address, kc.GroupID, kc.Topic, log)
		if err != nil {
			log.Fatal("Failed to initialize ingester", zap.Error(err))
		}
		ingester = k
	}

	random := rand.New(rand.NewSource(time.Now().UnixNano()))
	var svc *recommendation.Controller
	switch cfg.DatabaseConfig.Driver {
	case "mysql":
		repo, err := mysql.New(cfg.DatabaseConfig.Mysql, log)
		if err != nil {
			log.Fatal("Failed to open mysql repository", zap.Error(err))
		}
		defer repo.Close()
		svc = recommendation.New(repo, ingester, random, log)
	default:
		svc = recommendation.New(memoryrepo.New(log), ingester, random, log)
	}

	if ingester != nil {
		go func() {
			if err := svc.StartIngestion(ctx); err != nil {
				log.Error("Vote ingestion stopped", zap.Error(err))
			}
		}()
	}

	creds, err := grpcutil.TransportCredentials(cfg.TLS.Cert, cfg.TLS.Key)
	if err != nil {
		log.Fatal("Failed to load TLS credentials", zap.Error(err))
	}
	l := limiter.New(log, cfg.API.RateLimit.Limit, cfg.API.RateLimit.Burst)
	srv := grpc.NewServer(
		grpc.UnaryInterceptor(ratelimit.UnaryServerInterceptor(l)),
		grpc.Creds(creds),
		grpc.StatsHandler(otelgrpc.NewServerHandler()),
	)
	gen.RegisterRecommendationServiceServer(srv, grpchandler.New(svc, log, scope))

	h := httphandler.New(svc, log, scope)
	httpSrv := &nethttp.Server{
		Addr: fmt.Sprintf(":%d", cfg.API.Port),
		Handler: h.Routes(httphandler.Options{
			TestMode:    cfg.API.TestMode,
			CORSOrigins: cfg.API.CORSOrigins,
			Limiter:     l.Middleware,
		}),
		ReadHeaderTimeout: 5 * time.Second,
	}

	lis, err := net.Listen("tcp", fmt.Sprintf("0.0.0.0:%d", cfg.GRPC.Port))
	if err != nil {
		log.Fatal("failed to listen", zap.Error(err))
	}

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		s := <-sigChan
		cancel()
		log.Info("Got signal, attempting graceful shutdown", zap.Stringer(logging.FieldSignal, s))
		shutdownCtx, stop := context.WithTimeout(context.Background(), 10*time.Second)
		defer stop()
		if err := httpSrv.Shutdown(shutdownCtx); err != nil {
			log.Warn("Failed to shutdown the HTTP server", zap.Error(err))
		}
		srv.GracefulStop()
		log.Info("Gracefully stopped the servers")
	}()

	go func() {
		if err := httpSrv.ListenAndServe(); err != nil && !errors.Is(err, nethttp.ErrServerClosed) {
			log.Fatal("HTTP server failed", zap.Error(err))
		}
	}()
	if err := srv.Serve(lis); err != nil {
		log.Error("gRPC server failed", zap.Error(err))
	}
	wg.Wait()
}

type voteIngester interface {
	Ingest(ctx context.Context) (chan model.VoteEvent, error)
}

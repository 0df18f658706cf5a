package main

import (
	"context"
	"fmt"
	"log"
	"net"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	"google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/reflection"

	grpc_logging "github.com/grpc-ecosystem/go-grpc-middleware/v2/interceptors/logging"
	grpc_recovery "github.com/grpc-ecosystem/go-grpc-middleware/v2/interceptors/recovery"

	"github.com/KirkDiggler/essence-api/internal/engine/essence"
	"github.com/KirkDiggler/essence-api/internal/handlers/planner/v1alpha1"
	"github.com/KirkDiggler/essence-api/internal/pkg/clock"
	searchcache "github.com/KirkDiggler/essence-api/internal/repositories/search_cache"
)

var serverFlags serverConfig

var serverCmd = &cobra.Command{
	Use:   "server",
	Short: "Start the gRPC server",
	Long:  `Start the essence planner gRPC server with the selected storage backend.`,
	RunE:  runServer,
}

func init() {
	f := serverCmd.Flags()
	f.IntVar(&serverFlags.Port, "port", 50051, "gRPC server port")
	f.StringVar(&serverFlags.Store, "store", StoreRedis, "ownership store: redis, mysql or memory")
	f.StringVar(&serverFlags.RedisAddr, "redis-addr", "localhost:6379", "Redis address; comma separate several for a cluster")
	f.StringVar(&serverFlags.MySQLDSN, "mysql-dsn", "", "MySQL DSN for the mysql store")
	f.StringVar(&serverFlags.CatalogPath, "catalog", "", "YAML catalog file; empty uses the built-in catalog")
	f.IntVar(&serverFlags.TopN, "top-n", essence.DefaultTopN, "plans returned when a request does not set top_n")
	f.IntVar(&serverFlags.MaxBaseCandidates, "max-base-candidates", essence.DefaultMaxBaseCandidates, "largest base-candidate subset tried")
	f.DurationVar(&serverFlags.SearchTTL, "search-ttl", searchcache.DefaultTTL, "how long a player's last search is kept")
	f.Float64Var(&serverFlags.RateLimit, "rate-limit", 50, "requests per second across all RPCs; 0 disables")
}

func runServer(cmd *cobra.Command, args []string) error {
	if err := serverFlags.Validate(); err != nil {
		return err
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	go func() {
		<-sigChan
		log.Println("Received shutdown signal, gracefully stopping...")
		cancel()
	}()

	cat, err := loadCatalog(serverFlags.CatalogPath)
	if err != nil {
		return fmt.Errorf("failed to load catalog: %w", err)
	}

	st, err := openStores(ctx, &serverFlags, clock.New())
	if err != nil {
		return fmt.Errorf("failed to open %s store: %w", serverFlags.Store, err)
	}
	defer st.Close()

	plannerService, err := newPlanner(&serverFlags, cat, st)
	if err != nil {
		return fmt.Errorf("failed to create planner: %w", err)
	}

	plannerHandler, err := v1alpha1.NewHandler(&v1alpha1.HandlerConfig{
		PlannerService: plannerService,
	})
	if err != nil {
		return fmt.Errorf("failed to create planner handler: %w", err)
	}

	lis, err := net.Listen("tcp", fmt.Sprintf(":%d", serverFlags.Port))
	if err != nil {
		return fmt.Errorf("failed to listen: %w", err)
	}

	srv := grpc.NewServer(
		grpc.ChainUnaryInterceptor(
			grpc_logging.UnaryServerInterceptor(grpc_logging.LoggerFunc(logFunc)),
			grpc_recovery.UnaryServerInterceptor(),
			rateLimitInterceptor(serverFlags.RateLimit),
		),
		grpc.ChainStreamInterceptor(
			grpc_logging.StreamServerInterceptor(grpc_logging.LoggerFunc(logFunc)),
			grpc_recovery.StreamServerInterceptor(),
		),
	)

	v1alpha1.RegisterPlannerServiceServer(srv, plannerHandler)

	healthServer := health.NewServer()
	grpc_health_v1.RegisterHealthServer(srv, healthServer)

	healthServer.SetServingStatus("", grpc_health_v1.HealthCheckResponse_SERVING)
	healthServer.SetServingStatus(v1alpha1.ServiceName, grpc_health_v1.HealthCheckResponse_SERVING)

	reflection.Register(srv)

	errChan := make(chan error, 1)
	go func() {
		log.Printf("gRPC server starting on port %d (store=%s, items=%d)...",
			serverFlags.Port, serverFlags.Store, len(cat.Names()))
		if err := srv.Serve(lis); err != nil {
			errChan <- fmt.Errorf("failed to serve: %w", err)
		}
	}()

	select {
	case <-ctx.Done():
		log.Println("Shutting down gRPC server...")
		healthServer.Shutdown()

		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer shutdownCancel()

		stopped := make(chan struct{})
		go func() {
			srv.GracefulStop()
			close(stopped)
		}()

		select {
		case <-shutdownCtx.Done():
			log.Println("Graceful shutdown timeout exceeded, forcing stop")
			srv.Stop()
		case <-stopped:
			log.Println("Server stopped gracefully")
		}

		return nil
	case err := <-errChan:
		return err
	}
}

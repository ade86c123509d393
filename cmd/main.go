package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/jmoiron/sqlx"
	"github.com/redis/go-redis/v9"
	"github.com/segmentio/kafka-go"
	"go.uber.org/multierr"
	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"

	_ "github.com/sbilibin2017/gw-event-checkin/docs"
	"github.com/sbilibin2017/gw-event-checkin/internal/clock"
	"github.com/sbilibin2017/gw-event-checkin/internal/jwt"
	"github.com/sbilibin2017/gw-event-checkin/internal/logger"
	"github.com/sbilibin2017/gw-event-checkin/internal/mailer"
	"github.com/sbilibin2017/gw-event-checkin/internal/middlewares"
	"github.com/sbilibin2017/gw-event-checkin/internal/migrations"
	"github.com/sbilibin2017/gw-event-checkin/internal/publishers"
	"github.com/sbilibin2017/gw-event-checkin/internal/repositories"
	"github.com/sbilibin2017/gw-event-checkin/internal/services"
	"github.com/sbilibin2017/gw-event-checkin/internal/tickets"

	_ "github.com/jackc/pgx/v5/stdlib"
)

// Build info variables, set via ldflags at build time.
var (
	buildVersion = "N/A" // Version of the service
	buildDate    = "N/A" // Build date
	buildCommit  = "N/A" // Git commit hash
)

// @title gw-event-checkin API
// @version 1.0.0
// @description Event management with guest registration, QR tickets and check-in
// @host localhost:8080
// @BasePath /
// @schemes http
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	printBuildInfo()
	configPath := parseFlags()

	cfg, err := parseConfig(configPath)
	if err != nil {
		log.Fatalf("failed to parse config: %v", err)
	}

	if err := run(context.Background(), cfg); err != nil {
		log.Fatalf("application stopped with error: %v", err)
	}
}

// printBuildInfo prints the build version, commit hash, and build date.
func printBuildInfo() {
	fmt.Printf("Starting service version %s, commit %s, build %s\n", buildVersion, buildCommit, buildDate)
}

// parseFlags parses command-line flags and returns the config file path.
func parseFlags() string {
	c := flag.String("c", "config.env", "Path to configuration file")
	flag.Parse()
	return *c
}

// run initializes the logger, database, Redis, Kafka, SMTP, the HTTP server
// and the gRPC health server, then blocks until ctx is cancelled or a signal arrives.
func run(ctx context.Context, cfg config) (err error) {
	if err := logger.Initialize(cfg.LogLevel, cfg.LogFormat); err != nil {
		fmt.Println("failed to initialize logger:", err)
		return err
	}
	defer logger.Sync()
	logger.Log.Infof("Logger initialized with level %s", cfg.LogLevel)

	// Connect to PostgreSQL
	dsn := fmt.Sprintf("postgres://%s:%s@%s:%d/%s?sslmode=disable",
		cfg.PGUser, cfg.PGPassword, cfg.PGHost, cfg.PGPort, cfg.PGDB)
	logger.Log.Infow("Connecting to PostgreSQL", "host", cfg.PGHost, "port", cfg.PGPort, "db", cfg.PGDB)

	db, err := sqlx.ConnectContext(ctx, "pgx", dsn)
	if err != nil {
		return fmt.Errorf("postgres connection: %w", err)
	}
	defer func() { err = multierr.Append(err, db.Close()) }()
	db.SetMaxOpenConns(cfg.PGMaxOpenConns)
	db.SetMaxIdleConns(cfg.PGMaxIdleConns)

	if err := migrations.Apply(ctx, db); err != nil {
		return fmt.Errorf("apply migrations: %w", err)
	}

	// Connect to Redis
	rdb := redis.NewClient(&redis.Options{
		Addr:         fmt.Sprintf("%s:%d", cfg.RedisHost, cfg.RedisPort),
		Password:     cfg.RedisPassword,
		DB:           cfg.RedisDB,
		PoolSize:     cfg.RedisPoolSize,
		MinIdleConns: cfg.RedisMinIdleConns,
	})
	defer func() { err = multierr.Append(err, rdb.Close()) }()
	if err := rdb.Ping(ctx).Err(); err != nil {
		return fmt.Errorf("redis connection: %w", err)
	}

	// Kafka writer for guest events
	var kafkaWriter publishers.KafkaWriter
	if len(cfg.KafkaBrokers) > 0 {
		kw := &kafka.Writer{
			Addr:                   kafka.TCP(cfg.KafkaBrokers...),
			Topic:                  cfg.KafkaTopic,
			Balancer:               &kafka.Hash{},
			RequiredAcks:           kafka.RequireOne,
			AllowAutoTopicCreation: true,
		}
		defer func() { err = multierr.Append(err, kw.Close()) }()
		kafkaWriter = kw
		logger.Log.Infow("Publishing guest events to Kafka", "brokers", cfg.KafkaBrokers, "topic", cfg.KafkaTopic)
	}

	smtpMailer, err := mailer.NewSMTPMailer(cfg.SMTP)
	if err != nil {
		return fmt.Errorf("smtp config: %w", err)
	}
	if !cfg.SMTP.Enabled {
		logger.Log.Warn("SMTP disabled, guest registration will report ticket delivery failures")
	}

	clk := clock.NewSystem()
	tokens := jwt.New(
		jwt.WithSecretKey(cfg.JWTSecret),
		jwt.WithExpiration(cfg.JWTExp),
		jwt.WithRefreshExpiration(cfg.JWTRefreshExp),
	)

	// Initialize repositories
	userReadRepo := repositories.NewUserReadRepository(db)
	userWriteRepo := repositories.NewUserWriteRepository(db)
	eventReadRepo := repositories.NewEventReadRepository(db)
	eventWriteRepo := repositories.NewEventWriteRepository(db, middlewares.GetTxFromContext)
	guestReadRepo := repositories.NewGuestReadRepository(db)
	guestWriteRepo := repositories.NewGuestWriteRepository(db, middlewares.GetTxFromContext)
	denylistRepo := repositories.NewTokenDenylistRepository(rdb)

	// Initialize services
	authService := services.NewAuthService(userReadRepo, userWriteRepo, tokens, denylistRepo, clk)
	userService := services.NewUserService(userReadRepo, userWriteRepo, clk)
	eventService := services.NewEventService(eventReadRepo, eventWriteRepo)
	guestService := services.NewGuestService(
		guestReadRepo,
		guestWriteRepo,
		eventReadRepo,
		tickets.NewCodec(cfg.QRSize),
		tickets.NewSigner(cfg.TicketSecret, cfg.TicketTTL, clk),
		services.NewTicketNotifier(smtpMailer, cfg.SMTP.From),
		publishers.NewGuestEventPublisher(kafkaWriter),
		clk,
	)

	r := newRouter(routerDeps{
		Auth:       authService,
		Users:      userService,
		Events:     eventService,
		Guests:     guestService,
		Tokener:    tokens,
		Tx:         middlewares.TxMiddleware(db),
		SwaggerURL: fmt.Sprintf("http://%s:%s/swagger/doc.json", cfg.AppHost, cfg.AppPort),
	})

	srv := &http.Server{
		Addr:    fmt.Sprintf("%s:%s", cfg.AppHost, cfg.AppPort),
		Handler: r,
	}

	// gRPC health server
	lis, err := net.Listen("tcp", fmt.Sprintf("%s:%s", cfg.AppHost, cfg.GRPCPort))
	if err != nil {
		return fmt.Errorf("grpc listen: %w", err)
	}
	grpcServer := grpc.NewServer()
	healthServer := health.NewServer()
	healthpb.RegisterHealthServer(grpcServer, healthServer)
	healthServer.SetServingStatus("", healthpb.HealthCheckResponse_SERVING)

	// Graceful shutdown
	errChan := make(chan error, 2)
	ctxShutdown, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM, syscall.SIGQUIT)
	defer stop()

	go func() {
		logger.Log.Infof("HTTP server listening on %s", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errChan <- fmt.Errorf("HTTP server failed: %w", err)
		}
	}()
	go func() {
		logger.Log.Infof("gRPC health server listening on %s", lis.Addr())
		if err := grpcServer.Serve(lis); err != nil && !errors.Is(err, grpc.ErrServerStopped) {
			errChan <- fmt.Errorf("gRPC server failed: %w", err)
		}
	}()

	var serveErr error
	select {
	case <-ctxShutdown.Done():
		logger.Log.Info("Shutdown signal received, stopping servers...")
	case serveErr = <-errChan:
		logger.Log.Errorw("Server stopped unexpectedly", "error", serveErr)
	}

	healthServer.Shutdown()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Log.Errorw("HTTP server shutdown error", "error", err)
		serveErr = multierr.Append(serveErr, err)
	}
	grpcServer.GracefulStop()

	logger.Log.Info("Servers stopped gracefully")
	return serveErr
}

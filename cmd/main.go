package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/secretsmanager"
	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/jmoiron/sqlx"
	"github.com/redis/go-redis/v9"
	"github.com/segmentio/kafka-go"

	_ "github.com/sbilibin2017/gw-health-records/docs"
	"github.com/sbilibin2017/gw-health-records/internal/config"
	"github.com/sbilibin2017/gw-health-records/internal/facades"
	"github.com/sbilibin2017/gw-health-records/internal/handlers"
	"github.com/sbilibin2017/gw-health-records/internal/jwt"
	"github.com/sbilibin2017/gw-health-records/internal/logger"
	"github.com/sbilibin2017/gw-health-records/internal/metrics"
	"github.com/sbilibin2017/gw-health-records/internal/middlewares"
	"github.com/sbilibin2017/gw-health-records/internal/repositories"
	"github.com/sbilibin2017/gw-health-records/internal/services"
	"github.com/sbilibin2017/gw-health-records/migrations"

	_ "github.com/jackc/pgx/v5/stdlib"
	httpSwagger "github.com/swaggo/http-swagger"
)

// Build info variables, set via ldflags at build time.
var (
	buildVersion = "N/A" // Version of the service
	buildDate    = "N/A" // Build date
	buildCommit  = "N/A" // Git commit hash
)

// @title gw-health-records API
// @version 1.0.0
// @description Personal health records: daily vitals, medical reports, profiles and AI health insights
// @host localhost:8080
// @BasePath /api/v1
// @schemes http
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	printBuildInfo()
	configPath := parseFlags()

	cfg, err := config.Load(configPath)
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

// deps holds the wired services the router exposes.
type deps struct {
	tokener   *jwt.JWT
	db        *sqlx.DB
	metrics   *metrics.Collector
	insights  *services.InsightService
	logs      *services.HealthLogService
	reports   *services.ReportService
	profiles  *services.ProfileService
	dashboard *services.DashboardService
}

// run initializes the logger, database, optional Redis, Kafka and object
// storage clients, and the HTTP server. It blocks until a shutdown signal.
func run(ctx context.Context, cfg *config.Config) error {
	if err := logger.Initialize(cfg.App.LogLevel, cfg.App.LogFormat); err != nil {
		fmt.Println("failed to initialize logger:", err)
		return err
	}
	defer logger.Sync()
	logger.Log.Infow("logger initialized", "level", cfg.App.LogLevel, "format", cfg.App.LogFormat)

	// Connect to PostgreSQL
	logger.Log.Infow("connecting to PostgreSQL", "host", cfg.Postgres.Host, "port", cfg.Postgres.Port, "db", cfg.Postgres.DB)
	db, err := sqlx.ConnectContext(ctx, "pgx", cfg.Postgres.DSN())
	if err != nil {
		return fmt.Errorf("PostgreSQL connection error: %w", err)
	}
	defer db.Close()
	db.SetMaxOpenConns(cfg.Postgres.MaxOpenConns)
	db.SetMaxIdleConns(cfg.Postgres.MaxIdleConns)

	if cfg.Postgres.AutoMigrate {
		if err := migrations.Up(ctx, db.DB); err != nil {
			return fmt.Errorf("apply migrations: %w", err)
		}
		logger.Log.Info("database migrations applied")
	}

	// Connect to Redis
	var counter *repositories.InsightCounterRepository
	if cfg.Redis.Host != "" {
		rdb := redis.NewClient(&redis.Options{
			Addr:         cfg.Redis.Addr(),
			Password:     cfg.Redis.Password,
			DB:           cfg.Redis.DB,
			PoolSize:     cfg.Redis.PoolSize,
			MinIdleConns: cfg.Redis.MinIdleConns,
		})
		if err := rdb.Ping(ctx).Err(); err != nil {
			return fmt.Errorf("Redis connection error: %w", err)
		}
		defer rdb.Close()
		counter = repositories.NewInsightCounterRepository(rdb)
	} else {
		logger.Log.Warn("REDIS_HOST is empty, insight counters are disabled")
	}

	// Kafka writer for domain events
	var writer services.KafkaWriter
	if brokers := cfg.Kafka.BrokerList(); len(brokers) > 0 {
		kw := newKafkaWriter(brokers, cfg.Kafka.Topic)
		defer kw.Close()
		writer = kw
	} else {
		logger.Log.Warn("KAFKA_BROKERS is empty, domain events are disabled")
	}

	// AWS clients for report storage and secret bootstrap
	awsCfg, err := awsconfig.LoadDefaultConfig(ctx, awsconfig.WithRegion(cfg.Storage.Region))
	if err != nil {
		return fmt.Errorf("load AWS config: %w", err)
	}

	apiKey := cfg.Gateway.APIKey
	if apiKey == "" && cfg.Gateway.APIKeySecretID != "" {
		secrets := facades.NewSecretsManagerFacade(secretsmanager.NewFromConfig(awsCfg))
		apiKey, err = secrets.Resolve(ctx, cfg.Gateway.APIKeySecretID)
		if err != nil {
			return fmt.Errorf("resolve insight gateway key: %w", err)
		}
		logger.Log.Infow("insight gateway key resolved from secrets manager", "secretID", cfg.Gateway.APIKeySecretID)
	}

	s3Client := s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		if cfg.Storage.Endpoint != "" {
			o.BaseEndpoint = aws.String(cfg.Storage.Endpoint)
		}
		o.UsePathStyle = cfg.Storage.UsePathStyle
	})
	publicBaseURL := cfg.Storage.PublicBaseURL
	if publicBaseURL == "" {
		publicBaseURL = facades.DefaultPublicBaseURL(cfg.Storage.Bucket, cfg.Storage.Region, cfg.Storage.Endpoint, cfg.Storage.UsePathStyle)
	}

	d := wire(db, counter, writer, s3Client, apiKey, publicBaseURL, cfg)

	srv := &http.Server{
		Addr:    fmt.Sprintf("%s:%s", cfg.App.Host, cfg.App.Port),
		Handler: newRouter(d, cfg),
	}

	// Graceful shutdown
	errChan := make(chan error, 1)
	ctxShutdown, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM, syscall.SIGQUIT)
	defer stop()

	go func() {
		logger.Log.Infof("HTTP server listening on %s", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errChan <- fmt.Errorf("HTTP server failed: %w", err)
		}
	}()

	select {
	case <-ctxShutdown.Done():
		logger.Log.Info("Shutdown signal received, stopping HTTP server...")
	case serveErr := <-errChan:
		return serveErr
	}

	shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), cfg.App.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Log.Errorw("HTTP server shutdown error", "error", err)
	}

	logger.Log.Info("HTTP server stopped gracefully")
	return nil
}

// newKafkaWriter returns an asynchronous writer so publishing never holds up
// a request. Delivery failures are reported through Completion.
func newKafkaWriter(brokers []string, topic string) *kafka.Writer {
	return &kafka.Writer{
		Addr:                   kafka.TCP(brokers...),
		Topic:                  topic,
		Balancer:               &kafka.Hash{},
		AllowAutoTopicCreation: true,
		Async:                  true,
		BatchTimeout:           10 * time.Millisecond,
		Completion: func(messages []kafka.Message, err error) {
			if err != nil {
				logger.Log.Errorw("failed to deliver events to Kafka", "topic", topic, "count", len(messages), "error", err)
			}
		},
	}
}

// wire builds repositories and services. counter and writer may be nil.
func wire(
	db *sqlx.DB,
	counter *repositories.InsightCounterRepository,
	writer services.KafkaWriter,
	s3Client facades.S3API,
	apiKey, publicBaseURL string,
	cfg *config.Config,
) *deps {
	m := metrics.NewCollector()

	tokener := jwt.New(
		jwt.WithSecretKey(cfg.JWT.SecretKey),
		jwt.WithExpiration(cfg.JWT.Exp),
	)

	// Initialize repositories
	healthLogWriteRepo := repositories.NewHealthLogWriteRepository(db)
	healthLogReadRepo := repositories.NewHealthLogReadRepository(db)
	reportWriteRepo := repositories.NewMedicalReportWriteRepository(db)
	reportReadRepo := repositories.NewMedicalReportReadRepository(db)
	profileReadRepo := repositories.NewProfileReadRepository(db)
	profileWriteRepo := repositories.NewProfileWriteRepository(db, middlewares.GetTxFromContext)
	roleReadRepo := repositories.NewUserRoleReadRepository(db)
	roleWriteRepo := repositories.NewUserRoleWriteRepository(db, middlewares.GetTxFromContext)

	// Initialize facades
	gateway := facades.NewInsightGatewayHTTPFacade(cfg.Gateway.URL, apiKey,
		facades.WithGatewayMetrics(m),
	)
	storage := facades.NewReportStorageS3Facade(s3Client, cfg.Storage.Bucket, publicBaseURL)

	// Interface-typed so a disabled Redis stays a nil interface.
	var insightCounter services.InsightCounter
	var insightCountReader services.InsightCountReader
	if counter != nil {
		insightCounter = counter
		insightCountReader = counter
	}

	publisher := services.NewKafkaEventPublisher(writer)

	return &deps{
		tokener:   tokener,
		db:        db,
		metrics:   m,
		insights:  services.NewInsightService(gateway, healthLogReadRepo, insightCounter, publisher, m),
		logs:      services.NewHealthLogService(healthLogWriteRepo, healthLogReadRepo, publisher, m),
		reports:   services.NewReportService(storage, reportWriteRepo, reportReadRepo, publisher, m, cfg.Storage.MaxUploadBytes),
		profiles:  services.NewProfileService(profileReadRepo, profileWriteRepo, roleReadRepo, roleWriteRepo),
		dashboard: services.NewDashboardService(healthLogReadRepo, reportReadRepo, insightCountReader),
	}
}

// newRouter mounts every route on a chi router.
func newRouter(d *deps, cfg *config.Config) http.Handler {
	r := chi.NewRouter()
	r.Use(middlewares.LoggingMiddleware)
	r.Use(middlewares.MetricsMiddleware(d.metrics))
	r.Use(middlewares.CORSMiddleware)
	r.Use(chimiddleware.Recoverer)

	r.Handle("/metrics", d.metrics.Handler())
	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL(fmt.Sprintf("http://%s:%s/swagger/doc.json", cfg.App.Host, cfg.App.Port)),
	))

	r.Route("/api/v1", func(r chi.Router) {
		// Public routes
		r.Post("/insights", handlers.NewInsightsHandler(d.insights))

		// Protected routes with JWT middleware
		r.Group(func(r chi.Router) {
			r.Use(middlewares.AuthMiddleware(d.tokener))

			r.Post("/me/insights", handlers.NewMyInsightsHandler(d.insights, d.tokener))

			r.Post("/logs", handlers.NewCreateHealthLogHandler(d.logs, d.tokener))
			r.Get("/logs", handlers.NewListHealthLogsHandler(d.logs, d.tokener))
			r.Get("/logs/trends", handlers.NewHealthTrendsHandler(d.logs, d.tokener))

			r.Post("/reports", handlers.NewUploadReportHandler(d.reports, d.tokener))
			r.Get("/reports", handlers.NewListReportsHandler(d.reports, d.tokener))

			r.Get("/profile", handlers.NewGetProfileHandler(d.profiles, d.tokener))
			r.With(middlewares.TxMiddleware(d.db)).
				Put("/profile", handlers.NewSaveProfileHandler(d.profiles, d.tokener))
			r.Get("/roles/{role}", handlers.NewHasRoleHandler(d.profiles, d.tokener))

			r.Get("/dashboard", handlers.NewDashboardHandler(d.dashboard, d.tokener))
		})
	})

	return r
}

package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"smartpass-service/internal/domain/repository"
	"smartpass-service/internal/infrastructure/config"
	"smartpass-service/internal/infrastructure/oauth"
	"smartpass-service/internal/infrastructure/persistence"
	"smartpass-service/internal/infrastructure/router"
	"smartpass-service/internal/interface/httpserver"
	"smartpass-service/internal/interface/ocr"
	scanRepo "smartpass-service/internal/interface/repository"
	"smartpass-service/internal/usecase"
	"smartpass-service/pkg/clock"
	"smartpass-service/pkg/extract"
	"smartpass-service/pkg/logger"
	"smartpass-service/pkg/metrics"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func main() {
	// Create logger
	log := logger.NewLogger()
	log.Info("Starting SmartPass Service")

	// Load configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatal("Failed to load config", "error", err)
	}

	// Set up context with cancellation
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Set up MongoDB connection
	log.Info("Connecting to MongoDB")
	mongoClient, err := persistence.NewMongoClient(ctx, cfg.MongoURI)
	if err != nil {
		log.Fatal("Failed to connect to MongoDB", "error", err)
	}
	db := persistence.GetDatabase(mongoClient, cfg.MongoDB)

	// Reference tables are optional; the in-code lookup tables cover the
	// common carriers and airports when no Postgres is configured
	var airlineRepository repository.AirlineRepository
	var airportRepository repository.AirportRepository
	var reminderLogRepository repository.ReminderLogRepository
	if cfg.PostgresDSN != "" {
		gormDB, err := gorm.Open(postgres.Open(cfg.PostgresDSN), &gorm.Config{})
		if err != nil {
			log.Fatal("Failed to connect to PostgreSQL", "error", err)
		}
		airlineRepository = scanRepo.NewGormAirlineRepository(gormDB)
		airportRepository = scanRepo.NewGormAirportRepository(gormDB)
		reminderLogRepository = scanRepo.NewGormReminderLogRepository(gormDB)
	} else {
		log.Warn("POSTGRES_DSN not set, reference tables and reminder audit log disabled")
	}

	// Set up repositories
	passRepository := scanRepo.NewMongoPassRepository(db, log)
	notifier := scanRepo.NewWebPushRepository(cfg.PushEndpoint, cfg.PushToken, log)

	// Set up metrics
	appMetrics := metrics.NewMetrics("smartpass")

	// Set up the scan pipeline
	extractor := extract.NewExtractor(log)
	scheduler := usecase.NewReminderScheduler(notifier, reminderLogRepository, clock.NewReal(), log)

	mediaRouter := router.NewMediaRouter(log)
	mediaRouter.Register(ocr.NewImagePassthrough())
	mediaRouter.Register(ocr.NewPDFRasterizer(log))

	var recognizer repository.TextRecognizer
	switch cfg.OCREngine {
	case "vision":
		googleOAuth := oauth.NewGoogleOAuth(cfg.GoogleCredentialsFile, log)
		tokenSource, err := googleOAuth.GetTokenSource(ctx)
		if err != nil {
			log.Fatal("Failed to load Google credentials", "error", err)
		}
		recognizer, err = ocr.NewVisionService(ctx, tokenSource, log)
		if err != nil {
			log.Fatal("Failed to create Vision service", "error", err)
		}
	default:
		recognizer = ocr.NewTesseractService(strings.Split(cfg.OCRLanguages, "+"), log)
	}
	log.Info("OCR engine ready", "engine", cfg.OCREngine)

	processor := usecase.NewPassProcessor(
		passRepository,
		airlineRepository,
		airportRepository,
		recognizer,
		mediaRouter,
		extractor,
		scheduler,
		appMetrics,
		log,
	)

	// Set up HTTP server
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())
	mux.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("Healthy"))
	})

	apiServer := httpserver.NewServer(processor, notifier, cfg.MaxUploadMB, log)
	apiServer.Register(mux)

	server := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      mux,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
	}

	// Start HTTP server in a goroutine
	go func() {
		log.Info("Starting HTTP server", "port", cfg.Port)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("HTTP server error", "error", err)
		}
	}()

	// Wait for interrupt signal
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	sig := <-sigChan
	log.Info("Received signal", "signal", sig)

	// Graceful shutdown
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Error("HTTP server shutdown error", "error", err)
	}

	scheduler.Stop()
	cancel()

	// Disconnect from MongoDB
	if err := mongoClient.Disconnect(shutdownCtx); err != nil {
		log.Error("MongoDB disconnect error", "error", err)
	}

	log.Info("SmartPass Service stopped")
}

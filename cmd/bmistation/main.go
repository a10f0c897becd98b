package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/rs/cors"
	"go.uber.org/zap"

	"bmistation/internal/adapter/device"
	adapthttp "bmistation/internal/adapter/http"
	"bmistation/internal/adapter/memory"
	"bmistation/internal/adapter/postgres"
	"bmistation/internal/adapter/rabbitmq"
	"bmistation/internal/app"
	"bmistation/internal/config"
	"bmistation/internal/domain"
	"bmistation/internal/logger"
	"bmistation/internal/report"
)

func main() {
	_ = godotenv.Load()

	cfg, err := config.Load(os.Getenv("CONFIG_FILE"))
	if err != nil {
		logger.Setup(logger.DevelopmentEnvironment)
		logger.Fatal(context.Background(), "config", zap.Error(err))
	}
	logger.Setup(cfg.Environment)
	ctx := context.Background()

	var users domain.UserRepository
	var ledger domain.MeasurementRepository
	if cfg.DatabaseURL != "" {
		db, err := postgres.Open(cfg.DatabaseURL)
		if err != nil {
			logger.Fatal(ctx, "db open", zap.Error(err))
		}
		defer func() { _ = db.Close() }()
		users, ledger = db, db
	} else {
		mem := memory.New()
		users, ledger = mem, mem
		logger.Warn(ctx, "DATABASE_URL not set, using in-memory storage")
	}

	var publisher domain.MeasurementPublisher
	if cfg.AMQP.Addr != "" {
		pub, err := rabbitmq.Dial(cfg.AMQP.Addr, cfg.AMQP.Queue)
		if err != nil {
			logger.Fatal(ctx, "amqp dial", zap.Error(err))
		}
		defer func() { _ = pub.Close() }()
		publisher = pub
	}

	scale := device.NewExecReader(cfg.Scale.Path, cfg.Scale.Timeout)

	userSvc := app.NewUserService(users)
	measureSvc := app.NewMeasureService(users, ledger, scale, publisher)
	reportSvc := app.NewReportService(users, ledger, report.NewPDFRenderer())

	handler := adapthttp.New(userSvc, measureSvc, reportSvc).Handler()

	// The browser frontend is served from another origin.
	c := cors.New(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowedHeaders: []string{"*"},
	})

	srv := &http.Server{
		Addr:         cfg.HTTP.Addr,
		Handler:      c.Handler(handler),
		ReadTimeout:  cfg.HTTP.ReadTimeout,
		WriteTimeout: cfg.HTTP.WriteTimeout,
		IdleTimeout:  cfg.HTTP.IdleTimeout,
	}

	go func() {
		logger.Info(ctx, "listening", zap.String("addr", cfg.HTTP.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal(ctx, "listen", zap.Error(err))
		}
	}()

	stop, cancel := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer cancel()
	<-stop.Done()

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), cfg.GracefulShutdownTimeout)
	defer shutdownCancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error(ctx, "shutdown", zap.Error(err))
	}
	logger.Info(ctx, "stopped")
}

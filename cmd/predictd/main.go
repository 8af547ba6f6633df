// Package main provides the entry point for the prediction daemon. It
// runs the slate on a cron schedule and serves Prometheus metrics.
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

	"github.com/sirupsen/logrus"

	"github.com/yourusername/puckcast/internal/config"
	"github.com/yourusername/puckcast/internal/database"
	"github.com/yourusername/puckcast/internal/goalie"
	"github.com/yourusername/puckcast/internal/health"
	applogger "github.com/yourusername/puckcast/internal/logger"
	"github.com/yourusername/puckcast/internal/metrics"
	"github.com/yourusername/puckcast/internal/nhl"
	"github.com/yourusername/puckcast/internal/predictor"
	"github.com/yourusername/puckcast/internal/repository"
	"github.com/yourusername/puckcast/internal/scheduler"
	"github.com/yourusername/puckcast/internal/service"
	"github.com/yourusername/puckcast/internal/storage"
)

// slateJob adapts the slate service to the scheduler's runner surface,
// re-reading the goalie sheet each run so same-day edits are picked up.
type slateJob struct {
	svc         *service.SlateService
	resolver    *goalie.Resolver
	goaliesPath string
	log         *logrus.Logger
}

func (j *slateJob) RunSlate(ctx context.Context, date time.Time) error {
	if err := j.resolver.ReloadSheet(j.goaliesPath); err != nil {
		j.log.WithError(err).Warn("Starting-goalie sheet unreadable, predicting without it")
	}
	slate, err := j.svc.PredictDate(ctx, date)
	if err != nil {
		return err
	}
	path, err := j.svc.PersistSlate(ctx, slate)
	if err != nil {
		return err
	}
	j.log.WithFields(logrus.Fields{
		"date":  slate.Date,
		"games": len(slate.Games),
		"path":  path,
	}).Info("Slate persisted")
	return nil
}

func main() {
	configPath := flag.String("config", "config/config.yaml", "Path to config file")
	flag.Parse()

	cfg, err := config.LoadWithDefaults(*configPath)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	if os.Getenv("AWS_SECRETS_ENABLED") == "true" {
		region := os.Getenv("AWS_REGION")
		secretName := os.Getenv("AWS_SECRET_NAME")
		if region == "" || secretName == "" {
			log.Fatalf("AWS_REGION and AWS_SECRET_NAME environment variables must be set when AWS_SECRETS_ENABLED is true")
		}
		if err := config.LoadSecretsFromAWS(cfg, region, secretName); err != nil {
			log.Fatalf("Failed to load secrets: %v", err)
		}
	}

	if err := config.Validate(cfg); err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}

	appLog := applogger.NewLogger(cfg.App.LogLevel)
	appLog.WithFields(logrus.Fields{
		"environment": cfg.App.Environment,
		"log_level":   cfg.App.LogLevel,
	}).Info("Puckcast daemon starting")

	if !cfg.Schedule.Enabled {
		appLog.Fatal("Schedule is disabled; nothing for the daemon to do")
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	client := nhl.NewClient(cfg.NHL, appLog)
	defer client.Close()

	store := storage.NewStore(cfg.Data, appLog)

	// The job reloads the sheet at the top of every run
	resolver := goalie.NewResolver(client, goalie.Sheet{}, appLog)

	model := predictor.NewModel(cfg.Model, applogger.NewPredictionLogger(appLog))

	var (
		db   *database.DB
		repo repository.PredictionRepository
	)
	if cfg.Database.Enabled {
		db, err = database.Initialize(ctx, cfg)
		if err != nil {
			appLog.WithError(err).Fatal("Failed to initialize database")
		}
		defer db.Close()
		repo = repository.NewPostgresPredictionRepository(db)
		appLog.Info("Database connection established")
	}

	svc := service.NewSlateService(client, resolver, model, store, repo, appLog)

	sched := scheduler.NewScheduler(&slateJob{
		svc:         svc,
		resolver:    resolver,
		goaliesPath: store.GoaliesPath(),
		log:         appLog,
	}, appLog)
	if err := sched.ScheduleDailySlate(cfg.Schedule.CronExpression); err != nil {
		appLog.WithError(err).Fatal("Failed to schedule daily slate")
	}
	if err := sched.Start(); err != nil {
		appLog.WithError(err).Fatal("Failed to start scheduler")
	}
	appLog.WithField("next_run", sched.NextRun().Format(time.RFC3339)).Info("Scheduler running")

	healthCfg := health.Config{
		ServiceName: cfg.App.Name,
		Logger:      appLog,
		Scheduler:   sched,
	}
	if db != nil {
		healthCfg.DB = db
	}
	healthServer := health.NewServer(healthCfg)
	if err := healthServer.Start(ctx); err != nil {
		appLog.WithError(err).Fatal("Failed to start health server")
	}
	healthServer.SetReady(true)

	var metricsServer *http.Server
	if cfg.Metrics.Enabled {
		metrics.InitRegistry()
		mux := http.NewServeMux()
		mux.Handle(cfg.Metrics.Path, metrics.Handler())
		metricsServer = &http.Server{
			Addr:    fmt.Sprintf(":%d", cfg.Metrics.Port),
			Handler: mux,
		}
		go func() {
			appLog.WithField("addr", metricsServer.Addr).Info("Metrics server listening")
			if err := metricsServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				appLog.WithError(err).Error("Metrics server failed")
			}
		}()
	}

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	sig := <-sigChan
	appLog.WithField("signal", sig).Info("Shutdown signal received")

	cancel()

	if err := sched.Stop(); err != nil {
		appLog.WithError(err).Error("Error stopping scheduler")
	}
	if metricsServer != nil {
		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer shutdownCancel()
		if err := metricsServer.Shutdown(shutdownCtx); err != nil {
			appLog.WithError(err).Error("Error stopping metrics server")
		}
	}

	appLog.Info("Puckcast daemon shut down successfully")
}
